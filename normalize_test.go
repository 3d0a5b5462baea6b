package jobform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/jobform"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	raw := jobform.FormState{
		FullName:               "  Jane \t  Doe\x00 ",
		Email:                  " jane@x.com\n",
		Phone:                  " 5551234 ",
		Position:               " Designer ",
		Experience:             " 5 ",
		PortfolioURL:           " https://jane.design ",
		ManagementExperience:   "  Led a team\n\tof 8  ",
		AdditionalSkills:       []jobform.Skill{" CSS", "Go", "", "CSS", "Python", "JavaScript "},
		PreferredInterviewTime: " 2024-01-01 ",
	}

	got := jobform.Normalize(raw)

	assert.Equal(t, jobform.FormState{
		FullName:               "Jane Doe",
		Email:                  "jane@x.com",
		Phone:                  "5551234",
		Position:               jobform.PositionDesigner,
		Experience:             "5",
		PortfolioURL:           "https://jane.design",
		ManagementExperience:   "Led a team\n\tof 8",
		AdditionalSkills:       []jobform.Skill{jobform.SkillCSS, jobform.SkillPython, jobform.SkillJavaScript},
		PreferredInterviewTime: "2024-01-01",
	}, got)

	assert.Equal(t, " Designer ", raw.Position.String(), "input must not be modified")
	assert.Equal(t, jobform.Skill(" CSS"), raw.AdditionalSkills[0], "input slice must not be modified")
}

func TestNormalize_MakesPaddedInputValid(t *testing.T) {
	t.Parallel()

	raw := developer()
	raw.Email = "  jane@x.com  "
	raw.Position = "Developer\n"

	assert.True(t, jobform.Validate(raw).Has(jobform.FieldEmail), "raw input is validated as given")
	assert.True(t, jobform.Validate(jobform.Normalize(raw)).IsValid())
}

func TestNormalize_UnknownSkillsOnly(t *testing.T) {
	t.Parallel()

	s := developer()
	s.AdditionalSkills = []jobform.Skill{"Go", "Rust"}

	n := jobform.Normalize(s)
	assert.Empty(t, n.AdditionalSkills)
	assert.Equal(t, jobform.MsgAdditionalSkillsRequired, jobform.Validate(n)[jobform.FieldAdditionalSkills])
}
