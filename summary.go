package jobform

import (
	"strings"

	"github.com/dmitrymomot/jobform/pkg/sanitizer"
)

// SummaryTitle heads every formatted summary.
const SummaryTitle = "Job Application Form Summary"

// SummaryLine is one "Label: value" entry of an application summary.
type SummaryLine struct {
	Field Field  `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func (l SummaryLine) String() string {
	return l.Label + ": " + l.Value
}

var summaryLines = map[Field]func(FormState) SummaryLine{
	FieldFullName: func(s FormState) SummaryLine {
		return SummaryLine{FieldFullName, "Full Name", s.FullName}
	},
	FieldEmail: func(s FormState) SummaryLine {
		return SummaryLine{FieldEmail, "Email", s.Email}
	},
	FieldPhone: func(s FormState) SummaryLine {
		return SummaryLine{FieldPhone, "Phone Number", s.Phone}
	},
	FieldPosition: func(s FormState) SummaryLine {
		return SummaryLine{FieldPosition, "Applying for Position", s.Position.String()}
	},
	FieldExperience: func(s FormState) SummaryLine {
		return SummaryLine{FieldExperience, "Relevant Experience", s.Experience + " years"}
	},
	FieldPortfolioURL: func(s FormState) SummaryLine {
		return SummaryLine{FieldPortfolioURL, "Portfolio URL", s.PortfolioURL}
	},
	FieldManagementExperience: func(s FormState) SummaryLine {
		return SummaryLine{FieldManagementExperience, "Management Experience", s.ManagementExperience}
	},
	FieldAdditionalSkills: func(s FormState) SummaryLine {
		skills := sanitizer.TransformSlice(s.AdditionalSkills, Skill.String)
		return SummaryLine{FieldAdditionalSkills, "Additional Skills", strings.Join(skills, ", ")}
	},
	FieldPreferredInterviewTime: func(s FormState) SummaryLine {
		return SummaryLine{FieldPreferredInterviewTime, "Preferred Interview Time", s.PreferredInterviewTime}
	},
}

// SummaryLines returns one line per field active for the selected position,
// in form order. Fields skipped by Validate are skipped here as well.
func SummaryLines(s FormState) []SummaryLine {
	fields := ActiveFields(s.Position)
	lines := make([]SummaryLine, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, summaryLines[f](s))
	}
	return lines
}

// Summary formats s as a newline-delimited, human-readable summary headed by
// SummaryTitle. It is meant for states that passed Validate; it does not
// check them again.
func Summary(s FormState) string {
	var b strings.Builder
	b.WriteString(SummaryTitle)
	for _, l := range SummaryLines(s) {
		b.WriteByte('\n')
		b.WriteString(l.String())
	}
	return b.String()
}
