package jobform

import "github.com/dmitrymomot/jobform/pkg/sanitizer"

var (
	cleanName = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.RemoveExtraWhitespace)
	cleanText = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim)
)

// Normalize returns a cleaned copy of s for a form controller to validate:
// text fields are trimmed and stripped of control characters, the full name
// has its inner whitespace collapsed, and the skill set drops blanks and
// unknown values and keeps the first occurrence of each skill.
// Validate never calls Normalize; raw input is validated as given.
func Normalize(s FormState) FormState {
	out := FormState{
		FullName:               cleanName(s.FullName),
		Email:                  cleanText(s.Email),
		Phone:                  cleanText(s.Phone),
		Position:               Position(cleanText(s.Position.String())),
		Experience:             cleanText(s.Experience),
		PortfolioURL:           cleanText(s.PortfolioURL),
		ManagementExperience:   cleanText(s.ManagementExperience),
		PreferredInterviewTime: cleanText(s.PreferredInterviewTime),
	}

	skills := sanitizer.TransformSlice(s.AdditionalSkills, func(v Skill) Skill {
		return Skill(sanitizer.Trim(v.String()))
	})
	skills = sanitizer.FilterSlice(skills, Skill.Known)
	out.AdditionalSkills = sanitizer.Deduplicate(skills)

	return out
}
