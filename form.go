package jobform

import "slices"

// Position is the role an applicant applies for. The zero value means
// nothing has been selected yet.
type Position string

const (
	PositionNone      Position = ""
	PositionDeveloper Position = "Developer"
	PositionDesigner  Position = "Designer"
	PositionManager   Position = "Manager"
)

// Positions returns the selectable positions in display order.
func Positions() []Position {
	return []Position{PositionDeveloper, PositionDesigner, PositionManager}
}

func (p Position) String() string {
	return string(p)
}

// Skill is one of the additional skills an applicant can tick.
type Skill string

const (
	SkillJavaScript Skill = "JavaScript"
	SkillCSS        Skill = "CSS"
	SkillPython     Skill = "Python"
)

// Skills returns the selectable skills in display order.
func Skills() []Skill {
	return []Skill{SkillJavaScript, SkillCSS, SkillPython}
}

// Known reports whether s is one of the selectable skills.
func (s Skill) Known() bool {
	switch s {
	case SkillJavaScript, SkillCSS, SkillPython:
		return true
	}
	return false
}

func (s Skill) String() string {
	return string(s)
}

// Field names a form field. The values double as ErrorMap keys and as the
// form and JSON keys of FormState.
type Field string

const (
	FieldFullName               Field = "fullName"
	FieldEmail                  Field = "email"
	FieldPhone                  Field = "phone"
	FieldPosition               Field = "position"
	FieldExperience             Field = "experience"
	FieldPortfolioURL           Field = "portfolioURL"
	FieldManagementExperience   Field = "managementExperience"
	FieldAdditionalSkills       Field = "additionalSkills"
	FieldPreferredInterviewTime Field = "preferredInterviewTime"
)

var fieldLabels = map[Field]string{
	FieldFullName:               "Full Name",
	FieldEmail:                  "Email",
	FieldPhone:                  "Phone Number",
	FieldPosition:               "Applying for Position",
	FieldExperience:             "Relevant Experience (years)",
	FieldPortfolioURL:           "Portfolio URL",
	FieldManagementExperience:   "Management Experience",
	FieldAdditionalSkills:       "Additional Skills",
	FieldPreferredInterviewTime: "Preferred Interview Time",
}

// Fields returns every form field in form order.
func Fields() []Field {
	return slices.Clone(formLayout)
}

// Label returns the human-readable form label of the field.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

func (f Field) String() string {
	return string(f)
}

// FormState is a snapshot of every field of one in-progress application.
// It is a plain value: Validate, Summary and Normalize never modify it.
type FormState struct {
	FullName               string   `json:"fullName" form:"fullName" query:"fullName"`
	Email                  string   `json:"email" form:"email" query:"email"`
	Phone                  string   `json:"phone" form:"phone" query:"phone"`
	Position               Position `json:"position" form:"position" query:"position"`
	Experience             string   `json:"experience" form:"experience" query:"experience"`
	PortfolioURL           string   `json:"portfolioURL" form:"portfolioURL" query:"portfolioURL"`
	ManagementExperience   string   `json:"managementExperience" form:"managementExperience" query:"managementExperience"`
	AdditionalSkills       []Skill  `json:"additionalSkills" form:"additionalSkills" query:"additionalSkills"`
	PreferredInterviewTime string   `json:"preferredInterviewTime" form:"preferredInterviewTime" query:"preferredInterviewTime"`
}

// HasSkill reports whether the skill is selected.
func (s FormState) HasSkill(skill Skill) bool {
	return slices.Contains(s.AdditionalSkills, skill)
}
