package jobform

import "github.com/dmitrymomot/jobform/pkg/validator"

// Validation messages. Callers and tests may compare against them verbatim.
const (
	MsgFullNameRequired               = "Full Name is required"
	MsgEmailRequired                  = "Email is required"
	MsgEmailInvalid                   = "Email is not valid"
	MsgPhoneRequired                  = "Phone Number is required"
	MsgPositionRequired               = "Position is required"
	MsgExperienceInvalid              = "Relevant Experience is required and must be greater than 0"
	MsgPortfolioURLRequired           = "Portfolio URL is required"
	MsgPortfolioURLInvalid            = "Portfolio URL must be a valid URL"
	MsgManagementExperienceRequired   = "Management Experience is required"
	MsgAdditionalSkillsRequired       = "At least one skill must be selected"
	MsgPreferredInterviewTimeRequired = "Preferred Interview Time is required"
)

// fieldRules builds the rules of one field from a snapshot. Format rules
// pass on empty input, so each field reports at most one message.
// Only the full name treats blank input as missing; other presence checks
// match the empty string alone and leave trimming to Normalize.
var fieldRules = map[Field]func(FormState) []validator.Rule{
	FieldFullName: func(s FormState) []validator.Rule {
		return []validator.Rule{
			validator.Required(FieldFullName.String(), s.FullName).WithMessage(MsgFullNameRequired),
		}
	},
	FieldEmail: func(s FormState) []validator.Rule {
		return []validator.Rule{
			validator.NotEmpty(FieldEmail.String(), s.Email).WithMessage(MsgEmailRequired),
			validator.ValidEmail(FieldEmail.String(), s.Email).WithMessage(MsgEmailInvalid),
		}
	},
	FieldPhone: func(s FormState) []validator.Rule {
		return []validator.Rule{
			validator.NotEmpty(FieldPhone.String(), s.Phone).WithMessage(MsgPhoneRequired),
		}
	},
	FieldPosition: func(s FormState) []validator.Rule {
		return []validator.Rule{
			validator.NotEmpty(FieldPosition.String(), s.Position.String()).WithMessage(MsgPositionRequired),
		}
	},
	FieldExperience: func(s FormState) []validator.Rule {
		return []validator.Rule{
			validator.PositiveNumber(FieldExperience.String(), s.Experience).WithMessage(MsgExperienceInvalid),
		}
	},
	FieldPortfolioURL: func(s FormState) []validator.Rule {
		return []validator.Rule{
			validator.NotEmpty(FieldPortfolioURL.String(), s.PortfolioURL).WithMessage(MsgPortfolioURLRequired),
			validator.ValidURL(FieldPortfolioURL.String(), s.PortfolioURL).WithMessage(MsgPortfolioURLInvalid),
		}
	},
	FieldManagementExperience: func(s FormState) []validator.Rule {
		return []validator.Rule{
			validator.NotEmpty(FieldManagementExperience.String(), s.ManagementExperience).
				WithMessage(MsgManagementExperienceRequired),
		}
	},
	FieldAdditionalSkills: func(s FormState) []validator.Rule {
		return []validator.Rule{
			validator.RequiredSlice(FieldAdditionalSkills.String(), s.AdditionalSkills).
				WithMessage(MsgAdditionalSkillsRequired),
		}
	},
	FieldPreferredInterviewTime: func(s FormState) []validator.Rule {
		return []validator.Rule{
			validator.NotEmpty(FieldPreferredInterviewTime.String(), s.PreferredInterviewTime).
				WithMessage(MsgPreferredInterviewTimeRequired),
		}
	},
}

// Rules returns the validation rules that apply to s, in form order.
// Fields inactive for the selected position contribute no rules.
func Rules(s FormState) []validator.Rule {
	var rules []validator.Rule
	for _, f := range ActiveFields(s.Position) {
		rules = append(rules, fieldRules[f](s)...)
	}
	return rules
}

// Validate checks s against every rule active for its position and returns
// one message per failing field. An empty map means s is valid.
// Validate is pure: it does not modify s and is safe for concurrent use.
func Validate(s FormState) ErrorMap {
	errs := make(ErrorMap)
	for _, e := range validator.ExtractValidationErrors(validator.Apply(Rules(s)...)) {
		f := Field(e.Field)
		if _, seen := errs[f]; !seen {
			errs[f] = e.Message
		}
	}
	return errs
}

// Validate is the error form of the package-level Validate: nil when s is
// valid, otherwise a validator.ValidationErrors in form order.
func (s FormState) Validate() error {
	return Validate(s).Err()
}
