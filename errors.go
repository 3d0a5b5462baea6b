package jobform

import (
	"slices"

	"github.com/dmitrymomot/jobform/pkg/validator"
)

// formLayout is every field in the order the form renders them.
var formLayout = []Field{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldPosition,
	FieldExperience,
	FieldPortfolioURL,
	FieldManagementExperience,
	FieldAdditionalSkills,
	FieldPreferredInterviewTime,
}

// ErrorMap maps a field to its validation message. A field absent from the
// map is valid.
type ErrorMap map[Field]string

// IsValid reports whether the map holds no errors.
func (m ErrorMap) IsValid() bool {
	return len(m) == 0
}

func (m ErrorMap) Has(f Field) bool {
	_, ok := m[f]
	return ok
}

func (m ErrorMap) Get(f Field) string {
	return m[f]
}

// Fields returns the failing fields in form order. Keys that are not form
// fields follow, sorted by name.
func (m ErrorMap) Fields() []Field {
	fields := make([]Field, 0, len(m))
	for _, f := range formLayout {
		if m.Has(f) {
			fields = append(fields, f)
		}
	}

	var extra []Field
	for f := range m {
		if !slices.Contains(formLayout, f) {
			extra = append(extra, f)
		}
	}
	slices.Sort(extra)

	return append(fields, extra...)
}

// Err returns nil for a valid map, otherwise a validator.ValidationErrors in
// field order, so callers can use errors.Is(err, validator.ErrValidationFailed).
func (m ErrorMap) Err() error {
	if m.IsValid() {
		return nil
	}
	errs := make(validator.ValidationErrors, 0, len(m))
	for _, f := range m.Fields() {
		errs.Add(validator.ValidationError{Field: f.String(), Message: m[f]})
	}
	return errs
}
