package jobform

import "slices"

var (
	// leadingFields apply to every position and come first in the form.
	leadingFields = []Field{FieldFullName, FieldEmail, FieldPhone, FieldPosition}

	// positionFields are shown, validated and summarised only for the
	// position they are listed under.
	positionFields = map[Position][]Field{
		PositionDeveloper: {FieldExperience},
		PositionDesigner:  {FieldExperience, FieldPortfolioURL},
		PositionManager:   {FieldManagementExperience},
	}

	// trailingFields apply to every position and close the form.
	trailingFields = []Field{FieldAdditionalSkills, FieldPreferredInterviewTime}
)

// ActiveFields returns the fields that take part in validation and in the
// summary for position p, in form order. Unknown positions, including the
// empty one, activate only the always-on fields.
func ActiveFields(p Position) []Field {
	conditional := positionFields[p]
	fields := make([]Field, 0, len(leadingFields)+len(conditional)+len(trailingFields))
	fields = append(fields, leadingFields...)
	fields = append(fields, conditional...)
	return append(fields, trailingFields...)
}

// Relevant reports whether field f is active for position p.
func Relevant(p Position, f Field) bool {
	return slices.Contains(ActiveFields(p), f)
}

// Requires reports whether field f is active for p.
func (p Position) Requires(f Field) bool {
	return Relevant(p, f)
}
