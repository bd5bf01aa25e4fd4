package dto

// OptionGroupFilters is a sparse predicate set. Empty strings and nil
// pointers impose no constraint.
type OptionGroupFilters struct {
	Description              string // case-insensitive substring
	ExplanationText          string // case-insensitive substring
	Mandatory                *bool
	SupportsChoiceQuantities *bool
}
