package dto

// CategoryFilters is a sparse predicate set. Empty fields impose no
// constraint.
type CategoryFilters struct {
	Name   string // case-insensitive substring
	ExtRef string // exact
}
