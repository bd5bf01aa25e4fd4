package dto

import "github.com/fekuna/omnipos-catalog-service/internal/apperror"

// ProductFilters is a sparse predicate set. Empty strings and nil pointers
// impose no constraint.
type ProductFilters struct {
	Name        string // case-insensitive substring
	Description string // case-insensitive substring
	ExtRef      string // exact
	CategoryID  *int64
	IsDisabled  *bool
}

func (f *ProductFilters) Validate() error {
	if f.CategoryID != nil && *f.CategoryID <= 0 {
		return apperror.NewCallerInput("category_id", "must be positive")
	}
	return nil
}
