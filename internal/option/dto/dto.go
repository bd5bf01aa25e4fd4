package dto

import "github.com/fekuna/omnipos-catalog-service/internal/apperror"

// OptionFilters is a sparse predicate set. Empty strings and nil pointers
// impose no constraint.
type OptionFilters struct {
	Name               string // case-insensitive substring
	IsDefault          *bool
	AdjustsParentPrice *bool
	// OptionGroupID keeps options linked to the group. The option's own
	// option_groups list is still reported in full.
	OptionGroupID *int64
}

func (f *OptionFilters) Validate() error {
	if f.OptionGroupID != nil && *f.OptionGroupID <= 0 {
		return apperror.NewCallerInput("option_group_id", "must be positive")
	}
	return nil
}
