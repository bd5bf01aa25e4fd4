package model

import (
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
)

// CheckBrand rejects an empty brand identifier. Every catalog query is
// scoped to exactly one brand.
func CheckBrand(brandID string) error {
	if strings.TrimSpace(brandID) == "" {
		return apperror.NewCallerInput("brand", "must not be empty")
	}
	return nil
}

// ParseID parses an entity identity supplied as text.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, apperror.NewCallerInput("id", "must be an integer")
	}
	if id <= 0 {
		return 0, apperror.NewCallerInput("id", "must be positive")
	}
	return id, nil
}
