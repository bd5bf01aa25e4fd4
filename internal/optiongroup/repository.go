package optiongroup

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/optiongroup/dto"
)

type Repository interface {
	FindAll(ctx context.Context, brandID string, filters *dto.OptionGroupFilters) ([]model.OptionGroup, error)
	// FindByID returns apperror.ErrNotFound when no option group of brandID has id.
	FindByID(ctx context.Context, brandID string, id int64) (*model.OptionGroup, error)
}
