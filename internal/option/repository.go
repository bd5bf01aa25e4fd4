package option

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/option/dto"
)

type Repository interface {
	FindAll(ctx context.Context, brandID string, filters *dto.OptionFilters) ([]model.Option, error)
	// FindByID returns apperror.ErrNotFound when no option of brandID has id.
	FindByID(ctx context.Context, brandID string, id int64) (*model.Option, error)
}
