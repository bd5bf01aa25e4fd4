package category

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context, brandID string, filters *dto.CategoryFilters) ([]model.Category, error)
	// FindByID returns apperror.ErrNotFound when no category of brandID has id.
	FindByID(ctx context.Context, brandID string, id int64) (*model.Category, error)
}
