package category

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type UseCase interface {
	ListCategories(ctx context.Context, brandID string, filters *dto.CategoryFilters) ([]model.Category, error)
	GetCategory(ctx context.Context, brandID, id string) (*model.Category, error)
}
