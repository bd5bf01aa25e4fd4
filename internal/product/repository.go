package product

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
)

type Repository interface {
	FindAll(ctx context.Context, brandID string, filters *dto.ProductFilters) ([]model.Product, error)
	// FindByID returns apperror.ErrNotFound when no product of brandID has id.
	FindByID(ctx context.Context, brandID string, id int64) (*model.Product, error)
}
