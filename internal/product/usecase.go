package product

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
)

type UseCase interface {
	ListProducts(ctx context.Context, brandID string, filters *dto.ProductFilters) ([]model.Product, error)
	GetProduct(ctx context.Context, brandID, id string) (*model.Product, error)
}
