package usecase

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) ListProducts(ctx context.Context, brandID string, filters *dto.ProductFilters) ([]model.Product, error) {
	if err := model.CheckBrand(brandID); err != nil {
		return nil, err
	}
	if filters == nil {
		filters = &dto.ProductFilters{}
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	products, err := uc.repo.FindAll(ctx, brandID, filters)
	if err != nil {
		uc.logFailure("list products", brandID, err)
		return nil, err
	}
	return products, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, brandID, id string) (*model.Product, error) {
	if err := model.CheckBrand(brandID); err != nil {
		return nil, err
	}
	productID, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	p, err := uc.repo.FindByID(ctx, brandID, productID)
	if err != nil {
		uc.logFailure("get product", brandID, err, zap.Int64("product_id", productID))
		return nil, err
	}
	return p, nil
}

func (uc *productUseCase) logFailure(op, brandID string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("op", op), zap.String("brand_id", brandID), zap.Error(err))
	switch {
	case apperror.IsValidation(err):
		uc.logger.Error("product row does not match schema", fields...)
	case apperror.IsInfrastructure(err):
		uc.logger.Error("product query failed", fields...)
	}
}
