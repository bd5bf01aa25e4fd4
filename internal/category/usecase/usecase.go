package usecase

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, brandID string, filters *dto.CategoryFilters) ([]model.Category, error) {
	if err := model.CheckBrand(brandID); err != nil {
		return nil, err
	}
	if filters == nil {
		filters = &dto.CategoryFilters{}
	}

	categories, err := uc.repo.FindAll(ctx, brandID, filters)
	if err != nil {
		uc.logFailure("list categories", brandID, err)
		return nil, err
	}
	return categories, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, brandID, id string) (*model.Category, error) {
	if err := model.CheckBrand(brandID); err != nil {
		return nil, err
	}
	categoryID, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	c, err := uc.repo.FindByID(ctx, brandID, categoryID)
	if err != nil {
		uc.logFailure("get category", brandID, err, zap.Int64("category_id", categoryID))
		return nil, err
	}
	return c, nil
}

// logFailure records internal faults. Not-found is an expected outcome and
// is left to the caller.
func (uc *categoryUseCase) logFailure(op, brandID string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("op", op), zap.String("brand_id", brandID), zap.Error(err))
	switch {
	case apperror.IsValidation(err):
		uc.logger.Error("category row does not match schema", fields...)
	case apperror.IsInfrastructure(err):
		uc.logger.Error("category query failed", fields...)
	}
}
