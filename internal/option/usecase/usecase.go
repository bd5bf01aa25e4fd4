package usecase

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/option"
	"github.com/fekuna/omnipos-catalog-service/internal/option/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"go.uber.org/zap"
)

type optionUseCase struct {
	repo   option.Repository
	logger logger.ZapLogger
}

func NewOptionUseCase(repo option.Repository, log logger.ZapLogger) option.UseCase {
	return &optionUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *optionUseCase) ListOptions(ctx context.Context, brandID string, filters *dto.OptionFilters) ([]model.Option, error) {
	if err := model.CheckBrand(brandID); err != nil {
		return nil, err
	}
	if filters == nil {
		filters = &dto.OptionFilters{}
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	options, err := uc.repo.FindAll(ctx, brandID, filters)
	if err != nil {
		uc.logFailure("list options", brandID, err)
		return nil, err
	}
	return options, nil
}

func (uc *optionUseCase) GetOption(ctx context.Context, brandID, id string) (*model.Option, error) {
	if err := model.CheckBrand(brandID); err != nil {
		return nil, err
	}
	optionID, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	o, err := uc.repo.FindByID(ctx, brandID, optionID)
	if err != nil {
		uc.logFailure("get option", brandID, err, zap.Int64("option_id", optionID))
		return nil, err
	}
	return o, nil
}

func (uc *optionUseCase) logFailure(op, brandID string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("op", op), zap.String("brand_id", brandID), zap.Error(err))
	switch {
	case apperror.IsValidation(err):
		uc.logger.Error("option row does not match schema", fields...)
	case apperror.IsInfrastructure(err):
		uc.logger.Error("option query failed", fields...)
	}
}
