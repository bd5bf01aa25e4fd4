package usecase

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/optiongroup"
	"github.com/fekuna/omnipos-catalog-service/internal/optiongroup/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"go.uber.org/zap"
)

type optionGroupUseCase struct {
	repo   optiongroup.Repository
	logger logger.ZapLogger
}

func NewOptionGroupUseCase(repo optiongroup.Repository, log logger.ZapLogger) optiongroup.UseCase {
	return &optionGroupUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *optionGroupUseCase) ListOptionGroups(ctx context.Context, brandID string, filters *dto.OptionGroupFilters) ([]model.OptionGroup, error) {
	if err := model.CheckBrand(brandID); err != nil {
		return nil, err
	}
	if filters == nil {
		filters = &dto.OptionGroupFilters{}
	}

	groups, err := uc.repo.FindAll(ctx, brandID, filters)
	if err != nil {
		uc.logFailure("list option groups", brandID, err)
		return nil, err
	}
	return groups, nil
}

func (uc *optionGroupUseCase) GetOptionGroup(ctx context.Context, brandID, id string) (*model.OptionGroup, error) {
	if err := model.CheckBrand(brandID); err != nil {
		return nil, err
	}
	groupID, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	g, err := uc.repo.FindByID(ctx, brandID, groupID)
	if err != nil {
		uc.logFailure("get option group", brandID, err, zap.Int64("option_group_id", groupID))
		return nil, err
	}
	return g, nil
}

func (uc *optionGroupUseCase) logFailure(op, brandID string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("op", op), zap.String("brand_id", brandID), zap.Error(err))
	switch {
	case apperror.IsValidation(err):
		uc.logger.Error("option group row does not match schema", fields...)
	case apperror.IsInfrastructure(err):
		uc.logger.Error("option group query failed", fields...)
	}
}
