package optiongroup

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/optiongroup/dto"
)

type UseCase interface {
	ListOptionGroups(ctx context.Context, brandID string, filters *dto.OptionGroupFilters) ([]model.OptionGroup, error)
	GetOptionGroup(ctx context.Context, brandID, id string) (*model.OptionGroup, error)
}
