package option

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/option/dto"
)

type UseCase interface {
	ListOptions(ctx context.Context, brandID string, filters *dto.OptionFilters) ([]model.Option, error)
	GetOption(ctx context.Context, brandID, id string) (*model.Option, error)
}
