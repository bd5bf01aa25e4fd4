package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/option/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUseCase struct {
	gotBrand   string
	gotFilters *dto.OptionFilters
	err        error
}

func (s *stubUseCase) ListOptions(ctx context.Context, brandID string, filters *dto.OptionFilters) ([]model.Option, error) {
	s.gotBrand = brandID
	s.gotFilters = filters
	if s.err != nil {
		return nil, s.err
	}
	return []model.Option{}, nil
}

func (s *stubUseCase) GetOption(ctx context.Context, brandID, id string) (*model.Option, error) {
	s.gotBrand = brandID
	if s.err != nil {
		return nil, s.err
	}
	price := decimal.RequireFromString("1.25")
	return &model.Option{
		ID:           3,
		Name:         "No Bacon",
		Cost:         decimal.Zero,
		SortOrder:    2,
		Price:        &price,
		OptionGroups: []model.OptionGroupSummary{},
	}, nil
}

func newRouter(uc *stubUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewOptionHandler(uc, logger.NewNop()).RegisterRoutes(r.Group("/brand/:brandId"))
	return r
}

func serve(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestListOptionsParsesFilters(t *testing.T) {
	uc := &stubUseCase{}
	w := serve(newRouter(uc), "/brand/brand-1/options?name=bacon&isDefault=0&adjusts_parent_price=true&optionGroupId=10")

	require.Equal(t, http.StatusOK, w.Code)
	f := uc.gotFilters
	assert.Equal(t, "bacon", f.Name)
	require.NotNil(t, f.IsDefault)
	assert.False(t, *f.IsDefault)
	require.NotNil(t, f.AdjustsParentPrice)
	assert.True(t, *f.AdjustsParentPrice)
	require.NotNil(t, f.OptionGroupID)
	assert.Equal(t, int64(10), *f.OptionGroupID)
}

func TestListOptionsWithoutFilters(t *testing.T) {
	uc := &stubUseCase{}
	w := serve(newRouter(uc), "/brand/brand-1/options")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, &dto.OptionFilters{}, uc.gotFilters)
}

func TestGetOption(t *testing.T) {
	uc := &stubUseCase{}
	w := serve(newRouter(uc), "/brand/brand-1/options/3")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": 3, "name": "No Bacon", "is_default": false, "cost": "0",
		"adjusts_parent_calories": false, "adjusts_parent_price": false,
		"sort_order": 2, "price": "1.25", "option_groups": []
	}`, w.Body.String())
}

func TestGetOptionErrors(t *testing.T) {
	w := serve(newRouter(&stubUseCase{err: apperror.NewCallerInput("id", "must be an integer")}), "/brand/brand-1/options/x")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "invalid id: must be an integer"}`, w.Body.String())

	w = serve(newRouter(&stubUseCase{err: apperror.ErrNotFound}), "/brand/brand-2/options/3")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Not Found"}`, w.Body.String())
}
