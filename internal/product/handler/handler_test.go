package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUseCase struct {
	listCalls  int
	gotBrand   string
	gotFilters *dto.ProductFilters
	gotID      string
	err        error
}

func (s *stubUseCase) ListProducts(ctx context.Context, brandID string, filters *dto.ProductFilters) ([]model.Product, error) {
	s.listCalls++
	s.gotBrand = brandID
	s.gotFilters = filters
	if s.err != nil {
		return nil, s.err
	}
	return []model.Product{}, nil
}

func (s *stubUseCase) GetProduct(ctx context.Context, brandID, id string) (*model.Product, error) {
	s.gotBrand = brandID
	s.gotID = id
	if s.err != nil {
		return nil, s.err
	}
	return &model.Product{
		ID:             1,
		CategoryID:     1,
		ChainProductID: 101,
		Name:           "Turkey Club",
		Cost:           decimal.RequireFromString("4.99"),
		ExtRef:         "ext-1",
		OptionGroups:   []model.OptionGroupSummary{{ID: 10, Description: "Bread"}},
	}, nil
}

func newRouter(uc *stubUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewProductHandler(uc, logger.NewNop()).RegisterRoutes(r.Group("/brand/:brandId"))
	return r
}

func serve(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestListProductsParsesFilters(t *testing.T) {
	uc := &stubUseCase{}
	w := serve(newRouter(uc), "/brand/brand-1/products?name=club&categoryId=2&is_disabled=FALSE&extref=ext-1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.Equal(t, "brand-1", uc.gotBrand)

	f := uc.gotFilters
	assert.Equal(t, "club", f.Name)
	assert.Equal(t, "ext-1", f.ExtRef)
	require.NotNil(t, f.CategoryID)
	assert.Equal(t, int64(2), *f.CategoryID)
	require.NotNil(t, f.IsDisabled)
	assert.False(t, *f.IsDisabled)
}

func TestListProductsRejectsBadParams(t *testing.T) {
	for _, target := range []string{
		"/brand/brand-1/products?category_id=two",
		"/brand/brand-1/products?isDisabled=maybe",
	} {
		uc := &stubUseCase{}
		w := serve(newRouter(uc), target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Zero(t, uc.listCalls, target)
	}
}

func TestGetProduct(t *testing.T) {
	uc := &stubUseCase{}
	w := serve(newRouter(uc), "/brand/brand-1/products/1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", uc.gotID)
	assert.JSONEq(t, `{
		"id": 1, "category_id": 1, "chainproduct_id": 101, "name": "Turkey Club",
		"description": null, "cost": "4.99", "base_calories": null, "max_calories": null,
		"extref": "ext-1", "is_disabled": false, "minimum_quantity": 0, "quantity_increment": 0,
		"short_description": null, "sort_order": 0,
		"option_groups": [{"id": 10, "description": "Bread"}]
	}`, w.Body.String())
}

func TestGetProductErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{apperror.ErrNotFound, http.StatusNotFound},
		{apperror.NewCallerInput("id", "must be positive"), http.StatusBadRequest},
		{apperror.Infrastructure("query product", context.DeadlineExceeded), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w := serve(newRouter(&stubUseCase{err: tt.err}), "/brand/brand-1/products/0")
		assert.Equal(t, tt.status, w.Code, tt.err.Error())
	}
}
