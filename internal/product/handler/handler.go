package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/pkg/httpx"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:id", h.GetProduct)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	categoryID, err := httpx.QueryInt64(c, "category_id", "categoryId")
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	isDisabled, err := httpx.QueryBool(c, "is_disabled", "isDisabled")
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	filters := &dto.ProductFilters{
		Name:        httpx.QueryString(c, "name"),
		Description: httpx.QueryString(c, "description"),
		ExtRef:      httpx.QueryString(c, "extref"),
		CategoryID:  categoryID,
		IsDisabled:  isDisabled,
	}

	products, err := h.uc.ListProducts(c.Request.Context(), httpx.BrandID(c), filters)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.uc.GetProduct(c.Request.Context(), httpx.BrandID(c), c.Param("id"))
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
