package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/httpx"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

// RegisterRoutes mounts the handlers under a /brand/:brandId group.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/category", h.ListCategories)
	rg.GET("/category/:id", h.GetCategory)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	filters := &dto.CategoryFilters{
		Name:   httpx.QueryString(c, "name"),
		ExtRef: httpx.QueryString(c, "extref"),
	}

	cats, err := h.uc.ListCategories(c.Request.Context(), httpx.BrandID(c), filters)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, cats)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	cat, err := h.uc.GetCategory(c.Request.Context(), httpx.BrandID(c), c.Param("id"))
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, cat)
}
