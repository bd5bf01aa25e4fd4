package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/option"
	"github.com/fekuna/omnipos-catalog-service/internal/option/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/httpx"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

type OptionHandler struct {
	uc     option.UseCase
	logger logger.ZapLogger
}

func NewOptionHandler(uc option.UseCase, log logger.ZapLogger) *OptionHandler {
	return &OptionHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OptionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/options", h.ListOptions)
	rg.GET("/options/:id", h.GetOption)
}

func (h *OptionHandler) ListOptions(c *gin.Context) {
	isDefault, err := httpx.QueryBool(c, "is_default", "isDefault")
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	adjustsPrice, err := httpx.QueryBool(c, "adjusts_parent_price", "adjustsParentPrice")
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	groupID, err := httpx.QueryInt64(c, "option_group_id", "optionGroupId")
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	filters := &dto.OptionFilters{
		Name:               httpx.QueryString(c, "name"),
		IsDefault:          isDefault,
		AdjustsParentPrice: adjustsPrice,
		OptionGroupID:      groupID,
	}

	options, err := h.uc.ListOptions(c.Request.Context(), httpx.BrandID(c), filters)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, options)
}

func (h *OptionHandler) GetOption(c *gin.Context) {
	o, err := h.uc.GetOption(c.Request.Context(), httpx.BrandID(c), c.Param("id"))
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, o)
}
