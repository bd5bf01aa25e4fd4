package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/optiongroup"
	"github.com/fekuna/omnipos-catalog-service/internal/optiongroup/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/httpx"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

type OptionGroupHandler struct {
	uc     optiongroup.UseCase
	logger logger.ZapLogger
}

func NewOptionGroupHandler(uc optiongroup.UseCase, log logger.ZapLogger) *OptionGroupHandler {
	return &OptionGroupHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OptionGroupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/option-group", h.ListOptionGroups)
	rg.GET("/option-group/:id", h.GetOptionGroup)
}

func (h *OptionGroupHandler) ListOptionGroups(c *gin.Context) {
	mandatory, err := httpx.QueryBool(c, "mandatory")
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	supportsChoice, err := httpx.QueryBool(c, "supports_choice_quantities", "supportsChoiceQuantities")
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	filters := &dto.OptionGroupFilters{
		Description:              httpx.QueryString(c, "description"),
		ExplanationText:          httpx.QueryString(c, "explanation_text", "explanationText"),
		Mandatory:                mandatory,
		SupportsChoiceQuantities: supportsChoice,
	}

	groups, err := h.uc.ListOptionGroups(c.Request.Context(), httpx.BrandID(c), filters)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

func (h *OptionGroupHandler) GetOptionGroup(c *gin.Context) {
	g, err := h.uc.GetOptionGroup(c.Request.Context(), httpx.BrandID(c), c.Param("id"))
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, g)
}
