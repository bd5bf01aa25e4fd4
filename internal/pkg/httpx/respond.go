package httpx

import (
	"errors"
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes the status for err's kind. Internal fault detail is kept out
// of the response body. Validation and infrastructure faults are already
// logged by the usecases, so only unclassified faults are logged here.
func Error(c *gin.Context, log logger.ZapLogger, err error) {
	status := apperror.HTTPStatus(err)

	switch {
	case status >= http.StatusInternalServerError:
		if !apperror.IsValidation(err) && !apperror.IsInfrastructure(err) {
			log.Error("request failed",
				zap.String("request_id", RequestID(c)),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
		}
		c.AbortWithStatusJSON(status, ErrorResponse{Error: http.StatusText(status)})
	case errors.Is(err, apperror.ErrNotFound):
		c.AbortWithStatusJSON(status, ErrorResponse{Error: http.StatusText(status)})
	default:
		c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
	}
}
