// Package server assembles the gin engine that exposes the catalog
// handlers under /brand/:brandId.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/pkg/httpx"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Registrar is implemented by every entity handler.
type Registrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Options struct {
	Development    bool
	QueryTimeout   time.Duration
	TrustedProxies []string
}

func NewRouter(opts Options, log logger.ZapLogger, db Pinger, handlers ...Registrar) (*gin.Engine, error) {
	if !opts.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, err
	}
	r.Use(RequestID(), RequestLogger(log), Recovery(log))

	r.GET("/healthz", health(db, log))

	brand := r.Group("/brand/:"+httpx.BrandParam, QueryTimeout(opts.QueryTimeout))
	for _, h := range handlers {
		h.RegisterRoutes(brand)
	}

	return r, nil
}

func health(db Pinger, log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
