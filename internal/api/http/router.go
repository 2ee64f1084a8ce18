package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uswah23/smart-bike-map/internal/logger"
)

// HealthCheck reports the health of one dependency.
type HealthCheck struct {
	// Name labels the dependency in the response.
	Name string
	// Check returns nil when the dependency is usable.
	Check func(ctx context.Context) error
}

type healthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// NewRouter builds the gin engine with health, metrics and API routes.
func NewRouter(h *Handler, metrics http.Handler, checks ...HealthCheck) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", healthHandler(checks))

	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	h.Register(r.Group("/api"))

	return r
}

func healthHandler(checks []HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := healthResponse{
			Status:     "ok",
			Components: make(map[string]string, len(checks)),
		}

		code := http.StatusOK

		for _, check := range checks {
			if err := check.Check(c.Request.Context()); err != nil {
				response.Components[check.Name] = err.Error()
				response.Status = "degraded"
				code = http.StatusServiceUnavailable

				continue
			}

			response.Components[check.Name] = "ok"
		}

		c.JSON(code, response)
	}
}

// requestLogger logs every request at debug level.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.DebugKV(c.Request.Context(), "HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
