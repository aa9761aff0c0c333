package httpapi

import (
	"github.com/gin-gonic/gin"

	"leetcode-relay/internal/adapter/metrics"
	"leetcode-relay/internal/domain/ports"
)

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(h *Handler, collector *metrics.Collector, log ports.Logger) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(RequestID())
	router.Use(RequestLogger(log))
	router.Use(collector.Middleware())
	router.Use(Recovery(log))
	router.Use(CORS())

	router.GET("/health", h.Health)
	router.GET("/health/live", h.Live)
	router.GET("/metrics", gin.WrapH(collector.Handler()))

	api := router.Group("/api")
	api.POST("/leetcode", h.DescribeProblem)
	api.GET("/leetcode/daily", h.DescribeDaily)

	return router
}
