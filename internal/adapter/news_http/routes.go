package news_http

import "github.com/labstack/echo/v4"

// RegisterRoutes wires all public endpoints under /v1. The rate limiter is
// optional; pass nil to register without throttling.
func RegisterRoutes(e *echo.Echo, h *Handler, rl *RateLimiter) {
	v1 := e.Group("/v1")
	if rl != nil {
		v1.Use(rl.RateLimit())
	}

	v1.GET("/health", h.Health)

	v1.POST("/news/refresh", h.RefreshNews)
	v1.POST("/news/classify", h.ClassifyNews)
	v1.GET("/news/latest", h.LatestNews)
	v1.GET("/news/by-region/:region", h.NewsByRegion)
	v1.GET("/news/range", h.NewsByDateRange)
	v1.DELETE("/news/purge", h.PurgeNews)

	v1.POST("/impact", h.AnalyzeImpact)
	v1.GET("/stocks/:sector", h.SectorStocks)
	v1.POST("/analysis/full", h.FullAnalysis)
	v1.GET("/historical", h.Historical)
}
