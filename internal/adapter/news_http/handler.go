package news_http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/usecase"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	ingestUsecase  usecase.IngestArticlesUsecase
	queryUsecase   usecase.QueryNewsUsecase
	impactUsecase  usecase.ImpactAnalysisUsecase
	refreshUsecase usecase.RefreshNewsUsecase
	maintUsecase   usecase.MaintenanceUsecase
}

func NewHandler(
	ingestUsecase usecase.IngestArticlesUsecase,
	queryUsecase usecase.QueryNewsUsecase,
	impactUsecase usecase.ImpactAnalysisUsecase,
	refreshUsecase usecase.RefreshNewsUsecase,
	maintUsecase usecase.MaintenanceUsecase,
) *Handler {
	return &Handler{
		ingestUsecase:  ingestUsecase,
		queryUsecase:   queryUsecase,
		impactUsecase:  impactUsecase,
		refreshUsecase: refreshUsecase,
		maintUsecase:   maintUsecase,
	}
}

// GET /v1/health
func (h *Handler) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "geonews-analyzer",
	})
}

// POST /v1/news/refresh
func (h *Handler) RefreshNews(ctx echo.Context) error {
	limit := queryInt(ctx, "limit", 0)

	result, err := h.refreshUsecase.Refresh(ctx.Request().Context(), limit)
	if err != nil {
		return ctx.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(http.StatusOK, result)
}

// POST /v1/news/classify
func (h *Handler) ClassifyNews(ctx echo.Context) error {
	var req struct {
		Articles []domain.RawArticle `json:"articles"`
	}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if len(req.Articles) == 0 {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "no articles provided"})
	}

	result, err := h.ingestUsecase.Ingest(ctx.Request().Context(), req.Articles)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(http.StatusOK, result)
}

// GET /v1/news/latest
func (h *Handler) LatestNews(ctx echo.Context) error {
	limit := queryInt(ctx, "limit", 0)

	articles, err := h.queryUsecase.Latest(ctx.Request().Context(), limit)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"count":    len(articles),
		"articles": articles,
	})
}

// GET /v1/news/by-region/:region
func (h *Handler) NewsByRegion(ctx echo.Context) error {
	region := ctx.Param("region")
	limit := queryInt(ctx, "limit", 0)

	articles, err := h.queryUsecase.ByRegion(ctx.Request().Context(), region, limit)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"region":   region,
		"count":    len(articles),
		"articles": articles,
	})
}

// GET /v1/news/range
func (h *Handler) NewsByDateRange(ctx echo.Context) error {
	start, err := parseDate(ctx.QueryParam("start"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid start date"})
	}
	end, err := parseDate(ctx.QueryParam("end"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid end date"})
	}
	limit := queryInt(ctx, "limit", 0)

	articles, err := h.queryUsecase.ByDateRange(ctx.Request().Context(), start, end, limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"count":    len(articles),
		"articles": articles,
	})
}

// POST /v1/impact
func (h *Handler) AnalyzeImpact(ctx echo.Context) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if req.Text == "" {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "no text provided"})
	}

	return ctx.JSON(http.StatusOK, h.impactUsecase.Analyze(req.Text))
}

// GET /v1/stocks/:sector
func (h *Handler) SectorStocks(ctx echo.Context) error {
	sector := ctx.Param("sector")

	result, err := h.impactUsecase.SectorStocks(ctx.Request().Context(), sector)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if result == nil {
		return ctx.JSON(http.StatusNotFound, map[string]string{"error": "unknown sector: " + sector})
	}

	return ctx.JSON(http.StatusOK, result)
}

// POST /v1/analysis/full
func (h *Handler) FullAnalysis(ctx echo.Context) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if req.Text == "" {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "no text provided"})
	}

	result, err := h.impactUsecase.FullAnalysis(ctx.Request().Context(), req.Text)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(http.StatusOK, result)
}

// GET /v1/historical
func (h *Handler) Historical(ctx echo.Context) error {
	eventType := ctx.QueryParam("event_type")
	if eventType == "" {
		eventType = "general"
	}
	days := queryInt(ctx, "days", 30)

	return ctx.JSON(http.StatusOK, h.impactUsecase.Historical(eventType, days))
}

// DELETE /v1/news/purge
func (h *Handler) PurgeNews(ctx echo.Context) error {
	days := queryInt(ctx, "days", 0)

	deleted, err := h.maintUsecase.PurgeOlderThan(ctx.Request().Context(), days)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"deleted": deleted,
	})
}

func queryInt(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// parseDate accepts RFC3339 timestamps and bare dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
