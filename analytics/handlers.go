package analytics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler handles analytics HTTP requests.
type Handler struct {
	store        *Store
	visitLimiter *rateLimiter
}

// NewHandler creates a new analytics handler.
// The visit endpoint is rate-limited to 60 requests per IP per minute.
func NewHandler(store *Store) *Handler {
	return &Handler{
		store:        store,
		visitLimiter: newRateLimiter(60, time.Minute),
	}
}

// VisitRequest is the expected request body for the visit endpoint.
type VisitRequest struct {
	Path     string `json:"path"`
	Locale   string `json:"locale"`
	Referrer string `json:"referrer"`
}

// Input validation limits for the visit endpoint.
const (
	maxPathLen     = 2048
	maxLocaleLen   = 16
	maxReferrerLen = 2048
)

func validateVisitRequest(req *VisitRequest) error {
	if req.Path == "" {
		return fmt.Errorf("path is required")
	}
	if len(req.Path) > maxPathLen {
		return fmt.Errorf("path exceeds maximum length of %d", maxPathLen)
	}
	if len(req.Locale) > maxLocaleLen {
		return fmt.Errorf("locale exceeds maximum length of %d", maxLocaleLen)
	}
	if len(req.Referrer) > maxReferrerLen {
		return fmt.Errorf("referrer exceeds maximum length of %d", maxReferrerLen)
	}
	return nil
}

// RecordVisit handles incoming page view beacons from the frontend.
func (h *Handler) RecordVisit(c echo.Context) error {
	// Rate limit by IP to prevent analytics flooding.
	if !h.visitLimiter.allow(c.RealIP()) {
		return c.NoContent(http.StatusTooManyRequests)
	}

	// Honor Do Not Track.
	if c.Request().Header.Get("DNT") == "1" {
		return c.NoContent(http.StatusNoContent)
	}

	var req VisitRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if err := validateVisitRequest(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	userAgent := c.Request().UserAgent()
	if IsBot(userAgent) {
		return c.NoContent(http.StatusNoContent)
	}

	ip := c.RealIP()
	browser, os, device := ParseUserAgent(userAgent)

	visit := &Visit{
		VisitorID: GenerateVisitorID(ip, userAgent),
		IPHash:    HashIP(ip),
		Browser:   browser,
		OS:        os,
		Device:    device,
		Locale:    req.Locale,
		Path:      req.Path,
		Referrer:  CleanReferrer(req.Referrer),
		Timestamp: time.Now().UTC(),
	}

	if err := h.store.SaveVisit(visit); err != nil {
		c.Logger().Errorf("save visit: %v", err)
	}

	return c.NoContent(http.StatusNoContent)
}

// StatsResponse is the JSON response for the stats endpoint.
type StatsResponse struct {
	Stats      *Stats `json:"stats"`
	Realtime   int    `json:"realtime_visitors"`
	PeriodDays int    `json:"period_days"`
}

// GetStats returns analytics statistics as JSON.
func (h *Handler) GetStats(c echo.Context) error {
	days := parsePeriod(c.QueryParam("period"))

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -days).Truncate(24 * time.Hour)
	to := now.Add(24 * time.Hour).Truncate(24 * time.Hour)

	stats, err := h.store.GetStats(from, to)
	if err != nil {
		c.Logger().Errorf("get stats: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	realtime, _ := h.store.GetRealtimeVisitors()

	return c.JSON(http.StatusOK, StatsResponse{
		Stats:      stats,
		Realtime:   realtime,
		PeriodDays: days,
	})
}

// parsePeriod maps the period query parameter to a day count.
func parsePeriod(period string) int {
	switch period {
	case "today":
		return 1
	case "week":
		return 7
	case "month":
		return 30
	case "year":
		return 365
	default:
		return 7
	}
}

// RegisterRoutes registers analytics routes with the Echo router.
// The stats endpoint is guarded by authMiddleware.
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	e.POST("/api/analytics/visit", h.RecordVisit)
	e.GET("/admin/analytics/stats/", h.GetStats, authMiddleware)
}
