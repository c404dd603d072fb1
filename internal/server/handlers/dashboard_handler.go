package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ovalle/ganaderia/internal/repository/mongodb"
	"github.com/ovalle/ganaderia/internal/service/dashboard"
)

// defaultAlertLimit is how many alerts the widget shows by default.
const defaultAlertLimit = 5

// DashboardHandler serves the derived dashboard stats and alert feed.
type DashboardHandler struct {
	svc    *dashboard.Service
	repo   mongodb.Repository
	logger *zap.Logger
}

// NewDashboardHandler constructs the HTTP handler adapter.
func NewDashboardHandler(svc *dashboard.Service, repo mongodb.Repository, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{svc: svc, repo: repo, logger: logger}
}

// Stats recomputes and returns the dashboard snapshot. Fetch failures
// surface as an all-zero snapshot, indistinguishable from an empty farm.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats := h.svc.Stats(c.Request.Context(), time.Now())
	c.JSON(http.StatusOK, stats)
}

// Alertas returns the derived alert feed, truncated to the requested
// limit (default 5, the widget size). limite=0 returns the full feed.
func (h *DashboardHandler) Alertas(c *gin.Context) {
	limit := defaultAlertLimit
	if raw := c.Query("limite"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limite must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	alertas := h.svc.Alertas(c.Request.Context(), time.Now())
	if limit > 0 && len(alertas) > limit {
		alertas = alertas[:limit]
	}

	c.JSON(http.StatusOK, gin.H{"items": alertas, "total": len(alertas)})
}

// UltimoSnapshot returns the last stored stats snapshot, preferring the
// in-memory copy over the database.
func (h *DashboardHandler) UltimoSnapshot(c *gin.Context) {
	if snapshot, ok := h.svc.Latest(); ok {
		c.JSON(http.StatusOK, snapshot)
		return
	}

	snapshot, err := h.repo.LatestSnapshot(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load latest snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load snapshot"})
		return
	}
	if snapshot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no snapshot stored yet"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
