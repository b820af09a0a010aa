package api

import (
	"net/http"
	"time"

	"rte-collector/internal/config"
	"rte-collector/internal/services"

	"github.com/gin-gonic/gin"
)

// APIHandler serves the read-only status surface of the collector daemon.
// Forecast data itself is only ever published as snapshot files.
type APIHandler struct {
	cfg       *config.Config
	collector *services.Collector
	startedAt time.Time
}

func SetupRoutes(r *gin.Engine, cfg *config.Config, collector *services.Collector) *APIHandler {
	handler := &APIHandler{
		cfg:       cfg,
		collector: collector,
		startedAt: time.Now(),
	}

	r.GET("/health", handler.Health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/stats", handler.GetStats)
		v1.GET("/config", handler.GetConfig)
	}

	return handler
}

func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "uptime": time.Since(h.startedAt).String()})
}

func (h *APIHandler) GetStats(c *gin.Context) {
	stats := h.collector.Stats()
	c.JSON(http.StatusOK, gin.H{
		"runs":         stats.Runs,
		"failures":     stats.Failures,
		"rows_written": stats.RowsWritten,
		"last_run":     stats.LastRun,
		"last_error":   stats.LastError,
		"last_files":   stats.LastFiles,
	})
}

func (h *APIHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"client_id":  maskSecret(h.cfg.ClientID),
		"token_url":  h.cfg.TokenURL,
		"data_url":   h.cfg.DataURL,
		"start_date": h.cfg.StartDate,
		"end_date":   h.cfg.EndDate,
		"timezone":   h.cfg.Timezone,
		"interval":   h.cfg.Interval.String(),
	})
}

func maskSecret(s string) string {
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "****" + s[len(s)-4:]
}
