package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FernandoGuns/Dash-Vendas/internal/fact"
	"github.com/FernandoGuns/Dash-Vendas/internal/query"
)

// Handler serves the dashboard API over an immutable fact-table snapshot.
type Handler struct {
	snap      *fact.Snapshot
	index     *query.Index
	topN      int
	exportDir string
	exportTTL time.Duration
	downloads *downloadStore
}

// NewHandler creates the API handler. The filter index is computed once: the
// snapshot never changes, so neither do the widget candidate lists (brand
// excepted, which cascades per request).
func NewHandler(snap *fact.Snapshot, topN int, exportDir string, exportTTL time.Duration) *Handler {
	if topN <= 0 {
		topN = 10
	}
	return &Handler{
		snap:      snap,
		index:     query.NewIndex(snap.Rows),
		topN:      topN,
		exportDir: exportDir,
		exportTTL: exportTTL,
		downloads: newDownloadStore(),
	}
}

// RegisterRoutes mounts the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	// Filter widgets
	router.GET("/filters", h.GetFilters)
	router.GET("/brands", h.GetBrands)

	// Chart refresh
	router.POST("/dashboard", h.Dashboard)

	// Filtered export
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
