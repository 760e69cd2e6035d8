package api

import (
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FernandoGuns/Dash-Vendas/internal/exporter"
	"github.com/FernandoGuns/Dash-Vendas/internal/model"
	"github.com/FernandoGuns/Dash-Vendas/internal/query"
)

type exportResponse struct {
	Token string `json:"token"`
	Rows  int    `json:"rows"`
}

// Export writes the filtered subset to an .xlsx workbook and returns an
// expiring download token.
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var sel model.FilterSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selection payload"})
		return
	}

	subset := query.Apply(h.snap.Rows, sel)

	name := fmt.Sprintf("vendas-%s.xlsx", time.Now().Format("20060102-150405"))
	path := filepath.Join(h.exportDir, name)
	if err := exporter.WriteFactFile(subset, path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token := h.downloads.put(path, len(subset), h.exportTTL)
	c.JSON(http.StatusOK, exportResponse{Token: token, Rows: len(subset)})
}

// DownloadExport streams a previously exported workbook. Tokens expire and
// unknown ones return 404.
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	d, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download not found or expired"})
		return
	}

	filename := filepath.Base(d.filePath)
	c.Header("Content-Disposition", buildExportContentDisposition(filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(d.filePath)
}

func buildExportContentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s",
		filename, url.PathEscape(filename))
}
