package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FernandoGuns/Dash-Vendas/internal/chart"
	"github.com/FernandoGuns/Dash-Vendas/internal/model"
	"github.com/FernandoGuns/Dash-Vendas/internal/query"
)

// DashboardResponse carries one refresh of every chart.
type DashboardResponse struct {
	Matched int           `json:"matched"`
	Charts  []chart.Chart `json:"charts"`
}

// Dashboard applies the filter selection to the fact table and recomputes
// all six charts. A selection referencing values no longer present simply
// matches nothing; the charts come back empty rather than erroring.
// POST /api/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	var sel model.FilterSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selection payload"})
		return
	}

	subset := query.Apply(h.snap.Rows, sel)
	c.JSON(http.StatusOK, DashboardResponse{
		Matched: len(subset),
		Charts:  chart.BuildAll(subset, h.topN),
	})
}
