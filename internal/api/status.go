package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse describes the loaded fact table.
type StatusResponse struct {
	Initialized   bool   `json:"initialized"`
	FactRows      int    `json:"factRows"`
	CustomerCount int    `json:"customerCount"`
	ProductCount  int    `json:"productCount"`
	StoreCount    int    `json:"storeCount"`
	BuiltAt       string `json:"builtAt"`
}

// GetStatus reports fact-table counts and build time.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Initialized:   len(h.snap.Rows) > 0,
		FactRows:      len(h.snap.Rows),
		CustomerCount: h.snap.CustomerCount,
		ProductCount:  h.snap.ProductCount,
		StoreCount:    h.snap.StoreCount,
		BuiltAt:       h.snap.BuiltAt.Format("2006-01-02 15:04:05"),
	})
}
