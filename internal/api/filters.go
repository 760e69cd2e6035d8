package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FernandoGuns/Dash-Vendas/internal/query"
)

// GetFilters returns the candidate values of every selection widget. The
// brand list is empty here: it depends on the selected product type and is
// fetched through GET /api/brands.
// GET /api/filters
func (h *Handler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.index)
}

type brandsResponse struct {
	ProductType string   `json:"productType"`
	Brands      []string `json:"brands"`
}

// GetBrands returns the brand candidates for the selected product type; an
// absent type yields an empty list. This is the cascading half of the filter
// index and is recomputed on every type change, before any chart refresh.
// GET /api/brands?type=Shoes
func (h *Handler) GetBrands(c *gin.Context) {
	productType := c.Query("type")
	c.JSON(http.StatusOK, brandsResponse{
		ProductType: productType,
		Brands:      query.BrandsForType(h.snap.Rows, productType),
	})
}
