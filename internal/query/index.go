package query

import (
	"sort"

	"github.com/FernandoGuns/Dash-Vendas/internal/model"
)

// Index holds the sorted distinct values of each filterable dimension.
// Brands is intentionally empty: brand candidates cascade from the selected
// product type and are served by BrandsForType per request.
type Index struct {
	ProductTypes []string `json:"productTypes"`
	Brands       []string `json:"brands"`
	Products     []string `json:"products"`
	Stores       []string `json:"stores"`
	Customers    []string `json:"customers"`
}

// NewIndex extracts the widget candidate lists from the fact table. Null
// (empty) dimension values are never offered as candidates.
func NewIndex(rows []model.FactRow) *Index {
	return &Index{
		ProductTypes: distinct(rows, func(r model.FactRow) string { return r.ProductType }),
		Brands:       []string{},
		Products:     distinct(rows, func(r model.FactRow) string { return r.ProductName }),
		Stores:       distinct(rows, func(r model.FactRow) string { return r.StoreName }),
		Customers:    distinct(rows, func(r model.FactRow) string { return r.CustomerName }),
	}
}

// BrandsForType returns the sorted distinct brands among rows of the given
// product type. With no type selected there are no candidates: the brand
// widget stays empty until the type widget narrows it.
func BrandsForType(rows []model.FactRow, productType string) []string {
	if productType == "" {
		return []string{}
	}
	seen := make(map[string]struct{})
	for _, row := range rows {
		if row.ProductType != productType || row.Brand == "" {
			continue
		}
		seen[row.Brand] = struct{}{}
	}
	return sortedKeys(seen)
}

func distinct(rows []model.FactRow, key func(model.FactRow) string) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		if v := key(row); v != "" {
			seen[v] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
