// Package query filters the fact table and derives the candidate values of
// the dashboard's selection widgets.
package query

import "github.com/FernandoGuns/Dash-Vendas/internal/model"

// Apply returns the rows matching every active field of the selection.
// Filters are conjunctive; an empty field imposes no restriction. The base
// table is never mutated, so Apply is safe to call repeatedly with different
// selections.
func Apply(rows []model.FactRow, sel model.FilterSelection) []model.FactRow {
	if sel.IsEmpty() {
		out := make([]model.FactRow, len(rows))
		copy(out, rows)
		return out
	}

	products := toSet(sel.Products)
	stores := toSet(sel.Stores)
	customers := toSet(sel.Customers)

	out := make([]model.FactRow, 0, len(rows))
	for _, row := range rows {
		if sel.ProductType != "" && row.ProductType != sel.ProductType {
			continue
		}
		if sel.Brand != "" && row.Brand != sel.Brand {
			continue
		}
		if products != nil {
			if _, ok := products[row.ProductName]; !ok {
				continue
			}
		}
		if stores != nil {
			if _, ok := stores[row.StoreName]; !ok {
				continue
			}
		}
		if customers != nil {
			if _, ok := customers[row.CustomerName]; !ok {
				continue
			}
		}
		out = append(out, row)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
