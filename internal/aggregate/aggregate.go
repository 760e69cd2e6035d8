// Package aggregate holds the six chart reducers. Each is a pure function
// of the filtered subset producing an ordered (label, value) series; rows
// whose line total is not derivable contribute nothing to any sum.
package aggregate

import (
	"sort"
	"strconv"

	"github.com/FernandoGuns/Dash-Vendas/internal/model"
)

// SalesByYear groups by sale year and sums line totals, years ascending.
// Rows without a parsable date carry no year and are excluded.
func SalesByYear(rows []model.FactRow) model.Series {
	totals := make(map[int]float64)
	for _, row := range rows {
		if row.Year == nil || row.LineTotal == nil {
			continue
		}
		totals[*row.Year] += *row.LineTotal
	}

	years := make([]int, 0, len(totals))
	for y := range totals {
		years = append(years, y)
	}
	sort.Ints(years)

	series := make(model.Series, 0, len(years))
	for _, y := range years {
		series = append(series, model.Point{Label: strconv.Itoa(y), Value: totals[y]})
	}
	return series
}

// TopCustomers sums line totals per customer and keeps the n largest,
// descending.
func TopCustomers(rows []model.FactRow, n int) model.Series {
	return topN(sumBy(rows, func(r model.FactRow) string { return r.CustomerName }), n)
}

// TopProducts sums line totals per product and keeps the n largest,
// descending. Ties keep first-encountered row order.
func TopProducts(rows []model.FactRow, n int) model.Series {
	return topN(sumBy(rows, func(r model.FactRow) string { return r.ProductName }), n)
}

// SalesByStore sums line totals per store in first-encountered order.
func SalesByStore(rows []model.FactRow) model.Series {
	return sumBy(rows, func(r model.FactRow) string { return r.StoreName })
}

// ShareByType sums line totals per product type, feeding the pie chart.
// Rows with no product type are excluded here rather than at the chart
// layer, so every consumer sees the same buckets.
func ShareByType(rows []model.FactRow) model.Series {
	return sumBy(rows, func(r model.FactRow) string { return r.ProductType })
}

// MonthlyTrend groups by "YYYY-MM" sale month and sums line totals in
// chronological order. Rows without a parsable date are excluded.
func MonthlyTrend(rows []model.FactRow) model.Series {
	series := sumBy(rows, func(r model.FactRow) string {
		if r.Date == nil {
			return ""
		}
		return r.Date.Format("2006-01")
	})
	// Zero-padded labels sort chronologically.
	sort.SliceStable(series, func(i, j int) bool { return series[i].Label < series[j].Label })
	return series
}

// sumBy groups rows by key and sums line totals, preserving the order in
// which keys are first encountered. Rows with an empty key or nil line
// total are skipped.
func sumBy(rows []model.FactRow, key func(model.FactRow) string) model.Series {
	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, row := range rows {
		k := key(row)
		if k == "" || row.LineTotal == nil {
			continue
		}
		if _, ok := totals[k]; !ok {
			order = append(order, k)
		}
		totals[k] += *row.LineTotal
	}

	series := make(model.Series, 0, len(order))
	for _, k := range order {
		series = append(series, model.Point{Label: k, Value: totals[k]})
	}
	return series
}

// topN sorts a series descending by value and truncates to n entries. The
// stable sort keeps first-encountered order among equal sums.
func topN(series model.Series, n int) model.Series {
	sort.SliceStable(series, func(i, j int) bool { return series[i].Value > series[j].Value })
	if n > 0 && len(series) > n {
		series = series[:n]
	}
	return series
}
