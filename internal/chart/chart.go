// Package chart maps aggregator output to render-ready chart definitions so
// the frontend owns no business logic.
package chart

import (
	"github.com/FernandoGuns/Dash-Vendas/internal/aggregate"
	"github.com/FernandoGuns/Dash-Vendas/internal/model"
)

// Kind selects the widget used to render a chart.
type Kind string

const (
	KindBar  Kind = "bar"
	KindHBar Kind = "hbar"
	KindLine Kind = "line"
	KindPie  Kind = "pie"
	KindArea Kind = "area"
)

// Chart is one dashboard panel: a chart kind, its title and its data series.
type Chart struct {
	ID     string       `json:"id"`
	Kind   Kind         `json:"kind"`
	Title  string       `json:"title"`
	Color  string       `json:"color,omitempty"`
	Series model.Series `json:"series"`
}

// BuildAll recomputes every dashboard chart over the filtered subset. Each
// chart is computed in isolation: a failure in one reducer degrades that
// chart to an empty series instead of taking down the whole refresh.
func BuildAll(rows []model.FactRow, topN int) []Chart {
	return []Chart{
		build("sales_by_year", KindBar, "Sales by Year", "#00BFFF", func() model.Series {
			return aggregate.SalesByYear(rows)
		}),
		build("top_customers", KindHBar, "Top 10 Customers", "#FF7F50", func() model.Series {
			return aggregate.TopCustomers(rows, topN)
		}),
		build("top_products", KindLine, "Top 10 Products", "#32CD32", func() model.Series {
			return aggregate.TopProducts(rows, topN)
		}),
		build("sales_by_store", KindBar, "Sales by Store", "#FFD700", func() model.Series {
			return aggregate.SalesByStore(rows)
		}),
		build("share_by_type", KindPie, "Share by Product Type", "", func() model.Series {
			return aggregate.ShareByType(rows)
		}),
		build("monthly_trend", KindArea, "Monthly Sales Trend", "#1E90FF", func() model.Series {
			return aggregate.MonthlyTrend(rows)
		}),
	}
}

func build(id string, kind Kind, title, color string, fn func() model.Series) (c Chart) {
	c = Chart{ID: id, Kind: kind, Title: title, Color: color, Series: model.Series{}}
	defer func() {
		if r := recover(); r != nil {
			c.Series = model.Series{}
		}
	}()
	if s := fn(); s != nil {
		c.Series = s
	}
	return c
}
