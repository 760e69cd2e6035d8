// Package fact builds the denormalized fact table: every sales row
// left-joined with the customer, product and store reference tables, plus
// the derived year and line-total columns. The table is built once at
// startup and never mutated afterwards.
package fact

import (
	"time"

	"github.com/FernandoGuns/Dash-Vendas/internal/model"
	"github.com/FernandoGuns/Dash-Vendas/internal/normalize"
	"github.com/FernandoGuns/Dash-Vendas/internal/parser"
)

// Snapshot is the process-wide read-only state handed to every request
// handler. No locking is needed: there is no writer after initialization.
type Snapshot struct {
	Rows    []model.FactRow
	BuiltAt time.Time

	CustomerCount int
	ProductCount  int
	StoreCount    int
}

// Build joins sales with the three reference tables. Left-join semantics:
// every sales row is retained; unmatched reference attributes stay empty.
// Duplicate reference keys resolve to the first occurrence, keeping the
// join deterministic.
func Build(sales []model.SaleRecord, customers []model.CustomerRecord, products []model.ProductRecord, stores []model.StoreRecord) []model.FactRow {
	customerByID := make(map[string]model.CustomerRecord, len(customers))
	for _, c := range customers {
		if _, ok := customerByID[c.CustomerID]; !ok {
			customerByID[c.CustomerID] = c
		}
	}
	productByID := make(map[string]model.ProductRecord, len(products))
	for _, p := range products {
		if _, ok := productByID[p.ProductID]; !ok {
			productByID[p.ProductID] = p
		}
	}
	storeByID := make(map[string]model.StoreRecord, len(stores))
	for _, s := range stores {
		if _, ok := storeByID[s.StoreID]; !ok {
			storeByID[s.StoreID] = s
		}
	}

	rows := make([]model.FactRow, 0, len(sales))
	for _, sale := range sales {
		row := model.FactRow{
			Date:       sale.Date,
			OrderID:    sale.OrderID,
			ProductID:  sale.ProductID,
			CustomerID: sale.CustomerID,
			StoreID:    sale.StoreID,
			Quantity:   sale.Quantity,
		}
		if c, ok := customerByID[sale.CustomerID]; ok {
			row.CustomerName = c.FullName
		}
		if p, ok := productByID[sale.ProductID]; ok {
			row.ProductName = p.Name
			row.ProductType = p.Type
			row.Brand = p.Brand
			row.UnitPrice = p.UnitPrice
		}
		if s, ok := storeByID[sale.StoreID]; ok {
			row.StoreName = s.Name
		}

		if sale.Date != nil {
			year := sale.Date.Year()
			row.Year = &year
		}
		if row.UnitPrice != nil {
			total := float64(sale.Quantity) * *row.UnitPrice
			row.LineTotal = &total
		}

		rows = append(rows, row)
	}
	return rows
}

// FromRaw normalizes the four raw tables and builds the snapshot. Any
// schema failure aborts startup; the process must not serve a partial table.
func FromRaw(raw *parser.RawTables) (*Snapshot, error) {
	customers, err := normalize.Customers(raw.Customers)
	if err != nil {
		return nil, err
	}
	products, err := normalize.Products(raw.Products)
	if err != nil {
		return nil, err
	}
	stores, err := normalize.Stores(raw.Stores)
	if err != nil {
		return nil, err
	}
	sales, err := normalize.Sales(raw.Sales)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Rows:          Build(sales, customers, products, stores),
		BuiltAt:       time.Now(),
		CustomerCount: len(customers),
		ProductCount:  len(products),
		StoreCount:    len(stores),
	}, nil
}
