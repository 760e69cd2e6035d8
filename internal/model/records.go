package model

import "time"

// SaleRecord is one row of the unified sales table. Immutable once loaded.
type SaleRecord struct {
	Date       *time.Time // nil when the source value could not be parsed
	OrderID    string
	ProductID  string
	CustomerID string
	StoreID    string
	Quantity   int
}

// CustomerRecord is one row of the customer reference table.
type CustomerRecord struct {
	CustomerID string
	FullName   string
}

// ProductRecord is one row of the product reference table.
type ProductRecord struct {
	ProductID string
	Name      string
	Type      string
	Brand     string
	UnitPrice *float64
}

// StoreRecord is one row of the store reference table.
type StoreRecord struct {
	StoreID string
	Name    string
}

// FactRow is a sales row left-joined with all three reference tables plus
// the derived year and line total. Empty strings mean the reference row was
// missing; nil pointers mean the value is not derivable.
type FactRow struct {
	Date         *time.Time `json:"date"`
	OrderID      string     `json:"orderId"`
	ProductID    string     `json:"productId"`
	CustomerID   string     `json:"customerId"`
	StoreID      string     `json:"storeId"`
	Quantity     int        `json:"quantity"`
	CustomerName string     `json:"customerName"`
	ProductName  string     `json:"productName"`
	ProductType  string     `json:"productType"`
	Brand        string     `json:"brand"`
	UnitPrice    *float64   `json:"unitPrice"`
	StoreName    string     `json:"storeName"`
	Year         *int       `json:"year"`
	LineTotal    *float64   `json:"lineTotal"`
}
