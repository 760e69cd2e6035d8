package parser

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Canonical sales columns, assigned by position to every sales file before
// concatenation. The yearly files carry the same layout under drifting labels.
var SalesColumns = []string{
	ColSaleDate,
	ColOrderID,
	ColProductID,
	ColCustomerID,
	ColQuantity,
	ColStoreID,
}

// Canonical column names shared between the loader and the normalizer.
const (
	ColSaleDate   = "sale_date"
	ColOrderID    = "order_id"
	ColProductID  = "product_id"
	ColCustomerID = "customer_id"
	ColQuantity   = "quantity"
	ColStoreID    = "store_id"
)

// customerBannerRows is the number of decorative rows above the customer
// table's header in the source workbook.
const customerBannerRows = 2

// SourcePaths locates the raw spreadsheet sources.
type SourcePaths struct {
	Sales     []string
	Customers string
	Products  string
	Stores    string
}

// RawTables holds the four loaded sources before normalization.
type RawTables struct {
	Sales     *Table
	Customers *Table
	Products  *Table
	Stores    *Table
}

// LoadSources reads all configured sources concurrently. Any missing or
// unparsable file fails the whole load; the caller treats that as fatal.
func LoadSources(paths SourcePaths) (*RawTables, error) {
	if len(paths.Sales) == 0 {
		return nil, fmt.Errorf("no sales files configured")
	}

	raw := &RawTables{}
	var g errgroup.Group

	g.Go(func() error {
		t, err := loadSales(paths.Sales)
		if err != nil {
			return err
		}
		raw.Sales = t
		return nil
	})
	g.Go(func() error {
		t, err := ReadWorkbook(paths.Customers, customerBannerRows)
		if err != nil {
			return fmt.Errorf("load customers: %w", err)
		}
		raw.Customers = t
		return nil
	})
	g.Go(func() error {
		t, err := ReadWorkbook(paths.Products, 0)
		if err != nil {
			return fmt.Errorf("load products: %w", err)
		}
		raw.Products = t
		return nil
	})
	g.Go(func() error {
		t, err := ReadWorkbook(paths.Stores, 0)
		if err != nil {
			return fmt.Errorf("load stores: %w", err)
		}
		raw.Stores = t
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return raw, nil
}

// loadSales reads every yearly sales file, forces the canonical schema onto
// each and concatenates them in file order. Row order within a file is kept;
// no deduplication happens here.
func loadSales(paths []string) (*Table, error) {
	var combined *Table
	for _, path := range paths {
		t, err := ReadWorkbook(path, 0)
		if err != nil {
			return nil, fmt.Errorf("load sales: %w", err)
		}
		if err := t.SetColumns(SalesColumns); err != nil {
			return nil, fmt.Errorf("load sales %s: %w", path, err)
		}
		if combined == nil {
			combined = t
			continue
		}
		if err := combined.Concat(t); err != nil {
			return nil, fmt.Errorf("load sales %s: %w", path, err)
		}
	}
	return combined, nil
}
