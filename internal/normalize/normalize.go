// Package normalize repairs the naming and typing drift between the raw
// spreadsheet sources and the canonical schema the joiner assumes. All
// column-presence branching lives here: downstream components never check
// for alternate layouts.
package normalize

import (
	"fmt"

	"github.com/FernandoGuns/Dash-Vendas/internal/model"
	"github.com/FernandoGuns/Dash-Vendas/internal/parser"
)

// Column aliases observed across source generations. Matching is case- and
// accent-insensitive, so one spelling per variant is enough.
var (
	customerIDAliases = []string{"ID Cliente", parser.ColCustomerID}
	firstNameAliases  = []string{"Primeiro Nome", "First Name"}
	lastNameAliases   = []string{"Sobrenome", "Last Name"}
	fullNameAliases   = []string{"Nome Completo", "Full Name"}

	productIDAliases   = []string{"ID Produto", parser.ColProductID}
	altProductKey      = "SKU"
	productNameAliases = []string{"Produto", "Nome do Produto"}
	productTypeAliases = []string{"Tipo do Produto", "Tipo Produto"}
	brandAliases       = []string{"Marca", "Brand"}
	unitPriceAliases   = []string{"Preço Unitario", "Preço Unitário", "Unit Price"}

	storeIDAliases   = []string{"ID Loja", parser.ColStoreID}
	storeNameAliases = []string{"Nome da Loja", "Loja"}
)

func findColumn(t *parser.Table, aliases []string) int {
	for _, alias := range aliases {
		if idx := t.ColumnIndex(alias); idx >= 0 {
			return idx
		}
	}
	return -1
}

// UnifyFullName derives a single full-name column from separate first/last
// name columns and drops the originals. Tables already carrying a unified
// name column are left untouched.
func UnifyFullName(t *parser.Table) {
	if findColumn(t, fullNameAliases) >= 0 {
		return
	}
	first := findColumn(t, firstNameAliases)
	last := findColumn(t, lastNameAliases)
	if first < 0 || last < 0 {
		return
	}

	names := make([]string, len(t.Rows))
	for i := range t.Rows {
		names[i] = joinName(t.Cell(i, first), t.Cell(i, last))
	}
	// Drop before append so the value slices stay aligned.
	firstName, lastName := t.Columns[first], t.Columns[last]
	t.DropColumns(firstName, lastName)
	_ = t.AppendColumn(fullNameAliases[0], names)
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// RenameAltProductKey renames the alternate product key column to the
// canonical name when present. Applied to both the product and the sales
// table so the join key is spelled identically on both sides.
func RenameAltProductKey(t *parser.Table) {
	if t.HasColumn(altProductKey) && findColumn(t, productIDAliases) < 0 {
		t.Rename(altProductKey, parser.ColProductID)
	}
}

// Customers produces typed customer records from the raw table.
func Customers(t *parser.Table) ([]model.CustomerRecord, error) {
	UnifyFullName(t)

	idCol := findColumn(t, customerIDAliases)
	if idCol < 0 {
		return nil, fmt.Errorf("customer table: no customer id column")
	}
	nameCol := findColumn(t, fullNameAliases)

	records := make([]model.CustomerRecord, 0, len(t.Rows))
	for i := range t.Rows {
		id := t.Cell(i, idCol)
		if id == "" {
			continue
		}
		records = append(records, model.CustomerRecord{
			CustomerID: id,
			FullName:   t.Cell(i, nameCol),
		})
	}
	return records, nil
}

// Products produces typed product records from the raw table, unifying the
// alternate key name first.
func Products(t *parser.Table) ([]model.ProductRecord, error) {
	RenameAltProductKey(t)

	idCol := findColumn(t, productIDAliases)
	if idCol < 0 {
		return nil, fmt.Errorf("product table: no product id column")
	}
	nameCol := findColumn(t, productNameAliases)
	typeCol := findColumn(t, productTypeAliases)
	brandCol := findColumn(t, brandAliases)
	priceCol := findColumn(t, unitPriceAliases)

	records := make([]model.ProductRecord, 0, len(t.Rows))
	for i := range t.Rows {
		id := t.Cell(i, idCol)
		if id == "" {
			continue
		}
		records = append(records, model.ProductRecord{
			ProductID: id,
			Name:      t.Cell(i, nameCol),
			Type:      t.Cell(i, typeCol),
			Brand:     t.Cell(i, brandCol),
			UnitPrice: parser.ParseFloat(t.Cell(i, priceCol)),
		})
	}
	return records, nil
}

// Stores produces typed store records from the raw table.
func Stores(t *parser.Table) ([]model.StoreRecord, error) {
	idCol := findColumn(t, storeIDAliases)
	if idCol < 0 {
		return nil, fmt.Errorf("store table: no store id column")
	}
	nameCol := findColumn(t, storeNameAliases)

	records := make([]model.StoreRecord, 0, len(t.Rows))
	for i := range t.Rows {
		id := t.Cell(i, idCol)
		if id == "" {
			continue
		}
		records = append(records, model.StoreRecord{
			StoreID: id,
			Name:    t.Cell(i, nameCol),
		})
	}
	return records, nil
}

// Sales produces typed sale records. Dates parse day-first; unparsable dates
// become nil rather than failing the load.
func Sales(t *parser.Table) ([]model.SaleRecord, error) {
	RenameAltProductKey(t)

	required := []string{
		parser.ColSaleDate,
		parser.ColOrderID,
		parser.ColProductID,
		parser.ColCustomerID,
		parser.ColQuantity,
		parser.ColStoreID,
	}
	cols := make(map[string]int, len(required))
	for _, name := range required {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("sales table: missing column %q", name)
		}
		cols[name] = idx
	}

	records := make([]model.SaleRecord, 0, len(t.Rows))
	for i := range t.Rows {
		records = append(records, model.SaleRecord{
			Date:       parser.ParseDate(t.Cell(i, cols[parser.ColSaleDate])),
			OrderID:    t.Cell(i, cols[parser.ColOrderID]),
			ProductID:  t.Cell(i, cols[parser.ColProductID]),
			CustomerID: t.Cell(i, cols[parser.ColCustomerID]),
			StoreID:    t.Cell(i, cols[parser.ColStoreID]),
			Quantity:   parser.ParseInt(t.Cell(i, cols[parser.ColQuantity])),
		})
	}
	return records, nil
}
