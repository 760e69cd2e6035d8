package parser

import (
	"path/filepath"
	"testing"
)

func writeSalesFile(t *testing.T, path string, header []interface{}, rows ...[]interface{}) {
	t.Helper()
	all := append([][]interface{}{header}, rows...)
	writeWorkbook(t, path, all)
}

func TestLoadSources_ConcatenatesSalesInFileOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sales2020 := filepath.Join(dir, "vendas-2020.xlsx")
	sales2021 := filepath.Join(dir, "vendas-2021.xlsx")

	// Same layout, drifting labels: the loader forces the canonical schema.
	writeSalesFile(t, sales2020,
		[]interface{}{"Data da Venda", "Ordem de Compra", "ID Produto", "ID Cliente", "Qtd Vendida", "ID Loja"},
		[]interface{}{"05/03/2020", "O1", "P1", "C1", "2", "L1"},
	)
	writeSalesFile(t, sales2021,
		[]interface{}{"Data", "Ordem", "SKU", "Cliente", "Qtd", "Loja"},
		[]interface{}{"10/04/2021", "O2", "P2", "C2", "1", "L2"},
		[]interface{}{"11/04/2021", "O3", "P1", "C1", "3", "L1"},
	)

	customers := filepath.Join(dir, "clientes.xlsx")
	writeWorkbook(t, customers, [][]interface{}{
		{"Cadastro"},
		{},
		{"ID Cliente", "Nome Completo"},
		{"C1", "Ana Silva"},
	})
	products := filepath.Join(dir, "produtos.xlsx")
	writeWorkbook(t, products, [][]interface{}{
		{"ID Produto", "Produto"},
		{"P1", "Tênis"},
	})
	stores := filepath.Join(dir, "lojas.xlsx")
	writeWorkbook(t, stores, [][]interface{}{
		{"ID Loja", "Nome da Loja"},
		{"L1", "Centro"},
	})

	raw, err := LoadSources(SourcePaths{
		Sales:     []string{sales2020, sales2021},
		Customers: customers,
		Products:  products,
		Stores:    stores,
	})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(raw.Sales.Rows) != 3 {
		t.Fatalf("expected 3 concatenated sales rows, got %d", len(raw.Sales.Rows))
	}
	if raw.Sales.Columns[2] != ColProductID {
		t.Fatalf("canonical schema not forced: %v", raw.Sales.Columns)
	}
	// File order then row order.
	if raw.Sales.Rows[0][1] != "O1" || raw.Sales.Rows[2][1] != "O3" {
		t.Fatalf("row order not preserved: %v", raw.Sales.Rows)
	}
	if raw.Customers.Columns[0] != "ID Cliente" {
		t.Fatalf("customer banner rows not skipped: %v", raw.Customers.Columns)
	}
}

func TestLoadSources_MissingFileIsFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	products := filepath.Join(dir, "produtos.xlsx")
	writeWorkbook(t, products, [][]interface{}{{"ID Produto"}, {"P1"}})

	_, err := LoadSources(SourcePaths{
		Sales:     []string{filepath.Join(dir, "missing.xlsx")},
		Customers: products,
		Products:  products,
		Stores:    products,
	})
	if err == nil {
		t.Fatalf("expected load error for missing sales file")
	}
}

func TestLoadSources_ColumnCountMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.xlsx")
	writeWorkbook(t, bad, [][]interface{}{
		{"only", "five", "columns", "here", "now"},
		{"a", "b", "c", "d", "e"},
	})
	ref := filepath.Join(dir, "ref.xlsx")
	writeWorkbook(t, ref, [][]interface{}{{"ID Produto"}, {"P1"}})

	_, err := LoadSources(SourcePaths{
		Sales:     []string{bad},
		Customers: ref,
		Products:  ref,
		Stores:    ref,
	})
	if err == nil {
		t.Fatalf("expected schema width error")
	}
}
