package query

import (
	"reflect"
	"testing"

	"github.com/FernandoGuns/Dash-Vendas/internal/model"
)

func TestNewIndex_DistinctSortedNonNull(t *testing.T) {
	t.Parallel()

	rows := []model.FactRow{
		{ProductType: "Shoes", Brand: "X", ProductName: "Runner", StoreName: "Centro", CustomerName: "Alice"},
		{ProductType: "Shirts", Brand: "Y", ProductName: "Polo", StoreName: "Norte", CustomerName: "Bob"},
		{ProductType: "Shoes", Brand: "X", ProductName: "Runner", StoreName: "Centro", CustomerName: "Alice"},
		{ProductType: "", Brand: "", ProductName: "", StoreName: "", CustomerName: ""},
	}
	idx := NewIndex(rows)

	if !reflect.DeepEqual(idx.ProductTypes, []string{"Shirts", "Shoes"}) {
		t.Fatalf("unexpected types: %v", idx.ProductTypes)
	}
	if !reflect.DeepEqual(idx.Products, []string{"Polo", "Runner"}) {
		t.Fatalf("unexpected products: %v", idx.Products)
	}
	if len(idx.Brands) != 0 {
		t.Fatalf("brand candidates must start empty (cascade): %v", idx.Brands)
	}
	if !reflect.DeepEqual(idx.Customers, []string{"Alice", "Bob"}) {
		t.Fatalf("unexpected customers: %v", idx.Customers)
	}
}

func TestBrandsForType_Cascade(t *testing.T) {
	t.Parallel()

	rows := []model.FactRow{
		{ProductType: "Shoes", Brand: "X"},
		{ProductType: "Shoes", Brand: "W"},
		{ProductType: "Shirts", Brand: "Y"},
		{ProductType: "Shoes", Brand: ""},
	}

	if got := BrandsForType(rows, ""); len(got) != 0 {
		t.Fatalf("no type selected must give no brand candidates: %v", got)
	}

	got := BrandsForType(rows, "Shoes")
	if !reflect.DeepEqual(got, []string{"W", "X"}) {
		t.Fatalf("unexpected brands for Shoes: %v", got)
	}

	// Candidates are always a subset of the brands of that type.
	for _, b := range got {
		if b == "Y" {
			t.Fatalf("brand of another type leaked into cascade")
		}
	}
}
