package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FernandoGuns/Dash-Vendas/internal/fact"
	"github.com/FernandoGuns/Dash-Vendas/internal/model"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	price10, price20 := 10.0, 20.0
	dayA := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	dayB := time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC)
	sales := []model.SaleRecord{
		{Date: &dayA, OrderID: "O1", ProductID: "P1", CustomerID: "C1", StoreID: "L1", Quantity: 2},
		{Date: &dayB, OrderID: "O2", ProductID: "P2", CustomerID: "C2", StoreID: "L2", Quantity: 1},
	}
	customers := []model.CustomerRecord{
		{CustomerID: "C1", FullName: "Alice"},
		{CustomerID: "C2", FullName: "Bob"},
	}
	products := []model.ProductRecord{
		{ProductID: "P1", Name: "Runner", Type: "Shoes", Brand: "X", UnitPrice: &price10},
		{ProductID: "P2", Name: "Polo", Type: "Shirts", Brand: "Y", UnitPrice: &price20},
	}
	stores := []model.StoreRecord{
		{StoreID: "L1", Name: "Centro"},
		{StoreID: "L2", Name: "Norte"},
	}

	snap := &fact.Snapshot{
		Rows:          fact.Build(sales, customers, products, stores),
		BuiltAt:       time.Now(),
		CustomerCount: len(customers),
		ProductCount:  len(products),
		StoreCount:    len(stores),
	}

	handler := NewHandler(snap, 10, t.TempDir(), time.Minute)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if out != nil && w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return w.Code
}

func TestGetStatus(t *testing.T) {
	t.Parallel()

	router := testRouter(t)
	var status StatusResponse
	if code := doJSON(t, router, http.MethodGet, "/api/status", nil, &status); code != http.StatusOK {
		t.Fatalf("status code = %d", code)
	}
	if !status.Initialized || status.FactRows != 2 || status.ProductCount != 2 {
		t.Fatalf("unexpected status: %+v", status)
	}
}

func TestGetFilters(t *testing.T) {
	t.Parallel()

	router := testRouter(t)
	var idx struct {
		ProductTypes []string `json:"productTypes"`
		Brands       []string `json:"brands"`
		Customers    []string `json:"customers"`
	}
	if code := doJSON(t, router, http.MethodGet, "/api/filters", nil, &idx); code != http.StatusOK {
		t.Fatalf("status code = %d", code)
	}
	if len(idx.ProductTypes) != 2 || len(idx.Customers) != 2 {
		t.Fatalf("unexpected index: %+v", idx)
	}
	if len(idx.Brands) != 0 {
		t.Fatalf("brands must be empty before a type is selected: %v", idx.Brands)
	}
}

func TestGetBrands_Cascade(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	var resp brandsResponse
	if code := doJSON(t, router, http.MethodGet, "/api/brands?type=Shoes", nil, &resp); code != http.StatusOK {
		t.Fatalf("status code = %d", code)
	}
	if len(resp.Brands) != 1 || resp.Brands[0] != "X" {
		t.Fatalf("unexpected cascade: %+v", resp)
	}

	if code := doJSON(t, router, http.MethodGet, "/api/brands", nil, &resp); code != http.StatusOK {
		t.Fatalf("status code = %d", code)
	}
	if len(resp.Brands) != 0 {
		t.Fatalf("no type selected must give no candidates: %+v", resp)
	}
}

func TestDashboard_FilteredRefresh(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	var resp DashboardResponse
	sel := model.FilterSelection{ProductType: "Shoes"}
	if code := doJSON(t, router, http.MethodPost, "/api/dashboard", sel, &resp); code != http.StatusOK {
		t.Fatalf("status code = %d", code)
	}
	if resp.Matched != 1 {
		t.Fatalf("expected 1 matched row, got %d", resp.Matched)
	}
	if len(resp.Charts) != 6 {
		t.Fatalf("expected 6 charts, got %d", len(resp.Charts))
	}

	for _, c := range resp.Charts {
		if c.ID != "sales_by_year" {
			continue
		}
		if len(c.Series) != 1 || c.Series[0].Label != "2021" || c.Series[0].Value != 20 {
			t.Fatalf("unexpected sales-by-year series: %+v", c.Series)
		}
	}
}

func TestDashboard_EmptySelection(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	var resp DashboardResponse
	if code := doJSON(t, router, http.MethodPost, "/api/dashboard", model.FilterSelection{}, &resp); code != http.StatusOK {
		t.Fatalf("status code = %d", code)
	}
	if resp.Matched != 2 {
		t.Fatalf("empty selection must cover the whole table, got %d", resp.Matched)
	}
}

func TestDashboard_BadPayload(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/dashboard", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want 400", w.Code)
	}
}

func TestExport_RoundTrip(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	var resp exportResponse
	sel := model.FilterSelection{ProductType: "Shoes"}
	if code := doJSON(t, router, http.MethodPost, "/api/export", sel, &resp); code != http.StatusOK {
		t.Fatalf("status code = %d", code)
	}
	if resp.Token == "" || resp.Rows != 1 {
		t.Fatalf("unexpected export response: %+v", resp)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/export/download/"+resp.Token, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("download status = %d", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Fatalf("empty download body")
	}
}

func TestDownloadExport_UnknownToken(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/export/download/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
