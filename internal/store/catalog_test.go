package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/wrteam/sportcenter-assistant/internal/domain"
)

func testCatalogProducts() []domain.Product {
	return []domain.Product{
		{ID: "BALL001", Name: "Pro League Football", Category: "Football", Price: 29.99, Description: "Official size football", Stock: 25, Brand: "WRTeam"},
		{ID: "RKT001", Name: "Graphite Tennis Racket", Category: "Tennis", Price: 119.0, Description: "Graphite racket for intermediate players", Stock: 9, Brand: "CourtKing"},
		{ID: "SHO001", Name: "Speed Trainer Running Shoes", Category: "Footwear", Price: 74.5, Description: "Breathable mesh running shoes", Stock: 0, Brand: "Strider"},
	}
}

func writeProducts(t *testing.T, dir string, products []domain.Product) string {
	t.Helper()
	path := filepath.Join(dir, "products.json")
	if err := writeJSONFile(path, products); err != nil {
		t.Fatalf("failed to write products: %v", err)
	}
	return path
}

func TestSearchEmptyFiltersReturnFullCatalogInOrder(t *testing.T) {
	t.Parallel()

	products := testCatalogProducts()
	catalog := NewJSONCatalog(writeProducts(t, t.TempDir(), products))

	got, err := catalog.Search(context.Background(), "", "", nil, nil)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !reflect.DeepEqual(got, products) {
		t.Fatalf("expected full catalog in storage order, got %+v", got)
	}
}

func TestSearchFilters(t *testing.T) {
	t.Parallel()

	catalog := NewJSONCatalog(writeProducts(t, t.TempDir(), testCatalogProducts()))
	minPrice := 50.0
	maxPrice := 120.0

	tests := []struct {
		name     string
		query    string
		category string
		min, max *float64
		wantIDs  []string
	}{
		{name: "query matches name case-insensitively", query: "FOOTBALL", wantIDs: []string{"BALL001"}},
		{name: "query matches description", query: "intermediate", wantIDs: []string{"RKT001"}},
		{name: "category exact match", category: "tennis", wantIDs: []string{"RKT001"}},
		{name: "price bounds inclusive", min: &minPrice, max: &maxPrice, wantIDs: []string{"RKT001", "SHO001"}},
		{name: "no match is empty not error", query: "kayak", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := catalog.Search(context.Background(), tt.query, tt.category, tt.min, tt.max)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			gotIDs := make([]string, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Fatalf("expected IDs %v, got %v", tt.wantIDs, gotIDs)
			}
		})
	}
}

func TestSearchMissingFileIsEmptyCatalog(t *testing.T) {
	t.Parallel()

	catalog := NewJSONCatalog(filepath.Join(t.TempDir(), "absent.json"))
	got, err := catalog.Search(context.Background(), "", "", nil, nil)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestGetByIDMissReturnsNil(t *testing.T) {
	t.Parallel()

	catalog := NewJSONCatalog(writeProducts(t, t.TempDir(), testCatalogProducts()))
	product, err := catalog.GetByID(context.Background(), "NOPE")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if product != nil {
		t.Fatalf("expected nil for unknown product, got %+v", product)
	}
}

func TestCheckAvailability(t *testing.T) {
	t.Parallel()

	catalog := NewJSONCatalog(writeProducts(t, t.TempDir(), testCatalogProducts()))

	tests := []struct {
		name          string
		id            string
		quantity      int
		wantAvailable bool
		wantStock     int
	}{
		{name: "enough stock", id: "BALL001", quantity: 10, wantAvailable: true, wantStock: 25},
		{name: "exactly stock", id: "RKT001", quantity: 9, wantAvailable: true, wantStock: 9},
		{name: "insufficient stock", id: "RKT001", quantity: 10, wantAvailable: false, wantStock: 9},
		{name: "zero stock", id: "SHO001", quantity: 1, wantAvailable: false, wantStock: 0},
		{name: "unknown product unavailable for any quantity", id: "NOPE", quantity: 1, wantAvailable: false, wantStock: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := catalog.CheckAvailability(context.Background(), tt.id, tt.quantity)
			if err != nil {
				t.Fatalf("CheckAvailability failed: %v", err)
			}
			if got.Available != tt.wantAvailable {
				t.Fatalf("expected available=%v, got %+v", tt.wantAvailable, got)
			}
			if got.Stock != tt.wantStock {
				t.Fatalf("expected stock=%d, got %+v", tt.wantStock, got)
			}
			if got.Requested != tt.quantity {
				t.Fatalf("expected requested=%d, got %+v", tt.quantity, got)
			}
		})
	}
}
