package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/storefront-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/storefront-tracker/internal/models"
)

func TestGetCatalog_Default(t *testing.T) {
	env := newTestEnv(t)

	w := do(env.router, http.MethodGet, "/api/catalog", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	resp := decode[handler.CatalogResponse](t, w)
	if resp.Count != productRepo.Len() || len(resp.Products) != productRepo.Len() {
		t.Errorf("expected all %d products, got %d", productRepo.Len(), resp.Count)
	}
	if resp.Selection.Category != models.AllCategories || resp.Selection.Sort != "id" || resp.Selection.Order != "asc" {
		t.Errorf("unexpected default selection %+v", resp.Selection)
	}
	if resp.Products[0].ID != "bp1" {
		t.Errorf("expected id order to start with bp1, got %s", resp.Products[0].ID)
	}
}

func TestGetCatalog_Queries(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name      string
		query     string
		expectIDs []string
		sort      string
		order     string
	}{
		{
			name:      "Fashion by price",
			query:     "?category=Fashion&sort=price&order=asc",
			expectIDs: []string{"f3", "f1", "f2", "f4"},
			sort:      "price",
			order:     "asc",
		},
		{
			name:      "Fashion by price descending",
			query:     "?category=Fashion&sort=price&order=desc",
			expectIDs: []string{"f4", "f2", "f1", "f3"},
			sort:      "price",
			order:     "desc",
		},
		{
			name:      "Toggle same field flips order",
			query:     "?category=Fashion&sort=price&order=asc&toggle=price",
			expectIDs: []string{"f4", "f2", "f1", "f3"},
			sort:      "price",
			order:     "desc",
		},
		{
			name:      "Toggle new field starts ascending",
			query:     "?category=Fashion&sort=price&order=desc&toggle=title",
			expectIDs: []string{"f2", "f3", "f1", "f4"},
			sort:      "title",
			order:     "asc",
		},
		{
			name:      "Price compares numerically",
			query:     "?category=Beauty+%26+Personal+Care&sort=price",
			expectIDs: []string{"bp1", "bp3", "bp2"},
			sort:      "price",
			order:     "asc",
		},
		{
			name:      "Unknown category",
			query:     "?category=Toys",
			expectIDs: []string{},
			sort:      "id",
			order:     "asc",
		},
		{
			name:      "Unknown sort field",
			query:     "?sort=stars",
			expectIDs: []string{},
			sort:      "stars",
			order:     "asc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(env.router, http.MethodGet, "/api/catalog"+tt.query, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}

			resp := decode[handler.CatalogResponse](t, w)
			if got := productIDs(resp.Products); !reflect.DeepEqual(got, tt.expectIDs) {
				t.Errorf("expected %v, got %v", tt.expectIDs, got)
			}
			if resp.Selection.Sort != tt.sort || resp.Selection.Order != tt.order {
				t.Errorf("expected selection %s/%s, got %s/%s", tt.sort, tt.order, resp.Selection.Sort, resp.Selection.Order)
			}
		})
	}
}

func TestGetCatalog_PriceDisplay(t *testing.T) {
	env := newTestEnv(t)

	w := do(env.router, http.MethodGet, "/api/catalog?category=Fashion", nil)
	resp := decode[handler.CatalogResponse](t, w)

	prices := map[string]string{}
	for _, p := range resp.Products {
		prices[p.ID] = p.Price
	}
	if prices["f1"] != "Rs. 2,450" {
		t.Errorf("expected formatted price kept, got %q", prices["f1"])
	}
	if prices["f3"] != "Rs. 1,800" {
		t.Errorf("expected numeric price formatted, got %q", prices["f3"])
	}
}

func TestGetCategories(t *testing.T) {
	env := newTestEnv(t)

	w := do(env.router, http.MethodGet, "/api/catalog/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	resp := decode[handler.CategoriesResponse](t, w)
	if !reflect.DeepEqual(resp.All, models.Categories()) {
		t.Errorf("unexpected category set %v", resp.All)
	}
	if len(resp.Options) != len(resp.Present)+1 || resp.Options[0] != models.AllCategories {
		t.Errorf("unexpected options %v", resp.Options)
	}
}

func TestGetSummary(t *testing.T) {
	env := newTestEnv(t)

	w := do(env.router, http.MethodGet, "/api/catalog/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	resp := decode[handler.SummaryResponse](t, w)
	if resp.TotalProducts != 18 || resp.Categories != 5 {
		t.Errorf("unexpected totals %+v", resp)
	}
	if resp.TotalValue != "Rs. 492,200" {
		t.Errorf("expected Rs. 492,200, got %q", resp.TotalValue)
	}
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)

	w := do(env.router, http.MethodGet, "/api/products/e2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	resp := decode[handler.ProductResponse](t, w)
	if resp.Title != "Bluetooth Headphones" || resp.Amount != "18500" {
		t.Errorf("unexpected product %+v", resp)
	}

	w = do(env.router, http.MethodGet, "/api/products/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	w := do(env.router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	resp := decode[map[string]string](t, w)
	if resp["dashboard"] != "unauthenticated" {
		t.Errorf("unexpected health %v", resp)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	do(env.router, http.MethodGet, "/api/catalog", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `path="/api/catalog"`) {
		t.Error("expected catalog requests to be counted by route")
	}
}
