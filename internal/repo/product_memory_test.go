package repo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rogerio-castellano/storefront-tracker/internal/models"
)

func mustPrice(t *testing.T, s string) models.Price {
	t.Helper()
	p, err := models.ParsePrice(s)
	if err != nil {
		t.Fatalf("parse price %q: %v", s, err)
	}
	return p
}

func TestNewSeededProductRepository(t *testing.T) {
	r, err := NewSeededProductRepository()
	if err != nil {
		t.Fatalf("failed to load seed catalog: %v", err)
	}
	if r.Len() == 0 {
		t.Fatal("expected seed catalog to contain products")
	}

	p, err := r.GetByID(context.Background(), "e1")
	if err != nil {
		t.Fatalf("expected e1 in seed catalog: %v", err)
	}
	if p.Type != models.Electronics {
		t.Errorf("expected e1 to be Electronics, got %q", p.Type)
	}
}

func TestNewInMemoryProductRepository_Invalid(t *testing.T) {
	price := mustPrice(t, "Rs. 100")

	tests := []struct {
		name     string
		products []models.Product
		wantErr  error
	}{
		{
			name: "Duplicate id",
			products: []models.Product{
				{ID: "e1", Type: models.Electronics, Price: price},
				{ID: "e1", Type: models.Fashion, Price: price},
			},
			wantErr: ErrDuplicateProductID,
		},
		{
			name:     "Unknown category",
			products: []models.Product{{ID: "x1", Type: "Toys", Price: price}},
			wantErr:  ErrUnknownCategory,
		},
		{
			name:     "Show-all label as type",
			products: []models.Product{{ID: "x2", Type: models.AllCategories, Price: price}},
			wantErr:  ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInMemoryProductRepository(tt.products)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestInMemoryProductRepository_GetAllReturnsCopy(t *testing.T) {
	r, err := NewInMemoryProductRepository([]models.Product{
		{ID: "e1", Title: "Mouse", Type: models.Electronics, Price: mustPrice(t, "Rs. 100")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, _ := r.GetAll(context.Background())
	all[0].Title = "changed"

	again, _ := r.GetAll(context.Background())
	if again[0].Title != "Mouse" {
		t.Errorf("repository was mutated through GetAll result: %q", again[0].Title)
	}
}

func TestInMemoryProductRepository_GetByIDNotFound(t *testing.T) {
	r, _ := NewInMemoryProductRepository(nil)
	if _, err := r.GetByID(context.Background(), "missing"); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDecodeCatalog_MixedPriceForms(t *testing.T) {
	body := `[
		{"id": "a", "type": "Fashion", "price": "Rs. 1,200"},
		{"id": "b", "type": "Fashion", "price": 1200}
	]`
	products, err := DecodeCatalog(strings.NewReader(body))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if products[0].Price.Compare(products[1].Price) != 0 {
		t.Errorf("expected both price forms to normalize to the same amount")
	}
}

func TestSnapshot(t *testing.T) {
	src, _ := NewSeededProductRepository()
	snap, err := Snapshot(context.Background(), src)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Len() != src.Len() {
		t.Errorf("expected %d products, got %d", src.Len(), snap.Len())
	}
}
