package catalog

import (
	"reflect"
	"testing"

	"github.com/rogerio-castellano/storefront-tracker/internal/models"
)

func TestCategories_ClosedSetOrder(t *testing.T) {
	products := []models.Product{
		product(t, "h", "Lamp", models.HomeLiving, "100"),
		product(t, "f", "Shirt", models.Fashion, "100"),
		product(t, "e", "Mouse", models.Electronics, "100"),
		product(t, "f2", "Jeans", models.Fashion, "100"),
	}

	got := Categories(products)
	want := []string{models.Electronics, models.Fashion, models.HomeLiving}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	options := CategoryOptions(products)
	if options[0] != models.AllCategories || len(options) != len(want)+1 {
		t.Errorf("unexpected options %v", options)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(fiveProducts(t))

	if s.TotalProducts != 5 {
		t.Errorf("expected 5 products, got %d", s.TotalProducts)
	}
	if s.Categories != 2 {
		t.Errorf("expected 2 categories, got %d", s.Categories)
	}
	if s.TotalValue.Display != "Rs. 36,000" {
		t.Errorf("expected total Rs. 36,000, got %q", s.TotalValue.Display)
	}
}
