package catalog

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/storefront-tracker/internal/models"
)

// Categories lists the distinct product types present, in the storefront's
// category order.
func Categories(products []models.Product) []string {
	present := make(map[string]bool)
	for _, p := range products {
		present[p.Type] = true
	}

	out := []string{}
	for _, c := range models.Categories() {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}

// CategoryOptions is the category picker: the show-all entry followed by the
// categories that have products.
func CategoryOptions(products []models.Product) []string {
	return slices.Insert(Categories(products), 0, models.AllCategories)
}

type Summary struct {
	TotalProducts int          `json:"total_products"`
	Categories    int          `json:"categories"`
	TotalValue    models.Price `json:"total_value"`
}

func Summarize(products []models.Product) Summary {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price.Amount)
	}
	return Summary{
		TotalProducts: len(products),
		Categories:    len(Categories(products)),
		TotalValue:    models.NewPrice(total),
	}
}
