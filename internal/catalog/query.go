// Package catalog filters, sorts and summarizes the product catalog. Every
// function here is pure: inputs are never modified and each call returns a
// freshly allocated slice.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/rogerio-castellano/storefront-tracker/internal/models"
)

type SortField string

const (
	SortByID    SortField = "id"
	SortByTitle SortField = "title"
	SortByType  SortField = "type"
	SortByPrice SortField = "price"
)

func (f SortField) Valid() bool {
	switch f {
	case SortByID, SortByTitle, SortByType, SortByPrice:
		return true
	}
	return false
}

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == Ascending || o == Descending
}

func (o SortOrder) Reverse() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// ParseSortField maps a query value to a field. Unknown values are returned
// as-is and fail Valid.
func ParseSortField(s string) SortField {
	return SortField(strings.ToLower(strings.TrimSpace(s)))
}

// ParseSortOrder accepts asc/ascending and desc/descending.
func ParseSortOrder(s string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending
	case "desc", "descending":
		return Descending
	}
	return SortOrder(s)
}

// Selection is the shopper's current view of the catalog. It belongs to the
// caller; the engine only reads it.
type Selection struct {
	Category string    `json:"category"`
	Field    SortField `json:"sort"`
	Order    SortOrder `json:"order"`
}

func DefaultSelection() Selection {
	return Selection{Category: models.AllCategories, Field: SortByID, Order: Ascending}
}

// SortBy applies a column click: the same field flips the order, a new field
// starts ascending.
func (s Selection) SortBy(field SortField) Selection {
	if s.Field == field {
		s.Order = s.Order.Reverse()
		return s
	}
	s.Field = field
	s.Order = Ascending
	return s
}

// WithCategory changes the category and leaves sorting alone.
func (s Selection) WithCategory(category string) Selection {
	s.Category = category
	return s
}

// Query filters then sorts products according to sel.
func Query(products []models.Product, sel Selection) []models.Product {
	return Sort(Filter(products, sel.Category), sel.Field, sel.Order)
}

// Filter keeps products whose type equals category, in input order.
// AllCategories keeps everything; an unknown category yields nothing.
func Filter(products []models.Product, category string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category == models.AllCategories || p.Type == category {
			out = append(out, p)
		}
	}
	return out
}

// Sort orders products stably by field. Equal elements keep their input
// order in both directions. An invalid field or order yields nothing.
func Sort(products []models.Product, field SortField, order SortOrder) []models.Product {
	if !field.Valid() || !order.Valid() {
		return []models.Product{}
	}

	out := slices.Clone(products)
	if out == nil {
		out = []models.Product{}
	}

	compare := comparator(field)
	if order == Descending {
		slices.SortStableFunc(out, func(a, b models.Product) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(out, compare)
	}
	return out
}

func comparator(field SortField) func(a, b models.Product) int {
	switch field {
	case SortByTitle:
		return func(a, b models.Product) int { return cmp.Compare(a.Title, b.Title) }
	case SortByType:
		return func(a, b models.Product) int { return cmp.Compare(a.Type, b.Type) }
	case SortByPrice:
		return func(a, b models.Product) int { return a.Price.Compare(b.Price) }
	default:
		return func(a, b models.Product) int { return cmp.Compare(a.ID, b.ID) }
	}
}
