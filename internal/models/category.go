package models

// AllCategories is the "show all" selection. It is never a product type.
const AllCategories = "All"

const (
	Electronics    = "Electronics"
	Fashion        = "Fashion"
	KitchenDining  = "Kitchen & Dining"
	BeautyPersonal = "Beauty & Personal Care"
	HomeLiving     = "Home & Living"
)

var categories = []string{Electronics, Fashion, KitchenDining, BeautyPersonal, HomeLiving}

// Categories returns the closed set of product categories in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// CategoryRank is the position of label in Categories, or -1.
func CategoryRank(label string) int {
	for i, c := range categories {
		if c == label {
			return i
		}
	}
	return -1
}

func IsCategory(label string) bool {
	return CategoryRank(label) >= 0
}
