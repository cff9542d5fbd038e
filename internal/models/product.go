package models

// Product represents an item in the storefront catalog. Products are loaded
// once per process and never mutated afterwards.
type Product struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Details  string  `json:"details"`
	Type     string  `json:"type"`
	Price    Price   `json:"price"`
	Stars    float64 `json:"stars"`
	Rates    int     `json:"rates"`
	ImageSrc string  `json:"imageSrc"`
}
