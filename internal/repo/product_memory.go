package repo

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rogerio-castellano/storefront-tracker/internal/models"
)

//go:embed seed/catalog.json
var seedCatalog []byte

// InMemoryProductRepository is an immutable in-memory catalog.
type InMemoryProductRepository struct {
	products []models.Product
	index    map[string]int
}

// NewInMemoryProductRepository validates products and takes a private copy.
func NewInMemoryProductRepository(products []models.Product) (*InMemoryProductRepository, error) {
	if err := validateCatalog(products); err != nil {
		return nil, err
	}

	r := &InMemoryProductRepository{
		products: make([]models.Product, len(products)),
		index:    make(map[string]int, len(products)),
	}
	copy(r.products, products)
	for i, p := range r.products {
		r.index[p.ID] = i
	}
	return r, nil
}

// NewSeededProductRepository loads the catalog shipped with the binary.
func NewSeededProductRepository() (*InMemoryProductRepository, error) {
	products, err := DecodeCatalog(bytes.NewReader(seedCatalog))
	if err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	return NewInMemoryProductRepository(products)
}

// LoadCatalogFile reads a JSON array of products from path.
func LoadCatalogFile(path string) (*InMemoryProductRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	products, err := DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return NewInMemoryProductRepository(products)
}

// DecodeCatalog parses a JSON array of products. Prices may be formatted
// strings or bare numbers.
func DecodeCatalog(r io.Reader) ([]models.Product, error) {
	var products []models.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to read JSON: %w", err)
	}
	return products, nil
}

// Snapshot copies every product from src into an in-memory repository, so the
// catalog stays fixed for the rest of the process.
func Snapshot(ctx context.Context, src ProductRepository) (*InMemoryProductRepository, error) {
	products, err := src.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return NewInMemoryProductRepository(products)
}

// GetAll returns a copy of the catalog in repository order.
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	i, ok := r.index[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return r.products[i], nil
}

func (r *InMemoryProductRepository) Len() int {
	return len(r.products)
}
