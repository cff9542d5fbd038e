package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/storefront-tracker/internal/models"
)

// ProductRepository defines read access to the catalog.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, error)
}

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound    = errors.New("product not found")
	ErrDuplicateProductID = errors.New("duplicate product id")
	ErrUnknownCategory    = errors.New("unknown product category")
)

func validateCatalog(products []models.Product) error {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if p.ID == "" {
			return errors.New("product id is required")
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateProductID, p.ID)
		}
		seen[p.ID] = struct{}{}

		if !models.IsCategory(p.Type) {
			return fmt.Errorf("%w: product %s has type %q", ErrUnknownCategory, p.ID, p.Type)
		}
	}
	return nil
}
