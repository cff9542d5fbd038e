package repo

import (
	"context"
	"os"
	"testing"

	"github.com/rogerio-castellano/storefront-tracker/internal/db"
)

func TestPostgresProductRepository(t *testing.T) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	stmts := []string{
		`CREATE TEMP TABLE products (
			id TEXT PRIMARY KEY,
			position INT NOT NULL,
			title TEXT NOT NULL,
			details TEXT NOT NULL,
			type TEXT NOT NULL,
			price TEXT NOT NULL,
			stars DOUBLE PRECISION NOT NULL,
			rates INT NOT NULL,
			image_src TEXT NOT NULL
		)`,
		`INSERT INTO products VALUES
			('f1', 1, 'T-Shirt', 'cotton', 'Fashion', 'Rs. 2,450', 4, 150, '/t.png'),
			('e1', 2, 'Mouse', 'wireless', 'Electronics', '4950', 4, 88, '/m.png')`,
	}
	// Temp tables live on one connection; keep the pool at exactly one.
	database.SetMaxOpenConns(1)
	for _, stmt := range stmts {
		if _, err := database.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	r := NewPostgresProductRepository(database)

	products, err := r.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(products) != 2 || products[0].ID != "f1" {
		t.Fatalf("unexpected products: %+v", products)
	}
	if products[1].Price.Display != "Rs. 4,950" {
		t.Errorf("expected bare price to be formatted, got %q", products[1].Price.Display)
	}

	if _, err := r.GetByID(ctx, "nope"); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}
