// Package store provides an interface for product storage operations.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a product entity in the store.
// ID is uuid.Nil until the store assigns one on the first Save.
type Product struct {
	ID        uuid.UUID
	Name      string
	Quantity  int32
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Page is a single page of products.
type Page struct {
	Items      []Product
	Page       int32 // zero-based
	Size       int32
	TotalItems int64
	TotalPages int32
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByName retrieves a product whose name is exactly the given one.
	// Returns ErrProductNotFound if no product has that name.
	FindByName(ctx context.Context, name string) (*Product, error)

	// SearchByName returns products whose name contains query, ignoring case.
	// Returns an empty slice if nothing matches.
	SearchByName(ctx context.Context, query string) ([]Product, error)

	// FindPage returns one page of products ordered by name.
	// A page past the end is returned empty.
	FindPage(ctx context.Context, page, size int32) (*Page, error)

	// FindAll returns all available products.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// Save inserts the product when its ID is uuid.Nil, otherwise updates it.
	// Returns ErrProductNotFound if the product to update does not exist
	// and ErrDuplicateName if the name is already taken.
	Save(ctx context.Context, product Product) (*Product, error)

	// Delete removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// totalPages returns the number of pages of the given size needed for total items.
func totalPages(total int64, size int32) int32 {
	if size <= 0 {
		return 0
	}
	return int32((total + int64(size) - 1) / int64(size))
}
