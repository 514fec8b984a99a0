// Package service provides the implementation of inventory business logic.
package service

import (
	"context"
	"fmt"
	"strings"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// InventoryService defines the operations for managing the product inventory.
// It enforces the inventory rules on top of a store.ProductStore.
type InventoryService interface {
	// CreateProduct validates and stores a new product.
	// Returns ErrDuplicateName, ErrInvalidQuantity or ErrInvalidPrice on a rule violation.
	CreateProduct(ctx context.Context, create ProductCreate) (*store.Product, error)

	// GetProduct retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	GetProduct(ctx context.Context, id uuid.UUID) (*store.Product, error)

	// ListProducts returns one page of products. Page parameters are passed to the store as is.
	ListProducts(ctx context.Context, page, size int32) (*store.Page, error)

	// SearchProducts returns products whose name contains query, ignoring case.
	SearchProducts(ctx context.Context, query string) ([]store.Product, error)

	// UpdateQuantity replaces the quantity of a product, leaving everything else untouched.
	// Returns ErrProductNotFound or ErrInvalidQuantity.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int32) (*store.Product, error)

	// DeleteProduct removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID, including on a repeated call.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// GetSummary computes inventory statistics over all products.
	GetSummary(ctx context.Context) (*ProductSummary, error)
}

// ProductCreate holds the input for CreateProduct.
// A nil Quantity defaults to zero.
type ProductCreate struct {
	Name     string
	Quantity *int32
	Price    decimal.Decimal
}

// Service implements InventoryService. It holds no mutable state.
type Service struct {
	store store.ProductStore

	createdCounter metric.Int64Counter
	deletedCounter metric.Int64Counter
	updatedCounter metric.Int64Counter
}

// NewService creates a new instance of InventoryService with the provided store.
func NewService(productStore store.ProductStore) *Service {
	meter := otel.Meter("inventory-service")
	return &Service{
		store:          productStore,
		createdCounter: mustCounter(meter, "inventory_products_created", "Total number of created products"),
		deletedCounter: mustCounter(meter, "inventory_products_deleted", "Total number of deleted products"),
		updatedCounter: mustCounter(meter, "inventory_quantity_updates", "Total number of quantity updates"),
	}
}

func mustCounter(meter metric.Meter, name, description string) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		panic(fmt.Sprintf("failed to create %s counter: %v", name, err))
	}
	return counter
}

// CreateProduct checks name uniqueness, quantity and price, in that order, and saves the product.
func (s *Service) CreateProduct(ctx context.Context, create ProductCreate) (*store.Product, error) {
	if strings.TrimSpace(create.Name) == "" {
		return nil, perrors.ErrInvalidName
	}

	if err := s.ensureNameAvailable(ctx, create.Name); err != nil {
		return nil, err
	}

	var quantity int32
	if create.Quantity != nil {
		if *create.Quantity < 0 {
			return nil, perrors.ErrInvalidQuantity
		}
		quantity = *create.Quantity
	}

	if create.Price.IsNegative() {
		return nil, perrors.ErrInvalidPrice
	}

	created, err := s.store.Save(ctx, store.Product{
		Name:     create.Name,
		Quantity: quantity,
		Price:    create.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.createdCounter.Add(ctx, 1)

	return created, nil
}

// ensureNameAvailable returns ErrDuplicateName if a product already uses name.
// The check is advisory under concurrency; the store's unique constraint is authoritative.
func (s *Service) ensureNameAvailable(ctx context.Context, name string) error {
	_, err := s.store.FindByName(ctx, name)
	switch {
	case err == nil:
		return perrors.ErrDuplicateName
	case isNotFound(err):
		return nil
	default:
		return fmt.Errorf("failed to check product name: %w", err)
	}
}

// GetProduct retrieves a product by its ID.
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*store.Product, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	return product, nil
}

// ListProducts retrieves a page of products.
func (s *Service) ListProducts(ctx context.Context, page, size int32) (*store.Page, error) {
	result, err := s.store.FindPage(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return result, nil
}

// SearchProducts retrieves the products whose name contains query, ignoring case.
func (s *Service) SearchProducts(ctx context.Context, query string) ([]store.Product, error) {
	products, err := s.store.SearchByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	if products == nil {
		products = []store.Product{}
	}
	return products, nil
}

// UpdateQuantity sets the quantity of an existing product.
func (s *Service) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int32) (*store.Product, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	if quantity < 0 {
		return nil, perrors.ErrInvalidQuantity
	}

	product.Quantity = quantity
	updated, err := s.store.Save(ctx, *product)
	if err != nil {
		return nil, fmt.Errorf("failed to update quantity for product with ID %s: %w", id, err)
	}
	s.updatedCounter.Add(ctx, 1)

	return updated, nil
}

// DeleteProduct deletes an existing product.
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.FindByID(ctx, id); err != nil {
		return fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with ID %s: %w", id, err)
	}
	s.deletedCounter.Add(ctx, 1)

	return nil
}

// GetSummary reads every product and aggregates them.
func (s *Service) GetSummary(ctx context.Context) (*ProductSummary, error) {
	products, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return Summarize(products), nil
}
