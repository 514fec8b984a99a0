package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/google/uuid"
)

var _ ProductStore = (*MemoryStore)(nil)

// MemoryStore implements ProductStore using an in-memory map.
// Name uniqueness is enforced under the write lock.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[uuid.UUID]Product
	now      func() time.Time
}

// NewMemoryStore creates a new, empty instance of MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[uuid.UUID]Product),
		now:      time.Now,
	}
}

// FindByID retrieves a product by its ID.
func (s *MemoryStore) FindByID(_ context.Context, id uuid.UUID) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	return &p, nil
}

// FindByName retrieves a product by its exact name.
func (s *MemoryStore) FindByName(_ context.Context, name string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, perrors.ErrProductNotFound
}

// SearchByName returns products whose name contains query, ignoring case.
func (s *MemoryStore) SearchByName(_ context.Context, query string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	list := make([]Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			list = append(list, p)
		}
	}
	sortProducts(list)
	return list, nil
}

// FindPage returns one page of products ordered by name.
func (s *MemoryStore) FindPage(_ context.Context, page, size int32) (*Page, error) {
	s.mu.RLock()
	all := s.snapshot()
	s.mu.RUnlock()

	result := &Page{
		Items:      []Product{},
		Page:       page,
		Size:       size,
		TotalItems: int64(len(all)),
		TotalPages: totalPages(int64(len(all)), size),
	}
	if page < 0 || size <= 0 {
		return result, nil
	}
	start := int64(page) * int64(size)
	if start >= int64(len(all)) {
		return result, nil
	}
	end := min(start+int64(size), int64(len(all)))
	result.Items = all[start:end]
	return result, nil
}

// FindAll retrieves all products.
func (s *MemoryStore) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot(), nil
}

// Save inserts or updates a product.
func (s *MemoryStore) Save(_ context.Context, product Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, p := range s.products {
		if p.Name == product.Name && id != product.ID {
			return nil, perrors.ErrDuplicateName
		}
	}

	now := s.now()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
		product.CreatedAt = now
	} else {
		existing, ok := s.products[product.ID]
		if !ok {
			return nil, perrors.ErrProductNotFound
		}
		product.CreatedAt = existing.CreatedAt
	}
	product.UpdatedAt = now
	s.products[product.ID] = product

	return &product, nil
}

// Delete deletes a product by its ID.
func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return perrors.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

// snapshot copies all products sorted by name. Callers must hold the lock.
func (s *MemoryStore) snapshot() []Product {
	list := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	sortProducts(list)
	return list
}

func sortProducts(list []Product) {
	slices.SortFunc(list, func(a, b Product) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
}
