package service

import (
	"context"
	"errors"
	"testing"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faultyStore wraps a MemoryStore and fails every call with err when err is set.
type faultyStore struct {
	*store.MemoryStore
	err   error
	saves int
}

func newFaultyStore() *faultyStore {
	return &faultyStore{MemoryStore: store.NewMemoryStore()}
}

func (f *faultyStore) FindByID(ctx context.Context, id uuid.UUID) (*store.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.MemoryStore.FindByID(ctx, id)
}

func (f *faultyStore) FindByName(ctx context.Context, name string) (*store.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.MemoryStore.FindByName(ctx, name)
}

func (f *faultyStore) FindAll(ctx context.Context) ([]store.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.MemoryStore.FindAll(ctx)
}

func (f *faultyStore) Save(ctx context.Context, product store.Product) (*store.Product, error) {
	f.saves++
	if f.err != nil {
		return nil, f.err
	}
	return f.MemoryStore.Save(ctx, product)
}

func ptr[T any](v T) *T { return &v }

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func mustCreate(t *testing.T, s *Service, name string, quantity int32, p string) *store.Product {
	t.Helper()
	created, err := s.CreateProduct(context.Background(), ProductCreate{Name: name, Quantity: ptr(quantity), Price: price(p)})
	require.NoError(t, err)
	return created
}

func TestService_CreateProduct(t *testing.T) {
	testCases := []struct {
		name        string
		existing    []string
		create      ProductCreate
		expectError error
	}{
		{
			name:   "Success - new product",
			create: ProductCreate{Name: "Apple", Quantity: ptr[int32](10), Price: price("1.25")},
		},
		{
			name:   "Success - zero price and quantity",
			create: ProductCreate{Name: "Freebie", Quantity: ptr[int32](0), Price: decimal.Zero},
		},
		{
			name:        "Error - duplicate name",
			existing:    []string{"Apple"},
			create:      ProductCreate{Name: "Apple", Quantity: ptr[int32](1), Price: price("1")},
			expectError: perrors.ErrDuplicateName,
		},
		{
			name:        "Error - negative quantity",
			create:      ProductCreate{Name: "Apple", Quantity: ptr[int32](-1), Price: price("1")},
			expectError: perrors.ErrInvalidQuantity,
		},
		{
			name:        "Error - negative price",
			create:      ProductCreate{Name: "Apple", Quantity: ptr[int32](1), Price: price("-0.01")},
			expectError: perrors.ErrInvalidPrice,
		},
		{
			name:        "Error - duplicate wins over negative quantity",
			existing:    []string{"Apple"},
			create:      ProductCreate{Name: "Apple", Quantity: ptr[int32](-5), Price: price("-1")},
			expectError: perrors.ErrDuplicateName,
		},
		{
			name:        "Error - negative quantity wins over negative price",
			create:      ProductCreate{Name: "Apple", Quantity: ptr[int32](-5), Price: price("-1")},
			expectError: perrors.ErrInvalidQuantity,
		},
		{
			name:        "Error - blank name",
			create:      ProductCreate{Name: "  ", Price: price("1")},
			expectError: perrors.ErrInvalidName,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			st := newFaultyStore()
			svc := NewService(st)
			for _, name := range tc.existing {
				mustCreate(t, svc, name, 1, "1")
			}
			savesBefore := st.saves

			// when
			created, err := svc.CreateProduct(context.Background(), tc.create)

			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, created)
				assert.Equal(t, savesBefore, st.saves, "nothing must be written on a rule violation")
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, created.ID)
			assert.Equal(t, tc.create.Name, created.Name)
			assert.Equal(t, *tc.create.Quantity, created.Quantity)
			assert.True(t, tc.create.Price.Equal(created.Price))
		})
	}
}

func TestService_CreateProduct_DefaultQuantity(t *testing.T) {
	// given
	svc := NewService(store.NewMemoryStore())

	// when
	created, err := svc.CreateProduct(context.Background(), ProductCreate{Name: "Pear", Price: price("2.00")})

	// then
	require.NoError(t, err)
	assert.Equal(t, int32(0), created.Quantity)
}

func TestService_ReadAfterWrite(t *testing.T) {
	// given
	ctx := context.Background()
	svc := NewService(store.NewMemoryStore())
	created := mustCreate(t, svc, "Apple", 3, "4.50")

	// when
	fetched, err := svc.GetProduct(ctx, created.ID)
	page, listErr := svc.ListProducts(ctx, 0, 10)

	// then
	require.NoError(t, err)
	require.NoError(t, listErr)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, created.Quantity, fetched.Quantity)
	assert.True(t, created.Price.Equal(fetched.Price))
	require.Len(t, page.Items, 1)
	assert.Equal(t, created.ID, page.Items[0].ID)
}

func TestService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - only quantity changes", func(t *testing.T) {
		// given
		svc := NewService(store.NewMemoryStore())
		created := mustCreate(t, svc, "Apple", 3, "4.50")

		// when
		updated, err := svc.UpdateQuantity(ctx, created.ID, 0)

		// then
		require.NoError(t, err)
		assert.Equal(t, int32(0), updated.Quantity)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.Name, updated.Name)
		assert.True(t, created.Price.Equal(updated.Price))
	})

	t.Run("Error - negative quantity leaves product unchanged", func(t *testing.T) {
		// given
		svc := NewService(store.NewMemoryStore())
		created := mustCreate(t, svc, "Apple", 3, "4.50")

		// when
		_, err := svc.UpdateQuantity(ctx, created.ID, -1)

		// then
		assert.ErrorIs(t, err, perrors.ErrInvalidQuantity)
		fetched, getErr := svc.GetProduct(ctx, created.ID)
		require.NoError(t, getErr)
		assert.Equal(t, int32(3), fetched.Quantity)
	})

	t.Run("Error - not found wins over negative quantity", func(t *testing.T) {
		svc := NewService(store.NewMemoryStore())

		_, err := svc.UpdateQuantity(ctx, uuid.New(), -1)

		assert.ErrorIs(t, err, perrors.ErrProductNotFound)
	})
}

func TestService_DeleteProduct(t *testing.T) {
	// given
	ctx := context.Background()
	svc := NewService(store.NewMemoryStore())
	created := mustCreate(t, svc, "Apple", 3, "4.50")

	// when
	err := svc.DeleteProduct(ctx, created.ID)

	// then
	require.NoError(t, err)
	_, err = svc.UpdateQuantity(ctx, created.ID, 1)
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
	err = svc.DeleteProduct(ctx, created.ID)
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func TestService_SearchProducts(t *testing.T) {
	// given
	ctx := context.Background()
	svc := NewService(store.NewMemoryStore())
	mustCreate(t, svc, "Apple", 1, "1")
	mustCreate(t, svc, "Banana", 1, "1")

	testCases := []struct {
		query    string
		expected []string
	}{
		{query: "app", expected: []string{"Apple"}},
		{query: "APP", expected: []string{"Apple"}},
		{query: "an", expected: []string{"Banana"}},
		{query: "a", expected: []string{"Apple", "Banana"}},
		{query: "kiwi", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			// when
			found, err := svc.SearchProducts(ctx, tc.query)

			// then
			require.NoError(t, err)
			require.NotNil(t, found)
			names := make([]string, 0, len(found))
			for _, p := range found {
				names = append(names, p.Name)
			}
			assert.ElementsMatch(t, tc.expected, names)
		})
	}
}

func TestService_GetSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("two products, one out of stock", func(t *testing.T) {
		// given
		svc := NewService(store.NewMemoryStore())
		a := mustCreate(t, svc, "A", 0, "10.00")
		mustCreate(t, svc, "B", 5, "20.00")

		// when
		summary, err := svc.GetSummary(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, summary.TotalProducts)
		assert.Equal(t, int64(5), summary.TotalQuantity)
		assert.Equal(t, "15.00", summary.AveragePrice.StringFixed(2))
		assert.Equal(t, []ProductRef{{ID: a.ID, Name: "A"}}, summary.OutOfStock)
	})

	t.Run("empty inventory", func(t *testing.T) {
		// given
		svc := NewService(store.NewMemoryStore())

		// when
		summary, err := svc.GetSummary(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, 0, summary.TotalProducts)
		assert.Equal(t, int64(0), summary.TotalQuantity)
		assert.True(t, summary.AveragePrice.IsZero())
		assert.NotNil(t, summary.OutOfStock)
		assert.Empty(t, summary.OutOfStock)
	})
}

func TestSummarize_Rounding(t *testing.T) {
	testCases := []struct {
		name     string
		prices   []string
		expected string
	}{
		{name: "exact", prices: []string{"10.00", "20.00"}, expected: "15.00"},
		{name: "rounds up", prices: []string{"10.00", "10.01", "10.01"}, expected: "10.01"},
		{name: "half rounds up", prices: []string{"0.005"}, expected: "0.01"},
		{name: "rounds down", prices: []string{"0.004"}, expected: "0.00"},
		{name: "thirds", prices: []string{"1", "0", "0"}, expected: "0.33"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			products := make([]store.Product, 0, len(tc.prices))
			for i, p := range tc.prices {
				products = append(products, store.Product{ID: uuid.New(), Name: string(rune('A' + i)), Quantity: 1, Price: price(p)})
			}

			// when
			summary := Summarize(products)

			// then
			assert.Equal(t, tc.expected, summary.AveragePrice.StringFixed(AveragePriceScale))
		})
	}
}

func TestService_StoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection refused")
	st := newFaultyStore()
	svc := NewService(st)
	st.err = storeErr

	_, err := svc.CreateProduct(ctx, ProductCreate{Name: "Apple", Price: price("1")})
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, perrors.IsBusinessRule(err))

	_, err = svc.GetProduct(ctx, uuid.New())
	assert.ErrorIs(t, err, storeErr)

	_, err = svc.UpdateQuantity(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, storeErr)

	err = svc.DeleteProduct(ctx, uuid.New())
	assert.ErrorIs(t, err, storeErr)

	_, err = svc.GetSummary(ctx)
	assert.ErrorIs(t, err, storeErr)
}
