package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndFind(t *testing.T) {
	// given
	ctx := context.Background()
	s := NewMemoryStore()

	// when
	saved, err := s.Save(ctx, Product{Name: "Apple", Quantity: 2, Price: decimal.RequireFromString("1.10")})

	// then
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	byID, err := s.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, *saved, *byID)

	byName, err := s.FindByName(ctx, "Apple")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byName.ID)

	_, err = s.FindByName(ctx, "apple")
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func TestMemoryStore_Save_Errors(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	apple, err := s.Save(ctx, Product{Name: "Apple"})
	require.NoError(t, err)
	pear, err := s.Save(ctx, Product{Name: "Pear"})
	require.NoError(t, err)

	_, err = s.Save(ctx, Product{Name: "Apple"})
	assert.ErrorIs(t, err, perrors.ErrDuplicateName)

	pear.Name = "Apple"
	_, err = s.Save(ctx, *pear)
	assert.ErrorIs(t, err, perrors.ErrDuplicateName)

	apple.Quantity = 9
	updated, err := s.Save(ctx, *apple)
	require.NoError(t, err)
	assert.Equal(t, int32(9), updated.Quantity)
	assert.Equal(t, apple.CreatedAt, updated.CreatedAt)

	_, err = s.Save(ctx, Product{ID: uuid.New(), Name: "Ghost"})
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	saved, err := s.Save(ctx, Product{Name: "Apple"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, saved.ID))
	assert.ErrorIs(t, s.Delete(ctx, saved.ID), perrors.ErrProductNotFound)
	_, err = s.FindByID(ctx, saved.ID)
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func TestMemoryStore_FindPage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, name := range []string{"Cherry", "Apple", "Banana", "Date", "Elderberry"} {
		_, err := s.Save(ctx, Product{Name: name})
		require.NoError(t, err)
	}

	testCases := []struct {
		name          string
		page, size    int32
		expectedNames []string
		expectedPages int32
	}{
		{name: "first page", page: 0, size: 2, expectedNames: []string{"Apple", "Banana"}, expectedPages: 3},
		{name: "last partial page", page: 2, size: 2, expectedNames: []string{"Elderberry"}, expectedPages: 3},
		{name: "past the end", page: 5, size: 2, expectedNames: []string{}, expectedPages: 3},
		{name: "all in one", page: 0, size: 20, expectedNames: []string{"Apple", "Banana", "Cherry", "Date", "Elderberry"}, expectedPages: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := s.FindPage(ctx, tc.page, tc.size)

			require.NoError(t, err)
			names := make([]string, 0, len(page.Items))
			for _, p := range page.Items {
				names = append(names, p.Name)
			}
			assert.Equal(t, tc.expectedNames, names)
			assert.Equal(t, int64(5), page.TotalItems)
			assert.Equal(t, tc.expectedPages, page.TotalPages)
		})
	}
}

func TestMemoryStore_SearchByName(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, name := range []string{"Green Apple", "apple pie", "Banana"} {
		_, err := s.Save(ctx, Product{Name: name})
		require.NoError(t, err)
	}

	found, err := s.SearchByName(ctx, "APPLE")

	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Green Apple", found[0].Name)
	assert.Equal(t, "apple pie", found[1].Name)
}

func TestMemoryStore_ConcurrentCreateSameName(t *testing.T) {
	// given
	ctx := context.Background()
	s := NewMemoryStore()
	const workers = 20

	// when
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Save(ctx, Product{Name: "Apple", Quantity: int32(i)})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	// then
	var ok, dup int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, perrors.ErrDuplicateName):
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, dup)
	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, fmt.Sprintf("expected exactly one product, got %v", all))
}
