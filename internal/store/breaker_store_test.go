package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/pkg/config"
	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore returns err from FindByID and counts the calls it receives.
type failingStore struct {
	*MemoryStore
	err   error
	calls int
}

func (f *failingStore) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.MemoryStore.FindByID(ctx, id)
}

func newBreakerStore(next ProductStore) *BreakerStore {
	cfg := config.CircuitBreakerConfig{
		ConsecutiveFailures: 3,
		ErrorRatePercent:    100,
		OpenTimeout:         time.Minute,
	}
	return NewBreakerStore(next, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBreakerStore_OpensOnStoreFaults(t *testing.T) {
	// given
	ctx := context.Background()
	inner := &failingStore{MemoryStore: NewMemoryStore(), err: errors.New("connection refused")}
	b := newBreakerStore(inner)

	// when: more than ConsecutiveFailures faults
	for range 4 {
		_, err := b.FindByID(ctx, uuid.New())
		require.Error(t, err)
	}

	// then
	assert.Equal(t, gobreaker.StateOpen, b.State())
	_, err := b.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, perrors.ErrStoreUnavailable)
	assert.Equal(t, 4, inner.calls, "open breaker must not reach the store")
}

func TestBreakerStore_ToleratesConsecutiveFailuresSetting(t *testing.T) {
	// given
	ctx := context.Background()
	inner := &failingStore{MemoryStore: NewMemoryStore(), err: errors.New("connection refused")}
	b := newBreakerStore(inner)

	// when: exactly ConsecutiveFailures faults
	for range 3 {
		_, err := b.FindByID(ctx, uuid.New())
		require.Error(t, err)
	}

	// then
	assert.Equal(t, gobreaker.StateClosed, b.State())

	// when: one more
	_, err := b.FindByID(ctx, uuid.New())
	require.Error(t, err)

	// then
	assert.Equal(t, gobreaker.StateOpen, b.State())
}

func TestBreakerStore_IgnoresContextErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "canceled", err: context.Canceled},
		{name: "deadline exceeded", err: context.DeadlineExceeded},
		{name: "wrapped deadline exceeded", err: fmt.Errorf("query products: %w", context.DeadlineExceeded)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// given
			ctx := context.Background()
			inner := &failingStore{MemoryStore: NewMemoryStore(), err: tt.err}
			b := newBreakerStore(inner)

			// when
			for range 10 {
				_, err := b.FindByID(ctx, uuid.New())
				assert.ErrorIs(t, err, tt.err)
			}

			// then
			assert.Equal(t, gobreaker.StateClosed, b.State())
			assert.Equal(t, 10, inner.calls)
		})
	}
}

func TestBreakerStore_IgnoresDomainOutcomes(t *testing.T) {
	// given
	ctx := context.Background()
	inner := &failingStore{MemoryStore: NewMemoryStore()}
	b := newBreakerStore(inner)

	// when
	for range 10 {
		_, err := b.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, perrors.ErrProductNotFound)
	}

	// then
	assert.Equal(t, gobreaker.StateClosed, b.State())
	assert.Equal(t, 10, inner.calls)
}

func TestBreakerStore_PassesThrough(t *testing.T) {
	ctx := context.Background()
	b := newBreakerStore(NewMemoryStore())

	saved, err := b.Save(ctx, Product{Name: "Apple"})
	require.NoError(t, err)
	_, err = b.Save(ctx, Product{Name: "Apple"})
	assert.ErrorIs(t, err, perrors.ErrDuplicateName)

	all, err := b.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, b.Delete(ctx, saved.ID))
	assert.ErrorIs(t, b.Delete(ctx, saved.ID), perrors.ErrProductNotFound)
	assert.Equal(t, gobreaker.StateClosed, b.State())
}
