package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/pkg/config"
	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
)

var _ ProductStore = (*BreakerStore)(nil)

// BreakerStore wraps a ProductStore in a circuit breaker.
// It opens once consecutive store faults exceed cfg.ConsecutiveFailures.
// Only infrastructure faults count as failures; domain outcomes such as
// ErrProductNotFound or ErrDuplicateName leave the breaker untouched, and so
// do cancelled or expired caller contexts.
type BreakerStore struct {
	next ProductStore
	cb   *gobreaker.CircuitBreaker[any]
}

// NewBreakerStore creates a BreakerStore around next using the given settings.
func NewBreakerStore(next ProductStore, cfg config.CircuitBreakerConfig, logger *slog.Logger) *BreakerStore {
	st := gobreaker.Settings{
		Name:        "product-store-cb",
		MaxRequests: 3,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			total := counts.TotalSuccesses + counts.TotalFailures
			return counts.ConsecutiveFailures > cfg.ConsecutiveFailures ||
				(total > cfg.ConsecutiveFailures &&
					float64(counts.TotalFailures)/float64(total)*100 > float64(cfg.ErrorRatePercent))
		},
		IsSuccessful: isStoreSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}
	return &BreakerStore{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[any](st),
	}
}

// isStoreSuccess reports whether err should be counted as a healthy store call.
func isStoreSuccess(err error) bool {
	return err == nil ||
		errors.Is(err, perrors.ErrProductNotFound) ||
		errors.Is(err, perrors.ErrDuplicateName) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (b *BreakerStore) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	return execute(b, func() (*Product, error) { return b.next.FindByID(ctx, id) })
}

func (b *BreakerStore) FindByName(ctx context.Context, name string) (*Product, error) {
	return execute(b, func() (*Product, error) { return b.next.FindByName(ctx, name) })
}

func (b *BreakerStore) SearchByName(ctx context.Context, query string) ([]Product, error) {
	return execute(b, func() ([]Product, error) { return b.next.SearchByName(ctx, query) })
}

func (b *BreakerStore) FindPage(ctx context.Context, page, size int32) (*Page, error) {
	return execute(b, func() (*Page, error) { return b.next.FindPage(ctx, page, size) })
}

func (b *BreakerStore) FindAll(ctx context.Context) ([]Product, error) {
	return execute(b, func() ([]Product, error) { return b.next.FindAll(ctx) })
}

func (b *BreakerStore) Save(ctx context.Context, product Product) (*Product, error) {
	return execute(b, func() (*Product, error) { return b.next.Save(ctx, product) })
}

func (b *BreakerStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := execute(b, func() (struct{}, error) { return struct{}{}, b.next.Delete(ctx, id) })
	return err
}

// State returns the current breaker state.
func (b *BreakerStore) State() gobreaker.State {
	return b.cb.State()
}

func execute[T any](b *BreakerStore, fn func() (T, error)) (T, error) {
	var zero T
	res, err := b.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%w: %v", perrors.ErrStoreUnavailable, err)
		}
		return zero, err
	}
	return res.(T), nil
}
