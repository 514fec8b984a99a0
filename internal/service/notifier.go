package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/abgdnv/inventory/internal/store"
	"github.com/abgdnv/inventory/pkg/messaging"
	"github.com/abgdnv/inventory/pkg/messaging/events"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

var _ InventoryService = (*Notifier)(nil)

// Notifier decorates an InventoryService and publishes an event after every successful mutation.
// A failed publish is logged and does not fail the operation.
type Notifier struct {
	next      InventoryService
	publisher messaging.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewNotifier creates a Notifier around next.
func NewNotifier(next InventoryService, publisher messaging.Publisher, logger *slog.Logger) *Notifier {
	return &Notifier{
		next:      next,
		publisher: publisher,
		logger:    logger.With("component", "notifier"),
		now:       time.Now,
	}
}

func (n *Notifier) CreateProduct(ctx context.Context, create ProductCreate) (*store.Product, error) {
	created, err := n.next.CreateProduct(ctx, create)
	if err != nil {
		return nil, err
	}
	n.publish(ctx, events.ProductCreatedEvent{
		Carrier:   carrier(ctx),
		ProductID: created.ID,
		Name:      created.Name,
		Quantity:  created.Quantity,
		Price:     created.Price.String(),
		CreatedAt: created.CreatedAt,
	})
	return created, nil
}

func (n *Notifier) GetProduct(ctx context.Context, id uuid.UUID) (*store.Product, error) {
	return n.next.GetProduct(ctx, id)
}

func (n *Notifier) ListProducts(ctx context.Context, page, size int32) (*store.Page, error) {
	return n.next.ListProducts(ctx, page, size)
}

func (n *Notifier) SearchProducts(ctx context.Context, query string) ([]store.Product, error) {
	return n.next.SearchProducts(ctx, query)
}

// UpdateQuantity publishes the change, plus an out-of-stock event when the new quantity is zero.
func (n *Notifier) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int32) (*store.Product, error) {
	// best effort: the previous quantity is informational only
	var oldQuantity int32
	if before, err := n.next.GetProduct(ctx, id); err == nil {
		oldQuantity = before.Quantity
	}

	updated, err := n.next.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		return nil, err
	}
	c := carrier(ctx)
	n.publish(ctx, events.ProductQuantityChangedEvent{
		Carrier:     c,
		ProductID:   updated.ID,
		OldQuantity: oldQuantity,
		NewQuantity: updated.Quantity,
		ChangedAt:   n.now(),
	})
	if updated.Quantity == 0 {
		n.publish(ctx, events.ProductOutOfStockEvent{
			Carrier:   c,
			ProductID: updated.ID,
			Name:      updated.Name,
		})
	}
	return updated, nil
}

func (n *Notifier) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := n.next.DeleteProduct(ctx, id); err != nil {
		return err
	}
	n.publish(ctx, events.ProductDeletedEvent{
		Carrier:   carrier(ctx),
		ProductID: id,
		DeletedAt: n.now(),
	})
	return nil
}

func (n *Notifier) GetSummary(ctx context.Context) (*ProductSummary, error) {
	return n.next.GetSummary(ctx)
}

func (n *Notifier) publish(ctx context.Context, event messaging.Event) {
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.logger.ErrorContext(ctx, "Failed to publish event", "subject", event.Subject(), "error", err)
	}
}

// carrier captures the current trace context so consumers can continue the trace.
func carrier(ctx context.Context) map[string]string {
	c := make(propagation.MapCarrier)
	otel.GetTextMapPropagator().Inject(ctx, c)
	return c
}
