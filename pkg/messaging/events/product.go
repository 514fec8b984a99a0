package events

import (
	"encoding/json"
	"time"

	"github.com/abgdnv/inventory/pkg/messaging"
	"github.com/google/uuid"
)

type ProductCreatedEvent struct {
	Carrier   map[string]string `json:"carrier,omitempty"`
	ProductID uuid.UUID         `json:"product_id"`
	Name      string            `json:"name"`
	Quantity  int32             `json:"quantity"`
	Price     string            `json:"price"`
	CreatedAt time.Time         `json:"created_at"`
}

func (e ProductCreatedEvent) Subject() string {
	return messaging.ProductCreatedSubject
}

func (e ProductCreatedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}

type ProductQuantityChangedEvent struct {
	Carrier     map[string]string `json:"carrier,omitempty"`
	ProductID   uuid.UUID         `json:"product_id"`
	OldQuantity int32             `json:"old_quantity"`
	NewQuantity int32             `json:"new_quantity"`
	ChangedAt   time.Time         `json:"changed_at"`
}

func (e ProductQuantityChangedEvent) Subject() string {
	return messaging.ProductQuantityChangedSubject
}

func (e ProductQuantityChangedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}

// ProductOutOfStockEvent is published when an update brings a product's quantity to zero.
type ProductOutOfStockEvent struct {
	Carrier   map[string]string `json:"carrier,omitempty"`
	ProductID uuid.UUID         `json:"product_id"`
	Name      string            `json:"name"`
}

func (e ProductOutOfStockEvent) Subject() string {
	return messaging.ProductOutOfStockSubject
}

func (e ProductOutOfStockEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}

type ProductDeletedEvent struct {
	Carrier   map[string]string `json:"carrier,omitempty"`
	ProductID uuid.UUID         `json:"product_id"`
	DeletedAt time.Time         `json:"deleted_at"`
}

func (e ProductDeletedEvent) Subject() string {
	return messaging.ProductDeletedSubject
}

func (e ProductDeletedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}
