// Package messaging defines the events published by the inventory service and the publisher contract.
package messaging

import (
	"context"
)

// Subjects the inventory events are published on.
const (
	ProductsSubjectPrefix         = "inventory.products."
	ProductCreatedSubject         = ProductsSubjectPrefix + "created"
	ProductQuantityChangedSubject = ProductsSubjectPrefix + "quantity_changed"
	ProductDeletedSubject         = ProductsSubjectPrefix + "deleted"
	ProductOutOfStockSubject      = ProductsSubjectPrefix + "out_of_stock"
	ProductsSubjectWildcard       = ProductsSubjectPrefix + ">"
)

type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoopPublisher discards every event. It is used when messaging is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
