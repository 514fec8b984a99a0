package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

func NewClient(url string, timeout time.Duration, opts ...nats.Option) (*nats.Conn, error) {
	defaults := []nats.Option{nats.Timeout(timeout), nats.Name("inventory-service")}
	nc, err := nats.Connect(url, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}

// NewJetStreamContext leaves nc open on failure; the caller owns the connection.
func NewJetStreamContext(nc *nats.Conn) (jetstream.JetStream, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}
	return js, nil
}

// EnsureStream creates the stream, or updates its subjects if it already exists.
func EnsureStream(ctx context.Context, js jetstream.JetStream, name string, subjects ...string) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     name,
		Subjects: subjects,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure stream %s: %w", name, err)
	}
	return nil
}

// Connect dials NATS, opens JetStream and ensures the stream exists.
// Any failure after the dial closes the connection before returning.
func Connect(ctx context.Context, url string, timeout time.Duration, stream string, subjects []string, opts ...nats.Option) (*nats.Conn, jetstream.JetStream, error) {
	nc, err := NewClient(url, timeout, opts...)
	if err != nil {
		return nil, nil, err
	}
	js, err := NewJetStreamContext(nc)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}
	streamCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := EnsureStream(streamCtx, js, stream, subjects...); err != nil {
		nc.Close()
		return nil, nil, err
	}
	return nc, js, nil
}
