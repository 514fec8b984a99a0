package nats

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/abgdnv/inventory/pkg/messaging"
	"github.com/abgdnv/inventory/pkg/messaging/events"
	"github.com/google/uuid"
	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcnats "github.com/testcontainers/testcontainers-go/modules/nats"
)

// skipIntegrationTests is the environment variable that controls whether to skip integration tests.
const skipIntegrationTests = "INVENTORY_SKIP_INTEGRATION_TESTS"
const natsImg = "nats:2.11.6-alpine"

type PublisherSuite struct {
	suite.Suite
	ctx           context.Context
	logger        *slog.Logger
	natsContainer *tcnats.NATSContainer
	nc            *natsgo.Conn
	js            jetstream.JetStream
}

func (s *PublisherSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var err error
	s.natsContainer, err = tcnats.Run(s.ctx, natsImg)
	s.Require().NoError(err, "Failed to run NATS container")

	natsURL, err := s.natsContainer.ConnectionString(s.ctx)
	s.Require().NoError(err)
	s.nc, err = NewClient(natsURL, 5*time.Second)
	s.Require().NoError(err)
	s.js, err = NewJetStreamContext(s.nc)
	s.Require().NoError(err)
}

func (s *PublisherSuite) TearDownSuite() {
	if s.nc != nil {
		s.nc.Close()
	}
	if err := testcontainers.TerminateContainer(s.natsContainer); err != nil {
		s.logger.Error("Failed to terminate NATS container", "error", err)
	}
}

func TestPublisherIntegration(t *testing.T) {
	if os.Getenv(skipIntegrationTests) == "1" {
		t.Skip("Skipping integration tests based on " + skipIntegrationTests + " env var")
	}
	suite.Run(t, new(PublisherSuite))
}

func (s *PublisherSuite) TestPublishProductCreated() {
	// given
	stream := "INVENTORY-" + uuid.NewString()
	s.Require().NoError(EnsureStream(s.ctx, s.js, stream, messaging.ProductsSubjectWildcard))
	// a second call updates the existing stream
	s.Require().NoError(EnsureStream(s.ctx, s.js, stream, messaging.ProductsSubjectWildcard))

	event := events.ProductCreatedEvent{
		ProductID: uuid.New(),
		Name:      "Apple",
		Quantity:  3,
		Price:     "4.5",
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	// when
	err := NewNatsPublisher(s.js).Publish(s.ctx, event)

	// then
	s.Require().NoError(err)
	consumer, err := s.js.CreateOrUpdateConsumer(s.ctx, stream, jetstream.ConsumerConfig{
		FilterSubject: messaging.ProductCreatedSubject,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	s.Require().NoError(err)
	batch, err := consumer.Fetch(1, jetstream.FetchMaxWait(5*time.Second))
	s.Require().NoError(err)

	var received []jetstream.Msg
	for msg := range batch.Messages() {
		received = append(received, msg)
		s.NoError(msg.Ack())
	}
	s.Require().NoError(batch.Error())
	s.Require().Len(received, 1)
	s.Equal(messaging.ProductCreatedSubject, received[0].Subject())

	var decoded events.ProductCreatedEvent
	s.Require().NoError(json.Unmarshal(received[0].Data(), &decoded))
	s.Equal(event.ProductID, decoded.ProductID)
	s.Equal("Apple", decoded.Name)
	s.Equal("4.5", decoded.Price)
}

func (s *PublisherSuite) TestConnect_ClosesConnectionWhenStreamSetupFails() {
	// given
	natsURL, err := s.natsContainer.ConnectionString(s.ctx)
	s.Require().NoError(err)
	closed := make(chan struct{})
	onClose := natsgo.ClosedHandler(func(*natsgo.Conn) { close(closed) })

	// when
	// stream names must not contain dots
	nc, js, err := Connect(s.ctx, natsURL, 5*time.Second, "INVENTORY.bad", []string{messaging.ProductsSubjectWildcard}, onClose)

	// then
	s.Require().Error(err)
	s.Nil(nc)
	s.Nil(js)
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		s.Fail("connection was not closed after stream setup failed")
	}
}

func (s *PublisherSuite) TestConnect_Success() {
	// given
	natsURL, err := s.natsContainer.ConnectionString(s.ctx)
	s.Require().NoError(err)
	stream := "INVENTORY-" + uuid.NewString()

	// when
	nc, js, err := Connect(s.ctx, natsURL, 5*time.Second, stream, []string{"connect." + uuid.NewString() + ".>"})

	// then
	s.Require().NoError(err)
	defer nc.Close()
	s.True(nc.IsConnected())
	info, err := js.Stream(s.ctx, stream)
	s.Require().NoError(err)
	s.Equal(stream, info.CachedInfo().Config.Name)
}
