package store

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// skipIntegrationTests is an environment variable that can be set to skip integration tests.
const skipIntegrationTests = "INVENTORY_SKIP_INTEGRATION_TESTS"

// PgStoreSuite runs the PgStore against a real PostgreSQL in a container.
type PgStoreSuite struct {
	suite.Suite
	pgContainer *postgres.PostgresContainer
	dbPool      *pgxpool.Pool
	store       *PgStore
	logger      *slog.Logger
	ctx         context.Context
}

func (s *PgStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var err error
	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:17.5-alpine",
		postgres.WithDatabase("inventory_db"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	s.Require().NoError(err, "Failed to run PostgreSQL container")

	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err, "Failed to get connection string from container")

	s.Require().NoError(Migrate(connStr), "Failed to apply migrations")
	// migrations are idempotent
	s.Require().NoError(Migrate(connStr))

	s.dbPool, err = pgxpool.New(s.ctx, connStr)
	s.Require().NoError(err, "Failed to create pgxpool")
	s.Require().NoError(s.dbPool.Ping(s.ctx))

	s.store = NewPgStore(s.dbPool)
	s.logger.Info("Initialization complete for PgStoreSuite")
}

func (s *PgStoreSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(s.ctx); err != nil {
			s.logger.Warn("failed to terminate PostgreSQL container", "error", err)
		}
	}
}

// SetupTest starts every test from an empty table.
func (s *PgStoreSuite) SetupTest() {
	_, err := s.dbPool.Exec(s.ctx, "TRUNCATE TABLE products")
	s.Require().NoError(err)
}

func TestPgStoreSuite(t *testing.T) {
	if os.Getenv(skipIntegrationTests) == "1" {
		t.Skip("Skipping integration tests based on " + skipIntegrationTests + " env var")
	}
	suite.Run(t, new(PgStoreSuite))
}

func (s *PgStoreSuite) save(name string, quantity int32, price string) *Product {
	p, err := s.store.Save(s.ctx, Product{Name: name, Quantity: quantity, Price: decimal.RequireFromString(price)})
	s.Require().NoError(err)
	return p
}

func (s *PgStoreSuite) TestSaveAndFind() {
	// given
	saved := s.save("Apple", 3, "12.345")

	// when
	byID, err := s.store.FindByID(s.ctx, saved.ID)
	s.Require().NoError(err)
	byName, err := s.store.FindByName(s.ctx, "Apple")
	s.Require().NoError(err)

	// then
	s.NotEqual(uuid.Nil, saved.ID)
	s.Equal(saved.ID, byID.ID)
	s.Equal(saved.ID, byName.ID)
	s.Equal(int32(3), byID.Quantity)
	s.True(decimal.RequireFromString("12.345").Equal(byID.Price), "price must keep its precision, got %s", byID.Price)
}

func (s *PgStoreSuite) TestSave_Update() {
	saved := s.save("Apple", 3, "1.00")
	saved.Quantity = 0

	updated, err := s.store.Save(s.ctx, *saved)

	s.Require().NoError(err)
	s.Equal(int32(0), updated.Quantity)
	s.Equal("Apple", updated.Name)
	s.True(saved.Price.Equal(updated.Price))
	s.False(updated.UpdatedAt.Before(saved.UpdatedAt))
}

func (s *PgStoreSuite) TestSave_Errors() {
	s.save("Apple", 1, "1")

	_, err := s.store.Save(s.ctx, Product{Name: "Apple", Price: decimal.NewFromInt(2)})
	s.ErrorIs(err, perrors.ErrDuplicateName)

	_, err = s.store.Save(s.ctx, Product{ID: uuid.New(), Name: "Ghost", Price: decimal.NewFromInt(2)})
	s.ErrorIs(err, perrors.ErrProductNotFound)

	_, err = s.store.FindByID(s.ctx, uuid.New())
	s.ErrorIs(err, perrors.ErrProductNotFound)
}

func (s *PgStoreSuite) TestSearchByName_CaseInsensitiveAndLiteral() {
	s.save("Green Apple", 1, "1")
	s.save("Banana", 1, "1")
	s.save("100% Juice", 1, "1")
	s.save("Fruit_Box", 1, "1")

	found, err := s.store.SearchByName(s.ctx, "APP")
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal("Green Apple", found[0].Name)

	found, err = s.store.SearchByName(s.ctx, "%")
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal("100% Juice", found[0].Name)

	found, err = s.store.SearchByName(s.ctx, "t_b")
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal("Fruit_Box", found[0].Name)

	found, err = s.store.SearchByName(s.ctx, "kiwi")
	s.Require().NoError(err)
	s.NotNil(found)
	s.Empty(found)
}

func (s *PgStoreSuite) TestFindPage() {
	for _, name := range []string{"Cherry", "Apple", "Banana"} {
		s.save(name, 1, "1")
	}

	page, err := s.store.FindPage(s.ctx, 1, 2)

	s.Require().NoError(err)
	s.Equal(int64(3), page.TotalItems)
	s.Equal(int32(2), page.TotalPages)
	s.Require().Len(page.Items, 1)
	s.Equal("Cherry", page.Items[0].Name)

	page, err = s.store.FindPage(s.ctx, 9, 2)
	s.Require().NoError(err)
	s.Empty(page.Items)
}

func (s *PgStoreSuite) TestDelete() {
	saved := s.save("Apple", 1, "1")

	s.Require().NoError(s.store.Delete(s.ctx, saved.ID))
	s.ErrorIs(s.store.Delete(s.ctx, saved.ID), perrors.ErrProductNotFound)

	all, err := s.store.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *PgStoreSuite) TestCheckConstraints() {
	_, err := s.dbPool.Exec(s.ctx, "INSERT INTO products (name, quantity, price) VALUES ('Bad', -1, 1)")
	s.Error(err)
	_, err = s.dbPool.Exec(s.ctx, "INSERT INTO products (name, quantity, price) VALUES ('Bad', 1, -1)")
	s.Error(err)
}
