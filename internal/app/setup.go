// Package app wires the inventory service together.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/service"
	"github.com/abgdnv/inventory/internal/store"
	grpcImpl "github.com/abgdnv/inventory/internal/transport/grpc"
	"github.com/abgdnv/inventory/internal/transport/rest"
	pb "github.com/abgdnv/inventory/pkg/api/gen/go/inventory/v1"
	pconfig "github.com/abgdnv/inventory/pkg/config"
	"github.com/abgdnv/inventory/pkg/messaging"
	"github.com/abgdnv/inventory/pkg/server"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Dependencies struct {
	InventoryService service.InventoryService
	Logger           *slog.Logger
}

// NewStore returns the configured product store wrapped in a circuit breaker.
// dbPool is only used by the postgres driver and may be nil otherwise.
func NewStore(cfg *config.Config, dbPool *pgxpool.Pool, logger *slog.Logger) (store.ProductStore, error) {
	var productStore store.ProductStore
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		if dbPool == nil {
			return nil, fmt.Errorf("postgres storage requires a database pool")
		}
		productStore = store.NewPgStore(dbPool)
	case config.StorageMemory:
		productStore = store.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	return store.NewBreakerStore(productStore, cfg.Resilience.CircuitBreaker, logger), nil
}

// SetupDependencies builds the service on top of productStore.
// Mutations are announced through publisher; pass messaging.NoopPublisher when events are disabled.
func SetupDependencies(productStore store.ProductStore, publisher messaging.Publisher, logger *slog.Logger) *Dependencies {
	svc := service.NewService(productStore)
	return &Dependencies{
		InventoryService: service.NewNotifier(svc, publisher, logger),
		Logger:           logger,
	}
}

// SetupHttpHandler initializes the router with the inventory routes, /healthz and /metrics.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	mux.Handle("/metrics", promhttp.Handler())
	return otelhttp.NewHandler(mux, "inventory-http",
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/metrics" && r.URL.Path != "/healthz"
		}),
	)
}

// wireRoutes sets up the HTTP routes for the inventory service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	rest.NewHandler(deps.InventoryService, deps.Logger).RegisterRoutes(mux)
}

// SetupHttpServer creates and configures the HTTP server.
func SetupHttpServer(deps *Dependencies, cfg pconfig.HTTPConfig) *http.Server {
	return server.NewHTTPServer(cfg, SetupHttpHandler(deps))
}

// SetupGrpcServer initializes the gRPC server with the inventory and health services.
func SetupGrpcServer(deps *Dependencies, reflectionEnabled bool) *grpc.Server {
	inventoryRegisterFunc := func(s *grpc.Server) {
		pb.RegisterInventoryServiceServer(s, grpcImpl.NewServer(deps.InventoryService, deps.Logger))
	}
	healthRegisterFunc := func(s *grpc.Server) {
		healthpb.RegisterHealthServer(s, health.NewServer())
	}
	return server.NewGRPCServer(deps.Logger, reflectionEnabled, inventoryRegisterFunc, healthRegisterFunc)
}
