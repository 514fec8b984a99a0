// Package config defines the configuration of the inventory service.
package config

import (
	"fmt"
	"strings"

	"github.com/abgdnv/inventory/pkg/config"
	"github.com/abgdnv/inventory/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type StorageConfig struct {
	Driver string `koanf:"driver"`
}

func (c *StorageConfig) Validate() error {
	switch c.Driver {
	case StoragePostgres, StorageMemory:
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q, expected %s or %s", c.Driver, StoragePostgres, StorageMemory)
	}
}

type Config struct {
	HTTPServer config.HTTPConfig       `koanf:"server"`
	GRPC       config.GrpcServerConfig `koanf:"grpc"`
	Storage    StorageConfig           `koanf:"storage"`
	Database   config.DatabaseConfig   `koanf:"database"`
	Log        config.LogConfig        `koanf:"log"`
	PProf      config.PProfConfig      `koanf:"pprof"`
	Shutdown   config.ShutdownConfig   `koanf:"shutdown"`
	Telemetry  config.TelemetryConfig  `koanf:"telemetry"`
	NATS       config.NATSConfig       `koanf:"nats"`
	Resilience config.ResilienceConfig `koanf:"resilience"`
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.GRPC.String())
	b.WriteString("\n--- Storage ---\n")
	b.WriteString(fmt.Sprintf("  driver: %s\n", c.Storage.Driver))
	if c.Storage.Driver == StoragePostgres {
		b.WriteString(c.Database.String())
	}
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Shutdown.String())
	b.WriteString(c.Telemetry.String())
	b.WriteString(c.NATS.String())
	b.WriteString(c.Resilience.String())
	return b.String()
}

// Validate checks every section. The database section is only checked for the postgres driver.
func (c *Config) Validate() error {
	validators := []configloader.Validator{
		&c.HTTPServer,
		&c.GRPC,
		&c.Storage,
		&c.Log,
		&c.PProf,
		&c.Shutdown,
		&c.Telemetry,
		&c.NATS,
		&c.Resilience,
	}
	if c.Storage.Driver == StoragePostgres {
		validators = append(validators, &c.Database)
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
