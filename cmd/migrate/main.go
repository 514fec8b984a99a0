// Command migrate applies the embedded inventory schema migrations and exits.
package main

import (
	"log"
	"os"

	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/store"
	"github.com/abgdnv/inventory/pkg/config/configloader"
)

func main() {
	cfg, err := configloader.Load[*config.Config]("inventory")
	if err != nil {
		log.Printf("failed to load configuration: %v", err)
		os.Exit(1)
	}
	if cfg.Storage.Driver != config.StoragePostgres {
		log.Printf("storage driver is %q, nothing to migrate", cfg.Storage.Driver)
		return
	}
	if err := store.Migrate(cfg.Database.URL); err != nil {
		log.Printf("migration failed: %v", err)
		os.Exit(1)
	}
	log.Println("migrations applied")
}
