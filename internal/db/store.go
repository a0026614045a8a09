package db

import "github.com/nightjarhq/nightjar/internal/services"

// Store aggregates every per-service store interface so callers can wire one
// backend into all services.
type Store interface {
	services.AuthStore
	services.GatewayStore
	services.ScheduleStore
	services.ResponseStore
	services.JourneyStore
	services.CatalogStore
	SeedCatalog(cat *services.Catalog) error
}

var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
