package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/teerthankarjewels/storefront_api/internal/service"
)

// CatalogSyncWorker periodically refreshes the catalog snapshot from the
// commerce backend.
type CatalogSyncWorker struct {
	catalog  *service.CatalogService
	interval time.Duration
}

// NewCatalogSyncWorker constructs a CatalogSyncWorker.
func NewCatalogSyncWorker(catalog *service.CatalogService, interval time.Duration) *CatalogSyncWorker {
	return &CatalogSyncWorker{
		catalog:  catalog,
		interval: interval,
	}
}

// Start begins the periodic refresh loop and listens for context cancellation.
func (w *CatalogSyncWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting catalog sync worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Catalog sync worker stopped")
			return
		}
	}
}

func (w *CatalogSyncWorker) run(ctx context.Context) {
	start := time.Now()
	if err := w.catalog.LoadAll(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to refresh catalog, keeping last snapshot")
		return
	}
	log.Info().Dur("duration", time.Since(start)).Int("products", len(w.catalog.Products())).Msg("Catalog refresh completed")
}
