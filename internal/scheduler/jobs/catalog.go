package jobs

import (
	"context"

	"github.com/lunarium/arcana/internal/tarot"
	"github.com/lunarium/arcana/pkg/logger"
)

// CatalogRefreshJob reloads the card catalog from the store ahead of the
// in-process TTL so reads rarely pay the reload cost.
type CatalogRefreshJob struct {
	catalog *tarot.Catalog
	logger  *logger.Logger
}

// NewCatalogRefreshJob creates a new catalog refresh job.
func NewCatalogRefreshJob(catalog *tarot.Catalog, log *logger.Logger) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		catalog: catalog,
		logger:  log,
	}
}

// Name returns the job name.
func (j *CatalogRefreshJob) Name() string {
	return "catalog_refresh"
}

// Schedule returns the cron schedule (hourly, on the half hour).
func (j *CatalogRefreshJob) Schedule() string {
	return "0 30 * * * *"
}

// Run refreshes the catalog cache.
func (j *CatalogRefreshJob) Run(ctx context.Context) error {
	cards, err := j.catalog.Refresh(ctx)
	if err != nil {
		return err
	}

	j.logger.WithField("cards", len(cards)).Debug("Card catalog refreshed")
	return nil
}
