package seed

import (
	"context"
	"fmt"

	"recipe-share/pkg/lookup"

	"github.com/gofiber/fiber/v2/log"
)

var DefaultMetrics = []string{"g", "kg", "ml", "l", "tsp", "tbsp", "cup", "pcs"}

// Seed find-or-creates the default metric rows. Running it twice is a no-op.
func Seed(ctx context.Context, lookupRepository lookup.LookupRepository) error {
	for _, name := range DefaultMetrics {
		if _, err := lookupRepository.UpsertMetric(ctx, name); err != nil {
			return fmt.Errorf("seed metric %q: %w", name, err)
		}
	}

	log.Infof("Seeded %d metrics", len(DefaultMetrics))
	return nil
}
