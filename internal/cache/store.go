// Package cache keeps the last known good license credential in a
// prioritized list of independent stores, and memoizes the fetched
// license list for a short time.
package cache

import (
	"context"

	"github.com/LerianStudio/license-gate/model"
)

// Store is one credential cache tier.
// Get returns nil, nil when the tier holds nothing.
// Clear on an empty tier is not an error.
type Store interface {
	Name() string
	Get(ctx context.Context) (*model.LicenseRecord, error)
	Set(ctx context.Context, rec model.LicenseRecord) error
	Clear(ctx context.Context) error
}
