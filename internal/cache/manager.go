package cache

import (
	"context"
	"errors"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/license-gate/constant"
	"github.com/LerianStudio/license-gate/internal/metrics"
	"github.com/LerianStudio/license-gate/model"
	"github.com/LerianStudio/license-gate/pkg"
)

// Manager reads and writes the credential across its tiers in priority order.
// Tiers are never reconciled: Get returns the first record found.
type Manager struct {
	stores  []Store
	logger  log.Logger
	metrics *metrics.Recorder
}

// New creates a credential cache manager over stores, highest priority first.
func New(logger log.Logger, recorder *metrics.Recorder, stores ...Store) *Manager {
	return &Manager{
		stores:  stores,
		logger:  logger,
		metrics: recorder,
	}
}

// Tiers returns the tier names in priority order.
func (m *Manager) Tiers() []string {
	names := make([]string, 0, len(m.stores))
	for _, s := range m.stores {
		names = append(names, s.Name())
	}

	return names
}

// Get returns the first cached record, or nil when no tier holds one.
// A failing tier is treated as empty.
func (m *Manager) Get(ctx context.Context) *model.LicenseRecord {
	for _, s := range m.stores {
		rec, err := s.Get(ctx)
		if err != nil {
			m.fail(s.Name(), "get", err)
			continue
		}

		if rec != nil {
			m.logger.Debugf("Credential found in %s cache", s.Name())
			return rec
		}
	}

	return nil
}

// Set writes rec to every tier. A failure in one tier does not stop the others.
func (m *Manager) Set(ctx context.Context, rec model.LicenseRecord) error {
	var errs []error

	for _, s := range m.stores {
		if err := s.Set(ctx, rec); err != nil {
			errs = append(errs, m.fail(s.Name(), "set", err))
		}
	}

	return errors.Join(errs...)
}

// Clear removes the credential from every tier.
func (m *Manager) Clear(ctx context.Context) error {
	var errs []error

	for _, s := range m.stores {
		if err := s.Clear(ctx); err != nil {
			errs = append(errs, m.fail(s.Name(), "clear", err))
		}
	}

	return errors.Join(errs...)
}

func (m *Manager) fail(tier, op string, err error) error {
	ioErr := pkg.CacheIOError{
		Tier: tier,
		Op:   op,
		Code: constant.ErrCacheIO.Error(),
		Err:  err,
	}

	m.logger.Warnf("Credential cache failure: %v", ioErr)
	m.metrics.CacheError(tier, op)

	return ioErr
}
