// Package boot decides, at startup and on demand, whether the cached
// credential still grants access.
package boot

import (
	"context"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/LerianStudio/license-gate/constant"
	"github.com/LerianStudio/license-gate/internal/expiry"
	"github.com/LerianStudio/license-gate/model"
	"github.com/LerianStudio/license-gate/pkg"
)

// CredentialCache is the part of the credential cache the sequencer needs.
type CredentialCache interface {
	Get(ctx context.Context) *model.LicenseRecord
	Set(ctx context.Context, rec model.LicenseRecord) error
	Clear(ctx context.Context) error
}

// Validator checks credentials against the license source.
type Validator interface {
	ValidateLicense(ctx context.Context, email, productKey string) model.Validation
}

// Sequencer runs the boot state machine.
// Callers serialize Run; it holds no lock of its own.
type Sequencer struct {
	cache     CredentialCache
	validator Validator
	expiry    *expiry.Evaluator
	logger    log.Logger
}

// New creates a Sequencer.
func New(cache CredentialCache, validator Validator, evaluator *expiry.Evaluator, logger log.Logger) *Sequencer {
	if evaluator == nil {
		evaluator = expiry.New(nil)
	}

	return &Sequencer{
		cache:     cache,
		validator: validator,
		expiry:    evaluator,
		logger:    logger,
	}
}

// Run reads the cache, revalidates online and returns the screen to show.
func (s *Sequencer) Run(ctx context.Context) model.BootDecision {
	rec := s.cache.Get(ctx)
	if !rec.HasCredentials() {
		s.logger.Debug("No cached credential, presenting login")

		return model.BootDecision{Screen: model.ScreenLogin, State: model.BootNoCache, Message: cn.MsgNoCachedLicense}
	}

	if s.expiry.IsExpired(rec.EndDate) {
		s.logger.Infof("Cached license ended on %q, clearing cache", rec.EndDate)
		s.clear(ctx)

		return model.BootDecision{
			Screen:  model.ScreenLogin,
			State:   model.BootLocallyExpired,
			Message: expiredMessage(rec.EndDate),
			EndDate: rec.EndDate,
		}
	}

	result := s.validator.ValidateLicense(ctx, rec.Email, rec.ProductKey)
	if !result.OK || s.expiry.IsExpired(result.EndDate) {
		s.logger.Warnf("Cached license rejected on revalidation: %s", result.Message)
		s.clear(ctx)

		message := result.Message
		if result.OK {
			message = expiredMessage(result.EndDate)
		}

		return model.BootDecision{
			Screen:  model.ScreenLogin,
			State:   model.BootRejected,
			Message: message,
			EndDate: result.EndDate,
		}
	}

	refreshed := *rec
	refreshed.EndDate = result.EndDate

	if err := s.cache.Set(ctx, refreshed); err != nil {
		s.logger.Warnf("Failed to refresh cached license end date: %v", err)
	}

	return model.BootDecision{
		OK:      true,
		Screen:  model.ScreenLicensed,
		State:   model.BootConfirmed,
		Message: result.Message,
		EndDate: result.EndDate,
	}
}

func (s *Sequencer) clear(ctx context.Context) {
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warnf("Failed to clear cached license: %v", err)
	}
}

func expiredMessage(endDate string) string {
	if endDate == "" {
		return pkg.ValidateBusinessError(cn.ErrLicenseEndDateMissing, "license").Error()
	}

	return pkg.ValidateBusinessError(cn.ErrLicenseExpired, "license", endDate).Error()
}
