package gate

import (
	"context"

	cn "github.com/LerianStudio/license-gate/constant"
	"github.com/LerianStudio/license-gate/model"
	"github.com/LerianStudio/license-gate/pkg"
)

const bootFlightKey = "boot"

// Validate checks credentials online. On success the credentials, as typed,
// are cached with the returned end date.
func (c *Client) Validate(ctx context.Context, email, productKey string) model.Validation {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := c.apiClient.ValidateLicense(ctx, email, productKey)
	c.metrics.Validation(validationOutcome(res))

	if !res.OK {
		c.logger.Infof("License validation rejected: %s", res.Message)
		return res
	}

	rec := model.LicenseRecord{Email: email, ProductKey: productKey, EndDate: res.EndDate}
	if err := c.cacheManager.Set(ctx, rec); err != nil {
		c.logger.Warnf("License valid but not fully cached: %v", err)
	}

	c.processValidResult(res.EndDate)

	return res
}

// CachedStatus describes the cached credential without contacting the source.
func (c *Client) CachedStatus(ctx context.Context) model.CacheStatus {
	rec := c.cacheManager.Get(ctx)
	if !rec.HasCredentials() {
		return model.CacheStatus{Message: cn.MsgNoCachedLicense}
	}

	status := model.CacheStatus{
		OK:         true,
		Email:      rec.Email,
		ProductKey: pkg.MaskKey(rec.ProductKey),
		EndDate:    rec.EndDate,
		Expired:    c.expiry.IsExpired(rec.EndDate),
	}

	if !status.Expired {
		status.DaysLeft = c.expiry.DaysLeft(rec.EndDate)
	}

	return status
}

// ClearCache removes the cached credential from every tier.
func (c *Client) ClearCache(ctx context.Context) model.CommandResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cacheManager.Clear(ctx); err != nil {
		c.logger.Errorf("Failed to clear license cache: %v", err)
		return model.CommandResult{Message: cn.MsgFailedToClearCache}
	}

	return model.CommandResult{OK: true, Message: cn.MsgCacheCleared}
}

// Boot runs the startup sequence: cached credentials are always
// revalidated online before the licensed screen is chosen.
func (c *Client) Boot(ctx context.Context) model.BootDecision {
	return c.runSequence(ctx, "boot")
}

// RevalidateNow runs the same sequence as Boot on demand.
func (c *Client) RevalidateNow(ctx context.Context) model.BootDecision {
	return c.runSequence(ctx, "revalidate")
}

func (c *Client) runSequence(ctx context.Context, trigger string) model.BootDecision {
	v, _, shared := c.bootFlight.Do(bootFlightKey, func() (any, error) {
		c.mu.Lock()
		defer c.mu.Unlock()

		// Revalidation always reads the live license list.
		c.apiClient.InvalidateRecords()

		decision := c.sequencer.Run(ctx)
		c.metrics.BootDecision(string(decision.State))

		c.logger.Infof("License %s decision: %s (%s)", trigger, decision.Screen, decision.State)

		if decision.Licensed() {
			c.processValidResult(decision.EndDate)
		}

		return decision, nil
	})

	if shared {
		c.logger.Debugf("License %s joined a sequence already in flight", trigger)
	}

	return v.(model.BootDecision)
}

// Logout forgets the cached credential and returns the login decision.
func (c *Client) Logout(ctx context.Context) model.BootDecision {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cacheManager.Clear(ctx); err != nil {
		c.logger.Warnf("Logout could not clear every cache tier: %v", err)
	}

	c.apiClient.InvalidateRecords()

	c.metrics.BootDecision(string(model.BootLoggedOut))

	return model.BootDecision{Screen: model.ScreenLogin, State: model.BootLoggedOut, Message: cn.MsgLoggedOut}
}

// IsLicensed reports whether a cached, locally unexpired credential exists.
// It does not contact the license source.
func (c *Client) IsLicensed(ctx context.Context) bool {
	rec := c.cacheManager.Get(ctx)
	return rec.HasCredentials() && !c.expiry.IsExpired(rec.EndDate)
}

// EnsureLicensed runs the boot sequence and calls the termination handler
// when it does not end on the licensed screen.
func (c *Client) EnsureLicensed(ctx context.Context) model.BootDecision {
	decision := c.Boot(ctx)
	if !decision.Licensed() {
		c.logger.Errorf("License check failed: %s", decision.Message)
		c.shutdownManager.Terminate(decision.Message)
	}

	return decision
}

// processValidResult warns when the license is close to its end date.
func (c *Client) processValidResult(endDate string) {
	days := c.expiry.DaysLeft(endDate)
	if days < 0 {
		return
	}

	if days <= cn.ExpiryDaysToUrgentWarn {
		c.logger.Warnf("WARNING: License expires in %d days. Contact your account manager to renew", days)
	} else if days <= cn.ExpiryDaysToNormalWarn {
		c.logger.Warnf("License expires in %d days", days)
	}
}

func validationOutcome(v model.Validation) string {
	switch {
	case v.OK:
		return "valid"
	case v.Offline:
		return "offline"
	default:
		return "rejected"
	}
}
