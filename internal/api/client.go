package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/LerianStudio/license-gate/constant"
	libErr "github.com/LerianStudio/license-gate/error"
	"github.com/LerianStudio/license-gate/internal/cache"
	"github.com/LerianStudio/license-gate/internal/config"
	"github.com/LerianStudio/license-gate/internal/expiry"
	"github.com/LerianStudio/license-gate/model"
	"github.com/LerianStudio/license-gate/pkg"
	"github.com/sony/gobreaker/v2"
)

// maxPageSize bounds how much of the license page is read.
const maxPageSize = 8 << 20

// Client reads the remote license list and matches credentials against it
type Client struct {
	httpClient *http.Client
	config     *config.ClientConfig
	logger     log.Logger
	breaker    *gobreaker.CircuitBreaker[[]model.LicenseRecord]
	records    *cache.RecordCache
	expiry     *expiry.Evaluator
}

// New creates a new API client. records may be nil to disable memoization.
func New(cfg *config.ClientConfig, httpClient *http.Client, records *cache.RecordCache, evaluator *expiry.Evaluator, logger log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	if evaluator == nil {
		evaluator = expiry.New(nil)
	}

	c := &Client{
		httpClient: httpClient,
		config:     cfg,
		logger:     logger,
		records:    records,
		expiry:     evaluator,
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = cn.DefaultBreakerFailures
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]model.LicenseRecord](gobreaker.Settings{
		Name:        cn.BreakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// Only transport failures trip the breaker; a malformed page is the
		// source answering.
		IsSuccessful: func(err error) bool {
			var fetchErr pkg.FetchError
			return err == nil || !errors.As(err, &fetchErr)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnf("Circuit breaker %s changed from %s to %s", name, from, to)
		},
	})

	return c
}

// SetHTTPClient allows overriding the HTTP client (useful for testing)
func (c *Client) SetHTTPClient(client *http.Client) {
	if client != nil {
		c.httpClient = client
	}
}

// ValidateLicense checks email and productKey against the remote list.
// Every failure is reported in the returned Validation.
func (c *Client) ValidateLicense(ctx context.Context, email, productKey string) model.Validation {
	if strings.TrimSpace(c.config.LicenseListURL) == "" {
		err := pkg.ValidateBusinessError(cn.ErrLicenseSourceNotSet, "license")
		c.logger.Error(err.Error())

		return model.Validation{Message: fmt.Sprintf(cn.MsgValidationErrorFmt, err.Error())}
	}

	records, memoized, err := c.fetchRecords(ctx)
	if err == nil && memoized && Match(records, email, productKey) == nil {
		c.logger.Debug("No match in the memoized license list, fetching it again")
		c.records.Invalidate()

		records, _, err = c.fetchRecords(ctx)
	}

	if err != nil {
		c.logger.Warnf("License validation failed - error: %s", err.Error())

		return model.Validation{
			Message: fmt.Sprintf(cn.MsgValidationErrorFmt, err.Error()),
			Offline: libErr.IsConnectionError(err),
		}
	}

	rec := Match(records, email, productKey)
	if rec == nil {
		return model.Validation{Message: pkg.ValidateBusinessError(cn.ErrCredentialMismatch, "license").Error()}
	}

	if strings.TrimSpace(rec.EndDate) == "" {
		return model.Validation{Message: pkg.ValidateBusinessError(cn.ErrLicenseEndDateMissing, "license").Error()}
	}

	if c.expiry.IsExpired(rec.EndDate) {
		return model.Validation{
			Message: pkg.ValidateBusinessError(cn.ErrLicenseExpired, "license", rec.EndDate).Error(),
			EndDate: rec.EndDate,
		}
	}

	return model.Validation{OK: true, Message: cn.MsgLicenseValid, EndDate: rec.EndDate}
}

// FetchRecords returns the license list, from the record cache when fresh.
func (c *Client) FetchRecords(ctx context.Context) ([]model.LicenseRecord, error) {
	records, _, err := c.fetchRecords(ctx)
	return records, err
}

// fetchRecords also reports whether the list came from the record cache.
func (c *Client) fetchRecords(ctx context.Context) ([]model.LicenseRecord, bool, error) {
	if records, ok := c.records.Get(); ok {
		c.logger.Debugf("License list served from memory (%d records)", len(records))
		return records, true, nil
	}

	records, err := c.breaker.Execute(func() ([]model.LicenseRecord, error) {
		page, err := c.fetchPage(ctx)
		if err != nil {
			return nil, err
		}

		return ExtractRecords(page)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, false, pkg.FetchError{
				Code:    cn.ErrLicenseSourceFetch.Error(),
				Title:   "License source unavailable",
				Message: cn.MsgSourceUnavailable,
				Err:     err,
			}
		}

		return nil, false, err
	}

	c.records.Store(records)

	return records, false, nil
}

// InvalidateRecords forces the next FetchRecords to reach the network.
func (c *Client) InvalidateRecords() {
	c.records.Invalidate()
}

func (c *Client) fetchPage(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.LicenseListURL, nil)
	if err != nil {
		return nil, pkg.FetchError{Code: cn.ErrLicenseSourceFetch.Error(), Title: "Invalid license source", Err: err}
	}

	req.Header.Set("Accept", "text/html")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debugf("License page request failed - error: %s", err.Error())
		return nil, pkg.FetchError{Code: cn.ErrLicenseSourceFetch.Error(), Title: "License source unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := libErr.NewApiError(resp.StatusCode)
		c.logger.Debugf("License page answered with status %d", resp.StatusCode)

		return nil, pkg.FetchError{
			Code:       cn.ErrLicenseSourceFetch.Error(),
			Title:      "License source error",
			Message:    apiErr.Error(),
			StatusCode: resp.StatusCode,
			Err:        apiErr,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, pkg.FetchError{
			Code:       cn.ErrLicenseSourceFetch.Error(),
			Title:      "License source error",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("read license page: %w", err),
		}
	}

	return body, nil
}
