package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/LerianStudio/license-gate/internal/cache"
	"github.com/LerianStudio/license-gate/internal/config"
	"github.com/LerianStudio/license-gate/internal/expiry"
	"github.com/LerianStudio/license-gate/model"
	"github.com/LerianStudio/license-gate/test/helper"
	"github.com/LerianStudio/license-gate/test/helper/testlogger"
	"github.com/LerianStudio/license-gate/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.Local)

func newTestClient(t *testing.T, url string, ttl time.Duration) (*Client, *testlogger.TestLogger) {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.LicenseListURL = url
	cfg.DataDir = t.TempDir()
	cfg.HTTPTimeout = 2 * time.Second

	records, err := cache.NewRecordCache(ttl)
	require.NoError(t, err)
	t.Cleanup(records.Close)

	logger := testlogger.New()
	evaluator := expiry.New(func() time.Time { return today })

	return New(&cfg, nil, records, evaluator, logger), logger
}

func TestValidateLicense(t *testing.T) {
	server := helper.NewLicenseServer(t,
		model.LicenseRecord{Email: "a@x.com", ProductKey: "K1", EndDate: "2025-03-14"},
		model.LicenseRecord{Email: "b@x.com", ProductKey: "K2", EndDate: "2025-03-15"},
		model.LicenseRecord{Email: "c@x.com", ProductKey: "K3", EndDate: ""},
		model.LicenseRecord{Email: "d@x.com", ProductKey: "K4", EndDate: "2026-01-01"},
	)
	client, _ := newTestClient(t, server.URL, 0)

	tests := []struct {
		name    string
		email   string
		key     string
		wantOK  bool
		wantMsg string
		wantEnd string
	}{
		{name: "expired yesterday", email: "a@x.com", key: "K1", wantMsg: "License expired on 2025-03-14.", wantEnd: "2025-03-14"},
		{name: "ends today", email: "b@x.com", key: "K2", wantOK: true, wantMsg: "License valid.", wantEnd: "2025-03-15"},
		{name: "missing end date", email: "c@x.com", key: "K3", wantMsg: "License end date missing."},
		{name: "valid normalized", email: "  D@X.COM ", key: " K4 ", wantOK: true, wantMsg: "License valid.", wantEnd: "2026-01-01"},
		{name: "wrong key", email: "d@x.com", key: "K1", wantMsg: "Email or product key is incorrect."},
		{name: "unknown email", email: "z@x.com", key: "K4", wantMsg: "Email or product key is incorrect."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := client.ValidateLicense(context.Background(), tt.email, tt.key)

			helper.AssertValidation(t, got, tt.wantOK, tt.wantMsg)
			assert.Equal(t, tt.wantEnd, got.EndDate)
			assert.False(t, got.Offline)
		})
	}
}

func TestValidateLicense_SourceFailures(t *testing.T) {
	t.Run("non success status", func(t *testing.T) {
		server := helper.NewLicenseServer(t)
		server.SetStatus(http.StatusInternalServerError)
		client, _ := newTestClient(t, server.URL, 0)

		got := client.ValidateLicense(context.Background(), "a@x.com", "K1")
		helper.AssertValidation(t, got, false, "Validation error: Failed fetching license page: 500")
	})

	t.Run("marker missing", func(t *testing.T) {
		server := helper.NewLicenseServer(t)
		server.SetBody("<html><body>maintenance</body></html>")
		client, _ := newTestClient(t, server.URL, 0)

		got := client.ValidateLicense(context.Background(), "a@x.com", "K1")
		helper.AssertValidation(t, got, false, "Validation error: Licenses JSON not found on page.")
	})

	t.Run("not an array", func(t *testing.T) {
		server := helper.NewLicenseServer(t)
		server.SetBody(`<script type="application/json" id="licenses">{"a":1}</script>`)
		client, _ := newTestClient(t, server.URL, 0)

		got := client.ValidateLicense(context.Background(), "a@x.com", "K1")
		helper.AssertValidation(t, got, false, "Validation error: Licenses JSON must be an array.")
	})

	t.Run("url not configured", func(t *testing.T) {
		client, logger := newTestClient(t, "", 0)

		got := client.ValidateLicense(context.Background(), "a@x.com", "K1")
		helper.AssertValidation(t, got, false, "Validation error: license list URL is not configured")
		assert.True(t, logger.Contains("ERROR", "not configured"))
	})

	t.Run("connection failure", func(t *testing.T) {
		client, logger := newTestClient(t, "http://licenses.invalid/list", 0)
		client.SetHTTPClient(mocks.HTTPClientErrorMock(&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}))

		got := client.ValidateLicense(context.Background(), "a@x.com", "K1")
		assert.False(t, got.OK)
		assert.True(t, got.Offline)
		assert.Contains(t, got.Message, "Validation error: ")
		assert.Contains(t, got.Message, "connection refused")
		assert.True(t, logger.Contains("WARN", "License validation failed"))
	})

	t.Run("unreadable body", func(t *testing.T) {
		client, _ := newTestClient(t, "http://licenses.invalid/list", 0)
		client.SetHTTPClient(mocks.HTTPClientBrokenBodyMock(errors.New("stream reset")))

		got := client.ValidateLicense(context.Background(), "a@x.com", "K1")
		helper.AssertValidation(t, got, false, "Validation error: read license page: stream reset")
	})
}

func TestFetchRecords_BreakerOpensOnTransportFailures(t *testing.T) {
	server := helper.NewLicenseServer(t, model.LicenseRecord{Email: "a@x.com", ProductKey: "K1", EndDate: "2099-01-01"})
	server.SetStatus(http.StatusBadGateway)

	client, logger := newTestClient(t, server.URL, 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got := client.ValidateLicense(ctx, "a@x.com", "K1")
		assert.Equal(t, "Validation error: Failed fetching license page: 502", got.Message)
	}

	require.Equal(t, int64(3), server.Hits())

	got := client.ValidateLicense(ctx, "a@x.com", "K1")
	assert.Equal(t, "Validation error: license source temporarily unavailable", got.Message)
	assert.Equal(t, int64(3), server.Hits(), "open breaker must not reach the source")
	assert.True(t, logger.Contains("WARN", "Circuit breaker license-source changed from closed to open"))
}

func TestFetchRecords_ExtractionFailuresDoNotTripBreaker(t *testing.T) {
	server := helper.NewLicenseServer(t)
	server.SetBody("<html></html>")

	client, _ := newTestClient(t, server.URL, 0)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := client.FetchRecords(ctx)
		require.Error(t, err)
	}

	assert.Equal(t, int64(5), server.Hits())
}

func TestFetchRecords_MemoizesWithinTTL(t *testing.T) {
	server := helper.NewLicenseServer(t, model.LicenseRecord{Email: "a@x.com", ProductKey: "K1", EndDate: "2099-01-01"})
	client, _ := newTestClient(t, server.URL, time.Minute)
	ctx := context.Background()

	assert.True(t, client.ValidateLicense(ctx, "a@x.com", "K1").OK)
	assert.True(t, client.ValidateLicense(ctx, "a@x.com", "K1").OK)
	assert.Equal(t, int64(1), server.Hits())

	server.SetRecords(t)
	client.InvalidateRecords()

	got := client.ValidateLicense(ctx, "a@x.com", "K1")
	assert.Equal(t, "Email or product key is incorrect.", got.Message)
	assert.Equal(t, int64(2), server.Hits())
}

func TestValidateLicense_MemoizedMissRefetches(t *testing.T) {
	server := helper.NewLicenseServer(t)
	client, _ := newTestClient(t, server.URL, time.Minute)
	ctx := context.Background()

	got := client.ValidateLicense(ctx, "a@x.com", "K1")
	assert.Equal(t, "Email or product key is incorrect.", got.Message)
	assert.Equal(t, int64(1), server.Hits())

	server.SetRecords(t, model.LicenseRecord{Email: "a@x.com", ProductKey: "K1", EndDate: "2099-01-01"})

	assert.True(t, client.ValidateLicense(ctx, "a@x.com", "K1").OK)
	assert.Equal(t, int64(2), server.Hits())

	assert.True(t, client.ValidateLicense(ctx, "a@x.com", "K1").OK)
	assert.Equal(t, int64(2), server.Hits())
}

func TestValidateLicense_NumericProductKey(t *testing.T) {
	server := helper.NewLicenseServer(t)
	server.SetBody(`<script type="application/json" id="licenses">[{"email":"a@x.com","product_key":12345678,"end_date":"2099-01-01"}]</script>`)
	client, _ := newTestClient(t, server.URL, 0)

	got := client.ValidateLicense(context.Background(), "a@x.com", "12345678")
	helper.AssertValidation(t, got, true, "License valid.")
}
