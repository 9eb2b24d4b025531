package licensegate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("LICENSE_GATE_LICENSE_LIST_URL", "https://licenses.example.com/list")
	t.Setenv("LICENSE_GATE_HANDSHAKE_SECRET", "s3cret")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://licenses.example.com/list", cfg.LicenseListURL)
	assert.Equal(t, "s3cret", cfg.HandshakeSecret)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 15*time.Second, cfg.RecordCacheTTL)
	assert.Equal(t, uint32(3), cfg.BreakerFailures)
	assert.Equal(t, 30*time.Second, cfg.BreakerTimeout)
	assert.Equal(t, "license-gate", cfg.KeyringService)
	assert.Equal(t, "license", cfg.KeyringAccount)
	assert.Equal(t, "127.0.0.1:4780", cfg.ServerAddr)
}

func TestLoadFromEnv_UnprefixedURL(t *testing.T) {
	t.Setenv("LICENSE_GATE_LICENSE_LIST_URL", "")
	t.Setenv("LICENSE_LIST_URL", "https://fallback.example.com/list")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://fallback.example.com/list", cfg.LicenseListURL)
}

func TestLoadFromEnv_InvalidDuration(t *testing.T) {
	t.Setenv("LICENSE_GATE_HTTP_TIMEOUT", "soon")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}
