package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/license-gate/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFromModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := log.NewMockLogger(ctrl)
	logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()

	dir := t.TempDir()
	cfg, err := FromModel(model.Config{
		LicenseListURL:     "https://licenses.example.com/list",
		HandshakeSecret:    "s3cret",
		DataDir:            dir,
		PlatformCandidates: "/opt/a" + string(filepath.ListSeparator) + "/opt/b",
		RecordCacheTTL:     time.Minute,
	}, logger)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "license-cache.json"), cfg.CacheFile)
	assert.Equal(t, filepath.Join(dir, "launch-target.json"), cfg.OverrideFile)
	assert.Equal(t, []string{"/opt/a", "/opt/b"}, cfg.PlatformCandidates)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Minute, cfg.RecordCacheTTL)
	assert.Equal(t, uint32(3), cfg.BreakerFailures)
	assert.Equal(t, "license-gate", cfg.KeyringService)
	assert.Equal(t, "license", cfg.KeyringAccount)
	assert.Equal(t, "127.0.0.1:4780", cfg.ServerAddr)
}

func TestFromModel_DefaultDataDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := log.NewMockLogger(ctrl)
	logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("AppData", filepath.Join(home, "AppData"))

	cfg, err := FromModel(model.Config{}, logger)
	require.NoError(t, err)

	want, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, want, cfg.DataDir)
	assert.Equal(t, "license-gate", filepath.Base(cfg.DataDir))
}

func TestValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.EqualError(t, cfg.Validate(), "data directory is required")

	cfg.DataDir = t.TempDir()
	assert.NoError(t, cfg.Validate())

	cfg.KeyringAccount = ""
	assert.Error(t, cfg.Validate())
}
