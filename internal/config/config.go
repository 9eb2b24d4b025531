package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/license-gate/constant"
	"github.com/LerianStudio/license-gate/model"
	"github.com/LerianStudio/license-gate/pkg"
)

// ClientConfig holds the resolved configuration of the gate client
type ClientConfig struct {
	LicenseListURL  string
	HandshakeSecret string
	AppHint         string

	// Per-user application data
	DataDir      string
	CacheFile    string
	OverrideFile string

	KeyringService string
	KeyringAccount string

	// PlatformCandidates replaces the built-in defaults for the current OS when not empty
	PlatformCandidates []string

	// HTTP configuration
	HTTPTimeout     time.Duration
	RecordCacheTTL  time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration

	ServerAddr string
}

// NewDefaultConfig creates a new config with sensible defaults
func NewDefaultConfig() ClientConfig {
	return ClientConfig{
		KeyringService:  constant.DefaultKeyringService,
		KeyringAccount:  constant.DefaultKeyringAccount,
		HTTPTimeout:     constant.DefaultHTTPTimeout,
		RecordCacheTTL:  constant.DefaultRecordCacheTTL,
		BreakerFailures: constant.DefaultBreakerFailures,
		BreakerTimeout:  constant.DefaultBreakerTimeout,
		ServerAddr:      constant.DefaultServerAddr,
	}
}

// Validate checks if the configuration is valid
func (c *ClientConfig) Validate() error {
	if c.DataDir == "" {
		return errors.New("data directory is required")
	}

	if c.KeyringService == "" || c.KeyringAccount == "" {
		return errors.New("keyring service and account are required")
	}

	if c.HTTPTimeout <= 0 {
		return errors.New("http timeout must be positive")
	}

	return nil
}

// DefaultDataDir returns the per-user directory holding the cache and override files.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}

	return filepath.Join(base, constant.AppDirName), nil
}

// FromModel converts a model.Config to a ClientConfig
func FromModel(cfg model.Config, logger log.Logger) (*ClientConfig, error) {
	config := NewDefaultConfig()

	config.LicenseListURL = cfg.LicenseListURL
	config.HandshakeSecret = cfg.HandshakeSecret
	config.AppHint = cfg.AppHint
	config.PlatformCandidates = pkg.ParsePathList(cfg.PlatformCandidates)

	if cfg.KeyringService != "" {
		config.KeyringService = cfg.KeyringService
	}

	if cfg.KeyringAccount != "" {
		config.KeyringAccount = cfg.KeyringAccount
	}

	if cfg.HTTPTimeout > 0 {
		config.HTTPTimeout = cfg.HTTPTimeout
	}

	// A zero TTL disables the record cache
	config.RecordCacheTTL = cfg.RecordCacheTTL

	if cfg.BreakerFailures > 0 {
		config.BreakerFailures = cfg.BreakerFailures
	}

	if cfg.BreakerTimeout > 0 {
		config.BreakerTimeout = cfg.BreakerTimeout
	}

	if cfg.ServerAddr != "" {
		config.ServerAddr = cfg.ServerAddr
	}

	config.DataDir = cfg.DataDir
	if config.DataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return nil, err
		}

		config.DataDir = dir
	}

	config.CacheFile = filepath.Join(config.DataDir, constant.CredentialCacheFile)
	config.OverrideFile = filepath.Join(config.DataDir, constant.LaunchTargetFile)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger.Debugf("Gate data directory: %s", config.DataDir)

	return &config, nil
}
