package model

import "time"

// Config is the environment facing configuration of the gate.
// Fields are read by envconfig with the LICENSE_GATE prefix.
type Config struct {
	LicenseListURL     string        `json:"licenseListUrl" envconfig:"LICENSE_LIST_URL"`
	HandshakeSecret    string        `json:"-" envconfig:"HANDSHAKE_SECRET"`
	AppHint            string        `json:"appHint" envconfig:"APP_HINT"`
	DataDir            string        `json:"dataDir" envconfig:"DATA_DIR"`
	PlatformCandidates string        `json:"platformCandidates" envconfig:"PLATFORM_CANDIDATES"`
	HTTPTimeout        time.Duration `json:"httpTimeout" envconfig:"HTTP_TIMEOUT" default:"10s"`
	RecordCacheTTL     time.Duration `json:"recordCacheTtl" envconfig:"RECORD_CACHE_TTL" default:"15s"`
	BreakerFailures    uint32        `json:"breakerFailures" envconfig:"BREAKER_FAILURES" default:"3"`
	BreakerTimeout     time.Duration `json:"breakerTimeout" envconfig:"BREAKER_TIMEOUT" default:"30s"`
	KeyringService     string        `json:"keyringService" envconfig:"KEYRING_SERVICE" default:"license-gate"`
	KeyringAccount     string        `json:"keyringAccount" envconfig:"KEYRING_ACCOUNT" default:"license"`
	ServerAddr         string        `json:"serverAddr" envconfig:"SERVER_ADDR" default:"127.0.0.1:4780"`
}
