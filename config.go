package licensegate

import (
	"os"
	"strings"

	"github.com/LerianStudio/license-gate/constant"
	"github.com/LerianStudio/license-gate/model"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// LoadFromEnv builds the gate configuration from an optional .env file and
// the LICENSE_GATE_* environment variables.
func LoadFromEnv() (model.Config, error) {
	_ = godotenv.Load(constant.EnvDotFile)

	var cfg model.Config
	if err := envconfig.Process(constant.EnvPrefix, &cfg); err != nil {
		return model.Config{}, err
	}

	if strings.TrimSpace(cfg.LicenseListURL) == "" {
		cfg.LicenseListURL = os.Getenv(constant.EnvLicenseListURL)
	}

	return cfg, nil
}
