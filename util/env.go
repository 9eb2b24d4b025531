package util

import (
	"errors"

	"github.com/LerianStudio/lib-commons/commons"
	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/license-gate/model"
)

// ValidateEnvVariables reports every missing required setting, logging each one.
func ValidateEnvVariables(cfg *model.Config, l log.Logger) error {
	if cfg == nil {
		return errors.New("license gate config is nil")
	}

	var errs []error

	if commons.IsNilOrEmpty(&cfg.LicenseListURL) {
		err := "missing license list URL environment variable"

		l.Error(err)

		errs = append(errs, errors.New(err))
	}

	if commons.IsNilOrEmpty(&cfg.HandshakeSecret) {
		err := "missing handshake secret environment variable"

		l.Error(err)

		errs = append(errs, errors.New(err))
	}

	if commons.IsNilOrEmpty(&cfg.KeyringService) || commons.IsNilOrEmpty(&cfg.KeyringAccount) {
		err := "missing keyring service or account environment variable"

		l.Error(err)

		errs = append(errs, errors.New(err))
	}

	return errors.Join(errs...)
}
