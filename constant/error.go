package constant

import "errors"

// Structured error codes for gate results and command server responses
var (
	ErrLicenseSourceFetch        = errors.New("LGT-0001")
	ErrLicenseSourceExtraction   = errors.New("LGT-0002")
	ErrCredentialMismatch        = errors.New("LGT-0003")
	ErrLicenseEndDateMissing     = errors.New("LGT-0004")
	ErrLicenseExpired            = errors.New("LGT-0005")
	ErrCacheIO                   = errors.New("LGT-0006")
	ErrExecutableNotFound        = errors.New("LGT-0007")
	ErrLaunchStrategiesExhausted = errors.New("LGT-0008")
	ErrLicenseRequired           = errors.New("LGT-0009")
	ErrInvalidRequestBody        = errors.New("LGT-0010")
	ErrLicenseSourceNotSet       = errors.New("LGT-0011")
	ErrInternalServer            = errors.New("LGT-0012")
	ErrJSONContentTypeRequired   = errors.New("LGT-0013")
)
