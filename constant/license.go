package constant

// DateLayout is the only accepted end date format
const DateLayout = "2006-01-02"

// Embedded license block marker
const (
	// LicenseBlockTag is the element that carries the license list
	LicenseBlockTag = "script"
	// LicenseBlockType is the required type attribute of the block
	LicenseBlockType = "application/json"
	// LicenseBlockID is the required id attribute of the block
	LicenseBlockID = "licenses"
)

// User facing validation messages
const (
	MsgLicenseValid       = "License valid."
	MsgCredentialMismatch = "Email or product key is incorrect."
	MsgEndDateMissing     = "License end date missing."
	MsgLicenseExpiredFmt  = "License expired on %s."
	MsgValidationErrorFmt = "Validation error: %s"
	MsgNoCachedLicense    = "No cached license."
	MsgLoggedOut          = "Logged out."
	MsgCacheCleared       = "Cache cleared."
	MsgFailedToClearCache = "Failed to clear cache."
)

// ExpiryThresholds defines license expiration warning thresholds in days
const (
	// ExpiryDaysToUrgentWarn is the threshold for urgent expiry warnings
	ExpiryDaysToUrgentWarn = 7
	// ExpiryDaysToNormalWarn is the threshold for normal expiry warnings
	ExpiryDaysToNormalWarn = 30
)

// Extraction failures of the embedded license block
const (
	MsgLicensesJSONNotFound = "Licenses JSON not found on page."
	MsgLicensesJSONInvalid  = "Invalid licenses JSON on page."
	MsgLicensesJSONNotArray = "Licenses JSON must be an array."
	MsgLicensesJSONMultiple = "Licenses JSON found more than once on page."
	MsgSourceNotConfigured  = "license list URL is not configured"
	MsgSourceUnavailable    = "license source temporarily unavailable"
	MsgFetchFailedFmt       = "Failed fetching license page: %d"
)
