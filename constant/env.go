package constant

// Environment configuration
const (
	// EnvPrefix is the envconfig prefix for every gate setting
	EnvPrefix = "LICENSE_GATE"

	// EnvLicenseListURL is the unprefixed license page URL variable, kept for
	// installations that only export LICENSE_LIST_URL
	EnvLicenseListURL = "LICENSE_LIST_URL"

	// EnvDotFile is the optional dotenv file loaded before the environment is read
	EnvDotFile = ".env"
)
