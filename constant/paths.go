package constant

// Per-user application data
const (
	// AppDirName is the directory created under the user config dir
	AppDirName = "license-gate"
	// CredentialCacheFile holds the cached license record
	CredentialCacheFile = "license-cache.json"
	// LaunchTargetFile holds the user selected executable path
	LaunchTargetFile = "launch-target.json"
	// DefaultKeyringService is the OS secret store service name
	DefaultKeyringService = "license-gate"
	// DefaultKeyringAccount is the OS secret store account name
	DefaultKeyringAccount = "license"
)

// ProductName is the display name of the gated application
const ProductName = "TensorHVAC Pro"

// DefaultCandidates lists conventional install locations per OS family.
// Entries referencing unset environment variables are skipped.
var DefaultCandidates = map[string][]string{
	GOOSWindows: {
		`${LOCALAPPDATA}\Programs\tensorhvac-pro\TensorHVAC Pro.exe`,
		`${ProgramFiles}\TensorHVAC Pro\TensorHVAC Pro.exe`,
	},
	GOOSDarwin: {
		"/Applications/TensorHVAC Pro.app/Contents/MacOS/TensorHVAC Pro",
		"${HOME}/Applications/TensorHVAC Pro.app/Contents/MacOS/TensorHVAC Pro",
	},
	GOOSLinux: {
		"/opt/tensorhvac-pro/tensorhvac-pro",
		"${HOME}/.local/bin/tensorhvac-pro",
	},
}
