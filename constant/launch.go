package constant

// Handshake contract with the launched application
const (
	// HandshakeEnvPrimary is the main variable carrying the shared secret
	HandshakeEnvPrimary = "TENSORHVAC_HANDSHAKE"
	// HandshakeEnvAlias is the short alias of HandshakeEnvPrimary
	HandshakeEnvAlias = "THVAC_HANDSHAKE"
	// HandshakeFlag is the command line flag carrying the shared secret
	HandshakeFlag = "--handshake"
)

// Launch messages
const (
	MsgExecutableNotFound   = "Executable not found. Use manual path selection to set the correct path."
	MsgAllStrategiesFailed  = "All launch strategies failed."
	MsgLaunchedViaFmt       = "Launched via %s"
	MsgWindowsLaunchNote    = "If the application window is behind this one, try Alt+Tab. This window was minimized to help."
	MsgUserCancelled        = "User cancelled"
	MsgInvalidPath          = "Invalid path"
	MsgPathDoesNotExist     = "Path does not exist"
	MsgSelectedFileMissing  = "Selected file does not exist"
	MsgFailedToSaveOverride = "Failed to save override path"
)

// OS families with dedicated behavior
const (
	GOOSWindows = "windows"
	GOOSDarwin  = "darwin"
	GOOSLinux   = "linux"
)

// Presence checker query
const (
	TasklistCommand = "tasklist"
)

// TasklistArgs asks for CSV output without a header row
var TasklistArgs = []string{"/FO", "CSV", "/NH"}
