package constants

// Application constants
const (
	ApplicationName  = "fileremover"
	ApplicationID    = "io.github.fileremover"
	ApplicationTitle = "Delete Files"
)

// UI constants
const (
	// Window dimensions
	DefaultWindowWidth  = 420
	DefaultWindowHeight = 260

	// The file picker needs room for its directory listing
	PickerWindowWidth  = 800
	PickerWindowHeight = 600

	// Button heights, matching the three-button layout of the dialog
	ActionButtonHeight = 50
	CancelButtonHeight = 40

	// Number of target names listed before eliding the rest
	MaxListedTargets = 10
)

// Theme constants
const (
	DefaultFontSize  = 14
	DarkThemeDefault = true
)

// Trash backends
const (
	TrashBackendFreedesktop = "freedesktop"
	TrashBackendCommand     = "command"
)

// Service menu (Dolphin context menu) constants
const (
	ServiceMenuSubdir   = "kservices5/ServiceMenus"
	ServiceMenuFileName = "fileremover.desktop"
	ServiceMenuFileMode = 0755
)
