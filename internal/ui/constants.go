package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Window sizing
const (
	MinWindowWidth  float32 = 600
	MinWindowHeight float32 = 500
	URLEntryRows            = 3
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 360
)
