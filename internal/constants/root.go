package constants

// SessionState represents the current state of the TUI application
type SessionState int

// Module represents one of the four practice areas
type Module string

const (
	AppName           = "bandprep"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/bandprep/bandprep.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "bandprep-"
	BackupFileSuffix = ".db"

	// MediaDirName is the directory (under the config dir) holding fetched
	// audio and speaking recordings
	MediaDirName = "media"

	// Practice modules
	ModuleReading   Module = "reading"
	ModuleListening Module = "listening"
	ModuleWriting   Module = "writing"
	ModuleSpeaking  Module = "speaking"

	// Writing task selectors
	WritingTask1 = "task1"
	WritingTask2 = "task2"

	// Speaking part selectors
	SpeakingPart1 = "part1"
	SpeakingPart2 = "part2"
	SpeakingPart3 = "part3"

	// Screen names, as persisted in the active-screen selector
	ScreenDashboard = "dashboard"
	ScreenReading   = "reading"
	ScreenListening = "listening"
	ScreenWriting   = "writing"
	ScreenSpeaking  = "speaking"
	ScreenSettings  = "settings"
)

// Session States. The first NumMainTabs states are the top-level screens in
// tab order and line up with ScreenNames.
const (
	StateDashboard SessionState = iota
	StateReading
	StateListening
	StateWriting
	StateSpeaking
	StateSettings
	StateEditSettings
	StateEditURL
	StateEditNotes
	StateEditDraft
	StateEditSpeakingNotes
	StateEditLogs
	StateConfirmClear
	StateAlert

	// NumMainTabs is the number of top-level screens cycled with tab
	NumMainTabs = 6
)

// Modules lists the four practice areas in display order.
var Modules = []Module{ModuleReading, ModuleListening, ModuleWriting, ModuleSpeaking}

// ValidModule reports whether name is one of the four fixed modules.
func ValidModule(name string) bool {
	for _, m := range Modules {
		if string(m) == name {
			return true
		}
	}
	return false
}

// ScreenNames lists the persistable screen names in tab order.
var ScreenNames = []string{
	ScreenDashboard,
	ScreenReading,
	ScreenListening,
	ScreenWriting,
	ScreenSpeaking,
	ScreenSettings,
}
