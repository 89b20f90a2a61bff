package commands

// CLI-specific constants
const (
	// TimestampFormat renders history timestamps.
	TimestampFormat = "2006-01-02 15:04:05"
)

// Error messages
const (
	ErrHistoryStoreUnavailable = "history store unavailable (backend is off?)"
	ErrConfigLoaderUnavailable = "config loader unavailable"
	ErrQueryRequired           = "--query required"
)

// Success messages
const (
	MsgNoHistoryRecorded        = "No history recorded yet."
	MsgNoDifferencesFromDefault = "No differences from default configuration."
)
