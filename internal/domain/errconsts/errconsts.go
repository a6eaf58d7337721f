// Package errconsts holds constant error messages.
package errconsts

// Programs
const (
	YTDLPFailure = "yt-dlp command failed: %w"
)

// File
const (
	ConfigFileReadFail = "failed to read config file %q: %w"
)

// Export
const (
	SpreadsheetSaveFail = "failed to save spreadsheet %q: %w"
)
