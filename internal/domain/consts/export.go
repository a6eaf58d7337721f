// Package consts holds various global, unchanging values.
package consts

// SheetVideos is the name of the single worksheet written per channel.
const SheetVideos = "Videos"

// ExcelColumns is the spreadsheet header row, in write order.
var ExcelColumns = [...]string{"ID", "Title", "Description", "URL"}

// ExcelColumnWidths holds fixed character-unit widths, matching ExcelColumns by position.
var ExcelColumnWidths = [...]float64{15, 50, 80, 50}

// Output defaults.
const (
	DefaultOutputDir      = "outputs"
	DefaultFilenameFormat = "{channel_name}_videos.xlsx"
)

// WatchURLPrefix derives a video's canonical URL from its ID.
const WatchURLPrefix = "https://www.youtube.com/watch?v="

// FallbackChannelName is used when the backend returns no channel or uploader name.
const FallbackChannelName = "unknown"
