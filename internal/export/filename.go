package export

import (
	"strings"
	"time"
)

const (
	invalidFilenameChars = `<>:"/\|?*`
	maxChannelNameLen    = 100
)

// SanitizeChannelName makes a channel name safe for use in a filename:
// reserved characters become underscores, leading/trailing spaces and dots
// are stripped, and the result is capped at 100 characters. An empty result
// falls back to "channel".
func SanitizeChannelName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidFilenameChars, r) {
			return '_'
		}
		return r
	}, name)

	name = strings.Trim(name, ". ")

	if runes := []rune(name); len(runes) > maxChannelNameLen {
		name = string(runes[:maxChannelNameLen])
	}

	if name == "" {
		return "channel"
	}
	return name
}

// FormatFilename fills the {channel_name} and {date} placeholders of a
// filename template. The channel name must already be sanitized.
func FormatFilename(format, channelName string, now time.Time) string {
	r := strings.NewReplacer(
		"{channel_name}", channelName,
		"{date}", now.Format("20060102"),
	)
	return r.Replace(format)
}
