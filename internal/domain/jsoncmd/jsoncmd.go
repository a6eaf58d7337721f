// Package jsoncmd holds constants for the yt-dlp listing command flags.
package jsoncmd

const (
	DumpSingleJSON = "-J"
	FlatPlaylist   = "--flat-playlist"
	NoCheckCerts   = "--no-check-certificates"
	NoWarnings     = "--no-warnings"
	Quiet          = "--quiet"
	SkipDownload   = "--skip-download"
	YTDLP          = "yt-dlp"
)
