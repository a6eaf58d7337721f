// Package app contains core application functionality.
package app

import (
	"context"

	"tubelist/internal/export"
	"tubelist/internal/extraction"
	"tubelist/internal/file"
	"tubelist/internal/models"
	"tubelist/internal/utils/logging"
)

// ExtractFunc lists a channel's videos and resolves its display name.
type ExtractFunc func(ctx context.Context, channelURL string) ([]*models.Video, string, error)

// ExportFunc writes a video listing to a spreadsheet and returns its path.
type ExportFunc func(videos []*models.Video, channelName, outputDir, filenameFormat string) (string, error)

// Processor drives extraction and export for one run. Channels are processed
// strictly one at a time; there is no retry anywhere.
type Processor struct {
	Extract ExtractFunc
	Export  ExportFunc
}

// NewProcessor wires the default yt-dlp extractor and xlsx exporter.
func NewProcessor(ytdlpPath string) *Processor {
	return &Processor{
		Extract: extraction.New(ytdlpPath).Extract,
		Export:  export.Export,
	}
}

// SingleChannel processes one channel URL end to end. Any failure aborts the
// run; an empty listing reports and exits without writing a file.
func (p *Processor) SingleChannel(ctx context.Context, channelURL, outputDir, filenameFormat string) error {
	logging.P("Extracting videos from: %s", channelURL)

	videos, channelName, err := p.Extract(ctx, channelURL)
	if err != nil {
		return err
	}

	logging.P("Found %d videos from channel: %s", len(videos), channelName)

	if len(videos) == 0 {
		logging.P("No videos found!")
		return nil
	}

	logging.P("Exporting to Excel...")

	outputPath, err := p.Export(videos, channelName, outputDir, filenameFormat)
	if err != nil {
		return err
	}

	logging.S("Successfully exported to: %s", outputPath)
	logging.P("  Total videos: %d", len(videos))
	return nil
}

// Batch processes every enabled channel in the batch configuration. A config
// load failure aborts the batch; a per-channel failure is reported to the
// error stream and processing continues with the next channel.
func (p *Processor) Batch(ctx context.Context, configPath string) error {
	logging.P("Loading configuration from: %s", configPath)

	bc, err := file.LoadBatchConfig(configPath)
	if err != nil {
		return err
	}

	channels := bc.EnabledChannels()
	out := bc.OutputOrDefaults()

	logging.P("Found %d enabled channel(s)\n", len(channels))

	for i, ct := range channels {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		logging.P("[%d/%d] Processing: %s", i+1, len(channels), ct.Name)
		logging.P("  URL: %s", ct.URL)

		videos, extractedName, err := p.Extract(ctx, ct.URL)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logging.E("Failed: %v", err)
			continue
		}

		// A placeholder name from the loader gives way to the real one.
		channelName := ct.Name
		if ct.NameDefaulted && extractedName != "" {
			channelName = extractedName
		}

		logging.P("  Found %d videos", len(videos))

		if len(videos) == 0 {
			logging.P("  No videos found, skipping...\n")
			continue
		}

		outputPath, err := p.Export(videos, channelName, out.Directory, out.FilenameFormat)
		if err != nil {
			logging.E("Failed: %v", err)
			continue
		}

		logging.S("  Exported to: %s", outputPath)
		logging.P("  Total videos: %d\n", len(videos))
	}

	logging.P("All channels processed!")
	return nil
}
