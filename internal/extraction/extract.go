// Package extraction invokes the yt-dlp backend and flattens its nested
// listing output into a uniform video list.
package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"tubelist/internal/domain/consts"
	"tubelist/internal/domain/errconsts"
	"tubelist/internal/domain/jsoncmd"
	"tubelist/internal/models"
	"tubelist/internal/utils/logging"
)

// ErrExtraction wraps any backend failure, matched with errors.Is.
var ErrExtraction = errors.New("extraction failed")

// Extractor lists channel videos through the yt-dlp backend.
type Extractor struct {
	ytdlpPath string
}

// New returns an Extractor using the given yt-dlp binary path, or the
// default $PATH lookup when empty.
func New(ytdlpPath string) *Extractor {
	if ytdlpPath == "" {
		ytdlpPath = jsoncmd.YTDLP
	}
	return &Extractor{ytdlpPath: ytdlpPath}
}

// Extract runs a flat, metadata-light listing of the channel URL and returns
// the flattened video list along with the channel's display name.
func (e *Extractor) Extract(ctx context.Context, channelURL string) ([]*models.Video, string, error) {
	cmd := buildListCommand(ctx, e.ytdlpPath, channelURL)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, "", ctx.Err()
		}
		if tail := lastLine(stderr.String()); tail != "" {
			logging.D(1, "yt-dlp stderr for %q: %s", channelURL, tail)
			err = fmt.Errorf("%v: %s", err, tail)
		}
		return nil, "", wrapExtraction(fmt.Errorf(errconsts.YTDLPFailure, err))
	}

	videos, channelName, err := parseListing(stdout.Bytes())
	if err != nil {
		return nil, "", err
	}

	logging.D(1, "Extracted %d videos from %q (channel %q)", len(videos), channelURL, channelName)
	return videos, channelName, nil
}

// buildListCommand builds the yt-dlp invocation for a flat channel listing:
// single JSON document, no media download, certificate checking relaxed.
func buildListCommand(ctx context.Context, bin, channelURL string) *exec.Cmd {
	args := []string{
		jsoncmd.DumpSingleJSON,
		jsoncmd.FlatPlaylist,
		jsoncmd.SkipDownload,
		jsoncmd.Quiet,
		jsoncmd.NoWarnings,
		jsoncmd.NoCheckCerts,
		channelURL,
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	logging.D(1, "Built listing command for URL %q:\n%v", channelURL, cmd.String())

	return cmd
}

// parseListing decodes the backend's JSON dump and flattens it.
func parseListing(data []byte) ([]*models.Video, string, error) {
	var info *channelInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, "", wrapExtraction(fmt.Errorf("decoding backend output: %w", err))
	}
	if info == nil {
		return nil, "", wrapExtraction(errors.New("could not extract channel information"))
	}

	channelName := info.Channel
	if channelName == "" {
		channelName = info.Uploader
	}
	if channelName == "" {
		channelName = consts.FallbackChannelName
	}

	return toVideos(flattenEntries(info.Entries)), channelName, nil
}

func wrapExtraction(err error) error {
	return fmt.Errorf("%w: %v", ErrExtraction, err)
}

// lastLine returns the final non-empty line of s.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
