// Package file contains utilities related to file operations (e.g. reading config files).
package file

import (
	"errors"
	"fmt"
	"os"

	"tubelist/internal/domain/errconsts"
	"tubelist/internal/models"
	"tubelist/internal/utils/logging"

	"gopkg.in/yaml.v3"
)

// Batch config error classes, matched with errors.Is.
var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrConfigParse    = errors.New("invalid YAML configuration")
	ErrConfigInvalid  = errors.New("invalid configuration")
)

// LoadBatchConfig reads and validates a batch configuration file.
//
// Validation fills defaults in place: a missing 'enabled' becomes true and a
// missing 'name' becomes the 1-based placeholder "Channel N" (N counted over
// the full, unfiltered list).
func LoadBatchConfig(path string) (*models.BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf(errconsts.ConfigFileReadFail, path, err)
	}

	// Decode loosely first: channel entries must be validated structurally,
	// not rejected by the YAML layer as type mismatches.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	bc, err := validate(raw)
	if err != nil {
		return nil, err
	}

	logging.D(1, "Loaded batch config %q with %d channel(s)", path, len(bc.Channels))
	return bc, nil
}

// validate checks the decoded document structure and builds the typed config.
func validate(raw map[string]any) (*models.BatchConfig, error) {
	chRaw, ok := raw["channels"]
	if !ok {
		return nil, fmt.Errorf("%w: configuration must contain 'channels' key", ErrConfigInvalid)
	}

	list, ok := chRaw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: 'channels' must be a list", ErrConfigInvalid)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: at least one channel must be defined", ErrConfigInvalid)
	}

	bc := &models.BatchConfig{
		Channels: make([]*models.ChannelTarget, 0, len(list)),
	}

	for i, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: channel %d must be a mapping", ErrConfigInvalid, i)
		}

		url, _ := entry["url"].(string)
		if url == "" {
			return nil, fmt.Errorf("%w: channel %d missing required 'url' field", ErrConfigInvalid, i)
		}

		ct := &models.ChannelTarget{
			URL:     url,
			Enabled: true,
		}
		if enabled, ok := entry["enabled"].(bool); ok {
			ct.Enabled = enabled
		}
		if name, ok := entry["name"].(string); ok && name != "" {
			ct.Name = name
		} else {
			ct.Name = fmt.Sprintf("Channel %d", i+1)
			ct.NameDefaulted = true
		}

		bc.Channels = append(bc.Channels, ct)
	}

	if out, ok := raw["output"].(map[string]any); ok {
		bc.Output.Directory, _ = out["directory"].(string)
		bc.Output.FilenameFormat, _ = out["filename_format"].(string)
	}

	return bc, nil
}
