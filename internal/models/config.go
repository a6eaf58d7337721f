package models

import (
	"tubelist/internal/domain/consts"
)

// ChannelTarget is one channel entry in a batch configuration.
type ChannelTarget struct {
	URL     string `yaml:"url"`
	Name    string `yaml:"name,omitempty"`
	Enabled bool   `yaml:"enabled"`

	// NameDefaulted marks targets whose Name was filled with a placeholder,
	// so batch runs substitute the extracted channel name at export time.
	NameDefaulted bool `yaml:"-"`
}

// OutputSettings controls where and how spreadsheet files are written.
type OutputSettings struct {
	Directory      string `yaml:"directory,omitempty"`
	FilenameFormat string `yaml:"filename_format,omitempty"`
}

// BatchConfig is a validated batch run definition: ordered channel targets
// plus output settings, held immutably for the run.
type BatchConfig struct {
	Channels []*ChannelTarget
	Output   OutputSettings
}

// EnabledChannels returns the enabled channel targets, preserving order.
func (bc *BatchConfig) EnabledChannels() []*ChannelTarget {
	enabled := make([]*ChannelTarget, 0, len(bc.Channels))
	for _, ct := range bc.Channels {
		if ct.Enabled {
			enabled = append(enabled, ct)
		}
	}
	return enabled
}

// OutputOrDefaults merges declared output settings over the defaults. Declared keys win.
func (bc *BatchConfig) OutputOrDefaults() OutputSettings {
	out := OutputSettings{
		Directory:      consts.DefaultOutputDir,
		FilenameFormat: consts.DefaultFilenameFormat,
	}
	if bc.Output.Directory != "" {
		out.Directory = bc.Output.Directory
	}
	if bc.Output.FilenameFormat != "" {
		out.FilenameFormat = bc.Output.FilenameFormat
	}
	return out
}
