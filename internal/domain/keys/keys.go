// Package keys holds Viper key name constants.
package keys

// Terminal keys
const (
	BatchConfigFile string = "config"
	OutputDir       string = "output-dir"
	FilenameFormat  string = "filename-format"
	YTDLPPath       string = "ytdlp"
	DebugLevel      string = "debug"
)
