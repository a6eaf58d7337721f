// Package cfg provides configuration and command-line interface setup for tubelist.
package cfg

import (
	"context"
	"os"

	"tubelist/internal/app"
	"tubelist/internal/domain/keys"
	"tubelist/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "tubelist [channel_url]",
	Short:         "tubelist exports a channel's video listing to a spreadsheet.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Lookup("help").Changed {
			return nil
		}

		logging.Level = viper.GetInt(keys.DebugLevel)

		batchMode := cmd.Flags().Changed(keys.BatchConfigFile)
		if len(args) == 0 && !batchMode {
			printUsage()
			os.Exit(1)
		}

		proc := app.NewProcessor(viper.GetString(keys.YTDLPPath))

		if batchMode {
			return proc.Batch(cmd.Context(), viper.GetString(keys.BatchConfigFile))
		}
		return proc.SingleChannel(
			cmd.Context(),
			args[0],
			viper.GetString(keys.OutputDir),
			viper.GetString(keys.FilenameFormat))
	},
}

// init sets the initial Viper settings.
func init() {
	rootCmd.PersistentFlags().StringP(keys.BatchConfigFile, "c", "", "Batch configuration file of channels to process")
	_ = viper.BindPFlag(keys.BatchConfigFile, rootCmd.PersistentFlags().Lookup(keys.BatchConfigFile))

	rootCmd.PersistentFlags().StringP(keys.OutputDir, "o", "", "Directory to write spreadsheet files into (default \"outputs\")")
	_ = viper.BindPFlag(keys.OutputDir, rootCmd.PersistentFlags().Lookup(keys.OutputDir))

	rootCmd.PersistentFlags().String(keys.FilenameFormat, "", "Filename template, supports {channel_name} and {date}")
	_ = viper.BindPFlag(keys.FilenameFormat, rootCmd.PersistentFlags().Lookup(keys.FilenameFormat))

	rootCmd.PersistentFlags().String(keys.YTDLPPath, "", "Path to the yt-dlp binary (defaults to $PATH lookup)")
	_ = viper.BindPFlag(keys.YTDLPPath, rootCmd.PersistentFlags().Lookup(keys.YTDLPPath))

	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debugging level (higher is more verbose)")
	_ = viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel))
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// printUsage prints the invocation guide to stdout.
func printUsage() {
	logging.P("Usage:")
	logging.P("  tubelist <channel_url>              # Extract from a single channel")
	logging.P("  tubelist --config <config.yaml>     # Extract from channels in config file")
	logging.P("")
	logging.P("Examples:")
	logging.P("  tubelist 'https://www.youtube.com/@AlexHormozi'")
	logging.P("  tubelist --config channels.yaml")
}
