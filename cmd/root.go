// cmd/root.go - Root command implementation
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/mbtiles_inspect/internal/config"
	"github.com/valpere/mbtiles_inspect/internal/logging"
	"github.com/valpere/mbtiles_inspect/internal/progress"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mbtiles-inspect",
	Short: "Inspect and duplicate MBTiles archives, resolve style layer visibility",
	Long: `mbtiles-inspect is a command-line tool for working with MBTiles map tile
archives and Mapbox style documents.

Features:
- Per-zoom and overall tile size statistics for an archive
- Whole-archive duplication inside a single transaction
- Source-layer listing and zoom visibility resolution for style documents

Examples:
  # Print tile statistics
  mbtiles-inspect inspect world.mbtiles

  # Duplicate an archive
  mbtiles-inspect copy world.mbtiles world-copy.mbtiles

  # List the source-layers a style references
  mbtiles-inspect style basic.json

  # Check whether a source-layer renders at zoom 9
  mbtiles-inspect style basic.json --layer water --zoom 9`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mbtiles-inspect.yaml)")

	// Logging flags
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-dir", "", "directory for dated log files")

	// Scan tuning flags
	rootCmd.PersistentFlags().Int("cache-size", 200000, "sqlite page cache size for read scans, in KiB")

	// Progress flags
	rootCmd.PersistentFlags().Bool("progress", true, "show a progress bar during long scans")

	// Bind flags to viper
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("logging.directory", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("scan.cache_kib", rootCmd.PersistentFlags().Lookup("cache-size"))
	viper.BindPFlag("progress.enabled", rootCmd.PersistentFlags().Lookup("progress"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".mbtiles-inspect" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mbtiles-inspect")
	}

	// Environment variables
	viper.SetEnvPrefix("MBTILES_INSPECT")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setup loads the configuration and builds the logger commands share
func setup() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return cfg, logger, nil
}

// newReporter builds the progress sink scans report into
func newReporter(cfg *config.Config, prefix string) progress.Reporter {
	if !cfg.Progress.Enabled {
		return progress.Nop{}
	}
	return progress.NewBar(prefix, cfg.Progress.RefreshRate)
}
