// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfpages CLI.
package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfpages/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the process-wide logger. All diagnostics go to stderr so page
// filenames and exported data on stdout stay machine-readable.
var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetOutput(os.Stderr)
	return l
}

// rootCmd is the base command. It is runnable: converting a PDF is the
// default action, with subcommands for version and run history.
var rootCmd = &cobra.Command{
	Use:   "pdfpages <pdf_file> <output_dir>",
	Short: "Convert a PDF document into per-page images",
	Long: `pdfpages renders each page of a PDF document to an image file using an
external rasterization toolchain (poppler's pdftoppm by default, or an
embedded MuPDF backend). Pages land in the output directory as
page_1.<fmt>, page_2.<fmt>, and so on, overwriting files from earlier runs.

Before converting, pdfpages verifies that rasterization support is
available, the conversion binary can be located, the source is readable,
and the output directory is writable. Each run is recorded in a local
history database; see "pdfpages history".`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfpages.yaml or ~/.config/pdfpages/config.yaml)")

	rootCmd.Flags().Int("dpi", types.DefaultDPI, "render resolution in dots per inch")
	rootCmd.Flags().String("fmt", types.DefaultFormat, "output image format: png, tiff, or tif")
	rootCmd.Flags().String("poppler_path", "", "directory holding the poppler binaries (default: search PATH)")
	rootCmd.Flags().String("backend", string(types.BackendPoppler), "rasterization backend: poppler or mupdf")
	rootCmd.Flags().Bool("no-history", false, "skip recording this run in the history database")

	viper.BindPFlag("dpi", rootCmd.Flags().Lookup("dpi"))
	viper.BindPFlag("fmt", rootCmd.Flags().Lookup("fmt"))
	viper.BindPFlag("poppler_path", rootCmd.Flags().Lookup("poppler_path"))
	viper.BindPFlag("backend", rootCmd.Flags().Lookup("backend"))
	viper.BindPFlag("no_history", rootCmd.Flags().Lookup("no-history"))
}

func initConfig() {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfpages")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfpages"))
		}
	}

	viper.SetEnvPrefix("PDFPAGES")
	viper.AutomaticEnv()
	viper.SetDefault("log_level", "info")

	readErr := viper.ReadInConfig()

	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		log.Warnf("invalid log_level %q, using info", viper.GetString("log_level"))
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if readErr == nil {
		log.Debugf("using config file: %s", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("run failed")
		os.Exit(1)
	}
}
