package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vdobler/magplot/internal/config"
)

var (
	configPath = ""

	// cfg is the effective configuration, loaded before any command runs.
	cfg = &config.Config{}

	// cfgFileUsed is the configuration file cfg was read from, if any.
	cfgFileUsed = ""
)

var (
	gPlot     = "Plotting:"
	gInspect  = "Inspection:"
	cmdGroups = []string{
		gPlot,
		gInspect,
	}
)

func setupLogger(logLevel string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}
	return nil
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewCommand returns the magplot root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "magplot",
		Short: "magplot plots magnet shift measurements from CSV files",
		Long: `magplot plots magnet alignment and strength shift measurements.

It reads CSV files with one row per magnet and shift and writes
error-bar figures per device group or per metric, and histograms.`,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			loaded, used, err := config.Load(configPath, c.Flags())
			if err != nil {
				return err
			}
			cfg, cfgFileUsed = loaded, used
			if err := setupLogger(cfg.LogLevel); err != nil {
				return err
			}
			if cfgFileUsed != "" {
				logrus.WithField("file", cfgFileUsed).Debug("Configuration loaded")
			}
			return nil
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringP("log-level", "l", config.DefaultLogLevel, "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", "", "config file path (default magplot.yaml if present)")
	globalFlags.StringP("output-dir", "o", config.DefaultOutputDir, "directory receiving the figures")
	globalFlags.String("format", config.DefaultFormat, "image format (png, jpg, tiff)")

	for _, g := range cmdGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    g,
			Title: g,
		})
	}

	cmd.AddCommand(
		NewGroupsCommand(),
		NewMetricsCommand(),
		NewHistCommand(),
		NewRunCommand(),
		NewInspectCommand(),
		NewConfigCommand(),
	)

	return cmd
}

// reportWritten lists the written files.
func reportWritten(out io.Writer, files []string) {
	for _, f := range files {
		fmt.Fprintf(out, "%s %s\n", color.GreenString("wrote"), f)
	}
}
