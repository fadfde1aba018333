package main

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errNoJobs = errors.New("no jobs configured")

func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "run",
		Short:   "Run all plotting jobs of the configuration file",
		GroupID: gPlot,
		Long: `Run every job listed under groups, metrics and histograms in the
configuration file, in this order. The first failing job stops the run;
figures written so far are kept.`,
		Example: `  magplot run --config magplot.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(cfg.Groups)+len(cfg.Metrics)+len(cfg.Histograms) == 0 {
				return errNoJobs
			}
			out := cmd.OutOrStdout()

			for _, g := range cfg.Groups {
				logrus.WithField("input", g.Input).Info("Plotting device groups")
				files, err := runGroups(g)
				reportWritten(out, files)
				if err != nil {
					return err
				}
			}
			for _, m := range cfg.Metrics {
				logrus.WithField("input", m.Input).Info("Plotting metrics")
				files, err := runMetrics(m)
				reportWritten(out, files)
				if err != nil {
					return err
				}
			}
			for _, h := range cfg.Histograms {
				logrus.WithField("input", h.Input).Info("Plotting histograms")
				files, err := runHist(h)
				reportWritten(out, files)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
