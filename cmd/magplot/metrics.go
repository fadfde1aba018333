package main

import (
	"github.com/spf13/cobra"

	"github.com/vdobler/magplot"
	"github.com/vdobler/magplot/internal/config"
)

func NewMetricsCommand() *cobra.Command {
	var (
		m    config.MetricConfig
		skip int
	)

	cmd := &cobra.Command{
		Use:     "metrics",
		Short:   "Plot one error-bar figure per detected metric",
		GroupID: gPlot,
		Long: `Detect the Mean/RMS columns holding non-zero values and plot one
figure per metric, overlaying all magnets found in the data.`,
		Example: `  magplot metrics --input changes_x_shifting.csv --x x_shift`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m.Skip = &skip
			files, err := runMetrics(m)
			reportWritten(cmd.OutOrStdout(), files)
			return err
		},
	}

	cmd.Flags().StringVarP(&m.Input, "input", "i", "", "CSV file to read")
	cmd.Flags().StringVarP(&m.X, "x", "x", "", "column of the independent variable")
	cmd.Flags().IntVar(&skip, "skip", magplot.DefaultMetricSkip, "leading columns never holding metrics")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("x")

	return cmd
}

func runMetrics(m config.MetricConfig) ([]string, error) {
	job, err := cfg.MetricJob(m)
	if err != nil {
		return nil, err
	}
	df, err := magplot.ReadCSVFile(m.Input)
	if err != nil {
		return nil, err
	}
	return magplot.PlotMetrics(df, job)
}
