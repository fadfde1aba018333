package main

import (
	"github.com/spf13/cobra"

	"github.com/vdobler/magplot"
	"github.com/vdobler/magplot/internal/config"
)

func NewHistCommand() *cobra.Command {
	var (
		h    config.HistConfig
		skip int
	)

	cmd := &cobra.Command{
		Use:     "hist",
		Short:   "Plot a histogram of every detected mean column",
		GroupID: gPlot,
		Example: `  magplot hist --input RBEND_variants.csv`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h.Skip = &skip
			files, err := runHist(h)
			reportWritten(cmd.OutOrStdout(), files)
			return err
		},
	}

	cmd.Flags().StringVarP(&h.Input, "input", "i", "", "CSV file to read")
	cmd.Flags().IntVar(&skip, "skip", magplot.DefaultHistSkip, "leading columns never holding metrics")
	cmd.Flags().IntVar(&h.Bins, "bins", magplot.DefaultBins, "number of bins")
	cmd.Flags().StringVar(&h.OutputDir, "hist-dir", "", "directory receiving the histograms (default <output-dir>/"+magplot.DefaultHistDir+")")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runHist(h config.HistConfig) ([]string, error) {
	job, err := cfg.HistJob(h)
	if err != nil {
		return nil, err
	}
	df, err := magplot.ReadCSVFile(h.Input)
	if err != nil {
		return nil, err
	}
	return magplot.PlotHistograms(df, job)
}
