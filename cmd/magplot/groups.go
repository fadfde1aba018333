package main

import (
	"github.com/spf13/cobra"

	"github.com/vdobler/magplot"
	"github.com/vdobler/magplot/internal/config"
)

func NewGroupsCommand() *cobra.Command {
	var (
		input string
		g     config.GroupConfig
	)

	cmd := &cobra.Command{
		Use:     "groups",
		Short:   "Plot one 2x2 error-bar figure per device group",
		GroupID: gPlot,
		Long: `Plot one figure per device group (vertical and horizontal kickers,
bending magnets, quadrupoles). Each figure has a panel for the mean
position and angle differences in x and y, with one error-bar series
per magnet.`,
		Example: `  magplot groups --input z_shift.csv --x 'z_shift[m]' --x-label 'Shift in z [mm]' --x-scale 1000
  magplot groups --input str_shift.csv --x Strength_ratio --x-label 'Magnet strength [%]' --x-scale 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g.Input = input
			files, err := runGroups(g)
			reportWritten(cmd.OutOrStdout(), files)
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "CSV file to read")
	cmd.Flags().StringVarP(&g.X, "x", "x", "", "column of the independent variable")
	cmd.Flags().StringVar(&g.XLabel, "x-label", "", "label of the x axis (default: the column name)")
	cmd.Flags().Float64Var(&g.XScale, "x-scale", 1, "factor applied to the independent variable")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("x")

	return cmd
}

func runGroups(g config.GroupConfig) ([]string, error) {
	job, err := cfg.GroupJob(g)
	if err != nil {
		return nil, err
	}
	df, err := magplot.ReadCSVFile(g.Input)
	if err != nil {
		return nil, err
	}
	return magplot.PlotGroups(df, job)
}
