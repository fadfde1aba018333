package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/vdobler/magplot"
)

func NewInspectCommand() *cobra.Command {
	var (
		input string
		skip  int
		rows  bool
		bins  int
	)

	cmd := &cobra.Command{
		Use:     "inspect",
		Short:   "Show the devices and metrics found in a CSV file",
		GroupID: gInspect,
		Example: `  magplot inspect --input changes_x_shifting.csv --skip 6
  magplot inspect -i RBEND_variants.csv --skip 7 --bins 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			df, err := magplot.ReadCSVFile(input)
			if err != nil {
				return err
			}
			s, err := magplot.Inspect(df, skip, bins)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), s)
			if rows {
				df.Print(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "CSV file to read")
	cmd.Flags().IntVar(&skip, "skip", magplot.DefaultMetricSkip, "leading columns never holding metrics")
	cmd.Flags().BoolVar(&rows, "rows", false, "also print all rows")
	cmd.Flags().IntVar(&bins, "bins", 0, "also print the distribution of every metric in that many bins")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}

func printSummary(out io.Writer, s magplot.Summary) {
	fmt.Fprintf(out, "%s %s\n", bold("File:"), s.Name)
	fmt.Fprintf(out, "%s %d\n", bold("Rows:"), s.Rows)
	fmt.Fprintf(out, "%s %s\n", bold("Columns:"), strings.Join(s.Columns, ", "))
	if len(s.Devices) > 0 {
		fmt.Fprintf(out, "%s %s\n", bold("Devices:"), strings.Join(s.Devices, ", "))
	}
	if len(s.Metrics) == 0 {
		fmt.Fprintln(out, color.YellowString("No metrics with non-zero values."))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Metric", "Mean", "RMS", "Rows", "Min", "Max"})
	for _, m := range s.Metrics {
		rms := m.RMS
		if rms == "" {
			rms = "-"
		}
		t.AppendRow(table.Row{m.Name, m.Mean, rms, m.Count, m.Min, m.Max})
	}
	t.Render()

	for _, m := range s.Metrics {
		if len(m.Bins) > 0 {
			printBins(out, m)
		}
	}
}

func printBins(out io.Writer, m magplot.MetricSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetTitle(m.Mean)
	t.AppendHeader(table.Row{"Center", "Width", "Count", "Density"})
	for _, b := range m.Bins {
		t.AppendRow(table.Row{
			fmt.Sprintf("%.4g", b.X),
			fmt.Sprintf("%.4g", b.Width),
			b.Count,
			fmt.Sprintf("%.4g", b.Density),
		})
	}
	t.Render()
}
