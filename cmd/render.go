package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SecTionXx/SaleOrderForecast-sub001/chartopt"
	"github.com/SecTionXx/SaleOrderForecast-sub001/viz"
)

var (
	renderInput     string // Dataset file
	renderOutput    string // HTML output path
	renderChartType string // Chart type
	renderThreshold int    // Point budget before rendering (0 = default)
	renderTitle     string // Chart title
	renderSeed      int64  // Seed for scatter centroid selection
)

// renderCmd reduces a dataset and writes it as an HTML chart.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Reduce a dataset and render it as an HTML chart",
	Run: func(cmd *cobra.Command, args []string) {
		points, err := LoadDataset(renderInput)
		if err != nil {
			logrus.Fatalf("Failed to load dataset: %v", err)
		}

		registry := chartopt.NewChartRegistry()
		orchestrator := chartopt.NewOrchestrator(registry, nil, renderSeed)
		chart := &chartopt.ChartDescriptor{
			Type:     renderChartType,
			Title:    renderTitle,
			Datasets: []*chartopt.Dataset{{Label: "data", Points: points}},
		}
		registry.Register("cli", chart, nil)
		orchestrator.OptimizeAllCharts(renderThreshold)

		file, err := os.Create(renderOutput)
		if err != nil {
			logrus.Fatalf("Failed to create output file: %v", err)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				logrus.Fatalf("Failed to close output file: %v", closeErr)
			}
		}()

		if err := viz.Render(chart, file); err != nil {
			logrus.Fatalf("Failed to render chart: %v", err)
		}
		logrus.Infof("rendered %d points to %s", len(chart.Datasets[0].Points), renderOutput)
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderInput, "input", "", "Dataset file (.json or .csv)")
	renderCmd.Flags().StringVar(&renderOutput, "output", "chart.html", "HTML output path")
	renderCmd.Flags().StringVar(&renderChartType, "type", chartopt.ChartLine, "Chart type")
	renderCmd.Flags().IntVar(&renderThreshold, "threshold", 0, "Point budget before rendering (0 = default 100)")
	renderCmd.Flags().StringVar(&renderTitle, "title", "", "Chart title")
	renderCmd.Flags().Int64Var(&renderSeed, "seed", 0, "Seed for scatter centroid selection")
	if err := renderCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(renderCmd)
}
