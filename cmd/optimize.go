package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SecTionXx/SaleOrderForecast-sub001/chartopt"
)

var (
	optInput      string // Dataset file (.json or .csv)
	optOutput     string // Output file ("" = stdout)
	optChartType  string // Chart type driving reducer selection
	optThreshold  int    // Fixed point budget (0 = default)
	optAdaptive   bool   // Size the budget from the capability profile
	optConfigPath string // Optional optimizer bundle YAML
	optSeed       int64  // Seed for scatter centroid selection
	optTrace      bool   // Log a reduction summary after the pass
)

// optimizeCmd reduces one dataset and writes the result.
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Reduce a chart dataset to a bounded number of points",
	Run: func(cmd *cobra.Command, args []string) {
		points, err := LoadDataset(optInput)
		if err != nil {
			logrus.Fatalf("Failed to load dataset: %v", err)
		}

		orchestrator, registry := buildOrchestrator()
		chart := &chartopt.ChartDescriptor{
			Type:     optChartType,
			Title:    optInput,
			Datasets: []*chartopt.Dataset{{Label: "data", Points: points}},
		}
		registry.Register("cli", chart, nil)

		if optAdaptive {
			orchestrator.AdaptiveOptimize(len(points))
		} else {
			orchestrator.OptimizeAllCharts(optThreshold)
		}

		reduced := chart.Datasets[0].Points
		logrus.Infof("optimized %q dataset: %d -> %d points", optChartType, len(points), len(reduced))
		if optTrace {
			logTraceSummary(orchestrator.Trace)
		}

		if err := WriteDataset(reduced, optOutput); err != nil {
			logrus.Fatalf("Failed to write output: %v", err)
		}
	},
}

// buildOrchestrator wires an orchestrator from the optional bundle file and
// the CLI flags. Flag values win over bundle defaults where both exist.
func buildOrchestrator() (*chartopt.Orchestrator, *chartopt.ChartRegistry) {
	registry := chartopt.NewChartRegistry()
	if optConfigPath == "" {
		o := chartopt.NewOrchestrator(registry, nil, optSeed)
		if optTrace {
			o.Trace = chartopt.NewOptimizationTrace(chartopt.TraceLevelDecisions)
		}
		return o, registry
	}

	bundle, err := chartopt.LoadOptimizerBundle(optConfigPath)
	if err != nil {
		logrus.Fatalf("Failed to load optimizer config: %v", err)
	}
	if err := bundle.Validate(); err != nil {
		logrus.Fatalf("Invalid optimizer config: %v", err)
	}
	if optSeed != 0 {
		bundle.Seed = optSeed
	}
	if optTrace {
		bundle.Trace = string(chartopt.TraceLevelDecisions)
	}
	return bundle.NewOrchestrator(registry), registry
}

func logTraceSummary(trace *chartopt.OptimizationTrace) {
	s := chartopt.Summarize(trace)
	logrus.Infof("reduction summary: %d datasets (%d reduced, %d skipped), %d -> %d points, compression %.3f",
		s.TotalDatasets, s.ReducedCount, s.SkippedCount, s.PointsIn, s.PointsOut, s.MeanCompression)
	for reducer, count := range s.ReducerCounts {
		logrus.Infof("  %s: %d dataset(s)", reducer, count)
	}
}

func init() {
	optimizeCmd.Flags().StringVar(&optInput, "input", "", "Dataset file (.json or .csv)")
	optimizeCmd.Flags().StringVar(&optOutput, "output", "", "Output JSON file (default: stdout)")
	optimizeCmd.Flags().StringVar(&optChartType, "type", chartopt.ChartLine, "Chart type (line, area, bar, horizontalBar, scatter, ...)")
	optimizeCmd.Flags().IntVar(&optThreshold, "threshold", 0, "Point budget (0 = default 100)")
	optimizeCmd.Flags().BoolVar(&optAdaptive, "adaptive", false, "Derive the budget from the capability profile")
	optimizeCmd.Flags().StringVar(&optConfigPath, "config", "", "Optimizer bundle YAML")
	optimizeCmd.Flags().Int64Var(&optSeed, "seed", 0, "Seed for scatter centroid selection")
	optimizeCmd.Flags().BoolVar(&optTrace, "trace", false, "Log a reduction summary")
	if err := optimizeCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(optimizeCmd)
}
