package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SecTionXx/SaleOrderForecast-sub001/forecast"
)

var (
	fcInput      string // Historical dataset file
	fcOutput     string // Output file ("" = stdout)
	fcHorizon    int    // Number of future points to project
	fcMethod     string // Forecast method
	fcConfidence bool   // Include the confidence band in the log output
)

// forecastCmd projects a sales history forward.
var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project a sales history forward",
	Run: func(cmd *cobra.Command, args []string) {
		history, err := LoadDataset(fcInput)
		if err != nil {
			logrus.Fatalf("Failed to load history: %v", err)
		}

		result, err := forecast.Generate(history, forecast.Parameters{
			Horizon:    fcHorizon,
			Method:     fcMethod,
			Confidence: fcConfidence,
		})
		if err != nil {
			logrus.Fatalf("Forecast failed: %v", err)
		}

		logrus.Infof("generated %d-point %s forecast from %d history points",
			len(result.Points), result.Model, len(history))
		if fcConfidence && result.Lower != nil {
			logrus.Infof("confidence band: first point [%.2f, %.2f]",
				result.Lower[0].Y, result.Upper[0].Y)
		}

		if err := WriteDataset(result.Points, fcOutput); err != nil {
			logrus.Fatalf("Failed to write forecast: %v", err)
		}
	},
}

func init() {
	forecastCmd.Flags().StringVar(&fcInput, "input", "", "Historical dataset file (.json or .csv)")
	forecastCmd.Flags().StringVar(&fcOutput, "output", "", "Output JSON file (default: stdout)")
	forecastCmd.Flags().IntVar(&fcHorizon, "horizon", 30, "Number of future points to project")
	forecastCmd.Flags().StringVar(&fcMethod, "method", forecast.MethodBasic, "Forecast method (basic, advanced, predictive)")
	forecastCmd.Flags().BoolVar(&fcConfidence, "confidence", false, "Compute the 95% confidence band")
	if err := forecastCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(forecastCmd)
}
