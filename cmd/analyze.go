package main

import (
	"taxipark/internal/analyzer"
	"taxipark/internal/api/handler/v1handler"
	"taxipark/internal/config"
	"taxipark/pkg/domain"
	"taxipark/pkg/parkfile"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
)

// analyzeCommand builds the report of a fixture file locally, without a
// database, and prints it in the same JSON form the API returns.
func analyzeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Prints the report of a park fixture file",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			minTrips := cfg.Analyzer.FaithfulMinTrips
			if cmd.Flags().Changed("min-trips") {
				minTrips, _ = cmd.Flags().GetInt("min-trips")
			}

			fixture, err := parkfile.ReadFile(file)
			if err != nil {
				return err //nolint: wrapcheck
			}

			reporter, err := analyzer.NewReporter(otel.GetMeterProvider(), otel.GetTracerProvider())
			if err != nil {
				return err //nolint: wrapcheck
			}
			report := reporter.Build(cmd.Context(), domain.ParkID{}, fixture.Park, minTrips)

			var e jx.Encoder
			e.SetIdent(2)
			v1handler.EncodeReport(&e, &report)
			_, err = cmd.OutOrStdout().Write(append(e.Bytes(), '\n'))

			return err //nolint: wrapcheck
		},
	}
	cmd.Flags().StringP("file", "f", "", "Park fixture file (.json, .yaml or .yml)")
	cmd.Flags().Int("min-trips", 0, "Minimum trips of a faithful passenger, defaults to analyzer.faithfulMinTrips")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
