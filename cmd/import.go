package main

import (
	"fmt"
	"taxipark/internal/analyzer"
	"taxipark/internal/config"
	"taxipark/pkg/logger"
	"taxipark/pkg/parkfile"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// importCommand stores a fixture file as a park and enqueues its analysis.
// The report is built by a running 'serve' instance.
func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Imports a park fixture file into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			file, _ := cmd.Flags().GetString("file")
			name, _ := cmd.Flags().GetString("name")

			fixture, err := parkfile.ReadFile(file)
			if err != nil {
				return err //nolint: wrapcheck
			}
			if name == "" {
				name = fixture.Name
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			reporter, err := analyzer.NewReporter(otel.GetMeterProvider(), otel.GetTracerProvider())
			if err != nil {
				return err //nolint: wrapcheck
			}
			id, err := analyzer.New(strg, reporter, analyzer.NewOptions(cfg)).Import(ctx, name, fixture.Park)
			if err != nil {
				return err //nolint: wrapcheck
			}

			logger.Info(ctx, "park imported", zap.Stringer("parkID", id), zap.String("name", name))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), id.String())

			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "Park fixture file (.json, .yaml or .yml)")
	cmd.Flags().StringP("name", "n", "", "Park name, defaults to the name in the fixture")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
