package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// workersPerCPU scales the default smoke concurrency.
const workersPerCPU = 2

func newSmokeCmd(app *App) *cobra.Command {
	cfg := SmokeConfig{
		BaseURL:  DefaultSmokeURL,
		Requests: DefaultSmokeRequests,
		Workers:  runtime.NumCPU() * workersPerCPU,
		Timeout:  DefaultSmokeTimeout,
	}

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Exercise a running dashboard server with concurrent reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, runErr := RunSmoke(cmd.Context(), app.HTTPClient, cfg)
			rows := [][]string{{
				stats.Ready, stats.Upstream,
				fmt.Sprint(stats.Requested), fmt.Sprint(stats.Succeeded), fmt.Sprint(stats.Failed),
				fmt.Sprintf("%.1f%%", stats.SuccessRate), fmt.Sprintf("%.0f", stats.RequestsPerSecond),
			}}
			if err := app.emit(cmd, stats, []string{"READY", "UPSTREAM", "REQUESTS", "OK", "FAILED", "SUCCESS", "REQ/S"}, rows); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "Base URL of the dashboard server")
	cmd.Flags().IntVar(&cfg.Requests, "requests", cfg.Requests, "Number of read requests")
	cmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "Concurrent workers")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Per-request timeout")

	return cmd
}
