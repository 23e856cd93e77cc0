package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/kilianp07/kitchen/app"
	"github.com/kilianp07/kitchen/config"
	"github.com/kilianp07/kitchen/infra/logger"
	"github.com/kilianp07/kitchen/infra/metrics"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation over the order feed",
	RunE:  runSimulation,
}

func init() {
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("min", 0, "minimum pickup delay in seconds")
	f.Int("max", 0, "maximum pickup delay in seconds")
	f.Int64("seed", 0, "random seed, 0 picks one from the clock")
	f.Bool("concurrent", false, "wait for pickups concurrently")
	f.String("output", "", "write the event log to this file")
	f.String("format", "", "event log format: jsonl, json or csv")
}

// loadConfig reads the configuration and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	f := cmd.Flags()
	if f.Changed("min") {
		cfg.Pickup.MinSeconds, _ = f.GetInt("min")
	}
	if f.Changed("max") {
		cfg.Pickup.MaxSeconds, _ = f.GetInt("max")
	}
	if f.Changed("seed") {
		cfg.Run.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("concurrent") {
		cfg.Pickup.Concurrent, _ = f.GetBool("concurrent")
	}
	if f.Changed("output") {
		cfg.Output.Path, _ = f.GetString("output")
	}
	if f.Changed("format") {
		cfg.Output.Format, _ = f.GetString("format")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.SetLevel(cfg.Logging.Level)
	logg := logger.New("kitchen")

	sink, err := metrics.NewPromSink(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	sim, err := app.New(cfg, app.WithLogger(logg), app.WithMetrics(sink))
	if err != nil {
		return err
	}
	res, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	if len(res.Violations) > 0 {
		return fmt.Errorf("%d lifecycle violations in event log", len(res.Violations))
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "run %s (seed %d): %s\n", res.RunID, res.Seed, res)
	return err
}
