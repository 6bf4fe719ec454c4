package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HamburgJ/four-nines-game/pkg/puzzle"
	"github.com/HamburgJ/four-nines-game/pkg/runner"
)

func newContinuousCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "continuous",
		Short: "Cycle all seeds indefinitely, saving progress after each",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd, "time-per-seed", "target-min", "target-max"); err != nil {
				return err
			}
			return runContinuous(cmd.Context(), v)
		},
	}

	cmd.Flags().Duration("time-per-seed", 5*time.Minute, "wall-clock budget per seed")
	cmd.Flags().Int("target-min", 1, "minimum target value")
	cmd.Flags().Int("target-max", 100, "maximum target value")
	return cmd
}

func runContinuous(parent context.Context, v *viper.Viper) error {
	log, err := newLogger(v)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Ctrl+C finishes the current seed and saves before exiting.
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := puzzle.NewStore(v.GetString("dir"))
	r, err := runner.New(runner.Settings{
		TimePerSeed: v.GetDuration("time-per-seed"),
		TargetMin:   v.GetInt("target-min"),
		TargetMax:   v.GetInt("target-max"),
	}, store, log)
	if err != nil {
		return err
	}

	if err := r.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
