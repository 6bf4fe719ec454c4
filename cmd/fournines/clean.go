package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/HamburgJ/four-nines-game/pkg/puzzle"
)

func newCleanCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Re-home solutions filed under the wrong seed, backing up first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(v)
		},
	}
}

func runClean(v *viper.Viper) error {
	log, err := newLogger(v)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	store := puzzle.NewStore(v.GetString("dir"))
	set, err := store.Load()
	if err != nil {
		return err
	}

	backup, err := store.Backup()
	if err != nil {
		return err
	}
	if backup != "" {
		log.Info("backed up solution set", zap.String("path", backup))
	}

	cleaned, moves := puzzle.Clean(set)
	for _, m := range moves {
		log.Info("moved solution",
			zap.Int("from_seed", m.FromSeed),
			zap.Int("to_seed", m.ToSeed),
			zap.Int("target", m.Target))
	}

	if err := store.Save(cleaned); err != nil {
		return err
	}
	log.Info("clean done",
		zap.Int("moves", len(moves)),
		zap.Int("before", set.Count()),
		zap.Int("after", cleaned.Count()))
	return nil
}
