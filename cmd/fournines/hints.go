package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/HamburgJ/four-nines-game/pkg/parser"
	"github.com/HamburgJ/four-nines-game/pkg/puzzle"
)

// hintedSolution is the enriched on-disk record for the hinted file.
type hintedSolution struct {
	Expression      string       `json:"expression"`
	Complexity      int          `json:"complexity"`
	UniqueOperators int          `json:"unique_operators"`
	Hints           parser.Hints `json:"hints"`
}

func newHintsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "hints",
		Short: "Re-parse every stored expression and write a hinted copy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHints(v)
		},
	}
}

func runHints(v *viper.Viper) error {
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

	out := map[string]map[string]hintedSolution{}
	hinted, failed := 0, 0
	for seed, targets := range set {
		seedKey := strconv.Itoa(seed)
		for target, sol := range targets {
			hints, err := parser.Extract(sol.Expression)
			if err != nil {
				failed++
				log.Warn("skipping unparseable expression",
					zap.Int("seed", seed), zap.Int("target", target),
					zap.String("expression", sol.Expression), zap.Error(err))
				continue
			}
			if out[seedKey] == nil {
				out[seedKey] = map[string]hintedSolution{}
			}
			out[seedKey][strconv.Itoa(target)] = hintedSolution{
				Expression:      sol.Expression,
				Complexity:      sol.Complexity,
				UniqueOperators: sol.UniqueOperators,
				Hints:           hints,
			}
			hinted++
		}
	}

	path := filepath.Join(v.GetString("dir"), "puzzles", "all_puzzles_with_hints.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating output dir")
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding hinted solutions")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	log.Info("hints written",
		zap.String("path", path),
		zap.Int("hinted", hinted),
		zap.Int("failed", failed))
	return nil
}
