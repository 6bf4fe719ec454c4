package puzzle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// Store reads and writes solution sets under a base directory:
// puzzles/all_puzzles.json holds every seed, solutions/seed_N_solutions.json
// holds one seed each.
type Store struct {
	Dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (st *Store) allPuzzlesPath() string {
	return filepath.Join(st.Dir, "puzzles", "all_puzzles.json")
}

func (st *Store) seedPath(seed int) string {
	return filepath.Join(st.Dir, "solutions", fmt.Sprintf("seed_%d_solutions.json", seed))
}

// solutionJSON is the on-disk record. Seed and target live in the
// enclosing map keys, so only the remaining fields are encoded.
type solutionJSON struct {
	Expression      string `json:"expression"`
	Complexity      int    `json:"complexity"`
	UniqueOperators int    `json:"unique_operators"`
}

// Load reads the full solution set. A missing file yields an empty set.
func (st *Store) Load() (Set, error) {
	data, err := os.ReadFile(st.allPuzzlesPath())
	if os.IsNotExist(err) {
		return Set{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "puzzle: reading solution set")
	}
	var raw map[string]map[string]solutionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "puzzle: decoding solution set")
	}

	set := Set{}
	for seedStr, targets := range raw {
		seed, err := strconv.Atoi(seedStr)
		if err != nil {
			return nil, errors.Wrapf(err, "puzzle: bad seed key %q", seedStr)
		}
		for targetStr, rec := range targets {
			target, err := strconv.Atoi(targetStr)
			if err != nil {
				return nil, errors.Wrapf(err, "puzzle: bad target key %q", targetStr)
			}
			set.Merge(Solution{
				Seed:            seed,
				Target:          target,
				Expression:      rec.Expression,
				Complexity:      rec.Complexity,
				UniqueOperators: rec.UniqueOperators,
			})
		}
	}
	return set, nil
}

// Save writes the full solution set to puzzles/all_puzzles.json.
func (st *Store) Save(set Set) error {
	raw := map[string]map[string]solutionJSON{}
	for seed, targets := range set {
		seedKey := strconv.Itoa(seed)
		raw[seedKey] = map[string]solutionJSON{}
		for target, sol := range targets {
			raw[seedKey][strconv.Itoa(target)] = solutionJSON{
				Expression:      sol.Expression,
				Complexity:      sol.Complexity,
				UniqueOperators: sol.UniqueOperators,
			}
		}
	}
	return st.writeJSON(st.allPuzzlesPath(), raw)
}

// SaveSeed writes one seed's solutions to its per-seed file and folds
// them into the combined file.
func (st *Store) SaveSeed(set Set, seed int) error {
	targets := set[seed]
	raw := map[string]solutionJSON{}
	for target, sol := range targets {
		raw[strconv.Itoa(target)] = solutionJSON{
			Expression:      sol.Expression,
			Complexity:      sol.Complexity,
			UniqueOperators: sol.UniqueOperators,
		}
	}
	if err := st.writeJSON(st.seedPath(seed), raw); err != nil {
		return err
	}

	combined, err := st.Load()
	if err != nil {
		return err
	}
	for _, sol := range targets {
		combined.Merge(sol)
	}
	return st.Save(combined)
}

// Backup renames the combined file to a .json.bak sibling, replacing
// any previous backup. Missing files are not an error.
func (st *Store) Backup() (string, error) {
	src := st.allPuzzlesPath()
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return "", nil
	}
	dst := src + ".bak"
	if err := os.Rename(src, dst); err != nil {
		return "", errors.Wrap(err, "puzzle: backing up solution set")
	}
	return dst, nil
}

func (st *Store) writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "puzzle: creating output dir")
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "puzzle: encoding solution set")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "puzzle: writing %s", path)
	}
	return nil
}
