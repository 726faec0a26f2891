package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/worldforge/atlas/pkg/worldmodel"
)

// CultureSetEntry is one configured culture option a gen-cultures run can
// place.
type CultureSetEntry struct {
	Name       string           `json:"name"`
	Base       int              `json:"base"`
	Odd        float64          `json:"odd"`
	Preference worldmodel.Expr  `json:"preference"`
}

// CultureSet is the ordered list of culture options a gen-cultures run
// samples from.
type CultureSet struct {
	Entries []CultureSetEntry `json:"cultures"`
}

// LoadCultureSet reads a culture set config file.
func LoadCultureSet(path string) (*CultureSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading culture set %s: %w", path, err)
	}
	var set CultureSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing culture set %s: %w", path, err)
	}
	if len(set.Entries) == 0 {
		return nil, fmt.Errorf("culture set %s: %w (no cultures listed)", path, worldmodel.ErrMissingInput)
	}
	return &set, nil
}

// DefaultCultureSet is a small built-in set used when no config file is
// supplied, ranking cells by normalized habitability plus a small
// sea-coast bonus.
func DefaultCultureSet() *CultureSet {
	pref := worldmodel.Add(worldmodel.NormalizedHabitability(), worldmodel.SeaCoast(0.2))
	names := []string{"Ashveil", "Thornwick", "Greywater", "Suncrest", "Mossfen", "Ironhollow", "Brackenmoor", "Stonewake", "Wyrmreach", "Fenmarch", "Duskhaven", "Highmarch"}
	entries := make([]CultureSetEntry, len(names))
	for i, name := range names {
		entries[i] = CultureSetEntry{Name: name, Base: i, Odd: 0.8, Preference: pref}
	}
	return &CultureSet{Entries: entries}
}

// NameBases is the set of Markov-chain seed-name lists keyed by base id,
// used by the external (not-in-core) name generator; the core only needs
// to load and pass the base id through.
type NameBases struct {
	Bases map[int][]string `json:"bases"`
}

// LoadNameBases reads a name-base list file.
func LoadNameBases(path string) (*NameBases, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading name bases %s: %w", path, err)
	}
	var bases NameBases
	if err := json.Unmarshal(data, &bases); err != nil {
		return nil, fmt.Errorf("parsing name bases %s: %w", path, err)
	}
	return &bases, nil
}
