package culture

import "github.com/worldforge/atlas/pkg/config"

// maxSelectionAttempts is the draw-count after which an entry is
// accepted unconditionally.
const maxSelectionAttempts = 200

// Select samples cultureCount entries from set without replacement,
// accepting each candidate draw with probability entry.Odd (or
// unconditionally once maxSelectionAttempts draws have elapsed). If the
// populated cell count can't support cultureCount cultures, the count
// shrinks; if it shrinks to zero, a single Wildlands placeholder entry
// is returned.
func Select(rng biasedRNG, set *config.CultureSet, populatedCells, cultureCount int) []config.CultureSetEntry {
	k := cultureCount
	if populatedCells < k*25 {
		k = populatedCells / 50
	}
	if k <= 0 {
		return []config.CultureSetEntry{{Name: "Wildlands", Odd: 1}}
	}
	if k > len(set.Entries) {
		k = len(set.Entries)
	}

	remaining := append([]config.CultureSetEntry(nil), set.Entries...)
	var accepted []config.CultureSetEntry
	attempts := 0
	for len(accepted) < k && len(remaining) > 0 {
		idx := rng.NextInt(len(remaining))
		attempts++
		if attempts > maxSelectionAttempts || rng.NextBool(remaining[idx].Odd) {
			accepted = append(accepted, remaining[idx])
			remaining = append(remaining[:idx], remaining[idx+1:]...)
		}
	}
	return accepted
}

// biasedRNG is the subset of worldrand.Stream this package draws from.
type biasedRNG interface {
	NextInt(n int) int
	NextBool(probability float64) bool
	Biased(lo, hi int, exponent float64) int
	Next() float64
}
