package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/worldforge/atlas/pkg/worldmodel"
)

// BiomeCatalog is the JSON shape of the biomes config file: the catalog
// rows plus the 5x26 moisture-band x temperature-band matrix of key
// names. Plain encoding/json unmarshal into typed structs — no schema
// library in the corpus targets this shape better than the stdlib does.
type BiomeCatalog struct {
	Biomes []worldmodel.Biome `json:"biomes"`
	Matrix [5][26]string      `json:"matrix"`
}

// LoadBiomeCatalog reads and validates a biome catalog file.
func LoadBiomeCatalog(path string) (*BiomeCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading biome catalog %s: %w", path, err)
	}
	var cat BiomeCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing biome catalog %s: %w", path, err)
	}
	if len(cat.Biomes) == 0 {
		return nil, fmt.Errorf("biome catalog %s: %w (no biomes listed)", path, worldmodel.ErrMissingInput)
	}
	return &cat, nil
}

// IndexOf returns the catalog index of a biome key name, or -1.
func (c *BiomeCatalog) IndexOf(key string) int {
	for i, b := range c.Biomes {
		if b.KeyName == key {
			return i
		}
	}
	return -1
}

// DefaultBiomeCatalog is a minimal built-in catalog used when no config
// file is supplied (genesis runs against a bare project, tests).
func DefaultBiomeCatalog() *BiomeCatalog {
	cat := &BiomeCatalog{
		Biomes: []worldmodel.Biome{
			{KeyName: "Marine", Habitability: 0, MovementCost: 0, IsNomadic: false, IsHuntable: false},
			{KeyName: "Permafrost", Habitability: 4, MovementCost: 10, IsNomadic: true, IsHuntable: true},
			{KeyName: "Wetland", Habitability: 12, MovementCost: 15, IsNomadic: false, IsHuntable: true},
			{KeyName: "Tundra", Habitability: 10, MovementCost: 8, IsNomadic: true, IsHuntable: true},
			{KeyName: "Taiga", Habitability: 18, MovementCost: 7, IsNomadic: false, IsHuntable: true},
			{KeyName: "Grassland", Habitability: 30, MovementCost: 2, IsNomadic: true, IsHuntable: false},
			{KeyName: "Forest", Habitability: 22, MovementCost: 5, IsNomadic: false, IsHuntable: true},
			{KeyName: "Savanna", Habitability: 20, MovementCost: 3, IsNomadic: true, IsHuntable: true},
			{KeyName: "Desert", Habitability: 2, MovementCost: 6, IsNomadic: true, IsHuntable: false},
			{KeyName: "Jungle", Habitability: 14, MovementCost: 9, IsNomadic: false, IsHuntable: true},
		},
	}
	// Moisture bands 0..4 (dry to wet), temperature bands 0..25 (cold to
	// hot) -> biome key. A compact, monotonic-ish assignment; real
	// deployments ship their own matrix via the config file.
	bands := [5][]string{
		{"Tundra", "Tundra", "Desert", "Desert", "Desert", "Savanna", "Savanna", "Savanna", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert"},
		{"Tundra", "Taiga", "Grassland", "Grassland", "Savanna", "Savanna", "Savanna", "Savanna", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert", "Desert"},
		{"Tundra", "Taiga", "Forest", "Grassland", "Grassland", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna", "Savanna"},
		{"Tundra", "Taiga", "Forest", "Forest", "Forest", "Grassland", "Grassland", "Savanna", "Savanna", "Savanna", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle"},
		{"Tundra", "Taiga", "Taiga", "Forest", "Forest", "Forest", "Grassland", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle", "Jungle"},
	}
	for m := 0; m < 5; m++ {
		for t := 0; t < 26; t++ {
			cat.Matrix[m][t] = bands[m][t]
		}
	}
	return cat
}
