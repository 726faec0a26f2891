// Package culture seeds culture centers and expands their territory over
// the cell graph.
package culture

import (
	"github.com/worldforge/atlas/pkg/config"
	"github.com/worldforge/atlas/pkg/mesh"
	"github.com/worldforge/atlas/pkg/worldmodel"
)

// Params bundles the runtime-config values this stage needs.
type Params struct {
	CultureCount int
	NeutralRate  float64
	PowerInput   float64
	Extent       mesh.Extent
}

// baseExpansionism is the per-type expansion-speed multiplier.
var baseExpansionism = map[worldmodel.CultureType]float64{
	worldmodel.CultureLake:     0.8,
	worldmodel.CultureNaval:    1.5,
	worldmodel.CultureRiver:    0.9,
	worldmodel.CultureNomadic:  1.5,
	worldmodel.CultureHunting:  0.7,
	worldmodel.CultureHighland: 1.2,
	worldmodel.CultureGeneric:  1.0,
}

// forestBiomeNames is the set of biome keys treated as "forest band" for
// the Nomadic biomeCost penalty.
var forestBiomeNames = map[string]bool{
	"Forest": true, "Taiga": true, "Jungle": true,
}

func biomeByIndex(cat *config.BiomeCatalog, idx int32) (worldmodel.Biome, bool) {
	if idx < 0 || int(idx) >= len(cat.Biomes) {
		return worldmodel.Biome{}, false
	}
	return cat.Biomes[idx], true
}
