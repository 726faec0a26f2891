// Package worldmodel holds the shared cell graph passed between pipeline
// stages: a struct-of-arrays cell store with a flat CSR neighbor adjacency,
// plus the small flat tables (rivers, lakes, biomes, cultures) that hang
// off it. Topology (sites, polygons, neighbors) is fixed by Mesh; every
// later stage only mutates attribute columns.
package worldmodel

import (
	"fmt"

	"github.com/paulmach/orb"
)

// NoID marks an absent id reference (river, lake, closest-water, etc).
const NoID int32 = -1

// World is the cell graph. Every slice below is indexed by cell id and has
// length N once Mesh has run; the neighbor adjacency is CSR-encoded:
// neighbors of cell i are NeighborIDs[NeighborOffsets[i]:NeighborOffsets[i+1]].
type World struct {
	N int

	Sites    []orb.Point
	Polygons []orb.Polygon
	Area     []float64

	NeighborOffsets []int32
	NeighborIDs     []int32

	Latitude []float64

	Elevation []int32
	IsOcean   []bool

	Temperature   []int32
	Precipitation []uint32
	WindTier      []uint8

	WaterFlow      []float64
	LakeDepth      []float64
	RiverID        []int32
	ConfluenceFlux []float64

	ShoreDistance []int8
	ClosestWater  []int32
	WaterCount    []uint8

	BiomeID          []int32
	TerrainFeatureID []int32

	Habitability []int32
	Population   []float64
	CultureID    []int32

	Rivers   []River
	Lakes    []Lake
	Biomes   []Biome
	Cultures []Culture
}

// River is an ordered list of cell ids from source to mouth.
type River struct {
	ID         int32
	Cells      []int32
	ParentID   int32 // NoID if this is not a tributary
	BasinID    int32 // root river id of the tributary tree
	Polyline   []orb.Point
	VertexFlux []float64
	Length     float64
	Width      float64
	Discharge  float64
}

// LakeGroup classifies a lake by temperature / evaporation / outlet.
type LakeGroup uint8

const (
	LakeFreshwater LakeGroup = iota
	LakeSalt
	LakeFrozen
	LakeLava
	LakeDry
	LakeSinkhole
)

func (g LakeGroup) String() string {
	switch g {
	case LakeFreshwater:
		return "freshwater"
	case LakeSalt:
		return "salt"
	case LakeFrozen:
		return "frozen"
	case LakeLava:
		return "lava"
	case LakeDry:
		return "dry"
	case LakeSinkhole:
		return "sinkhole"
	default:
		return "unknown"
	}
}

// Lake is a connected water-feature component.
type Lake struct {
	ID                int32
	Cells             []int32
	Group             LakeGroup
	SurfaceElevation  float64
	Flux              float64
	Evaporation       float64
	OutletCell        int32 // NoID if closed
	Inlets            []int32
	Closed            bool
}

// Biome is a catalog row, configuration not a hard-coded constant table.
type Biome struct {
	KeyName       string
	Habitability  int
	MovementCost  int
	IsNomadic     bool
	IsHuntable    bool
}

// CultureType classifies how a culture expands.
type CultureType uint8

const (
	CultureGeneric CultureType = iota
	CultureNomadic
	CultureHighland
	CultureLake
	CultureNaval
	CultureRiver
	CultureHunting
)

func (t CultureType) String() string {
	switch t {
	case CultureNomadic:
		return "Nomadic"
	case CultureHighland:
		return "Highland"
	case CultureLake:
		return "Lake"
	case CultureNaval:
		return "Naval"
	case CultureRiver:
		return "River"
	case CultureHunting:
		return "Hunting"
	default:
		return "Generic"
	}
}

// Culture is a seeded, expanding polity.
type Culture struct {
	Name         string
	CenterCell   int32
	Type         CultureType
	Expansionism float64
	NameBaseID   int
	Preference   Expr
	Locked       bool
}

// NewWorld allocates a World with N cells and zeroed/defaulted attribute
// columns. Neighbor CSR arrays are left empty for Mesh to fill in.
func NewWorld(n int) *World {
	w := &World{
		N:                n,
		Sites:            make([]orb.Point, n),
		Polygons:         make([]orb.Polygon, n),
		Area:             make([]float64, n),
		NeighborOffsets:  make([]int32, n+1),
		Latitude:         make([]float64, n),
		Elevation:        make([]int32, n),
		IsOcean:          make([]bool, n),
		Temperature:      make([]int32, n),
		Precipitation:    make([]uint32, n),
		WindTier:         make([]uint8, n),
		WaterFlow:        make([]float64, n),
		LakeDepth:        make([]float64, n),
		RiverID:          make([]int32, n),
		ConfluenceFlux:   make([]float64, n),
		ShoreDistance:    make([]int8, n),
		ClosestWater:     make([]int32, n),
		WaterCount:       make([]uint8, n),
		BiomeID:          make([]int32, n),
		TerrainFeatureID: make([]int32, n),
		Habitability:     make([]int32, n),
		Population:       make([]float64, n),
		CultureID:        make([]int32, n),
	}
	for i := 0; i < n; i++ {
		w.RiverID[i] = NoID
		w.ClosestWater[i] = NoID
		w.CultureID[i] = NoID
	}
	return w
}

// Neighbors returns the neighbor cell ids of cell i.
func (w *World) Neighbors(i int) []int32 {
	return w.NeighborIDs[w.NeighborOffsets[i]:w.NeighborOffsets[i+1]]
}

// SetNeighbors installs the CSR adjacency from a per-cell slice of
// neighbor lists. Caller is responsible for symmetry (Mesh's job).
func SetNeighbors(w *World, adjacency [][]int32) {
	offsets := make([]int32, w.N+1)
	var ids []int32
	for i := 0; i < w.N; i++ {
		offsets[i] = int32(len(ids))
		ids = append(ids, adjacency[i]...)
	}
	offsets[w.N] = int32(len(ids))
	w.NeighborOffsets = offsets
	w.NeighborIDs = ids
}

// CheckNeighborSymmetry verifies j in neighbors(i) iff i in neighbors(j).
// Returns the first asymmetric pair found, or ok=true if none.
func (w *World) CheckNeighborSymmetry() (i, j int32, ok bool) {
	for a := 0; a < w.N; a++ {
		for _, b := range w.Neighbors(a) {
			found := false
			for _, back := range w.Neighbors(int(b)) {
				if back == int32(a) {
					found = true
					break
				}
			}
			if !found {
				return int32(a), b, false
			}
		}
	}
	return 0, 0, true
}

// RiverByID returns a pointer to the river with the given id, or nil.
func (w *World) RiverByID(id int32) *River {
	for i := range w.Rivers {
		if w.Rivers[i].ID == id {
			return &w.Rivers[i]
		}
	}
	return nil
}

// LakeByID returns a pointer to the lake with the given id, or nil.
func (w *World) LakeByID(id int32) *Lake {
	for i := range w.Lakes {
		if w.Lakes[i].ID == id {
			return &w.Lakes[i]
		}
	}
	return nil
}

// RequireColumn is a small helper stages use to fail fast (category 1,
// missing-input) when a required upstream attribute was never computed.
// Stages call it with a human label and a predicate over the world.
func RequireColumn(w *World, label string, present bool) error {
	if !present {
		return fmt.Errorf("%s: %w", label, ErrMissingInput)
	}
	return nil
}
