// Package features labels connected components of the cell graph:
// land components become continents/islands, water components become
// oceans/lakes.
package features

import "github.com/worldforge/atlas/pkg/worldmodel"

// ComponentType tags a terrain-feature component.
type ComponentType uint8

const (
	ComponentOcean ComponentType = iota
	ComponentLake
	ComponentContinent
	ComponentIsland
	ComponentIsle
	ComponentLakeIsland
)

func (c ComponentType) String() string {
	switch c {
	case ComponentOcean:
		return "ocean"
	case ComponentLake:
		return "lake"
	case ComponentContinent:
		return "continent"
	case ComponentIsland:
		return "island"
	case ComponentIsle:
		return "isle"
	case ComponentLakeIsland:
		return "lake-island"
	default:
		return "unknown"
	}
}

// Component is one labeled connected component.
type Component struct {
	ID    int32
	Cells []int32
	Type  ComponentType
}

// continentCellThreshold is the size band above which a land component
// is a continent rather than an island.
const continentCellThreshold = 200

// Classify labels every cell's TerrainFeatureID via BFS over the
// neighbor graph and returns the component list.
func Classify(w *worldmodel.World) []Component {
	visited := make([]bool, w.N)
	var components []Component
	cellComponent := make([]int32, w.N)
	var nextID int32

	for start := 0; start < w.N; start++ {
		if visited[start] {
			continue
		}
		cells := bfs(w, visited, int32(start))
		comp := Component{ID: nextID, Cells: cells}
		for _, c := range cells {
			w.TerrainFeatureID[c] = comp.ID
			cellComponent[c] = comp.ID
		}
		components = append(components, comp)
		nextID++
	}

	largestWater := int32(-1)
	for i := range components {
		if w.IsOcean[components[i].Cells[0]] {
			if largestWater == -1 || len(components[i].Cells) > len(components[largestWater].Cells) {
				largestWater = components[i].ID
			}
		}
	}

	for i := range components {
		components[i].Type = classifyComponent(w, components, cellComponent, largestWater, components[i].Cells)
	}
	return components
}

// bfs floods the component containing start, restricted to cells that
// share start's land/water status.
func bfs(w *worldmodel.World, visited []bool, start int32) []int32 {
	isLand := !w.IsOcean[start]
	queue := []int32{start}
	visited[start] = true
	var cells []int32
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cells = append(cells, cur)
		for _, n := range w.Neighbors(int(cur)) {
			if visited[n] || (!w.IsOcean[n]) != isLand {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return cells
}

// classifyComponent assigns the component type from land/water status,
// size, and whether it touches the largest water component (treated as
// "the ocean"; every smaller water component is a lake). A land
// component touching no external border after expansion is classified
// isle or lake-island depending on its water context.
func classifyComponent(w *worldmodel.World, components []Component, cellComponent []int32, largestWater int32, cells []int32) ComponentType {
	isLand := len(cells) > 0 && !w.IsOcean[cells[0]]
	if !isLand {
		if components[cellComponent[cells[0]]].ID == largestWater {
			return ComponentOcean
		}
		return ComponentLake
	}

	touchesOcean := false
	touchesLake := false
	for _, c := range cells {
		for _, n := range w.Neighbors(int(c)) {
			if !w.IsOcean[n] {
				continue
			}
			if cellComponent[n] == largestWater {
				touchesOcean = true
			} else {
				touchesLake = true
			}
		}
	}

	if len(cells) >= continentCellThreshold {
		return ComponentContinent
	}
	if !touchesOcean {
		if touchesLake {
			return ComponentLakeIsland
		}
		return ComponentIsle
	}
	return ComponentIsland
}
