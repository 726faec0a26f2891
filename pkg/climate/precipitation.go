package climate

import (
	"math"

	"github.com/worldforge/atlas/pkg/worldmodel"
)

// DefaultLatBandModifiers returns the table that scales maxPrec per 5-degree band from equator to
// pole, encoding the ITCZ / subtropical-dry / mid-latitude-wet / polar-dry
// pattern.
func DefaultLatBandModifiers() []float64 {
	return []float64{
		1.00, 0.95, 0.85, 0.60, 0.35, 0.25, // 0-30: ITCZ tapering into subtropical high
		0.30, 0.45, 0.65, 0.80, 0.90, 0.85, // 30-60: mid-latitude wet belt
		0.70, 0.55, 0.40, 0.30, 0.20, 0.15, // 60-90: polar dry
	}
}

func latBandModifier(table []float64, lat float64) float64 {
	idx := int(math.Abs(lat) / 5)
	idx = worldmodel.ClampInt(idx, 0, len(table)-1)
	return table[idx]
}

// PrecipitationParams bundles the configured values the advection walk
// needs, sourced from the runtime config.
type PrecipitationParams struct {
	MaxPrec               float64
	Modifier              float64
	MaxPassableElevation  int
	LatBandModifiers      []float64
	WindTiers             WindTierTable
	EvaporationFraction   float64
	OceanReplenish        float64
	OceanConstantPrecip   float64
}

// DefaultPrecipitationParams mirrors the runtime config defaults.
func DefaultPrecipitationParams() PrecipitationParams {
	return PrecipitationParams{
		MaxPrec:              100,
		Modifier:             1,
		MaxPassableElevation: 85,
		LatBandModifiers:     DefaultLatBandModifiers(),
		WindTiers:            DefaultWindTierTable(),
		EvaporationFraction:  0.2,
		OceanReplenish:       4,
		OceanConstantPrecip:  1,
	}
}

// AttachPrecipitation runs a directional advection walk: humidity
// sources seed along the windward edge of each
// latitude band (or the polar extreme rows for pure north/south bands),
// then march downwind along the neighbor graph, precipitating as they go.
func AttachPrecipitation(w *worldmodel.World, p PrecipitationParams) {
	for tier := 0; tier < bandCount; tier++ {
		sources := windwardSources(w, p.WindTiers, tier)
		for _, src := range sources {
			walk(w, p, tier, src)
		}
	}
}

// windwardSources picks the deterministic seed cells for a band: the
// band's upwind edge cells for west/east winds, or the band's polar-most
// row for a pure north/south band. Iteration order is by
// ascending cell id, satisfying the determinism invariant.
func windwardSources(w *worldmodel.World, table WindTierTable, tier int) []int32 {
	west, east, _, south := Directions(table, tier)
	inTier := make([]int32, 0)
	for i := 0; i < w.N; i++ {
		if BandIndex(w.Latitude[i]) == tier {
			inTier = append(inTier, int32(i))
		}
	}
	if len(inTier) == 0 {
		return nil
	}

	if west || east {
		edgeX := extremeX(w, inTier, east)
		var sources []int32
		for _, id := range inTier {
			if math.Abs(w.Sites[id][0]-edgeX) < 1e-6 {
				sources = append(sources, id)
			}
		}
		return sources
	}

	// Pure north/south band: seed the polar-most row within the band.
	extremeY := w.Sites[inTier[0]][1]
	for _, id := range inTier {
		if south && w.Sites[id][1] < extremeY {
			extremeY = w.Sites[id][1]
		}
		if !south && w.Sites[id][1] > extremeY {
			extremeY = w.Sites[id][1]
		}
	}
	var sources []int32
	for _, id := range inTier {
		if math.Abs(w.Sites[id][1]-extremeY) < 1e-6 {
			sources = append(sources, id)
		}
	}
	return sources
}

// extremeX returns the minimum x (windward edge when wind blows east) or
// maximum x (windward edge when wind blows west) among ids.
func extremeX(w *worldmodel.World, ids []int32, windBlowsEast bool) float64 {
	best := w.Sites[ids[0]][0]
	for _, id := range ids {
		x := w.Sites[id][0]
		if windBlowsEast && x < best {
			best = x
		}
		if !windBlowsEast && x > best {
			best = x
		}
	}
	return best
}

// walk marches a single humidity parcel downwind from src, precipitating
// onto each cell it crosses, until humidity is exhausted or no unvisited
// neighbor remains.
func walk(w *worldmodel.World, p PrecipitationParams, tier int, src int32) {
	lat := w.Latitude[src]
	humidity := p.MaxPrec*latBandModifier(p.LatBandModifiers, lat) - float64(w.Elevation[src])
	if humidity <= 0 {
		return
	}

	angle := p.WindTiers.Angles[tier] * math.Pi / 180
	dirX, dirY := math.Cos(angle), math.Sin(angle)

	visited := map[int32]bool{src: true}
	current := src
	for humidity > 0 {
		next, ok := bestDownwindNeighbor(w, current, dirX, dirY, visited)
		if !ok {
			break
		}
		visited[next] = true

		if int(w.Temperature[current]) < -5 {
			current = next
			continue
		}

		if w.IsOcean[next] {
			w.Precipitation[next] += uint32(worldmodel.RoundTo(p.OceanConstantPrecip, 0))
			humidity = math.Min(humidity+p.OceanReplenish, p.MaxPrec)
			current = next
			continue
		}

		hCur := float64(w.Elevation[current])
		hNext := float64(w.Elevation[next])
		uplift := math.Max(hNext-hCur, 0) * (hNext / 70) * (hNext / 70)
		precip := math.Max(humidity/(10*p.Modifier), 1) + uplift
		precip = worldmodel.Clamp(precip, 1, humidity)

		w.Precipitation[next] += uint32(worldmodel.RoundTo(precip, 0))
		humidity -= precip
		if precip > 1.5 {
			humidity += precip * p.EvaporationFraction
		}

		if int(hNext) > p.MaxPassableElevation {
			w.Precipitation[next] += uint32(worldmodel.RoundTo(humidity, 0))
			return
		}

		current = next
	}
}

// bestDownwindNeighbor picks the unvisited neighbor of current whose
// bearing best matches (dirX, dirY), tie-breaking by lowest cell id.
func bestDownwindNeighbor(w *worldmodel.World, current int32, dirX, dirY float64, visited map[int32]bool) (int32, bool) {
	best := int32(-1)
	bestScore := math.Inf(-1)
	for _, n := range w.Neighbors(int(current)) {
		if visited[n] {
			continue
		}
		dx := w.Sites[n][0] - w.Sites[current][0]
		dy := w.Sites[n][1] - w.Sites[current][1]
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		score := (dx/length)*dirX + (dy/length)*dirY
		if score > bestScore || (score == bestScore && (best == -1 || n < best)) {
			bestScore = score
			best = n
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
