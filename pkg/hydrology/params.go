package hydrology

// Params bundles the configured thresholds flow accumulation, lake
// classification, and river rendering need.
type Params struct {
	CellCountModifier    float64
	MinFluxToFormRiver   float64
	LakeElevationLimit   int
	MaxPassableElevation int
	MaxIterations        int
	MaxDowncut           float64
	Meandering           float64
	WidthK               float64
}

// DefaultParams mirrors the runtime config defaults (pkg/config.Defaults).
func DefaultParams() Params {
	return Params{
		CellCountModifier:    1,
		MinFluxToFormRiver:   30,
		LakeElevationLimit:   20,
		MaxPassableElevation: 85,
		MaxIterations:        50,
		MaxDowncut:           5,
		Meandering:           0.3,
		WidthK:               50,
	}
}
