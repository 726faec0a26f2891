package worldmodel

import (
	"fmt"
	"math"
)

// Expr is the algebraic expression tree for culture seed-placement
// preferences (Design Notes §9). It is a tagged union so it serializes
// cleanly to JSON (the culture-set config file's "sort-expr" field) while
// staying evaluable without reflection or a general-purpose expression
// evaluator: leaves read typed cell attributes, combinators compose them.
type Expr struct {
	Op string `json:"op"`

	// Leaf operands.
	Goal float64 `json:"goal,omitempty"` // temperature_difference
	Set  []int32 `json:"set,omitempty"`  // biome_match: biome ids that count
	Fee  float64 `json:"fee,omitempty"`  // biome_match / sea_coast bonus

	// Combinator operands.
	Exponent float64 `json:"exponent,omitempty"` // pow
	Args     []Expr  `json:"args,omitempty"`     // negate/add/mul/div/pow
}

// Leaf constructors.
func Habitability() Expr             { return Expr{Op: "habitability"} }
func ShoreDistance() Expr            { return Expr{Op: "shore_distance"} }
func Elevation() Expr                { return Expr{Op: "elevation"} }
func NormalizedHabitability() Expr   { return Expr{Op: "normalized_habitability"} }
func TemperatureDifference(goal float64) Expr {
	return Expr{Op: "temperature_difference", Goal: goal}
}
func BiomeMatch(set []int32, fee float64) Expr {
	return Expr{Op: "biome_match", Set: set, Fee: fee}
}
func SeaCoast(fee float64) Expr { return Expr{Op: "sea_coast", Fee: fee} }

// Combinator constructors.
func Negate(a Expr) Expr     { return Expr{Op: "negate", Args: []Expr{a}} }
func Add(args ...Expr) Expr  { return Expr{Op: "add", Args: args} }
func Mul(args ...Expr) Expr  { return Expr{Op: "mul", Args: args} }
func Div(a, b Expr) Expr     { return Expr{Op: "div", Args: []Expr{a, b}} }
func Pow(a Expr, exp float64) Expr {
	return Expr{Op: "pow", Args: []Expr{a}, Exponent: exp}
}

// EvalContext carries the world-level aggregates a leaf may need (the
// normalized_habitability leaf divides by the world's peak habitability)
// so Eval stays a pure function of (ctx, cellID) instead of recomputing
// an O(N) scan per cell.
type EvalContext struct {
	World           *World
	MaxHabitability float64
}

// NewEvalContext precomputes the aggregates EvalContext's leaves need.
func NewEvalContext(w *World) *EvalContext {
	max := int32(0)
	for _, h := range w.Habitability {
		if h > max {
			max = h
		}
	}
	return &EvalContext{World: w, MaxHabitability: float64(max)}
}

// Eval evaluates the expression for a single cell.
func (e Expr) Eval(ctx *EvalContext, cellID int32) float64 {
	w := ctx.World
	switch e.Op {
	case "habitability":
		return float64(w.Habitability[cellID])
	case "shore_distance":
		return float64(w.ShoreDistance[cellID])
	case "elevation":
		return float64(w.Elevation[cellID])
	case "normalized_habitability":
		if ctx.MaxHabitability <= 0 {
			return 0
		}
		return float64(w.Habitability[cellID]) / ctx.MaxHabitability
	case "temperature_difference":
		diff := float64(w.Temperature[cellID]) - e.Goal
		if diff < 0 {
			diff = -diff
		}
		return diff
	case "biome_match":
		for _, b := range e.Set {
			if w.BiomeID[cellID] == b {
				return e.Fee
			}
		}
		return 0
	case "sea_coast":
		if w.ShoreDistance[cellID] == 1 {
			return e.Fee
		}
		return 0
	case "negate":
		return -e.Args[0].Eval(ctx, cellID)
	case "add":
		sum := 0.0
		for _, a := range e.Args {
			sum += a.Eval(ctx, cellID)
		}
		return sum
	case "mul":
		product := 1.0
		for _, a := range e.Args {
			product *= a.Eval(ctx, cellID)
		}
		return product
	case "div":
		denom := e.Args[1].Eval(ctx, cellID)
		if denom == 0 {
			return 0
		}
		return e.Args[0].Eval(ctx, cellID) / denom
	case "pow":
		base := e.Args[0].Eval(ctx, cellID)
		return math.Pow(base, e.Exponent)
	default:
		panic(fmt.Sprintf("worldmodel: unknown preference expr op %q", e.Op))
	}
}
