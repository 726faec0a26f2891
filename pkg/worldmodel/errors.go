package worldmodel

import "errors"

// The four error kinds from the error-handling design. Stages return
// these (wrapped with context via fmt.Errorf("...: %w", ...)) and
// pipeline.ExitCode maps them to process exit codes.
var (
	// ErrMissingInput: a stage requires an attribute absent from the
	// layer. Not recovered; fatal to the invoking command.
	ErrMissingInput = errors.New("missing required input")

	// ErrDegenerateGeometry: clipping produced a zero-area polygon,
	// triangulation was collinear, or sites coincided. Recovered
	// locally (cell dropped, neighbors healed); Run.Mesh returns it only
	// when no cell survives.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrConvergenceFailure: an iterative fixup (depression resolution)
	// exceeded its iteration budget without converging. Recovered by
	// reverting to pre-iteration state; no stage returns it.
	ErrConvergenceFailure = errors.New("convergence failure")

	// ErrInsufficientHabitat: requested culture count exceeds habitable
	// land. Recovered by shrinking K (or emitting Wildlands); Run.Culture
	// returns it only when selection yields no entries.
	ErrInsufficientHabitat = errors.New("insufficient habitat")

	// ErrInvariantViolation: an internal invariant (neighbor symmetry,
	// river connectivity, culture-id bounds) was violated at a stage
	// boundary. Always fatal.
	ErrInvariantViolation = errors.New("invariant violation")
)
