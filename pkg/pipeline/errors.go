package pipeline

import (
	"errors"

	"github.com/worldforge/atlas/pkg/worldmodel"
)

// ExitCode maps a stage error to a process exit code: 0 success, 1
// user input error, 2 missing
// required attribute, 3 internal invariant violation. Degenerate
// geometry, convergence failure, and insufficient habitat are normally
// recovered inline by the stage that hits them; reaching
// ExitCode at all means recovery did not happen, so they count as
// invariant violations here.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, worldmodel.ErrMissingInput):
		return 2
	case errors.Is(err, worldmodel.ErrInvariantViolation),
		errors.Is(err, worldmodel.ErrDegenerateGeometry),
		errors.Is(err, worldmodel.ErrConvergenceFailure),
		errors.Is(err, worldmodel.ErrInsufficientHabitat):
		return 3
	case errors.Is(err, ErrCancelled):
		return 1
	default:
		return 1
	}
}
