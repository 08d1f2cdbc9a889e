package hybridastar

import "github.com/pkg/errors"

// Sentinel errors of this package. Rejected primitives (out of grid,
// collision, out of heuristic) have no error value: calcNextNode and
// calcRearAxisNode return (NodeHybrid{}, false) for them, and hAstarCore
// drops out-of-heuristic neighbors, since a rejected primitive is routine
// and not worth an allocation. hAstarCore returns ErrTimeout and
// ErrOpenSetExhausted, GetValidClosePose returns ErrNoValidClosePose, and
// no function in this package currently returns ErrDegenerate.
var (
	ErrTimeout          = errors.New("hybridastar: search exceeded its deadline")
	ErrOpenSetExhausted = errors.New("hybridastar: open set exhausted without reaching the goal")
	ErrNoValidClosePose = errors.New("hybridastar: no collision-free pose found near the goal")
	ErrDegenerate       = errors.New("hybridastar: degenerate path segment")
)
