// Package lanegraph supplies per-cell movement weights to the 2D A*
// heuristic and the Hybrid A* edge cost. Real lane-graph ingestion
// (reading a road network, projecting it onto the planner grid) is out of
// scope per spec.md section 1; this package only defines the contract the
// rest of the planner consumes plus a trivial uniform implementation so
// the planner is runnable without a lane graph.
package lanegraph

// Graph supplies a movement-cost multiplier for a planner-grid cell.
// Lane cells are expected to report a weight below 1 (spec.md: "lanes
// weighted down, free space = 1").
type Graph interface {
	MovementWeight(xIndex, yIndex int) float64
}

// Uniform is a Graph with no lane bias: every cell costs 1.
type Uniform struct{}

// MovementWeight always returns 1.
func (Uniform) MovementWeight(int, int) float64 { return 1 }

// Edge is a single weighted lane-graph edge, projected onto planner-grid
// cells it covers. A richer Graph implementation (outside this module's
// scope) would build one of these per road segment and rasterize it onto
// the grid via SetEdges.
type Edge struct {
	Cells  []struct{ X, Y int }
	Weight float64
}

// Sparse is a Graph backed by an explicit per-cell override map, falling
// back to weight 1 for cells with no lane coverage. SetEdges replaces the
// current overrides, mirroring AStar::setMovementMap/resetMovementMap.
type Sparse struct {
	weights map[[2]int]float64
}

// NewSparse returns an empty Sparse graph (equivalent to Uniform until
// SetEdges is called).
func NewSparse() *Sparse {
	return &Sparse{weights: make(map[[2]int]float64)}
}

// MovementWeight returns the edge weight covering (x, y), or 1 if none.
func (s *Sparse) MovementWeight(x, y int) float64 {
	if s == nil || s.weights == nil {
		return 1
	}
	if w, ok := s.weights[[2]int{x, y}]; ok {
		return w
	}
	return 1
}

// SetEdges rasterizes edges onto the weight map, replacing any prior
// contents (spec.md's resetMovementMap followed by setMovementMap).
func (s *Sparse) SetEdges(edges []Edge) {
	s.weights = make(map[[2]int]float64)
	for _, e := range edges {
		for _, c := range e.Cells {
			s.weights[[2]int{c.X, c.Y}] = e.Weight
		}
	}
}

// Reset clears all lane overrides back to uniform weight.
func (s *Sparse) Reset() {
	s.weights = make(map[[2]int]float64)
}
