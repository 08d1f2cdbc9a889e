// Package collision defines the collision-checking contract the Hybrid
// A* core and the analytic expansion rely on, plus a reference
// implementation. The real collision checker (footprint sweep against a
// CUDA max-pool-dilated grid) is out of scope per spec.md section 1; the
// GridChecker here is a plain point-sampled occupancy check so the planner
// is runnable and testable without that collaborator.
package collision

import (
	"github.com/Forrest-Z/guided-extended-hybrid-astar/gridmap"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/gridtf"
)

// Checker is the external collaborator contract: collision tests against
// whatever inflated occupancy representation the caller maintains.
type Checker interface {
	// CheckPose reports whether a single pose is collision-free.
	CheckPose(x, y, yaw float64) bool
	// CheckPathCollision reports whether every sample of a polyline is
	// collision-free.
	CheckPathCollision(xs, ys, yaws []float64) bool
}

// GridChecker is a reference Checker backed by an inflated occupancy
// grid: a cell is free iff it is zero. Inflation (growing obstacles by
// the vehicle radius) is the caller's responsibility, typically done once
// when the occupancy grid is built.
type GridChecker struct {
	grid *gridmap.Dense[uint8]
	tf   *gridtf.Transform
}

// NewGridChecker wraps an inflated occupancy grid for collision checks.
func NewGridChecker(grid *gridmap.Dense[uint8], tf *gridtf.Transform) *GridChecker {
	return &GridChecker{grid: grid, tf: tf}
}

// CheckPose reports whether (x, y) falls on a free grid cell; out-of-grid
// poses are treated as collisions.
func (c *GridChecker) CheckPose(x, y, _ float64) bool {
	xi := c.tf.ContToGridIndex(x)
	yi := c.tf.ContToGridIndex(y)
	if !c.grid.InBounds(xi, yi) {
		return false
	}
	return c.grid.At(xi, yi) == 0
}

// CheckPathCollision reports whether every sample along the polyline is
// collision-free.
func (c *GridChecker) CheckPathCollision(xs, ys, yaws []float64) bool {
	for i := range xs {
		yaw := 0.0
		if i < len(yaws) {
			yaw = yaws[i]
		}
		if !c.CheckPose(xs[i], ys[i], yaw) {
			return false
		}
	}
	return true
}

// AlwaysFree is a Checker that never reports a collision, useful for unit
// tests of components that only need the contract satisfied.
type AlwaysFree struct{}

// CheckPose always returns true.
func (AlwaysFree) CheckPose(float64, float64, float64) bool { return true }

// CheckPathCollision always returns true.
func (AlwaysFree) CheckPathCollision([]float64, []float64, []float64) bool { return true }
