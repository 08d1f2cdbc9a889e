// Package gridtf converts between the continuous world/local frame and the
// coarse planner grid (PlannerRes) the Hybrid A* search and the reference
// collision checker run on. The fine occupancy-grid resolution (GmRes) is
// stored alongside it, but no conversion here uses it. Out of scope per
// the spec is true UTM<->local transform management; this package only
// handles the
// local-patch <-> grid-index conversions every other component needs.
package gridtf

import (
	"math"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
)

// Transform holds the resolutions and patch origin needed to convert
// between continuous local coordinates (meters, origin at the patch's
// bottom-left corner) and planner-grid indices.
type Transform struct {
	GmRes      float64 // fine occupancy-grid resolution, meters/cell
	PlannerRes float64 // coarse Hybrid A* grid resolution, meters/cell
	OriginUTM  geom.Point

	// Cont2Star is 1/PlannerRes: multiply a continuous coordinate by this
	// to get a planner-grid index (before flooring). Named to mirror the
	// original's grid_tf::con2star_.
	Cont2Star float64
}

// New builds a Transform for the given resolutions and patch origin.
func New(gmRes, plannerRes float64, originUTM geom.Point) *Transform {
	return &Transform{
		GmRes:      gmRes,
		PlannerRes: plannerRes,
		OriginUTM:  originUTM,
		Cont2Star:  1 / plannerRes,
	}
}

// Update rebinds the transform to a new origin/resolution pair, used by
// Reinit when the patch re-centers.
func (t *Transform) Update(gmRes, plannerRes float64, originUTM geom.Point) {
	t.GmRes = gmRes
	t.PlannerRes = plannerRes
	t.OriginUTM = originUTM
	t.Cont2Star = 1 / plannerRes
}

// ContToGridIndex floors a continuous local coordinate to a planner-grid
// index.
func (t *Transform) ContToGridIndex(v float64) int {
	return int(math.Floor(v * t.Cont2Star))
}

// ContToGridIndexRound rounds (rather than floors) a continuous coordinate
// to a planner-grid index, used for yaw-index style conversions where
// rounding to nearest is correct.
func (t *Transform) ContToGridIndexRound(v float64) int {
	return int(math.Round(v * t.Cont2Star))
}

// GridToCont converts a planner-grid index back to a continuous
// coordinate at the cell center.
func (t *Transform) GridToCont(idx int) float64 {
	return (float64(idx) + 0.5) * t.PlannerRes
}

// PoseToDisc converts a continuous pose to a discrete pose given a yaw
// resolution in radians and its inverse (passed in rather than recomputed
// since callers hold it already).
func (t *Transform) PoseToDisc(p geom.Pose, yawResInv float64) geom.DiscPose {
	return geom.DiscPose{
		XIndex:   t.ContToGridIndex(p.X),
		YIndex:   t.ContToGridIndex(p.Y),
		YawIndex: int(math.Round(geom.NormalizedYaw(p.Yaw) * yawResInv)),
	}
}
