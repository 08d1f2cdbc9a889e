// Package geom holds the small value types shared by every planner
// component: continuous poses/points, discrete grid poses, and angle
// helpers built on golang/geo's s1.Angle so that yaw wrapping is handled
// by a well-tested library rather than hand-rolled modulo arithmetic.
package geom

import (
	"math"

	"github.com/golang/geo/s1"
)

// Point is a continuous 2D point in meters.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rotated returns p rotated by angle around the origin, using precomputed
// sin/cos (callers rotating many points at one angle should precompute
// once, mirroring the corner-rotation hot path in the Hybrid A* edge cost).
func (p Point) Rotated(cosA, sinA float64) Point {
	return Point{
		X: p.X*cosA - p.Y*sinA,
		Y: p.X*sinA + p.Y*cosA,
	}
}

// Pose is a continuous (x, y, yaw) state in meters/radians.
type Pose struct {
	X, Y, Yaw float64
}

// Point returns the (x, y) projection of the pose.
func (p Pose) Point() Point {
	return Point{p.X, p.Y}
}

// NormalizedYaw wraps p.Yaw into (-pi, pi].
func NormalizedYaw(yaw float64) float64 {
	return s1.Angle(yaw).Normalized().Radians()
}

// DiscPose is a discretized (xi, yi, yawIndex) state on the planner grid.
type DiscPose struct {
	XIndex, YIndex int
	YawIndex       int
}

// DiscPoint is a discrete grid cell.
type DiscPoint struct {
	X, Y int
}

// SignedAngleDiff returns the signed difference angle1 - angle2, wrapped
// into (-pi, pi].
func SignedAngleDiff(angle1, angle2 float64) float64 {
	return s1.Angle(angle1 - angle2).Normalized().Radians()
}

// AngleDiff returns the absolute angular difference between two angles,
// independent of direction, in [0, pi].
func AngleDiff(angle1, angle2 float64) float64 {
	return math.Abs(SignedAngleDiff(angle1, angle2))
}

// ConstrainZero2Pi wraps angle into [0, 2*pi).
func ConstrainZero2Pi(angle float64) float64 {
	const twoPi = 2 * math.Pi
	a := math.Mod(angle, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// AnglesApproxEqual02Pi reports whether angle1 and angle2 are within tol of
// each other when compared on the [0, 2*pi) circle, taking the shorter of
// the two directed differences (matches the original's
// anglesApproxEqual02Pi, which compares both wrap directions).
func AnglesApproxEqual02Pi(angle1, angle2, tol float64) bool {
	d1 := math.Abs(ConstrainZero2Pi(angle1 - angle2))
	d2 := math.Abs(ConstrainZero2Pi(angle2 - angle1))
	diff := d1
	if d2 < d1 {
		diff = d2
	}
	return diff < tol
}
