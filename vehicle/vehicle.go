// Package vehicle forward-simulates the bicycle model used by the Hybrid
// A* core: moving the car along an arc at a fixed steering angle, and (for
// vehicles that can do so) pivoting in place on the rear axle. Deriving
// vehicle geometry (wheelbase, footprint corners, curvature bound) from a
// CAD model or a configuration service is out of scope per spec.md section
// 1; Params is plain data the caller supplies.
package vehicle

import (
	"math"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
)

// Params is the vehicle geometry the motion primitives integrate against.
type Params struct {
	Wheelbase    float64
	MaxSteer     float64 // radians
	MaxCurvature float64 // 1/meters, bounds Reeds-Shepp turn radius
	CanPivot     bool    // vehicle can rotate in place on the rear axle

	// Footprint corners in the vehicle's body frame (rear-axle origin),
	// used to bilinearly sample the Voronoi potential at each corner.
	FrontRight, FrontLeft, RearRight, RearLeft geom.Point
}

// Primitive is the result of forward-simulating one motion: the
// trailing continuous samples plus a per-sample direction.
type Primitive struct {
	XList, YList, YawList []float64
	DirList               []int
}

// NumElements returns the number of continuous samples in the primitive.
func (p Primitive) NumElements() int {
	return len(p.XList)
}

// MoveSomeSteps integrates the bicycle model from pose along an arc of
// length arcLen at the given steering angle and direction, step size
// bounded by motionRes:
//
//	yaw_{k+1} = yaw_k + dir*(ds/L)*tan(steer)
//	x_{k+1}   = x_k + dir*ds*cos(yaw_k)
//	y_{k+1}   = y_k + dir*ds*sin(yaw_k)
func (p Params) MoveSomeSteps(pose geom.Pose, arcLen, motionRes float64, dir int, steer float64) Primitive {
	nbSteps := int(math.Ceil(arcLen / motionRes))
	if nbSteps < 1 {
		nbSteps = 1
	}
	ds := arcLen / float64(nbSteps)
	tanSteer := math.Tan(steer)

	out := Primitive{
		XList:   make([]float64, 0, nbSteps),
		YList:   make([]float64, 0, nbSteps),
		YawList: make([]float64, 0, nbSteps),
		DirList: make([]int, 0, nbSteps),
	}

	x, y, yaw := pose.X, pose.Y, pose.Yaw
	fDir := float64(dir)
	for i := 0; i < nbSteps; i++ {
		x += fDir * ds * math.Cos(yaw)
		y += fDir * ds * math.Sin(yaw)
		yaw += fDir * (ds / p.Wheelbase) * tanSteer
		yaw = geom.NormalizedYaw(yaw)

		out.XList = append(out.XList, x)
		out.YList = append(out.YList, y)
		out.YawList = append(out.YawList, yaw)
		out.DirList = append(out.DirList, dir)
	}
	return out
}

// TurnOnRearAxis rotates the vehicle in place about the rear axle by
// deltaAngle (radians, signed), sweeping in steps of yawResColl and
// holding (x, y) fixed. The emitted direction is the sign of deltaAngle,
// reused by the Hybrid A* core as the node's discrete direction so that a
// pivot following a forward/reverse run still participates in the
// switch-cost bookkeeping.
func (Params) TurnOnRearAxis(pose geom.Pose, deltaAngle, yawResColl float64) Primitive {
	if deltaAngle == 0 {
		return Primitive{
			XList:   []float64{pose.X},
			YList:   []float64{pose.Y},
			YawList: []float64{pose.Yaw},
			DirList: []int{1},
		}
	}

	dir := 1
	if deltaAngle < 0 {
		dir = -1
	}

	nbSteps := int(math.Ceil(math.Abs(deltaAngle) / yawResColl))
	if nbSteps < 1 {
		nbSteps = 1
	}
	step := deltaAngle / float64(nbSteps)

	out := Primitive{
		XList:   make([]float64, 0, nbSteps),
		YList:   make([]float64, 0, nbSteps),
		YawList: make([]float64, 0, nbSteps),
		DirList: make([]int, 0, nbSteps),
	}
	yaw := pose.Yaw
	for i := 0; i < nbSteps; i++ {
		yaw = geom.NormalizedYaw(yaw + step)
		out.XList = append(out.XList, pose.X)
		out.YList = append(out.YList, pose.Y)
		out.YawList = append(out.YawList, yaw)
		out.DirList = append(out.DirList, dir)
	}
	return out
}

// CornerOffsets returns the four footprint corners in a fixed order
// (front-right, front-left, rear-right, rear-left), matching the order
// getProxOfCorners samples in the original.
func (p Params) CornerOffsets() [4]geom.Point {
	return [4]geom.Point{p.FrontRight, p.FrontLeft, p.RearRight, p.RearLeft}
}
