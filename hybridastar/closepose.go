package hybridastar

import (
	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
)

// GetValidClosePose looks for a collision-free pose near goalPose when the
// goal cell itself is blocked or otherwise unreachable: it runs the 2D
// distance heuristic with getOnlyNear set, then searches a small
// (dxi, dyi, dYawIdx) neighborhood around each near-goal cell for the
// lowest-cost free pose, scoring by squared distance, heading mismatch, and
// Voronoi proximity.
func (c *Core) GetValidClosePose(egoPose, goalPose geom.Pose) (*geom.Pose, error) {
	goalXi, goalYi, goalYawIdx := c.mapCont2Disc(goalPose.X, goalPose.Y, goalPose.Yaw)
	egoXi, egoYi, _ := c.mapCont2Disc(egoPose.X, egoPose.Y, egoPose.Yaw)

	const nearRadius = 5.0
	const nearN = 20
	res := c.Grid.CalcDistanceHeuristic(
		[2]int{goalXi, goalYi}, [2]int{egoXi, egoYi}, false, false, true, nearRadius, nearN)

	if len(res.NodesNearGoal) == 0 {
		return nil, ErrNoValidClosePose
	}

	nearSet := make(map[[2]int]bool, len(res.NodesNearGoal))
	for _, n := range res.NodesNearGoal {
		nearSet[[2]int{n.X, n.Y}] = true
	}

	yawRes := c.Cfg.YawStepRad()

	const searchRadius = 3
	bestCost := -1.0
	var best *geom.Pose

	for _, n := range res.NodesNearGoal {
		for dxi := -searchRadius; dxi <= searchRadius; dxi++ {
			for dyi := -searchRadius; dyi <= searchRadius; dyi++ {
				xi, yi := n.X+dxi, n.Y+dyi
				if !nearSet[[2]int{xi, yi}] {
					continue
				}
				for dYawIdx := -c.Cfg.YawDim() / 4; dYawIdx <= c.Cfg.YawDim()/4; dYawIdx++ {
					yawIdx := goalYawIdx + dYawIdx
					yaw := geom.NormalizedYaw(float64(yawIdx) * yawRes)

					x := c.Tf.GridToCont(xi)
					y := c.Tf.GridToCont(yi)

					dx := x - goalPose.X
					dy := y - goalPose.Y
					dist2 := dx*dx + dy*dy
					phiDiff := geom.AngleDiff(yaw, goalPose.Yaw)

					pose := geom.Pose{X: x, Y: y, Yaw: yaw}
					prox := c.getProxOfCorners(pose)

					cost := dist2 + phiDiff*0.1 + prox*5.0
					if bestCost != -1 && cost >= bestCost {
						continue
					}
					if !c.Collision.CheckPose(x, y, yaw) {
						continue
					}
					bestCost = cost
					p := pose
					best = &p
				}
			}
		}
	}

	if best == nil {
		return nil, ErrNoValidClosePose
	}
	return best, nil
}
