package hybridastar

import (
	"math"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/planpath"
)

// det is the 2x2 determinant a*d - b*c.
func det(a, b, c, d float64) float64 {
	return a*d - b*c
}

// lineIntersection returns the intersection of the infinite lines through
// (p1,p2) and (p3,p4). ok is false when the lines are parallel.
func lineIntersection(p1, p2, p3, p4 geom.Point) (geom.Point, bool) {
	denom := det(p1.X-p2.X, p1.Y-p2.Y, p3.X-p4.X, p3.Y-p4.Y)
	if math.Abs(denom) < 1e-6 {
		return geom.Point{}, false
	}
	a := det(p1.X, p1.Y, p2.X, p2.Y)
	b := det(p3.X, p3.Y, p4.X, p4.Y)
	return geom.Point{
		X: det(a, p1.X-p2.X, b, p3.X-p4.X) / denom,
		Y: det(a, p1.Y-p2.Y, b, p3.Y-p4.Y) / denom,
	}, true
}

// buildStraight walks a straight run of signedDist meters from pose, yaw
// held fixed, stepping by motionRes. A negative signedDist drives in
// reverse (direction -1) without flipping yaw.
func buildStraight(pose geom.Pose, signedDist, motionRes float64) (xs, ys, yaws []float64, dirs []int) {
	dir := 1
	if signedDist < 0 {
		dir = -1
	}
	length := math.Abs(signedDist)
	nbSteps := int(math.Ceil(length / motionRes))
	if nbSteps < 1 {
		nbSteps = 1
	}
	ds := length / float64(nbSteps)
	fDir := float64(dir)
	x, y := pose.X, pose.Y
	for i := 0; i < nbSteps; i++ {
		x += fDir * ds * math.Cos(pose.Yaw)
		y += fDir * ds * math.Sin(pose.Yaw)
		xs = append(xs, x)
		ys = append(ys, y)
		yaws = append(yaws, pose.Yaw)
		dirs = append(dirs, dir)
	}
	return xs, ys, yaws, dirs
}

// getRearAxisPath tries the line-intersection pivot shortcut used by
// vehicles that can turn in place: extend the current heading forward and
// the goal's approach line backward, and where they cross, run straight to
// the crossing, pivot to the goal's heading, then run straight into the
// goal. Returns false when the two lines are parallel, when the crossing
// falls on the vehicle's own pose, or when the resulting path collides.
func (c *Core) getRearAxisPath(current, goal NodeHybrid) (NodeHybrid, bool) {
	start := geom.Pose{X: current.LastX(), Y: current.LastY(), Yaw: current.LastYaw()}
	end := geom.Pose{X: goal.LastX(), Y: goal.LastY(), Yaw: goal.LastYaw()}

	horizon := c.Cfg.TurnOnPointHorizon
	p1 := start.Point()
	p2 := geom.Point{X: start.X + horizon*math.Cos(start.Yaw), Y: start.Y + horizon*math.Sin(start.Yaw)}
	p3 := end.Point()
	p4 := geom.Point{X: end.X - horizon*math.Cos(end.Yaw), Y: end.Y - horizon*math.Sin(end.Yaw)}

	mid, ok := lineIntersection(p1, p2, p3, p4)
	if !ok {
		return NodeHybrid{}, false
	}

	toMid := mid.Sub(start.Point())
	dist1 := toMid.X*math.Cos(start.Yaw) + toMid.Y*math.Sin(start.Yaw)
	if math.Abs(dist1) < 1e-6 {
		return NodeHybrid{}, false
	}

	midPose := geom.Pose{X: mid.X, Y: mid.Y, Yaw: start.Yaw}
	x1, y1, yaw1, dir1 := buildStraight(start, dist1, c.Cfg.MotionResMin)

	deltaAngle := geom.SignedAngleDiff(end.Yaw, start.Yaw)
	pivot := c.Vehicle.TurnOnRearAxis(midPose, deltaAngle, c.Cfg.YawResColl)
	pivotDir := 1
	if len(pivot.DirList) > 0 {
		pivotDir = pivot.DirList[0]
	}

	toGoal := end.Point().Sub(mid)
	dist2 := toGoal.X*math.Cos(end.Yaw) + toGoal.Y*math.Sin(end.Yaw)
	x2, y2, yaw2, dir2 := buildStraight(geom.Pose{X: mid.X, Y: mid.Y, Yaw: end.Yaw}, dist2, c.Cfg.MotionResMin)

	allX := append(append(append([]float64{}, x1...), pivot.XList...), x2...)
	allY := append(append(append([]float64{}, y1...), pivot.YList...), y2...)
	allYaw := append(append(append([]float64{}, yaw1...), pivot.YawList...), yaw2...)
	allDir := append(append(append([]int{}, dir1...), pivot.DirList...), dir2...)

	if len(allX) == 0 {
		return NodeHybrid{}, false
	}
	if !c.Collision.CheckPathCollision(allX, allY, allYaw) {
		return NodeHybrid{}, false
	}

	cost := 0.0
	d1 := -1
	if len(dir1) > 0 {
		d1 = dir1[0]
	}
	if d1 != current.Direction {
		cost += c.Cfg.SwitchCost
	}
	leg1Cost := math.Abs(dist1)
	if d1 == -1 {
		leg1Cost *= c.Cfg.BackCost
	}
	cost += leg1Cost

	if pivotDir != d1 {
		cost += c.Cfg.SwitchCost
	}
	cost += c.getTurnCost(deltaAngle)

	d2 := 1
	if len(dir2) > 0 {
		d2 = dir2[0]
	}
	if d2 != pivotDir {
		cost += c.Cfg.SwitchCost
	}
	leg2Cost := math.Abs(dist2)
	if d2 == -1 {
		leg2Cost *= c.Cfg.BackCost
	}
	cost += leg2Cost

	proxCost := 0.0
	for i := range allX {
		pose := geom.Pose{X: allX[i], Y: allY[i], Yaw: allYaw[i]}
		proxCost += c.getProxOfCorners(pose) * c.Cfg.AstarProxCost * c.Cfg.InterpRes
	}
	cost += proxCost

	xi, yi, yawIdx := c.mapCont2Disc(allX[len(allX)-1], allY[len(allY)-1], allYaw[len(allYaw)-1])

	types := make([]planpath.SegmentType, len(allX))
	for i := range types {
		types[i] = planpath.RearAxis
	}

	return NodeHybrid{
		XIndex: xi, YIndex: yi, YawIndex: yawIdx,
		Direction:   d2,
		DirList:     allDir,
		XList:       allX,
		YList:       allY,
		YawList:     allYaw,
		Types:       types,
		Steer:       0,
		ParentIndex: int64(c.calculateIndexNode(current)),
		Cost:        current.Cost + cost,
		Dist:        current.Dist + math.Abs(dist1) + math.Abs(dist2),
	}, true
}
