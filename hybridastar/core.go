// Package hybridastar implements the best-first search in (x, y, yaw)
// space: branch-and-bound over steer x direction with a dual 2D/NHWO
// heuristic, analytic Reeds-Shepp and rear-axis shortcutting, and a
// waypoint mode for partial-path requests.
package hybridastar

import (
	"container/heap"
	"math"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/astar"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/collision"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/config"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/gridtf"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/nhwo"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/planpath"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/reedsshepp"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/vehicle"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/voronoi"
)

// Core owns every piece of planner state for the lifetime of a planner
// instance: the 2D grids, the NHWO cache, and the tunables read from
// Config. One instance must not be driven by concurrent Plan calls
// (spec's single-instance-per-caller resource policy); the zero value is
// not usable, construct with New.
type Core struct {
	Cfg       *config.Config
	Grid      *astar.Grid
	Voronoi   *voronoi.Field
	NHWO      *nhwo.Cache
	Tf        *gridtf.Transform
	Vehicle   vehicle.Params
	Collision collision.Checker
	Log       *zap.SugaredLogger

	steeringInputs  []float64
	directionInputs []int

	guidanceHeuristic map[uint64]astar.NodeDisc

	closedSet map[uint64]NodeHybrid

	busy int32 // guarded by sync/atomic; nonzero while a Plan call is in flight
}

const numSteer = 7

// Initialize builds a Core. directions are the allowed discrete directions
// for ordinary grid expansion: {1} when Cfg.OnlyForward, else {1, -1}.
// Earlier revisions of the underlying algorithm put the same forward
// direction twice in this set as a workaround for an unrelated bug; that
// duplicate is dropped here since Go's loop does not need it.
func Initialize(cfg *config.Config, grid *astar.Grid, field *voronoi.Field, cache *nhwo.Cache, tf *gridtf.Transform, veh vehicle.Params, coll collision.Checker, log *zap.SugaredLogger) *Core {
	c := &Core{
		Cfg: cfg, Grid: grid, Voronoi: field, NHWO: cache, Tf: tf,
		Vehicle: veh, Collision: coll, Log: log,
	}
	c.rebuildInputs()
	return c
}

// New is an alias for Initialize, kept for callers that prefer the shorter,
// more idiomatic Go constructor name.
func New(cfg *config.Config, grid *astar.Grid, field *voronoi.Field, cache *nhwo.Cache, tf *gridtf.Transform, veh vehicle.Params, coll collision.Checker, log *zap.SugaredLogger) *Core {
	return Initialize(cfg, grid, field, cache, tf, veh, coll, log)
}

func (c *Core) rebuildInputs() {
	maxSteer := c.Vehicle.MaxSteer
	c.steeringInputs = make([]float64, numSteer)
	for i := 0; i < numSteer; i++ {
		frac := float64(i)/float64(numSteer-1)*2 - 1 // -1..1
		c.steeringInputs[i] = frac * maxSteer
	}
	if c.Cfg.OnlyForward {
		c.directionInputs = []int{1}
	} else {
		c.directionInputs = []int{1, -1}
	}
}

// Reinit rebinds Core to a newly re-centered patch: the caller has already
// reallocated Grid/Voronoi to the new dimension (see astar.Grid.Reinit,
// voronoi.Field.Reinit) and rebuilt Tf; Reinit just drops the stale
// guidance heuristic and closed set and refreshes the steer/direction
// tables in case vehicle or config tunables changed between patches.
func (c *Core) Reinit(tf *gridtf.Transform) {
	c.Tf = tf
	c.guidanceHeuristic = nil
	c.closedSet = nil
	c.rebuildInputs()
}

// calculateIndex returns the composite closed/open-set key for a discrete
// pose: yaw_idx * dim^2 + yi * dim + xi.
func (c *Core) calculateIndex(xi, yi, yawIdx int) uint64 {
	dim := uint64(c.Grid.Dim)
	return uint64(yawIdx)*dim*dim + uint64(yi)*dim + uint64(xi)
}

func (c *Core) calculateIndexNode(n NodeHybrid) uint64 {
	return c.calculateIndex(n.XIndex, n.YIndex, n.YawIndex)
}

// RecalculateEnv recomputes the guidance heuristic (the whole-region 2D
// A* expansion from the global goal) after the caller has rebuilt the
// occupancy grid and Voronoi field for a new ego-centered patch.
func (c *Core) RecalculateEnv(goal, ego NodeHybrid) {
	res := c.Grid.CalcDistanceHeuristic(
		[2]int{goal.XIndex, goal.YIndex}, [2]int{ego.XIndex, ego.YIndex},
		false, false, false, 0, 0)
	c.guidanceHeuristic = res.Closed
}

func (c *Core) distance2GlobalGoal(n NodeHybrid) float64 {
	ind := c.Grid.CalcIndex(n.XIndex, n.YIndex)
	nd, ok := c.guidanceHeuristic[ind]
	if !ok {
		return astar.OutOfHeuristic
	}
	return nd.CostDist
}

func (c *Core) distance2Goal(n NodeHybrid, dp map[uint64]astar.NodeDisc) float64 {
	ind := c.Grid.CalcIndex(n.XIndex, n.YIndex)
	nd, ok := dp[ind]
	if !ok {
		return astar.OutOfHeuristic
	}
	return nd.CostDist
}

// calcCost is f = g + max(h_2D, h_NHWO) * h_dist_cost.
func (c *Core) calcCost(n, goal NodeHybrid, dp map[uint64]astar.NodeDisc) float64 {
	ind := c.Grid.CalcIndex(n.XIndex, n.YIndex)
	nd, ok := dp[ind]
	if !ok {
		return astar.OutOfHeuristic
	}
	hDist := nd.Cost

	startDisc := geom.DiscPose{XIndex: n.XIndex, YIndex: n.YIndex, YawIndex: n.YawIndex}
	goalDisc := geom.DiscPose{XIndex: goal.XIndex, YIndex: goal.YIndex, YawIndex: goal.YawIndex}
	hNonH := c.NHWO.Query(startDisc, goalDisc, c.Cfg.PlannerRes)

	heuristic := math.Max(hDist, hNonH) * c.Cfg.HDistCost
	return heuristic + n.Cost
}

func (c *Core) getProxOfCorners(pose geom.Pose) float64 {
	corners := c.Vehicle.CornerOffsets()
	cosYaw, sinYaw := math.Cos(pose.Yaw), math.Sin(pose.Yaw)
	max := 0.0
	for i, corner := range corners {
		r := corner.Rotated(cosYaw, sinYaw)
		x := (pose.X + r.X) / c.Cfg.PlannerRes
		y := (pose.Y + r.Y) / c.Cfg.PlannerRes
		v := voronoi.BilinInterp(c.Voronoi.Potential, x, y)
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}

func (c *Core) getTurnCost(deltaAngle float64) float64 {
	deltaAngle = math.Abs(deltaAngle)
	piDiffCost := (math.Abs(math.Pi-deltaAngle) + 0.5*deltaAngle - math.Pi/2) / math.Pi
	return c.Cfg.RearAxisCost * (1 + piDiffCost)
}

func (c *Core) getPathCosts(xInd, yInd int, yaw float64, node NodeHybrid, steer float64, direction int, arcLen float64) float64 {
	controlCost := 0.0
	if direction != node.Direction {
		controlCost += c.Cfg.SwitchCost
	}
	controlCost += c.Cfg.SteerCost * math.Abs(steer)
	controlCost += c.Cfg.SteerChangeCost * math.Abs(node.Steer-steer)

	weight := c.Grid.Lane.MovementWeight(xInd, yInd)
	var distanceCost float64
	if direction == -1 {
		distanceCost = arcLen * weight * c.Cfg.BackCost
	} else {
		distanceCost = arcLen * weight
	}

	pose := geom.Pose{X: node.LastX(), Y: node.LastY(), Yaw: yaw}
	proxCost := c.getProxOfCorners(pose) * c.Cfg.AstarProxCost * arcLen

	return controlCost + distanceCost + proxCost
}

func (c *Core) mapCont2Disc(x, y, yaw float64) (int, int, int) {
	xi := c.Tf.ContToGridIndex(x)
	yi := c.Tf.ContToGridIndex(y)
	yawIdx := int(math.Round(geom.NormalizedYaw(yaw) / c.Cfg.YawStepRad()))
	return xi, yi, yawIdx
}

func (c *Core) calcNextNode(node NodeHybrid, steer float64, direction int, motionRes, arcLen float64) (NodeHybrid, bool) {
	yaw := node.LastYaw()
	pose := geom.Pose{X: node.LastX(), Y: node.LastY(), Yaw: yaw}
	prim := c.Vehicle.MoveSomeSteps(pose, arcLen, motionRes, direction, steer)

	xi, yi, yawIdx := c.mapCont2Disc(prim.XList[len(prim.XList)-1], prim.YList[len(prim.YList)-1], prim.YawList[len(prim.YawList)-1])
	if !c.Grid.InBounds(xi, yi) {
		return NodeHybrid{}, false
	}
	if !c.Collision.CheckPathCollision(prim.XList, prim.YList, prim.YawList) {
		return NodeHybrid{}, false
	}

	pathCost := c.getPathCosts(xi, yi, yaw, node, steer, direction, arcLen)
	cost := node.Cost + pathCost

	types := make([]planpath.SegmentType, prim.NumElements())
	for i := range types {
		types[i] = planpath.HAStar
	}

	return NodeHybrid{
		XIndex: xi, YIndex: yi, YawIndex: yawIdx,
		Direction: direction,
		DirList:   prim.DirList,
		XList:     prim.XList, YList: prim.YList, YawList: prim.YawList,
		Types:       types,
		Steer:       steer,
		ParentIndex: int64(c.calculateIndexNode(node)),
		Cost:        cost,
		Dist:        node.Dist + arcLen,
	}, true
}

func (c *Core) calcRearAxisNode(node NodeHybrid, deltaAngle float64) (NodeHybrid, bool) {
	state := geom.Pose{X: node.LastX(), Y: node.LastY(), Yaw: node.LastYaw()}
	prim := c.Vehicle.TurnOnRearAxis(state, deltaAngle, c.Cfg.YawResColl)

	if !c.Collision.CheckPathCollision(prim.XList, prim.YList, prim.YawList) {
		return NodeHybrid{}, false
	}

	direction := prim.DirList[0]
	xi, yi, yawIdx := c.mapCont2Disc(prim.XList[len(prim.XList)-1], prim.YList[len(prim.YList)-1], prim.YawList[len(prim.YawList)-1])

	rearAxisCost := c.getTurnCost(deltaAngle)
	movementCost := rearAxisCost + c.getPathCosts(xi, yi, state.Yaw, node, 0, direction, 1.0)
	cost := node.Cost + movementCost

	types := make([]planpath.SegmentType, prim.NumElements())
	for i := range types {
		types[i] = planpath.RearAxis
	}

	return NodeHybrid{
		XIndex: xi, YIndex: yi, YawIndex: yawIdx,
		Direction: direction,
		DirList:   prim.DirList,
		XList:     prim.XList, YList: prim.YList, YawList: prim.YawList,
		Types:       types,
		Steer:       0,
		ParentIndex: int64(c.calculateIndexNode(node)),
		Cost:        cost,
		Dist:        node.Dist,
	}, true
}

const arcLenFactor = 1.5

// setNeighbors fans the steer x direction primitives for current out
// across one goroutine per steering input (each goroutine walks its own
// direction_inputs locally), merging per-goroutine result slices after a
// WaitGroup join — the corpus's small-fixed-fan-out idiom rather than a
// generic worker pool, since steeringInputs is a small, constant-size set.
func (c *Core) setNeighbors(current NodeHybrid, motionRes float64) []NodeHybrid {
	arcLen := arcLenFactor * c.Cfg.PlannerRes

	partial := make([][]NodeHybrid, len(c.steeringInputs))
	var wg sync.WaitGroup
	for i, steer := range c.steeringInputs {
		wg.Add(1)
		go func(i int, steer float64) {
			defer wg.Done()
			local := make([]NodeHybrid, 0, len(c.directionInputs))
			for _, dir := range c.directionInputs {
				if next, ok := c.calcNextNode(current, steer, dir, motionRes, arcLen); ok {
					local = append(local, next)
				}
			}
			partial[i] = local
		}(i, steer)
	}
	wg.Wait()

	neighbors := make([]NodeHybrid, 0, len(c.steeringInputs)*len(c.directionInputs))
	for _, local := range partial {
		neighbors = append(neighbors, local...)
	}

	if c.Vehicle.CanPivot && len(c.closedSet)%c.Cfg.RAFreq == 0 {
		thetaRad := c.Cfg.TurnOnPointAngle * math.Pi / 180
		if thetaRad > 0 {
			for delta := -2*math.Pi + thetaRad; delta <= 2*math.Pi-thetaRad; delta += thetaRad {
				if delta == 0 {
					continue
				}
				if next, ok := c.calcRearAxisNode(current, delta); ok {
					neighbors = append(neighbors, next)
				}
			}
		}
	}

	return neighbors
}

func (c *Core) check4Expansions(node NodeHybrid, dp map[uint64]astar.NodeDisc) bool {
	dist2goal := c.distance2Goal(node, dp)
	dist := (c.Cfg.DistThreshAnalyticM - dist2goal) / c.Cfg.DistThreshAnalyticM
	probability := math.Max(0, dist)
	return rand.Float64() < probability
}

func (c *Core) getRSPathCosts(path *reedsshepp.Path, maxSteer float64) float64 {
	cost := 0.0
	for _, seg := range path.Segments {
		length := seg.Length * path.Radius
		if length >= 0 {
			cost += length
		} else {
			cost += math.Abs(length) * c.Cfg.BackCost
		}
	}
	for i := 0; i < len(path.Segments)-1; i++ {
		if path.Segments[i].Length*path.Segments[i+1].Length < 0 {
			cost += c.Cfg.SwitchCost
		}
	}
	uList := make([]float64, len(path.Segments))
	for i, seg := range path.Segments {
		switch seg.Letter {
		case 'R':
			uList[i] = maxSteer
			cost += c.Cfg.ExtraSteerCostAnalytic * c.Cfg.SteerCost * math.Abs(maxSteer) * math.Abs(seg.Length*path.Radius)
		case 'L':
			uList[i] = -maxSteer
			cost += c.Cfg.ExtraSteerCostAnalytic * c.Cfg.SteerCost * math.Abs(maxSteer) * math.Abs(seg.Length*path.Radius)
		}
	}
	for i := 0; i < len(uList)-1; i++ {
		cost += c.Cfg.SteerChangeCost * math.Abs(uList[i+1]-uList[i])
	}

	proxCost := 0.0
	for i := range path.XList {
		pose := geom.Pose{X: path.XList[i], Y: path.YList[i], Yaw: path.YawList[i]}
		proxCost += c.getProxOfCorners(pose) * c.Cfg.AstarProxCost * c.Cfg.InterpRes
	}
	return cost + proxCost
}

func (c *Core) getFinalNodeFromPath(current NodeHybrid, path *reedsshepp.Path, pathType planpath.SegmentType) NodeHybrid {
	types := make([]planpath.SegmentType, len(path.XList)-1)
	for i := range types {
		types[i] = pathType
	}
	return NodeHybrid{
		XIndex: current.XIndex, YIndex: current.YIndex, YawIndex: current.YawIndex,
		Direction:   current.Direction,
		DirList:     path.DirList[1:],
		XList:       path.XList[1:],
		YList:       path.YList[1:],
		YawList:     path.YawList[1:],
		Types:       types,
		Steer:       0,
		ParentIndex: int64(c.calculateIndexNode(current)),
		Cost:        current.Cost + path.TotalLength,
		Dist:        current.Dist + float64(len(types))*c.Cfg.InterpRes,
	}
}

func (c *Core) getRSExpansion(current, goal NodeHybrid) (NodeHybrid, bool) {
	start := geom.Pose{X: current.LastX(), Y: current.LastY(), Yaw: current.LastYaw()}
	goalPose := geom.Pose{X: goal.LastX(), Y: goal.LastY(), Yaw: goal.LastYaw()}

	maxSteer := c.Vehicle.MaxSteer
	rho1 := 1 / c.Vehicle.MaxCurvature
	rho2 := 1 / (c.Vehicle.MaxCurvature * c.Cfg.RS2ndSteer)

	var bestPath *reedsshepp.Path
	bestCost := -1.0

	for _, rho := range []float64{rho1, rho2} {
		path, ok := reedsshepp.Solve(start, goalPose, rho)
		if !ok {
			continue
		}
		path.Sample(start, c.Cfg.MotionResMin)
		if !c.Collision.CheckPathCollision(path.XList, path.YList, path.YawList) {
			continue
		}
		cost := c.getRSPathCosts(&path, maxSteer)
		if bestCost == -1 || cost < bestCost {
			bestCost = cost
			p := path
			bestPath = &p
		}
	}
	if bestPath == nil {
		return NodeHybrid{}, false
	}
	return c.getFinalNodeFromPath(current, bestPath, planpath.ReedsShepp), true
}

// hAstarCore is the main best-first loop: grows the open set by
// steer/direction/pivot expansion, periodically trying analytic
// shortcuts, until the goal condition fires, the open set empties, or the
// deadline passes.
func (c *Core) hAstarCore(ego, start, goal NodeHybrid, toFinalPose, doAnalytic bool) (NodeHybrid, error) {
	c.closedSet = make(map[uint64]NodeHybrid)
	openSet := make(map[uint64]NodeHybrid)
	pq := &nodeQueue{}
	heap.Init(pq)

	var dp map[uint64]astar.NodeDisc
	if config.WaypointType(c.Cfg.WaypointType) == config.WaypointHeurRed || config.WaypointType(c.Cfg.WaypointType) == config.WaypointNone {
		dp = c.guidanceHeuristic
	} else {
		res := c.Grid.CalcDistanceHeuristic(
			[2]int{goal.XIndex, goal.YIndex}, [2]int{start.XIndex, start.YIndex}, true, true, false, 0, 0)
		dp = res.Closed
	}

	startHeurCost := c.distance2GlobalGoal(ego)

	startIdx := c.calculateIndexNode(start)
	seq := 0
	push := func(idx uint64, f float64) {
		heap.Push(pq, &nodeQueueEntry{key: idx, f: f, seq: seq})
		seq++
	}
	openSet[startIdx] = start
	push(startIdx, c.calcCost(start, goal, dp))

	var lastClosedIdx uint64
	var haveLastClosed bool
	var finalNodes []NodeHybrid
	nbSinceFinal := 0

	deadline := time.Now().Add(time.Duration(c.Cfg.TimeoutMS) * time.Millisecond)

	for {
		if pq.Len() == 0 {
			if haveLastClosed {
				if n, ok := c.closedSet[lastClosedIdx]; ok {
					return n, nil
				}
			}
			return NodeHybrid{}, ErrOpenSetExhausted
		}
		if time.Now().After(deadline) {
			return NodeHybrid{}, ErrTimeout
		}

		e := heap.Pop(pq).(*nodeQueueEntry)
		cur, ok := openSet[e.key]
		if !ok {
			continue // stale, already superseded
		}
		delete(openSet, e.key)
		c.closedSet[e.key] = cur
		lastClosedIdx = e.key
		haveLastClosed = true

		if doAnalytic {
			if config.WaypointType(c.Cfg.WaypointType) == config.WaypointHeurRed && !toFinalPose {
				curHeur := c.distance2GlobalGoal(cur)
				if startHeurCost-curHeur > float64(c.Cfg.WaypointDist) {
					return cur, nil
				}
			}
			if c.check4Expansions(cur, dp) {
				if rsNode, ok := c.getRSExpansion(cur, goal); ok {
					finalNodes = append(finalNodes, rsNode)
				}
				if c.Vehicle.CanPivot {
					if raNode, ok := c.getRearAxisPath(cur, goal); ok {
						finalNodes = append(finalNodes, raNode)
					}
				}
				if len(finalNodes) > 0 {
					nbSinceFinal++
					if nbSinceFinal > c.Cfg.MaxExtraNodesHAStar {
						sort.Slice(finalNodes, func(i, j int) bool { return finalNodes[i].Cost < finalNodes[j].Cost })
						best := finalNodes[0]
						best.SetAnalytic()
						return best, nil
					}
				}
			}
		} else {
			nodeAngle := geom.ConstrainZero2Pi(cur.LastYaw())
			goalAngle := geom.ConstrainZero2Pi(goal.YawList[0])
			dx := cur.LastX() - goal.XList[0]
			dy := cur.LastY() - goal.YList[0]
			dist2 := dx*dx + dy*dy
			approxGoalDist2 := c.Cfg.ApproxGoalDist * c.Cfg.ApproxGoalDist
			if dist2 < approxGoalDist2 && geom.AnglesApproxEqual02Pi(goalAngle, nodeAngle, c.Cfg.ApproxGoalAngle) {
				return cur, nil
			}
		}

		motionRes := c.Voronoi.MotionRes.At(cur.XIndex, cur.YIndex)
		for _, nb := range c.setNeighbors(cur, motionRes) {
			idx := c.calculateIndexNode(nb)
			if _, done := c.closedSet[idx]; done {
				continue
			}
			if existing, isOpen := openSet[idx]; isOpen {
				if existing.Cost > nb.Cost {
					cost := c.calcCost(nb, goal, dp)
					openSet[idx] = nb
					push(idx, cost)
				}
				continue
			}
			cost := c.calcCost(nb, goal, dp)
			if cost == astar.OutOfHeuristic {
				continue
			}
			openSet[idx] = nb
			push(idx, cost)
		}
	}
}

// getFinalPath reverse-walks parent indices from final back to the root,
// concatenating each node's continuous trace into one path.
func (c *Core) getFinalPath(final NodeHybrid) *planpath.Path {
	xs := reversed(final.XList)
	ys := reversed(final.YList)
	yaws := reversed(final.YawList)
	dirs := reversedInt(final.DirList)
	types := reversedTypes(final.Types)

	lenAnalytic := len(xs)

	nid := final.ParentIndex
	for nid != -1 {
		node := c.closedSet[uint64(nid)]
		xs = append(xs, reversed(node.XList)...)
		ys = append(ys, reversed(node.YList)...)
		yaws = append(yaws, reversed(node.YawList)...)
		dirs = append(dirs, reversedInt(node.DirList)...)
		types = append(types, reversedTypes(node.Types)...)
		nid = node.ParentIndex
	}

	reverseFloat(xs)
	reverseFloat(ys)
	reverseFloat(yaws)
	reverseInt(dirs)
	reverseTypes(types)

	if len(dirs) > 1 {
		dirs[0] = dirs[1]
	}

	idxAnalytic := -1
	if final.IsAnalytic {
		idxAnalytic = len(xs) - lenAnalytic + 1
	}

	return &planpath.Path{
		XList: xs, YList: ys, YawList: yaws, DirList: dirs, Types: types,
		Cost: final.Cost, IdxAnalytic: idxAnalytic,
	}
}

// ErrBusy is returned by Plan when another Plan call on the same Core is
// already in flight: one Core must not be driven by concurrent callers.
var ErrBusy = errors.New("hybridastar: planner instance already in use")

// Plan runs the full search-then-unwind pipeline. Smoothing and
// interpolation are separate calls (package postprocess) so callers can
// skip them for a raw trajectory. Only one Plan call may be in flight on a
// given Core at a time; a concurrent call returns ErrBusy rather than
// racing on closedSet/guidanceHeuristic.
func (c *Core) Plan(ego, start, goal NodeHybrid, toFinalPose, doAnalytic bool) (*planpath.Path, error) {
	if !atomic.CompareAndSwapInt32(&c.busy, 0, 1) {
		return nil, ErrBusy
	}
	defer atomic.StoreInt32(&c.busy, 0)

	final, err := c.hAstarCore(ego, start, goal, toFinalPose, doAnalytic)
	if err != nil {
		return nil, err
	}
	return c.getFinalPath(final), nil
}

// HybridAStarPlanning is an alias for Plan, named after the public entry
// point this pipeline is known by.
func (c *Core) HybridAStarPlanning(ego, start, goal NodeHybrid, toFinalPose, doAnalytic bool) (*planpath.Path, error) {
	return c.Plan(ego, start, goal, toFinalPose, doAnalytic)
}

func reversed(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[len(xs)-1-i] = v
	}
	return out
}
func reversedInt(xs []int) []int {
	out := make([]int, len(xs))
	for i, v := range xs {
		out[len(xs)-1-i] = v
	}
	return out
}
func reversedTypes(xs []planpath.SegmentType) []planpath.SegmentType {
	out := make([]planpath.SegmentType, len(xs))
	for i, v := range xs {
		out[len(xs)-1-i] = v
	}
	return out
}
func reverseFloat(xs []float64) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
func reverseInt(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
func reverseTypes(xs []planpath.SegmentType) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
