// Package astar implements the 2D grid A* distance heuristic: shortest
// path cost on the planner grid from the goal outward, over 8-connected
// motions weighted by the lane graph's per-cell movement weight, with an
// optional Voronoi proximity bias. MovementCostMap, MovementCost and
// LaneMovementCost are stored on Grid but not read by the expansion. It
// also supplies the "closest valid pose" helper's near-goal cell
// collection.
package astar

import (
	"container/heap"
	"math"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/gridmap"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/lanegraph"
)

// OutOfHeuristic is the sentinel cost for a node the 2D search never
// reached (spec.md's OUT_OF_HEURISTIC = infinity).
const OutOfHeuristic = math.MaxFloat64

// NodeDisc is a single expanded 2D-grid cell.
type NodeDisc struct {
	X, Y        int
	Cost        float64 // biased cost (obstacle proximity + unknown-cell penalty included)
	CostDist    float64 // pure Euclidean-distance cost, used by NHWO comparisons
	ParentIndex int64
}

// motion is one of the 8 grid-connected steps, with its Euclidean length.
type motion struct {
	dx, dy int
	dist   float64
}

var motions = []motion{
	{1, 0, 1}, {0, 1, 1}, {-1, 0, 1}, {0, -1, 1},
	{-1, -1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {1, -1, math.Sqrt2}, {1, 1, math.Sqrt2},
}

// Grid owns the dense 2D layers the Hybrid A* core and the Voronoi field
// read and write, plus the cost weights used while expanding.
type Grid struct {
	Dim int

	AstarGrid       *gridmap.Dense[uint8]  // 0 = free, nonzero = occupied/unknown
	MovementCostMap *gridmap.Dense[float64]
	HProxArr        *gridmap.Dense[float64] // Voronoi potential, written by package voronoi

	Lane lanegraph.Graph

	MovementCost     float64 // astar_movement_cost
	ProxCost         float64 // astar_prox_cost
	LaneMovementCost float64 // astar_lane_movement_cost
	UnknownCostW     float64
}

// NewGrid allocates a Dim x Dim grid with a uniform lane graph and default
// movement-cost map of 1 everywhere.
func NewGrid(dim int, lane lanegraph.Graph) *Grid {
	g := &Grid{
		Dim:             dim,
		AstarGrid:       gridmap.NewDense[uint8](dim),
		MovementCostMap: gridmap.NewDense[float64](dim),
		HProxArr:        gridmap.NewDense[float64](dim),
		Lane:            lane,
	}
	g.MovementCostMap.Fill(1)
	return g
}

// Reinit reallocates the grid's layers to a new dimension, matching the
// spec's "reset on patch re-origin" ownership rule.
func (g *Grid) Reinit(dim int) {
	g.Dim = dim
	g.AstarGrid.Reset(dim)
	g.MovementCostMap.Reset(dim)
	g.MovementCostMap.Fill(1)
	g.HProxArr.Reset(dim)
}

// CalcIndex returns the flattened key for a grid cell, used as the
// closed-set map key.
func (g *Grid) CalcIndex(x, y int) uint64 {
	return uint64(y)*uint64(g.Dim) + uint64(x)
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Dim && y >= 0 && y < g.Dim
}

// InBounds reports whether (x, y) falls inside the grid's dimension, with
// no regard to occupancy. Used by the Hybrid A* core to reject a
// primitive whose endpoint left the planner patch entirely.
func (g *Grid) InBounds(x, y int) bool {
	return g.inBounds(x, y)
}

func (g *Grid) verifyNode(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.AstarGrid.At(x, y) == 0
}

// queueEntry is a priority-queue item; stale entries (superseded by a
// cheaper relaxation of the same cell) are skipped lazily on pop.
type queueEntry struct {
	key    uint64
	f      float64
	seq    int
	index  int
}

type priorityQueue []*queueEntry

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	// FIFO tie-break on insertion order.
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index, pq[j].index = i, j
}
func (pq *priorityQueue) Push(x interface{}) {
	e := x.(*queueEntry)
	e.index = len(*pq)
	*pq = append(*pq, e)
}
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*pq = old[:n-1]
	return e
}

// DistanceHeuristic is the result of one calcDistanceHeuristic expansion:
// the closed set keyed by CalcIndex, and (when requested) the lowest-cost
// cells found within a radius of the goal.
type DistanceHeuristic struct {
	Closed       map[uint64]NodeDisc
	NodesNearGoal []NodeDisc // populated only when getOnlyNear is set
}

// CalcDistanceHeuristic expands an 8-connected Dijkstra/A*-style search
// from goalPos outward.
//
//   - forPath with earlyExit: stop as soon as startPos is settled (the
//     per-plan mode).
//   - !forPath: explore the whole reachable region (global guidance).
//   - getOnlyNear: additionally collect up to nearN lowest-cost cells
//     within nearRadius of goalPos, for the closest-valid-pose utility.
func (g *Grid) CalcDistanceHeuristic(
	goalPos, startPos [2]int,
	forPath, earlyExit, getOnlyNear bool,
	nearRadius float64, nearN int,
) DistanceHeuristic {
	closed := make(map[uint64]NodeDisc)
	open := make(map[uint64]*queueEntry)
	pq := &priorityQueue{}
	heap.Init(pq)

	seq := 0
	push := func(x, y int, cost, costDist float64, parent int64) {
		key := g.CalcIndex(x, y)
		e := &queueEntry{key: key, f: cost, seq: seq}
		seq++
		heap.Push(pq, e)
		open[key] = e
		closed[key] = NodeDisc{X: x, Y: y, Cost: cost, CostDist: costDist, ParentIndex: parent}
	}

	goalKey := g.CalcIndex(goalPos[0], goalPos[1])
	_ = goalKey
	push(goalPos[0], goalPos[1], 0, 0, -1)

	startKey := g.CalcIndex(startPos[0], startPos[1])

	var nearHeap []NodeDisc

	for pq.Len() > 0 {
		e := heap.Pop(pq).(*queueEntry)
		if cur, ok := open[e.key]; !ok || cur != e {
			continue // stale entry
		}
		delete(open, e.key)

		node := closed[e.key]

		if getOnlyNear {
			d := math.Hypot(float64(node.X-goalPos[0]), float64(node.Y-goalPos[1]))
			if d <= nearRadius {
				nearHeap = append(nearHeap, node)
			}
		}

		if forPath && earlyExit && e.key == startKey {
			break
		}

		for _, m := range motions {
			nx, ny := node.X+m.dx, node.Y+m.dy
			if !g.verifyNode(nx, ny) {
				continue
			}
			nkey := g.CalcIndex(nx, ny)
			if _, done := closed[nkey]; done {
				if _, stillOpen := open[nkey]; !stillOpen {
					continue // already fully closed
				}
			}

			weight := g.Lane.MovementWeight(nx, ny)
			stepCost := m.dist * weight
			newCostDist := node.CostDist + m.dist

			prox := g.HProxArr.At(nx, ny)
			unknownPenalty := 0.0
			if g.AstarGrid.At(nx, ny) == 2 {
				unknownPenalty = g.UnknownCostW
			}
			biasedStep := stepCost + m.dist*(g.ProxCost*prox+unknownPenalty)
			newCost := node.Cost + biasedStep

			if existing, ok := closed[nkey]; ok {
				if newCost >= existing.Cost {
					continue
				}
			}
			parent := int64(e.key)
			push(nx, ny, newCost, newCostDist, parent)
		}
	}

	if getOnlyNear && len(nearHeap) > 0 {
		// Selection of the nearN lowest-cost cells; nearHeap is small in
		// practice (a local radius around the goal) so a simple sort is
		// clearer than a bounded heap here.
		sortNodesByCost(nearHeap)
		if len(nearHeap) > nearN {
			nearHeap = nearHeap[:nearN]
		}
	}

	return DistanceHeuristic{Closed: closed, NodesNearGoal: nearHeap}
}

func sortNodesByCost(nodes []NodeDisc) {
	// Insertion sort: nearHeap is bounded by a small search radius, so
	// this stays well within the size where it out-performs a generic
	// sort.Slice's overhead.
	for i := 1; i < len(nodes); i++ {
		v := nodes[i]
		j := i - 1
		for j >= 0 && nodes[j].Cost > v.Cost {
			nodes[j+1] = nodes[j]
			j--
		}
		nodes[j+1] = v
	}
}
