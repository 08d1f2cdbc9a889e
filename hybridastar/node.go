package hybridastar

import "github.com/Forrest-Z/guided-extended-hybrid-astar/planpath"

// NodeHybrid is a single expansion of the Hybrid A* search: a discrete
// (xi, yi, yaw_i) cell reached by one motion primitive, carrying the
// continuous trace of that primitive so the final path can be
// reconstructed without re-simulating anything.
type NodeHybrid struct {
	XIndex, YIndex, YawIndex int
	Direction                int // discrete direction of the primitive that reached this node

	DirList []int
	XList   []float64
	YList   []float64
	YawList []float64
	Types   []planpath.SegmentType

	Steer float64

	// ParentIndex is the composite index (see calculateIndex) of the
	// node this one was expanded from, or -1 for the root.
	ParentIndex int64

	Cost       float64
	Dist       float64 // cumulative arc length
	IsAnalytic bool
}

// LastPose returns the node's continuous (x, y, yaw): the invariant is
// that it always matches the last element of XList/YList/YawList.
func (n NodeHybrid) LastX() float64   { return n.XList[len(n.XList)-1] }
func (n NodeHybrid) LastY() float64   { return n.YList[len(n.YList)-1] }
func (n NodeHybrid) LastYaw() float64 { return n.YawList[len(n.YawList)-1] }

// SetAnalytic marks this node's incoming primitive as an analytic
// (Reeds-Shepp or rear-axis) expansion rather than a grid-search step.
func (n *NodeHybrid) SetAnalytic() { n.IsAnalytic = true }
