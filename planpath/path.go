// Package planpath defines the Path type shared between the Hybrid A*
// core (which produces it) and the post-processing pipeline (which
// smooths and re-interpolates it), kept separate from both so that
// neither package needs to import the other.
package planpath

// SegmentType tags which generator produced a path sample.
type SegmentType int

const (
	Unknown SegmentType = iota
	HAStar
	ReedsShepp
	RearAxis
)

// Path is the planner's output: parallel arrays of pose samples plus
// bookkeeping about cost and where the analytic tail begins.
type Path struct {
	XList, YList, YawList []float64
	DirList               []int
	Types                 []SegmentType

	Cost float64

	// IdxAnalytic marks where the analytic (Reeds-Shepp/rear-axis) tail
	// begins, -1 if the whole path came from grid expansion.
	IdxAnalytic int
}

// Len returns the number of samples in the path.
func (p *Path) Len() int { return len(p.XList) }

// Clone returns a deep copy, used by post-processing stages that need to
// both read the original and build a replacement.
func (p *Path) Clone() *Path {
	c := &Path{
		XList:       append([]float64(nil), p.XList...),
		YList:       append([]float64(nil), p.YList...),
		YawList:     append([]float64(nil), p.YawList...),
		DirList:     append([]int(nil), p.DirList...),
		Types:       append([]SegmentType(nil), p.Types...),
		Cost:        p.Cost,
		IdxAnalytic: p.IdxAnalytic,
	}
	return c
}
