// Package postprocess turns a raw hybridastar.Path into a drivable
// trajectory: splitting on cusps and generator changes, resampling each
// run to a uniform spacing, and optionally smoothing the result by
// gradient descent. Grounded on the original's interpolatePath /
// interpolatePathSegment / exact_dist_interpolation pipeline.
package postprocess

import "github.com/Forrest-Z/guided-extended-hybrid-astar/planpath"

// Segment is one maximal run of a path with a constant generator
// (planpath.SegmentType) and a constant drive direction: a cusp (direction
// reversal) or a generator change always starts a new segment, since
// interpolating across either would blend unrelated curve math.
type Segment struct {
	Type    planpath.SegmentType
	Dir     int
	XList   []float64
	YList   []float64
	YawList []float64
}

// Split breaks p into segments at every direction reversal or
// segment-type change.
func Split(p *planpath.Path) []Segment {
	n := p.Len()
	if n == 0 {
		return nil
	}
	var segs []Segment
	start := 0
	for i := 1; i <= n; i++ {
		boundary := i == n || p.Types[i] != p.Types[start] || p.DirList[i] != p.DirList[start]
		if boundary {
			segs = append(segs, Segment{
				Type:    p.Types[start],
				Dir:     p.DirList[start],
				XList:   append([]float64(nil), p.XList[start:i]...),
				YList:   append([]float64(nil), p.YList[start:i]...),
				YawList: append([]float64(nil), p.YawList[start:i]...),
			})
			start = i
		}
	}
	return segs
}
