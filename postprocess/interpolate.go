package postprocess

import (
	"math"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/planpath"
)

// Interpolate resamples p to a uniform interpRes spacing: rear-axis
// segments pass through untouched (a pivot has no meaningful arc length to
// resample), every other segment is walked by exactDistInterpolation, and
// the stitched result gets a final pass flattening any yaw jump bigger
// than 10 degrees, matching the original's interpolatePath post-filter.
func Interpolate(p *planpath.Path, interpRes float64) *planpath.Path {
	out := &planpath.Path{Cost: p.Cost, IdxAnalytic: p.IdxAnalytic}
	for _, seg := range Split(p) {
		resampled := seg
		if seg.Type != planpath.RearAxis {
			resampled = exactDistInterpolation(seg, interpRes)
		}
		for i := range resampled.XList {
			out.XList = append(out.XList, resampled.XList[i])
			out.YList = append(out.YList, resampled.YList[i])
			out.YawList = append(out.YawList, resampled.YawList[i])
			out.DirList = append(out.DirList, resampled.Dir)
			out.Types = append(out.Types, resampled.Type)
		}
	}
	flattenYawJumps(out.YawList, 10*math.Pi/180)
	return out
}

// exactDistInterpolation walks seg's polyline in interpRes/10 sub-steps,
// accumulating chord length, and emits a new sample every time the
// accumulator crosses interpRes. Each emitted sample's yaw is the bearing
// from the previous emitted sample, flipped by pi for a reverse-direction
// segment so yaw still points the way the vehicle is facing rather than
// the way it is traveling.
func exactDistInterpolation(seg Segment, interpRes float64) Segment {
	n := len(seg.XList)
	out := Segment{Type: seg.Type, Dir: seg.Dir}
	if n == 0 {
		return out
	}
	if n < 2 || interpRes <= 0 {
		return seg
	}

	out.XList = append(out.XList, seg.XList[0])
	out.YList = append(out.YList, seg.YList[0])
	out.YawList = append(out.YawList, seg.YawList[0])

	step := interpRes / 10
	accum := 0.0
	lastX, lastY := seg.XList[0], seg.YList[0]

	for i := 0; i < n-1; i++ {
		x0, y0 := seg.XList[i], seg.YList[i]
		x1, y1 := seg.XList[i+1], seg.YList[i+1]
		chordLen := math.Hypot(x1-x0, y1-y0)
		if chordLen < 1e-12 {
			continue
		}

		traveled := 0.0
		for traveled < chordLen {
			take := step
			if remaining := chordLen - traveled; take > remaining {
				take = remaining
			}
			traveled += take
			accum += take

			if accum+1e-12 < interpRes {
				continue
			}
			accum -= interpRes

			frac := traveled / chordLen
			px := x0 + frac*(x1-x0)
			py := y0 + frac*(y1-y0)

			yaw := math.Atan2(py-lastY, px-lastX)
			if seg.Dir == -1 {
				yaw = geom.NormalizedYaw(yaw + math.Pi)
			}

			out.XList = append(out.XList, px)
			out.YList = append(out.YList, py)
			out.YawList = append(out.YawList, yaw)
			lastX, lastY = px, py
		}
	}

	lastIdx := n - 1
	tailX, tailY := out.XList[len(out.XList)-1], out.YList[len(out.YList)-1]
	if math.Hypot(seg.XList[lastIdx]-tailX, seg.YList[lastIdx]-tailY) > 1e-9 {
		out.XList = append(out.XList, seg.XList[lastIdx])
		out.YList = append(out.YList, seg.YList[lastIdx])
		out.YawList = append(out.YawList, seg.YawList[lastIdx])
	}
	return out
}

func flattenYawJumps(yaws []float64, thresh float64) {
	for i := 1; i < len(yaws); i++ {
		if math.Abs(geom.SignedAngleDiff(yaws[i], yaws[i-1])) > thresh {
			yaws[i] = yaws[i-1]
		}
	}
}
