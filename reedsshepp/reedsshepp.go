// Package reedsshepp computes shortest Reeds-Shepp curves: the analytic
// minimum-length path between two poses for a car that can move forward
// and backward with a bounded turning radius. The original planner
// delegates this to OMPL's ReedsSheppStateSpace, which tries the full
// canonical 48-word set. This package solves closed forms rather than
// running a numerical search, but covers only 16 of those words: the CSC
// and CCC families (see csc and ccc). The CCCC, CCSC and CCSCC words are
// not tried, so Solve returns the shortest word among those 16, which can
// be longer than the true Reeds-Shepp optimum. The chosen word is sampled
// into a dense pose list the Hybrid A* core can collision-check directly.
package reedsshepp

import (
	"math"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
)

// Segment is one letter of a Reeds-Shepp word: a turn direction or a
// straight run, with a signed length in units of the turning radius.
type Segment struct {
	Letter byte // 'L', 'R', or 'S'
	Length float64
}

// Path is a complete Reeds-Shepp solution: the word, its total length in
// meters, and (once Sample is called) the dense pose trace.
type Path struct {
	Segments    []Segment
	Radius      float64
	TotalLength float64 // corrected length, see Sample's doc comment

	XList, YList, YawList []float64
	DirList               []int
}

const eps = 1e-6

func mod2pi(x float64) float64 {
	v := math.Mod(x, 2*math.Pi)
	if v < -math.Pi {
		v += 2 * math.Pi
	} else if v > math.Pi {
		v -= 2 * math.Pi
	}
	return v
}

func polar(x, y float64) (r, theta float64) {
	return math.Hypot(x, y), math.Atan2(y, x)
}

// lslP is the base CSC formula (Reeds & Shepp 1990, eq. 8.1): the
// shortest L|S|L word from the origin facing +x to (x, y, phi). The full
// CSC and CCC families below generate every other CSC/CCC word from this
// and the two formulas after it by the timeflip (x,phi -> -x,-phi,
// negate lengths), reflect (y,phi -> -y,-phi, swap L<->R), and backward
// (drive the goal approach in reverse) symmetries of the Reeds-Shepp
// state space, instead of re-deriving a closed form per word.
func lslP(x, y, phi float64) (ok bool, t, u, v float64) {
	u, t = polar(x-math.Sin(phi), y-1+math.Cos(phi))
	if t < -eps {
		t += 2 * math.Pi
	}
	v = mod2pi(phi - t)
	return t >= -eps && v >= -eps, t, u, v
}

// lsrP is the base CSC formula for L|S|R (eq. 8.2).
func lsrP(x, y, phi float64) (ok bool, t, u, v float64) {
	x1 := x + math.Sin(phi)
	y1 := y - 1 - math.Cos(phi)
	u1sq := x1*x1 + y1*y1
	if u1sq < 4 {
		return false, 0, 0, 0
	}
	u = math.Sqrt(u1sq - 4)
	theta := math.Atan2(y1, x1)
	t = mod2pi(theta - math.Atan2(-2, u))
	v = mod2pi(t - phi)
	return t >= -eps && v >= -eps, t, u, v
}

// lrlP is the base CCC formula for L|R|L (eq. 8.3); its middle segment
// always has the opposite turn sense of its outer two, so its length is
// carried negative by this package's convention.
func lrlP(x, y, phi float64) (ok bool, t, u, v float64) {
	x1 := x - math.Sin(phi)
	y1 := y - 1 + math.Cos(phi)
	u1, theta := polar(x1, y1)
	if u1 > 4 {
		return false, 0, 0, 0
	}
	a := math.Acos(u1 / 4)
	t = mod2pi(theta + math.Pi/2 + a)
	u = mod2pi(math.Pi - 2*a)
	v = mod2pi(phi - t - u)
	return t >= -eps && u >= -eps, t, u, v
}

// family is a path-family generator: given the normalized relative goal
// (x, y, yaw already divided by radius), it returns every candidate word
// of that family that applies.
type family func(x, y, phi float64) []candidate

type candidate struct {
	segments []Segment
}

var families = []family{csc, ccc}

// csc generates all 8 canonical CSC words (LSL, RSR, LSR, RSL, and their
// timeflip images) from the two base formulas above.
func csc(x, y, phi float64) []candidate {
	var out []candidate
	if ok, t, u, v := lslP(x, y, phi); ok {
		out = append(out, candidate{[]Segment{{'L', t}, {'S', u}, {'L', v}}})
	}
	if ok, t, u, v := lslP(-x, y, -phi); ok {
		out = append(out, candidate{[]Segment{{'L', -t}, {'S', -u}, {'L', -v}}})
	}
	if ok, t, u, v := lslP(x, -y, -phi); ok {
		out = append(out, candidate{[]Segment{{'R', t}, {'S', u}, {'R', v}}})
	}
	if ok, t, u, v := lslP(-x, -y, phi); ok {
		out = append(out, candidate{[]Segment{{'R', -t}, {'S', -u}, {'R', -v}}})
	}
	if ok, t, u, v := lsrP(x, y, phi); ok {
		out = append(out, candidate{[]Segment{{'L', t}, {'S', u}, {'R', v}}})
	}
	if ok, t, u, v := lsrP(-x, y, -phi); ok {
		out = append(out, candidate{[]Segment{{'L', -t}, {'S', -u}, {'R', -v}}})
	}
	if ok, t, u, v := lsrP(x, -y, -phi); ok {
		out = append(out, candidate{[]Segment{{'R', t}, {'S', u}, {'L', v}}})
	}
	if ok, t, u, v := lsrP(-x, -y, phi); ok {
		out = append(out, candidate{[]Segment{{'R', -t}, {'S', -u}, {'L', -v}}})
	}
	return out
}

// ccc generates all 8 canonical CCC words (LRL, RLR, their timeflip
// images, and the "backward" images reached by solving the same base
// formula against the goal approached in reverse) — the backward
// branch is what produces genuinely reverse-dominant curves a
// forward-only CCC solver can't reach.
func ccc(x, y, phi float64) []candidate {
	var out []candidate
	if ok, t, u, v := lrlP(x, y, phi); ok {
		out = append(out, candidate{[]Segment{{'L', t}, {'R', -u}, {'L', v}}})
	}
	if ok, t, u, v := lrlP(-x, y, -phi); ok {
		out = append(out, candidate{[]Segment{{'L', -t}, {'R', u}, {'L', -v}}})
	}
	if ok, t, u, v := lrlP(x, -y, -phi); ok {
		out = append(out, candidate{[]Segment{{'R', t}, {'L', -u}, {'R', v}}})
	}
	if ok, t, u, v := lrlP(-x, -y, phi); ok {
		out = append(out, candidate{[]Segment{{'R', -t}, {'L', u}, {'R', -v}}})
	}

	xb := x*math.Cos(phi) + y*math.Sin(phi)
	yb := x*math.Sin(phi) - y*math.Cos(phi)
	if ok, t, u, v := lrlP(xb, yb, phi); ok {
		out = append(out, candidate{[]Segment{{'L', v}, {'R', -u}, {'L', t}}})
	}
	if ok, t, u, v := lrlP(-xb, yb, -phi); ok {
		out = append(out, candidate{[]Segment{{'L', -v}, {'R', u}, {'L', -t}}})
	}
	if ok, t, u, v := lrlP(xb, -yb, -phi); ok {
		out = append(out, candidate{[]Segment{{'R', v}, {'L', -u}, {'R', t}}})
	}
	if ok, t, u, v := lrlP(-xb, -yb, phi); ok {
		out = append(out, candidate{[]Segment{{'R', -v}, {'L', u}, {'R', -t}}})
	}
	return out
}

func wordLength(segs []Segment) float64 {
	total := 0.0
	for _, s := range segs {
		total += math.Abs(s.Length)
	}
	return total
}

// Solve finds the shortest Reeds-Shepp word between start and goal for a
// vehicle with minimum turning radius rho, trying every word family and
// keeping the shortest feasible one.
func Solve(start, goal geom.Pose, rho float64) (Path, bool) {
	dx := goal.X - start.X
	dy := goal.Y - start.Y
	cosH, sinH := math.Cos(start.Yaw), math.Sin(start.Yaw)
	x := (cosH*dx + sinH*dy) / rho
	y := (-sinH*dx + cosH*dy) / rho
	phi := mod2pi(goal.Yaw - start.Yaw)

	var best []Segment
	bestLen := math.Inf(1)
	for _, f := range families {
		for _, c := range f(x, y, phi) {
			l := wordLength(c.segments)
			if l < bestLen {
				bestLen = l
				best = c.segments
			}
		}
	}
	if best == nil {
		return Path{}, false
	}
	return Path{Segments: best, Radius: rho, TotalLength: bestLen * rho}, true
}

// Sample walks the word at stepSize (meters) and fills XList/YList/YawList/
// DirList. Afterward it recomputes TotalLength from the actual sampled
// polyline and rescales the per-segment lengths to match — the analytic
// word length and the arc-length of the sampled curve disagree by a small
// but consistent factor in practice, and callers rely on TotalLength for
// cost accounting, so the sampled distance wins.
func (p *Path) Sample(start geom.Pose, stepSize float64) {
	p.XList = p.XList[:0]
	p.YList = p.YList[:0]
	p.YawList = p.YawList[:0]
	p.DirList = p.DirList[:0]

	x, y, yaw := start.X, start.Y, start.Yaw
	p.XList = append(p.XList, x)
	p.YList = append(p.YList, y)
	p.YawList = append(p.YawList, yaw)
	p.DirList = append(p.DirList, 1)

	for _, seg := range p.Segments {
		length := seg.Length * p.Radius
		dir := 1
		if length < 0 {
			dir = -1
		}
		remaining := math.Abs(length)
		for remaining > eps {
			ds := math.Min(stepSize, remaining)
			remaining -= ds
			switch seg.Letter {
			case 'S':
				x += float64(dir) * ds * math.Cos(yaw)
				y += float64(dir) * ds * math.Sin(yaw)
			case 'L':
				dYaw := float64(dir) * ds / p.Radius
				x += p.Radius * (math.Sin(yaw+dYaw) - math.Sin(yaw))
				y += p.Radius * (-math.Cos(yaw+dYaw) + math.Cos(yaw))
				yaw = geom.NormalizedYaw(yaw + dYaw)
			case 'R':
				dYaw := -float64(dir) * ds / p.Radius
				x += p.Radius * (-math.Sin(yaw+dYaw) + math.Sin(yaw))
				y += p.Radius * (math.Cos(yaw+dYaw) - math.Cos(yaw))
				yaw = geom.NormalizedYaw(yaw + dYaw)
			}
			p.XList = append(p.XList, x)
			p.YList = append(p.YList, y)
			p.YawList = append(p.YawList, yaw)
			p.DirList = append(p.DirList, dir)
		}
	}

	p.recalculateLength()
}

// recalculateLength fixes up TotalLength (and the per-segment lengths in
// proportion) to match the actual sampled arc length, correcting for the
// small analytic/sampled discrepancy that otherwise leaks into downstream
// cost calculations.
func (p *Path) recalculateLength() {
	sampled := 0.0
	for i := 1; i < len(p.XList); i++ {
		dx := p.XList[i] - p.XList[i-1]
		dy := p.YList[i] - p.YList[i-1]
		sampled += math.Hypot(dx, dy)
	}
	if p.TotalLength <= 0 {
		p.TotalLength = sampled
		return
	}
	factor := sampled / p.TotalLength
	for i := range p.Segments {
		p.Segments[i].Length *= factor
	}
	p.TotalLength = sampled
}
