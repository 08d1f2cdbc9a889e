// Package voronoi builds the obstacle-proximity potential field that
// biases the 2D A* heuristic and the Hybrid A* edge cost away from
// obstacles: a smooth function of distance to the nearest obstacle and
// distance to the nearest Voronoi edge between obstacles, following
// spec.md's rho(c) formula (see a_star.hpp's calcVoronoiPotentialField,
// not included in the retrieved sources in full, so the field construction
// below is grounded directly on the formula and KD-tree lookup pattern
// spec.md documents).
package voronoi

import (
	"math"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/gridmap"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// Params are the tunables read from configuration: Alpha shapes the decay
// near obstacles, DOMax is the obstacle distance beyond which the field is
// zero and MotionRes reaches MotionResMax, and MotionResMin/MotionResMax
// bound the adaptive step size. DOMin is carried along but not read by
// Build.
type Params struct {
	Alpha         float64
	DOMax         float64
	DOMin         float64
	MotionResMin  float64
	MotionResMax  float64
}

type point struct {
	x, y float64
}

func (p point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(point)
	if d == 0 {
		return p.x - q.x
	}
	return p.y - q.y
}
func (p point) Dims() int { return 2 }
// Distance returns squared Euclidean distance, the convention gonum's
// kdtree expects so it can compare without an unnecessary sqrt.
func (p point) Distance(c kdtree.Comparable) float64 {
	q := c.(point)
	dx, dy := p.x-q.x, p.y-q.y
	return dx*dx + dy*dy
}

type pointSet []point

func (s pointSet) Len() int              { return len(s) }
func (s pointSet) Index(i int) kdtree.Comparable { return s[i] }
func (s pointSet) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(s, d)
}
func (s pointSet) Slice(start, end int) kdtree.Interface { return s[start:end] }
func (s pointSet) Swap(i, j int)                         { s[i], s[j] = s[j], s[i] }

// Field is a computed potential layer plus its obstacle-proximity
// gradient, ready to be sampled by the Hybrid A* core and the Smoother.
type Field struct {
	Dim      int
	Potential *gridmap.Dense[float64]
	GradX    *gridmap.Dense[float64]
	GradY    *gridmap.Dense[float64]
	// MotionRes is the adaptive step size per cell, interpolated between
	// MotionResMin (near obstacles) and MotionResMax (open space).
	MotionRes *gridmap.Dense[float64]
}

// NewField allocates the dense layers for a dim x dim patch.
func NewField(dim int) *Field {
	return &Field{
		Dim:       dim,
		Potential: gridmap.NewDense[float64](dim),
		GradX:     gridmap.NewDense[float64](dim),
		GradY:     gridmap.NewDense[float64](dim),
		MotionRes: gridmap.NewDense[float64](dim),
	}
}

// Reinit reallocates the layers for a new patch dimension.
func (f *Field) Reinit(dim int) {
	f.Dim = dim
	f.Potential.Reset(dim)
	f.GradX.Reset(dim)
	f.GradY.Reset(dim)
	f.MotionRes.Reset(dim)
}

// extractVoronoiEdges finds, for every obstacle, its nearest neighboring
// obstacle and emits the midpoint between them — a cheap stand-in for a
// full sweep-line Voronoi diagram that still concentrates edge samples
// where two obstacles face each other, which is exactly what the d_V term
// in rho(c) needs. Patches are small (a few hundred obstacle cells at
// most) so the O(n^2) nearest-neighbor pass is not a bottleneck; it avoids
// needing a second, differently-shaped KD-tree query just for this.
func extractVoronoiEdges(obstacles pointSet, dim float64) pointSet {
	if len(obstacles) < 2 {
		return nil
	}
	var edges pointSet
	for i, o := range obstacles {
		best := -1
		bestD := math.Inf(1)
		for j, c := range obstacles {
			if i == j {
				continue
			}
			d := o.Distance(c)
			if d < bestD {
				bestD = d
				best = j
			}
		}
		if best < 0 {
			continue
		}
		np := obstacles[best]
		mid := point{(o.x + np.x) / 2, (o.y + np.y) / 2}
		if mid.x >= 0 && mid.x < dim && mid.y >= 0 && mid.y < dim {
			edges = append(edges, mid)
		}
	}
	return edges
}

// Build computes the potential field for a patch of occupancy, where a
// nonzero cell in grid is an obstacle. The whole grid is processed; a grid
// with no obstacles yields a zero potential and MotionResMax everywhere.
func Build(grid *gridmap.Dense[uint8], params Params) *Field {
	dim := grid.Dim
	field := NewField(dim)

	var obstacles pointSet
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			if grid.At(x, y) != 0 {
				obstacles = append(obstacles, point{float64(x), float64(y)})
			}
		}
	}
	if len(obstacles) == 0 {
		field.MotionRes.Fill(params.MotionResMax)
		return field
	}

	obsTree := kdtree.New(append(pointSet(nil), obstacles...), false)
	edgeSamples := extractVoronoiEdges(obstacles, float64(dim))
	var edgeTree *kdtree.Tree
	if len(edgeSamples) > 0 {
		edgeTree = kdtree.New(edgeSamples, false)
	}

	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			q := point{float64(x), float64(y)}
			_, dO := obsTree.Nearest(q)
			dOVal := math.Sqrt(dO)

			rho := 0.0
			if dOVal <= params.DOMax {
				dV := dOVal // default if no edges: treat as if equidistant
				if edgeTree != nil {
					_, dv2 := edgeTree.Nearest(q)
					dV = math.Sqrt(dv2)
				}
				decay := math.Max(0, (params.DOMax-dOVal)/params.DOMax)
				rho = (params.Alpha / (params.Alpha + dOVal)) * (dV / (dOVal + dV + 1e-9)) * decay * decay
			}
			field.Potential.Set(x, y, rho)

			resFrac := math.Min(1, dOVal/params.DOMax)
			field.MotionRes.Set(x, y, params.MotionResMin+(params.MotionResMax-params.MotionResMin)*resFrac)
		}
	}

	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			field.GradX.Set(x, y, centralDiff(field.Potential, x, y, true))
			field.GradY.Set(x, y, centralDiff(field.Potential, x, y, false))
		}
	}

	return field
}

func centralDiff(layer *gridmap.Dense[float64], x, y int, alongX bool) float64 {
	dim := layer.Dim
	if alongX {
		x0, x1 := x-1, x+1
		if x0 < 0 {
			x0 = 0
		}
		if x1 >= dim {
			x1 = dim - 1
		}
		if x1 == x0 {
			return 0
		}
		return (layer.At(x1, y) - layer.At(x0, y)) / float64(x1-x0)
	}
	y0, y1 := y-1, y+1
	if y0 < 0 {
		y0 = 0
	}
	if y1 >= dim {
		y1 = dim - 1
	}
	if y1 == y0 {
		return 0
	}
	return (layer.At(x, y1) - layer.At(x, y0)) / float64(y1-y0)
}

// BilinInterp samples layer at continuous (x, y) grid coordinates via
// bilinear interpolation, returning 0 for out-of-bounds queries (matching
// util::getBilinInterp's NaN-to-zero fallback for corner sampling beyond
// the patch edge).
func BilinInterp(layer *gridmap.Dense[float64], x, y float64) float64 {
	dim := layer.Dim
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1, y1 := x0+1, y0+1
	if x0 < 0 || y0 < 0 || x1 >= dim || y1 >= dim {
		return 0
	}
	tx := x - float64(x0)
	ty := y - float64(y0)
	v00 := layer.At(x0, y0)
	v10 := layer.At(x1, y0)
	v01 := layer.At(x0, y1)
	v11 := layer.At(x1, y1)
	return v00*(1-tx)*(1-ty) + v10*tx*(1-ty) + v01*(1-tx)*ty + v11*tx*ty
}
