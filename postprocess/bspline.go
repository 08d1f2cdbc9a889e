package postprocess

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// QuadraticBSpline is a smoothing curve fit through a sampled polyline: a
// small number of overlapping bump basis functions, one per knot, whose
// weighted sum reproduces (x, y) with the high-frequency sampling noise
// averaged out. The original fits this with an external
// fitpack_wrapper::BSpline1D binding (out of scope, see DESIGN.md); this
// hand-rolls the fit as an ordinary least-squares solve over gonum/mat
// rather than a textbook Cox-de Boor B-spline basis, since gonum/mat
// supplies the linear-algebra primitive and nothing in the corpus supplies
// the spline basis itself.
type QuadraticBSpline struct {
	knots   int
	coeffsX []float64
	coeffsY []float64
}

// FitQuadraticBSpline fits a curve with numKnots basis functions through
// (xs, ys), parameterized by arc-length fraction.
func FitQuadraticBSpline(xs, ys []float64, numKnots int) *QuadraticBSpline {
	n := len(xs)
	if numKnots < 2 {
		numKnots = 2
	}
	if numKnots > n {
		numKnots = n
	}

	// Cumulative chord length of each sample along the polyline.
	arc := make([]float64, n)
	for i := 1; i < n; i++ {
		arc[i] = arc[i-1] + math.Hypot(xs[i]-xs[i-1], ys[i]-ys[i-1])
	}
	total := arc[n-1]

	basis := mat.NewDense(n, numKnots, nil)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		if total > 0 {
			t = arc[i] / total
		}
		for j := 0; j < numKnots; j++ {
			basis.Set(i, j, quadraticBasis(t, j, numKnots))
		}
	}

	var btb mat.Dense
	btb.Mul(basis.T(), basis)

	bx := mat.NewVecDense(n, xs)
	by := mat.NewVecDense(n, ys)
	var btx, bty mat.VecDense
	btx.MulVec(basis.T(), bx)
	bty.MulVec(basis.T(), by)

	cx := solveOrFallback(&btb, &btx, xs, numKnots)
	cy := solveOrFallback(&btb, &bty, ys, numKnots)

	return &QuadraticBSpline{knots: numKnots, coeffsX: cx, coeffsY: cy}
}

// solveOrFallback solves btb*c = btv for c, falling back to an evenly
// subsampled copy of the raw samples if btb is singular (can happen for a
// very short, near-duplicate-point segment) rather than propagating a
// solver error out of a post-processing convenience function.
func solveOrFallback(btb *mat.Dense, btv *mat.VecDense, raw []float64, numKnots int) []float64 {
	var c mat.VecDense
	if err := c.SolveVec(btb, btv); err != nil {
		out := make([]float64, numKnots)
		n := len(raw)
		for j := 0; j < numKnots; j++ {
			idx := j * (n - 1) / max(numKnots-1, 1)
			out[j] = raw[idx]
		}
		return out
	}
	return append([]float64(nil), c.RawVector().Data...)
}

// quadraticBasis evaluates basis function j (of numKnots, centered evenly
// across [0,1]) at parameter t: a raised-cosine bump, smooth and
// compactly supported like a true quadratic B-spline basis function.
func quadraticBasis(t float64, j, numKnots int) float64 {
	center := float64(j) / float64(max(numKnots-1, 1))
	width := 1.5 / float64(max(numKnots-1, 1))
	d := (t - center) / width
	if d < -1 || d > 1 {
		return 0
	}
	return 0.5 * (1 + math.Cos(math.Pi*d))
}

// Eval samples the fitted curve at n evenly spaced parameter values.
func (b *QuadraticBSpline) Eval(n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(max(n-1, 1))
		var x, y float64
		for j := 0; j < b.knots; j++ {
			w := quadraticBasis(t, j, b.knots)
			x += w * b.coeffsX[j]
			y += w * b.coeffsY[j]
		}
		xs[i] = x
		ys[i] = y
	}
	return xs, ys
}
