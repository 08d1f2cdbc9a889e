package postprocess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	return out
}

func TestFitQuadraticBSplineApproximatesAStraightLine(t *testing.T) {
	xs := linspace(0, 10, 20)
	ys := make([]float64, 20)

	spline := FitQuadraticBSpline(xs, ys, 5)
	fx, fy := spline.Eval(20)

	require.Len(t, fx, 20)
	require.Len(t, fy, 20)
	require.InDelta(t, 0, fx[0], 1.5, "the fit should stay near the line's start")
	require.InDelta(t, 10, fx[len(fx)-1], 1.5, "the fit should stay near the line's end")
	for _, y := range fy {
		require.InDelta(t, 0, y, 1e-6, "a flat input should fit flat, since every basis weight multiplies zero")
	}
}

func TestFitQuadraticBSplineClampsKnotCount(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 0}

	spline := FitQuadraticBSpline(xs, ys, 50)
	require.LessOrEqual(t, spline.knots, len(xs))

	spline2 := FitQuadraticBSpline(xs, ys, 1)
	require.GreaterOrEqual(t, spline2.knots, 2)
}
