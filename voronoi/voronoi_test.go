package voronoi

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/gridmap"
)

func testParams() Params {
	return Params{
		Alpha:        1.0,
		DOMax:        5.0,
		DOMin:        0.5,
		MotionResMin: 0.2,
		MotionResMax: 1.0,
	}
}

func TestBuildNoObstaclesFillsMaxMotionRes(t *testing.T) {
	grid := gridmap.NewDense[uint8](10)
	field := Build(grid, testParams())

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			require.Zero(t, field.Potential.At(x, y))
			require.Equal(t, testParams().MotionResMax, field.MotionRes.At(x, y))
		}
	}
}

func TestBuildPotentialDecaysWithDistance(t *testing.T) {
	grid := gridmap.NewDense[uint8](20)
	grid.Set(10, 10, 1)

	field := Build(grid, testParams())

	near := field.Potential.At(11, 10)
	far := field.Potential.At(15, 10)
	require.Greater(t, near, far, "potential should fall off away from the obstacle")
	require.Zero(t, field.Potential.At(10, 10+int(testParams().DOMax)+2), "beyond DOMax the field must be zero")
}

func TestBuildMotionResShrinksNearObstacles(t *testing.T) {
	grid := gridmap.NewDense[uint8](20)
	grid.Set(10, 10, 1)
	p := testParams()

	field := Build(grid, p)

	require.InDelta(t, p.MotionResMin, field.MotionRes.At(10, 10), 1e-9)
	require.Greater(t, field.MotionRes.At(18, 10), field.MotionRes.At(11, 10))
}

func TestBilinInterpMatchesCornersAndMidpoint(t *testing.T) {
	layer := gridmap.NewDense[float64](4)
	layer.Set(1, 1, 2)
	layer.Set(2, 1, 4)
	layer.Set(1, 2, 6)
	layer.Set(2, 2, 8)

	require.InDelta(t, 2, BilinInterp(layer, 1, 1), 1e-9)
	require.InDelta(t, 4, BilinInterp(layer, 2, 1), 1e-9)
	require.InDelta(t, 3, BilinInterp(layer, 1.5, 1), 1e-9)
	require.InDelta(t, 5, BilinInterp(layer, 1.5, 1.5), 1e-9)
}

func TestBilinInterpOutOfBoundsIsZero(t *testing.T) {
	layer := gridmap.NewDense[float64](4)
	layer.Fill(9)
	require.Zero(t, BilinInterp(layer, -1, 2))
	require.Zero(t, BilinInterp(layer, 2, 10))
}
