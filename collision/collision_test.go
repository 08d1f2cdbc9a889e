package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/gridmap"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/gridtf"
)

func testChecker() *GridChecker {
	grid := gridmap.NewDense[uint8](10)
	grid.Set(5, 5, 1)
	tf := gridtf.New(0.1, 1.0, geom.Point{})
	return NewGridChecker(grid, tf)
}

func TestCheckPoseFreeCell(t *testing.T) {
	c := testChecker()
	require.True(t, c.CheckPose(1.5, 1.5, 0))
}

func TestCheckPoseOccupiedCell(t *testing.T) {
	c := testChecker()
	require.False(t, c.CheckPose(5.5, 5.5, 0))
}

func TestCheckPoseOutOfBoundsIsCollision(t *testing.T) {
	c := testChecker()
	require.False(t, c.CheckPose(-1, -1, 0))
	require.False(t, c.CheckPose(100, 100, 0))
}

func TestCheckPathCollisionStopsAtFirstHit(t *testing.T) {
	c := testChecker()
	xs := []float64{1.5, 2.5, 5.5, 6.5}
	ys := []float64{1.5, 2.5, 5.5, 6.5}
	yaws := []float64{0, 0, 0, 0}
	require.False(t, c.CheckPathCollision(xs, ys, yaws))
}

func TestCheckPathCollisionAllFree(t *testing.T) {
	c := testChecker()
	xs := []float64{1.5, 2.5, 3.5}
	ys := []float64{1.5, 2.5, 3.5}
	yaws := []float64{0, 0, 0}
	require.True(t, c.CheckPathCollision(xs, ys, yaws))
}

func TestAlwaysFreeNeverCollides(t *testing.T) {
	var c AlwaysFree
	require.True(t, c.CheckPose(0, 0, 0))
	require.True(t, c.CheckPathCollision([]float64{1, 2}, []float64{1, 2}, []float64{0, 0}))
}
