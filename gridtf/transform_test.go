package gridtf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
)

func TestContToGridIndexFloors(t *testing.T) {
	tf := New(0.1, 0.5, geom.Point{})
	require.Equal(t, 3, tf.ContToGridIndex(1.9))
	require.Equal(t, 4, tf.ContToGridIndex(2.0))
	require.Equal(t, -1, tf.ContToGridIndex(-0.1))
}

func TestContToGridIndexRoundRounds(t *testing.T) {
	tf := New(0.1, 0.5, geom.Point{})
	require.Equal(t, 4, tf.ContToGridIndexRound(1.9))
	require.Equal(t, 2, tf.ContToGridIndexRound(1.2))
}

func TestGridToContIsCellCenter(t *testing.T) {
	tf := New(0.1, 0.5, geom.Point{})
	require.InDelta(t, 0.25, tf.GridToCont(0), 1e-9)
	require.InDelta(t, 0.75, tf.GridToCont(1), 1e-9)
}

func TestGridToContRoundTripsThroughFloor(t *testing.T) {
	tf := New(0.1, 0.5, geom.Point{})
	idx := tf.ContToGridIndex(2.3)
	center := tf.GridToCont(idx)
	require.Less(t, math.Abs(center-2.3), tf.PlannerRes)
}

func TestUpdateRebindsResolution(t *testing.T) {
	tf := New(0.1, 0.5, geom.Point{})
	tf.Update(0.2, 1.0, geom.Point{X: 5, Y: 5})
	require.Equal(t, 0.2, tf.GmRes)
	require.Equal(t, 1.0, tf.PlannerRes)
	require.Equal(t, geom.Point{X: 5, Y: 5}, tf.OriginUTM)
	require.InDelta(t, 1.0, tf.Cont2Star, 1e-9)
}

func TestPoseToDisc(t *testing.T) {
	tf := New(0.1, 1.0, geom.Point{})
	yawRes := 2 * math.Pi / 72
	p := geom.Pose{X: 3.4, Y: 1.1, Yaw: yawRes * 5}

	disc := tf.PoseToDisc(p, 1/yawRes)
	require.Equal(t, 3, disc.XIndex)
	require.Equal(t, 1, disc.YIndex)
	require.Equal(t, 5, disc.YawIndex)
}
