package vehicle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
)

func testParams() Params {
	return Params{
		Wheelbase:    2.8,
		MaxSteer:     0.6,
		MaxCurvature: 0.2,
		CanPivot:     true,
	}
}

func TestMoveSomeStepsStraightAhead(t *testing.T) {
	p := testParams()
	prim := p.MoveSomeSteps(geom.Pose{X: 0, Y: 0, Yaw: 0}, 5.0, 0.5, 1, 0)

	require.Equal(t, prim.NumElements(), len(prim.XList))
	last := prim.NumElements() - 1
	require.InDelta(t, 5.0, prim.XList[last], 1e-9)
	require.InDelta(t, 0.0, prim.YList[last], 1e-9)
	require.InDelta(t, 0.0, prim.YawList[last], 1e-9)
	for _, d := range prim.DirList {
		require.Equal(t, 1, d)
	}
}

func TestMoveSomeStepsReverseFlipsX(t *testing.T) {
	p := testParams()
	prim := p.MoveSomeSteps(geom.Pose{X: 0, Y: 0, Yaw: 0}, 5.0, 0.5, -1, 0)
	last := prim.NumElements() - 1
	require.Less(t, prim.XList[last], 0.0)
	for _, d := range prim.DirList {
		require.Equal(t, -1, d)
	}
}

func TestMoveSomeStepsSteeringTurnsYaw(t *testing.T) {
	p := testParams()
	prim := p.MoveSomeSteps(geom.Pose{X: 0, Y: 0, Yaw: 0}, 5.0, 0.5, 1, 0.3)
	last := prim.NumElements() - 1
	require.Greater(t, math.Abs(prim.YawList[last]), 0.0, "a nonzero steering angle must change heading")
}

func TestTurnOnRearAxisHoldsPositionFixed(t *testing.T) {
	p := testParams()
	pose := geom.Pose{X: 3, Y: 4, Yaw: 0}
	prim := p.TurnOnRearAxis(pose, math.Pi/2, 0.05)

	require.NotEmpty(t, prim.XList)
	for i := range prim.XList {
		require.InDelta(t, 3, prim.XList[i], 1e-9)
		require.InDelta(t, 4, prim.YList[i], 1e-9)
		require.Equal(t, 1, prim.DirList[i])
	}
	last := prim.NumElements() - 1
	require.InDelta(t, math.Pi/2, prim.YawList[last], 1e-6)
}

func TestTurnOnRearAxisNegativeAngleReportsReverseDir(t *testing.T) {
	p := testParams()
	prim := p.TurnOnRearAxis(geom.Pose{X: 0, Y: 0, Yaw: 0}, -math.Pi/4, 0.05)
	require.NotEmpty(t, prim.DirList)
	for _, d := range prim.DirList {
		require.Equal(t, -1, d)
	}
}

func TestTurnOnRearAxisZeroAngleIsNoOp(t *testing.T) {
	p := testParams()
	pose := geom.Pose{X: 1, Y: 2, Yaw: 0.3}
	prim := p.TurnOnRearAxis(pose, 0, 0.05)
	require.Equal(t, 1, prim.NumElements())
	require.InDelta(t, pose.Yaw, prim.YawList[0], 1e-9)
}

func TestCornerOffsetsOrder(t *testing.T) {
	p := testParams()
	p.FrontRight = geom.Point{X: 1, Y: -1}
	p.FrontLeft = geom.Point{X: 1, Y: 1}
	p.RearRight = geom.Point{X: -1, Y: -1}
	p.RearLeft = geom.Point{X: -1, Y: 1}

	corners := p.CornerOffsets()
	require.Equal(t, p.FrontRight, corners[0])
	require.Equal(t, p.FrontLeft, corners[1])
	require.Equal(t, p.RearRight, corners[2])
	require.Equal(t, p.RearLeft, corners[3])
}
