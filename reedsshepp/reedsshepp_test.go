package reedsshepp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
)

func TestSolveReachesGoal(t *testing.T) {
	cases := []struct {
		name  string
		start geom.Pose
		goal  geom.Pose
	}{
		{"straight ahead", geom.Pose{X: 0, Y: 0, Yaw: 0}, geom.Pose{X: 10, Y: 0, Yaw: 0}},
		{"u-turn", geom.Pose{X: 0, Y: 0, Yaw: 0}, geom.Pose{X: 0, Y: 8, Yaw: math.Pi}},
		{"quarter turn", geom.Pose{X: 0, Y: 0, Yaw: 0}, geom.Pose{X: 5, Y: 5, Yaw: math.Pi / 2}},
		{"goal directly behind, same heading", geom.Pose{X: 0, Y: 0, Yaw: 0}, geom.Pose{X: -10, Y: 0, Yaw: 0}},
		{"goal behind and rotated", geom.Pose{X: 0, Y: 0, Yaw: 0}, geom.Pose{X: -5, Y: 3, Yaw: math.Pi / 4}},
	}

	const rho = 3.0
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path, ok := Solve(c.start, c.goal, rho)
			require.True(t, ok, "expected a feasible word for %s", c.name)
			require.NotEmpty(t, path.Segments)

			path.Sample(c.start, 0.1)
			require.NotEmpty(t, path.XList)

			lastX := path.XList[len(path.XList)-1]
			lastY := path.YList[len(path.YList)-1]
			lastYaw := path.YawList[len(path.YawList)-1]

			require.InDelta(t, c.goal.X, lastX, 0.2)
			require.InDelta(t, c.goal.Y, lastY, 0.2)
			require.Less(t, math.Abs(geom.SignedAngleDiff(c.goal.Yaw, lastYaw)), 0.1)
		})
	}
}

func TestSolveUsesReverseForGoalBehind(t *testing.T) {
	start := geom.Pose{X: 0, Y: 0, Yaw: 0}
	goal := geom.Pose{X: -10, Y: 0, Yaw: 0}
	path, ok := Solve(start, goal, 3.0)
	require.True(t, ok)

	path.Sample(start, 0.1)

	sawReverse := false
	for _, dir := range path.DirList {
		if dir == -1 {
			sawReverse = true
			break
		}
	}
	require.True(t, sawReverse, "a goal directly behind the start should be reached by backing up, not a long forward loop")
}

func TestRecalculateLengthMatchesSampledArc(t *testing.T) {
	start := geom.Pose{X: 0, Y: 0, Yaw: 0}
	goal := geom.Pose{X: 5, Y: 5, Yaw: math.Pi / 2}
	path, ok := Solve(start, goal, 3.0)
	require.True(t, ok)

	path.Sample(start, 0.05)

	sampled := 0.0
	for i := 1; i < len(path.XList); i++ {
		dx := path.XList[i] - path.XList[i-1]
		dy := path.YList[i] - path.YList[i-1]
		sampled += math.Hypot(dx, dy)
	}
	require.InDelta(t, sampled, path.TotalLength, 1e-6)
}

func TestMod2piStaysInRange(t *testing.T) {
	for _, x := range []float64{0, math.Pi, -math.Pi, 3 * math.Pi, -3 * math.Pi, 0.001, -0.001} {
		v := mod2pi(x)
		require.GreaterOrEqual(t, v, -math.Pi-1e-9)
		require.LessOrEqual(t, v, math.Pi+1e-9)
	}
}
