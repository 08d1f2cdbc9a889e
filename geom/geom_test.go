package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	a := Point{X: 3, Y: 4}
	b := Point{X: 1, Y: 2}
	require.Equal(t, Point{X: 2, Y: 2}, a.Sub(b))
	require.Equal(t, Point{X: 4, Y: 6}, a.Add(b))
	require.InDelta(t, 5, Point{}.Dist(a), 1e-9)
}

func TestPointRotated(t *testing.T) {
	p := Point{X: 1, Y: 0}
	r := p.Rotated(math.Cos(math.Pi/2), math.Sin(math.Pi/2))
	require.InDelta(t, 0, r.X, 1e-9)
	require.InDelta(t, 1, r.Y, 1e-9)
}

func TestPosePoint(t *testing.T) {
	p := Pose{X: 1, Y: 2, Yaw: 0.5}
	require.Equal(t, Point{X: 1, Y: 2}, p.Point())
}

func TestNormalizedYawStaysInRange(t *testing.T) {
	require.InDelta(t, 0, NormalizedYaw(2*math.Pi), 1e-9)
	require.InDelta(t, math.Pi, NormalizedYaw(math.Pi), 1e-9)
	require.InDelta(t, -math.Pi/2, NormalizedYaw(3*math.Pi/2), 1e-9)
}

func TestSignedAngleDiff(t *testing.T) {
	require.InDelta(t, math.Pi/2, SignedAngleDiff(math.Pi, math.Pi/2), 1e-9)
	require.InDelta(t, -math.Pi/2, SignedAngleDiff(math.Pi/2, math.Pi), 1e-9)
	require.InDelta(t, 0.1, SignedAngleDiff(0.05, -0.05), 1e-9)
}

func TestAngleDiffIsAbsolute(t *testing.T) {
	require.InDelta(t, math.Pi/2, AngleDiff(math.Pi, math.Pi/2), 1e-9)
	require.InDelta(t, math.Pi/2, AngleDiff(math.Pi/2, math.Pi), 1e-9)
}

func TestConstrainZero2Pi(t *testing.T) {
	require.InDelta(t, 0, ConstrainZero2Pi(0), 1e-9)
	require.InDelta(t, math.Pi, ConstrainZero2Pi(-math.Pi), 1e-9)
	require.InDelta(t, 0.5, ConstrainZero2Pi(2*math.Pi+0.5), 1e-9)
}

func TestAnglesApproxEqual02Pi(t *testing.T) {
	require.True(t, AnglesApproxEqual02Pi(0.01, 2*math.Pi-0.01, 0.05))
	require.False(t, AnglesApproxEqual02Pi(0, math.Pi, 0.1))
}
