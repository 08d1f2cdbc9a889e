package gridmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetAndAtRoundTrip(t *testing.T) {
	g := NewDense[float64](5)
	g.Set(2, 3, 7.5)
	require.Equal(t, 7.5, g.At(2, 3))
	require.Zero(t, g.At(0, 0))
}

func TestInBounds(t *testing.T) {
	g := NewDense[uint8](4)
	require.True(t, g.InBounds(0, 0))
	require.True(t, g.InBounds(3, 3))
	require.False(t, g.InBounds(4, 0))
	require.False(t, g.InBounds(-1, 0))
}

func TestFillSetsEveryCell(t *testing.T) {
	g := NewDense[uint8](3)
	g.Fill(9)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			require.EqualValues(t, 9, g.At(x, y))
		}
	}
}

func TestRawReflectsSets(t *testing.T) {
	g := NewDense[float64](2)
	g.Set(1, 1, 4)
	raw := g.Raw()
	require.Equal(t, 4.0, raw[g.Index(1, 1)])
}

func TestResetGrowsAndClearsGrid(t *testing.T) {
	g := NewDense[uint8](2)
	g.Fill(5)
	g.Reset(4)
	require.Equal(t, 4, g.Dim)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			require.EqualValues(t, 0, g.At(x, y))
		}
	}
}

func TestResetShrinksAndClearsGrid(t *testing.T) {
	g := NewDense[uint8](4)
	g.Fill(5)
	g.Reset(2)
	require.Equal(t, 2, g.Dim)
	require.EqualValues(t, 0, g.At(1, 1))
}
