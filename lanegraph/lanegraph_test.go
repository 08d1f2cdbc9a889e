package lanegraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniformAlwaysOne(t *testing.T) {
	var u Uniform
	require.Equal(t, 1.0, u.MovementWeight(0, 0))
	require.Equal(t, 1.0, u.MovementWeight(100, -5))
}

func TestSparseDefaultsToOne(t *testing.T) {
	s := NewSparse()
	require.Equal(t, 1.0, s.MovementWeight(3, 3))
}

func TestSparseSetEdgesOverridesCoveredCells(t *testing.T) {
	s := NewSparse()
	s.SetEdges([]Edge{
		{Cells: []struct{ X, Y int }{{1, 1}, {2, 2}}, Weight: 0.5},
	})
	require.Equal(t, 0.5, s.MovementWeight(1, 1))
	require.Equal(t, 0.5, s.MovementWeight(2, 2))
	require.Equal(t, 1.0, s.MovementWeight(3, 3), "uncovered cells keep the default weight")
}

func TestSparseSetEdgesReplacesPriorContents(t *testing.T) {
	s := NewSparse()
	s.SetEdges([]Edge{{Cells: []struct{ X, Y int }{{1, 1}}, Weight: 0.2}})
	s.SetEdges([]Edge{{Cells: []struct{ X, Y int }{{5, 5}}, Weight: 0.9}})
	require.Equal(t, 1.0, s.MovementWeight(1, 1), "a later SetEdges must clear earlier overrides")
	require.Equal(t, 0.9, s.MovementWeight(5, 5))
}

func TestSparseResetClearsOverrides(t *testing.T) {
	s := NewSparse()
	s.SetEdges([]Edge{{Cells: []struct{ X, Y int }{{1, 1}}, Weight: 0.2}})
	s.Reset()
	require.Equal(t, 1.0, s.MovementWeight(1, 1))
}

func TestNilSparseIsUniform(t *testing.T) {
	var s *Sparse
	require.Equal(t, 1.0, s.MovementWeight(0, 0))
}
