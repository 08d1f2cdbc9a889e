package postprocess

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/planpath"
)

func straightPath() *planpath.Path {
	return &planpath.Path{
		XList:   []float64{0, 1, 2, 2, 2, 3, 4},
		YList:   []float64{0, 0, 0, 0, 0, 0, 0},
		YawList: []float64{0, 0, 0, 0, 0, 0, 0},
		DirList: []int{1, 1, 1, -1, -1, -1, -1},
		Types: []planpath.SegmentType{
			planpath.HAStar, planpath.HAStar, planpath.HAStar,
			planpath.ReedsShepp, planpath.ReedsShepp, planpath.ReedsShepp, planpath.ReedsShepp,
		},
	}
}

func TestSplitBreaksOnDirectionChange(t *testing.T) {
	segs := Split(straightPath())
	require.Len(t, segs, 2)
	require.Equal(t, 1, segs[0].Dir)
	require.Equal(t, -1, segs[1].Dir)
	require.Equal(t, planpath.HAStar, segs[0].Type)
	require.Equal(t, planpath.ReedsShepp, segs[1].Type)
	require.Len(t, segs[0].XList, 3)
	require.Len(t, segs[1].XList, 4)
}

func TestSplitBreaksOnTypeChangeEvenWithSameDirection(t *testing.T) {
	p := &planpath.Path{
		XList:   []float64{0, 1, 2, 3},
		YList:   []float64{0, 0, 0, 0},
		YawList: []float64{0, 0, 0, 0},
		DirList: []int{1, 1, 1, 1},
		Types:   []planpath.SegmentType{planpath.HAStar, planpath.HAStar, planpath.RearAxis, planpath.RearAxis},
	}
	segs := Split(p)
	require.Len(t, segs, 2)
	require.Equal(t, planpath.HAStar, segs[0].Type)
	require.Equal(t, planpath.RearAxis, segs[1].Type)
}

func TestSplitEmptyPath(t *testing.T) {
	require.Nil(t, Split(&planpath.Path{}))
}
