package nhwo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func TestLoadComputesAndPersists(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(dir, 8, 11, 1.0, 0.2, 5.0, testLogger())
	require.NoError(t, err)
	require.Equal(t, 8, c.YawDim)
	require.Equal(t, 11, c.PatchDim)

	blobPath := filepath.Join(dir, fileName)
	_, statErr := os.Stat(blobPath)
	require.NoError(t, statErr, "Load must persist the computed cache to disk")

	c2, err := Load(dir, 8, 11, 1.0, 0.2, 5.0, testLogger())
	require.NoError(t, err)
	require.Equal(t, c.data, c2.data, "a second Load must read back the same cache it just wrote")
}

func TestQueryOutsidePatchIsZero(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(dir, 8, 11, 1.0, 0.2, 5.0, testLogger())
	require.NoError(t, err)

	goal := geom.DiscPose{XIndex: 5, YIndex: 5, YawIndex: 0}
	far := geom.DiscPose{XIndex: 500, YIndex: 500, YawIndex: 0}
	require.Zero(t, c.Query(far, goal, 1.0))
}

func TestQueryWithinPatchMatchesCachedBin(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(dir, 8, 11, 1.0, 0.2, 5.0, testLogger())
	require.NoError(t, err)

	goal := geom.DiscPose{XIndex: 5, YIndex: 5, YawIndex: 0}
	start := geom.DiscPose{XIndex: 3, YIndex: 5, YawIndex: 0}

	got := c.Query(start, goal, 1.0)
	require.Equal(t, c.data[c.index(0, 5, 3)], got, "same-yaw-index query must read the zero-relative-yaw bin at the untranslated offset")
	require.InDelta(t, 2.0, got, 1e-6, "start sits 2m directly behind goal with matching heading, so the cached length is a straight run")
}
