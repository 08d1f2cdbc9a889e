package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const fullYAML = `
GM_RES: 0.1
PLANNER_RES: 0.5
YAW_RES: 5
ONLY_FORWARD: false
MAX_BRAKE_ACC: 3.0
APPROX_GOAL_DIST: 0.5
APPROX_GOAL_ANGLE: 0.1
WAYPOINT_DIST: 5
WAYPOINT_TYPE: 1
DIST_THRESH_ANALYTIC_M: 10.0
RS_2ND_STEER: 0.5
EXTRA_STEER_COST_ANALYTIC: 1.0
MAX_EXTRA_NODES_HASTAR: 500
TURN_ON_POINT_ANGLE: 1.2
TURN_ON_POINT_HORIZON: 2.0
YAW_RES_COLL: 0.05
REAR_AXIS_COST: 3.0
TIMEOUT: 1000
MOTION_RES_MIN: 0.2
MOTION_RES_MAX: 1.0
INTERP_RES: 0.5
RA_FREQ: 4
NON_H_NO_OBS_PATCH_DIM: 51
LOG_LEVEL_HASTAR: info
astar_movement_cost: 1.0
astar_prox_cost: 5.0
astar_lane_movement_cost: 1.0
voronoi_alpha: 1.0
voronoi_do_max: 5.0
voronoi_do_min: 0.5
unknown_cost_w: 2.0
h_dist_cost: 1.0
switch_cost: 10.0
steer_cost: 1.0
steer_change_cost: 1.0
back_cost: 2.0
`

func TestParseFullConfig(t *testing.T) {
	cfg, err := Parse([]byte(fullYAML))
	require.NoError(t, err)
	require.Equal(t, 0.1, cfg.GMRes)
	require.Equal(t, 5, cfg.YawRes)
	require.Equal(t, 72, cfg.YawDim())
	require.Equal(t, "info", cfg.LogLevelHAStar)
	require.Equal(t, 10.0, cfg.SwitchCost)
	require.Equal(t, 2.0, cfg.BackCost)
	require.Equal(t, 1.0, cfg.HDistCost)
}

func TestYawDimAndYawStepRadMatchDegreesPerBin(t *testing.T) {
	cfg := &Config{YawRes: 5}
	require.Equal(t, 72, cfg.YawDim())
	require.InDelta(t, 0.08726646, cfg.YawStepRad(), 1e-6)
}

func TestParseMissingKeyFails(t *testing.T) {
	_, err := Parse([]byte("GM_RES: 0.1\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing required keys")
}

func TestParseInvalidYAMLFails(t *testing.T) {
	_, err := Parse([]byte("not: [valid"))
	require.Error(t, err)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
}
