// Package config loads the planner's YAML configuration. Every key listed
// in spec.md section 6 is required; a config file missing any one of them
// fails to load rather than silently falling back to a zero value, since a
// zero steering cost or zero timeout would silently change planner
// behavior instead of surfacing a misconfiguration.
package config

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// WaypointType discriminates the two non-analytic success modes the
// Hybrid A* core can be run in.
type WaypointType int

const (
	// WaypointApprox succeeds when the node is within APPROX_GOAL_DIST/ANGLE
	// of the goal.
	WaypointApprox WaypointType = iota
	// WaypointHeurRed succeeds once the guidance heuristic has dropped by
	// WAYPOINT_DIST since the ego node.
	WaypointHeurRed
	// WaypointNone adds no heuristic-reduction shortcut; it shares
	// HeurRed's choice of heuristic map. As with every type, a search run
	// without analytic expansion still ends on the approximate-goal check.
	WaypointNone
)

// Config mirrors every YAML key spec.md section 6 requires, plus the
// search-cost weights read by the A* layer.
type Config struct {
	GMRes      float64 `yaml:"GM_RES"`
	PlannerRes float64 `yaml:"PLANNER_RES"`
	// YawRes is the yaw bin width in degrees, not a bin count: 360/YawRes
	// bins cover the full circle, matching the original's
	// astar_yaw_dim_ = 360 / YAW_RES.
	YawRes                   int     `yaml:"YAW_RES"`
	OnlyForward              bool    `yaml:"ONLY_FORWARD"`
	MaxBrakeAcc              float64 `yaml:"MAX_BRAKE_ACC"`
	ApproxGoalDist           float64 `yaml:"APPROX_GOAL_DIST"`
	ApproxGoalAngle          float64 `yaml:"APPROX_GOAL_ANGLE"`
	WaypointDist             int     `yaml:"WAYPOINT_DIST"`
	WaypointType             int     `yaml:"WAYPOINT_TYPE"`
	DistThreshAnalyticM      float64 `yaml:"DIST_THRESH_ANALYTIC_M"`
	RS2ndSteer               float64 `yaml:"RS_2ND_STEER"`
	ExtraSteerCostAnalytic   float64 `yaml:"EXTRA_STEER_COST_ANALYTIC"`
	MaxExtraNodesHAStar      int     `yaml:"MAX_EXTRA_NODES_HASTAR"`
	TurnOnPointAngle         float64 `yaml:"TURN_ON_POINT_ANGLE"`
	TurnOnPointHorizon       float64 `yaml:"TURN_ON_POINT_HORIZON"`
	YawResColl               float64 `yaml:"YAW_RES_COLL"`
	RearAxisCost             float64 `yaml:"REAR_AXIS_COST"`
	TimeoutMS                int     `yaml:"TIMEOUT"`
	MotionResMin             float64 `yaml:"MOTION_RES_MIN"`
	MotionResMax             float64 `yaml:"MOTION_RES_MAX"`
	InterpRes                float64 `yaml:"INTERP_RES"`
	RAFreq                   int     `yaml:"RA_FREQ"`
	NonHNoObsPatchDim        int     `yaml:"NON_H_NO_OBS_PATCH_DIM"`
	LogLevelHAStar           string  `yaml:"LOG_LEVEL_HASTAR"`

	AstarMovementCost     float64 `yaml:"astar_movement_cost"`
	AstarProxCost         float64 `yaml:"astar_prox_cost"`
	AstarLaneMovementCost float64 `yaml:"astar_lane_movement_cost"`
	VoronoiAlpha          float64 `yaml:"voronoi_alpha"`
	VoronoiDOMax          float64 `yaml:"voronoi_do_max"`
	VoronoiDOMin          float64 `yaml:"voronoi_do_min"`
	UnknownCostW          float64 `yaml:"unknown_cost_w"`
	// HDistCost scales the blended h_2D/h_NHWO heuristic (h_dist_cost in
	// spec.md section 4.6); distinct from AstarMovementCost, which is copied
	// into astar.Grid.MovementCost. The 2D expansion's step cost is the step
	// length times the lane graph's weight and does not read
	// AstarMovementCost or AstarLaneMovementCost.
	HDistCost float64 `yaml:"h_dist_cost"`

	// Edge-cost weights for the Hybrid A* core's g_edge formula.
	SwitchCost      float64 `yaml:"switch_cost"`
	SteerCost       float64 `yaml:"steer_cost"`
	SteerChangeCost float64 `yaml:"steer_change_cost"`
	BackCost        float64 `yaml:"back_cost"`
}

// requiredKeys lists every top-level YAML key that must be present. Kept
// as a literal slice (rather than reflecting over Config's yaml tags) so
// the required set is visible at a glance and independent of struct layout.
var requiredKeys = []string{
	"GM_RES", "PLANNER_RES", "YAW_RES", "ONLY_FORWARD", "MAX_BRAKE_ACC",
	"APPROX_GOAL_DIST", "APPROX_GOAL_ANGLE", "WAYPOINT_DIST", "WAYPOINT_TYPE",
	"DIST_THRESH_ANALYTIC_M", "RS_2ND_STEER", "EXTRA_STEER_COST_ANALYTIC",
	"MAX_EXTRA_NODES_HASTAR", "TURN_ON_POINT_ANGLE", "TURN_ON_POINT_HORIZON",
	"YAW_RES_COLL", "REAR_AXIS_COST", "TIMEOUT", "MOTION_RES_MIN",
	"MOTION_RES_MAX", "INTERP_RES", "RA_FREQ", "NON_H_NO_OBS_PATCH_DIM",
	"LOG_LEVEL_HASTAR",
	"astar_movement_cost", "astar_prox_cost", "astar_lane_movement_cost",
	"voronoi_alpha", "voronoi_do_max", "voronoi_do_min", "unknown_cost_w",
	"h_dist_cost",
	"switch_cost", "steer_cost", "steer_change_cost", "back_cost",
}

// YawDim returns the number of discrete yaw bins covering the full circle:
// 360/YawRes, since YawRes is the bin width in degrees.
func (c *Config) YawDim() int {
	return 360 / c.YawRes
}

// YawStepRad returns the angular width of one yaw bin in radians.
func (c *Config) YawStepRad() float64 {
	return float64(c.YawRes) * math.Pi / 180
}

// Load reads and validates a planner config from path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading planner config")
	}
	return Parse(raw)
}

// Parse validates and decodes raw YAML bytes into a Config.
func Parse(raw []byte) (*Config, error) {
	var asMap map[string]interface{}
	if err := yaml.Unmarshal(raw, &asMap); err != nil {
		return nil, errors.Wrap(err, "parsing planner config yaml")
	}
	var missing []string
	for _, key := range requiredKeys {
		if _, ok := asMap[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Errorf("planner config missing required keys: %v", missing)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrap(err, "decoding planner config")
	}
	return &cfg, nil
}
