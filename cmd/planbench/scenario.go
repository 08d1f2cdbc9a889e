package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
)

// scenario is a self-contained planner run: where the planner config and
// NHWO cache directory live, the occupancy patch's obstacles, the vehicle
// geometry, and a start/goal pose pair. Loading one of these end to end is
// what cmd/planbench exists for — a thin wiring layer, not a library.
type scenario struct {
	ConfigPath string `yaml:"config_path"`
	ShareDir   string `yaml:"share_dir"`
	Dim        int    `yaml:"dim"`

	Obstacles []struct {
		X, Y int
	} `yaml:"obstacles"`

	Start pose3 `yaml:"start"`
	Goal  pose3 `yaml:"goal"`

	Vehicle vehicleCfg `yaml:"vehicle"`
}

type pose3 struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Yaw float64 `yaml:"yaw"`
}

func (p pose3) toGeom() geom.Pose { return geom.Pose{X: p.X, Y: p.Y, Yaw: p.Yaw} }

type vehicleCfg struct {
	Wheelbase    float64 `yaml:"wheelbase"`
	MaxSteer     float64 `yaml:"max_steer"`
	MaxCurvature float64 `yaml:"max_curvature"`
	CanPivot     bool    `yaml:"can_pivot"`

	FrontRight point2 `yaml:"front_right"`
	FrontLeft  point2 `yaml:"front_left"`
	RearRight  point2 `yaml:"rear_right"`
	RearLeft   point2 `yaml:"rear_left"`
}

type point2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p point2) toGeom() geom.Point { return geom.Point{X: p.X, Y: p.Y} }

func loadScenario(path string) (*scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scenario file")
	}
	var s scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, errors.Wrap(err, "parsing scenario yaml")
	}
	if s.Dim <= 0 {
		return nil, errors.New("scenario: dim must be positive")
	}
	return &s, nil
}
