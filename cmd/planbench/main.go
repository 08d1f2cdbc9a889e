// Command planbench loads a YAML scenario (occupancy patch, vehicle
// geometry, start/goal poses, planner config) and runs one Hybrid A* plan
// end to end, printing the resulting path. It exists to exercise the
// pipeline outside of package tests, the way the teacher corpus ships a
// thin cmd/ wiring layer next to its libraries rather than only tests.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/astar"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/collision"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/config"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/gridtf"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/hybridastar"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/lanegraph"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/logging"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/nhwo"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/planpath"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/postprocess"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/vehicle"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/voronoi"
)

func main() {
	scenarioPath := flag.String("scenario", "", "path to a scenario YAML file")
	smooth := flag.Bool("smooth", false, "run the gradient-descent smoother after interpolation")
	flag.Parse()

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "usage: planbench -scenario scenario.yaml")
		os.Exit(2)
	}

	if err := run(*scenarioPath, *smooth); err != nil {
		fmt.Fprintln(os.Stderr, "planbench:", err)
		os.Exit(1)
	}
}

func run(scenarioPath string, smooth bool) error {
	sc, err := loadScenario(scenarioPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(sc.ConfigPath)
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevelHAStar)

	grid := astar.NewGrid(sc.Dim, lanegraph.Uniform{})
	grid.MovementCost = cfg.AstarMovementCost
	grid.ProxCost = cfg.AstarProxCost
	grid.LaneMovementCost = cfg.AstarLaneMovementCost
	grid.UnknownCostW = cfg.UnknownCostW
	for _, o := range sc.Obstacles {
		if grid.AstarGrid.InBounds(o.X, o.Y) {
			grid.AstarGrid.Set(o.X, o.Y, 1)
		}
	}

	field := voronoi.Build(grid.AstarGrid, voronoi.Params{
		Alpha:        cfg.VoronoiAlpha,
		DOMax:        cfg.VoronoiDOMax,
		DOMin:        cfg.VoronoiDOMin,
		MotionResMin: cfg.MotionResMin,
		MotionResMax: cfg.MotionResMax,
	})
	for y := 0; y < sc.Dim; y++ {
		for x := 0; x < sc.Dim; x++ {
			grid.HProxArr.Set(x, y, field.Potential.At(x, y))
		}
	}

	tf := gridtf.New(cfg.GMRes, cfg.PlannerRes, geom.Point{})
	coll := collision.NewGridChecker(grid.AstarGrid, tf)

	veh := vehicle.Params{
		Wheelbase:    sc.Vehicle.Wheelbase,
		MaxSteer:     sc.Vehicle.MaxSteer,
		MaxCurvature: sc.Vehicle.MaxCurvature,
		CanPivot:     sc.Vehicle.CanPivot,
		FrontRight:   sc.Vehicle.FrontRight.toGeom(),
		FrontLeft:    sc.Vehicle.FrontLeft.toGeom(),
		RearRight:    sc.Vehicle.RearRight.toGeom(),
		RearLeft:     sc.Vehicle.RearLeft.toGeom(),
	}

	maxRadius := 1 / veh.MaxCurvature
	cache, err := nhwo.Load(sc.ShareDir, cfg.YawDim(), cfg.NonHNoObsPatchDim, cfg.PlannerRes, cfg.MotionResMin, maxRadius, log)
	if err != nil {
		return err
	}

	core := hybridastar.Initialize(cfg, grid, field, cache, tf, veh, coll, log)

	start := toNode(sc.Start.toGeom(), tf, cfg.YawStepRad())
	goal := toNode(sc.Goal.toGeom(), tf, cfg.YawStepRad())

	core.RecalculateEnv(goal, start)

	path, err := core.Plan(start, start, goal, true, true)
	if err != nil {
		return err
	}

	if path.Len() > 1 {
		path = postprocess.Interpolate(path, cfg.InterpRes)
		if smooth {
			s := &postprocess.Smoother{
				Field: field, Res: cfg.PlannerRes,
				WeightObstacle: 1, WeightSmoothness: 1, WeightCurvature: 1, WeightVoronoi: 1,
				MaxIterations: 50, MaxStep: cfg.PlannerRes / 4,
			}
			path = s.Smooth(path)
		}
	}

	fmt.Printf("path: %d samples, cost %.3f\n", path.Len(), path.Cost)
	for i := range path.XList {
		fmt.Printf("%6.2f %6.2f %6.3f dir=%d\n", path.XList[i], path.YList[i], path.YawList[i], path.DirList[i])
	}
	return nil
}

func toNode(p geom.Pose, tf *gridtf.Transform, yawStep float64) hybridastar.NodeHybrid {
	yawIdx := int(math.Round(geom.NormalizedYaw(p.Yaw) / yawStep))
	return hybridastar.NodeHybrid{
		XIndex: tf.ContToGridIndex(p.X), YIndex: tf.ContToGridIndex(p.Y), YawIndex: yawIdx,
		Direction:   1,
		DirList:     []int{1},
		XList:       []float64{p.X},
		YList:       []float64{p.Y},
		YawList:     []float64{p.Yaw},
		Types:       []planpath.SegmentType{planpath.Unknown},
		ParentIndex: -1,
	}
}
