// Package nhwo precomputes and serves the non-holonomic-without-obstacles
// heuristic: a local lookup table of Reeds-Shepp path lengths from every
// (yaw, dy, dx) offset in a patch to a canonical centered goal at yaw
// zero. It is only valid locally — queries outside the patch return zero,
// deferring to the 2D A* heuristic instead.
package nhwo

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Forrest-Z/guided-extended-hybrid-astar/geom"
	"github.com/Forrest-Z/guided-extended-hybrid-astar/reedsshepp"
)

const fileName = "nonh_noobs.data"

// ErrFileMissing marks a cache blob that wasn't found and needs
// regeneration.
var ErrFileMissing = errors.New("nhwo: cache file missing")

// Cache is the 3D [yaw][y][x] tensor of Reeds-Shepp lengths, stored flat
// at index (yaw*PatchDim + y)*PatchDim + x.
type Cache struct {
	YawDim, PatchDim int
	AstarRes         float64
	MotionResMin     float64
	MaxRadius        float64
	data             []float64
}

func (c *Cache) index(yawIdx, y, x int) int {
	return (yawIdx*c.PatchDim+y)*c.PatchDim + x
}

// Load memoizes the NHWO tensor: reads share/nonh_noobs.data if present,
// otherwise computes it via the Reeds-Shepp kernel and writes it out.
func Load(shareDir string, yawDim, patchDim int, astarRes, motionResMin, maxRadius float64, log *zap.SugaredLogger) (*Cache, error) {
	c := &Cache{
		YawDim: yawDim, PatchDim: patchDim,
		AstarRes: astarRes, MotionResMin: motionResMin, MaxRadius: maxRadius,
		data: make([]float64, yawDim*patchDim*patchDim),
	}

	path := filepath.Join(shareDir, fileName)
	if raw, err := os.ReadFile(path); err == nil {
		if len(raw) != len(c.data)*8 {
			return nil, errors.Errorf("nhwo: cache file %s has %d bytes, want %d", path, len(raw), len(c.data)*8)
		}
		for i := range c.data {
			bits := binary.LittleEndian.Uint64(raw[i*8 : i*8+8])
			c.data[i] = math.Float64frombits(bits)
		}
		log.Debugw("loaded nhwo cache", "path", path)
		return c, nil
	}

	log.Infow("computing nhwo cache", "yawDim", yawDim, "patchDim", patchDim)
	c.compute()

	if err := c.save(path); err != nil {
		log.Warnw("failed to persist nhwo cache", "err", err)
	}
	return c, nil
}

func (c *Cache) compute() {
	goalX := c.PatchDim / 2
	goalY := goalX
	goal := geom.Pose{X: float64(goalX) * c.AstarRes, Y: float64(goalY) * c.AstarRes, Yaw: 0}

	// yawIdx measures start yaw relative to the goal's, with yawIdx == 0
	// meaning zero relative yaw — the same convention Query uses when it
	// looks up by (start.YawIndex - goal.YawIndex) mod YawDim.
	yawStepDeg := 360.0 / float64(c.YawDim)
	for yawIdx := 0; yawIdx < c.YawDim; yawIdx++ {
		angle := float64(yawIdx) * yawStepDeg
		angleRad := angle * math.Pi / 180
		for xi := 0; xi < c.PatchDim; xi++ {
			for yi := 0; yi < c.PatchDim; yi++ {
				if xi == goalX && yi == goalY && angleRad == 0 {
					c.data[c.index(yawIdx, yi, xi)] = 0
					continue
				}
				start := geom.Pose{X: float64(xi) * c.AstarRes, Y: float64(yi) * c.AstarRes, Yaw: angleRad}
				path, ok := reedsshepp.Solve(start, goal, c.MaxRadius)
				length := 0.0
				if ok {
					path.Sample(start, c.MotionResMin)
					length = path.TotalLength
				}
				c.data[c.index(yawIdx, yi, xi)] = length
			}
		}
	}
}

func (c *Cache) save(path string) error {
	buf := make([]byte, len(c.data)*8)
	for i, v := range c.data {
		binary.LittleEndian.PutUint64(buf[i*8:i*8+8], math.Float64bits(v))
	}
	return os.WriteFile(path, buf, 0o644)
}

// Query translates so that goal sits at the patch center, rotates start
// around goal by -goal.Yaw, and looks up the nearest (yaw, y, x) bin. It
// returns 0 if the translated start falls outside the patch — the
// heuristic is only locally valid.
func (c *Cache) Query(start, goal geom.DiscPose, astarRes float64) float64 {
	dx := float64(start.XIndex - goal.XIndex)
	dy := float64(start.YIndex - goal.YIndex)

	goalYaw := float64(goal.YawIndex) * (2 * math.Pi / float64(c.YawDim))
	cosA, sinA := math.Cos(-goalYaw), math.Sin(-goalYaw)
	rx := dx*cosA - dy*sinA
	ry := dx*sinA + dy*cosA

	half := float64(c.PatchDim) / 2
	if math.Hypot(rx, ry) > half {
		return 0
	}

	px := int(math.Round(rx)) + c.PatchDim/2
	py := int(math.Round(ry)) + c.PatchDim/2
	if px < 0 || px >= c.PatchDim || py < 0 || py >= c.PatchDim {
		return 0
	}

	yawDiffIdx := start.YawIndex - goal.YawIndex
	yawDiffIdx = ((yawDiffIdx % c.YawDim) + c.YawDim) % c.YawDim

	return c.data[c.index(yawDiffIdx, py, px)]
}
