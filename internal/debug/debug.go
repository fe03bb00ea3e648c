package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelview/internal/voxel"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays: FPS and heap use at the top right, and the
// voxelization summary (voxel size, triangle and voxel counts) at the top
// left. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool

	stats    voxel.Stats
	hasStats bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
	statsText    string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetStats records the summary of the latest voxelization pass for display.
func (d *Debug) SetStats(s voxel.Stats) {
	d.stats = s
	d.hasStats = true
	d.statsText = fmt.Sprintf("voxel size %.5f  |  %d triangles  ->  %d voxels",
		s.VoxelSize, s.Triangles, s.Voxels)
}

// Draw renders any enabled overlays. Call after the scene and console in
// the draw loop. Text is recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount%updateInterval) == 0 || d.lastFpsText == ""

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		w := rl.MeasureText(d.lastFpsText, fontSize)
		rl.DrawText(d.lastFpsText, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		w := rl.MeasureText(d.lastMemText, fontSize)
		rl.DrawText(d.lastMemText, screenW-w-padding, y, fontSize, rl.Green)
	}

	if d.ShowStats && d.hasStats {
		rl.DrawText(d.statsText, padding, padding, fontSize, rl.RayWhite)
	}
}
