package main

import (
	"fmt"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelview/internal/appconfig"
	"voxelview/internal/commands"
	"voxelview/internal/console"
	"voxelview/internal/debug"
	"voxelview/internal/graphics"
	"voxelview/internal/logger"
	"voxelview/internal/model"
	"voxelview/internal/render"
	"voxelview/internal/scene"
	"voxelview/internal/server"
	"voxelview/internal/voxel"
)

// request is one voxelization job for the worker goroutine.
type request struct {
	meshes   []voxel.SubMesh
	settings voxel.Settings
}

// result is a completed pass, handed back to the frame loop.
type result struct {
	meshes []*voxel.BoundaryMesh
	stats  voxel.Stats
	err    error
}

// app owns the viewer state. Voxelization runs on a single worker goroutine
// so the frame loop never blocks on a pass; both channels hold at most one
// entry and newer requests/results displace older ones (last-request-wins).
type app struct {
	log      *logger.Logger
	prefs    appconfig.Prefs
	settings voxel.Settings

	subMeshes []voxel.SubMesh
	requests  chan request
	results   chan result

	scn  *scene.Scene
	rend *render.Renderer
	dbg  *debug.Debug
	srv  *server.Server
}

func main() {
	log := logger.New()
	prefs, err := appconfig.Load()
	if err != nil {
		log.Logf("preferences unreadable, using defaults: %v", err)
	}

	def, err := render.LoadMaterialDef(render.MaterialDefPath)
	if err != nil {
		log.Logf("material definition rejected, using default: %v", err)
		def = render.DefaultMaterialDef()
	}

	a := &app{
		log:   log,
		prefs: prefs,
		settings: voxel.Settings{
			OctreeDepth: prefs.OctreeDepth,
			Resolution:  prefs.Resolution,
			Shrink:      prefs.Shrink,
		},
		requests: make(chan request, 1),
		results:  make(chan result, 1),
		scn:      scene.New(),
		rend:     render.New(def),
		dbg:      debug.New(),
	}
	a.scn.GridVisible = prefs.GridVisible
	a.dbg.ShowFPS = prefs.ShowFPS
	a.dbg.ShowStats = prefs.ShowStats

	if prefs.PreviewAddr != "" {
		a.srv = server.New(prefs.PreviewAddr, log)
		a.srv.Start()
	}

	go a.worker()

	con := console.New(log, a.registerCommands())

	// Model loading goes through raylib and needs the window, so the first
	// load is deferred into the first frame.
	loadedInitial := false
	update := func() {
		if !loadedInitial {
			loadedInitial = true
			a.loadModel(a.prefs.Model)
		}
		con.Update()
		if !con.IsOpen() {
			a.scn.Update()
		}
		a.drainResults()
	}
	draw := func() {
		rl.BeginMode3D(a.scn.Camera)
		a.scn.DrawWorld()
		a.rend.Draw()
		rl.EndMode3D()
		con.Draw()
		a.dbg.Draw()
	}
	graphics.Run("Model Voxelization", update, draw)
}

// worker consumes voxelization requests one at a time. A finished pass
// replaces any result the frame loop has not picked up yet.
func (a *app) worker() {
	for req := range a.requests {
		meshes, stats, err := voxel.Voxelize(req.meshes, req.settings)
		select {
		case <-a.results:
		default:
		}
		a.results <- result{meshes: meshes, stats: stats, err: err}
	}
}

// requestVoxelize queues a pass over the current model with the current
// settings, displacing any not-yet-started request.
func (a *app) requestVoxelize() {
	req := request{meshes: a.subMeshes, settings: a.settings}
	select {
	case a.requests <- req:
	default:
		select {
		case <-a.requests:
		default:
		}
		a.requests <- req
	}
}

// drainResults applies a completed pass, if any, without blocking the frame.
func (a *app) drainResults() {
	select {
	case res := <-a.results:
		if res.err != nil {
			a.log.Logf("voxelization failed: %v", res.err)
			return
		}
		a.rend.SetMeshes(res.meshes)
		a.dbg.SetStats(res.stats)
		if a.srv != nil {
			a.srv.Publish(res.meshes, res.stats)
		}
		a.log.Logf("voxelization complete: voxel size %.6f, %d triangles, %d voxels",
			res.stats.VoxelSize, res.stats.Triangles, res.stats.Voxels)
	default:
	}
}

// loadModel resolves a model reference (file path or "builtin:<name>"),
// makes it current, and kicks off a pass. On failure the previous model and
// result stay in place.
func (a *app) loadModel(ref string) {
	meshes, err := model.Resolve(ref)
	if err != nil {
		a.log.Logf("load failed: %v", err)
		return
	}
	a.subMeshes = meshes
	a.prefs.Model = ref
	a.log.Logf("model loaded: %s (%d sub-meshes)", ref, len(meshes))
	a.requestVoxelize()
}

// applySettings validates candidate settings before adopting them, so a bad
// depth or size is reported without losing the current result.
func (a *app) applySettings(s voxel.Settings) error {
	size, err := s.VoxelSize()
	if err != nil {
		return err
	}
	a.settings = s
	a.prefs.OctreeDepth = s.OctreeDepth
	a.prefs.Resolution = s.Resolution
	a.prefs.Shrink = s.Shrink
	a.log.Logf("voxel size now %.6f", size)
	a.requestVoxelize()
	return nil
}

func (a *app) registerCommands() *commands.Registry {
	reg := commands.NewRegistry()

	reg.Register("help", "list commands", nil, func([]string) error {
		for _, u := range reg.Usages() {
			a.log.Log(u)
		}
		return nil
	})

	reg.Register("load", "load <path>: load a model file and voxelize it", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: load <path>")
		}
		a.loadModel(args[0])
		return nil
	})

	reg.Register("builtin", "builtin <name>: load a builtin model (cube, pyramid, steps)", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: builtin <name>")
		}
		a.loadModel(model.BuiltinPrefix + args[0])
		return nil
	})

	reg.Register("depth", "depth <n>: voxelize at octree depth n (voxel size 2/2^n)", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: depth <n>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("depth: %v", err)
		}
		s := a.settings
		s.OctreeDepth = n
		s.Resolution = 0
		return a.applySettings(s)
	})

	reg.Register("size", "size <edge>: voxelize at a direct voxel edge length", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: size <edge>")
		}
		v, err := strconv.ParseFloat(args[0], 32)
		if err != nil {
			return fmt.Errorf("size: %v", err)
		}
		s := a.settings
		s.Resolution = float32(v)
		return a.applySettings(s)
	})

	reg.Register("shrink", "shrink <f>: scale faces by f (seams when < 1)", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: shrink <f>")
		}
		v, err := strconv.ParseFloat(args[0], 32)
		if err != nil || v <= 0 || v > 1 {
			return fmt.Errorf("shrink must be in (0, 1]")
		}
		s := a.settings
		s.Shrink = float32(v)
		return a.applySettings(s)
	})

	reg.Register("grid", "grid: toggle the reference grid", nil, func([]string) error {
		a.scn.GridVisible = !a.scn.GridVisible
		a.prefs.GridVisible = a.scn.GridVisible
		return nil
	})

	reg.Register("fps", "fps: toggle the FPS overlay", nil, func([]string) error {
		a.dbg.ShowFPS = !a.dbg.ShowFPS
		a.prefs.ShowFPS = a.dbg.ShowFPS
		return nil
	})

	reg.Register("mem", "mem: toggle the heap overlay", nil, func([]string) error {
		a.dbg.ShowMemAlloc = !a.dbg.ShowMemAlloc
		return nil
	})

	reg.Register("stats", "stats: toggle the voxelization summary overlay", nil, func([]string) error {
		a.dbg.ShowStats = !a.dbg.ShowStats
		a.prefs.ShowStats = a.dbg.ShowStats
		return nil
	})

	reg.Register("save", "save: persist current preferences", nil, func([]string) error {
		if err := appconfig.Save(a.prefs); err != nil {
			return err
		}
		a.log.Log("preferences saved")
		return nil
	})

	return reg
}
