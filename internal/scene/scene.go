// Package scene holds the 3D camera and draws the static world furniture
// (grid, axes, working-volume bounds). The camera orbits a target point:
// drag with the left mouse button to orbit, scroll to zoom, WASD/QE to move
// camera and target together.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelview/internal/voxel"
)

const (
	orbitSpeed  = 0.005 // radians per pixel of drag
	zoomSpeed   = 0.1   // fraction of distance per wheel notch
	panSpeed    = 1.2   // world units per second
	minDistance = 0.5
	maxDistance = 20
	minPitchY   = 0.99 // avoid flipping over the poles

	gridExtent    = float32(voxel.CoordinateRange)
	gridStep      = 0.25
	gridAlpha     = 60
	axisLineAlpha = 200
)

// Scene holds the perspective camera and the grid/axes toggles.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	target      rl.Vector3
	distance    float32
}

// New returns a scene with the camera above and to the side of the origin,
// framing the working volume, looking at the origin.
func New() *Scene {
	s := &Scene{GridVisible: true, distance: 3}
	s.target = rl.NewVector3(0, 0, 0)
	s.Camera.Position = rl.NewVector3(s.distance*0.5, s.distance*0.8, s.distance*0.6)
	s.Camera.Target = s.target
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// Update runs the camera controls for one frame. Skip it while the console
// captures input.
func (s *Scene) Update() {
	s.orbit()
	s.zoom()
	s.pan()
	s.Camera.Target = s.target
}

// orbit rotates the camera around the target while the left button is held:
// horizontal drag around the world Y axis, vertical drag around the camera's
// right axis, with a clamp so the view never flips over the top.
func (s *Scene) orbit() {
	if !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		return
	}
	delta := rl.GetMouseDelta()
	if delta.X == 0 && delta.Y == 0 {
		return
	}

	offset := rl.Vector3Subtract(s.Camera.Position, s.target)
	up := rl.NewVector3(0, 1, 0)
	look := rl.Vector3Normalize(rl.Vector3Negate(offset))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(look, up))

	offset = rl.Vector3RotateByAxisAngle(offset, up, -delta.X*orbitSpeed)
	pitched := rl.Vector3RotateByAxisAngle(offset, right, -delta.Y*orbitSpeed)
	dir := rl.Vector3Normalize(pitched)
	if dir.Y > -minPitchY && dir.Y < minPitchY {
		offset = pitched
	}
	s.Camera.Position = rl.Vector3Add(s.target, offset)
}

// zoom moves the camera along the view direction by wheel input. The step
// scales with distance so zooming stays usable both close up and far out.
func (s *Scene) zoom() {
	wheel := rl.GetMouseWheelMove()
	if wheel == 0 {
		return
	}
	s.distance = min(max(s.distance-wheel*zoomSpeed*s.distance, minDistance), maxDistance)
	dir := rl.Vector3Normalize(rl.Vector3Subtract(s.Camera.Position, s.target))
	s.Camera.Position = rl.Vector3Add(s.target, rl.Vector3Scale(dir, s.distance))
}

// pan moves camera and target together: W/S along the horizontal view
// direction, A/D sideways, Q/E vertically.
func (s *Scene) pan() {
	var move rl.Vector3

	look := rl.Vector3Subtract(s.target, s.Camera.Position)
	forward := rl.Vector3Normalize(rl.NewVector3(look.X, 0, look.Z))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, rl.NewVector3(0, 1, 0)))

	if rl.IsKeyDown(rl.KeyW) {
		move = rl.Vector3Add(move, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = rl.Vector3Subtract(move, forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = rl.Vector3Add(move, right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = rl.Vector3Subtract(move, right)
	}
	if rl.IsKeyDown(rl.KeyQ) {
		move.Y++
	}
	if rl.IsKeyDown(rl.KeyE) {
		move.Y--
	}
	if move.X == 0 && move.Y == 0 && move.Z == 0 {
		return
	}

	step := rl.Vector3Scale(rl.Vector3Normalize(move), panSpeed*rl.GetFrameTime())
	s.Camera.Position = rl.Vector3Add(s.Camera.Position, step)
	s.target = rl.Vector3Add(s.target, step)
}

// DrawWorld draws the grid, the axis lines, and the working-volume bounds.
// Must be called between BeginMode3D and EndMode3D, before the model.
func (s *Scene) DrawWorld() {
	if !s.GridVisible {
		return
	}

	gridColor := rl.NewColor(255, 255, 255, gridAlpha)
	for v := -gridExtent; v <= gridExtent+gridStep/2; v += gridStep {
		rl.DrawLine3D(rl.NewVector3(v, 0, -gridExtent), rl.NewVector3(v, 0, gridExtent), gridColor)
		rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, v), rl.NewVector3(gridExtent, 0, v), gridColor)
	}

	rl.DrawLine3D(rl.NewVector3(0, 0, 0), rl.NewVector3(gridExtent, 0, 0), rl.NewColor(230, 60, 60, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, 0, 0), rl.NewVector3(0, gridExtent, 0), rl.NewColor(60, 230, 60, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, 0, 0), rl.NewVector3(0, 0, gridExtent), rl.NewColor(60, 60, 230, axisLineAlpha))

	// Geometry outside this cube is clipped during rasterization.
	bound := 2 * float32(voxel.CoordinateRange)
	rl.DrawCubeWiresV(rl.NewVector3(0, 0, 0), rl.NewVector3(bound, bound, bound), rl.NewColor(255, 255, 255, 40))
}
