package voxel

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// cubeSubMesh returns an axis-aligned cube spanning [lo, hi] on every axis:
// 8 vertices, 12 triangles, counter-clockwise as seen from outside.
func cubeSubMesh(lo, hi float32) SubMesh {
	return SubMesh{
		Name: "cube",
		Positions: []float32{
			lo, lo, lo,
			hi, lo, lo,
			hi, lo, hi,
			lo, lo, hi,
			lo, hi, lo,
			hi, hi, lo,
			hi, hi, hi,
			lo, hi, hi,
		},
		Indices: []uint32{
			1, 6, 2, 1, 5, 6, // +X
			0, 3, 7, 0, 7, 4, // -X
			4, 7, 6, 4, 6, 5, // +Y
			0, 1, 2, 0, 2, 3, // -Y
			3, 2, 6, 3, 6, 7, // +Z
			0, 4, 5, 0, 5, 1, // -Z
		},
	}
}

func TestNormalizeFitsWorkingVolume(t *testing.T) {
	meshes := []SubMesh{cubeSubMesh(0, 2)}
	tr := Normalize(meshes)

	if tr.Center != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("center = %v, want (1,1,1)", tr.Center)
	}
	want := CoordinateRange * 2 * usableSpanFactor / 2 // span 1.9 over max dimension 2
	if tr.Scale != want {
		t.Errorf("scale = %g, want %g", tr.Scale, want)
	}
	limit := CoordinateRange * usableSpanFactor
	for i, v := range meshes[0].Positions {
		if v < -limit-1e-6 || v > limit+1e-6 {
			t.Errorf("position[%d] = %g outside [%g, %g]", i, v, -limit, limit)
		}
	}
}

func TestNormalizeUsesGlobalBoxAcrossSubMeshes(t *testing.T) {
	// Two single-point sub-meshes 10 apart on X; the shared box drives both.
	a := SubMesh{Positions: []float32{-5, 0, 0}}
	b := SubMesh{Positions: []float32{5, 0, 0}}
	meshes := []SubMesh{a, b}
	tr := Normalize(meshes)

	if tr.Scale != 1.9/10 {
		t.Errorf("scale = %g, want %g", tr.Scale, 1.9/10)
	}
	if got := meshes[0].Positions[0]; got != -0.95 {
		t.Errorf("left point normalized to %g, want -0.95", got)
	}
	if got := meshes[1].Positions[0]; got != 0.95 {
		t.Errorf("right point normalized to %g, want 0.95", got)
	}
}

func TestNormalizeDegenerateModel(t *testing.T) {
	// All vertices coincide: zero-volume box, scale stays 1, output finite.
	meshes := []SubMesh{{Positions: []float32{3, 4, 5, 3, 4, 5, 3, 4, 5}}}
	tr := Normalize(meshes)

	if tr.Scale != 1 {
		t.Errorf("degenerate scale = %g, want 1", tr.Scale)
	}
	for i, v := range meshes[0].Positions {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("position[%d] = %g is not finite", i, v)
		}
		if v != 0 {
			t.Errorf("position[%d] = %g, want 0 (centered on itself)", i, v)
		}
	}
}

func TestNormalizeEmptyModelIsNoOp(t *testing.T) {
	tr := Normalize(nil)
	if tr.Scale != 1 {
		t.Errorf("empty model scale = %g, want 1", tr.Scale)
	}
	tr = Normalize([]SubMesh{{}})
	if tr.Scale != 1 {
		t.Errorf("empty sub-mesh scale = %g, want 1", tr.Scale)
	}
}
