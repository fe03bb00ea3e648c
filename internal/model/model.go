// Package model turns model files and builtin shapes into the flat
// sub-mesh form the voxel pipeline consumes. File loading goes through
// raylib, so it supports whatever the linked raylib build does (OBJ, GLTF,
// IQM, VOX) and must run on the main thread after the window exists.
package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelview/internal/voxel"
)

// BuiltinPrefix marks a model reference as a builtin shape, e.g. "builtin:cube".
const BuiltinPrefix = "builtin:"

// Load reads a model file through raylib and copies every mesh out as a
// SubMesh. The raylib model (and its GPU side) is released before returning;
// only the flat CPU arrays survive. Positions are returned unnormalized.
func Load(path string) ([]voxel.SubMesh, error) {
	m := rl.LoadModel(path)
	if !rl.IsModelValid(m) || m.MeshCount == 0 {
		return nil, fmt.Errorf("could not load model: %s", path)
	}
	defer rl.UnloadModel(m)

	base := filepath.Base(path)
	meshes := unsafe.Slice(m.Meshes, int(m.MeshCount))
	out := make([]voxel.SubMesh, 0, len(meshes))
	for i := range meshes {
		sub, ok := copyMesh(&meshes[i])
		if !ok {
			continue
		}
		sub.Name = fmt.Sprintf("%s#%d", base, i)
		out = append(out, sub)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("model has no triangle geometry: %s", path)
	}
	return out, nil
}

// copyMesh snapshots one raylib mesh into Go-owned flat arrays. raylib
// stores 16-bit indices; a mesh without an index array is sequential
// triangles and gets identity indices.
func copyMesh(mesh *rl.Mesh) (voxel.SubMesh, bool) {
	if mesh.Vertices == nil || mesh.VertexCount <= 0 {
		return voxel.SubMesh{}, false
	}
	var sub voxel.SubMesh
	verts := unsafe.Slice(mesh.Vertices, int(mesh.VertexCount)*3)
	sub.Positions = append([]float32(nil), verts...)

	if mesh.Indices != nil && mesh.TriangleCount > 0 {
		idx := unsafe.Slice(mesh.Indices, int(mesh.TriangleCount)*3)
		sub.Indices = make([]uint32, len(idx))
		for i, v := range idx {
			sub.Indices[i] = uint32(v)
		}
	} else {
		sub.Indices = make([]uint32, mesh.VertexCount)
		for i := range sub.Indices {
			sub.Indices[i] = uint32(i)
		}
	}
	return sub, true
}

// Resolve loads either a builtin shape ("builtin:<name>") or a model file.
func Resolve(ref string) ([]voxel.SubMesh, error) {
	if name, ok := strings.CutPrefix(ref, BuiltinPrefix); ok {
		return Builtin(name)
	}
	return Load(ref)
}

// Builtin returns a procedural test model by name, so the viewer has
// something to voxelize without a model file on disk.
func Builtin(name string) ([]voxel.SubMesh, error) {
	switch name {
	case "cube":
		return []voxel.SubMesh{builtinCube()}, nil
	case "pyramid":
		return []voxel.SubMesh{builtinPyramid()}, nil
	case "steps":
		return []voxel.SubMesh{builtinSteps()}, nil
	default:
		return nil, fmt.Errorf("unknown builtin model %q (have: %s)", name, strings.Join(BuiltinNames(), ", "))
	}
}

// BuiltinNames lists the available builtin shapes.
func BuiltinNames() []string {
	return []string{"cube", "pyramid", "steps"}
}

// builtinCube is a unit cube: 8 vertices, 12 triangles, CCW from outside.
func builtinCube() voxel.SubMesh {
	return voxel.SubMesh{
		Name: "builtin:cube",
		Positions: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 0, 1,
			0, 0, 1,
			0, 1, 0,
			1, 1, 0,
			1, 1, 1,
			0, 1, 1,
		},
		Indices: []uint32{
			1, 6, 2, 1, 5, 6,
			0, 3, 7, 0, 7, 4,
			4, 7, 6, 4, 6, 5,
			0, 1, 2, 0, 2, 3,
			3, 2, 6, 3, 6, 7,
			0, 4, 5, 0, 5, 1,
		},
	}
}

// builtinPyramid is a square-based pyramid: 5 vertices, 6 triangles.
func builtinPyramid() voxel.SubMesh {
	return voxel.SubMesh{
		Name: "builtin:pyramid",
		Positions: []float32{
			-1, 0, -1,
			1, 0, -1,
			1, 0, 1,
			-1, 0, 1,
			0, 1.4, 0,
		},
		Indices: []uint32{
			0, 2, 1, 0, 3, 2, // base
			0, 1, 4,
			1, 2, 4,
			2, 3, 4,
			3, 0, 4,
		},
	}
}

// builtinSteps is three stacked slabs of shrinking footprint; it exercises
// concave geometry (inside corners) in the boundary extraction.
func builtinSteps() voxel.SubMesh {
	var sub voxel.SubMesh
	sub.Name = "builtin:steps"
	levels := []struct{ half, y0, y1 float32 }{
		{1.0, 0, 0.4},
		{0.7, 0.4, 0.8},
		{0.4, 0.8, 1.2},
	}
	for _, l := range levels {
		base := uint32(len(sub.Positions) / 3)
		sub.Positions = append(sub.Positions,
			-l.half, l.y0, -l.half,
			l.half, l.y0, -l.half,
			l.half, l.y0, l.half,
			-l.half, l.y0, l.half,
			-l.half, l.y1, -l.half,
			l.half, l.y1, -l.half,
			l.half, l.y1, l.half,
			-l.half, l.y1, l.half,
		)
		for _, i := range []uint32{
			1, 6, 2, 1, 5, 6,
			0, 3, 7, 0, 7, 4,
			4, 7, 6, 4, 6, 5,
			0, 1, 2, 0, 2, 3,
			3, 2, 6, 3, 6, 7,
			0, 4, 5, 0, 5, 1,
		} {
			sub.Indices = append(sub.Indices, base+i)
		}
	}
	return sub
}
