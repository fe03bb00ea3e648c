// Package voxel converts triangulated surface meshes into a sparse voxel
// occupancy set and re-extracts the visible boundary as a renderable mesh.
// The pipeline runs in three stages: Normalize (fit the model into the
// working volume), Rasterize (triangles to occupied voxel coordinates), and
// ExtractBoundary (occupied voxels to exposed cube faces). No stage mutates
// a structure owned by an earlier one; a full pass runs to completion before
// its result is used.
package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CoordinateRange is the half-extent of the working volume. Normalized
// geometry lives in [-CoordinateRange, CoordinateRange] on every axis;
// voxels outside it are silently dropped during rasterization.
const CoordinateRange float32 = 1.0

// Coord identifies a cubic cell of edge length voxelSize. The cell's center
// in world space is (Coord + 0.5) * voxelSize on each axis; Center is the
// single source of truth for that convention, used by both the rasterizer
// and the extractor.
type Coord struct {
	X, Y, Z int32
}

// Center returns the world-space center of the cell for the given edge length.
func (c Coord) Center(voxelSize float32) mgl32.Vec3 {
	return mgl32.Vec3{
		(float32(c.X) + 0.5) * voxelSize,
		(float32(c.Y) + 0.5) * voxelSize,
		(float32(c.Z) + 0.5) * voxelSize,
	}
}

// offset returns the coordinate shifted by (dx, dy, dz).
func (c Coord) offset(dx, dy, dz int32) Coord {
	return Coord{c.X + dx, c.Y + dy, c.Z + dz}
}

// Set is a sparse set of occupied voxel coordinates. A voxel is either
// filled or not; re-inserting an existing coordinate is a no-op, so the set
// built from a triangle list is independent of triangle order.
type Set map[Coord]struct{}

// NewSet returns an empty voxel set.
func NewSet() Set {
	return make(Set)
}

// Insert marks the coordinate as occupied.
func (s Set) Insert(c Coord) {
	s[c] = struct{}{}
}

// Contains reports whether the coordinate is occupied.
func (s Set) Contains(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of occupied voxels.
func (s Set) Len() int {
	return len(s)
}

// Union inserts every coordinate of other into s.
func (s Set) Union(other Set) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Triangle is three 3D points. Immutable once constructed; triangles come
// from a loader as indexed flat position arrays (see SubMesh.Triangles).
type Triangle [3]mgl32.Vec3

// Normal returns the triangle's unit plane normal from the cross product of
// two edge vectors. ok is false for degenerate (zero-area) triangles, whose
// normal is undefined; callers must skip those rather than let a NaN
// direction leak into containment tests.
func (t Triangle) Normal() (n mgl32.Vec3, ok bool) {
	e1 := t[1].Sub(t[0])
	e2 := t[2].Sub(t[0])
	cross := e1.Cross(e2)
	if cross.LenSqr() == 0 {
		return mgl32.Vec3{}, false
	}
	return cross.Normalize(), true
}

// bounds returns the triangle's axis-aligned bounding box.
func (t Triangle) bounds() (bmin, bmax mgl32.Vec3) {
	bmin = t[0]
	bmax = t[0]
	for _, p := range t[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < bmin[i] {
				bmin[i] = p[i]
			}
			if p[i] > bmax[i] {
				bmax[i] = p[i]
			}
		}
	}
	return bmin, bmax
}

// SubMesh is the loader-facing shape of one model part: a flat position
// array (3 floats per vertex) and a flat triangle index array (3 indices per
// triangle, referencing the position array). Positions are mutated in place
// by Normalize.
type SubMesh struct {
	Name      string
	Positions []float32
	Indices   []uint32
}

// Triangles expands the indexed representation into independent triangles.
// Indices past the position array are skipped.
func (m SubMesh) Triangles() []Triangle {
	vertexCount := uint32(len(m.Positions) / 3)
	tris := make([]Triangle, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if a >= vertexCount || b >= vertexCount || c >= vertexCount {
			continue
		}
		tris = append(tris, Triangle{m.vertex(a), m.vertex(b), m.vertex(c)})
	}
	return tris
}

func (m SubMesh) vertex(i uint32) mgl32.Vec3 {
	return mgl32.Vec3{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
}
