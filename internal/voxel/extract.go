package voxel

import "github.com/go-gl/mathgl/mgl32"

// BoundaryMesh is the renderable shell of a voxel set: four aligned vertex
// sequences plus a triangle index list. Invariants: len(Positions) ==
// len(Normals) == len(UVs), len(Indices) is a multiple of 3, and every
// index is < len(Positions).
type BoundaryMesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// cubeCorners are the eight corner offsets of a unit cube around its center,
// in half-extent units. Order matters: the face table below indexes it.
//
//	0: -X -Y -Z   1: +X -Y -Z   2: +X -Y +Z   3: -X -Y +Z
//	4: -X +Y -Z   5: +X +Y -Z   6: +X +Y +Z   7: -X +Y +Z
var cubeCorners = [8]mgl32.Vec3{
	{-1, -1, -1},
	{1, -1, -1},
	{1, -1, 1},
	{-1, -1, 1},
	{-1, 1, -1},
	{1, 1, -1},
	{1, 1, 1},
	{-1, 1, 1},
}

// cubeFace maps one of the six axis directions to the neighbor offset used
// for the visibility test, the four cube corners of that face's quad, and
// the face's outward normal shared by all four vertices.
type cubeFace struct {
	dx, dy, dz int32
	corners    [4]int
	normal     mgl32.Vec3
}

var cubeFaces = [6]cubeFace{
	{1, 0, 0, [4]int{1, 2, 6, 5}, mgl32.Vec3{1, 0, 0}},
	{-1, 0, 0, [4]int{0, 4, 7, 3}, mgl32.Vec3{-1, 0, 0}},
	{0, 1, 0, [4]int{4, 5, 6, 7}, mgl32.Vec3{0, 1, 0}},
	{0, -1, 0, [4]int{0, 3, 2, 1}, mgl32.Vec3{0, -1, 0}},
	{0, 0, 1, [4]int{3, 7, 6, 2}, mgl32.Vec3{0, 0, 1}},
	{0, 0, -1, [4]int{0, 1, 5, 4}, mgl32.Vec3{0, 0, -1}},
}

// faceUVs assigns the unit texture square to a quad's four corners, always
// in the same order.
var faceUVs = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// ExtractBoundary emits one quad (two triangles, counter-clockwise as seen
// from outside) for every face of an occupied voxel whose axis neighbor is
// empty. A voxel surrounded on all six sides emits nothing. Face corners are
// placed at voxelSize/2 * shrink around the voxel center; shrink < 1 leaves
// cosmetic seams between adjacent voxels. Vertex and index order across
// voxels follows the set's iteration order and may vary between runs; the
// set of emitted triangles is what is deterministic.
func ExtractBoundary(set Set, voxelSize, shrink float32) *BoundaryMesh {
	if shrink <= 0 {
		shrink = 1
	}
	mesh := &BoundaryMesh{}
	half := voxelSize / 2 * shrink

	for c := range set {
		center := c.Center(voxelSize)
		for _, f := range cubeFaces {
			if set.Contains(c.offset(f.dx, f.dy, f.dz)) {
				continue
			}
			mesh.addFace(center, half, f)
		}
	}
	return mesh
}

// addFace appends the quad's four vertices and two triangles. The fixed
// (0,2,1)/(0,3,2) diagonal split is the same for every face.
func (m *BoundaryMesh) addFace(center mgl32.Vec3, half float32, f cubeFace) {
	base := uint32(len(m.Positions))
	for i, ci := range f.corners {
		m.Positions = append(m.Positions, center.Add(cubeCorners[ci].Mul(half)))
		m.Normals = append(m.Normals, f.normal)
		m.UVs = append(m.UVs, faceUVs[i])
	}
	m.Indices = append(m.Indices,
		base, base+2, base+1,
		base, base+3, base+2,
	)
}

// TriangleCount returns the number of triangles in the index list.
func (m *BoundaryMesh) TriangleCount() int {
	return len(m.Indices) / 3
}
