package voxel

import (
	"runtime"
	"sync"

	"github.com/chewxy/math32"
)

// planeProximity approximates half the cube's space diagonal (sqrt(3)/2).
// A voxel is accepted when its center lies within planeProximity voxel
// edges of the triangle's plane. This is the legacy heuristic, not an exact
// triangle-box test: it over-fills slightly (any near-plane voxel inside
// the triangle's bounding box passes, whether or not its center projects
// into the triangle) in exchange for O(1) work per voxel.
const planeProximity float32 = 0.87

// Rasterize converts normalized triangles into the set of occupied voxel
// coordinates for the given edge length. Triangle order does not affect the
// result. voxelSize must be positive (see Settings.VoxelSize).
func Rasterize(tris []Triangle, voxelSize float32) Set {
	set := NewSet()
	for _, tri := range tris {
		rasterizeInto(set, tri, voxelSize)
	}
	return set
}

// RasterizeParallel splits the triangle list across workers, rasterizes each
// batch into a private set, and merges the sets by union. The result is
// set-equal to Rasterize for any worker count. workers <= 0 uses GOMAXPROCS.
func RasterizeParallel(tris []Triangle, voxelSize float32, workers int) Set {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(tris) {
		workers = len(tris)
	}
	if workers <= 1 {
		return Rasterize(tris, voxelSize)
	}

	parts := make([]Set, workers)
	var wg sync.WaitGroup
	chunk := (len(tris) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(tris))
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			parts[w] = Rasterize(tris[lo:hi], voxelSize)
		}(w, lo, hi)
	}
	wg.Wait()

	out := parts[0]
	for _, p := range parts[1:] {
		out.Union(p)
	}
	return out
}

// rasterizeInto inserts every voxel in the triangle's clamped bounding-box
// range whose center passes the plane-distance test. Degenerate triangles
// have no defined plane and insert nothing.
func rasterizeInto(set Set, tri Triangle, voxelSize float32) {
	normal, ok := tri.Normal()
	if !ok {
		return
	}

	bmin, bmax := tri.bounds()
	maxIdx := int32(CoordinateRange / voxelSize)
	minIdx := -maxIdx

	// Each range end is clamped one-sidedly, so a triangle entirely beyond
	// the bound on any axis yields an inverted range and inserts nothing.
	// Clamping both ends would collapse it onto the boundary cell instead.
	x0 := max(int32(math32.Floor(bmin.X()/voxelSize)), minIdx)
	y0 := max(int32(math32.Floor(bmin.Y()/voxelSize)), minIdx)
	z0 := max(int32(math32.Floor(bmin.Z()/voxelSize)), minIdx)
	x1 := min(int32(math32.Ceil(bmax.X()/voxelSize)), maxIdx)
	y1 := min(int32(math32.Ceil(bmax.Y()/voxelSize)), maxIdx)
	z1 := min(int32(math32.Ceil(bmax.Z()/voxelSize)), maxIdx)

	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				c := Coord{x, y, z}
				dist := math32.Abs(c.Center(voxelSize).Sub(tri[0]).Dot(normal))
				if dist <= voxelSize*planeProximity {
					set.Insert(c)
				}
			}
		}
	}
}
