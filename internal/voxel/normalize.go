package voxel

import "github.com/go-gl/mathgl/mgl32"

// usableSpanFactor leaves a margin inside the working volume so a model's
// extremes never sit exactly on the clamp boundary.
const usableSpanFactor float32 = 0.95

// Transform records the recentering and rescaling applied by Normalize,
// for diagnostics only; no later stage re-derives bounding-box statistics.
type Transform struct {
	Center mgl32.Vec3
	Scale  float32
}

// Normalize rescales and recenters the model so it fits the working volume.
// It computes the axis-aligned bounding box over all sub-mesh vertices,
// then applies (position - center) * scale to every vertex in place, where
// scale maps the largest box dimension onto 95% of the working span. A
// degenerate model (zero-volume box) keeps scale 1.0 so positions stay
// finite; an empty model is a no-op.
func Normalize(meshes []SubMesh) Transform {
	var bmin, bmax mgl32.Vec3
	seen := false
	for _, m := range meshes {
		for i := 0; i+2 < len(m.Positions); i += 3 {
			p := mgl32.Vec3{m.Positions[i], m.Positions[i+1], m.Positions[i+2]}
			if !seen {
				bmin, bmax = p, p
				seen = true
				continue
			}
			for a := 0; a < 3; a++ {
				if p[a] < bmin[a] {
					bmin[a] = p[a]
				}
				if p[a] > bmax[a] {
					bmax[a] = p[a]
				}
			}
		}
	}
	if !seen {
		return Transform{Scale: 1}
	}

	center := bmin.Add(bmax).Mul(0.5)
	size := bmax.Sub(bmin)
	maxDim := size.X()
	if size.Y() > maxDim {
		maxDim = size.Y()
	}
	if size.Z() > maxDim {
		maxDim = size.Z()
	}

	span := CoordinateRange * 2 * usableSpanFactor
	scale := float32(1)
	if maxDim > 0 {
		scale = span / maxDim
	}

	for _, m := range meshes {
		for i := 0; i+2 < len(m.Positions); i += 3 {
			m.Positions[i] = (m.Positions[i] - center.X()) * scale
			m.Positions[i+1] = (m.Positions[i+1] - center.Y()) * scale
			m.Positions[i+2] = (m.Positions[i+2] - center.Z()) * scale
		}
	}
	return Transform{Center: center, Scale: scale}
}
