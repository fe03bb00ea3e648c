package voxel

import (
	"fmt"

	"github.com/chewxy/math32"
)

// DefaultOctreeDepth gives a voxel edge of 0.03125 over the working span of 2.
const DefaultOctreeDepth = 6

// maxOctreeDepth bounds the derived resolution; beyond this the per-pass
// voxel count is unusable for an interactive viewer anyway.
const maxOctreeDepth = 16

// Settings is the voxelization configuration. Either Resolution is set
// directly (a voxel edge length in world units), or it is derived from
// OctreeDepth as 2 / 2^depth over the working span of width 2. The effective
// edge length is recomputed by VoxelSize on every call and never stored next
// to its source parameter.
type Settings struct {
	OctreeDepth int
	// Resolution, when > 0, overrides OctreeDepth.
	Resolution float32
	// Shrink scales face half-extents to leave visible seams between
	// adjacent voxels. Cosmetic only; 0 means 1 (no seams).
	Shrink float32
}

// DefaultSettings returns depth-driven settings at DefaultOctreeDepth.
func DefaultSettings() Settings {
	return Settings{OctreeDepth: DefaultOctreeDepth, Shrink: 1}
}

// VoxelSize returns the effective voxel edge length. It fails on a
// misconfiguration (negative or non-finite direct resolution, depth out of
// range) instead of letting a bad size reach the rasterizer's division and
// loop bounds.
func (s Settings) VoxelSize() (float32, error) {
	if s.Resolution != 0 {
		if s.Resolution < 0 || math32.IsNaN(s.Resolution) || math32.IsInf(s.Resolution, 0) {
			return 0, fmt.Errorf("voxel resolution must be a positive finite number, got %g", s.Resolution)
		}
		return s.Resolution, nil
	}
	if s.OctreeDepth < 0 || s.OctreeDepth > maxOctreeDepth {
		return 0, fmt.Errorf("octree depth must be in [0, %d], got %d", maxOctreeDepth, s.OctreeDepth)
	}
	return 2.0 / float32(int32(1)<<s.OctreeDepth), nil
}

// shrink returns the effective seam factor (unset means 1).
func (s Settings) shrink() float32 {
	if s.Shrink <= 0 {
		return 1
	}
	return s.Shrink
}
