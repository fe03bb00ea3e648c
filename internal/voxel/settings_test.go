package voxel

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVoxelSizeFromDepth(t *testing.T) {
	cases := []struct {
		depth int
		want  float32
	}{
		{0, 2.0},
		{1, 1.0},
		{2, 0.5},
		{6, 0.03125},
		{10, 0.001953125},
	}
	for _, c := range cases {
		s := Settings{OctreeDepth: c.depth}
		got, err := s.VoxelSize()
		if err != nil {
			t.Fatalf("depth %d: unexpected error: %v", c.depth, err)
		}
		if got != c.want {
			t.Errorf("depth %d: voxel size = %g, want %g", c.depth, got, c.want)
		}
	}
}

func TestVoxelSizeDirectResolution(t *testing.T) {
	s := Settings{OctreeDepth: 6, Resolution: 0.25}
	got, err := s.VoxelSize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.25 {
		t.Errorf("resolution should override depth: got %g, want 0.25", got)
	}
}

func TestVoxelSizeMisconfigured(t *testing.T) {
	cases := []Settings{
		{Resolution: -0.1},
		{Resolution: math32.NaN()},
		{Resolution: math32.Inf(1)},
		{Resolution: math32.Inf(-1)},
		{OctreeDepth: -1},
		{OctreeDepth: maxOctreeDepth + 1},
	}
	for _, s := range cases {
		if _, err := s.VoxelSize(); err == nil {
			t.Errorf("settings %+v: want configuration error, got nil", s)
		}
	}
}

func TestShrinkDefaultsToOne(t *testing.T) {
	if got := (Settings{}).shrink(); got != 1 {
		t.Errorf("unset shrink = %g, want 1", got)
	}
	if got := (Settings{Shrink: 0.9}).shrink(); got != 0.9 {
		t.Errorf("shrink = %g, want 0.9", got)
	}
}
