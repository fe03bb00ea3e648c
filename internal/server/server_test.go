package server

import (
	"encoding/json"
	"testing"

	"voxelview/internal/voxel"
)

func TestBuildSnapshot(t *testing.T) {
	set := voxel.NewSet()
	set.Insert(voxel.Coord{X: 0, Y: 0, Z: 0})
	mesh := voxel.ExtractBoundary(set, 1.0, 1.0)

	data, err := BuildSnapshot([]*voxel.BoundaryMesh{mesh}, voxel.Stats{
		Triangles: 12,
		Voxels:    1,
		VoxelSize: 1.0,
	})
	if err != nil {
		t.Fatalf("BuildSnapshot: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if snap.Type != "voxelization" {
		t.Errorf("type = %q, want voxelization", snap.Type)
	}
	if snap.Voxels != 1 || snap.Triangles != 12 || snap.VoxelSize != 1.0 {
		t.Errorf("stats = %+v", snap)
	}
	if len(snap.Meshes) != 1 {
		t.Fatalf("mesh count = %d, want 1", len(snap.Meshes))
	}

	m := snap.Meshes[0]
	if len(m.Positions) != 24*3 {
		t.Errorf("positions = %d floats, want %d", len(m.Positions), 24*3)
	}
	if len(m.Normals) != 24*3 {
		t.Errorf("normals = %d floats, want %d", len(m.Normals), 24*3)
	}
	if len(m.UVs) != 24*2 {
		t.Errorf("uvs = %d floats, want %d", len(m.UVs), 24*2)
	}
	if len(m.Indices) != 36 {
		t.Errorf("indices = %d, want 36", len(m.Indices))
	}
}

func TestBuildSnapshotEmpty(t *testing.T) {
	data, err := BuildSnapshot(nil, voxel.Stats{VoxelSize: 0.03125})
	if err != nil {
		t.Fatalf("BuildSnapshot: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(snap.Meshes) != 0 {
		t.Errorf("mesh count = %d, want 0", len(snap.Meshes))
	}
}
