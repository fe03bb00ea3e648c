package voxel

import "testing"

func TestVoxelizeUnitCubeEndToEnd(t *testing.T) {
	// A unit cube at depth 0 (voxel edge 2): after normalization it spans
	// [-0.95, 0.95] and every face plane is within reach of the single cell
	// the working volume holds at that resolution. Exactly one voxel, so the
	// boundary is a full cube shell: 6 faces, 12 triangles, no internal faces.
	meshes := []SubMesh{cubeSubMesh(0, 1)}
	out, stats, err := Voxelize(meshes, Settings{OctreeDepth: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("mesh count = %d, want 1", len(out))
	}
	if stats.Triangles != 12 {
		t.Errorf("triangles processed = %d, want 12", stats.Triangles)
	}
	if stats.Voxels != 1 {
		t.Errorf("voxel count = %d, want 1", stats.Voxels)
	}
	if stats.VoxelSize != 2.0 {
		t.Errorf("voxel size = %g, want 2.0", stats.VoxelSize)
	}

	mesh := out[0]
	checkMeshInvariants(t, mesh)
	if len(mesh.Positions) != 24 {
		t.Errorf("vertex count = %d, want 24", len(mesh.Positions))
	}
	if mesh.TriangleCount() != 12 {
		t.Errorf("triangle count = %d, want 12", mesh.TriangleCount())
	}
}

func TestVoxelizeEmptyModel(t *testing.T) {
	out, stats, err := Voxelize(nil, DefaultSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("mesh count = %d, want 0", len(out))
	}
	if stats.Triangles != 0 || stats.Voxels != 0 {
		t.Errorf("stats = %+v, want zero triangles and voxels", stats)
	}

	// A sub-mesh with no geometry flows through as an empty boundary mesh.
	out, _, err = Voxelize([]SubMesh{{Name: "empty"}}, DefaultSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("mesh count = %d, want 1", len(out))
	}
	if len(out[0].Positions) != 0 || len(out[0].Indices) != 0 {
		t.Errorf("empty sub-mesh produced geometry: %d vertices", len(out[0].Positions))
	}
}

func TestVoxelizeMisconfiguredSize(t *testing.T) {
	_, _, err := Voxelize([]SubMesh{cubeSubMesh(0, 1)}, Settings{Resolution: -1})
	if err == nil {
		t.Fatal("want configuration error for negative resolution, got nil")
	}
}

func TestVoxelizeRepeatedRunsAgree(t *testing.T) {
	// Same input, repeated passes: identical voxel counts and triangle sets.
	var first Stats
	for run := 0; run < 3; run++ {
		meshes := []SubMesh{cubeSubMesh(-2, 3)}
		_, stats, err := Voxelize(meshes, Settings{OctreeDepth: 3})
		if err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
		if run == 0 {
			first = stats
			continue
		}
		if stats.Voxels != first.Voxels || stats.Triangles != first.Triangles {
			t.Errorf("run %d stats %+v differ from first %+v", run, stats, first)
		}
	}
}
