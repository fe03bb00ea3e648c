package voxel

// Stats is the diagnostic summary of one voxelization pass. For logging and
// overlay display only; not part of the correctness contract.
type Stats struct {
	Triangles int
	Voxels    int
	VoxelSize float32
	Transform Transform
}

// Voxelize runs the full pass over a model: normalize all sub-meshes into
// the working volume (positions are mutated in place), then rasterize and
// extract one boundary mesh per sub-mesh. An empty model yields no meshes
// and zeroed stats, not an error; a misconfigured voxel size fails before
// any work is done.
func Voxelize(meshes []SubMesh, s Settings) ([]*BoundaryMesh, Stats, error) {
	size, err := s.VoxelSize()
	if err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{VoxelSize: size}
	stats.Transform = Normalize(meshes)

	out := make([]*BoundaryMesh, 0, len(meshes))
	for _, m := range meshes {
		tris := m.Triangles()
		set := RasterizeParallel(tris, size, 0)
		stats.Triangles += len(tris)
		stats.Voxels += set.Len()
		out = append(out, ExtractBoundary(set, size, s.shrink()))
	}
	return out, stats, nil
}
