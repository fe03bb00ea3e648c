// Package render uploads extracted boundary meshes to the GPU and draws
// them with a single directionally-lit flat material.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelview/internal/voxel"
)

// gpuMesh pairs an uploaded raylib mesh with the Go-owned vertex arrays it
// points at. The arrays must stay referenced for the mesh's lifetime.
type gpuMesh struct {
	mesh      rl.Mesh
	verts     []float32
	normals   []float32
	texcoords []float32
}

// Renderer owns the GPU side of the current voxelization result. SetMeshes
// may be called from the frame loop at any time; the upload happens on the
// next Draw, after the GL context exists and on the main thread.
type Renderer struct {
	def MaterialDef

	meshes     []gpuMesh
	pending    []*voxel.BoundaryMesh
	hasPending bool

	mtl   rl.Material
	ready bool
}

// New returns a renderer with the given material definition and no meshes.
func New(def MaterialDef) *Renderer {
	return &Renderer{def: def}
}

// SetMeshes replaces the displayed meshes with a freshly extracted result.
// The previous result is fully replaced; there is no incremental update.
func (r *Renderer) SetMeshes(meshes []*voxel.BoundaryMesh) {
	r.pending = meshes
	r.hasPending = true
}

// ensureMaterial creates the lit material on first use (after the window
// and GL context exist).
func (r *Renderer) ensureMaterial() {
	if r.ready {
		return
	}
	r.mtl = rl.LoadMaterialDefault()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = r.def.color()
	}
	if shader := rl.LoadShaderFromMemory(voxelVS, voxelFS); rl.IsShaderValid(shader) {
		r.mtl.Shader = shader
	}
	r.ready = true
}

// Draw renders the current meshes. Must be called between BeginMode3D and
// EndMode3D.
func (r *Renderer) Draw() {
	r.ensureMaterial()
	if r.hasPending {
		r.upload()
	}
	r.setShaderUniforms()
	for _, m := range r.meshes {
		rl.DrawMesh(m.mesh, r.mtl, rl.MatrixIdentity())
	}
}

// upload pushes the pending boundary meshes to the GPU. raylib meshes carry
// 16-bit indices, so the quads are de-indexed into plain triangle soup
// before upload; large voxelizations easily exceed 65535 vertices otherwise.
// Replaced meshes keep their GPU buffers until process exit: raylib's
// UnloadMesh would also free the CPU arrays, which Go owns here.
func (r *Renderer) upload() {
	r.hasPending = false
	r.meshes = r.meshes[:0]
	for _, bm := range r.pending {
		if len(bm.Indices) == 0 {
			continue
		}
		r.meshes = append(r.meshes, uploadBoundary(bm))
	}
	r.pending = nil
}

// uploadBoundary flattens one boundary mesh into de-indexed vertex arrays
// and uploads it.
func uploadBoundary(bm *voxel.BoundaryMesh) gpuMesh {
	n := len(bm.Indices)
	g := gpuMesh{
		verts:     make([]float32, 0, n*3),
		normals:   make([]float32, 0, n*3),
		texcoords: make([]float32, 0, n*2),
	}
	for _, idx := range bm.Indices {
		p := bm.Positions[idx]
		nrm := bm.Normals[idx]
		uv := bm.UVs[idx]
		g.verts = append(g.verts, p.X(), p.Y(), p.Z())
		g.normals = append(g.normals, nrm.X(), nrm.Y(), nrm.Z())
		g.texcoords = append(g.texcoords, uv.X(), uv.Y())
	}

	g.mesh.VertexCount = int32(n)
	g.mesh.TriangleCount = int32(n / 3)
	g.mesh.Vertices = &g.verts[0]
	g.mesh.Normals = &g.normals[0]
	g.mesh.Texcoords = &g.texcoords[0]
	rl.UploadMesh(&g.mesh, false)
	return g
}

// setShaderUniforms feeds the per-frame lighting uniforms (cgo-safe: local arrays).
func (r *Renderer) setShaderUniforms() {
	shader := r.mtl.Shader
	if !rl.IsShaderValid(shader) {
		return
	}
	light := [3]float32{r.def.LightDir[0], r.def.LightDir[1], r.def.LightDir[2]}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, light[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{r.def.Ambient}, rl.ShaderUniformFloat)
	}
}

// Directional light + ambient over the flat voxel material. Same vertex
// attributes as raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
const (
	voxelVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	voxelFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 lightDir;
uniform float ambient;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  float NdotL = max(dot(N, L), 0.0);
  vec3 shaded = colDiffuse.rgb * (ambient + (1.0 - ambient) * NdotL);
  finalColor = vec4(shaded, colDiffuse.a);
}
`
)
