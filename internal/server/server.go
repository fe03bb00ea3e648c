// Package server is an optional websocket preview channel: after each
// voxelization pass it pushes the boundary meshes and the diagnostic summary
// as one JSON snapshot to every connected client, so a browser (or any
// headless consumer) sees the same result the renderer does. New clients
// receive the current snapshot on connect.
package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"voxelview/internal/logger"
	"voxelview/internal/voxel"
)

var upgrader = websocket.Upgrader{
	// The preview is a local development aid; accept any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// MeshPayload is one boundary mesh in wire form: flat arrays, 3 floats per
// position/normal, 2 per UV, 3 indices per triangle.
type MeshPayload struct {
	Positions []float32 `json:"positions"`
	Normals   []float32 `json:"normals"`
	UVs       []float32 `json:"uvs"`
	Indices   []uint32  `json:"indices"`
}

// Snapshot is the message sent after each voxelization pass.
type Snapshot struct {
	Type      string        `json:"type"`
	VoxelSize float32       `json:"voxelSize"`
	Triangles int           `json:"triangles"`
	Voxels    int           `json:"voxels"`
	Meshes    []MeshPayload `json:"meshes"`
}

// BuildSnapshot marshals a voxelization result into the wire snapshot.
func BuildSnapshot(meshes []*voxel.BoundaryMesh, stats voxel.Stats) ([]byte, error) {
	snap := Snapshot{
		Type:      "voxelization",
		VoxelSize: stats.VoxelSize,
		Triangles: stats.Triangles,
		Voxels:    stats.Voxels,
		Meshes:    make([]MeshPayload, 0, len(meshes)),
	}
	for _, m := range meshes {
		p := MeshPayload{
			Positions: make([]float32, 0, len(m.Positions)*3),
			Normals:   make([]float32, 0, len(m.Normals)*3),
			UVs:       make([]float32, 0, len(m.UVs)*2),
			Indices:   m.Indices,
		}
		for i := range m.Positions {
			p.Positions = append(p.Positions, m.Positions[i].X(), m.Positions[i].Y(), m.Positions[i].Z())
			p.Normals = append(p.Normals, m.Normals[i].X(), m.Normals[i].Y(), m.Normals[i].Z())
			p.UVs = append(p.UVs, m.UVs[i].X(), m.UVs[i].Y())
		}
		snap.Meshes = append(snap.Meshes, p)
	}
	return json.Marshal(snap)
}

// Server accepts websocket clients on /ws and broadcasts snapshots.
type Server struct {
	addr string
	log  *logger.Logger

	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	snapshot []byte
}

// New returns a server that will listen on addr (e.g. "localhost:8391").
func New(addr string, log *logger.Logger) *Server {
	return &Server{
		addr:    addr,
		log:     log,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Start begins listening in a background goroutine. Listen errors are
// logged, not fatal; the viewer works without the preview channel.
func (s *Server) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	s.log.Logf("preview server listening on ws://%s/ws", s.addr)
	go func() {
		if err := http.ListenAndServe(s.addr, mux); err != nil {
			s.log.Logf("preview server stopped: %v", err)
		}
	}()
}

// Publish stores the snapshot for future clients and sends it to all
// connected ones. Clients that fail to receive are dropped.
func (s *Server) Publish(meshes []*voxel.BoundaryMesh, stats voxel.Stats) {
	data, err := BuildSnapshot(meshes, stats)
	if err != nil {
		s.log.Logf("preview snapshot failed: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = data
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			_ = conn.Close()
			delete(s.clients, conn)
		}
	}
}

// handleWS upgrades the connection, sends the current snapshot, and keeps
// reading (discarding input) until the client goes away.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	snap := s.snapshot
	if snap != nil {
		if err := conn.WriteMessage(websocket.TextMessage, snap); err != nil {
			_ = conn.Close()
			delete(s.clients, conn)
			s.mu.Unlock()
			return
		}
	}
	s.mu.Unlock()

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.mu.Lock()
				_ = conn.Close()
				delete(s.clients, conn)
				s.mu.Unlock()
				return
			}
		}
	}()
}
