package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigPath is the path to the viewer config file, relative to the process
// working directory.
const ConfigPath = "config/voxelview.json"

// Prefs holds viewer preferences persisted across runs: the voxelization
// parameters, overlay toggles, the last opened model, and the optional
// preview server address.
type Prefs struct {
	OctreeDepth int     `json:"octree_depth"`
	Resolution  float32 `json:"resolution,omitempty"` // voxel edge length; overrides depth when > 0
	Shrink      float32 `json:"shrink"`
	GridVisible bool    `json:"grid_visible"`
	ShowFPS     bool    `json:"show_fps"`
	ShowStats   bool    `json:"show_stats"`
	Model       string  `json:"model,omitempty"`        // last model: a file path or "builtin:<name>"
	PreviewAddr string  `json:"preview_addr,omitempty"` // e.g. "localhost:8391"; empty = preview server off
}

// Default returns default preferences: depth 6, no seams, grid on, stats
// overlay on, builtin cube model, preview server off.
func Default() Prefs {
	return Prefs{
		OctreeDepth: 6,
		Shrink:      1,
		GridVisible: true,
		ShowStats:   true,
		Model:       "builtin:cube",
	}
}

// Load reads preferences from ConfigPath. A missing file is a normal first
// run and returns Default() with no error; an unreadable or malformed file
// also returns Default(), together with the error, so the caller can report
// it and keep going. No file is created.
func Load() (Prefs, error) {
	return LoadFrom(ConfigPath)
}

// LoadFrom reads preferences from the given path (see Load).
func LoadFrom(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if p.Shrink <= 0 {
		p.Shrink = 1
	}
	return p, nil
}

// Save writes preferences to ConfigPath, creating the config directory if needed.
func Save(p Prefs) error {
	return SaveTo(ConfigPath, p)
}

// SaveTo writes preferences to the given path (see Save).
func SaveTo(path string, p Prefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
