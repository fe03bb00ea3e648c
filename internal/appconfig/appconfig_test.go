package appconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "voxelview.json")

	want := Prefs{
		OctreeDepth: 7,
		Shrink:      0.9,
		GridVisible: false,
		ShowFPS:     true,
		ShowStats:   true,
		Model:       "models/bunny.obj",
		PreviewAddr: "localhost:8391",
	}
	if err := SaveTo(path, want); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	got, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got != Default() {
		t.Errorf("missing file prefs = %+v, want defaults %+v", got, Default())
	}
}

func TestLoadInvalidFileReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFrom(path)
	if err == nil {
		t.Fatal("LoadFrom: want a parse error for a malformed file, got nil")
	}
	if got != Default() {
		t.Errorf("invalid file prefs = %+v, want defaults", got)
	}
}

func TestLoadRepairsNonPositiveShrink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte(`{"octree_depth": 5, "shrink": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got.Shrink != 1 {
		t.Errorf("shrink = %g, want repaired to 1", got.Shrink)
	}
	if got.OctreeDepth != 5 {
		t.Errorf("octree depth = %d, want 5", got.OctreeDepth)
	}
}
