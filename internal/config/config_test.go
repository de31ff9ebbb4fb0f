package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("display:\n  window_title: test\n"))
	if err != nil {
		t.Fatal(err)
	}

	checks := []struct {
		name      string
		got, want int
	}{
		{"screen width", cfg.GetScreenWidth(), 960},
		{"screen height", cfg.GetScreenHeight(), 600},
		{"view width", cfg.GetViewWidth(), 304},
		{"view height", cfg.GetViewHeight(), 144},
		{"max scale", cfg.GetMaxScaleHeight(), 456},
		{"tics", cfg.GetTicsPerSecond(), 70},
		{"door tics", cfg.GetDoorOpenTics(), 300},
		{"max tics", cfg.GetMaxTics(), 10},
		{"move", cfg.GetMoveSpeed(), 5250},
		{"run", cfg.GetRunSpeed(), 10500},
		{"turn", cfg.GetTurnSpeed(), 35},
		{"run turn", cfg.GetRunTurnSpeed(), 70},
		{"angle scale", cfg.GetAngleScale(), 20},
		{"workers", cfg.GetWorkers(), 0},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
	if cfg.GetWindowTitle() != "test" {
		t.Errorf("title = %q", cfg.GetWindowTitle())
	}
	if cfg.GetCeilingColor(7) != 7 || cfg.GetFloorColor(9) != 9 {
		t.Error("unset colours should use the defaults")
	}
}

func TestParseConfigValues(t *testing.T) {
	data := []byte(`
view:
  width: 250
  height: 120
render:
  parallel_columns: true
  workers: 3
  ceiling_color: 29
  floor_color: 300
  max_scale_factor: 2
level:
  keys: [1, 3, 9]
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Render.ParallelColumns || cfg.GetWorkers() != 3 {
		t.Errorf("render = %+v", cfg.Render)
	}
	// the scaler set is sized from the rounded view width
	if got := cfg.GetMaxScaleHeight(); got != 480 {
		t.Errorf("max scale = %d, want 480", got)
	}
	if cfg.GetCeilingColor(0) != 29 {
		t.Errorf("ceiling = %d", cfg.GetCeilingColor(0))
	}
	if cfg.GetFloorColor(4) != 4 {
		t.Errorf("out of range floor colour not replaced: %d", cfg.GetFloorColor(4))
	}
	if got := cfg.GetKeyMask(); got != 0b101 {
		t.Errorf("key mask = %04b", got)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file loaded")
	}
	if _, err := ParseConfig([]byte("view: [1, 2")); err == nil {
		t.Error("broken YAML parsed")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustLoadConfig did not panic")
		}
	}()
	MustLoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestEpisode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "episode.yaml")
	data := "name: one\nlevels:\n  - name: a\n    path: a.yaml\n  - name: b\n    path: /abs/b.yaml\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	ep, err := LoadEpisodeConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := ep.LevelPath(0); got != filepath.Join(dir, "a.yaml") {
		t.Errorf("relative path = %q", got)
	}
	if got := ep.LevelPath(1); got != "/abs/b.yaml" {
		t.Errorf("absolute path = %q", got)
	}
	if n, ok := ep.Next(0); !ok || n != 1 {
		t.Errorf("Next(0) = %d, %v", n, ok)
	}
	if _, ok := ep.Next(1); ok {
		t.Error("Next past the last level")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("name: none\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadEpisodeConfig(empty); err == nil {
		t.Error("episode without levels loaded")
	}
}
