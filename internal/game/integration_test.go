package game

import (
	"path/filepath"
	"testing"

	"github.com/Ragnaroek/iron-wolf-sub000/internal/config"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/level"
)

// repoRoot is where config.yaml and assets/ live relative to this package.
const repoRoot = "../.."

// TestGameIntegration drives the shipped configuration and episode without
// opening a window.
func TestGameIntegration(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(repoRoot, "config.yaml"))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	episode, err := config.LoadEpisodeConfig(filepath.Join(repoRoot, cfg.Level.Episode))
	if err != nil {
		t.Fatalf("episode: %v", err)
	}
	lvl, err := level.Load(episode.LevelPath(0))
	if err != nil {
		t.Fatalf("level: %v", err)
	}

	g, err := New(cfg, lvl)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()
	g.SetEpisode(episode, 0)

	t.Run("first view", func(t *testing.T) {
		frame := g.renderer.RenderView(g.fb, g.session.Level, g.session.Viewer)
		for col, h := range frame.WallHeight {
			if h <= 0 {
				t.Fatalf("col %d: height %d", col, h)
			}
		}
		// facing east from the hall the door to the corridor is straight ahead
		center := frame.Hits[g.proj.ViewWidth/2]
		if center.Kind != level.KindDoor || center.TileX != 21 {
			t.Errorf("centre hit %+v", center)
		}
	})

	t.Run("walk through the door", func(t *testing.T) {
		s := g.session
		s.Tick(Controls{Use: true}, 1)
		if s.LastUse != level.UseNothing {
			t.Fatalf("door out of reach but use gave %s", s.LastUse)
		}
		for i := 0; i < 400 && s.Viewer.Tile().X < 20; i++ {
			s.Tick(Controls{Forward: cfg.GetMoveSpeed()}, 1)
		}
		if s.Viewer.Tile() != (level.Pos{X: 20, Y: 31}) {
			t.Fatalf("viewer stopped at %+v", s.Viewer.Tile())
		}
		s.Tick(Controls{Use: true}, 1)
		if s.LastUse != level.UseDoor {
			t.Fatalf("use = %s", s.LastUse)
		}
		for i := 0; i < 400 && s.Viewer.Tile().X < 25; i++ {
			s.Tick(Controls{Forward: cfg.GetMoveSpeed()}, 1)
		}
		if s.Viewer.Tile().X < 25 {
			t.Fatalf("viewer did not get through the door: %+v", s.Viewer.Tile())
		}
	})

	t.Run("monitor counts", func(t *testing.T) {
		m := g.threading.PerformanceMonitor.GetCurrentMetrics()
		if m.ColumnsCast != uint64(g.proj.ViewWidth) {
			t.Errorf("columns cast = %d", m.ColumnsCast)
		}
	})
}
