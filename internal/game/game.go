// Package game hosts the engine in an ebiten window: it runs the tic clock,
// reads input, moves the viewer and presents the 8 bit view.
package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Ragnaroek/iron-wolf-sub000/internal/config"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/level"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/projection"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/render"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/scaler"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/texture"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/threading"
)

// Game implements ebiten.Game.
type Game struct {
	config    *config.Config
	proj      *projection.Config
	textures  *texture.Set
	palette   *texture.Palette
	renderer  *render.Renderer
	threading *threading.ThreadingComponents

	session  *Session
	input    *InputHandler
	gameLoop *GameLoop

	episode    *config.EpisodeConfig
	levelIndex int

	fb        *render.Framebuffer
	rgba      []byte
	viewImg   *ebiten.Image
	lastFrame render.Frame

	showOverlay bool
	message     string
	messageTics int
	perfLastLog time.Time
}

// New builds the projection, scaler and texture tables for the configured
// view and places the viewer on lvl's player start.
func New(cfg *config.Config, lvl *level.Level) (*Game, error) {
	proj, err := projection.New(cfg.GetViewWidth(), cfg.GetViewHeight())
	if err != nil {
		return nil, fmt.Errorf("failed to set up projection: %w", err)
	}
	scalers, err := scaler.NewSet(cfg.GetMaxScaleHeight(), proj.ViewHeight, proj.ViewWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to build scalers: %w", err)
	}

	tc := threading.NewThreadingComponents(cfg.Render.ParallelColumns, cfg.GetWorkers())
	tc.PerformanceMonitor.EnableDetailedLogging(cfg.Render.DebugOverlay)

	opts := render.DefaultOptions()
	opts.Ceiling = cfg.GetCeilingColor(opts.Ceiling)
	opts.Floor = cfg.GetFloorColor(opts.Floor)
	opts.Columns = tc.Columns
	opts.Monitor = tc.PerformanceMonitor

	textures := texture.NewProcedural()
	renderer, err := render.NewRenderer(proj, scalers, textures, opts)
	if err != nil {
		tc.Shutdown()
		return nil, err
	}

	applyLevelConfig(cfg, lvl)
	session, err := NewSession(proj, lvl, cfg.GetAngleScale())
	if err != nil {
		tc.Shutdown()
		return nil, err
	}

	g := &Game{
		config:      cfg,
		proj:        proj,
		textures:    textures,
		palette:     texture.NewPalette(),
		renderer:    renderer,
		threading:   tc,
		session:     session,
		input:       NewInputHandler(cfg),
		fb:          render.NewFramebuffer(proj.ViewWidth, proj.ViewHeight),
		rgba:        make([]byte, proj.ViewWidth*proj.ViewHeight*4),
		showOverlay: cfg.Render.DebugOverlay,
	}
	g.gameLoop = NewGameLoop(g)

	log.Printf("view %dx%d, %d scalers, %d doors, %d spawns",
		proj.ViewWidth, proj.ViewHeight, scalers.Built(), len(lvl.Doors), len(lvl.Spawns))
	return g, nil
}

// applyLevelConfig lets the configuration override per-level values.
func applyLevelConfig(cfg *config.Config, l *level.Level) {
	if cfg.Timing.DoorOpenTics > 0 {
		l.DoorOpenTics = cfg.GetDoorOpenTics()
	}
	l.Keys |= cfg.GetKeyMask()
}

// SetEpisode makes elevators advance through ep; index is the level
// currently loaded.
func (g *Game) SetEpisode(ep *config.EpisodeConfig, index int) {
	g.episode = ep
	g.levelIndex = index
}

// Session exposes the simulated state.
func (g *Game) Session() *Session { return g.session }

func (g *Game) Update() error {
	return g.gameLoop.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.gameLoop.Draw(screen)
}

// Layout keeps the classic 320x200 screen and lets ebiten scale it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.gameLoop.Layout(outsideWidth, outsideHeight)
}

// Close stops the column workers.
func (g *Game) Close() {
	g.threading.Shutdown()
}

// nextLevel follows an elevator to the episode's next map.
func (g *Game) nextLevel() error {
	if g.episode == nil {
		g.showMessage("no episode loaded")
		return nil
	}
	next, ok := g.episode.Next(g.levelIndex)
	if !ok {
		g.showMessage("episode complete")
		return nil
	}

	lvl, err := level.Load(g.episode.LevelPath(next))
	if err != nil {
		return err
	}
	applyLevelConfig(g.config, lvl)
	if err := g.session.ChangeLevel(lvl); err != nil {
		return fmt.Errorf("level %s: %w", g.episode.Levels[next].Name, err)
	}
	g.levelIndex = next
	g.showMessage("entering " + g.episode.Levels[next].Name)
	log.Printf("level %d: %s", next, g.episode.Levels[next].Name)
	return nil
}

// messageTicsShown is how long a status message stays up.
const messageTicsShown = 140

func (g *Game) showMessage(msg string) {
	g.message = msg
	g.messageTics = messageTicsShown
}
