package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Ragnaroek/iron-wolf-sub000/internal/level"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/mathutil"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/projection"
)

// TicRate is the simulation rate all speeds and door timings are given in.
const TicRate = 70

// GameLoop manages the update and render cycle
type GameLoop struct {
	game          *Game
	ticsPerUpdate int
	border        color.RGBA
}

// NewGameLoop creates a loop that advances TicRate/TPS tics per update.
func NewGameLoop(g *Game) *GameLoop {
	return &GameLoop{
		game:          g,
		ticsPerUpdate: mathutil.IntClamp(TicRate/g.config.GetTicsPerSecond(), 1, g.config.GetMaxTics()),
		border:        color.RGBA{0, 64, 64, 255},
	}
}

// Update advances the simulation by one update's worth of tics.
func (gl *GameLoop) Update() error {
	g := gl.game
	if g.input.ToggleOverlay() {
		g.showOverlay = !g.showOverlay
	}

	g.session.Tick(g.input.Controls(), gl.ticsPerUpdate)
	g.threading.PerformanceMonitor.AddTics(gl.ticsPerUpdate)

	if err := gl.handleUse(g.session.LastUse); err != nil {
		return err
	}
	if g.messageTics > 0 {
		g.messageTics -= gl.ticsPerUpdate
	}

	gl.maybeLogPerfAlerts()
	return nil
}

func (gl *GameLoop) handleUse(result level.UseResult) error {
	g := gl.game
	switch result {
	case level.UseLocked:
		g.showMessage("you need a key")
	case level.UsePushWall:
		g.showMessage("you found a secret")
	case level.UseElevator:
		return g.nextLevel()
	}
	return nil
}

// Draw renders the view into the 8 bit framebuffer and presents it centred
// above the status bar.
func (gl *GameLoop) Draw(screen *ebiten.Image) {
	g := gl.game
	frameTimer := g.threading.PerformanceMonitor.StartFrame()
	defer frameTimer.EndFrame()

	g.lastFrame = g.renderer.RenderView(g.fb, g.session.Level, g.session.Viewer)
	g.palette.Expand(g.rgba, g.fb.Pix)
	if g.viewImg == nil {
		g.viewImg = ebiten.NewImage(g.proj.ViewWidth, g.proj.ViewHeight)
	}
	g.viewImg.WritePixels(g.rgba)

	screen.Fill(gl.border)
	op := &ebiten.DrawImageOptions{}
	x, y := viewOrigin(g.proj)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(g.viewImg, op)

	gl.drawStatusBar(screen)
	if g.showOverlay {
		gl.drawDebugOverlay(screen)
	}
}

// viewOrigin centres the view in the screen area above the status bar.
func viewOrigin(proj *projection.Config) (x, y int) {
	return (projection.ScreenWidth - proj.ViewWidth) / 2,
		(projection.ScreenHeight - projection.StatusLines - proj.ViewHeight) / 2
}

func (gl *GameLoop) Layout(outsideWidth, outsideHeight int) (int, int) {
	return projection.ScreenWidth, projection.ScreenHeight
}
