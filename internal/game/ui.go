package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/Ragnaroek/iron-wolf-sub000/internal/projection"
)

// UI colours
var (
	UIColorStatusBar = color.RGBA{0, 0, 96, 255}
	UIColorText      = color.RGBA{255, 255, 255, 255}
	UIColorKeys      = color.RGBA{255, 215, 0, 255}
	UIColorOverlayBG = color.RGBA{0, 0, 0, 160}
)

type coloredTextSegment struct {
	text  string
	color color.Color
}

func drawColoredTextSegments(screen *ebiten.Image, x, y int, segments []coloredTextSegment) {
	face := basicfont.Face7x13
	baseline := y + face.Ascent
	curX := x
	for _, seg := range segments {
		ebitext.Draw(screen, seg.text, face, curX, baseline, seg.color)
		curX += font.MeasureString(face, seg.text).Round()
	}
}

// drawStatusBar fills the bottom rows with the level name, the held keys and
// the current message.
func (gl *GameLoop) drawStatusBar(screen *ebiten.Image) {
	g := gl.game
	top := projection.ScreenHeight - projection.StatusLines
	vector.DrawFilledRect(screen, 0, float32(top), projection.ScreenWidth, projection.StatusLines, UIColorStatusBar, false)

	l := g.session.Level
	drawColoredTextSegments(screen, 6, top+4, []coloredTextSegment{
		{l.Name, UIColorText},
		{"  keys ", UIColorText},
		{keyString(l.Keys), UIColorKeys},
		{fmt.Sprintf("  secrets %d", l.SecretCount), UIColorText},
	})
	if g.messageTics > 0 {
		drawColoredTextSegments(screen, 6, top+20, []coloredTextSegment{{g.message, UIColorText}})
	}
}

func keyString(mask uint8) string {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		if mask&(1<<i) != 0 {
			b.WriteByte(byte('1' + i))
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// drawDebugOverlay prints the viewer state and the cast timings over the
// top left of the view.
func (gl *GameLoop) drawDebugOverlay(screen *ebiten.Image) {
	lines := gl.debugLines()
	h := len(lines) * 13
	vector.DrawFilledRect(screen, 0, 0, 200, float32(h+4), UIColorOverlayBG, false)
	for i, line := range lines {
		drawColoredTextSegments(screen, 2, 2+i*13, []coloredTextSegment{{line, UIColorText}})
	}
}

func (gl *GameLoop) debugLines() []string {
	g := gl.game
	v := g.session.Viewer
	m := g.threading.PerformanceMonitor.GetCurrentMetrics()
	center := g.proj.ViewWidth / 2

	lines := []string{
		fmt.Sprintf("pos %.2f,%.2f ang %d", v.X.Float(), v.Y.Float(), v.Angle),
		fmt.Sprintf("tile %d,%d tics %d", v.Tile().X, v.Tile().Y, g.session.Tics),
		fmt.Sprintf("fps %.1f tps %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("cast %v avg %v", m.LastRaycastTime, m.AvgRaycastTime),
	}
	if len(g.lastFrame.Hits) > center {
		h := g.lastFrame.Hits[center]
		lines = append(lines, fmt.Sprintf("aim %d,%d %s h%d", h.TileX, h.TileY, h.Kind, g.lastFrame.WallHeight[center]))
	}
	if pw := g.session.Level.PushWall; pw.Active() {
		lines = append(lines, fmt.Sprintf("pushwall %d,%d %s %d", pw.X, pw.Y, pw.Dir, pw.Pos))
	}
	return lines
}
