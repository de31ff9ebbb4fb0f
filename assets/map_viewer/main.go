package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/Ragnaroek/iron-wolf-sub000/internal/config"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/level"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/texture"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300
)

type mapInfo struct {
	Name  string
	Path  string
	Level *level.Level
	Err   error
}

type viewer struct {
	maps       []mapInfo
	mapIndex   int
	sidebarTab int
	palette    *texture.Palette
	lastErr    string
}

const (
	tabInfo = iota
	tabLegend
)

func main() {
	ensureRuntimeCWD()

	cfg := config.MustLoadConfig("config.yaml")

	maps, err := loadMaps(cfg)
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	v := &viewer{
		maps:       maps,
		sidebarTab: tabInfo,
		palette:    texture.NewPalette(),
	}
	if len(maps) == 0 {
		v.lastErr = "no maps loaded"
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("iron-wolf map viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if v.sidebarTab == tabInfo {
			v.sidebarTab = tabLegend
		} else {
			v.sidebarTab = tabInfo
		}
	}

	if len(v.maps) > 0 {
		if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
			v.mapIndex = (v.mapIndex + 1) % len(v.maps)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
			v.mapIndex = (v.mapIndex + len(v.maps) - 1) % len(v.maps)
		}
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	if len(v.maps) == 0 {
		ebitenutil.DebugPrintAt(screen, v.lastErr, 16, 16)
		return
	}

	m := v.maps[v.mapIndex]
	if m.Err != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("map %s failed to load: %v", m.Path, m.Err), 16, 16)
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()

	padding := 16
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2
	sidebarX := padding + mapAreaW + padding

	drawMapPanel(screen, m, padding, padding, mapAreaW, mapAreaH, v.palette)
	lines := infoLines(m)
	if v.sidebarTab == tabLegend {
		lines = legendLines
	}
	drawSidebar(screen, sidebarX, padding, sidebarWidth, mapAreaH, lines)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func drawMapPanel(screen *ebiten.Image, m mapInfo, x, y, w, h int, pal *texture.Palette) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	tileSize := max(min(w, h-40)/level.MapSize, 2)
	originX := x + (w-level.MapSize*tileSize)/2
	originY := y + 40 + (h-40-level.MapSize*tileSize)/2

	l := m.Level
	for ty := 0; ty < level.MapSize; ty++ {
		for tx := 0; tx < level.MapSize; tx++ {
			clr := tileColor(l, tx, ty, pal)
			drawFilledRect(screen, originX+tx*tileSize, originY+ty*tileSize, tileSize, tileSize, clr)
			if l.Info[tx][ty] == level.PushableTile {
				drawTileLetter(screen, originX, originY, tileSize, tx, ty, "P")
			}
		}
	}

	for _, s := range l.Spawns {
		letter := spawnLetter(s.Kind)
		switch s.Kind {
		case level.SpawnPlayer:
			drawTileMarkerCircle(screen, originX, originY, tileSize, s.X, s.Y, color.RGBA{50, 200, 255, 255}, true)
		case level.SpawnStatic:
			drawTileMarkerRect(screen, originX, originY, tileSize, s.X, s.Y, color.RGBA{255, 220, 0, 255})
		default:
			clr := color.RGBA{230, 80, 80, 255}
			if s.Ambush {
				clr = color.RGBA{160, 40, 200, 255}
			}
			drawTileMarkerCircle(screen, originX, originY, tileSize, s.X, s.Y, clr, false)
		}
		if letter != "" {
			drawTileLetter(screen, originX, originY, tileSize, s.X, s.Y, letter)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s (%s)", l.Name, m.Path), x+12, y+8)
	ebitenutil.DebugPrintAt(screen, "Left/Right (or A/D) to switch maps, Tab for legend, Esc to quit", x+12, y+24)
}

var (
	floorColor  = color.RGBA{40, 40, 48, 255}
	doorColor   = color.RGBA{0, 160, 160, 255}
	lockedColor = color.RGBA{220, 180, 0, 255}
	liftColor   = color.RGBA{120, 120, 200, 255}
	frameColor  = color.RGBA{90, 90, 90, 255}
)

// tileColor paints walls in their texture's ramp so the map matches the
// rendered view.
func tileColor(l *level.Level, x, y int, pal *texture.Palette) color.RGBA {
	t := l.Tile(x, y)
	switch t.Kind() {
	case level.KindEmpty:
		return floorColor
	case level.KindDoor:
		switch l.Door(t).Lock {
		case level.LockNormal:
			return doorColor
		case level.LockElevator:
			return liftColor
		default:
			return lockedColor
		}
	case level.KindDoorFrame:
		return frameColor
	}
	return pal[texture.Index(texture.WallRamp(max(t.Texture(), 1)), 10)]
}

func spawnLetter(k level.SpawnKind) string {
	switch k {
	case level.SpawnPlayer:
		return "@"
	case level.SpawnGuard:
		return "g"
	case level.SpawnOfficer:
		return "o"
	case level.SpawnSS:
		return "s"
	case level.SpawnDog:
		return "d"
	case level.SpawnMutant:
		return "m"
	case level.SpawnBoss:
		return "B"
	case level.SpawnDeadGuard:
		return "x"
	}
	return ""
}

var legendLines = []string{
	"@  player start",
	"P  push-wall marker",
	"g  guard   o  officer",
	"s  SS      d  dog",
	"m  mutant  B  boss",
	"x  dead guard",
	"yellow square  static object",
	"purple ring    ambush",
	"",
	"teal    door",
	"gold    locked door",
	"violet  elevator door",
	"grey    door frame",
}

func infoLines(m mapInfo) []string {
	l := m.Level
	counts := map[level.SpawnKind]int{}
	for _, s := range l.Spawns {
		counts[s.Kind]++
	}
	locked := 0
	for _, d := range l.Doors {
		if d.Lock != level.LockNormal && d.Lock != level.LockElevator {
			locked++
		}
	}
	pushWalls := 0
	for x := 0; x < level.MapSize; x++ {
		for y := 0; y < level.MapSize; y++ {
			if l.Info[x][y] == level.PushableTile {
				pushWalls++
			}
		}
	}

	lines := []string{
		"Name: " + l.Name,
		fmt.Sprintf("Doors: %d (%d locked)", len(l.Doors), locked),
		fmt.Sprintf("Push-walls: %d", pushWalls),
		fmt.Sprintf("Door open tics: %d", l.DoorOpenTics),
		fmt.Sprintf("Keys: %04b", l.Keys),
		"",
	}
	for k := level.SpawnPlayer; k <= level.SpawnBoss; k++ {
		if counts[k] > 0 {
			lines = append(lines, fmt.Sprintf("%-12s %d", k, counts[k]))
		}
	}
	return lines
}

func drawSidebar(screen *ebiten.Image, x, y, w, h int, lines []string) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+12, y+12+i*14)
	}
}

func loadMaps(cfg *config.Config) ([]mapInfo, error) {
	if cfg.Level.Episode == "" {
		l, err := level.Load(cfg.Level.Path)
		return []mapInfo{{Name: filepath.Base(cfg.Level.Path), Path: cfg.Level.Path, Level: l, Err: err}}, err
	}

	ep, err := config.LoadEpisodeConfig(cfg.Level.Episode)
	if err != nil {
		return nil, err
	}
	maps := make([]mapInfo, 0, len(ep.Levels))
	for i, el := range ep.Levels {
		path := ep.LevelPath(i)
		l, err := level.Load(path)
		maps = append(maps, mapInfo{Name: el.Name, Path: path, Level: l, Err: err})
	}
	return maps, nil
}

func drawTileMarkerCircle(screen *ebiten.Image, originX, originY, tileSize, tx, ty int, clr color.RGBA, stroke bool) {
	cx := float32(originX + tx*tileSize + tileSize/2)
	cy := float32(originY + ty*tileSize + tileSize/2)
	r := float32(tileSize) * 0.4
	if stroke {
		vector.StrokeCircle(screen, cx, cy, r, 2, clr, true)
		return
	}
	vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
}

func drawTileMarkerRect(screen *ebiten.Image, originX, originY, tileSize, tx, ty int, clr color.RGBA) {
	inset := tileSize / 4
	drawFilledRect(screen, originX+tx*tileSize+inset, originY+ty*tileSize+inset, tileSize-2*inset, tileSize-2*inset, clr)
}

func drawTileLetter(screen *ebiten.Image, originX, originY, tileSize, tx, ty int, letter string) {
	if tileSize < 8 {
		return
	}
	ebitenutil.DebugPrintAt(screen, letter, originX+tx*tileSize+tileSize/2-3, originY+ty*tileSize+tileSize/2-8)
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	t := float32(thickness)
	fx := float32(x)
	fy := float32(y)
	fw := float32(w)
	fh := float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}

func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}
