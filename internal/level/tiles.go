package level

import (
	"github.com/Ragnaroek/iron-wolf-sub000/internal/fixed"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/projection"
)

// MapSize is the edge length of every level grid.
const MapSize = fixed.MapSize

// Tile is a runtime tile map code.
//
//	0          empty floor
//	1..63      wall, value is the wall texture
//	0x41..0x7F wall next to a door (frame), low bits are the texture
//	0x80|n     door n
//	0xC0|t     push-wall in flight showing texture t
type Tile uint16

const (
	DoorFrameFlag Tile = 0x40
	DoorFlag      Tile = 0x80
	PushWallFlag  Tile = 0xC0
	textureMask   Tile = 0x3F
)

// ElevatorTile is the wall whose switch ends the level when used from the
// east or west.
const ElevatorTile Tile = 21

// Raw tile plane codes as stored in level files.
const (
	RawDoorFirst = 90
	RawDoorLast  = 101
	RawAmbush    = 106
	RawAreaTile  = 107
)

// TileKind is what the caster and the door logic need to know about a code.
type TileKind uint8

const (
	KindEmpty TileKind = iota
	KindWall
	KindDoorFrame
	KindDoor
	KindPushWall
	KindInvalid
)

func (k TileKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindWall:
		return "wall"
	case KindDoorFrame:
		return "door frame"
	case KindDoor:
		return "door"
	case KindPushWall:
		return "push-wall"
	default:
		return "invalid"
	}
}

type kindRange struct {
	first, last Tile
	kind        TileKind
}

// tileKindRanges is the single source of truth for code classification.
var tileKindRanges = []kindRange{
	{0x00, 0x00, KindEmpty},
	{0x01, 0x3F, KindWall},
	{0x40, 0x40, KindInvalid},
	{0x41, 0x7F, KindDoorFrame},
	{0x80, 0xBF, KindDoor},
	{0xC0, 0xC0, KindInvalid},
	{0xC1, 0xFF, KindPushWall},
}

var tileKinds [256]TileKind

func init() {
	for i := range tileKinds {
		tileKinds[i] = KindInvalid
	}
	for _, r := range tileKindRanges {
		for t := r.first; t <= r.last; t++ {
			tileKinds[t] = r.kind
		}
	}
}

// Classify returns the kind of a tile code.
func Classify(t Tile) TileKind {
	if int(t) >= len(tileKinds) {
		return KindInvalid
	}
	return tileKinds[t]
}

// Texture is the wall texture number carried by a wall, frame or push-wall
// code.
func (t Tile) Texture() int { return int(t & textureMask) }

// DoorIndex is the door number carried by a door code.
func (t Tile) DoorIndex() int { return int(t &^ DoorFlag) }

// Kind is shorthand for Classify(t).
func (t Tile) Kind() TileKind { return Classify(t) }

// Solid reports whether the caster stops (or may stop) on t.
func (t Tile) Solid() bool { return t != 0 }

// Dir is a cardinal direction on the grid. North is towards y = 0.
type Dir uint8

const (
	North Dir = iota
	East
	South
	West
)

// Delta returns the tile offset one step in d.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d Dir) String() string {
	return [...]string{"north", "east", "south", "west"}[d&3]
}

// Pos is a tile coordinate.
type Pos struct{ X, Y int }

// Centre returns the middle of tile p.
func (p Pos) Centre() Spot {
	return Spot{X: fixed.FromInt(p.X) + fixed.Half, Y: fixed.FromInt(p.Y) + fixed.Half}
}

func (p Pos) inside() bool {
	return p.X >= 0 && p.X < MapSize && p.Y >= 0 && p.Y < MapSize
}

// ViewerSize is the half width of the viewer's square box.
const ViewerSize = projection.MinDist

// Spot is a viewer position in global units.
type Spot struct{ X, Y fixed.Fixed }

// Tile returns the tile s is in.
func (s Spot) Tile() Pos { return Pos{X: s.X.Int(), Y: s.Y.Int()} }

// Reaches reports whether the viewer box centred on s overlaps tile (x, y).
// The tile range matches the one movement clipping tests.
func (s Spot) Reaches(x, y int) bool {
	return (s.X-ViewerSize).Int() <= x && x <= (s.X+ViewerSize).Int() &&
		(s.Y-ViewerSize).Int() <= y && y <= (s.Y+ViewerSize).Int()
}
