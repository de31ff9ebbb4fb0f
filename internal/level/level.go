package level

import (
	"errors"
	"fmt"
)

var (
	ErrTooManyDoors  = errors.New("too many doors on level")
	ErrBadTile       = errors.New("unknown tile code")
	ErrOpenBorder    = errors.New("level border is not solid")
	ErrBadDimensions = errors.New("level planes must be 64x64")
)

// MaxDoors is the number of doors a level can hold; door numbers must fit
// the low bits of a door tile code.
const MaxDoors = 64

// DefaultDoorOpenTics is how long an open door waits before closing.
const DefaultDoorOpenTics = 300

// ActorMarker is written into the occupancy grid by collaborators for tiles
// an actor stands on.
const ActorMarker uint16 = 0xFFFF

// Level is the mutable map a frame is cast against. All grids are indexed
// [x][y]. Doors and the push-wall mutate Tiles and Occupancy between frames;
// nothing mutates them while a frame is being cast.
type Level struct {
	Name string

	// Tiles is the tile map the caster walks.
	Tiles [MapSize][MapSize]Tile
	// Info is the object plane: spawn codes and push-wall markers.
	Info [MapSize][MapSize]uint16
	// Occupancy is non-zero where something solid stands: wall codes,
	// closed or closing doors (0x80|n) and ActorMarker.
	Occupancy [MapSize][MapSize]uint16
	// Areas keeps the floor area codes of the raw tile plane.
	Areas [MapSize][MapSize]uint16

	Doors    []Door
	PushWall PushWall
	Spawns   []Spawn

	DoorOpenTics int
	// Keys is the held key bitmask checked against locked doors.
	Keys uint8
	// SecretCount counts push-walls triggered on this level.
	SecretCount int
}

// New returns an empty level: no walls, no doors.
func New() *Level {
	return &Level{DoorOpenTics: DefaultDoorOpenTics}
}

// Tile returns the tile code at (x, y).
func (l *Level) Tile(x, y int) Tile { return l.Tiles[x][y] }

// SetWall places a plain wall, marking it solid.
func (l *Level) SetWall(x, y int, texture Tile) {
	l.Tiles[x][y] = texture
	l.Occupancy[x][y] = uint16(texture)
}

// Clear empties (x, y).
func (l *Level) Clear(x, y int) {
	l.Tiles[x][y] = 0
	l.Occupancy[x][y] = 0
}

// SetOccupied marks or clears an actor standing on (x, y).
func (l *Level) SetOccupied(x, y int, occupied bool) {
	if occupied {
		l.Occupancy[x][y] = ActorMarker
	} else if l.Occupancy[x][y] == ActorMarker {
		l.Occupancy[x][y] = 0
	}
}

// Blocked reports whether movement into (x, y) is impossible.
func (l *Level) Blocked(x, y int) bool {
	if !(Pos{x, y}).inside() {
		return true
	}
	return l.Occupancy[x][y] != 0
}

// Door returns the door a door tile refers to.
func (l *Level) Door(t Tile) *Door { return &l.Doors[t.DoorIndex()] }

// DoorPosition returns the slide position of door n.
func (l *Level) DoorPosition(n int) uint16 { return l.Doors[n].Position }

// CheckBorder verifies that every edge tile is a plain wall so no ray can
// leave the grid.
func (l *Level) CheckBorder() error {
	for i := 0; i < MapSize; i++ {
		for _, p := range []Pos{{i, 0}, {i, MapSize - 1}, {0, i}, {MapSize - 1, i}} {
			if k := l.Tiles[p.X][p.Y].Kind(); k != KindWall && k != KindDoorFrame {
				return fmt.Errorf("%w: tile (%d,%d) is %s", ErrOpenBorder, p.X, p.Y, l.Tiles[p.X][p.Y].Kind())
			}
		}
	}
	return nil
}

// Planes are the two raw 64x64 planes of a level file, indexed [x][y].
type Planes struct {
	Name  string
	Tiles [MapSize][MapSize]uint16
	Info  [MapSize][MapSize]uint16
}

// Setup turns raw planes into a playable level: walls and floor areas are
// split out, doors are spawned, the object plane is scanned and ambush
// markers are taken out of the tile map afterwards.
func Setup(p *Planes) (*Level, error) {
	l := New()
	l.Name = p.Name
	l.Info = p.Info

	for y := 0; y < MapSize; y++ {
		for x := 0; x < MapSize; x++ {
			raw := p.Tiles[x][y]
			switch {
			case raw == 0 || raw >= RawAreaTile:
				l.Areas[x][y] = raw
			case raw <= uint16(textureMask):
				l.SetWall(x, y, Tile(raw))
			case raw == RawAmbush:
				// marks the spawn on this spot until the scan is done
				l.Areas[x][y] = RawAmbush
			case raw >= RawDoorFirst && raw <= RawDoorLast:
				// spawned below
			default:
				return nil, fmt.Errorf("%w %d at (%d,%d)", ErrBadTile, raw, x, y)
			}
		}
	}

	for y := 0; y < MapSize; y++ {
		for x := 0; x < MapSize; x++ {
			raw := p.Tiles[x][y]
			if raw < RawDoorFirst || raw > RawDoorLast {
				continue
			}
			vertical := (raw-RawDoorFirst)%2 == 0
			lock := DoorLock((raw - RawDoorFirst) / 2)
			if _, err := l.SpawnDoor(x, y, vertical, lock); err != nil {
				return nil, err
			}
		}
	}

	if err := l.CheckBorder(); err != nil {
		return nil, err
	}

	l.ScanInfo()

	for y := 0; y < MapSize; y++ {
		for x := 0; x < MapSize; x++ {
			if p.Tiles[x][y] == RawAmbush {
				l.Clear(x, y)
				l.Areas[x][y] = neighbourArea(p, x, y)
			}
		}
	}
	return l, nil
}

// neighbourArea picks the floor area an ambush marker stood in. East, north,
// south and west are checked in that order and the last floor found wins.
func neighbourArea(p *Planes, x, y int) uint16 {
	area := uint16(RawAmbush)
	for _, d := range []Pos{{1, 0}, {0, -1}, {0, 1}, {-1, 0}} {
		n := Pos{x + d.X, y + d.Y}
		if n.inside() && p.Tiles[n.X][n.Y] >= RawAreaTile {
			area = p.Tiles[n.X][n.Y]
		}
	}
	return area
}
