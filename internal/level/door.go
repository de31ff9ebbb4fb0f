package level

import "fmt"

// DoorAction is the state of a door's animation.
type DoorAction uint8

const (
	DoorOpen DoorAction = iota
	DoorClosed
	DoorOpening
	DoorClosing
)

func (a DoorAction) String() string {
	switch a {
	case DoorOpen:
		return "open"
	case DoorClosed:
		return "closed"
	case DoorOpening:
		return "opening"
	default:
		return "closing"
	}
}

// DoorLock selects which key (if any) a door needs and its texture.
type DoorLock uint8

const (
	LockNormal DoorLock = iota
	Lock1
	Lock2
	Lock3
	Lock4
	LockElevator
)

// DoorMaxPosition is the slide position of a fully open door.
const DoorMaxPosition = 0xFFFF

// doorSpeed is slide units per tic (1/64 tile).
const doorSpeed = 1 << 10

// Door is one sliding door. Position is 0 when closed and DoorMaxPosition
// when open; the caster treats the part of the tile below Position as open.
type Door struct {
	TileX, TileY int
	Vertical     bool
	Lock         DoorLock
	Action       DoorAction
	TicCount     int
	Position     uint16
}

// SpawnDoor adds a closed door at (x, y). The walls on either side of the
// door slab are flagged as door frames.
func (l *Level) SpawnDoor(x, y int, vertical bool, lock DoorLock) (int, error) {
	n := len(l.Doors)
	if n == MaxDoors {
		return 0, fmt.Errorf("%w: door at (%d,%d) would be number %d", ErrTooManyDoors, x, y, n+1)
	}

	l.Doors = append(l.Doors, Door{
		TileX:    x,
		TileY:    y,
		Vertical: vertical,
		Lock:     lock,
		Action:   DoorClosed,
	})
	code := DoorFlag | Tile(n)
	l.Tiles[x][y] = code
	l.Occupancy[x][y] = uint16(code)

	if vertical {
		l.markFrame(x, y-1)
		l.markFrame(x, y+1)
	} else {
		l.markFrame(x-1, y)
		l.markFrame(x+1, y)
	}
	return n, nil
}

func (l *Level) markFrame(x, y int) {
	if !(Pos{x, y}).inside() {
		return
	}
	if l.Tiles[x][y].Kind() == KindWall {
		l.Tiles[x][y] |= DoorFrameFlag
	}
}

// HasKey reports whether the key for lock is held.
func (l *Level) HasKey(lock DoorLock) bool {
	if lock < Lock1 || lock > Lock4 {
		return true
	}
	return l.Keys&(1<<(lock-Lock1)) != 0
}

// OperateDoor toggles door n the way pressing use on it does: closed or
// closing doors open, open or opening doors close. It reports false if the
// door is locked and the key is missing.
func (l *Level) OperateDoor(n int, viewer Spot) bool {
	d := &l.Doors[n]
	if !l.HasKey(d.Lock) {
		return false
	}
	switch d.Action {
	case DoorClosed, DoorClosing:
		l.OpenDoor(n)
	case DoorOpen, DoorOpening:
		l.CloseDoor(n, viewer)
	}
	return true
}

// OpenDoor starts door n opening, or restarts the open timer of an open door.
func (l *Level) OpenDoor(n int) {
	d := &l.Doors[n]
	if d.Action == DoorOpen {
		d.TicCount = 0
	} else {
		d.Action = DoorOpening
	}
}

// CloseDoor starts door n closing unless something stands in the doorway
// or the viewer's box reaches into it. The tile is marked solid as soon as
// the door starts to close.
func (l *Level) CloseDoor(n int, viewer Spot) bool {
	d := &l.Doors[n]
	if l.Occupancy[d.TileX][d.TileY] == ActorMarker {
		return false
	}
	if viewer.Reaches(d.TileX, d.TileY) {
		return false
	}
	d.Action = DoorClosing
	l.Occupancy[d.TileX][d.TileY] = uint16(DoorFlag | Tile(n))
	return true
}

// MoveDoors advances every door by tics. A closing door never shuts on the
// viewer at viewer.
func (l *Level) MoveDoors(tics int, viewer Spot) {
	for n := range l.Doors {
		switch l.Doors[n].Action {
		case DoorOpen:
			l.doorOpen(n, tics, viewer)
		case DoorOpening:
			l.doorOpening(n, tics)
		case DoorClosing:
			l.doorClosing(n, tics, viewer)
		}
	}
}

func (l *Level) doorOpen(n, tics int, viewer Spot) {
	d := &l.Doors[n]
	d.TicCount += tics
	if d.TicCount >= l.DoorOpenTics {
		l.CloseDoor(n, viewer)
	}
}

func (l *Level) doorOpening(n, tics int) {
	d := &l.Doors[n]
	position := int32(d.Position) + int32(tics)*doorSpeed
	if position >= DoorMaxPosition {
		position = DoorMaxPosition
		d.TicCount = 0
		d.Action = DoorOpen
		l.Occupancy[d.TileX][d.TileY] = 0
	}
	d.Position = uint16(position)
}

func (l *Level) doorClosing(n, tics int, viewer Spot) {
	d := &l.Doors[n]
	if l.Occupancy[d.TileX][d.TileY] != uint16(DoorFlag|Tile(n)) || viewer.Reaches(d.TileX, d.TileY) {
		// something got inside the door
		l.OpenDoor(n)
		return
	}

	position := int32(d.Position) - int32(tics)*doorSpeed
	if position <= 0 {
		position = 0
		d.Action = DoorClosed
		l.Occupancy[d.TileX][d.TileY] = uint16(DoorFlag | Tile(n))
	}
	d.Position = uint16(position)
}
