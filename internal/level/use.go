package level

// UseResult reports what pressing use did.
type UseResult uint8

const (
	UseNothing UseResult = iota
	UseDoor
	UseLocked
	UsePushWall
	UseBlocked
	UseElevator
)

func (r UseResult) String() string {
	return [...]string{"nothing", "door", "locked", "push-wall", "blocked", "elevator"}[r]
}

// Facing returns the cardinal direction a coarse angle points at and whether
// an elevator switch can be worked from it. Elevator switches sit on east and
// west faces only.
func Facing(angle int) (dir Dir, elevatorOK bool) {
	switch {
	case angle < 45 || angle > 315:
		return East, true
	case angle < 135:
		return North, false
	case angle < 225:
		return West, true
	default:
		return South, false
	}
}

// Use performs the use action for a viewer at facing angle. Push markers win
// over elevators, elevators over doors.
func (l *Level) Use(viewer Spot, angle int) UseResult {
	tile := viewer.Tile()
	dir, elevatorOK := Facing(angle)
	dx, dy := dir.Delta()
	x, y := tile.X+dx, tile.Y+dy
	if !(Pos{x, y}).inside() {
		return UseNothing
	}

	if l.Info[x][y] == PushableTile {
		if l.StartPushWall(x, y, dir) {
			return UsePushWall
		}
		return UseBlocked
	}

	t := l.Tiles[x][y]
	if t == ElevatorTile && elevatorOK {
		return UseElevator
	}
	if t.Kind() == KindDoor {
		if l.OperateDoor(t.DoorIndex(), viewer) {
			return UseDoor
		}
		return UseLocked
	}
	return UseNothing
}
