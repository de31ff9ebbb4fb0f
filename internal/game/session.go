package game

import (
	"errors"

	"github.com/Ragnaroek/iron-wolf-sub000/internal/collision"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/fixed"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/level"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/mathutil"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/projection"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/render"
)

// ErrNoPlayerStart is returned for a level without a player spawn.
var ErrNoPlayerStart = errors.New("level has no player start")

// Controls is the input for one update. Speeds are per tic.
type Controls struct {
	Forward int // global units, negative walks backwards
	Strafe  int // global units, positive steps right
	Turn    int // angle units, positive turns left
	Use     bool
}

// Session is the simulated state between frames: the level, the viewer and
// the movement clipper. Nothing in it touches ebiten.
type Session struct {
	Level  *level.Level
	Viewer render.Viewer

	proj       *projection.Config
	collision  *collision.CollisionSystem
	angleScale int
	angleFrac  int

	LastUse level.UseResult
	Tics    int
}

// NewSession places the viewer on the centre of the level's player start.
func NewSession(proj *projection.Config, l *level.Level, angleScale int) (*Session, error) {
	start, ok := l.PlayerStart()
	if !ok {
		return nil, ErrNoPlayerStart
	}
	return &Session{
		Level:      l,
		Viewer:     startViewer(start),
		proj:       proj,
		collision:  collision.NewCollisionSystem(l, collision.PlayerSize),
		angleScale: max(angleScale, 1),
	}, nil
}

func startViewer(start level.Spawn) render.Viewer {
	c := level.Pos{X: start.X, Y: start.Y}.Centre()
	return render.Viewer{X: c.X, Y: c.Y, Angle: dirAngle(start.Dir)}
}

func dirAngle(d level.Dir) int {
	switch d {
	case level.North:
		return 90
	case level.West:
		return 180
	case level.South:
		return 270
	default:
		return 0
	}
}

// Tick advances the session by tics: the viewer turns and moves, use is
// applied, then doors and the push-wall run.
func (s *Session) Tick(c Controls, tics int) {
	s.turn(c.Turn * tics)
	if c.Forward != 0 {
		s.thrust(s.Viewer.Angle, c.Forward*tics)
	}
	if c.Strafe != 0 {
		s.thrust(mathutil.IntWrap(s.Viewer.Angle-90, fixed.Angles), c.Strafe*tics)
	}

	s.LastUse = level.UseNothing
	if c.Use {
		s.LastUse = s.Level.Use(s.Viewer.Spot(), s.Viewer.Angle)
	}

	s.Level.MoveDoors(tics, s.Viewer.Spot())
	s.Level.MovePushWall(tics)
	s.Tics += tics
}

// turn keeps the remainder below one degree so slow turns still add up.
func (s *Session) turn(units int) {
	s.angleFrac += units
	whole := s.angleFrac / s.angleScale
	s.angleFrac -= whole * s.angleScale
	s.Viewer.Angle = mathutil.IntWrap(s.Viewer.Angle+whole, fixed.Angles)
}

func (s *Session) thrust(angle, speed int) {
	dx, dy := collision.Thrust(s.proj, angle, fixed.Fixed(speed))
	s.Viewer.X, s.Viewer.Y = s.collision.ClipMove(s.Viewer.X, s.Viewer.Y, dx, dy)
}

// ChangeLevel moves the session onto l, keeping the held keys.
func (s *Session) ChangeLevel(l *level.Level) error {
	start, ok := l.PlayerStart()
	if !ok {
		return ErrNoPlayerStart
	}
	l.Keys |= s.Level.Keys
	s.Level = l
	s.collision.UpdateTileChecker(l)
	s.Viewer = startViewer(start)
	s.angleFrac = 0
	return nil
}
