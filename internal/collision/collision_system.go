// Package collision clips viewer movement against the level's occupancy
// grid.
package collision

import (
	"github.com/Ragnaroek/iron-wolf-sub000/internal/fixed"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/projection"
)

// PlayerSize is the half width of the viewer's box. It matches the closest
// distance the height math allows, so the view never gets inside a wall.
const PlayerSize = projection.MinDist

// MaxThrust is the longest single move; anything longer could skip a tile.
const MaxThrust = PlayerSize*2 - 1

// TileChecker reports tiles that stop movement.
type TileChecker interface {
	Blocked(tileX, tileY int) bool
}

// CollisionSystem moves one body through a tile grid.
type CollisionSystem struct {
	tileChecker TileChecker
	size        fixed.Fixed
}

// NewCollisionSystem creates a collision system for a body of half width size.
func NewCollisionSystem(tileChecker TileChecker, size fixed.Fixed) *CollisionSystem {
	return &CollisionSystem{tileChecker: tileChecker, size: size}
}

// UpdateTileChecker swaps the grid, used when a new level is loaded.
func (cs *CollisionSystem) UpdateTileChecker(tileChecker TileChecker) {
	cs.tileChecker = tileChecker
}

// CanMoveTo checks that no tile under the box centred at (x, y) is blocked.
func (cs *CollisionSystem) CanMoveTo(x, y fixed.Fixed) bool {
	x0, y0, x1, y1 := NewBoundingBox(x, y, cs.size).TileBounds()
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			if cs.tileChecker.Blocked(tx, ty) {
				return false
			}
		}
	}
	return true
}

// ClipMove applies (dx, dy) to (x, y). A blocked move slides along the wall:
// the x component alone is tried, then the y component alone, and if both
// fail the body stays put.
func (cs *CollisionSystem) ClipMove(x, y, dx, dy fixed.Fixed) (fixed.Fixed, fixed.Fixed) {
	switch {
	case cs.CanMoveTo(x+dx, y+dy):
		return x + dx, y + dy
	case cs.CanMoveTo(x+dx, y):
		return x + dx, y
	case cs.CanMoveTo(x, y+dy):
		return x, y + dy
	}
	return x, y
}

// Thrust returns the move of speed units along a coarse angle. Angle 90
// faces north, towards smaller y. A negative speed moves backwards. The
// magnitude is capped at MaxThrust.
func Thrust(proj *projection.Config, angle int, speed fixed.Fixed) (dx, dy fixed.Fixed) {
	speed = max(min(speed, MaxThrust), -MaxThrust)
	dx = fixed.FixedByFrac(speed, proj.Cos(angle))
	dy = -fixed.FixedByFrac(speed, proj.Sin(angle))
	return dx, dy
}
