// Package raycast walks one ray per view column through the tile map.
//
// The walk alternates between the vertical grid lines (x = const) and the
// horizontal ones (y = const). Each crossing is tested against the map until
// something solid is found. The arithmetic is 16.16 fixed point throughout
// and matches the frame-exact results the renderer and the tests expect.
package raycast

import (
	"fmt"

	"github.com/Ragnaroek/iron-wolf-sub000/internal/fixed"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/level"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/projection"
)

// cmpOp is the termination comparison chosen for a ray direction. A ray
// stepping towards lower tile numbers is past a grid line when the intercept
// is at or below it; towards higher numbers when at or above it. Equality
// always counts as past, which sends corner hits to the horizontal check.
type cmpOp uint8

const (
	cmpLE cmpOp = iota
	cmpGE
)

func cmpFor(step int) cmpOp {
	if step < 0 {
		return cmpLE
	}
	return cmpGE
}

func (c cmpOp) past(intercept, tile int) bool {
	if c == cmpLE {
		return intercept <= tile
	}
	return intercept >= tile
}

// RayCast is the working state for one column. It is reset by InitCast and
// may be reused for every column of every frame. Workers casting columns in
// parallel each need their own.
type RayCast struct {
	Angle int32

	XTile, YTile         int
	XTileStep, YTileStep int
	XStep, YStep         fixed.Fixed

	// XIntercept is where the ray meets the next horizontal grid line,
	// YIntercept where it meets the next vertical one.
	XIntercept, YIntercept fixed.Fixed

	xcmp, ycmp cmpOp
}

// Hit describes the first solid surface a ray met.
type Hit struct {
	// Vertical is true for faces on a vertical grid line (x = const).
	Vertical bool
	Tile     level.Tile
	Kind     level.TileKind
	TileX    int
	TileY    int

	XIntercept, YIntercept fixed.Fixed
	XTileStep, YTileStep   int

	// Door is the door number for door hits, -1 otherwise.
	Door int
	// PushWallPos is the slide offset of a push-wall hit in 1/64 tile.
	PushWallPos int
}

// InitCast prepares the ray through view column col.
func (rc *RayCast) InitCast(proj *projection.Config, col int, c *Consts) {
	angl := c.MidAngle + proj.PixelAngle(col)
	if angl < 0 {
		angl += fixed.FineAngles
	}
	if angl >= fixed.FineAngles {
		angl -= fixed.FineAngles
	}
	rc.Angle = angl

	var xpartial, ypartial uint16
	a := int(angl)
	switch {
	case a < 900:
		rc.XTileStep, rc.YTileStep = 1, -1
		rc.XStep = fixed.Fixed(proj.FineTangent(899 - a))
		rc.YStep = -fixed.Fixed(proj.FineTangent(a))
		xpartial, ypartial = c.XPartialUp, c.YPartialDown
	case a < 1800:
		rc.XTileStep, rc.YTileStep = -1, -1
		rc.XStep = -fixed.Fixed(proj.FineTangent(a - 900))
		rc.YStep = -fixed.Fixed(proj.FineTangent(1799 - a))
		xpartial, ypartial = c.XPartialDown, c.YPartialDown
	case a < 2700:
		rc.XTileStep, rc.YTileStep = -1, 1
		rc.XStep = -fixed.Fixed(proj.FineTangent(2699 - a))
		rc.YStep = fixed.Fixed(proj.FineTangent(a - 1800))
		xpartial, ypartial = c.XPartialDown, c.YPartialUp
	default:
		rc.XTileStep, rc.YTileStep = 1, 1
		rc.XStep = fixed.Fixed(proj.FineTangent(a - 2700))
		rc.YStep = fixed.Fixed(proj.FineTangent(3599 - a))
		xpartial, ypartial = c.XPartialUp, c.YPartialUp
	}

	rc.YIntercept = fixed.FixedByFrac(rc.YStep, fixed.Fixed(xpartial)) + c.ViewY
	rc.XTile = c.FocalTX + rc.XTileStep
	rc.XIntercept = fixed.FixedByFrac(rc.XStep, fixed.Fixed(ypartial)) + c.ViewX
	rc.YTile = c.FocalTY + rc.YTileStep

	rc.xcmp = cmpFor(rc.XTileStep)
	rc.ycmp = cmpFor(rc.YTileStep)
}

// Cast walks the ray set up by InitCast until it hits something. The level
// must be closed by a solid border; a ray that leaves the grid panics.
func (rc *RayCast) Cast(l *level.Level) Hit {
	vertical := true
	for {
		if vertical {
			if rc.ycmp.past(rc.YIntercept.Int(), rc.YTile) {
				vertical = false
			}
		} else if rc.xcmp.past(rc.XIntercept.Int(), rc.XTile) {
			vertical = true
		}

		if vertical {
			if hit, ok := rc.vertEntry(l); ok {
				return hit
			}
		} else if hit, ok := rc.horizEntry(l); ok {
			return hit
		}
	}
}

func (rc *RayCast) hit(vertical bool, t level.Tile, x, y int) Hit {
	h := Hit{
		Vertical:   vertical,
		Tile:       t,
		Kind:       t.Kind(),
		TileX:      x,
		TileY:      y,
		XIntercept: rc.XIntercept,
		YIntercept: rc.YIntercept,
		XTileStep:  rc.XTileStep,
		YTileStep:  rc.YTileStep,
		Door:       -1,
	}
	if h.Kind == level.KindDoor {
		h.Door = t.DoorIndex()
	}
	return h
}

func tileAt(l *level.Level, x, y int) level.Tile {
	if x < 0 || x >= level.MapSize || y < 0 || y >= level.MapSize {
		panic(fmt.Sprintf("raycast: ray left the map at tile (%d,%d)", x, y))
	}
	return l.Tiles[x][y]
}

// vertEntry tests the crossing with the vertical grid line at XTile and
// advances to the next one if nothing blocks.
func (rc *RayCast) vertEntry(l *level.Level) (Hit, bool) {
	ty := rc.YIntercept.Int()
	t := tileAt(l, rc.XTile, ty)

	switch t.Kind() {
	case level.KindEmpty:
	case level.KindDoor:
		yintbuf := rc.YIntercept + rc.YStep>>1
		if yintbuf.Int() == ty && yintbuf.Frac() >= l.DoorPosition(t.DoorIndex()) {
			rc.YIntercept = yintbuf
			rc.XIntercept = fixed.FromInt(rc.XTile) | fixed.Half
			return rc.hit(true, t, rc.XTile, ty), true
		}
	case level.KindPushWall:
		pos := l.PushWall.Pos
		yintbuf := rc.YIntercept + fixed.Fixed(int64(rc.YStep)*int64(pos)>>6)
		if yintbuf.Int() == ty {
			rc.YIntercept = yintbuf
			rc.XIntercept = fixed.FromInt(rc.XTile)
			h := rc.hit(true, t, rc.XTile, ty)
			h.PushWallPos = pos
			return h, true
		}
	default:
		rc.XIntercept = fixed.FromInt(rc.XTile)
		return rc.hit(true, t, rc.XTile, ty), true
	}

	rc.XTile += rc.XTileStep
	rc.YIntercept += rc.YStep
	return Hit{}, false
}

// horizEntry is vertEntry for the horizontal grid line at YTile.
func (rc *RayCast) horizEntry(l *level.Level) (Hit, bool) {
	tx := rc.XIntercept.Int()
	t := tileAt(l, tx, rc.YTile)

	switch t.Kind() {
	case level.KindEmpty:
	case level.KindDoor:
		xintbuf := rc.XIntercept + rc.XStep>>1
		if xintbuf.Int() == tx && xintbuf.Frac() >= l.DoorPosition(t.DoorIndex()) {
			rc.XIntercept = xintbuf
			rc.YIntercept = fixed.FromInt(rc.YTile) | fixed.Half
			return rc.hit(false, t, tx, rc.YTile), true
		}
	case level.KindPushWall:
		pos := l.PushWall.Pos
		xintbuf := rc.XIntercept + fixed.Fixed(int64(rc.XStep)*int64(pos)>>6)
		if xintbuf.Int() == tx {
			rc.XIntercept = xintbuf
			rc.YIntercept = fixed.FromInt(rc.YTile)
			h := rc.hit(false, t, tx, rc.YTile)
			h.PushWallPos = pos
			return h, true
		}
	default:
		rc.YIntercept = fixed.FromInt(rc.YTile)
		return rc.hit(false, t, tx, rc.YTile), true
	}

	rc.YTile += rc.YTileStep
	rc.XIntercept += rc.XStep
	return Hit{}, false
}
