package raycast

import (
	"github.com/Ragnaroek/iron-wolf-sub000/internal/fixed"
	"github.com/Ragnaroek/iron-wolf-sub000/internal/projection"
)

// Consts is the per-frame view snapshot every column cast reads.
//
// The view point sits FocalLength behind the viewer so that walls the
// viewer is pressed against are still in front of the projection plane.
// The partials are how far the view point is into its tile towards each
// grid direction; they are 16 bit words, so a view point exactly on a grid
// line has an up partial of zero rather than a whole tile.
type Consts struct {
	ViewX, ViewY     fixed.Fixed
	ViewAngle        int
	MidAngle         int32
	ViewSin, ViewCos fixed.Fixed
	FocalTX, FocalTY int

	XPartialDown, XPartialUp uint16
	YPartialDown, YPartialUp uint16
}

// NormalizeAngle folds a coarse angle into [0, 360).
func NormalizeAngle(angle int) int {
	angle %= fixed.Angles
	if angle < 0 {
		angle += fixed.Angles
	}
	return angle
}

// NewConsts computes the snapshot for a viewer at (x, y) facing angle
// (coarse units, 0 is east, counter-clockwise).
func NewConsts(proj *projection.Config, x, y fixed.Fixed, angle int) Consts {
	angle = NormalizeAngle(angle)
	c := Consts{
		ViewAngle: angle,
		MidAngle:  int32(angle * fixed.FinePerCoarse),
		ViewSin:   proj.Sin(angle),
		ViewCos:   proj.Cos(angle),
	}
	c.ViewX = x - fixed.FixedByFrac(proj.FocalLength, c.ViewCos)
	c.ViewY = y + fixed.FixedByFrac(proj.FocalLength, c.ViewSin)

	c.FocalTX = c.ViewX.Int()
	c.FocalTY = c.ViewY.Int()

	c.XPartialDown = c.ViewX.Frac()
	c.XPartialUp = uint16(fixed.TileGlobal - uint32(c.XPartialDown))
	c.YPartialDown = c.ViewY.Frac()
	c.YPartialUp = uint16(fixed.TileGlobal - uint32(c.YPartialDown))
	return c
}
