package collision

import "github.com/Ragnaroek/iron-wolf-sub000/internal/fixed"

// BoundingBox is a square collision boundary centred on a map position.
type BoundingBox struct {
	X, Y fixed.Fixed // centre
	Half fixed.Fixed // half the side length
}

// NewBoundingBox creates a box centred at (x, y).
func NewBoundingBox(x, y, half fixed.Fixed) *BoundingBox {
	return &BoundingBox{X: x, Y: y, Half: half}
}

// GetBounds returns the min/max coordinates of the box.
func (bb *BoundingBox) GetBounds() (minX, minY, maxX, maxY fixed.Fixed) {
	return bb.X - bb.Half, bb.Y - bb.Half, bb.X + bb.Half, bb.Y + bb.Half
}

// TileBounds returns the range of tiles the box touches, inclusive.
func (bb *BoundingBox) TileBounds() (x0, y0, x1, y1 int) {
	minX, minY, maxX, maxY := bb.GetBounds()
	return minX.Int(), minY.Int(), maxX.Int(), maxY.Int()
}

