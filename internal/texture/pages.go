// Package texture generates the wall pages the renderer samples. Pages are
// 64x64 palette indices stored column-major (page[x*64+y]), the layout the
// column scaler reads.
package texture

import "fmt"

// PageSize is the byte size of one wall page.
const PageSize = 64 * 64

// Wall textures 1..63 each get a light page for horizontal faces and a dark
// one for vertical faces; the eight door pages follow.
const (
	WallTextures = 63
	DoorWall     = WallTextures * 2
	NumPages     = DoorWall + 8
)

// Offsets from DoorWall. Vertical faces use the next page.
const (
	DoorPage         = 0
	DoorFramePage    = 2
	ElevatorDoorPage = 4
	LockedDoorPage   = 6
)

// HorizWallPage returns the page for a horizontal face of wall texture t.
func HorizWallPage(t int) int { return (t - 1) * 2 }

// VertWallPage returns the page for a vertical face of wall texture t.
func VertWallPage(t int) int { return (t-1)*2 + 1 }

// WallRamp returns the palette ramp wall texture t is drawn in.
func WallRamp(t int) int { return 1 + (t-1)%(Ramps-1) }

// Set is a full set of generated pages.
type Set struct {
	pages [NumPages][]byte
}

// NewProcedural draws every page. The result only depends on the page
// number, so two sets are always identical.
func NewProcedural() *Set {
	s := &Set{}
	for t := 1; t <= WallTextures; t++ {
		ramp := WallRamp(t)
		pattern := (t - 1) / (Ramps - 1)
		s.pages[HorizWallPage(t)] = wallPage(ramp, 12, pattern)
		s.pages[VertWallPage(t)] = wallPage(ramp, 8, pattern)
	}
	for face := 0; face < 2; face++ {
		bright := 12 - 4*face
		s.pages[DoorWall+DoorPage+face] = doorPage(15, bright, false)
		s.pages[DoorWall+DoorFramePage+face] = framePage(15, bright)
		s.pages[DoorWall+ElevatorDoorPage+face] = doorPage(8, bright, false)
		s.pages[DoorWall+LockedDoorPage+face] = doorPage(15, bright, true)
	}
	return s
}

// WallPage returns page n. It panics for pages that do not exist.
func (s *Set) WallPage(n int) []byte {
	if n < 0 || n >= NumPages {
		panic(fmt.Sprintf("texture: page %d outside [0,%d)", n, NumPages))
	}
	return s.pages[n]
}

func newPage() []byte { return make([]byte, PageSize) }

func set(page []byte, x, y int, c byte) { page[x*64+y] = c }

// wallPage draws one of four masonry patterns in ramp at shade bright.
func wallPage(ramp, bright, pattern int) []byte {
	page := newPage()
	base := Index(ramp, bright)
	mortar := Index(ramp, bright-5)
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			c := base
			switch pattern % 4 {
			case 0: // brick, mortar every 8 rows, staggered joints
				if y%8 == 0 || (x+(y/8%2)*8)%16 == 0 {
					c = mortar
				}
			case 1: // large blocks
				if y%16 == 0 || (x+(y/16%2)*16)%32 == 0 {
					c = mortar
				}
			case 2: // planks
				if x%8 == 0 {
					c = mortar
				} else if (x*7+y*3)%11 == 0 {
					c = Index(ramp, bright-2)
				}
			default: // panels
				if x%32 < 2 || y%32 < 2 {
					c = mortar
				} else if x%32 > 29 || y%32 > 29 {
					c = Index(ramp, bright+2)
				}
			}
			set(page, x, y, c)
		}
	}
	return page
}

// doorPage draws a door slab with a handle and optional lock plate.
func doorPage(ramp, bright int, locked bool) []byte {
	page := newPage()
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			c := Index(ramp, bright)
			if x%16 == 0 || y < 2 || y > 61 {
				c = Index(ramp, bright-4)
			}
			if x >= 52 && x < 56 && y >= 28 && y < 36 {
				c = Index(9, 14)
			}
			if locked && x >= 50 && x < 58 && y >= 38 && y < 44 {
				c = Index(13, 12)
			}
			set(page, x, y, c)
		}
	}
	return page
}

// framePage draws the jamb seen beside a door.
func framePage(ramp, bright int) []byte {
	page := newPage()
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			c := Index(ramp, bright-2)
			if x < 4 || x > 59 {
				c = Index(ramp, bright-6)
			}
			set(page, x, y, c)
		}
	}
	return page
}
