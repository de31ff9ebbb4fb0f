package scaler

import "fmt"

// TextureSize is the edge length of a wall page.
const TextureSize = 64

// Scaler maps each of the 64 rows of a texture column onto the destination
// rows it covers for one projected height. Row offsets are byte offsets
// relative to the top of the view column (row * stride).
type Scaler struct {
	Height int
	// Width is the number of screen rows each source row spans before
	// clipping.
	Width [TextureSize]int
	rows  [TextureSize][]int
}

// Rows returns the destination offsets for source row src, top to bottom.
func (s *Scaler) Rows(src int) []int { return s.rows[src] }

// Covered returns how many destination rows the scaler writes.
func (s *Scaler) Covered() int {
	n := 0
	for _, r := range s.rows {
		n += len(r)
	}
	return n
}

// build divides the column proportionally over height rows centred in a
// view of viewHeight rows. Source rows that land entirely above or below
// the view get no entries.
func build(height, viewHeight, stride int) *Scaler {
	s := &Scaler{Height: height}

	step := (int32(height) << 16) / TextureSize
	toppix := (viewHeight - height) / 2
	var fix int32

	for src := 0; src < TextureSize; src++ {
		startpix := int(fix >> 16)
		fix += step
		endpix := int(fix >> 16)

		if endpix > startpix {
			s.Width[src] = endpix - startpix
		}

		startpix += toppix
		endpix += toppix
		if startpix == endpix || endpix < 0 || startpix >= viewHeight {
			continue
		}

		for ; startpix < endpix; startpix++ {
			if startpix >= viewHeight {
				break
			}
			if startpix < 0 {
				continue
			}
			s.rows[src] = append(s.rows[src], startpix*stride)
		}
	}
	return s
}

// Set holds one scaler per scale index. Index i draws a wall 2*i pixels
// tall. Below the view's half height every index gets its own scaler; above
// it only every third index is built and the two after it share it, since
// those walls are clipped to the full view anyway.
type Set struct {
	MaxScale   int
	ViewHeight int
	Stride     int
	directory  []*Scaler
	built      int
}

// NewSet builds scalers for walls up to maxScaleHeight pixels tall.
func NewSet(maxScaleHeight, viewHeight, stride int) (*Set, error) {
	maxScaleHeight /= 2
	if maxScaleHeight < 1 || viewHeight < 2 {
		return nil, fmt.Errorf("scaler: bad table size (max %d, view %d)", maxScaleHeight*2, viewHeight)
	}

	s := &Set{
		MaxScale:   maxScaleHeight - 1,
		ViewHeight: viewHeight,
		Stride:     stride,
		directory:  make([]*Scaler, maxScaleHeight+3),
	}

	stepbytwo := viewHeight / 2
	for i := 1; i <= maxScaleHeight; i++ {
		s.directory[i] = build(i*2, viewHeight, stride)
		s.built++
		if i >= stepbytwo {
			s.directory[i+1] = s.directory[i]
			s.directory[i+2] = s.directory[i]
			i += 2
		}
	}
	s.directory[0] = s.directory[1]
	return s, nil
}

// Built is the number of distinct scalers constructed.
func (s *Set) Built() int { return s.built }

// Index returns the scaler for scale index i. The caller is expected to
// have clamped i to MaxScale; anything else means the height math and the
// tables disagree.
func (s *Set) Index(i int) *Scaler {
	if i < 0 || i > s.MaxScale {
		panic(fmt.Sprintf("scaler: index %d outside [0,%d]", i, s.MaxScale))
	}
	return s.directory[i]
}

// ForHeight picks the scaler for a wall height as returned by CalcHeight
// (pixel height times four, low three bits fractional), clamped to the
// largest scaler.
func (s *Set) ForHeight(height int) *Scaler {
	i := height >> 3
	if i > s.MaxScale {
		i = s.MaxScale
	}
	if i < 0 {
		i = 0
	}
	return s.directory[i]
}
