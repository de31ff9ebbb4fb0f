package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/Ragnaroek/iron-wolf-sub000/internal/fixed"
)

// Projection constants.
const (
	FocalLength = 0x5700 // viewer to projection plane, in global units
	MinDist     = 0x5800 // closest a wall is allowed to be for height math
	ViewGlobal  = 0x10000

	SineTableSize    = fixed.Angles + fixed.AngleQuad + 1
	TangentTableSize = fixed.FineAngles/4 + fixed.FineAngles/8

	// ScreenWidth and StatusLines describe the 320x200 planar screen the
	// view is centred in; ScreenBWide is the byte width of one planar row.
	ScreenWidth  = 320
	ScreenHeight = 200
	StatusLines  = 40
	ScreenBWide  = 80
)

// ErrViewSize is returned for a view that does not fit the screen.
var ErrViewSize = errors.New("view size out of range")

// radToInt converts radians to fine angles. Single precision on purpose: the
// per-column angle table is quantised through it.
var radToInt = float32(fixed.FineAngles) / 2 / float32(math.Pi)

// Config holds everything derived from the view size. It is rebuilt from
// scratch on a resolution change and never modified afterwards.
type Config struct {
	ViewWidth  int
	ViewHeight int
	CenterX    int
	ShootDelta int
	ScreenOfs  int

	FocalLength     fixed.Fixed
	Scale           int32
	HeightNumerator int32

	pixelAngle  []int32
	sinTable    [SineTableSize]fixed.Fixed
	fineTangent [TangentTableSize]int32
}

// New builds the projection for a requested view. Width is rounded down to
// a multiple of 16 and height to a multiple of 2.
func New(width, height int) (*Config, error) {
	w := width &^ 15
	h := height &^ 1
	if w < 16 || w > ScreenWidth || h < 2 || h > ScreenHeight-StatusLines {
		return nil, fmt.Errorf("%w: %dx%d", ErrViewSize, width, height)
	}

	c := &Config{
		ViewWidth:  w,
		ViewHeight: h,
		CenterX:    w/2 - 1,
		ShootDelta: w / 10,
		ScreenOfs:  (ScreenHeight-StatusLines-h)/2*ScreenBWide + (ScreenWidth-w)/8,
	}
	c.buildSineTable()
	c.buildTangentTable()
	c.calcProjection(FocalLength)
	return c, nil
}

// MustNew is New for callers with a validated view size.
func MustNew(width, height int) *Config {
	c, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// buildSineTable fills one quadrant from a single precision angle walk and
// mirrors it into the other three. Negative entries are sign-magnitude.
//
// At 90 degrees GLOBAL1*sin lands on 0x10000, whose fraction word is zero;
// FixedByFrac would turn every move along that heading into a zero (and the
// mirrored 270 entry into a backwards step). That entry is pulled down by one
// unit. This is a patch on the quantisation, not a derivation of the exact
// value, and golden values depend on it staying as is.
func (c *Config) buildSineTable() {
	var angle float32
	anglestep := float32(math.Pi / 2 / fixed.AngleQuad)
	for i := 0; i <= fixed.AngleQuad; i++ {
		value := fixed.Fixed(fixed.One * math.Sin(float64(angle)))
		if i == fixed.AngleQuad && value > fixed.FracMask {
			value = fixed.FracMask
		}
		c.sinTable[i] = value
		c.sinTable[i+fixed.Angles] = value
		c.sinTable[fixed.Angles/2-i] = value
		c.sinTable[fixed.Angles-i] = fixed.NegFrac(value)
		c.sinTable[fixed.Angles/2+i] = fixed.NegFrac(value)
		angle += anglestep
	}
}

// buildTangentTable computes one octant and mirrors it as reciprocals into
// the next, giving a full quadrant. The table is sized with an extra octant
// that repeats the first so lookups that cross a quadrant boundary by up to
// 45 degrees stay in bounds.
func (c *Config) buildTangentTable() {
	const quad = fixed.FineAngles / 4
	for i := 0; i < fixed.FineAngles/8; i++ {
		tang := math.Tan((float64(i) + 0.5) / float64(radToInt))
		c.fineTangent[i] = int32(tang * fixed.TileGlobal)
		c.fineTangent[quad-1-i] = int32(1 / tang * fixed.TileGlobal)
	}
	for i := quad; i < TangentTableSize; i++ {
		c.fineTangent[i] = c.fineTangent[i-quad]
	}
}

func (c *Config) calcProjection(focal int32) {
	c.FocalLength = fixed.Fixed(focal)
	facedist := float64(focal + MinDist)
	halfview := c.ViewWidth / 2

	c.Scale = int32(float64(halfview) * facedist / (ViewGlobal / 2))
	c.HeightNumerator = (fixed.TileGlobal * c.Scale) >> 6

	// Start half a pixel over so the view angle bisects the two middle
	// columns.
	c.pixelAngle = make([]int32, c.ViewWidth)
	for i := 0; i < halfview; i++ {
		tang := float64(int32(i)*ViewGlobal/int32(c.ViewWidth)) / facedist
		angle := float32(math.Atan(tang))
		intang := int32(angle * radToInt)
		c.pixelAngle[halfview-1-i] = intang
		c.pixelAngle[halfview+i] = -intang
	}
}

// PixelAngle is the fine angle offset of column x from the view direction.
func (c *Config) PixelAngle(x int) int32 { return c.pixelAngle[x] }

// Sin returns the sign-magnitude sine of a coarse angle in [0, 450].
func (c *Config) Sin(angle int) fixed.Fixed { return c.sinTable[angle] }

// Cos returns sin(angle + 90).
func (c *Config) Cos(angle int) fixed.Fixed { return c.sinTable[angle+fixed.AngleQuad] }

// FineTangent returns tan of fine angle i (scaled by TILEGLOBAL) for i in
// the first quadrant.
func (c *Config) FineTangent(i int) int32 { return c.fineTangent[i] }

// CalcHeight converts a hit's offset from the view point into the wall
// height used to pick a scaler. The perpendicular distance is clamped to
// MinDist, then heightnumerator is divided by it the way a 32/16 idiv does:
// only bits 8..23 of the distance form the divisor and the quotient is a
// word.
func (c *Config) CalcHeight(gx, gy, viewcos, viewsin fixed.Fixed) int {
	gxt := fixed.FixedByFrac(gx, viewcos)
	gyt := fixed.FixedByFrac(gy, viewsin)
	nx := gxt - gyt
	if nx < MinDist {
		nx = MinDist
	}
	divisor := int32(int16(uint16(uint32(nx) >> 8)))
	return int(int16(c.HeightNumerator / divisor))
}
