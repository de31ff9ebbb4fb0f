package fixed

// 16.16 fixed point constants shared by the projection, caster and map code.
const (
	Shift = 16
	One   = 1 << Shift
	Half  = One / 2

	// FracMask selects the fractional word. It is also the largest
	// magnitude a sign-magnitude fraction can carry.
	FracMask = One - 1

	// SignBit marks a negative sign-magnitude fraction.
	SignBit = -1 << 31

	TileShift  = Shift
	TileGlobal = One
	MapSize    = 64
)

// Angle units.
const (
	Angles        = 360 // coarse angles per circle (viewer facing)
	AngleQuad     = Angles / 4
	FineAngles    = 3600 // fine angles per circle (per-column rays)
	FinePerCoarse = FineAngles / Angles
)

// Fixed is a signed 16.16 fixed point number.
type Fixed int32

// New builds a Fixed from an integer part and a fraction word.
func New(integer int16, frac uint16) Fixed {
	return Fixed(int32(uint32(uint16(integer))<<16 | uint32(frac)))
}

// FromInt converts a whole number.
func FromInt(i int) Fixed { return Fixed(int32(i) << Shift) }

// FromRaw reinterprets a raw 32 bit pattern.
func FromRaw(raw uint32) Fixed { return Fixed(int32(raw)) }

// Raw returns the bit pattern.
func (f Fixed) Raw() uint32 { return uint32(f) }

// Int returns the integer part (arithmetic shift, rounds toward -inf).
func (f Fixed) Int() int { return int(int32(f) >> Shift) }

// Tile returns the map tile addressed by f, treating f as unsigned the way
// the caster's spot arithmetic does.
func (f Fixed) Tile() int { return int(uint32(f) >> Shift) }

// Frac returns the low word.
func (f Fixed) Frac() uint16 { return uint16(uint32(f)) }

// Float is for debugging and overlays only.
func (f Fixed) Float() float64 { return float64(f) / One }

// NegFrac returns the sign-magnitude negation of a non-negative fraction.
// Zero stays zero so that mirrored table entries compare equal.
func NegFrac(mag Fixed) Fixed {
	if mag == 0 {
		return 0
	}
	return mag | SignBit
}

// FracIsNeg reports whether a sign-magnitude fraction is negative.
func FracIsNeg(f Fixed) bool { return f&SignBit != 0 }

// FracValue converts a sign-magnitude fraction to a two's complement Fixed.
func FracValue(f Fixed) Fixed {
	mag := Fixed(f.Frac())
	if FracIsNeg(f) {
		return -mag
	}
	return mag
}

// FixedByFrac multiplies a by the sign-magnitude fraction b.
//
// The computation mirrors the 16 bit register sequence it was written for:
// a is split into words and made positive (neg/neg/sbb), the two words are
// multiplied by the fraction word with unsigned 16x16->32 multiplies, the
// high word of the low product is added to the low word of the high product
// with carry into the top word, and the result is negated (neg/neg/sbb) when
// exactly one operand was negative. Bits 16..30 of b are ignored, so a
// fraction of 0x10000 multiplies to zero. Results truncate toward zero.
func FixedByFrac(a, b Fixed) Fixed {
	si := uint16(uint32(b) >> 16)
	ax := uint16(uint32(a))
	cx := uint16(uint32(a) >> 16)

	if int16(cx) < 0 {
		cx, ax = neg32(cx, ax)
		si ^= 0x8000
	}

	bx := uint16(uint32(b))

	lo := uint32(ax) * uint32(bx)
	di := uint16(lo >> 16)

	hi := uint32(cx) * uint32(bx)
	ax = uint16(hi)
	dx := uint16(hi >> 16)

	sum := uint32(ax) + uint32(di)
	ax = uint16(sum)
	dx += uint16(sum >> 16)

	if si&0x8000 != 0 {
		dx, ax = neg32(dx, ax)
	}
	return Fixed(int32(uint32(dx)<<16 | uint32(ax)))
}

// neg32 negates the dword hi:lo as neg hi / neg lo / sbb hi,0 does:
// both words wrap, and the borrow out of the low word is taken from hi.
func neg32(hi, lo uint16) (uint16, uint16) {
	hi = -hi
	if lo != 0 {
		hi--
	}
	lo = -lo
	return hi, lo
}
