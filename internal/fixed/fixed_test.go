package fixed

import (
	"math"
	"testing"
)

func TestFixedByFracZero(t *testing.T) {
	values := []Fixed{0, 1, -1, One, -One, 0x5700, math.MaxInt32, math.MinInt32, 0x0001FFFF}
	for _, v := range values {
		if got := FixedByFrac(v, 0); got != 0 {
			t.Errorf("FixedByFrac(%#x, 0) = %#x, want 0", uint32(v), uint32(got))
		}
		if got := FixedByFrac(0, v); got != 0 {
			t.Errorf("FixedByFrac(0, %#x) = %#x, want 0", uint32(v), uint32(got))
		}
	}
}

func TestFixedByFrac(t *testing.T) {
	tests := []struct {
		name string
		a, b Fixed
		want Fixed
	}{
		{"focal by max cos", 0x5700, 0xFFFF, 0x56FF},
		{"half of one", One, 0x8000, 0x8000},
		{"negative a", -One, 0x8000, -0x8000},
		{"negative fraction", One, NegFrac(0x8000), -0x8000},
		{"both negative", -One, NegFrac(0x8000), 0x8000},
		{"carry into high word", 0x0001FFFF, 0xFFFF, 0x0001FFFD},
		{"minimum int wraps on negation", math.MinInt32, 0x8000, -0x40000000},
		{"minimum int by max fraction", math.MinInt32, 0xFFFF, -0x7FFF8000},
		{"truncates toward zero", -1, 0x8000, 0},
		{"one point zero is ignored", 0x123456, One, 0},
		{"middle bits of fraction ignored", 0x123456, 0x7FFF8000, 0x91A2B},
		{"negative zero fraction", 0x123456, SignBit, 0},
		{"small negative step", -57, 0xD6FF, -47},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixedByFrac(tt.a, tt.b); got != tt.want {
				t.Errorf("FixedByFrac(%#x, %#x) = %#x, want %#x",
					uint32(tt.a), uint32(tt.b), uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestFixedByFracDiffersFromNaiveMultiply(t *testing.T) {
	// A floor-shifted 64 bit product rounds toward -inf; the register
	// sequence truncates the magnitude instead.
	a, b := Fixed(-1), Fixed(0x8000)
	naive := Fixed((int64(a) * int64(b)) >> Shift)
	if naive != -1 {
		t.Fatalf("naive product = %d, want -1", naive)
	}
	if got := FixedByFrac(a, b); got == naive {
		t.Errorf("FixedByFrac matched the naive product %d", naive)
	}
}

func TestFixedByFracSymmetricSign(t *testing.T) {
	for _, a := range []Fixed{1, 0x5700, 0x123456, 0x7FFFFFFF} {
		for _, b := range []Fixed{1, 0x4000, 0xFFFF} {
			pos := FixedByFrac(a, b)
			if got := FixedByFrac(-a, b); got != -pos {
				t.Errorf("FixedByFrac(-%#x, %#x) = %d, want %d", a, b, got, -pos)
			}
			if got := FixedByFrac(a, NegFrac(b)); got != -pos {
				t.Errorf("FixedByFrac(%#x, -%#x) = %d, want %d", a, b, got, -pos)
			}
		}
	}
}

func TestConversions(t *testing.T) {
	f := New(-2, 0x8000)
	if f.Int() != -2 || f.Frac() != 0x8000 {
		t.Errorf("New(-2, 0x8000) = int %d frac %#x", f.Int(), f.Frac())
	}
	if FromInt(33) != 33<<16 {
		t.Errorf("FromInt(33) = %#x", uint32(FromInt(33)))
	}
	if FromRaw(0x8000FFFF) != Fixed(-0x7FFF0001) {
		t.Errorf("FromRaw kept %#x", FromRaw(0x8000FFFF).Raw())
	}
	if FromInt(5).Tile() != 5 {
		t.Errorf("Tile() = %d", FromInt(5).Tile())
	}
	if NegFrac(0) != 0 {
		t.Error("negating a zero fraction must stay zero")
	}
	if FracValue(NegFrac(0xFFFF)) != -0xFFFF {
		t.Errorf("FracValue = %d", FracValue(NegFrac(0xFFFF)))
	}
}
