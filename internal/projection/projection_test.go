package projection

import (
	"errors"
	"testing"

	"github.com/Ragnaroek/iron-wolf-sub000/internal/fixed"
)

func TestNewRoundsViewSize(t *testing.T) {
	c, err := New(319, 161)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.ViewWidth != 304 || c.ViewHeight != 160 {
		t.Errorf("view = %dx%d, want 304x160", c.ViewWidth, c.ViewHeight)
	}
	if c.CenterX != 151 {
		t.Errorf("CenterX = %d, want 151", c.CenterX)
	}
	if c.ShootDelta != 30 {
		t.Errorf("ShootDelta = %d, want 30", c.ShootDelta)
	}
	if c.ScreenOfs != 2 {
		t.Errorf("ScreenOfs = %d, want 2", c.ScreenOfs)
	}
}

func TestNewRejectsBadSizes(t *testing.T) {
	for _, size := range [][2]int{{8, 100}, {336, 100}, {320, 1}, {320, 170}} {
		if _, err := New(size[0], size[1]); !errors.Is(err, ErrViewSize) {
			t.Errorf("New(%d, %d) err = %v, want ErrViewSize", size[0], size[1], err)
		}
	}
}

func TestProjectionScalars(t *testing.T) {
	c := MustNew(320, 160)
	if c.Scale != 218 {
		t.Errorf("Scale = %d, want 218", c.Scale)
	}
	if c.HeightNumerator != 218*1024 {
		t.Errorf("HeightNumerator = %d, want %d", c.HeightNumerator, 218*1024)
	}
	if c.ScreenOfs != 0 {
		t.Errorf("ScreenOfs = %d, want 0", c.ScreenOfs)
	}
}

func TestSineTable(t *testing.T) {
	c := MustNew(320, 160)

	t.Run("cardinal points", func(t *testing.T) {
		if c.Sin(0) != 0 {
			t.Errorf("sin(0) = %#x", uint32(c.Sin(0)))
		}
		if c.Sin(90) != fixed.FracMask {
			t.Errorf("sin(90) = %#x, want %#x", uint32(c.Sin(90)), fixed.FracMask)
		}
		if c.Sin(180) != 0 {
			t.Errorf("sin(180) = %#x", uint32(c.Sin(180)))
		}
		if c.Sin(270) != fixed.NegFrac(fixed.FracMask) {
			t.Errorf("sin(270) = %#x, want -max", uint32(c.Sin(270)))
		}
		if c.Sin(360) != 0 || c.Sin(450) != fixed.FracMask {
			t.Errorf("wrapped entries sin(360)=%#x sin(450)=%#x", uint32(c.Sin(360)), uint32(c.Sin(450)))
		}
	})

	t.Run("mirror symmetry", func(t *testing.T) {
		for a := 0; a <= 180; a++ {
			if c.Sin(180-a) != c.Sin(a) {
				t.Fatalf("sin(%d) = %#x, sin(%d) = %#x", 180-a, uint32(c.Sin(180-a)), a, uint32(c.Sin(a)))
			}
		}
		for a := 1; a < 180; a++ {
			if c.Sin(180+a) != fixed.NegFrac(c.Sin(a)) {
				t.Fatalf("sin(%d) is not the negation of sin(%d)", 180+a, a)
			}
		}
	})

	t.Run("cosine is a quarter phase shift", func(t *testing.T) {
		for a := 0; a < fixed.Angles; a++ {
			if c.Cos(a) != c.Sin(a+fixed.AngleQuad) {
				t.Fatalf("cos(%d) mismatch", a)
			}
		}
		if c.Cos(0) != fixed.FracMask {
			t.Errorf("cos(0) = %#x", uint32(c.Cos(0)))
		}
	})

	t.Run("every entry fits the fraction word", func(t *testing.T) {
		for a := 0; a < SineTableSize; a++ {
			if uint32(c.Sin(a))&0x7FFF0000 != 0 {
				t.Fatalf("sin(%d) = %#x has integer bits", a, uint32(c.Sin(a)))
			}
		}
	})

	t.Run("first quadrant rises", func(t *testing.T) {
		for a := 1; a <= fixed.AngleQuad; a++ {
			if c.Sin(a) <= c.Sin(a-1) {
				t.Fatalf("sin(%d) = %d not above sin(%d) = %d", a, c.Sin(a), a-1, c.Sin(a-1))
			}
		}
	})
}

func TestTangentTable(t *testing.T) {
	c := MustNew(320, 160)
	if got := c.FineTangent(0); got != 57 {
		t.Errorf("tan[0] = %d, want 57", got)
	}
	for i := 1; i < fixed.FineAngles/4; i++ {
		if c.FineTangent(i) <= c.FineTangent(i-1) {
			t.Fatalf("tan[%d] = %d not above tan[%d] = %d", i, c.FineTangent(i), i-1, c.FineTangent(i-1))
		}
	}
	if c.FineTangent(449) >= fixed.TileGlobal || c.FineTangent(450) <= fixed.TileGlobal {
		t.Errorf("octant boundary tan[449]=%d tan[450]=%d", c.FineTangent(449), c.FineTangent(450))
	}
	for i := fixed.FineAngles / 4; i < TangentTableSize; i++ {
		if c.FineTangent(i) != c.FineTangent(i-fixed.FineAngles/4) {
			t.Fatalf("tan[%d] does not repeat the first octant", i)
		}
	}
}

func TestPixelAngles(t *testing.T) {
	c := MustNew(320, 160)
	half := c.ViewWidth / 2
	if c.PixelAngle(half-1) != 0 || c.PixelAngle(half) != 0 {
		t.Errorf("centre columns = %d, %d, want 0", c.PixelAngle(half-1), c.PixelAngle(half))
	}
	for i := 0; i < half; i++ {
		left, right := c.PixelAngle(half-1-i), c.PixelAngle(half+i)
		if left != -right {
			t.Fatalf("column pair %d: %d vs %d", i, left, right)
		}
		if i > 0 && left < c.PixelAngle(half-i) {
			t.Fatalf("angles not monotonic at column %d", half-1-i)
		}
	}
	// roughly 36 degrees to each side
	if a := c.PixelAngle(0); a < 350 || a > 370 {
		t.Errorf("edge angle = %d fine units", a)
	}
}

func TestTablesAreDeterministic(t *testing.T) {
	a := MustNew(320, 160)
	b := MustNew(320, 160)
	if a.sinTable != b.sinTable {
		t.Error("sine tables differ")
	}
	if a.fineTangent != b.fineTangent {
		t.Error("tangent tables differ")
	}
	for i := range a.pixelAngle {
		if a.pixelAngle[i] != b.pixelAngle[i] {
			t.Fatalf("pixel angle %d differs", i)
		}
	}
	if a.Scale != b.Scale || a.HeightNumerator != b.HeightNumerator {
		t.Error("scalars differ")
	}
}

func TestCalcHeight(t *testing.T) {
	c := MustNew(320, 160)
	cos0, sin0 := c.Cos(0), c.Sin(0)

	t.Run("perpendicular wall", func(t *testing.T) {
		if h := c.CalcHeight(0xD6FF, 0, cos0, sin0); h != 1043 {
			t.Errorf("height = %d, want 1043", h)
		}
	})

	t.Run("clamped at minimum distance", func(t *testing.T) {
		want := int(c.HeightNumerator / (MinDist >> 8))
		for _, gx := range []fixed.Fixed{0, 1, MinDist - 1, -fixed.One} {
			if h := c.CalcHeight(gx, 0, cos0, sin0); h != want {
				t.Errorf("CalcHeight(%#x) = %d, want %d", gx, h, want)
			}
		}
	})

	t.Run("farther is shorter", func(t *testing.T) {
		near := c.CalcHeight(2*fixed.One, 0, cos0, sin0)
		far := c.CalcHeight(8*fixed.One, 0, cos0, sin0)
		if far >= near {
			t.Errorf("near %d, far %d", near, far)
		}
	})
}
