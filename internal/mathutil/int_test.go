package mathutil

import "testing"

func TestIntHelpers(t *testing.T) {
	tests := []struct {
		name      string
		got, want int
	}{
		{"clamp low", IntClamp(-3, 0, 10), 0},
		{"clamp high", IntClamp(12, 0, 10), 10},
		{"clamp inside", IntClamp(4, 0, 10), 4},
		{"wrap neg", IntWrap(-1, 360), 359},
		{"wrap over", IntWrap(725, 360), 5},
		{"wrap exact", IntWrap(360, 360), 0},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
