package mathutil

// IntClamp limits x to [lo, hi] (search: int-math).
func IntClamp(x, lo, hi int) int {
	return max(lo, min(x, hi))
}

// IntWrap returns x modulo n in [0, n) for n > 0 (search: int-math).
func IntWrap(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}
	return x
}
