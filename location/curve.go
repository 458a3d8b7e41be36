package location

import "math"

// Spiral returns an H×V preferences field where each cell's value is its
// fractional rank (0..1) along an outside-in spiral traversal starting at
// (0, 0). Feed the result to Random to get "argmin preferences among open
// cells" — the curve, not the entropy term, drives selection.
func Spiral(h, v int) [][]float64 {
	prefs := make([][]float64, h)
	for x := range prefs {
		prefs[x] = make([]float64, v)
	}

	total := h * v
	top, bottom, left, right := 0, v-1, 0, h-1
	rank := 0
	set := func(x, y int) {
		prefs[x][y] = float64(rank) / float64(total-1)
		rank++
	}
	for top <= bottom && left <= right {
		for x := left; x <= right; x++ {
			set(x, top)
		}
		top++
		for y := top; y <= bottom; y++ {
			set(right, y)
		}
		right--
		if top <= bottom {
			for x := right; x >= left; x-- {
				set(x, bottom)
			}
			bottom--
		}
		if left <= right {
			for y := bottom; y >= top; y-- {
				set(left, y)
			}
			left++
		}
	}
	return prefs
}

// HilbertOrder derives the curve order used by Hilbert as
// ceil(sqrt(max(h, v))). A curve of order k covers a square of side 2^k.
func HilbertOrder(h, v int) int {
	maxDim := h
	if v > maxDim {
		maxDim = v
	}
	return int(math.Ceil(math.Sqrt(float64(maxDim))))
}

// Hilbert returns an H×V preferences field where each cell's value is its
// fractional rank (0..1) along a Hilbert space-filling curve of the derived
// order (see HilbertOrder). When the curve's side is smaller than a grid
// dimension (a 9-wide grid gets order 3, side 8), coordinates past the side
// are clamped to its last row or column and share that position's rank.
func Hilbert(h, v int) [][]float64 {
	order := HilbertOrder(h, v)
	n := 1 << order // side length of the curve's square, a power of two
	total := n * n

	prefs := make([][]float64, h)
	for x := range prefs {
		prefs[x] = make([]float64, v)
	}

	for x := 0; x < h; x++ {
		for y := 0; y < v; y++ {
			d := hilbertDistance(n, clampCoord(x, n), clampCoord(y, n))
			prefs[x][y] = float64(d) / float64(total-1)
		}
	}
	return prefs
}

func clampCoord(v, n int) int {
	if v >= n {
		return n - 1
	}
	return v
}

// hilbertDistance maps (x, y) on an n×n grid (n a power of two) to its
// distance along the Hilbert curve, via the standard bit-rotation
// construction.
func hilbertDistance(n, x, y int) int {
	d := 0
	for s := n / 2; s > 0; s /= 2 {
		var rx, ry int
		if (x & s) > 0 {
			rx = 1
		}
		if (y & s) > 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		x, y = hilbertRotate(n, x, y, rx, ry)
	}
	return d
}

func hilbertRotate(n, x, y, rx, ry int) (int, int) {
	if ry == 0 {
		if rx == 1 {
			x = n - 1 - x
			y = n - 1 - y
		}
		x, y = y, x
	}
	return x, y
}
