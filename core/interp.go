package core

// Cubic4 evaluates the unique cubic through the four points
// (x0, y0) … (x3, y3) at position x, in Newton divided-difference form.
// The abscissae must be pairwise distinct; they need not be uniformly
// spaced.
func Cubic4(x0, y0, x1, y1, x2, y2, x3, y3, x float64) float64 {
	d01 := (y1 - y0) / (x1 - x0)
	d12 := (y2 - y1) / (x2 - x1)
	d23 := (y3 - y2) / (x3 - x2)
	d012 := (d12 - d01) / (x2 - x0)
	d123 := (d23 - d12) / (x3 - x1)
	d0123 := (d123 - d012) / (x3 - x0)

	return y0 + (x-x0)*(d01+(x-x1)*(d012+(x-x2)*d0123))
}

// Lerp linearly interpolates between (x0, y0) and (x1, y1) at position x.
// Degenerate segments (x1 == x0) return y0.
func Lerp(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}

	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// Interp evaluates the piecewise-linear interpolant defined by the knots
// (xs, ys) at every query position in xq. Queries outside the knot range are
// clamped to the boundary values. xs must be strictly ascending and aligned
// with ys; both conditions are programming errors when violated.
func Interp(xs, ys, xq []float64) []float64 {
	MustAligned(xs, ys)
	MustAscending(xs)

	out := make([]float64, len(xq))

	for i, x := range xq {
		out[i] = interpAt(xs, ys, x)
	}

	return out
}

func interpAt(xs, ys []float64, x float64) float64 {
	if len(xs) == 0 {
		return Invalid()
	}

	if x <= xs[0] {
		return ys[0]
	}

	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1]
	}

	// Linear scan is fine here; knot sets are tiny (crack peaks).
	for i := 1; i < len(xs); i++ {
		if x <= xs[i] {
			return Lerp(xs[i-1], ys[i-1], xs[i], ys[i], x)
		}
	}

	return ys[len(ys)-1]
}
