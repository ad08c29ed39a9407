package flash

// CubicBezier is a CSS-style timing curve through (0,0), (X1,Y1), (X2,Y2), (1,1)
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// EaseInOut matches the CSS "ease-in-out" keyword
var EaseInOut = CubicBezier{X1: 0.42, Y1: 0, X2: 0.58, Y2: 1}

// Linear progresses at a constant rate
var Linear = CubicBezier{X1: 0, Y1: 0, X2: 1, Y2: 1}

func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

// At maps elapsed progress x in [0,1] to eased progress
func (c CubicBezier) At(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	// x(t) is monotonic for control points in [0,1], so bisection converges
	lo, hi := 0.0, 1.0
	t := x
	for i := 0; i < 40; i++ {
		t = (lo + hi) / 2
		if bezier(t, c.X1, c.X2) < x {
			lo = t
		} else {
			hi = t
		}
	}
	return bezier(t, c.Y1, c.Y2)
}
