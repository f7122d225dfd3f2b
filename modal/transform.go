package modal

import (
	"fmt"
	"math"
)

// Transform is a translation measured in whole viewports: X is in
// viewport widths and Y in viewport heights. The zero value is the
// identity, which is also what an unknown direction produces.
type Transform struct {
	X, Y int
}

// TransformFor returns the transform applied to the panel. A settled modal
// (not transitioning) gets the identity; a transitioning one is pushed a
// full viewport off-screen towards dir.
func TransformFor(dir Direction, transitioning bool) Transform {
	if !transitioning {
		return Transform{}
	}
	switch dir {
	case FromTop:
		return Transform{Y: -1}
	case FromBottom:
		return Transform{Y: 1}
	case FromLeft:
		return Transform{X: -1}
	case FromRight:
		return Transform{X: 1}
	default:
		return Transform{}
	}
}

// IsIdentity reports whether t moves nothing.
func (t Transform) IsIdentity() bool { return t.X == 0 && t.Y == 0 }

// String renders t in CSS form, e.g. "translate(0, 100vh)". The identity
// renders as the empty string.
func (t Transform) String() string {
	if t.IsIdentity() {
		return ""
	}
	return fmt.Sprintf("translate(%s, %s)", cssLength(t.X, "vw"), cssLength(t.Y, "vh"))
}

func cssLength(n int, unit string) string {
	if n == 0 {
		return "0"
	}
	return fmt.Sprintf("%d%s", n*100, unit)
}

// Offset converts t to terminal cells for a width x height viewport.
func (t Transform) Offset(width, height int) (dx, dy int) {
	return t.X * width, t.Y * height
}

func (t Transform) vector() (x, y float64) {
	return float64(t.X), float64(t.Y)
}

func scale(v float64, size int) int {
	return int(math.Round(v * float64(size)))
}
