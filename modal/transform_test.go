package modal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransformFor(t *testing.T) {
	tests := []struct {
		dir    Direction
		want   Transform
		css    string
		dx, dy int
	}{
		{FromTop, Transform{Y: -1}, "translate(0, -100vh)", 0, -24},
		{FromBottom, Transform{Y: 1}, "translate(0, 100vh)", 0, 24},
		{FromLeft, Transform{X: -1}, "translate(-100vw, 0)", -80, 0},
		{FromRight, Transform{X: 1}, "translate(100vw, 0)", 80, 0},
		{Direction("diagonal"), Transform{}, "", 0, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			got := TransformFor(tt.dir, true)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.css, got.String())

			dx, dy := got.Offset(80, 24)
			require.Equal(t, tt.dx, dx)
			require.Equal(t, tt.dy, dy)

			settled := TransformFor(tt.dir, false)
			require.True(t, settled.IsIdentity())
			require.Empty(t, settled.String())
		})
	}
}

func TestUnknownDirectionModalNeverMoves(t *testing.T) {
	h := newHarness(t, WithDirection("sideways"))
	h.setActive(true)
	require.True(t, h.m.Transitioning())
	require.True(t, h.m.Transform().IsIdentity())
	require.False(t, h.m.Animating())
}
