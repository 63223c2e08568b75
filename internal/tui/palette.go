// Package tui is fzmatch's minimal interactive picker: a query line, a
// ranked candidate list, and bold, underlined highlighting of the exact
// matched code points the positions kernel reports. It renders with a
// single tcell backend rather than the several redundant terminal
// backends (ncurses, termbox, light/termios) a more general tool might
// carry.
package tui

import "github.com/lucasb-eyer/go-colorful"

// scoreGradient blends from a "worst match" color to a "best match" color
// in Lab space, used as a score heat gradient for the ranked list.
type scoreGradient struct {
	worst, best colorful.Color
}

func newScoreGradient() scoreGradient {
	return scoreGradient{
		worst: colorful.Color{R: 0.55, G: 0.55, B: 0.6},
		best:  colorful.Color{R: 0.25, G: 0.85, B: 0.45},
	}
}

// At returns the blended color for a score normalized to [0, 1], where 0 is
// the worst-scoring candidate in the current match list and 1 the best.
func (g scoreGradient) At(t float64) colorful.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return g.worst.BlendLab(g.best, t)
}
