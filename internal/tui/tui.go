package tui

import (
	"github.com/gdamore/tcell"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"fzmatch/internal/rank"
)

// Item is one line the picker can display and score against.
type Item struct {
	Text string
}

// RescoreFunc reranks candidates for a query, returning matches sorted best
// first. A candidate whose Positions is nil is drawn without highlighting.
type RescoreFunc func(query string) []rank.Candidate

// Picker renders a query line and a ranked, highlighted candidate list on
// an alternate screen, and returns the text the user selected.
type Picker struct {
	screen  tcell.Screen
	rescore RescoreFunc
	query   []rune
	matches []rank.Candidate
	cursor  int
	top     int
}

// NewPicker allocates a tcell screen for interactive use. Callers must call
// Close when done, even on error paths after Run returns.
func NewPicker(rescore RescoreFunc) (*Picker, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "allocating terminal screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing terminal screen")
	}
	return &Picker{screen: screen, rescore: rescore}, nil
}

// Close releases the terminal screen.
func (p *Picker) Close() {
	p.screen.Fini()
}

// Run drives the picker's event loop until the user selects a candidate
// (ok == true) or cancels (ok == false).
func (p *Picker) Run(initialQuery string) (selected string, ok bool) {
	p.query = []rune(initialQuery)
	p.matches = p.rescore(string(p.query))
	p.draw()

	for {
		ev := p.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			p.screen.Sync()
			p.draw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", false
			case tcell.KeyEnter:
				if p.cursor < len(p.matches) {
					return p.matches[p.cursor].Text, true
				}
				return "", false
			case tcell.KeyUp, tcell.KeyCtrlK:
				p.move(-1)
			case tcell.KeyDown, tcell.KeyCtrlJ:
				p.move(1)
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(p.query) > 0 {
					p.query = p.query[:len(p.query)-1]
					p.requery()
				}
			case tcell.KeyRune:
				p.query = append(p.query, ev.Rune())
				p.requery()
			}
			p.draw()
		}
	}
}

func (p *Picker) move(delta int) {
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if max := len(p.matches) - 1; p.cursor > max {
		if max < 0 {
			max = 0
		}
		p.cursor = max
	}
}

func (p *Picker) requery() {
	p.matches = p.rescore(string(p.query))
	p.cursor = 0
	p.top = 0
}

func (p *Picker) draw() {
	p.screen.Clear()
	width, height := p.screen.Size()

	promptStyle := tcell.StyleDefault.Bold(true)
	drawText(p.screen, 0, 0, width, promptStyle, "> "+string(p.query))

	gradient := newScoreGradient()
	best, worst := scoreBounds(p.matches)

	listHeight := height - 2
	if p.cursor < p.top {
		p.top = p.cursor
	}
	if p.cursor >= p.top+listHeight {
		p.top = p.cursor - listHeight + 1
	}

	for row := 0; row < listHeight; row++ {
		idx := p.top + row
		if idx >= len(p.matches) {
			break
		}
		m := p.matches[idx]
		style := tcell.StyleDefault
		if idx == p.cursor {
			style = style.Reverse(true)
		}
		t := normalizedScore(float64(m.Score), worst, best)
		fg := colorToTcell(gradient.At(t))
		drawCandidate(p.screen, 1, row+2, width-1, style.Foreground(fg), m)
	}

	p.screen.ShowCursor(2+runewidth.StringWidth(string(p.query)), 0)
	p.screen.Show()
}

func drawCandidate(s tcell.Screen, x, y, maxWidth int, style tcell.Style, c rank.Candidate) {
	matched := make(map[int]bool, len(c.Positions))
	for _, pos := range c.Positions {
		matched[pos] = true
	}

	col := x
	for i, r := range []rune(c.Text) {
		if col-x >= maxWidth {
			break
		}
		cellStyle := style
		if matched[i] {
			cellStyle = cellStyle.Bold(true).Underline(true)
		}
		s.SetContent(col, y, r, nil, cellStyle)
		col += runewidth.RuneWidth(r)
	}
}

func drawText(s tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		if col-x >= maxWidth {
			break
		}
		s.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

func scoreBounds(matches []rank.Candidate) (best, worst float64) {
	if len(matches) == 0 {
		return 0, 0
	}
	best = float64(matches[0].Score)
	worst = float64(matches[0].Score)
	for _, m := range matches {
		s := float64(m.Score)
		if s > best {
			best = s
		}
		if s < worst {
			worst = s
		}
	}
	return best, worst
}

func normalizedScore(score, worst, best float64) float64 {
	if best <= worst {
		return 1
	}
	return (score - worst) / (best - worst)
}

func colorToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
