package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/wricardo/hanoi-game/game/engine"
)

// Palette is the cycle of ring colours, largest ring first
var Palette = []string{
	"#9400d3",
	"#4b0082",
	"#0000ff",
	"#00ff00",
	"#ffff00",
	"#ff7f00",
	"#ff0000",
}

// RingColor returns the palette colour for a ring of the given size
func RingColor(size, ringCount int) string {
	idx := (ringCount - size) % len(Palette)
	if idx < 0 {
		idx += len(Palette)
	}
	return Palette[idx]
}

// Renderer draws a view of the board. Implementations never change game state.
type Renderer interface {
	Render(w io.Writer, view engine.View) error
}

// TextRenderer draws the board as ASCII art, one row per ring level
type TextRenderer struct {
	// Marker is drawn under the held peg
	Marker string
}

// NewTextRenderer creates a text renderer with the default marker
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{Marker: "^"}
}

// Render writes the board to w
func (r *TextRenderer) Render(w io.Writer, view engine.View) error {
	_, err := io.WriteString(w, r.String(view))
	return err
}

// String returns the board as text
func (r *TextRenderer) String(view engine.View) string {
	width := 2*view.RingCount + 1
	if width < 3 {
		width = 3
	}

	var b strings.Builder
	for level := view.RingCount - 1; level >= 0; level-- {
		cells := make([]string, len(view.Pegs))
		for i, rings := range view.Pegs {
			if level < len(rings) {
				cells[i] = center(strings.Repeat("=", 2*rings[level]-1), width)
			} else {
				cells[i] = center("|", width)
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteByte('\n')
	}

	base := make([]string, len(view.Pegs))
	labels := make([]string, len(view.Pegs))
	for i := range view.Pegs {
		base[i] = strings.Repeat("-", width)
		label := fmt.Sprintf("%d", i+1)
		if i == view.ActiveStick {
			label += r.Marker
		}
		labels[i] = center(label, width)
	}
	b.WriteString(strings.Join(base, " "))
	b.WriteByte('\n')
	b.WriteString(strings.TrimRight(strings.Join(labels, " "), " "))
	b.WriteByte('\n')

	if view.Won {
		b.WriteString("*** SOLVED ***\n")
	}
	return b.String()
}

// Summary returns a one-line description of the board
func Summary(view engine.View) string {
	parts := make([]string, len(view.Pegs))
	for i, rings := range view.Pegs {
		nums := make([]string, len(rings))
		for j, ring := range rings {
			nums[j] = fmt.Sprintf("%d", ring)
		}
		parts[i] = fmt.Sprintf("%d:[%s]", i+1, strings.Join(nums, " "))
	}

	held := "none"
	if view.ActiveStick != engine.NoActiveStick {
		held = fmt.Sprintf("%d", view.ActiveStick+1)
	}
	return fmt.Sprintf("%s held=%s rings=%d won=%t", strings.Join(parts, " "), held, view.RingCount, view.Won)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
