package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wricardo/hanoi-game/game/engine"
	"github.com/wricardo/hanoi-game/game/render"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	poleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffdead"))
	baseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#deb887"))
	heldStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#90ee90")).Padding(0, 2)
)

// columns returns the width of one peg column and of the whole board.
// The board spans the terminal when its size is known.
func (m Model) columns() (int, int) {
	state := m.engine.GetState()
	col := 2*state.RingCount + 3
	if m.width > 0 && m.width/state.StickCount > col {
		col = m.width / state.StickCount
	}
	return col, col * state.StickCount
}

// boardRenderer draws the pegs with lipgloss, one column per peg
type boardRenderer struct {
	col int
}

var _ render.Renderer = boardRenderer{}

func (r boardRenderer) Render(w io.Writer, view engine.View) error {
	var b strings.Builder

	// one spare row on top for the lifted ring
	for level := view.RingCount; level >= 0; level-- {
		cells := make([]string, len(view.Pegs))
		for i, rings := range view.Pegs {
			cells[i] = cell(rings, level, i == view.ActiveStick, view.RingCount, r.col)
		}
		b.WriteString(strings.Join(cells, "") + "\n")
	}
	b.WriteString(baseStyle.Render(strings.Repeat("▀", r.col*len(view.Pegs))) + "\n")

	labels := make([]string, len(view.Pegs))
	for i := range view.Pegs {
		label := center(fmt.Sprintf("%d", i+1), r.col)
		if i == view.ActiveStick {
			label = heldStyle.Render(label)
		}
		labels[i] = label
	}
	b.WriteString(strings.Join(labels, "") + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (m Model) View() string {
	view := m.engine.GetView()
	col, _ := m.columns()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tower of Hanoi") + "\n\n")

	var board render.Renderer = boardRenderer{col: col}
	if err := board.Render(&b, view); err != nil {
		return err.Error()
	}
	b.WriteString("\n")

	if view.Won {
		b.WriteString(wonStyle.Render(fmt.Sprintf("SOLVED in %d moves", m.moves)) + "\n")
	}

	status := m.status
	if m.entering {
		status = fmt.Sprintf("%s: %s_", status, m.input)
	}
	b.WriteString(status + "\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("Moves: %d  Minimum: %d  Rings: %d  Pegs: %d",
		m.moves, engine.MinimumMoves(view.RingCount, view.StickCount), view.RingCount, view.StickCount)) + "\n\n")
	b.WriteString(footerStyle.Render("1-9/click select · +/- rings · s set rings · r reset · q quit"))
	return b.String()
}

// cell draws one peg at one level. The top ring of the held peg is drawn
// one level higher than where it rests.
func cell(rings []int, level int, held bool, ringCount, width int) string {
	top := len(rings)
	if held && top > 0 {
		if level == top {
			return ring(rings[top-1], ringCount, width)
		}
		top--
	}
	if level < top {
		return ring(rings[level], ringCount, width)
	}
	if level == ringCount {
		return strings.Repeat(" ", width)
	}
	return poleStyle.Render(center("│", width))
}

func ring(size, ringCount, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(render.RingColor(size, ringCount)))
	return style.Render(center(strings.Repeat("█", 2*size+1), width))
}

func center(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
