package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Terminal layout: one title row above a bordered board where every cell
// is two columns wide.
const (
	titleRows  = 1
	cellCols   = 2
	borderSize = 1
)

// Square is anything drawn as one filled board cell: food, stone or a
// snake segment.
type Square struct {
	At    Cell
	Fill  core.Color
	Glyph rune
}

// Squares returns the drawable cells of the state. The snake comes last so
// its head is never hidden.
func (s State) Squares() []Square {
	out := make([]Square, 0, len(s.Segments)+2)
	out = append(out, Square{At: s.Food, Fill: core.ColorBrightRed, Glyph: '●'})
	if s.HasObstacle {
		out = append(out, Square{At: s.Obstacle, Fill: core.ColorGray, Glyph: '▓'})
	}
	for i := len(s.Segments) - 1; i >= 0; i-- {
		sq := Square{At: s.Segments[i], Fill: core.ColorGreen, Glyph: '█'}
		if i == 0 {
			sq.Fill = core.ColorBrightGreen
		}
		out = append(out, sq)
	}
	return out
}

// TerminalSize returns the characters needed to draw the board.
func TerminalSize(b Board) (w, h int) {
	return b.Cols()*cellCols + 2*borderSize, b.Rows() + 2*borderSize + titleRows
}

func fits(b Board, w, h int) bool {
	needW, needH := TerminalSize(b)
	return w >= needW && h >= needH
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	st := g.sim.State()
	b := st.Board
	g.tooSmall = !fits(b, dst.Width(), dst.Height())
	if g.tooSmall {
		needW, needH := TerminalSize(b)
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	w, h := TerminalSize(b)
	offX := (dst.Width() - w) / 2
	box := core.NewRect(offX, titleRows, w, h-titleRows)

	g.renderTitle(dst, offX, w)
	dst.DrawBox(box, core.ColorCyan)

	for _, sq := range st.Squares() {
		col, row := b.GridPos(sq.At)
		x := box.X + borderSize + col*cellCols
		y := box.Y + borderSize + row
		for i := range cellCols {
			dst.SetColored(x+i, y, sq.Glyph, sq.Fill)
		}
	}

	if g.paused {
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderTitle draws the title bar above the board.
func (g *Game) renderTitle(dst *core.Screen, x, width int) {
	dst.DrawTextColored(x, 0, " "+g.Title(), core.ColorBrightWhite)

	var flags []string
	if g.sim.Boosted() {
		flags = append(flags, "BOOST")
	}
	if g.paused {
		flags = append(flags, "PAUSED")
	}
	if len(flags) == 0 {
		return
	}
	status := strings.Join(flags, " ") + " "
	dst.DrawTextColored(x+width-len(status), 0, status, core.ColorYellow)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
