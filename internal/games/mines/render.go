package mines

import (
	"strconv"

	"github.com/gridhall/gridhall/internal/core"
)

const hudHeight = 2

// adjacencyColor follows the classic minesweeper number palette.
func adjacencyColor(n int) core.Color {
	switch n {
	case 1:
		return core.ColorBlue
	case 2:
		return core.ColorGreen
	case 3:
		return core.ColorRed
	case 4:
		return core.ColorMagenta
	case 5:
		return core.ColorYellow
	default:
		return core.ColorBrightRed
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	if g.tooSmall {
		screen.DrawTextCenteredColored(screen.Height()/2, "Screen too small for this field", core.ColorRed)
		return
	}

	g.renderHUD(screen)

	// Cells take two columns each so the cursor brackets fit between them.
	boxW := g.fieldW*2 + 3
	boxH := g.fieldH + 2
	offX := (screen.Width() - boxW) / 2
	offY := hudHeight + (screen.Height()-hudHeight-boxH)/2
	if offX < 0 {
		offX = 0
	}
	if offY < hudHeight {
		offY = hudHeight
	}

	screen.DrawBox(core.NewRect(offX, offY, boxW, boxH))

	for y := 0; y < g.fieldH; y++ {
		for x := 0; x < g.fieldW; x++ {
			p := Point{X: x, Y: y}
			sx := offX + 2 + x*2
			sy := offY + 1 + y
			r, c := g.cellGlyph(p)
			screen.SetColored(sx, sy, r, c)
		}
	}

	if !g.gameOver {
		sx := offX + 2 + g.cursor.X*2
		sy := offY + 1 + g.cursor.Y
		screen.SetColored(sx-1, sy, '[', core.ColorBrightYellow)
		screen.SetColored(sx+1, sy, ']', core.ColorBrightYellow)
	}

	switch {
	case g.won:
		screen.DrawTextCenteredColored(screen.Height()-1, "FIELD CLEARED - press R to restart", core.ColorBrightGreen)
	case g.gameOver:
		screen.DrawTextCenteredColored(screen.Height()-1, "BOOM - press R to restart", core.ColorBrightRed)
	case g.paused:
		screen.DrawTextCenteredColored(screen.Height()-1, "PAUSED", core.ColorYellow)
	}
}

// cellGlyph picks the rune and color for one cell.
func (g *Game) cellGlyph(p Point) (rune, core.Color) {
	c := g.at(p)
	switch {
	case c.flagged && !c.open:
		return 'F', core.ColorBrightYellow
	case !c.open:
		return '#', core.ColorGray
	case c.mine:
		return '*', core.ColorBrightRed
	case c.adjacent == 0:
		return ' ', core.ColorDefault
	default:
		return rune('0' + c.adjacent), adjacencyColor(c.adjacent)
	}
}

func (g *Game) renderHUD(screen *core.Screen) {
	screen.DrawTextColored(2, 0, "Minesweeper", core.ColorBrightCyan)
	screen.DrawTextColored(2, 1, "Opened: "+strconv.Itoa(g.opened), core.ColorWhite)
	screen.DrawTextColored(20, 1, "Mines: "+strconv.Itoa(g.mineCount-g.flagCount()), core.ColorGray)
}
