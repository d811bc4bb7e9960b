package x2048

import (
	"strconv"

	"github.com/gridhall/gridhall/internal/core"
)

const (
	cellWidth  = 7 // Interior plus one shared border column
	cellHeight = 2 // Interior plus one shared border row
	hudHeight  = 3
)

// tileColor maps a tile value to a palette color. Values beyond 2048
// share the hottest color.
func tileColor(v int64) core.Color {
	switch v {
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorBrightWhite
	case 8:
		return core.ColorYellow
	case 16:
		return core.ColorBrightYellow
	case 32:
		return core.ColorMagenta
	case 64:
		return core.ColorBrightMagenta
	case 128:
		return core.ColorCyan
	case 256:
		return core.ColorBrightCyan
	case 512:
		return core.ColorGreen
	case 1024:
		return core.ColorBrightGreen
	case 2048:
		return core.ColorBrightRed
	default:
		return core.ColorRed
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	if g.tooSmall {
		screen.DrawTextCenteredColored(screen.Height()/2, "Screen too small for this board", core.ColorRed)
		return
	}

	g.renderHUD(screen)
	g.renderBoard(screen)

	if g.gameOver {
		screen.DrawTextCenteredColored(screen.Height()-1, "GAME OVER - press R to restart", core.ColorBrightRed)
	} else if g.paused {
		screen.DrawTextCenteredColored(screen.Height()-1, "PAUSED", core.ColorYellow)
	}
}

func (g *Game) renderHUD(screen *core.Screen) {
	screen.DrawTextColored(2, 0, "2048", core.ColorBrightYellow)
	screen.DrawTextColored(2, 1, "Score: "+strconv.FormatInt(g.board.Score(), 10), core.ColorWhite)
	if max := g.board.MaxTile(); max > 0 {
		screen.DrawTextColored(20, 1, "Best tile: "+strconv.FormatInt(max, 10), core.ColorGray)
	}
}

// renderBoard draws the grid with shared box-drawing borders: each cell
// owns its top and left border, and the final row/column closes the box.
func (g *Game) renderBoard(screen *core.Screen) {
	w := g.board.Width()
	h := g.board.Height()

	boardW := w*cellWidth + 1
	boardH := h*cellHeight + 1
	offX := (screen.Width() - boardW) / 2
	offY := hudHeight + (screen.Height()-hudHeight-boardH)/2
	if offX < 0 {
		offX = 0
	}
	if offY < hudHeight {
		offY = hudHeight
	}

	for gy := 0; gy <= h; gy++ {
		sy := offY + gy*cellHeight
		for gx := 0; gx <= w; gx++ {
			sx := offX + gx*cellWidth
			screen.SetColored(sx, sy, borderJunction(gx, gy, w, h), core.ColorGray)
			if gx < w {
				for i := 1; i < cellWidth; i++ {
					screen.SetColored(sx+i, sy, '─', core.ColorGray)
				}
			}
		}
		if gy == h {
			break
		}
		for line := 1; line < cellHeight; line++ {
			for gx := 0; gx <= w; gx++ {
				screen.SetColored(offX+gx*cellWidth, sy+line, '│', core.ColorGray)
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v, err := g.board.Get(x, y)
			if err != nil || v == 0 {
				continue
			}
			label := strconv.FormatInt(v, 10)
			interior := cellWidth - 1
			sx := offX + x*cellWidth + 1 + (interior-len(label))/2
			sy := offY + y*cellHeight + 1
			screen.DrawTextColored(sx, sy, label, tileColor(v))
		}
	}
}

// borderJunction picks the box-drawing rune for a grid line crossing.
func borderJunction(gx, gy, w, h int) rune {
	switch {
	case gx == 0 && gy == 0:
		return '┌'
	case gx == w && gy == 0:
		return '┐'
	case gx == 0 && gy == h:
		return '└'
	case gx == w && gy == h:
		return '┘'
	case gy == 0:
		return '┬'
	case gy == h:
		return '┴'
	case gx == 0:
		return '├'
	case gx == w:
		return '┤'
	default:
		return '┼'
	}
}
