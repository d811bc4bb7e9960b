package snake

import (
	"strconv"

	"github.com/gridhall/gridhall/internal/core"
)

const hudHeight = 2

// Render draws the current game state to the screen.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	if g.tooSmall {
		screen.DrawTextCenteredColored(screen.Height()/2, "Screen too small for this field", core.ColorRed)
		return
	}

	g.renderHUD(screen)

	offX := (screen.Width() - g.fieldW - 2) / 2
	offY := hudHeight + (screen.Height()-hudHeight-g.fieldH-2)/2
	if offX < 0 {
		offX = 0
	}
	if offY < hudHeight {
		offY = hudHeight
	}

	screen.DrawBox(core.NewRect(offX, offY, g.fieldW+2, g.fieldH+2))

	if g.apple.X >= 0 {
		screen.SetColored(offX+1+g.apple.X, offY+1+g.apple.Y, '@', core.ColorBrightRed)
	}

	for i, seg := range g.snake {
		r := 'o'
		c := core.ColorGreen
		if i == 0 {
			r = 'O'
			c = core.ColorBrightGreen
		}
		screen.SetColored(offX+1+seg.X, offY+1+seg.Y, r, c)
	}

	if g.gameOver {
		screen.DrawTextCenteredColored(screen.Height()-1, "GAME OVER - press R to restart", core.ColorBrightRed)
	} else if g.paused {
		screen.DrawTextCenteredColored(screen.Height()-1, "PAUSED", core.ColorYellow)
	}
}

func (g *Game) renderHUD(screen *core.Screen) {
	screen.DrawTextColored(2, 0, "Snake", core.ColorBrightGreen)
	screen.DrawTextColored(2, 1, "Score: "+strconv.Itoa(g.score), core.ColorWhite)
	screen.DrawTextColored(20, 1, "Length: "+strconv.Itoa(len(g.snake)), core.ColorGray)
}
