// Package mines implements minesweeper: a cursor-driven field where
// mines are placed after the first open, never under or next to it.
package mines

import (
	"math/rand"

	"github.com/gridhall/gridhall/internal/config"
	"github.com/gridhall/gridhall/internal/core"
	"github.com/gridhall/gridhall/internal/registry"
)

// Point is a field coordinate.
type Point struct {
	X, Y int
}

// fieldCell is one minesweeper cell. Adjacency counts are computed once
// after mine placement.
type fieldCell struct {
	mine     bool
	open     bool
	flagged  bool
	adjacent int
}

// Game implements Minesweeper. The field starts blank; the first open
// seeds the mines, excluding the 3x3 neighborhood around the opened
// cell so the first move always flood-opens something.
type Game struct {
	cfg config.MinesConfig
	rng *rand.Rand

	fieldW    int
	fieldH    int
	mineCount int

	cells  []fieldCell // Row-major, x + y*fieldW
	seeded bool
	cursor Point
	opened int

	screenW int
	screenH int

	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

var configPath string

// SetConfigPath sets a custom config file path for the next game.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Minesweeper game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("mines", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "mines"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadMines(configPath)
	if err != nil {
		gameCfg = config.DefaultMinesConfig()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.fieldW = gameCfg.Field.Width
	g.fieldH = gameCfg.Field.Height
	if g.fieldW < 4 {
		g.fieldW = 4
	}
	if g.fieldH < 4 {
		g.fieldH = 4
	}

	// The first-open exclusion zone needs 9 guaranteed mine-free cells.
	g.mineCount = gameCfg.Mines
	if max := g.fieldW*g.fieldH - 9; g.mineCount > max {
		g.mineCount = max
	}
	if g.mineCount < 1 {
		g.mineCount = 1
	}

	g.cells = make([]fieldCell, g.fieldW*g.fieldH)
	g.seeded = false
	g.cursor = Point{X: g.fieldW / 2, Y: g.fieldH / 2}
	g.opened = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	g.tooSmall = g.screenW < g.fieldW*2+3 || g.screenH < g.fieldH+2+hudHeight
}

func (g *Game) inField(p Point) bool {
	return p.X >= 0 && p.X < g.fieldW && p.Y >= 0 && p.Y < g.fieldH
}

func (g *Game) at(p Point) *fieldCell {
	return &g.cells[p.X+p.Y*g.fieldW]
}

// seedMines places the configured number of mines on random cells,
// rejecting duplicates and the 3x3 neighborhood of the first-opened
// cell, then computes adjacency counts.
func (g *Game) seedMines(first Point) {
	placed := 0
	for placed < g.mineCount {
		p := Point{X: g.rng.Intn(g.fieldW), Y: g.rng.Intn(g.fieldH)}
		if g.at(p).mine {
			continue
		}
		if abs(p.X-first.X) <= 1 && abs(p.Y-first.Y) <= 1 {
			continue
		}
		g.at(p).mine = true
		placed++
	}

	for y := 0; y < g.fieldH; y++ {
		for x := 0; x < g.fieldW; x++ {
			p := Point{X: x, Y: y}
			if g.at(p).mine {
				continue
			}
			g.at(p).adjacent = g.countAdjacentMines(p)
		}
	}
	g.seeded = true
}

func (g *Game) countAdjacentMines(p Point) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			q := Point{X: p.X + dx, Y: p.Y + dy}
			if g.inField(q) && g.at(q).mine {
				n++
			}
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// openCell opens the cell under p. Flagged and already-open cells are
// ignored. Opening a mine loses the game; opening a zero-adjacency cell
// flood-opens the connected region.
func (g *Game) openCell(p Point) {
	if !g.inField(p) {
		return
	}
	c := g.at(p)
	if c.open || c.flagged {
		return
	}

	if !g.seeded {
		g.seedMines(p)
	}

	if c.mine {
		c.open = true
		g.gameOver = true
		g.revealMines()
		return
	}

	g.floodOpen(p)

	if g.opened == g.fieldW*g.fieldH-g.mineCount {
		g.won = true
		g.gameOver = true
	}
}

// floodOpen opens p and, when p has no adjacent mines, spreads to its
// 8-neighborhood breadth-first. Frontier cells with adjacent mines open
// but do not spread.
func (g *Game) floodOpen(start Point) {
	queue := []Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		c := g.at(p)
		if c.open || c.flagged || c.mine {
			continue
		}
		c.open = true
		g.opened++

		if c.adjacent > 0 {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				q := Point{X: p.X + dx, Y: p.Y + dy}
				if g.inField(q) && !g.at(q).open {
					queue = append(queue, q)
				}
			}
		}
	}
}

// revealMines opens every mine after a loss.
func (g *Game) revealMines() {
	for i := range g.cells {
		if g.cells[i].mine {
			g.cells[i].open = true
		}
	}
}

// toggleFlag flips the flag on an unopened cell.
func (g *Game) toggleFlag(p Point) {
	if !g.inField(p) {
		return
	}
	c := g.at(p)
	if c.open {
		return
	}
	c.flagged = !c.flagged
}

// flagCount returns the number of flagged cells.
func (g *Game) flagCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].flagged {
			n++
		}
	}
	return n
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y = core.Clamp(g.cursor.Y-1, 0, g.fieldH-1)
	case in.Has(core.ActionDown):
		g.cursor.Y = core.Clamp(g.cursor.Y+1, 0, g.fieldH-1)
	case in.Has(core.ActionLeft):
		g.cursor.X = core.Clamp(g.cursor.X-1, 0, g.fieldW-1)
	case in.Has(core.ActionRight):
		g.cursor.X = core.Clamp(g.cursor.X+1, 0, g.fieldW-1)
	}

	if in.Has(core.ActionConfirm) {
		g.openCell(g.cursor)
	}
	if in.Has(core.ActionFlag) {
		g.toggleFlag(g.cursor)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.opened,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall,
	}
}
