// Package x2048 implements the 2048 sliding-tile puzzle on top of the
// grid engine.
package x2048

import (
	"math/rand"

	"github.com/gridhall/gridhall/internal/config"
	"github.com/gridhall/gridhall/internal/core"
	"github.com/gridhall/gridhall/internal/grid"
	"github.com/gridhall/gridhall/internal/registry"
)

// Game drives a grid engine from platform input: a direction key merges
// the board, a move that produced motion spawns a new tile, and a full
// board with no merges left ends the game.
type Game struct {
	cfg  config.X2048Config
	rng  *rand.Rand
	tick uint64

	board *grid.Grid

	screenW int
	screenH int

	gameOver      bool
	paused        bool
	tooSmall      bool
	moveProcessed bool // At most one move per tick
}

var configPath string

// SetConfigPath sets a custom config file path for the next game.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new 2048 game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadX2048(configPath)
	if err != nil {
		gameCfg = config.DefaultX2048Config()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false
	g.moveProcessed = false

	if g.board == nil || g.board.Width() != gameCfg.Board.Width || g.board.Height() != gameCfg.Board.Height {
		g.board = grid.New(gameCfg.Board.Width, gameCfg.Board.Height, g.rng)
	} else {
		g.board.Reset()
	}

	startTiles := gameCfg.StartTiles
	if startTiles < 1 {
		startTiles = 1
	}
	for i := 0; i < startTiles; i++ {
		g.board.PlaceValue(2)
	}

	g.checkScreenSize()
}

// checkScreenSize flags boards that cannot fit the terminal.
func (g *Game) checkScreenSize() {
	minW := g.board.Width()*cellWidth + 1
	minH := g.board.Height()*cellHeight + 1 + hudHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	var dir grid.Direction
	pressed := false
	switch {
	case in.Has(core.ActionUp):
		dir = grid.DirUp
		pressed = true
	case in.Has(core.ActionDown):
		dir = grid.DirDown
		pressed = true
	case in.Has(core.ActionLeft):
		dir = grid.DirLeft
		pressed = true
	case in.Has(core.ActionRight):
		dir = grid.DirRight
		pressed = true
	}

	if pressed && !g.moveProcessed {
		g.processMove(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// processMove merges the board toward dir and, when anything moved,
// spawns a weighted random tile and checks for the terminal state.
// A wholly blocked move spawns nothing.
func (g *Game) processMove(dir grid.Direction) {
	_, moved := g.board.Merge(dir)
	if !moved {
		return
	}

	g.board.PlaceRandomTile()

	if g.board.IsTerminal() {
		g.gameOver = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.board.Score()),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
