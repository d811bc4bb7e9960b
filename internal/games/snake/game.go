// Package snake implements the classic snake game: a bordered field,
// a buffered-direction snake and one apple at a time.
package snake

import (
	"math/rand"

	"github.com/gridhall/gridhall/internal/config"
	"github.com/gridhall/gridhall/internal/core"
	"github.com/gridhall/gridhall/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// opposite reports whether two directions are reversals of each other.
func opposite(a, b Direction) bool {
	return (a == DirUp && b == DirDown) ||
		(a == DirDown && b == DirUp) ||
		(a == DirLeft && b == DirRight) ||
		(a == DirRight && b == DirLeft)
}

// Point is a field coordinate.
type Point struct {
	X, Y int
}

const startLength = 3

// Game implements the Snake game. The snake starts centered heading
// down, arrow keys buffer the next direction (reversals ignored), and
// hitting the border or the snake's own body ends the game.
type Game struct {
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64
	tickRate   int
	score      int

	snake      []Point // Head at index 0
	direction  Direction
	nextDir    Direction
	growing    bool
	apple      Point
	moveTicker int

	fieldW int
	fieldH int

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for the next game.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next game.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadSnake(configPath)
	if err != nil {
		gameCfg = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = gameCfg
	g.difficulty = config.NewDifficultyManager(gameCfg.Difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.score = 0
	g.moveTicker = 0
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.fieldW = gameCfg.Field.Width
	g.fieldH = gameCfg.Field.Height
	if g.fieldW < 8 {
		g.fieldW = 8
	}
	if g.fieldH < 8 {
		g.fieldH = 8
	}

	// Field plus border plus HUD must fit the terminal.
	g.tooSmall = g.screenW < g.fieldW+2 || g.screenH < g.fieldH+2+hudHeight

	g.initSnake()
	g.spawnApple()
}

// initSnake places the snake centered, heading down, tail trailing
// upward so the first moves never run into it.
func (g *Game) initSnake() {
	cx := g.fieldW / 2
	cy := g.fieldH / 2

	g.snake = make([]Point, 0, startLength)
	for i := 0; i < startLength; i++ {
		g.snake = append(g.snake, Point{X: cx, Y: cy - i})
	}
	g.direction = DirDown
	g.nextDir = DirDown
	g.growing = false
}

// spawnApple places the apple on a uniformly random empty cell. With no
// empty cell left the apple is parked off-field.
func (g *Game) spawnApple() {
	var empty []Point
	for y := 0; y < g.fieldH; y++ {
		for x := 0; x < g.fieldW; x++ {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		g.apple = Point{X: -1, Y: -1}
		return
	}
	g.apple = empty[g.rng.Intn(len(empty))]
}

func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// moveInterval returns how many ticks pass between snake moves at the
// current difficulty level.
func (g *Game) moveInterval() int {
	mps := g.cfg.Speed.MovesPerSecond
	if mps <= 0 {
		mps = 6
	}
	level := g.difficulty.Level(g.score, int(g.tick))
	mps *= g.difficulty.SpeedFactor(level)

	interval := int(float64(g.tickRate) / mps)
	if interval < 1 {
		interval = 1
	}
	return interval
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(in)

	g.moveTicker++
	if g.moveTicker >= g.moveInterval() {
		g.moveTicker = 0
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers the next direction, ignoring instant reversals.
func (g *Game) processInput(in core.InputFrame) {
	newDir := g.nextDir
	switch {
	case in.Has(core.ActionUp):
		newDir = DirUp
	case in.Has(core.ActionDown):
		newDir = DirDown
	case in.Has(core.ActionLeft):
		newDir = DirLeft
	case in.Has(core.ActionRight):
		newDir = DirRight
	}

	if !opposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

// moveSnake advances the snake one cell in the buffered direction.
func (g *Game) moveSnake() {
	if len(g.snake) == 0 {
		return
	}

	g.direction = g.nextDir

	head := g.snake[0]
	newHead := head
	switch g.direction {
	case DirUp:
		newHead.Y--
	case DirDown:
		newHead.Y++
	case DirLeft:
		newHead.X--
	case DirRight:
		newHead.X++
	}

	// Border collision
	if newHead.X < 0 || newHead.X >= g.fieldW || newHead.Y < 0 || newHead.Y >= g.fieldH {
		g.gameOver = true
		return
	}

	// Self collision. The tail cell is about to vacate unless the snake
	// is growing this move, so skip it in that case.
	checkLen := len(g.snake)
	if !g.growing && checkLen > 0 {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.snake[i] == newHead {
			g.gameOver = true
			return
		}
	}

	g.snake = append([]Point{newHead}, g.snake...)

	if newHead == g.apple {
		g.score++
		g.growing = true
		g.spawnApple()
	}

	if g.growing {
		g.growing = false
	} else if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
