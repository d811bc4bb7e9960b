// Package registry holds the catalog of playable games. Games register
// a factory from their init() function so the platform can list and
// instantiate them without hardcoded imports.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gridhall/gridhall/internal/core"
)

// Game is the interface every game implements. Games contain pure logic
// with no terminal or storage dependencies; the platform handles input
// mapping, timing and display.
type Game interface {
	// ID returns the unique identifier used for CLI commands and
	// score storage (e.g. "2048", "snake", "mines").
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset initializes or restarts the game. Called once at start
	// and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick, consuming the
	// actions triggered during that frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer,
	// clearing it first.
	Render(dst *core.Screen)

	// State returns the current score and game-over/pause flags.
	State() core.GameState
}

// GameInfo is the metadata exposed for a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory. Typically called from a game package's
// init() function; panics on a duplicate ID since that is a programmer
// error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: f().Title()}
}

// List returns metadata for all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
