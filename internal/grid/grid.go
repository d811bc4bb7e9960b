// Package grid implements the board engine behind the 2048 game: a
// fixed-size matrix of int64 cells with the directional compaction-merge
// algorithm, weighted tile spawning, score bookkeeping and terminal-state
// detection. The engine performs no I/O; a game loop drives it through
// Merge, PlaceRandomTile and the read accessors.
package grid

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrOutOfRange reports a coordinate access outside the grid bounds. It
// always signals a caller defect; well-formed directional scans never
// produce it.
var ErrOutOfRange = errors.New("grid: position out of range")

// OutOfRangeError carries the offending coordinates. It wraps
// ErrOutOfRange so callers can match either the sentinel or the type.
type OutOfRangeError struct {
	X, Y int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("grid: position (%d,%d) is out of range", e.X, e.Y)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// Grid owns the cell matrix and the accumulated score for one session.
// Cells are stored row-major (index = x + y*width); zero means empty and
// every non-zero value is a positive power of two.
//
// A Grid is exclusively owned by a single game loop; it is not safe for
// concurrent use.
type Grid struct {
	width  int
	height int
	cells  []int64
	score  int64
	rng    *rand.Rand
}

// New creates a grid of the given dimensions with all cells empty.
// The random source drives tile placement; passing nil seeds one from
// the current time. Panics if either dimension is not positive.
func New(width, height int, rng *rand.Rand) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]int64, width*height),
		rng:    rng,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Score returns the accumulated merge score for this session.
func (g *Grid) Score() int64 {
	return g.score
}

// Reset clears all cells and the score, keeping the current dimensions.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = 0
	}
	g.score = 0
}

// ResetSize clears the grid and changes its dimensions.
// Panics if either dimension is not positive.
func (g *Grid) ResetSize(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
	g.width = width
	g.height = height
	g.cells = make([]int64, width*height)
	g.score = 0
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return x + y*g.width
}

// at reads a cell without a bounds check. Callers must have verified
// the coordinates already.
func (g *Grid) at(x, y int) int64 {
	return g.cells[g.index(x, y)]
}

func (g *Grid) set(x, y int, v int64) {
	g.cells[g.index(x, y)] = v
}

// Get returns the value at (x, y), or an OutOfRangeError for
// coordinates outside [0,width)x[0,height).
func (g *Grid) Get(x, y int) (int64, error) {
	if !g.inBounds(x, y) {
		return 0, &OutOfRangeError{X: x, Y: y}
	}
	return g.at(x, y), nil
}

// Put writes a value at (x, y), or returns an OutOfRangeError for
// coordinates outside the grid.
func (g *Grid) Put(x, y int, v int64) error {
	if !g.inBounds(x, y) {
		return &OutOfRangeError{X: x, Y: y}
	}
	g.set(x, y, v)
	return nil
}

// IsFull reports whether no cell is empty.
func (g *Grid) IsFull() bool {
	for _, v := range g.cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// IsTerminal reports whether the board is lost: full, with no pair of
// equal 4-neighbors left to merge. A board with any empty cell is never
// terminal since a move is always possible.
func (g *Grid) IsTerminal() bool {
	if !g.IsFull() {
		return false
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			v := g.at(x, y)
			if x+1 < g.width && g.at(x+1, y) == v {
				return false
			}
			if y+1 < g.height && g.at(x, y+1) == v {
				return false
			}
		}
	}
	return true
}

// MaxTile returns the largest cell value on the board, or 0 when empty.
func (g *Grid) MaxTile() int64 {
	var max int64
	for _, v := range g.cells {
		if v > max {
			max = v
		}
	}
	return max
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, v := range g.cells {
		if v == 0 {
			n++
		}
	}
	return n
}
