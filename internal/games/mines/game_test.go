package mines

import (
	"testing"

	"github.com/gridhall/gridhall/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     42,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func TestMinesSeededAfterFirstOpen(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if g.seeded {
		t.Fatal("Mines should not be placed before the first open")
	}

	first := Point{X: g.fieldW / 2, Y: g.fieldH / 2}
	g.openCell(first)

	if !g.seeded {
		t.Fatal("Mines should be placed by the first open")
	}

	// Count mines and verify the exclusion zone
	mines := 0
	for y := 0; y < g.fieldH; y++ {
		for x := 0; x < g.fieldW; x++ {
			p := Point{X: x, Y: y}
			if !g.at(p).mine {
				continue
			}
			mines++
			if abs(p.X-first.X) <= 1 && abs(p.Y-first.Y) <= 1 {
				t.Errorf("Mine at (%d,%d) inside the first-open exclusion zone", p.X, p.Y)
			}
		}
	}
	if mines != g.mineCount {
		t.Errorf("Expected %d mines, got %d", g.mineCount, mines)
	}

	// First open is on a zero-adjacency cell, so at least 9 cells opened
	if g.opened < 9 {
		t.Errorf("Expected the first open to flood at least 9 cells, got %d", g.opened)
	}
}

func TestMineCountClamped(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if max := g.fieldW*g.fieldH - 9; g.mineCount > max {
		t.Errorf("Mine count %d exceeds placeable maximum %d", g.mineCount, max)
	}
}

func TestFloodOpenStopsAtNumbers(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.openCell(Point{X: g.fieldW / 2, Y: g.fieldH / 2})

	// Every open cell with adjacent mines must have at least one
	// unopened or zero-adjacency open neighbor that caused it; more
	// importantly, no mine may be open.
	for y := 0; y < g.fieldH; y++ {
		for x := 0; x < g.fieldW; x++ {
			c := g.at(Point{X: x, Y: y})
			if c.open && c.mine {
				t.Fatalf("Flood open revealed a mine at (%d,%d)", x, y)
			}
		}
	}

	// Opened count matches the open cells on the field
	n := 0
	for i := range g.cells {
		if g.cells[i].open {
			n++
		}
	}
	if n != g.opened {
		t.Errorf("Opened counter %d does not match open cells %d", g.opened, n)
	}
}

func TestFlagPreventsOpen(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	p := Point{X: 0, Y: 0}
	g.toggleFlag(p)
	g.openCell(p)

	if g.at(p).open {
		t.Error("Flagged cell must not open")
	}
	if g.seeded {
		t.Error("Opening a flagged cell must not seed mines")
	}

	g.toggleFlag(p)
	if g.at(p).flagged {
		t.Error("Flag should toggle off")
	}
}

func TestFlagOnOpenCellIgnored(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	p := Point{X: g.fieldW / 2, Y: g.fieldH / 2}
	g.openCell(p)
	g.toggleFlag(p)

	if g.at(p).flagged {
		t.Error("Open cells must not take a flag")
	}
}

func TestOpeningMineLoses(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.openCell(Point{X: g.fieldW / 2, Y: g.fieldH / 2})

	// Find an unopened mine and open it
	var mine Point
	found := false
	for y := 0; y < g.fieldH && !found; y++ {
		for x := 0; x < g.fieldW && !found; x++ {
			p := Point{X: x, Y: y}
			if g.at(p).mine {
				mine = p
				found = true
			}
		}
	}
	if !found {
		t.Fatal("No mine on the field")
	}

	g.openCell(mine)

	if !g.gameOver || g.won {
		t.Error("Opening a mine should lose the game")
	}
	// All mines revealed after a loss
	for i := range g.cells {
		if g.cells[i].mine && !g.cells[i].open {
			t.Error("All mines should be revealed after a loss")
			break
		}
	}
}

func TestWinWhenAllSafeCellsOpen(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.openCell(Point{X: g.fieldW / 2, Y: g.fieldH / 2})

	// Open every non-mine cell directly
	for y := 0; y < g.fieldH; y++ {
		for x := 0; x < g.fieldW; x++ {
			p := Point{X: x, Y: y}
			if !g.at(p).mine {
				g.openCell(p)
			}
		}
	}

	if !g.won || !g.gameOver {
		t.Error("Opening every safe cell should win the game")
	}
	if st := g.State(); !st.Won || st.Score != g.opened {
		t.Errorf("State() = %+v, expected won with score %d", st, g.opened)
	}
}

func TestCursorStaysInField(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	for i := 0; i < g.fieldW+5; i++ {
		g.Step(input)
	}
	if g.cursor.X != 0 {
		t.Errorf("Cursor X = %d, expected 0 after walking past the left edge", g.cursor.X)
	}

	input.Clear()
	input.Set(core.ActionDown)
	for i := 0; i < g.fieldH+5; i++ {
		g.Step(input)
	}
	if g.cursor.Y != g.fieldH-1 {
		t.Errorf("Cursor Y = %d, expected %d after walking past the bottom edge", g.cursor.Y, g.fieldH-1)
	}
}

func TestDeterministicPlacement(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 777

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	first := Point{X: 3, Y: 3}
	g1.openCell(first)
	g2.openCell(first)

	for i := range g1.cells {
		if g1.cells[i].mine != g2.cells[i].mine {
			t.Fatal("Same seed should produce the same mine layout")
		}
	}
}
