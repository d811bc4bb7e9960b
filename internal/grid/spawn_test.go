package grid

import (
	"math"
	"math/rand"
	"testing"
)

func TestPlaceValueFillsExactlyOneEmptyCell(t *testing.T) {
	g := New(4, 4, rand.New(rand.NewSource(7)))
	mustSet(t, g, [][]int64{
		{2, 4, 0, 8},
		{0, 2, 4, 0},
		{16, 0, 2, 4},
		{0, 8, 0, 2},
	})

	before := snapshot(t, g)
	emptyBefore := g.EmptyCount()

	if full := g.PlaceValue(32); full {
		t.Fatal("PlaceValue on non-full board reported full")
	}

	if g.EmptyCount() != emptyBefore-1 {
		t.Errorf("EmptyCount() = %d, expected %d", g.EmptyCount(), emptyBefore-1)
	}

	// Every previously occupied cell must be untouched.
	after := snapshot(t, g)
	changed := 0
	for y := range before {
		for x := range before[y] {
			if before[y][x] == after[y][x] {
				continue
			}
			changed++
			if before[y][x] != 0 {
				t.Errorf("PlaceValue overwrote occupied cell (%d,%d): %d -> %d",
					x, y, before[y][x], after[y][x])
			}
			if after[y][x] != 32 {
				t.Errorf("placed value = %d, expected 32", after[y][x])
			}
		}
	}
	if changed != 1 {
		t.Errorf("PlaceValue changed %d cells, expected 1", changed)
	}
}

func TestPlaceValueOnFullBoard(t *testing.T) {
	g := New(2, 2, rand.New(rand.NewSource(7)))
	mustSet(t, g, [][]int64{
		{2, 4},
		{8, 16},
	})

	if full := g.PlaceValue(2); !full {
		t.Error("PlaceValue on full board should report full")
	}

	expected := [][]int64{{2, 4}, {8, 16}}
	if got := snapshot(t, g); !equalRows(got, expected) {
		t.Errorf("full board was modified: %v", got)
	}
}

func TestPlaceValueEventuallyFillsEveryCell(t *testing.T) {
	g := New(3, 3, rand.New(rand.NewSource(7)))
	for i := 0; i < 9; i++ {
		if full := g.PlaceValue(2); full {
			t.Fatalf("board reported full after %d placements", i)
		}
	}
	if !g.IsFull() {
		t.Error("board should be full after width*height placements")
	}
	if full := g.PlaceValue(2); !full {
		t.Error("placement on the now-full board should report full")
	}
}

func TestPlaceRandomTileDistribution(t *testing.T) {
	// Three cascading 1-in-4 escalations: 2 with 3/4, 4 with 3/16,
	// 8 with 3/64, 16 with 1/64.
	const n = 200000
	rng := rand.New(rand.NewSource(99))
	g := New(1, 1, rng)

	counts := make(map[int64]int)
	for i := 0; i < n; i++ {
		g.Reset()
		if full := g.PlaceRandomTile(); full {
			t.Fatal("PlaceRandomTile on empty 1x1 board reported full")
		}
		v, err := g.Get(0, 0)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		counts[v]++
	}

	expected := map[int64]float64{
		2:  0.75,
		4:  0.1875,
		8:  0.046875,
		16: 0.015625,
	}

	total := 0
	for v, c := range counts {
		if _, ok := expected[v]; !ok {
			t.Errorf("unexpected tile value %d spawned %d times", v, c)
		}
		total += c
	}
	if total != n {
		t.Fatalf("counted %d spawns, expected %d", total, n)
	}

	for v, want := range expected {
		got := float64(counts[v]) / n
		// Loose 3-sigma-ish tolerance on the empirical frequency.
		tol := 4 * math.Sqrt(want*(1-want)/n)
		if math.Abs(got-want) > tol {
			t.Errorf("frequency of %d = %.5f, expected %.5f +/- %.5f", v, got, want, tol)
		}
	}
}

func TestPlaceRandomTileOnFullBoard(t *testing.T) {
	g := New(2, 2, rand.New(rand.NewSource(7)))
	mustSet(t, g, [][]int64{
		{2, 4},
		{8, 16},
	})

	if full := g.PlaceRandomTile(); !full {
		t.Error("PlaceRandomTile on full board should report full")
	}
}
