package grid

import (
	"math/rand"
	"testing"
)

func TestMergeEmptyGridIsNoop(t *testing.T) {
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		t.Run(dir.String(), func(t *testing.T) {
			g := New(4, 4, rand.New(rand.NewSource(1)))
			gained, moved := g.Merge(dir)
			if moved {
				t.Error("merging an empty grid should report no motion")
			}
			if gained != 0 {
				t.Errorf("scoreGained = %d, expected 0", gained)
			}
			if g.Score() != 0 {
				t.Errorf("Score() = %d, expected 0", g.Score())
			}
		})
	}
}

func TestMergePinnedTileIsNoop(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		dir  Direction
	}{
		{"pinned left", 0, 1, DirLeft},
		{"pinned right", 3, 1, DirRight},
		{"pinned top", 1, 0, DirUp},
		{"pinned bottom", 1, 3, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(4, 4, rand.New(rand.NewSource(1)))
			if err := g.Put(tc.x, tc.y, 2); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			gained, moved := g.Merge(tc.dir)
			if moved {
				t.Error("tile already at the target edge should not move")
			}
			if gained != 0 {
				t.Errorf("scoreGained = %d, expected 0", gained)
			}
			if v, _ := g.Get(tc.x, tc.y); v != 2 {
				t.Errorf("tile value = %d, expected 2 at (%d,%d)", v, tc.x, tc.y)
			}
		})
	}
}

func TestMergeLeftRows(t *testing.T) {
	tests := []struct {
		name     string
		input    []int64
		expected []int64
		gained   int64
		moved    bool
	}{
		{
			name:     "simple pair",
			input:    []int64{2, 2, 0, 0},
			expected: []int64{4, 0, 0, 0},
			gained:   4,
			moved:    true,
		},
		{
			name:     "three equal merge once",
			input:    []int64{2, 2, 2, 0},
			expected: []int64{4, 2, 0, 0},
			gained:   4,
			moved:    true,
		},
		{
			name:     "four equal merge pairwise",
			input:    []int64{2, 2, 2, 2},
			expected: []int64{4, 4, 0, 0},
			gained:   8,
			moved:    true,
		},
		{
			name:     "fresh merge result does not merge again",
			input:    []int64{2, 2, 4, 0},
			expected: []int64{4, 4, 0, 0},
			gained:   4,
			moved:    true,
		},
		{
			name:     "no merge possible",
			input:    []int64{2, 4, 8, 16},
			expected: []int64{2, 4, 8, 16},
			gained:   0,
			moved:    false,
		},
		{
			name:     "slide across gap then merge",
			input:    []int64{2, 0, 0, 2},
			expected: []int64{4, 0, 0, 0},
			gained:   4,
			moved:    true,
		},
		{
			name:     "compaction only",
			input:    []int64{0, 2, 0, 4},
			expected: []int64{2, 4, 0, 0},
			gained:   0,
			moved:    true,
		},
		{
			name:     "already settled",
			input:    []int64{4, 2, 0, 0},
			expected: []int64{4, 2, 0, 0},
			gained:   0,
			moved:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(4, 1, rand.New(rand.NewSource(1)))
			mustSet(t, g, [][]int64{tc.input})

			gained, moved := g.Merge(DirLeft)

			got := snapshot(t, g)[0]
			if !equalRows([][]int64{got}, [][]int64{tc.expected}) {
				t.Errorf("Merge(left) on %v = %v, expected %v", tc.input, got, tc.expected)
			}
			if gained != tc.gained {
				t.Errorf("scoreGained = %d, expected %d", gained, tc.gained)
			}
			if moved != tc.moved {
				t.Errorf("anyMotion = %v, expected %v", moved, tc.moved)
			}
		})
	}
}

func TestMergeAllDirections(t *testing.T) {
	start := [][]int64{
		{2, 0, 0, 2},
		{0, 4, 0, 0},
		{0, 0, 4, 0},
		{2, 0, 0, 2},
	}

	tests := []struct {
		dir      Direction
		expected [][]int64
		gained   int64
	}{
		{
			dir: DirLeft,
			expected: [][]int64{
				{4, 0, 0, 0},
				{4, 0, 0, 0},
				{4, 0, 0, 0},
				{4, 0, 0, 0},
			},
			gained: 8,
		},
		{
			dir: DirRight,
			expected: [][]int64{
				{0, 0, 0, 4},
				{0, 0, 0, 4},
				{0, 0, 0, 4},
				{0, 0, 0, 4},
			},
			gained: 8,
		},
		{
			dir: DirUp,
			expected: [][]int64{
				{4, 4, 4, 4},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			gained: 8,
		},
		{
			dir: DirDown,
			expected: [][]int64{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{4, 4, 4, 4},
			},
			gained: 8,
		},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			g := New(4, 4, rand.New(rand.NewSource(1)))
			mustSet(t, g, start)

			gained, moved := g.Merge(tc.dir)

			if !moved {
				t.Error("expected motion")
			}
			if gained != tc.gained {
				t.Errorf("scoreGained = %d, expected %d", gained, tc.gained)
			}
			if got := snapshot(t, g); !equalRows(got, tc.expected) {
				t.Errorf("Merge(%s): got\n%v\nexpected\n%v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestMergeOutermostSettlesFirst(t *testing.T) {
	// For UP the column scans top to bottom: the uppermost pair merges
	// and the third tile slides in behind it.
	g := New(1, 4, rand.New(rand.NewSource(1)))
	mustSet(t, g, [][]int64{
		{2},
		{2},
		{2},
		{0},
	})

	gained, moved := g.Merge(DirUp)
	if !moved || gained != 4 {
		t.Fatalf("Merge(up) = (%d, %v), expected (4, true)", gained, moved)
	}

	expected := [][]int64{{4}, {2}, {0}, {0}}
	if got := snapshot(t, g); !equalRows(got, expected) {
		t.Errorf("Merge(up): got %v, expected %v", got, expected)
	}
}

func TestMergeAccumulatesScoreOnlyOnMotion(t *testing.T) {
	g := New(4, 1, rand.New(rand.NewSource(1)))
	mustSet(t, g, [][]int64{{2, 2, 0, 0}})

	if _, moved := g.Merge(DirLeft); !moved {
		t.Fatal("expected motion on first merge")
	}
	if g.Score() != 4 {
		t.Fatalf("Score() = %d, expected 4", g.Score())
	}

	// Board is now [4 0 0 0]; merging left again is fully blocked and
	// must not change the score.
	if _, moved := g.Merge(DirLeft); moved {
		t.Error("blocked move should report no motion")
	}
	if g.Score() != 4 {
		t.Errorf("Score() after blocked move = %d, expected 4", g.Score())
	}
}

func TestMergeSingleTileMovesToEdge(t *testing.T) {
	// End-to-end: one tile at (0,0) merged RIGHT lands at (3,0).
	g := New(4, 4, rand.New(rand.NewSource(1)))
	if err := g.Put(0, 0, 2); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	gained, moved := g.Merge(DirRight)
	if !moved {
		t.Error("expected motion")
	}
	if gained != 0 {
		t.Errorf("scoreGained = %d, expected 0", gained)
	}

	expected := [][]int64{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if got := snapshot(t, g); !equalRows(got, expected) {
		t.Errorf("Merge(right): got %v, expected %v", got, expected)
	}
}

func TestSlideOneOutcomes(t *testing.T) {
	tests := []struct {
		name      string
		row       []int64
		x         int
		skipMerge bool
		outcome   slideOutcome
		value     int64
		landing   int
	}{
		{
			name:    "empty source is a no-op",
			row:     []int64{0, 0, 2, 0},
			x:       0,
			outcome: slideNone,
		},
		{
			name:    "blocked immediately",
			row:     []int64{4, 2, 0, 0},
			x:       1,
			outcome: slideNone,
		},
		{
			name:    "moves to boundary",
			row:     []int64{0, 0, 0, 2},
			x:       3,
			outcome: slideMoved,
			landing: 0,
		},
		{
			name:    "stops before a different blocker",
			row:     []int64{8, 0, 0, 2},
			x:       3,
			outcome: slideMoved,
			landing: 1,
		},
		{
			name:    "merges across a gap",
			row:     []int64{2, 0, 0, 2},
			x:       3,
			outcome: slideMerged,
			value:   4,
			landing: 0,
		},
		{
			name:      "skipMerge treats equal blocker as wall",
			row:       []int64{2, 0, 0, 2},
			x:         3,
			skipMerge: true,
			outcome:   slideMoved,
			landing:   1,
		},
		{
			name:      "skipMerge with no gap is a no-op",
			row:       []int64{2, 2, 0, 0},
			x:         1,
			skipMerge: true,
			outcome:   slideNone,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(4, 1, rand.New(rand.NewSource(1)))
			mustSet(t, g, [][]int64{tc.row})

			r := g.slideOne(tc.x, 0, DirLeft, tc.skipMerge)
			if r.outcome != tc.outcome {
				t.Fatalf("outcome = %d, expected %d", r.outcome, tc.outcome)
			}
			if tc.outcome == slideMerged && r.value != tc.value {
				t.Errorf("merged value = %d, expected %d", r.value, tc.value)
			}
			if tc.outcome != slideNone && r.x != tc.landing {
				t.Errorf("landing x = %d, expected %d", r.x, tc.landing)
			}
		})
	}
}

func TestMergePreservesPowerOfTwoInvariant(t *testing.T) {
	g := New(4, 4, rand.New(rand.NewSource(42)))

	dirs := []Direction{DirUp, DirLeft, DirDown, DirRight}
	for i := 0; i < 200; i++ {
		if _, moved := g.Merge(dirs[i%len(dirs)]); moved {
			g.PlaceRandomTile()
		} else if g.EmptyCount() > 0 {
			g.PlaceRandomTile()
		}
		if g.IsTerminal() {
			break
		}
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			v, err := g.Get(x, y)
			if err != nil {
				t.Fatalf("Get(%d, %d) failed: %v", x, y, err)
			}
			if v == 0 {
				continue
			}
			if v < 2 || v&(v-1) != 0 {
				t.Fatalf("cell (%d,%d) = %d is not a positive power of two", x, y, v)
			}
		}
	}
}
