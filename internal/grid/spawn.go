package grid

// PlaceValue writes v into a uniformly random empty cell. It returns
// true when the board is already full and nothing was placed, false
// after a successful placement. It never overwrites an occupied cell.
func (g *Grid) PlaceValue(v int64) bool {
	if g.IsFull() {
		return true
	}
	// Rejection sampling: uniform over all cells, retried until an
	// empty one is hit, stays uniform over the empty cells.
	for {
		i := g.rng.Intn(len(g.cells))
		if g.cells[i] == 0 {
			g.cells[i] = v
			return false
		}
	}
}

// PlaceRandomTile places a new tile with the classic skewed weights:
// three cascading 1-in-4 escalations give 2 with probability 3/4,
// 4 with 3/16, 8 with 3/64 and 16 with 1/64. Returns true when the
// board was full and no tile was placed.
func (g *Grid) PlaceRandomTile() bool {
	v := int64(2)
	for v < 16 && g.rng.Intn(4) == 0 {
		v *= 2
	}
	return g.PlaceValue(v)
}
