package grid

// Direction selects the scan order and the neighbor offset for a move.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
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

// probeKind classifies what a directional scan from a source cell found.
type probeKind int

const (
	probeBlocked     probeKind = iota // no room to move at all
	probeEmptyRun                     // at least one empty cell before the boundary or a blocker
	probeMergeTarget                  // first occupied cell holds the source value
)

// probeResult is the outcome of scanning outward from a source cell:
// where it can land (empty run) or which cell it merges into.
type probeResult struct {
	kind probeKind
	x, y int
}

// probe scans from (x, y) one step at a time in dir until it leaves the
// grid or hits an occupied cell. With skipMerge set, an equal-valued
// blocker is treated like any other blocker.
//
// The scan checks bounds explicitly at every step, so it can never index
// outside the cell buffer regardless of direction.
func (g *Grid) probe(x, y int, dir Direction, skipMerge bool) probeResult {
	dx, dy := dir.Delta()
	src := g.at(x, y)

	lastX, lastY := x, y
	empties := 0
	for cx, cy := x+dx, y+dy; g.inBounds(cx, cy); cx, cy = cx+dx, cy+dy {
		v := g.at(cx, cy)
		if v == 0 {
			lastX, lastY = cx, cy
			empties++
			continue
		}
		if v == src && !skipMerge {
			return probeResult{kind: probeMergeTarget, x: cx, y: cy}
		}
		break
	}
	if empties == 0 {
		return probeResult{kind: probeBlocked}
	}
	return probeResult{kind: probeEmptyRun, x: lastX, y: lastY}
}

// slideOutcome reports what a single-cell slide did.
type slideOutcome int

const (
	slideNone   slideOutcome = iota // empty source or blocked immediately
	slideMoved                      // moved into empty space, no merge
	slideMerged                     // merged into an equal tile
)

// slideResult is the result of one slideOne call. For a merge, value is
// the new (doubled) cell value and (x, y) is where it landed.
type slideResult struct {
	outcome slideOutcome
	value   int64
	x, y    int
}

// slideOne compacts the single cell at (x, y) toward dir. The source
// either merges into the first equal occupied cell, moves into the last
// empty cell before a blocker or the boundary, or stays put.
func (g *Grid) slideOne(x, y int, dir Direction, skipMerge bool) slideResult {
	src := g.at(x, y)
	if src == 0 {
		return slideResult{outcome: slideNone}
	}

	p := g.probe(x, y, dir, skipMerge)
	switch p.kind {
	case probeMergeTarget:
		merged := g.at(p.x, p.y) * 2
		g.set(p.x, p.y, merged)
		g.set(x, y, 0)
		return slideResult{outcome: slideMerged, value: merged, x: p.x, y: p.y}
	case probeEmptyRun:
		g.set(p.x, p.y, src)
		g.set(x, y, 0)
		return slideResult{outcome: slideMoved, x: p.x, y: p.y}
	default:
		return slideResult{outcome: slideNone}
	}
}

// Merge slides every cell toward dir and merges equal neighbors,
// returning the score gained and whether anything moved. Each
// perpendicular line is processed independently, outermost cell first,
// so tiles nearest the target edge settle before the rest.
//
// A tile merges at most once per move: within a line, a slide may not
// merge into the cell produced by the line's previous merge. The gained
// score is added to the running total only when at least one cell
// actually moved or merged; a wholly blocked move returns (0, false).
func (g *Grid) Merge(dir Direction) (int64, bool) {
	var gained int64
	moved := false

	sweep := func(line [][2]int) {
		spentX, spentY := -1, -1
		for _, c := range line {
			x, y := c[0], c[1]
			if g.at(x, y) == 0 {
				continue
			}

			// A freshly merged cell is spent for the rest of
			// this move: sliding into it may not merge again.
			skip := false
			if ox, oy, ok := g.firstOccupied(x, y, dir); ok && ox == spentX && oy == spentY {
				skip = true
			}

			r := g.slideOne(x, y, dir, skip)
			switch r.outcome {
			case slideMerged:
				spentX, spentY = r.x, r.y
				gained += r.value
				moved = true
			case slideMoved:
				moved = true
			}
		}
	}

	switch dir {
	case DirUp:
		for x := 0; x < g.width; x++ {
			line := make([][2]int, 0, g.height)
			for y := 0; y < g.height; y++ {
				line = append(line, [2]int{x, y})
			}
			sweep(line)
		}
	case DirDown:
		for x := 0; x < g.width; x++ {
			line := make([][2]int, 0, g.height)
			for y := g.height - 1; y >= 0; y-- {
				line = append(line, [2]int{x, y})
			}
			sweep(line)
		}
	case DirLeft:
		for y := 0; y < g.height; y++ {
			line := make([][2]int, 0, g.width)
			for x := 0; x < g.width; x++ {
				line = append(line, [2]int{x, y})
			}
			sweep(line)
		}
	case DirRight:
		for y := 0; y < g.height; y++ {
			line := make([][2]int, 0, g.width)
			for x := g.width - 1; x >= 0; x-- {
				line = append(line, [2]int{x, y})
			}
			sweep(line)
		}
	}

	if !moved {
		return 0, false
	}
	g.score += gained
	return gained, true
}

// firstOccupied returns the coordinates of the first non-empty cell
// found scanning from (x, y) in dir, or ok=false if the scan leaves the
// grid first.
func (g *Grid) firstOccupied(x, y int, dir Direction) (int, int, bool) {
	dx, dy := dir.Delta()
	for cx, cy := x+dx, y+dy; g.inBounds(cx, cy); cx, cy = cx+dx, cy+dy {
		if g.at(cx, cy) != 0 {
			return cx, cy, true
		}
	}
	return 0, 0, false
}
