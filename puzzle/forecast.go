package puzzle

/*

Constraint propagation

Propagation is a pair of idempotent board-to-board
transformations.  Neither touches a filled cell's value, and
both recompute from the whole board rather than keeping any
incremental state, so they are safe to apply after any
assignment, in any order, any number of times.

*/

// sees reports whether two distinct coordinates constrain each
// other: same row, same column, or same block.
func sees(a, b Coordinate) bool {
	return a.Row == b.Row || a.Col == b.Col || BlockOf(a) == BlockOf(b)
}

// FillForecasts recomputes the forecast set of every empty cell
// from scratch: 1..9 minus the values held by the other cells in
// its row, column, and block.  Filled cells get an empty set.
func FillForecasts(b Board) Board {
	cells := make([]Cell, len(b.cells))
	for i, c := range b.cells {
		if !c.empty() {
			cells[i] = Cell{Coord: c.Coord, Value: c.Value}
			continue
		}
		fs := newIntsetRange(SideLength)
		for j, o := range b.cells {
			if j != i && !o.empty() && sees(c.Coord, o.Coord) {
				fs.remove(o.Value)
			}
		}
		cells[i] = Cell{Coord: c.Coord, Forecasts: fs}
	}
	return Board{cells}
}

// ResolveConfirmed applies the row/column hidden-single rule to
// every empty cell.  A forecast value is confirmed when no other
// empty cell in the same row forecasts it, or no other empty
// cell in the same column forecasts it; either check alone is
// enough.  Block uniqueness is not part of the confirmation.  A
// cell left with exactly one confirmed value is assigned that
// value and its forecasts cleared; every other cell keeps its
// original forecast list untouched.
//
// All cells are judged against the incoming board, so the order
// of assignments within one pass cannot influence each other.
func ResolveConfirmed(b Board) Board {
	cells := make([]Cell, len(b.cells))
	for i, c := range b.cells {
		cells[i] = c
		if !c.empty() || len(c.Forecasts) == 0 {
			continue
		}
		var confirmed intset
		for _, v := range c.Forecasts {
			if b.uniqueInLine(i, v) {
				confirmed = append(confirmed, v)
			}
		}
		if len(confirmed) == 1 {
			cells[i] = Cell{Coord: c.Coord, Value: confirmed[0]}
		}
	}
	return Board{cells}
}

// uniqueInLine reports whether no other empty cell in cell i's
// row, or none in its column, forecasts v.
func (b Board) uniqueInLine(i, v int) bool {
	co := b.cells[i].Coord
	row, col := true, true
	for j, o := range b.cells {
		if j == i || !o.empty() || !o.Forecasts.contains(v) {
			continue
		}
		if o.Coord.Row == co.Row {
			row = false
		}
		if o.Coord.Col == co.Col {
			col = false
		}
		if !row && !col {
			return false
		}
	}
	return row || col
}

/*

Commit steps

*/

// commit assigns the head of the given forecast list to the
// cell, keeping the tail.  The tail only matters until the next
// forecast fill, which clears the forecasts of any filled cell.
func commit(b Board, c Cell) Board {
	return b.withCell(c.Coord.index(), Cell{
		Coord:     c.Coord,
		Value:     c.Forecasts[0],
		Forecasts: newIntsetCopy(c.Forecasts[1:]),
	})
}

// CommitAndRelax commits the cell to the first value of its own
// forecast list and then alternates forecast recomputation with
// confirmed resolution until two consecutive boards are
// structurally equal.  This is the unit of forward progress for
// the deterministic solving loop: one call always fills at least
// the committed cell.
func CommitAndRelax(b Board, c Cell) Board {
	cur := commit(b, c)
	for {
		next := ResolveConfirmed(FillForecasts(cur))
		if next.Equal(cur) {
			return cur
		}
		cur = next
	}
}

// CommitOnce commits the cell to the first value of a supplied
// forecast override (normally a single value, during trial
// branching) and recomputes forecasts once.  No confirmed
// resolution, no fixpoint: the result is a fresh, minimally
// propagated board for the deterministic loop to take over.
func CommitOnce(b Board, c Cell) Board {
	return FillForecasts(commit(b, c))
}
