// Package puzzle solves standard 9x9 Sudoku grids given as nine
// text rows, with '-' marking an empty cell.
//
// Boards in this package are persistent values: every operation
// returns a new Board and never touches the one it was given.
// Each empty cell carries a forecast set, the values not yet
// excluded for it by its row, column, and block.  The solver
// layers a deterministic propagate-and-commit loop over the
// forecasts, with a single-level trial fallback for boards the
// loop cannot finish.  The strategy is deliberately best-effort:
// a logically valid puzzle it cannot crack comes back partially
// filled rather than as an error.
//
// Input is assumed to be well formed and legal.  The engine does
// no validation of its own; CheckRows is offered as a separate
// boundary check for callers that want one.
package puzzle

/*

Coordinates and blocks

*/

const (
	// SideLength is the number of cells per row, column, and block.
	SideLength = 9
	// CellCount is the number of cells in a board.
	CellCount = SideLength * SideLength
	blockSide = 3
)

// A Coordinate names a cell position by column and row, each in
// 1..9.  Coordinates are compared structurally.
type Coordinate struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// A Block identifies one of the nine 3x3 sub-grids.  Blocks are
// always derived from coordinates, never stored.
type Block struct {
	X int
	Y int
}

// BlockOf returns the block containing the given coordinate.
// Two cells share a block exactly when their BlockOf results are
// equal.
func BlockOf(c Coordinate) Block {
	return Block{(c.Col - 1) / blockSide, (c.Row - 1) / blockSide}
}

// Next returns the row-major successor of a coordinate: the
// column advances first, wrapping 9 -> 1 onto the next row.  The
// successor of the last cell is not meaningful; Next is only
// used while walking the grid during construction.
func (c Coordinate) Next() Coordinate {
	if c.Col == SideLength {
		return Coordinate{1, c.Row + 1}
	}
	return Coordinate{c.Col + 1, c.Row}
}

// index returns the position of a coordinate in the row-major
// cell sequence.
func (c Coordinate) index() int {
	return (c.Row-1)*SideLength + (c.Col - 1)
}

/*

Cells

*/

// A Cell couples a coordinate with an assigned value (0 when
// empty) and, while empty, its forecast set.  A filled cell
// always carries an empty forecast set.  Cells are plain values;
// nothing in this package modifies a cell in place.
type Cell struct {
	Coord     Coordinate
	Value     int
	Forecasts intset
}

// empty reports whether the cell has no assigned value.
func (c Cell) empty() bool {
	return c.Value == 0
}

// equal compares value and forecast content; the coordinate is
// fixed by a cell's position in the board, so it doesn't
// participate.
func (c Cell) equal(o Cell) bool {
	return c.Value == o.Value && c.Forecasts.equal(o.Forecasts)
}

/*

Boards

*/

// A Board is the full grid: exactly 81 cells in row-major order
// (rows 1..9, columns 1..9 within each row).  Boards are
// immutable, so a board held across later operations is never
// invalidated by them; the trial search in this package depends
// on being able to restart from the same starting board without
// any undo bookkeeping.
type Board struct {
	cells []Cell
}

// NewBoard builds a board from 81 values in row-major order,
// with 0 meaning an empty cell.  The new board's empty cells
// have no forecasts yet; see FillForecasts.
func NewBoard(values []int) Board {
	cells := make([]Cell, CellCount)
	co := Coordinate{1, 1}
	for i, v := range values {
		cells[i] = Cell{Coord: co, Value: v}
		co = co.Next()
	}
	return Board{cells}
}

// Cell returns the cell at the given coordinate.
func (b Board) Cell(c Coordinate) Cell {
	return b.cells[c.index()]
}

// Values returns the assigned values of all cells in row-major
// order.  The result shares no storage with the board.
func (b Board) Values() []int {
	vs := make([]int, len(b.cells))
	for i, c := range b.cells {
		vs[i] = c.Value
	}
	return vs
}

// Solved reports whether every cell has an assigned value.
func (b Board) Solved() bool {
	for _, c := range b.cells {
		if c.empty() {
			return false
		}
	}
	return true
}

// Equal compares two boards cell by cell, on values and forecast
// content.
func (b Board) Equal(o Board) bool {
	if len(b.cells) != len(o.cells) {
		return false
	}
	for i := range b.cells {
		if !b.cells[i].equal(o.cells[i]) {
			return false
		}
	}
	return true
}

// withCell returns a copy of the board with one cell replaced.
func (b Board) withCell(i int, c Cell) Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	cells[i] = c
	return Board{cells}
}

/*

Integer sets

*/

// An intset is a set of small integers kept as a sorted slice.
// Forecast sets are intsets.
type intset []int

// newIntsetRange makes an intset holding 1..max.
func newIntsetRange(max int) intset {
	if max < 1 {
		return intset{}
	}
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// newIntsetCopy makes a copy of an intset.
func newIntsetCopy(in intset) intset {
	if in == nil {
		return nil
	}
	out := make(intset, len(in))
	copy(out, in)
	return out
}

// contains reports whether v is in the set.
func (ps intset) contains(v int) bool {
	for _, pv := range ps {
		if pv == v {
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}

// remove takes v out of the set, reporting whether it was there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}

// equal compares set contents; nil and empty are the same set.
func (ps intset) equal(o intset) bool {
	if len(ps) != len(o) {
		return false
	}
	for i := range ps {
		if ps[i] != o[i] {
			return false
		}
	}
	return true
}
