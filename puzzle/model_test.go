package puzzle

import (
	"reflect"
	"testing"
)

type blockOfTestcase struct {
	coord Coordinate
	block Block
}

func TestBlockOf(t *testing.T) {
	tcs := []blockOfTestcase{
		{Coordinate{1, 1}, Block{0, 0}},
		{Coordinate{3, 3}, Block{0, 0}},
		{Coordinate{4, 3}, Block{1, 0}},
		{Coordinate{9, 1}, Block{2, 0}},
		{Coordinate{1, 4}, Block{0, 1}},
		{Coordinate{5, 5}, Block{1, 1}},
		{Coordinate{7, 7}, Block{2, 2}},
		{Coordinate{9, 9}, Block{2, 2}},
	}
	for i, tc := range tcs {
		if got := BlockOf(tc.coord); got != tc.block {
			t.Errorf("TestBlockOf case %d: BlockOf(%v) = %v (expected %v)",
				i+1, tc.coord, got, tc.block)
		}
	}
}

func TestCoordinateNext(t *testing.T) {
	if got := (Coordinate{4, 2}).Next(); got != (Coordinate{5, 2}) {
		t.Errorf("TestCoordinateNext: (4,2).Next() = %v", got)
	}
	if got := (Coordinate{9, 3}).Next(); got != (Coordinate{1, 4}) {
		t.Errorf("TestCoordinateNext: (9,3).Next() = %v (expected column wrap)", got)
	}
	// walking Next from (1,1) visits all 81 cells in index order
	co := Coordinate{1, 1}
	for i := 0; i < CellCount; i++ {
		if co.index() != i {
			t.Fatalf("TestCoordinateNext: step %d reached %v with index %d", i, co, co.index())
		}
		co = co.Next()
	}
}

func TestNewBoard(t *testing.T) {
	values := make([]int, CellCount)
	values[0], values[10], values[80] = 5, 7, 9
	b := NewBoard(values)
	if got := b.Values(); !reflect.DeepEqual(got, values) {
		t.Errorf("TestNewBoard: Values() = %v", got)
	}
	if got := b.Cell(Coordinate{2, 2}); got.Value != 7 || got.Coord != (Coordinate{2, 2}) {
		t.Errorf("TestNewBoard: cell (2,2) is %+v", got)
	}
	if got := b.Cell(Coordinate{9, 9}); got.Value != 9 {
		t.Errorf("TestNewBoard: cell (9,9) is %+v", got)
	}
	if b.Solved() {
		t.Errorf("TestNewBoard: board with empty cells reported solved")
	}
}

func TestBoardEqual(t *testing.T) {
	a := FillForecasts(ParseRows(easyRows))
	b := FillForecasts(ParseRows(easyRows))
	if !a.Equal(b) {
		t.Errorf("TestBoardEqual: identical boards compare unequal")
	}
	head := NextCells(a)[0]
	if a.Equal(CommitAndRelax(a, head)) {
		t.Errorf("TestBoardEqual: board compares equal after a commit")
	}
	// forecast content participates in equality
	i := (Coordinate{3, 1}).index()
	c := b.cells[i]
	c.Forecasts = newIntsetCopy(c.Forecasts)[:1]
	if a.Equal(b.withCell(i, c)) {
		t.Errorf("TestBoardEqual: boards with different forecasts compare equal")
	}
	// but nil and empty forecast sets do not differ
	full := ParseRows(easySolutionRows)
	if !full.Equal(FillForecasts(full)) {
		t.Errorf("TestBoardEqual: nil and empty forecast sets compare unequal")
	}
}

func TestBoardImmutability(t *testing.T) {
	orig := ParseRows(easyRows)
	reference := ParseRows(easyRows)

	filled := FillForecasts(orig)
	ResolveConfirmed(filled)
	SimpleSolve(filled)
	BruteforceSolve(filled)

	if !orig.Equal(reference) {
		t.Errorf("TestBoardImmutability: parsed board changed by later operations")
	}
	if !filled.Equal(FillForecasts(reference)) {
		t.Errorf("TestBoardImmutability: forecast board changed by later operations")
	}
}

func TestIntset(t *testing.T) {
	s := newIntsetRange(9)
	if len(s) != 9 || s[0] != 1 || s[8] != 9 {
		t.Fatalf("TestIntset: newIntsetRange(9) = %v", s)
	}
	if !s.contains(5) || s.contains(0) || s.contains(10) {
		t.Errorf("TestIntset: contains misbehaves on %v", s)
	}
	c := newIntsetCopy(s)
	if !c.remove(5) || c.contains(5) || len(c) != 8 {
		t.Errorf("TestIntset: remove(5) left %v", c)
	}
	if c.remove(5) {
		t.Errorf("TestIntset: second remove(5) reported true")
	}
	if s.equal(c) || !s.equal(newIntsetRange(9)) {
		t.Errorf("TestIntset: equal misbehaves")
	}
	if !intset(nil).equal(intset{}) {
		t.Errorf("TestIntset: nil and empty sets compare unequal")
	}
}
