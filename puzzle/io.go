// SudokuSolver - a constraint-propagation Sudoku solving service.
// Copyright (C) 2026 the SudokuSolver authors.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

package puzzle

import (
	"strings"
)

/*

Text rows

The external form of a board is nine strings of nine characters,
'1'..'9' for filled cells and '-' for empty ones.  Row position
gives the row index, character position the column index, both
1-based.  Parsing and rendering are thin conversions; ParseRows
assumes its input has already passed CheckRows (or is otherwise
known to be well formed).

*/

// Placeholder is the character marking an empty cell in text
// rows.
const Placeholder = '-'

// ParseRows builds a board from nine text rows.  Behavior on
// malformed rows is undefined; use CheckRows first at trust
// boundaries.
func ParseRows(rows []string) Board {
	cells := make([]Cell, 0, CellCount)
	co := Coordinate{1, 1}
	for _, row := range rows {
		for _, ch := range row {
			v := 0
			if ch != Placeholder {
				v = int(ch - '0')
			}
			cells = append(cells, Cell{Coord: co, Value: v})
			co = co.Next()
		}
	}
	return Board{cells}
}

// RenderRows renders a board back into nine text rows, with '-'
// for cells still open.
func RenderRows(b Board) []string {
	rows := make([]string, SideLength)
	var sb strings.Builder
	for r := 0; r < SideLength; r++ {
		sb.Reset()
		for c := 0; c < SideLength; c++ {
			cell := b.cells[r*SideLength+c]
			if cell.empty() {
				sb.WriteByte(Placeholder)
			} else {
				sb.WriteByte(byte('0' + cell.Value))
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

/*

Pretty-printed boards, for terminals and debugging.

*/

// String gives a grid view of the board with block separators.
// Open cells show '_'.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < SideLength; r++ {
		if r%blockSide == 0 {
			sb.WriteString("+-------+-------+-------+\n")
		}
		for c := 0; c < SideLength; c++ {
			if c%blockSide == 0 {
				sb.WriteString("| ")
			}
			cell := b.cells[r*SideLength+c]
			if cell.empty() {
				sb.WriteString("_ ")
			} else {
				sb.WriteByte(byte('0' + cell.Value))
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+-------+-------+-------+\n")
	return sb.String()
}
