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
	"fmt"
)

/*

Errors

The solving engine itself never produces errors: a puzzle it
cannot finish is returned best-effort.  Errors exist only at the
trust boundary, where text rows arrive from users or the wire.
They are structured so clients can act on the condition without
parsing English.

*/

// An Error describes a problem with incoming rows or a request.
// It renders an English message but keeps the condition and
// offending values separately for clients.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Condition ErrorCondition `json:"condition"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"`
}

// An ErrorScope says what kind of thing the error refers to.
type ErrorScope int

// Constants for the error scopes.
const (
	UnknownScope ErrorScope = iota
	RequestScope
	RowsScope
	MaxScope
)

// An ErrorCondition is the predicate the scope failed to meet.
type ErrorCondition int

// Constants for the error conditions.
const (
	UnknownCondition ErrorCondition = iota
	DecodeCondition
	RowCountCondition
	RowLengthCondition
	BadCharacterCondition
	MaxCondition
)

// ErrorData carries the values that explain the condition.
type ErrorData []interface{}

// Error renders the English form of the error.
func (e Error) Error() string {
	switch e.Condition {
	case DecodeCondition:
		return fmt.Sprintf("Request body could not be decoded: %v", e.Values...)
	case RowCountCondition:
		return fmt.Sprintf("Expected %v rows, got %v", e.Values...)
	case RowLengthCondition:
		return fmt.Sprintf("Row %v has %v characters, expected %v", e.Values...)
	case BadCharacterCondition:
		return fmt.Sprintf("Row %v column %v holds %q, expected '1'..'9' or '-'", e.Values...)
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Unknown error (scope %d, condition %d): %v", e.Scope, e.Condition, e.Values)
}

/*

Boundary validation

*/

// CheckRows verifies that rows are nine strings of nine
// characters drawn from '1'..'9' and '-'.  The engine itself
// never validates, and feeding it rows that fail CheckRows is
// undefined behavior, so every trust boundary must call this
// first.  CheckRows does not judge solvability or Sudoku
// legality, only shape.
func CheckRows(rows []string) error {
	if len(rows) != SideLength {
		return Error{
			Scope:     RowsScope,
			Condition: RowCountCondition,
			Values:    ErrorData{SideLength, len(rows)},
		}
	}
	for ri, row := range rows {
		if len(row) != SideLength {
			return Error{
				Scope:     RowsScope,
				Condition: RowLengthCondition,
				Values:    ErrorData{ri + 1, len(row), SideLength},
			}
		}
		for ci := 0; ci < len(row); ci++ {
			ch := row[ci]
			if ch != Placeholder && (ch < '1' || ch > '9') {
				return Error{
					Scope:     RowsScope,
					Condition: BadCharacterCondition,
					Values:    ErrorData{ri + 1, ci + 1, string(ch)},
				}
			}
		}
	}
	return nil
}
