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
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

/*

HTTP wrappers

The handlers wrap the facade for web callers.  They do boundary
validation with CheckRows, solve through an injected Solver, and
reply in JSON.  As with the facade, an unsolvable-by-strategy
puzzle is not an error: the reply carries whatever was
determined, with solved set to false.

*/

// A SolveRequest is the posted body for both solving and
// checking: the nine text rows of the puzzle.
type SolveRequest struct {
	Rows []string `json:"rows"`
}

// A SolveResponse reports the outcome of a solve: the resulting
// rows and whether they form a complete grid.
type SolveResponse struct {
	Solved bool     `json:"solved"`
	Rows   []string `json:"rows"`
}

// A CheckResponse reports the outcome of a shape check.
type CheckResponse struct {
	Valid bool `json:"valid"`
}

// SolveHandler returns a POST handler that reads a SolveRequest,
// validates the rows, runs them through the given Solver, and
// replies with a SolveResponse.  Malformed bodies and rows get a
// 400 with the structured Error as body.
func SolveHandler(solve Solver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := readRequest(w, r)
		if err != nil {
			return
		}
		result := solve(req.Rows)
		writeJSON(w, http.StatusOK, SolveResponse{
			Solved: Rendered(result),
			Rows:   result,
		})
	}
}

// CheckHandler is a POST handler that validates rows without
// solving them.  Shape errors come back as a 400 with the
// structured Error; well-shaped rows get a CheckResponse.
func CheckHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := readRequest(w, r); err != nil {
		return
	}
	writeJSON(w, http.StatusOK, CheckResponse{Valid: true})
}

// Rendered reports whether rendered rows form a complete grid,
// that is, contain no placeholder.
func Rendered(rows []string) bool {
	for _, row := range rows {
		if strings.ContainsRune(row, Placeholder) {
			return false
		}
	}
	return true
}

// readRequest decodes and validates the posted rows.  On any
// failure the client has already received a 400 response and the
// error is returned to the golang caller.
func readRequest(w http.ResponseWriter, r *http.Request) (SolveRequest, error) {
	var req SolveRequest
	if e := json.NewDecoder(r.Body).Decode(&req); e != nil {
		err := Error{
			Scope:     RequestScope,
			Condition: DecodeCondition,
			Values:    ErrorData{e.Error()},
		}
		return req, writeError(w, err)
	}
	if e := CheckRows(req.Rows); e != nil {
		err, ok := e.(Error)
		if !ok {
			err = Error{Scope: RowsScope, Message: e.Error()}
		}
		return req, writeError(w, err)
	}
	return req, nil
}

// writeError sends a structured Error as a 400 response and
// returns it for the golang caller.
func writeError(w http.ResponseWriter, err Error) error {
	err.Message = err.Error() // verbalize for the client
	writeJSON(w, http.StatusBadRequest, err)
	return err
}

// writeJSON sends any value as a JSON response with the given
// status.  Encoding failures shouldn't happen for the types this
// package sends; if one does, the client connection gets the
// half-written body and the failure is reported on the response
// trailer side only.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if e := json.NewEncoder(w).Encode(v); e != nil {
		fmt.Fprintf(w, "%q", e.Error())
	}
}
