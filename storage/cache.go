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

package storage

import (
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/CrazyEnimal/SudokuSolver/puzzle"
)

/*

solution cache

Solved grids are cached under their givens, so a puzzle posted
twice is solved once.  A board is fully determined by its 81
characters, so the key is simply the given rows joined, behind a
namespace prefix.  Only complete solutions are cached; a
best-effort result may improve if the strategy ever changes, so
pinning it would be wrong.

*/

const (
	solutionPrefix = "solution:"
	solutionTTL    = 30 * 24 * time.Hour
)

// cacheKey builds the cache key for a set of given rows.
func cacheKey(given []string) string {
	return solutionPrefix + strings.Join(given, "")
}

// LookupSolution returns the cached solution for the given rows,
// if there is one.  Any cache trouble is treated as a miss.
func LookupSolution(given []string) (rows []string, ok bool) {
	if !Connected() {
		return nil, false
	}
	defer func() {
		if r := recover(); r != nil {
			rows, ok = nil, false
		}
	}()
	var joined string
	rdExecute(func(tx redis.Conn) error {
		var err error
		joined, err = redis.String(tx.Do("GET", cacheKey(given)))
		if err == redis.ErrNil {
			joined = ""
			return nil
		}
		return err
	})
	if len(joined) != puzzle.CellCount {
		return nil, false
	}
	rows = make([]string, puzzle.SideLength)
	for i := range rows {
		rows[i] = joined[i*puzzle.SideLength : (i+1)*puzzle.SideLength]
	}
	return rows, true
}

// SaveSolution caches a complete solution under its givens.
// Incomplete results and cache trouble are silently dropped;
// the cache is an optimization, not a system of record.
func SaveSolution(given, solution []string) {
	if !Connected() || !puzzle.Rendered(solution) {
		return
	}
	defer func() {
		recover()
	}()
	rdExecute(func(tx redis.Conn) error {
		_, err := tx.Do("SET", cacheKey(given), strings.Join(solution, ""),
			"EX", int(solutionTTL/time.Second))
		return err
	})
}

// ClearCache drops every cached solution.
func ClearCache() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			}
		}
	}()
	rdExecute(func(tx redis.Conn) error {
		_, e := tx.Do("FLUSHDB")
		return e
	})
	return nil
}

/*

solver wrapping

*/

// WrapSolver interposes the cache and the attempt log on a
// Solver.  Cache hits skip solving (and are not logged as
// attempts); misses get solved, cached when complete, and
// recorded.  With no storage connected the wrapper is a
// pass-through.
func WrapSolver(solve puzzle.Solver) puzzle.Solver {
	return func(rows []string) []string {
		if cached, ok := LookupSolution(rows); ok {
			return cached
		}
		start := time.Now()
		result := solve(rows)
		SaveSolution(rows, result)
		RecordAttempt(NewAttempt(rows, result, time.Since(start)))
		return result
	}
}
