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
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx"

	"github.com/CrazyEnimal/SudokuSolver/puzzle"
)

/*

attempt log

Every solve that reached the engine gets one row in postgres:
what was asked, what came back, whether it was complete, and how
long the strategy took.  The log exists for looking at what the
strategy fails on; nothing reads it on the solving path.

*/

// An Attempt is one solve request and its outcome.  Given and
// Result hold the 81 grid characters, rows joined.
type Attempt struct {
	ID       string
	Given    string
	Result   string
	Solved   bool
	Duration time.Duration
	When     time.Time
}

// NewAttempt builds an attempt record from the rows that went in
// and came out.
func NewAttempt(given, result []string, d time.Duration) Attempt {
	return Attempt{
		ID:       uuid.New().String(),
		Given:    strings.Join(given, ""),
		Result:   strings.Join(result, ""),
		Solved:   puzzle.Rendered(result),
		Duration: d,
		When:     time.Now(),
	}
}

// Rows splits an 81-character grid string back into nine rows.
func (a Attempt) Rows() []string {
	rows := make([]string, puzzle.SideLength)
	for i := range rows {
		rows[i] = a.Result[i*puzzle.SideLength : (i+1)*puzzle.SideLength]
	}
	return rows
}

// RecordAttempt inserts an attempt into the log.  With no
// database connected it is a no-op; the log is advisory.
func RecordAttempt(a Attempt) (err error) {
	if !Connected() {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("Caught panic during RecordAttempt: %v", r)
			}
		}
	}()
	pgExecute(func(tx *pgx.Tx) error {
		_, e := tx.Exec(
			`insert into attempts (id, given, result, solved, duration_ms, created_at)
			 values ($1, $2, $3, $4, $5, $6)`,
			a.ID, a.Given, a.Result, a.Solved,
			a.Duration.Milliseconds(), a.When)
		return e
	})
	return
}

// RecentAttempts returns up to limit attempts, newest first.
func RecentAttempts(limit int) (attempts []Attempt, err error) {
	if !Connected() {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				attempts, err = nil, e
			} else {
				attempts, err = nil, fmt.Errorf("Caught panic during RecentAttempts: %v", r)
			}
		}
	}()
	pgExecute(func(tx *pgx.Tx) error {
		rows, e := tx.Query(
			`select id, given, result, solved, duration_ms, created_at
			 from attempts order by created_at desc limit $1`, limit)
		if e != nil {
			return e
		}
		defer rows.Close()
		for rows.Next() {
			var a Attempt
			var ms int64
			if e := rows.Scan(&a.ID, &a.Given, &a.Result, &a.Solved, &ms, &a.When); e != nil {
				return e
			}
			a.Duration = time.Duration(ms) * time.Millisecond
			attempts = append(attempts, a)
		}
		return rows.Err()
	})
	return
}
