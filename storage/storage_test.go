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
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/CrazyEnimal/SudokuSolver/puzzle"
)

var testGivenRows = []string{
	"53--7----",
	"6--195---",
	"-98----6-",
	"8---6---3",
	"4--8-3--1",
	"7---2---6",
	"-6----28-",
	"---419--5",
	"----8--79",
}

var testSolvedRows = []string{
	"534678912",
	"672195348",
	"198342567",
	"859761423",
	"426853791",
	"713924856",
	"961537284",
	"287419635",
	"345286179",
}

// requireStorage connects to the configured cache and database,
// skipping the test when the environment doesn't provide them.
func requireStorage(t *testing.T) {
	t.Helper()
	if os.Getenv("REDIS_URL") == "" || os.Getenv("DATABASE_URL") == "" {
		t.Skip("REDIS_URL and DATABASE_URL not set; skipping storage test")
	}
	if _, _, err := Connect(); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(Close)
}

func TestCacheKey(t *testing.T) {
	key := cacheKey(testGivenRows)
	if !strings.HasPrefix(key, solutionPrefix) {
		t.Errorf("cacheKey = %q, want prefix %q", key, solutionPrefix)
	}
	if len(key) != len(solutionPrefix)+puzzle.CellCount {
		t.Errorf("cacheKey length = %d, want %d",
			len(key), len(solutionPrefix)+puzzle.CellCount)
	}
}

func TestNewAttempt(t *testing.T) {
	a := NewAttempt(testGivenRows, testSolvedRows, 5*time.Millisecond)
	if a.ID == "" {
		t.Error("attempt has no ID")
	}
	if a.Given != strings.Join(testGivenRows, "") {
		t.Errorf("Given = %q", a.Given)
	}
	if !a.Solved {
		t.Error("complete result not marked solved")
	}
	if !reflect.DeepEqual(a.Rows(), testSolvedRows) {
		t.Errorf("Rows = %v, want %v", a.Rows(), testSolvedRows)
	}

	partial := NewAttempt(testGivenRows, testGivenRows, time.Millisecond)
	if partial.Solved {
		t.Error("incomplete result marked solved")
	}
}

func TestDisconnectedIsNoop(t *testing.T) {
	if Connected() {
		t.Skip("storage already connected")
	}
	if rows, ok := LookupSolution(testGivenRows); ok {
		t.Errorf("LookupSolution without storage = %v", rows)
	}
	// must not panic
	SaveSolution(testGivenRows, testSolvedRows)
	if err := RecordAttempt(NewAttempt(testGivenRows, testSolvedRows, 0)); err != nil {
		t.Errorf("RecordAttempt without storage: %v", err)
	}
	attempts, err := RecentAttempts(10)
	if err != nil || attempts != nil {
		t.Errorf("RecentAttempts without storage = %v, %v", attempts, err)
	}
}

func TestSolutionRoundTrip(t *testing.T) {
	requireStorage(t)
	if err := ClearCache(); err != nil {
		t.Fatalf("ClearCache: %v", err)
	}
	if _, ok := LookupSolution(testGivenRows); ok {
		t.Fatal("lookup hit on an empty cache")
	}
	SaveSolution(testGivenRows, testSolvedRows)
	rows, ok := LookupSolution(testGivenRows)
	if !ok {
		t.Fatal("lookup missed after save")
	}
	if !reflect.DeepEqual(rows, testSolvedRows) {
		t.Errorf("cached rows = %v, want %v", rows, testSolvedRows)
	}
}

func TestSaveSolutionSkipsIncomplete(t *testing.T) {
	requireStorage(t)
	if err := ClearCache(); err != nil {
		t.Fatalf("ClearCache: %v", err)
	}
	SaveSolution(testGivenRows, testGivenRows)
	if rows, ok := LookupSolution(testGivenRows); ok {
		t.Errorf("incomplete result cached: %v", rows)
	}
}

func TestRecordAttempt(t *testing.T) {
	requireStorage(t)
	a := NewAttempt(testGivenRows, testSolvedRows, 7*time.Millisecond)
	if err := RecordAttempt(a); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	attempts, err := RecentAttempts(10)
	if err != nil {
		t.Fatalf("RecentAttempts: %v", err)
	}
	found := false
	for _, got := range attempts {
		if got.ID == a.ID {
			found = true
			if got.Given != a.Given || got.Result != a.Result || !got.Solved {
				t.Errorf("recorded attempt differs: %+v", got)
			}
			if got.Duration != a.Duration {
				t.Errorf("Duration = %v, want %v", got.Duration, a.Duration)
			}
		}
	}
	if !found {
		t.Errorf("attempt %s not in recent attempts", a.ID)
	}
}

func TestWrapSolver(t *testing.T) {
	requireStorage(t)
	if err := ClearCache(); err != nil {
		t.Fatalf("ClearCache: %v", err)
	}
	calls := 0
	solve := WrapSolver(func(rows []string) []string {
		calls++
		return puzzle.Solve(rows)
	})
	first := solve(testGivenRows)
	second := solve(testGivenRows)
	if calls != 1 {
		t.Errorf("inner solver called %d times, want 1", calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result %v differs from solved %v", second, first)
	}
	if !reflect.DeepEqual(first, testSolvedRows) {
		t.Errorf("solved rows = %v, want %v", first, testSolvedRows)
	}
}
