package puzzle

import (
	"sort"
)

/*

Two-tier solving strategy

Tier 1 is a deterministic propagate-and-commit loop: pick the
most constrained open cell, commit its first forecast, relax the
board, repeat.  Every round fills at least the committed cell, so
the loop ends within 81 rounds.  When the most constrained cell
still has several forecasts there is no forced move anywhere on
the board; the commit is then an unverified guess, and the loop
may end on a stuck board instead of a solved one.

Tier 2 runs only if tier 1 came back unsolved.  It retries from
the original board, one guess at a time: for each open cell in
most-constrained-first order, for each of its forecast values in
list order, build a trial board with that single value committed
and let tier 1 finish it.  The first solved trial wins.  There is
no second level of guessing inside a trial, so this is a bounded
heuristic rather than a complete backtracking search; if no trial
solves, the original board is returned unchanged.

*/

// NextCells returns the cells that still carry forecasts,
// ordered by ascending forecast count; ties keep reading order.
// The head is the most constrained actionable cell.  An empty
// result means every cell is filled, or the board is stuck with
// open cells that have no forecasts left.
func NextCells(b Board) []Cell {
	var out []Cell
	for _, c := range b.cells {
		if len(c.Forecasts) > 0 {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Forecasts) < len(out[j].Forecasts)
	})
	return out
}

// SimpleSolve runs the tier 1 loop until no actionable cell
// remains and returns the final board, solved or stuck.
func SimpleSolve(b Board) Board {
	for {
		next := NextCells(b)
		if len(next) == 0 {
			return b
		}
		b = CommitAndRelax(b, next[0])
	}
}

// BruteforceSolve runs the tier 2 trial search over the given
// board and returns the first solved trial, in cell-priority
// then forecast-list order.  If no single guess lets tier 1
// finish, the incoming board is returned as is.
func BruteforceSolve(b Board) Board {
	for _, c := range NextCells(b) {
		for _, v := range c.Forecasts {
			trial := CommitOnce(b, Cell{Coord: c.Coord, Forecasts: intset{v}})
			if result := SimpleSolve(trial); result.Solved() {
				return result
			}
		}
	}
	return b
}

/*

Facade

*/

// A Solver maps nine given rows to nine result rows.  Solve is
// the canonical Solver; callers may wrap it (for example with a
// cache) and hand the wrapper to the HTTP handlers.
type Solver func(rows []string) []string

// Solve parses the given rows, solves as far as the two-tier
// strategy can, and renders the result.  Logically valid input
// never produces an error: a puzzle the strategy cannot finish
// renders best-effort, with '-' in the cells still open.  If
// even tier 2 finds nothing, the rendering is of the original
// board, not of any half-guessed intermediate.
func Solve(rows []string) []string {
	return RenderRows(ManualSolve(rows))
}

// ManualSolve is Solve without the final rendering, for callers
// that want to inspect the resulting board.
func ManualSolve(rows []string) Board {
	b := FillForecasts(ParseRows(rows))
	result := SimpleSolve(b)
	if !result.Solved() {
		result = BruteforceSolve(b)
	}
	return result
}
