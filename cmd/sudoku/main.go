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

// Command sudoku is the command-line surface of the solver: it
// solves puzzles from files or stdin, serves the solve API over
// HTTP, and manages the backing storage.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve standard 9x9 Sudoku puzzles",
	Long: `sudoku solves standard 9x9 Sudoku puzzles given as nine rows of
nine characters, '1'..'9' for givens and '-' for empty cells.

Solving is best-effort: a puzzle the strategy cannot finish is
printed with its open cells still marked '-', not reported as an
error.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
