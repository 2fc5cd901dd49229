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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CrazyEnimal/SudokuSolver/puzzle"
)

var solvePretty bool

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a puzzle read from a file or stdin",
	Long: `solve reads a puzzle as nine lines of nine characters, from the
given file or from stdin, and prints the solved rows. Blank lines
and lines starting with '#' are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := io.Reader(os.Stdin)
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		rows, err := readRows(in)
		if err != nil {
			return err
		}
		if err := puzzle.CheckRows(rows); err != nil {
			return err
		}
		solved := puzzle.Solve(rows)
		if solvePretty {
			fmt.Println(puzzle.ParseRows(solved).String())
		} else {
			fmt.Println(strings.Join(solved, "\n"))
		}
		if !puzzle.Rendered(solved) {
			log.Warn("puzzle not fully solved")
		}
		return nil
	},
}

// readRows collects the non-blank, non-comment lines of the input.
func readRows(in io.Reader) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func init() {
	solveCmd.Flags().BoolVarP(&solvePretty, "pretty", "p", false, "print the result as a grid")
	rootCmd.AddCommand(solveCmd)
}
