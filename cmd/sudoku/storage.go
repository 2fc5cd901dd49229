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
	"github.com/spf13/cobra"

	"github.com/CrazyEnimal/SudokuSolver/dbprep"
	"github.com/CrazyEnimal/SudokuSolver/storage"
)

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Manage the solution cache and attempt log",
}

var storagePrepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Create or migrate the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := dbprep.EnsureData(); err != nil {
			return err
		}
		log.Info("schema is up to date")
		return nil
	},
}

var storageClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Flush the solution cache and drop the attempt log",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := storage.Connect(); err != nil {
			return err
		}
		defer storage.Close()
		if err := storage.ClearCache(); err != nil {
			return err
		}
		if err := dbprep.RemoveData(); err != nil {
			return err
		}
		log.Info("storage cleared")
		return nil
	},
}

func init() {
	storageCmd.AddCommand(storagePrepareCmd, storageClearCmd)
	rootCmd.AddCommand(storageCmd)
}
