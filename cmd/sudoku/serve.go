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
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/CrazyEnimal/SudokuSolver/puzzle"
	"github.com/CrazyEnimal/SudokuSolver/storage"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solve API over HTTP",
	Long: `serve starts an HTTP server with two endpoints:

  POST /api/solve  solve the submitted puzzle
  POST /api/check  validate the shape of the submitted rows

Storage is optional: without Redis and Postgres the server still
solves, it just skips caching and attempt logging.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		solve := puzzle.Solve
		cacheId, databaseId, err := storage.Connect()
		if err != nil {
			log.WithError(err).Warn("storage unavailable, solving without cache")
		} else {
			defer storage.Close()
			log.WithFields(logrus.Fields{
				"cache":    cacheId,
				"database": databaseId,
			}).Info("storage connected")
			solve = storage.WrapSolver(solve)
		}

		mux := http.NewServeMux()
		mux.HandleFunc("/api/solve", logged(puzzle.SolveHandler(solve)))
		mux.HandleFunc("/api/check", logged(puzzle.CheckHandler))

		srv := &http.Server{Addr: serveAddr, Handler: mux}
		errc := make(chan error, 1)
		go func() {
			log.WithField("addr", serveAddr).Info("listening")
			errc <- srv.ListenAndServe()
		}()

		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errc:
			return err
		case sig := <-sigc:
			log.WithField("signal", sig.String()).Info("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			if err := <-errc; err != http.ErrServerClosed {
				return err
			}
			return nil
		}
	},
}

// logged wraps a handler with per-request logging.
func logged(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		log.WithFields(logrus.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"elapsed": time.Since(start).String(),
		}).Info("request")
	}
}

func defaultAddr() string {
	if addr := os.Getenv("SUDOKU_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", defaultAddr(), "address to listen on")
	rootCmd.AddCommand(serveCmd)
}
