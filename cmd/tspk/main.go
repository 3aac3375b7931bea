// SPDX-License-Identifier: MIT

// Command tspk clusters the rows of a data matrix by solving a TSP over their
// correlation distances.
//
//	tspk encode  <input> <output> <K> <n> <m>
//	tspk solve   <tsp-file> <tour-output>
//	tspk decode  <tour> <input> <output> <K> <n> <m>
//	tspk cluster <input> <output> <K> <n> <m>
//
// encode writes a TSPLIB instance for an external solver such as Concorde or
// LKH; decode turns the solver's tour back into a reordered matrix. solve and
// cluster use the built-in heuristic instead.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(os.Stderr)
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		a.log.Error("tspk failed", slog.Any("err", err))
		stop()
		os.Exit(1)
	}
}
