// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspk/decoder"
	"github.com/katalvlaran/tspk/encoder"
	"github.com/katalvlaran/tspk/matrix"
	"github.com/katalvlaran/tspk/tsp"
)

func newEncodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <input> <output> <K> <n> <m>",
		Short: "Write the correlation distances of n×m data as a TSPLIB instance with K dummies",
		Long: `Write a symmetric EXPLICIT/UPPER_ROW TSPLIB instance of dimension n+K.
Distances between items are round(5000 - 5000·r), r being the Pearson
correlation over the features both items have; dummies are at distance 0
from every node.

Examples:
  tspk encode data.csv data.tsp 4 2467 79
  tspk encode data.csv.gz data.tsp.zst 4 2467 79`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseShape(args[2:])
			if err != nil {
				return err
			}
			data, err := a.loadDataset(args[0], s)
			if err != nil {
				return err
			}
			enc, err := encoder.New(a.cfg.EncoderOptions(s.k)...)
			if err != nil {
				return err
			}

			start := time.Now()
			err = writeFile(args[1], func(w io.Writer) error {
				return enc.WriteTo(cmd.Context(), w, data)
			})
			if err != nil {
				return err
			}

			a.log.Info("encoded",
				"output", args[1],
				"dimension", enc.Dimension(data),
				"clusters", s.k,
				"elapsed", time.Since(start),
			)
			return nil
		},
	}

	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	var (
		oneBased bool
		out      outputs
	)

	cmd := &cobra.Command{
		Use:   "decode <tour> <input> <output> <K> <n> <m>",
		Short: "Reorder the data rows along a solver tour and split them into K clusters",
		Long: `Read a tour over n+K nodes (node count first, then the nodes), rotate it
to start after the first dummy and write the data rows in tour order.

Examples:
  tspk decode data.tour data.csv data.reordered 4 2467 79
  tspk decode --one-based --boundaries data.bnd data.tour data.csv out.csv 4 2467 79`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseShape(args[3:])
			if err != nil {
				return err
			}
			base := a.cfg.TourBase()
			if cmd.Flags().Changed("one-based") {
				base = baseOf(oneBased)
			}

			var tour decoder.Tour
			err = readFile(args[0], func(r io.Reader) error {
				var terr error
				tour, terr = decoder.ReadTour(r, s.n+s.k, base)
				return terr
			})
			if err != nil {
				return err
			}
			data, err := a.loadDataset(args[1], s)
			if err != nil {
				return err
			}

			res, err := decoder.DecodeDataset(tour, data, s.k)
			if err != nil {
				return err
			}
			if err = a.writeResult(cmd.Context(), args[2], res, data, out); err != nil {
				return err
			}

			a.log.Info("decoded", "output", args[2], "first_dummy", res.FirstDummy(), "boundaries", res.Boundaries())
			return nil
		},
	}

	cmd.Flags().BoolVar(&oneBased, "one-based", false, "tour nodes are numbered from 1")
	addOutputFlags(cmd, &out)

	return cmd
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		oneBased bool
		tuning   solverFlags
	)

	cmd := &cobra.Command{
		Use:   "solve <tsp-file> <tour-output>",
		Short: "Solve an EXPLICIT/UPPER_ROW TSPLIB instance with the built-in heuristic",
		Long: `Solve a TSPLIB instance (as written by encode) with nearest neighbour
construction and 2-opt, and write the tour in the format decode reads.

Examples:
  tspk solve data.tsp data.tour
  tspk solve --restarts 16 --solver-workers 4 data.tsp.zst data.tour`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := a.cfg.TourBase()
			if cmd.Flags().Changed("one-based") {
				base = baseOf(oneBased)
			}

			var (
				h   encoder.Header
				u   *matrix.Upper
				err error
			)
			err = readFile(args[0], func(r io.Reader) error {
				var rerr error
				h, u, rerr = encoder.ReadUpperRow(r)
				return rerr
			})
			if err != nil {
				return err
			}
			a.log.Debug("instance loaded", "name", h.Name, "dimension", h.Dimension)

			start := time.Now()
			res, err := tsp.Solve(cmd.Context(), u, tuning.apply(cmd, a.cfg.SolverOptions()))
			if err != nil {
				return err
			}
			a.log.Info("solved", "cost", res.Cost, "restart", res.Restart, "elapsed", time.Since(start))

			return writeFile(args[1], func(w io.Writer) error {
				return decoder.WriteTour(w, decoder.Tour(res.Tour), base)
			})
		},
	}

	cmd.Flags().BoolVar(&oneBased, "one-based", false, "write tour nodes numbered from 1")
	tuning.register(cmd)

	return cmd
}

func newClusterCmd(a *app) *cobra.Command {
	var (
		out      outputs
		tuning   solverFlags
		tspPath  string
		tourPath string
	)

	cmd := &cobra.Command{
		Use:   "cluster <input> <output> <K> <n> <m>",
		Short: "Encode, solve with the built-in heuristic and decode in one step",
		Long: `Run the whole pipeline in memory: correlation distances with K dummies,
a heuristic tour, and the reordered data.

Examples:
  tspk cluster data.csv out.csv 4 2467 79
  tspk cluster --boundaries out.bnd --summary out.tsv data.csv out.csv 4 2467 79`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := parseShape(args[2:])
			if err != nil {
				return err
			}
			data, err := a.loadDataset(args[0], s)
			if err != nil {
				return err
			}
			enc, err := encoder.New(a.cfg.EncoderOptions(s.k)...)
			if err != nil {
				return err
			}

			start := time.Now()
			dist, err := enc.Encode(ctx, data)
			if err != nil {
				return err
			}
			a.log.Debug("encoded", "dimension", dist.Rows(), "elapsed", time.Since(start))

			if tspPath != "" {
				err = writeFile(tspPath, func(w io.Writer) error {
					return encoder.WriteUpper(w, enc.Header(data), dist)
				})
				if err != nil {
					return err
				}
			}

			start = time.Now()
			sol, err := tsp.Solve(ctx, dist, tuning.apply(cmd, a.cfg.SolverOptions()))
			if err != nil {
				return err
			}
			a.log.Info("solved", "cost", sol.Cost, "restart", sol.Restart, "elapsed", time.Since(start))

			tour := decoder.Tour(sol.Tour)
			if tourPath != "" {
				err = writeFile(tourPath, func(w io.Writer) error {
					return decoder.WriteTour(w, tour, a.cfg.TourBase())
				})
				if err != nil {
					return err
				}
			}

			res, err := decoder.DecodeDataset(tour, data, s.k)
			if err != nil {
				return err
			}
			if err = a.writeResult(ctx, args[1], res, data, out); err != nil {
				return err
			}

			a.log.Info("clustered", "output", args[1], "boundaries", res.Boundaries())
			return nil
		},
	}

	addOutputFlags(cmd, &out)
	tuning.register(cmd)
	cmd.Flags().StringVar(&tspPath, "tsp", "", "also write the TSPLIB instance to this path")
	cmd.Flags().StringVar(&tourPath, "tour", "", "also write the solver tour to this path")

	return cmd
}

func addOutputFlags(cmd *cobra.Command, out *outputs) {
	cmd.Flags().StringVar(&out.boundaries, "boundaries", "", "write the K cluster boundaries to this path")
	cmd.Flags().StringVar(&out.mapping, "mapping", "", "write each item's output row to this path")
	cmd.Flags().StringVar(&out.summary, "summary", "", "write per-cluster sizes and feature means to this path")
}

// solverFlags override the solver section of the configuration.
type solverFlags struct {
	restarts int
	workers  int
	seed     int64
	limit    time.Duration
}

func (f *solverFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.restarts, "restarts", 1, "independent solver restarts")
	cmd.Flags().IntVar(&f.workers, "solver-workers", 1, "restarts run concurrently")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed of the restart start vertices")
	cmd.Flags().DurationVar(&f.limit, "time-limit", 0, "soft 2-opt budget per restart (0 = none)")
}

func (f *solverFlags) apply(cmd *cobra.Command, o tsp.Options) tsp.Options {
	flags := cmd.Flags()
	if flags.Changed("restarts") {
		o.Restarts = f.restarts
	}
	if flags.Changed("solver-workers") {
		o.Workers = f.workers
	}
	if flags.Changed("seed") {
		o.Seed = f.seed
	}
	if flags.Changed("time-limit") {
		o.TimeLimit = f.limit
	}
	return o
}

func baseOf(oneBased bool) decoder.Base {
	if oneBased {
		return decoder.OneBased
	}
	return decoder.ZeroBased
}
