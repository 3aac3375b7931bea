// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspk/internal/config"
)

// app is the state shared by all subcommands.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string

	cfg    config.Config
	log    *slog.Logger
	stderr io.Writer
}

func newApp(stderr io.Writer) *app {
	return &app{
		cfg:    config.Default(),
		log:    slog.New(slog.NewTextHandler(stderr, nil)),
		stderr: stderr,
	}
}

// newRootCmd builds the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tspk",
		Short: "Cluster data rows through a travelling salesman tour",
		Long: `tspk converts a data matrix into a TSP instance whose distances are
derived from Pearson correlation, with K dummy nodes that split the optimal
tour into K clusters, and decodes solver tours back into a reordered matrix.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	cmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newSolveCmd(a),
		newClusterCmd(a),
	)

	return cmd
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = newLogger(a.stderr, cfg.Log)

	return nil
}

func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	var level slog.Level
	_ = level.UnmarshalText([]byte(strings.ToUpper(lc.Level)))

	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// shape holds the positional <K> <n> <m> arguments.
type shape struct {
	k, n, m int
}

// parseShape reads K, n and m from args; each must be a positive integer.
func parseShape(args []string) (shape, error) {
	var vals [3]int
	for i, name := range []string{"K", "n", "m"} {
		v, err := strconv.Atoi(args[i])
		if err != nil || v < 1 {
			return shape{}, fmt.Errorf("%s must be a positive integer, got %q", name, args[i])
		}
		vals[i] = v
	}

	return shape{k: vals[0], n: vals[1], m: vals[2]}, nil
}
