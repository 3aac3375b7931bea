// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/tspk/dataset"
	"github.com/katalvlaran/tspk/decoder"
	"github.com/katalvlaran/tspk/internal/fileio"
)

// readFile opens path and hands it to fn.
func readFile(path string, fn func(r io.Reader) error) (err error) {
	r, err := fileio.Open(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, r.Close()) }()

	if err = fn(r); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// writeFile creates path and hands it to fn. Close errors are reported
// because they carry the compressor flush.
func writeFile(path string, fn func(w io.Writer) error) (err error) {
	w, err := fileio.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, w.Close()) }()

	if err = fn(w); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (a *app) loadDataset(path string, s shape) (*dataset.Matrix, error) {
	var data *dataset.Matrix
	err := readFile(path, func(r io.Reader) error {
		var lerr error
		data, lerr = dataset.Load(r, s.n, s.m, a.cfg.DatasetOptions()...)
		return lerr
	})
	if err != nil {
		return nil, err
	}

	a.log.Debug("dataset loaded",
		"path", path,
		"items", data.Rows(),
		"features", data.Cols(),
		"missing", data.MissingCount(),
	)
	return data, nil
}

// outputs are the optional side files of decode and cluster.
type outputs struct {
	boundaries string
	mapping    string
	summary    string
}

// writeResult writes the reordered matrix and every requested side file.
func (a *app) writeResult(ctx context.Context, path string, res *decoder.Result, data *dataset.Matrix, out outputs) error {
	err := writeFile(path, func(w io.Writer) error {
		return decoder.WriteMatrix(w, res, data, a.cfg.DatasetOptions()...)
	})
	if err != nil {
		return err
	}

	if out.boundaries != "" {
		if err = writeFile(out.boundaries, func(w io.Writer) error { return decoder.WriteBoundaries(w, res) }); err != nil {
			return err
		}
	}
	if out.mapping != "" {
		if err = writeFile(out.mapping, func(w io.Writer) error { return decoder.WriteMapping(w, res) }); err != nil {
			return err
		}
	}
	if out.summary == "" && !a.log.Enabled(ctx, slog.LevelDebug) {
		return nil
	}

	sums, err := res.Summaries(data)
	if err != nil {
		return err
	}
	for _, s := range sums {
		a.log.Debug("cluster", "index", s.Index, "size", s.Size(), "first", s.First, "last", s.Last)
	}
	if out.summary != "" {
		return writeFile(out.summary, func(w io.Writer) error { return writeSummaries(w, sums) })
	}
	return nil
}

// writeSummaries writes one tab-separated line per cluster: index, size,
// first row, last row, then the per-feature means ("NaN" when no value is
// present).
func writeSummaries(w io.Writer, sums []decoder.ClusterSummary) error {
	for _, s := range sums {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%d\t%d", s.Index, s.Size(), s.First, s.Last); err != nil {
			return err
		}
		for _, mean := range s.Means {
			if _, err := fmt.Fprintf(w, "\t%.4g", mean); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
