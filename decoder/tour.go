// SPDX-License-Identifier: MIT

// Package decoder - tour loading, numbering base and validation.
package decoder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Base is the numbering convention of node indices in a tour file.
// It is resolved once at the boundary (ReadTour/WriteTour); a Tour in memory
// is always 0-based.
type Base int

const (
	// ZeroBased tours number nodes 0..n+K-1 (Concorde's convention).
	ZeroBased Base = 0

	// OneBased tours number nodes 1..n+K (TSPLIB TOUR_SECTION convention).
	OneBased Base = 1
)

// String implements fmt.Stringer.
func (b Base) String() string {
	switch b {
	case ZeroBased:
		return "zero-based"
	case OneBased:
		return "one-based"
	default:
		return fmt.Sprintf("Base(%d)", int(b))
	}
}

func (b Base) valid() error {
	if b != ZeroBased && b != OneBased {
		return fmt.Errorf("%w: %d", ErrBase, int(b))
	}
	return nil
}

// Tour is a 0-based cyclic sequence of node indices.
type Tour []int

// Validate checks that t is a permutation of {0..dim-1}.
//
// Errors: *TourError wrapping ErrTourLength, ErrTourIndex or ErrTourDuplicate.
// Complexity: O(dim) time and space.
func (t Tour) Validate(dim int) error {
	if len(t) != dim {
		return &TourError{Pos: -1, Err: fmt.Errorf("%w: got %d nodes, want %d", ErrTourLength, len(t), dim)}
	}

	seen := make([]bool, dim)
	for pos, v := range t {
		if v < 0 || v >= dim {
			return &TourError{Pos: pos, Value: v, Err: ErrTourIndex}
		}
		if seen[v] {
			return &TourError{Pos: pos, Value: v, Err: ErrTourDuplicate}
		}
		seen[v] = true
	}

	return nil
}

// ReadTour parses a tour file: the node count (which must equal dim) followed
// by dim node indices in the given base. Entries are converted to 0-based and
// validated as a permutation of {0..dim-1}.
//
// Errors: ErrBase, *TourError (ErrTourLength, ErrTourParse, ErrTourIndex,
// ErrTourDuplicate; Value reports the entry as written), read errors.
// Complexity: O(dim).
func ReadTour(r io.Reader, dim int, base Base) (Tour, error) {
	if err := base.valid(); err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	sc.Split(bufio.ScanWords)

	next := func(pos int) (int, bool, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, false, fmt.Errorf("decoder: read tour: %w", err)
			}
			return 0, false, nil
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, false, &TourError{Pos: pos, Err: fmt.Errorf("%w: %q", ErrTourParse, sc.Text())}
		}
		return v, true, nil
	}

	count, ok, err := next(-1)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &TourError{Pos: -1, Err: fmt.Errorf("%w: empty tour", ErrTourLength)}
	}
	if count != dim {
		return nil, &TourError{Pos: -1, Err: fmt.Errorf("%w: header says %d nodes, want %d", ErrTourLength, count, dim)}
	}

	tour := make(Tour, dim)
	seen := make([]bool, dim)
	for pos := 0; pos < dim; pos++ {
		raw, ok, err := next(pos)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &TourError{Pos: -1, Err: fmt.Errorf("%w: got %d nodes, want %d", ErrTourLength, pos, dim)}
		}
		v := raw - int(base)
		if v < 0 || v >= dim {
			return nil, &TourError{Pos: pos, Value: raw, Err: fmt.Errorf("%w: %s tour", ErrTourIndex, base)}
		}
		if seen[v] {
			return nil, &TourError{Pos: pos, Value: raw, Err: ErrTourDuplicate}
		}
		seen[v] = true
		tour[pos] = v
	}

	if sc.Scan() {
		return nil, &TourError{Pos: -1, Err: fmt.Errorf("%w: trailing token %q", ErrTourLength, sc.Text())}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("decoder: read tour: %w", err)
	}

	return tour, nil
}

// WriteTour writes t in the tour file format: the node count on the first
// line, then the indices in the given base, ten per line.
func WriteTour(w io.Writer, t Tour, base Base) error {
	if err := base.valid(); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(t)))
	sb.WriteByte('\n')
	for i, v := range t {
		if i > 0 {
			if i%10 == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(strconv.Itoa(v + int(base)))
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("decoder: write tour: %w", err)
	}

	return nil
}
