// Package textinput reads the plain-text site format the §6 external
// interface describes: a reader collaborator, not part of the
// construction core, kept here only so cmd/vorocli has a file format to
// read sites from.
//
//	<n_points>
//	x y            (repeated n_points times)
//	<n_segments>
//	x1 y1 x2 y2    (repeated n_segments times)
//
// All coordinates are signed 32-bit integers in decimal.
package textinput

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Sites holds the points and segments read from a text-format input.
type Sites struct {
	Points   [][2]int64
	Segments [][4]int64
}

// Read parses r in the §6 text format, returning the points and segments
// it declares. It validates only the format itself (counts, field count,
// integer range); the caller (the Builder) is responsible for
// AddPoint/AddSegment's own validation, such as rejecting zero-length
// segments.
func Read(r io.Reader) (Sites, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	nPoints, err := readCount(sc, "point count")
	if err != nil {
		return Sites{}, err
	}
	points := make([][2]int64, 0, nPoints)
	for i := 0; i < nPoints; i++ {
		vals, err := readInts(sc, 2)
		if err != nil {
			return Sites{}, fmt.Errorf("point %d: %w", i, err)
		}
		points = append(points, [2]int64{vals[0], vals[1]})
	}

	nSegments, err := readCount(sc, "segment count")
	if err != nil {
		return Sites{}, err
	}
	segments := make([][4]int64, 0, nSegments)
	for i := 0; i < nSegments; i++ {
		vals, err := readInts(sc, 4)
		if err != nil {
			return Sites{}, fmt.Errorf("segment %d: %w", i, err)
		}
		segments = append(segments, [4]int64{vals[0], vals[1], vals[2], vals[3]})
	}

	return Sites{Points: points, Segments: segments}, nil
}

func readCount(sc *bufio.Scanner, label string) (int, error) {
	vals, err := readInts(sc, 1)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", label, err)
	}
	if vals[0] < 0 {
		return 0, fmt.Errorf("%s: negative count %d", label, vals[0])
	}
	return int(vals[0]), nil
}

// readInts reads the next non-empty line and parses exactly n signed
// 32-bit decimal integers from it.
func readInts(sc *bufio.Scanner, n int) ([]int64, error) {
	line, ok := nextNonEmptyLine(sc)
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	vals := make([]int64, 0, n)
	var field []rune
	flush := func() error {
		if len(field) == 0 {
			return nil
		}
		v, err := strconv.ParseInt(string(field), 10, 64)
		if err != nil {
			return fmt.Errorf("malformed integer %q: %w", string(field), err)
		}
		if v < math.MinInt32 || v > math.MaxInt32 {
			return fmt.Errorf("coordinate %d out of signed 32-bit range", v)
		}
		vals = append(vals, v)
		field = field[:0]
		return nil
	}
	for _, r := range line {
		if r == ' ' || r == '\t' {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		field = append(field, r)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(vals) != n {
		return nil, fmt.Errorf("expected %d fields, got %d in line %q", n, len(vals), line)
	}
	return vals, nil
}

func nextNonEmptyLine(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := sc.Text()
		if len(line) == 0 {
			continue
		}
		return line, true
	}
	return "", false
}
