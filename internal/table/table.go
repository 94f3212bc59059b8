// Package table reads numeric column tables from CSV text.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Errors returned by [Read].
var (
	ErrNoData     = errors.New("table: no numeric rows")
	ErrBadRow     = errors.New("table: malformed row")
	ErrBadColumns = errors.New("table: invalid column selection")
)

// Options controls CSV parsing.
type Options struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// Columns selects the zero-based columns to return, in order.
	Columns []int
}

// Read parses r and returns one slice per selected column.
//
// Blank lines and lines starting with '#' are skipped. Rows before the first
// fully numeric row are treated as headers; a non-numeric row after data has
// started is an error.
func Read(r io.Reader, opts Options) ([][]float64, error) {
	if len(opts.Columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrBadColumns)
	}
	for _, c := range opts.Columns {
		if c < 0 {
			return nil, fmt.Errorf("%w: column %d", ErrBadColumns, c)
		}
	}

	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	out := make([][]float64, len(opts.Columns))
	started := false
	line := 0

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadRow, err)
		}
		line++

		if isBlank(rec) {
			continue
		}

		row, err := parseRow(rec, opts.Columns)
		if err != nil {
			if !started {
				continue
			}
			return nil, fmt.Errorf("%w: record %d: %w", ErrBadRow, line, err)
		}

		started = true
		for i, v := range row {
			out[i] = append(out[i], v)
		}
	}

	if !started {
		return nil, ErrNoData
	}

	return out, nil
}

func parseRow(rec []string, cols []int) ([]float64, error) {
	row := make([]float64, len(cols))
	for i, c := range cols {
		if c >= len(rec) {
			return nil, fmt.Errorf("column %d missing (have %d)", c, len(rec))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[c]), 64)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
