// Package table: the CSV reader.
//
// Parsing stages:
//  1. header      – column categories; locate the optional size column
//  2. records     – row label + numeric fields, fail fast per cell
//  3. assembly    – ca.Table plus the split-off size vector
//
// The encoding/csv reader enforces a uniform field count per record; its
// field-count failure is translated to the package's ErrRagged so callers
// match one sentinel regardless of the underlying csv internals.

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"corresp/ca"
)

// Read parses a contingency table from r.
//
// The first header field (the row-label column name) is ignored; every
// other header field becomes a column category, except the size column,
// which is split into Dataset.Sizes. See the package doc for the layout.
//
// Complexity: O(r·c) time and space.
func Read(r io.Reader, opts ...Option) (*Dataset, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.Delimiter
	cr.TrimLeadingSpace = true

	// 1) Header row: column categories and the optional size column.
	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoHeader, err)
	}

	sizeIdx := -1 // field index of the size column, -1 when absent
	colLabels := make([]string, 0, len(header)-1)
	for f := 1; f < len(header); f++ {
		name := strings.TrimSpace(header[f])
		if cfg.SizeColumn != "" && strings.EqualFold(name, cfg.SizeColumn) && sizeIdx < 0 {
			sizeIdx = f

			continue
		}
		colLabels = append(colLabels, name)
	}

	// 2) Data records: one row category per record.
	var (
		rowLabels []string
		data      [][]float64
		sizes     []float64
	)
	for rec := 1; ; rec++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("%w: record %d", ErrRagged, rec)
			}

			return nil, fmt.Errorf("table: record %d: %w", rec, err)
		}

		label := strings.TrimSpace(record[0])
		rowLabels = append(rowLabels, label)

		row := make([]float64, 0, len(colLabels))
		for f := 1; f < len(record); f++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[f]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at row %q, field %q",
					ErrBadNumber, record[f], label, header[f])
			}
			if f == sizeIdx {
				sizes = append(sizes, v)

				continue
			}
			row = append(row, v)
		}
		data = append(data, row)
	}
	if len(data) == 0 {
		return nil, ErrNoRows
	}

	// 3) Assemble. Statistical validation is deferred to the ca core.
	ds := &Dataset{
		Table: &ca.Table{
			RowLabels: rowLabels,
			ColLabels: colLabels,
			Data:      data,
		},
	}
	if sizeIdx >= 0 {
		ds.Sizes = sizes
	}

	return ds, nil
}

// Load reads a contingency table from the file at path.
func Load(path string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	defer f.Close()

	return Read(f, opts...)
}
