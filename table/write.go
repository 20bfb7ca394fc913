// Package table: the CSV writer, the inverse of Read for tables without
// a size column.

package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"corresp/ca"
)

// Write serializes t in the layout Read consumes: a header with an empty
// row-label field followed by the column categories, then one record per
// row category. Values are written in their shortest exact decimal form.
func Write(w io.Writer, t *ca.Table) error {
	cw := csv.NewWriter(w)

	header := append([]string{""}, t.ColLabels...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("table: header: %w", err)
	}

	record := make([]string, 0, len(t.ColLabels)+1)
	for i, label := range t.RowLabels {
		record = append(record[:0], label)
		for _, v := range t.Data[i] {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("table: row %q: %w", label, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// Save writes t to the file at path, creating or truncating it.
func Save(path string, t *ca.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	if err := Write(f, t); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
