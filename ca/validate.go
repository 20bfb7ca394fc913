// Package ca: structural validation of candidate contingency tables.
//
// Purpose:
//   - Provide the single source of truth for the preconditions the
//     decomposition requires, so the numerical stages can assume them.
//   - Return plain sentinels, wrapped with the offending label or index,
//     so callers can both match with errors.Is and report precisely.
//
// Check order (fixed, documented, enforced in tests):
//  1. shape          – labels vs matrix dimensions, raggedness
//  2. emptiness      – zero rows, zero columns
//  3. labels         – empty strings, duplicates (rows first, then columns)
//  4. entries        – negative or non-finite values
//  5. grand total    – must be > 0
//  6. degeneracy     – zero-sum rows, then zero-sum columns
//
// All checks are pure and complete before any floating-point stage runs.

package ca

import (
	"fmt"
	"math"
)

// Validate checks t against every structural precondition of the CA
// pipeline and returns the first violation as a wrapped sentinel, or nil.
//
// Complexity: O(r·c) time, O(r+c) space (marginal sums and label sets).
func Validate(t *Table) error {
	// 1) Shape: the matrix must agree with the labels and be rectangular.
	if len(t.Data) != len(t.RowLabels) {
		return fmt.Errorf("%w: %d row labels vs %d matrix rows",
			ErrShapeMismatch, len(t.RowLabels), len(t.Data))
	}
	for i, row := range t.Data {
		if len(row) != len(t.ColLabels) {
			return fmt.Errorf("%w: %d column labels vs %d entries in row %d",
				ErrShapeMismatch, len(t.ColLabels), len(row), i)
		}
	}

	// 2) Emptiness: a table without rows or columns has nothing to map.
	if len(t.RowLabels) == 0 || len(t.ColLabels) == 0 {
		return fmt.Errorf("%w: %d×%d", ErrEmptyTable, len(t.RowLabels), len(t.ColLabels))
	}

	// 3) Labels: non-empty and unique within each axis.
	if err := validateLabels(t.RowLabels, "row"); err != nil {
		return err
	}
	if err := validateLabels(t.ColLabels, "column"); err != nil {
		return err
	}

	// 4) Entries: counts must be finite and non-negative.
	for i, row := range t.Data {
		for j, v := range row {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %v at (%q, %q)",
					ErrNegativeEntry, v, t.RowLabels[i], t.ColLabels[j])
			}
		}
	}

	// 5) Grand total: an all-zero table is empty, not degenerate.
	rowSums := make([]float64, len(t.RowLabels))
	colSums := make([]float64, len(t.ColLabels))
	var total float64
	for i, row := range t.Data {
		for j, v := range row {
			rowSums[i] += v
			colSums[j] += v
			total += v
		}
	}
	if total == 0 {
		return fmt.Errorf("%w: grand total is zero", ErrEmptyTable)
	}

	// 6) Degeneracy: zero-sum rows/columns have undefined mass and must be
	//    rejected explicitly rather than silently dropped.
	for i, s := range rowSums {
		if s == 0 {
			return fmt.Errorf("%w: %q", ErrDegenerateRow, t.RowLabels[i])
		}
	}
	for j, s := range colSums {
		if s == 0 {
			return fmt.Errorf("%w: %q", ErrDegenerateColumn, t.ColLabels[j])
		}
	}

	return nil
}

// validateLabels rejects empty and duplicate labels on one axis.
// axis is "row" or "column", used only for error context.
func validateLabels(labels []string, axis string) error {
	seen := make(map[string]struct{}, len(labels))
	for i, l := range labels {
		if l == "" {
			return fmt.Errorf("%w: %s %d", ErrEmptyLabel, axis, i)
		}
		if _, dup := seen[l]; dup {
			return fmt.Errorf("%w: %s %q", ErrDuplicateLabel, axis, l)
		}
		seen[l] = struct{}{}
	}

	return nil
}
