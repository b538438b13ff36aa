package source

import (
	"iter"
	"slices"
)

// Of groups column values into one columnar row.
func Of(columns ...any) []any { return columns }

// Table groups rows into a data source.
func Table(rows ...[]any) [][]any { return rows }

// ForEach makes a data source with one single-column row per value. A slice
// value stays one argument instead of being read as the row's columns.
func ForEach[T any](values ...T) [][]any {
	rows := make([][]any, len(values))
	for i, v := range values {
		rows[i] = []any{v}
	}

	return rows
}

// ForEachSeq is ForEach over the values of seq.
func ForEachSeq[T any](seq iter.Seq[T]) [][]any {
	return ForEach(slices.Collect(seq)...)
}

// CrossProduct joins every row of rows1 with every row of rows2, rows1 varying
// slowest. Joined rows are rows1's columns followed by rows2's.
func CrossProduct(rows1, rows2 [][]any) [][]any {
	out := make([][]any, 0, len(rows1)*len(rows2))
	for _, r1 := range rows1 {
		for _, r2 := range rows2 {
			out = append(out, slices.Concat(r1, r2))
		}
	}

	return out
}

// CrossProductSingle pairs every value of values1 with every value of values2
// as two-column rows.
func CrossProductSingle[A, B any](values1 []A, values2 []B) [][]any {
	out := make([][]any, 0, len(values1)*len(values2))
	for _, a := range values1 {
		for _, b := range values2 {
			out = append(out, []any{a, b})
		}
	}

	return out
}
