// Package runbreak finds the boundaries between runs of equal values in a
// long sorted column of integers, loaded from a Parquet file.
//
// What is in here?
//
//	A small, dependency-light toolkit:
//		• breaks/ — FindBreak binary search, run enumeration, run statistics
//		• column/ — single-column Parquet loader/writer for []int16
//		• gen/    — seeded generator of sorted test columns
//		• cmd/findbreak — load a column and print the first break in a range
//		• cmd/gensorted — write a sorted column for findbreak to read
//
// Why?
//
//	A sorted column of a million rows over a dozen distinct values has its
//	distinct values recovered with a few dozen binary-search probes instead of
//	a full scan. The search trusts the sort order; it never re-checks it.
//
// Quick example:
//
//	xs := []int16{3, 3, 3, 7, 7}
//	i := breaks.FindBreak(xs, 0, len(xs)) // 3
//
//	go get github.com/katalvlaran/runbreak/breaks
package runbreak
