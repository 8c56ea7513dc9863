// Package column reads and writes single-column Parquet files holding a
// sorted sequence of 16-bit signed integers.
//
// What:
//
//   - Load:    materialize the one column of a file as []int16, in row order.
//   - Inspect: footer metadata (rows, row groups, field names) without data pages.
//   - Write:   store []int16 as a single INT(16) column named "x".
//
// Load accepts INT32 and INT64 physical columns; every value must fit int16.
// The whole column is read before returning and nothing is cached; on any
// failure no partial sequence is returned.
//
// Errors:
//
//   - I/O failures (missing, unreadable, truncated) are returned wrapped with the path.
//   - ErrSchemaMismatch:   the schema declares zero or several fields.
//   - ErrUnsupportedType:  the field is not an INT32/INT64 leaf.
//   - ErrNullValue:        a row holds a null.
//   - ErrValueOutOfRange:  a value does not fit in int16.
//   - ErrUnknownCodec:     Write was asked for an unknown compression codec.
package column
