package column

import (
	"io"
	"math"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
)

// Load reads the single numeric column of the Parquet file at path and
// returns it as []int16, preserving row order across row groups.
//
// The schema must declare exactly one field (ErrSchemaMismatch otherwise);
// the field must be an INT32 or INT64 leaf (ErrUnsupportedType); every value
// must be non-null (ErrNullValue) and fit in int16 (ErrValueOutOfRange).
// I/O failures are returned wrapped with the path.
func Load(path string, opts ...Option) ([]int16, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, pf, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fields := pf.Schema().Fields()
	if len(fields) != 1 {
		return nil, errors.Wrapf(ErrSchemaMismatch, "%s declares %d fields", path, len(fields))
	}
	field := fields[0]
	if field.Repeated() {
		return nil, errors.Wrapf(ErrUnsupportedType, "%s: field %q is repeated", path, field.Name())
	}
	if !field.Leaf() {
		return nil, errors.Wrapf(ErrUnsupportedType, "%s: field %q is a group", path, field.Name())
	}
	if k := field.Type().Kind(); k != parquet.Int32 && k != parquet.Int64 {
		return nil, errors.Wrapf(ErrUnsupportedType, "%s: field %q has type %s", path, field.Name(), k)
	}

	xs := make([]int16, 0, preallocRows(pf.NumRows()))
	buf := make([]parquet.Row, o.BatchSize)
	for g, rg := range pf.RowGroups() {
		xs, err = readRowGroup(rg, buf, xs)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: row group %d", path, g)
		}
	}

	return xs, nil
}

// readRowGroup appends the values of one row group to xs.
func readRowGroup(rg parquet.RowGroup, buf []parquet.Row, xs []int16) ([]int16, error) {
	rows := rg.Rows()
	defer rows.Close()

	for {
		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			x, convErr := toInt16(row, len(xs))
			if convErr != nil {
				return nil, convErr
			}
			xs = append(xs, x)
		}
		if err == io.EOF {
			return xs, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "read rows")
		}
	}
}

// toInt16 converts the single value of row to int16. index is the position
// of the row within the whole column, reported in errors.
func toInt16(row parquet.Row, index int) (int16, error) {
	if len(row) == 0 || row[0].IsNull() {
		return 0, errors.Wrapf(ErrNullValue, "row %d", index)
	}
	if len(row) != 1 {
		return 0, errors.Wrapf(ErrUnsupportedType, "row %d holds %d values", index, len(row))
	}

	var v int64
	switch row[0].Kind() {
	case parquet.Int32:
		v = int64(row[0].Int32())
	case parquet.Int64:
		v = row[0].Int64()
	default:
		return 0, errors.Wrapf(ErrUnsupportedType, "row %d holds %s", index, row[0].Kind())
	}
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, errors.Wrapf(ErrValueOutOfRange, "row %d holds %d", index, v)
	}

	return int16(v), nil
}

// preallocRows bounds the footer row count to [0, maxPrealloc]; the footer
// is not trusted with the allocation size.
func preallocRows(n int64) int {
	if n < 0 {
		return 0
	}
	if n > maxPrealloc {
		return maxPrealloc
	}
	return int(n)
}

// Inspect returns the footer metadata of the Parquet file at path.
// It does not check the field count, so it also describes files Load rejects.
func Inspect(path string) (Info, error) {
	f, pf, err := open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	fields := pf.Schema().Fields()
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name()
	}

	return Info{
		Path:      path,
		Rows:      pf.NumRows(),
		RowGroups: len(pf.RowGroups()),
		Fields:    names,
	}, nil
}

// open opens path and parses its Parquet footer. The caller closes the
// returned *os.File.
func open(path string) (*os.File, *parquet.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "column: open %s", path)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, errors.Wrapf(err, "column: stat %s", path)
	}
	pf, err := parquet.OpenFile(f, st.Size())
	if err != nil {
		f.Close()
		return nil, nil, errors.Wrapf(err, "column: read parquet file %s", path)
	}

	return f, pf, nil
}
