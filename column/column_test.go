package column_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/runbreak/breaks"
	"github.com/katalvlaran/runbreak/column"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type twoColumns struct {
	X int32 `parquet:"x,int(16)"`
	Y int32 `parquet:"y,int(16)"`
}

type wideColumn struct {
	X int32 `parquet:"x"`
}

type longColumn struct {
	X int64 `parquet:"x"`
}

type textColumn struct {
	X string `parquet:"x"`
}

type nullableColumn struct {
	X *int32 `parquet:"x,optional,int(16)"`
}

type listColumn struct {
	X []int32 `parquet:"x"`
}

// writeFixture writes rows to a fresh file under t.TempDir, flushing a new
// row group after every chunk.
func writeFixture[T any](t *testing.T, name string, chunks ...[]T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := parquet.NewGenericWriter[T](f)
	for _, rows := range chunks {
		_, err = w.Write(rows)
		require.NoError(t, err)
		require.NoError(t, w.Flush())
	}
	require.NoError(t, w.Close())
	return path
}

// TestLoad_SingleColumn loads [1,1,2,2,2] and finds its break.
func TestLoad_SingleColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sorted.parquet")
	require.NoError(t, column.Write(path, []int16{1, 1, 2, 2, 2}))

	xs, err := column.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int16{1, 1, 2, 2, 2}, xs, "file order must be preserved")
	assert.Equal(t, 2, breaks.FindBreak(xs, 0, len(xs)))

	info, err := column.Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Rows)
	assert.Equal(t, []string{"x"}, info.Fields)
}

// TestLoad_RepeatedRejected ensures a repeated INT32 field is not flattened
// or truncated to its first element.
func TestLoad_RepeatedRejected(t *testing.T) {
	path := writeFixture(t, "list.parquet", []listColumn{{[]int32{1, 2, 3}}, {[]int32{4, 5}}})

	xs, err := column.Load(path)
	assert.ErrorIs(t, err, column.ErrUnsupportedType)
	assert.Contains(t, err.Error(), "repeated")
	assert.Nil(t, xs)
}

// TestLoad_TwoColumnsRejected ensures a two-field schema is a mismatch and
// that the first column is not read silently.
func TestLoad_TwoColumnsRejected(t *testing.T) {
	path := writeFixture(t, "two.parquet", []twoColumns{{1, 9}, {2, 8}})

	xs, err := column.Load(path)
	assert.ErrorIs(t, err, column.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "declares 2 fields")
	assert.Nil(t, xs, "no partial result on failure")
}

// TestLoad_MissingFile reports I/O errors with the path.
func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.parquet")
	_, err := column.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

// TestLoad_NotParquet rejects a file without a parquet footer.
func TestLoad_NotParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.parquet")
	require.NoError(t, os.WriteFile(path, []byte("definitely not parquet"), 0o600))

	_, err := column.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read parquet file")
}

// TestLoad_Truncated rejects a file cut short.
func TestLoad_Truncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cut.parquet")
	require.NoError(t, column.Write(path, []int16{1, 2, 3, 4}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)/2], 0o600))

	_, err = column.Load(path)
	assert.Error(t, err)
}

// TestLoad_WideValues accepts INT32/INT64 columns that fit int16 and rejects
// values outside the range.
func TestLoad_WideValues(t *testing.T) {
	ok := writeFixture(t, "ok.parquet", []longColumn{{-32768}, {0}, {32767}})
	xs, err := column.Load(ok)
	require.NoError(t, err)
	assert.Equal(t, []int16{-32768, 0, 32767}, xs)

	tooBig := writeFixture(t, "big.parquet", []wideColumn{{1}, {2}, {40000}})
	xs, err = column.Load(tooBig)
	assert.ErrorIs(t, err, column.ErrValueOutOfRange)
	assert.Contains(t, err.Error(), "row 2 holds 40000")
	assert.Nil(t, xs)
}

// TestLoad_UnsupportedAndNull covers text columns and null values.
func TestLoad_UnsupportedAndNull(t *testing.T) {
	text := writeFixture(t, "text.parquet", []textColumn{{"a"}})
	_, err := column.Load(text)
	assert.ErrorIs(t, err, column.ErrUnsupportedType)

	one := int32(1)
	nulls := writeFixture(t, "null.parquet", []nullableColumn{{&one}, {nil}})
	_, err = column.Load(nulls)
	assert.ErrorIs(t, err, column.ErrNullValue)
}

// TestLoad_RowGroupsInOrder reads several row groups with a small batch size.
func TestLoad_RowGroupsInOrder(t *testing.T) {
	path := writeFixture(t, "groups.parquet",
		[]wideColumn{{1}, {1}, {1}},
		[]wideColumn{{2}, {2}},
		[]wideColumn{{5}},
	)

	xs, err := column.Load(path, column.WithBatchSize(2))
	require.NoError(t, err)
	assert.Equal(t, []int16{1, 1, 1, 2, 2, 5}, xs)

	info, err := column.Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, int64(6), info.Rows)
	assert.GreaterOrEqual(t, info.RowGroups, 3, "one row group per flushed chunk")
	assert.Equal(t, []string{"x"}, info.Fields)
}

// TestInspect_TwoColumns describes a file Load would reject.
func TestInspect_TwoColumns(t *testing.T) {
	path := writeFixture(t, "two.parquet", []twoColumns{{1, 2}})
	info, err := column.Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, []string{"x", "y"}, info.Fields)
}

// TestWrite_Codecs round-trips through every codec and rejects unknown names.
func TestWrite_Codecs(t *testing.T) {
	want := []int16{-3, -3, 0, 0, 0, 12}
	for _, name := range column.Codecs() {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name+".parquet")
			require.NoError(t, column.Write(path, want, column.WithCompression(name)))
			got, err := column.Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	err := column.Write(filepath.Join(t.TempDir(), "x.parquet"), want, column.WithCompression("lzma"))
	assert.ErrorIs(t, err, column.ErrUnknownCodec)
}

// TestCodecs lists every accepted codec name in sorted order.
func TestCodecs(t *testing.T) {
	assert.Equal(t, []string{"brotli", "gzip", "lz4", "none", "snappy", "zstd"}, column.Codecs())
	assert.Contains(t, column.Codecs(), column.DefaultCodec)
}

// TestWithBatchSize_Panics rejects non-positive batch sizes.
func TestWithBatchSize_Panics(t *testing.T) {
	o := column.DefaultOptions()
	assert.Panics(t, func() { column.WithBatchSize(0)(&o) })
	assert.Equal(t, column.DefaultBatchSize, o.BatchSize)
}

// TestPreallocRows bounds the capacity taken from the footer row count.
func TestPreallocRows(t *testing.T) {
	assert.Equal(t, 0, column.PreallocRows(-1))
	assert.Equal(t, 0, column.PreallocRows(0))
	assert.Equal(t, 5, column.PreallocRows(5))
	assert.Equal(t, column.MaxPrealloc, column.PreallocRows(column.MaxPrealloc))
	assert.Equal(t, column.MaxPrealloc, column.PreallocRows(1<<40))
}
