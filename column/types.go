package column

import (
	"sort"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"
	"github.com/pkg/errors"
)

// Sentinel errors for column operations.
var (
	// ErrSchemaMismatch indicates the file schema does not declare exactly one field.
	ErrSchemaMismatch = errors.New("column: schema must declare exactly one field")
	// ErrUnsupportedType indicates the single field is not an INT32 or INT64 leaf.
	ErrUnsupportedType = errors.New("column: field must be an INT32 or INT64 column")
	// ErrNullValue indicates a row holds a null value.
	ErrNullValue = errors.New("column: null value in column")
	// ErrValueOutOfRange indicates a value outside the int16 range.
	ErrValueOutOfRange = errors.New("column: value does not fit in int16")
	// ErrUnknownCodec indicates an unknown compression codec name.
	ErrUnknownCodec = errors.New("column: unknown compression codec")
)

// DefaultBatchSize is the number of rows Load requests per read.
const DefaultBatchSize = 4096

// maxPrealloc caps the capacity Load reserves from the footer row count.
const maxPrealloc = 1 << 20

// DefaultCodec is the compression codec Write uses unless told otherwise.
const DefaultCodec = "snappy"

// codecs maps the names accepted by WithCompression to parquet codecs.
var codecs = map[string]compress.Codec{
	"none":   &parquet.Uncompressed,
	"snappy": &parquet.Snappy,
	"gzip":   &parquet.Gzip,
	"brotli": &parquet.Brotli,
	"zstd":   &parquet.Zstd,
	"lz4":    &parquet.Lz4Raw,
}

// Info describes a Parquet file as recorded in its footer.
type Info struct {
	Path      string   // Path the file was opened from
	Rows      int64    // Total number of rows across row groups
	RowGroups int      // Number of row groups
	Fields    []string // Top-level field names, in schema order
}

// Options configures Load.
type Options struct {
	BatchSize int // Rows requested per ReadRows call
}

// Option is a functional option for Load.
type Option func(*Options)

// DefaultOptions returns Options with BatchSize=DefaultBatchSize.
func DefaultOptions() Options {
	return Options{BatchSize: DefaultBatchSize}
}

// WithBatchSize sets the number of rows read per call.
// Panics if n <= 0.
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("column: WithBatchSize requires n > 0")
		}
		o.BatchSize = n
	}
}

// WriteOptions configures Write.
type WriteOptions struct {
	Codec string // Compression codec name: none, snappy, gzip, brotli, zstd, lz4
}

// WriteOption is a functional option for Write.
type WriteOption func(*WriteOptions)

// WithCompression selects the compression codec by name.
// Unknown names make Write fail with ErrUnknownCodec.
func WithCompression(name string) WriteOption {
	return func(o *WriteOptions) {
		o.Codec = name
	}
}

// Codecs returns the codec names accepted by WithCompression, sorted.
func Codecs() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
