package column

import (
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
)

// record is the row layout written by Write: one INT(16) column named "x".
// parquet-go has no int16 Go mapping, so the value travels as int32 with an
// int(16) logical annotation.
type record struct {
	X int32 `parquet:"x,int(16)"`
}

// Write stores xs at path as a single-column Parquet file, replacing any
// existing file. The column is named "x" and typed INT(16, signed).
func Write(path string, xs []int16, opts ...WriteOption) error {
	o := WriteOptions{Codec: DefaultCodec}
	for _, opt := range opts {
		opt(&o)
	}
	codec, ok := codecs[o.Codec]
	if !ok {
		return errors.Wrapf(ErrUnknownCodec, "%q", o.Codec)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "column: create %s", path)
	}

	rows := make([]record, len(xs))
	for i, x := range xs {
		rows[i].X = int32(x)
	}

	w := parquet.NewGenericWriter[record](f, parquet.Compression(codec))
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return errors.Wrapf(err, "column: write %s", path)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return errors.Wrapf(err, "column: flush %s", path)
	}

	return errors.Wrapf(f.Close(), "column: close %s", path)
}
