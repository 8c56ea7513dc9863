package column

// PreallocRows exposes preallocRows to column_test.
var PreallocRows = preallocRows

// MaxPrealloc exposes maxPrealloc to column_test.
const MaxPrealloc = maxPrealloc
