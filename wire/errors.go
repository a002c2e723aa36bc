package wire

import "errors"

var (
	// ErrNilIO indicates that NewReader/NewWriter was called with an nil interface
	ErrNilIO = errors.New("wire: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrSizeTooSmall indicates a size conflict with bufio
	ErrSizeTooSmall = errors.New("wire: NewReaderSize with a size smaller than 16 conflict with bufio")

	// ErrAlreadyBuffered indicates that NewReader/NewWriter was called with an already-buffered
	// reader/writer, which would lead to unpredictable behavior and performance issues.
	ErrAlreadyBuffered = errors.New("wire: reader or writer is already buffered")

	// ErrWriteToNil indicates a WriteTo operation was attempted on a nil io.Writer.
	ErrWriteToNil = errors.New("wire: WriteTo called with a nil io.Writer")

	// ErrReadToNil indicates a ReadTo operation was attempted on a nil io.ReaderFrom.
	ErrReadToNil = errors.New("wire: ReadTo called with a nil io.ReaderFrom")

	// ErrInvalidSeek indicates a seek was attempted to invalid position.
	ErrInvalidSeek = errors.New("wire: seek to a invalid position")

	// ErrUnsupportedNegativeSeek indicates a backward seek was attempted on a forward-only seeker.
	ErrUnsupportedNegativeSeek = errors.New("wire: unsupported negative offset for forward-only seeker")

	// ErrInvalidWhence indicates that an invalid 'whence' parameter was provided to a Seek operation.
	ErrInvalidWhence = errors.New("wire: unsupported whence for forward-only seeker")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid (negative) count from Write.
	ErrInvalidWrite = errors.New("wire: writer returned invalid count from Write")

	// ErrInvalidRead indicates that an io.Reader returned an invalid (negative or outbound) count from Read.
	ErrInvalidRead = errors.New("wire: reader returned invalid count from Read")

	// ErrDiscardNegative indicates a Discard operation was attempted with a negative byte count.
	ErrDiscardNegative = errors.New("wire: cannot discard negative number of bytes")

	// ErrTrailingData is returned by UnmarshalBinaryGeneric when non-zero bytes are found
	// after the expected end of the data structure, indicating a potential parsing error or malformed data.
	ErrTrailingData = errors.New("wire: non-zero trailing data found after decoding")

	// ErrTruncatedData indicates that a read operation could not complete because the
	// underlying data source (e.g., buffer, stream) ended before all expected bytes were read.
	ErrTruncatedData = errors.New("wire: truncated data")

	// ErrInvalidFraming indicates a stream-supplied size or count could not
	// possibly be valid (e.g. it does not fit in a non-negative int32).
	ErrInvalidFraming = errors.New("wire: invalid section framing")

	// ErrFactorySectionSize indicates the FACTORY section's declared size
	// did not match the number of bytes actually written for it.
	ErrFactorySectionSize = errors.New("wire: factory section size mismatch")

	// ErrMissingFactorySection indicates BUFFER_SIZE_TAG was encountered
	// before any FACTORY_TAG section, violating the required dependency
	// ordering.
	ErrMissingFactorySection = errors.New("wire: buffer section requires a preceding factory section")

	// ErrMissingOpData indicates an archive reached EOF_TAG without ever
	// having seen a READER_TAG section.
	ErrMissingOpData = errors.New("wire: archive has no op data")

	// ErrDuplicateOpData indicates a second READER_TAG section was seen
	// after op data had already been read.
	ErrDuplicateOpData = errors.New("wire: op data already set")
)
