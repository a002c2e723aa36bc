package wire

// Flattenable is a resource whose concrete type is resolved by a registered
// factory name rather than by a dedicated wire tag. Of the resource kinds
// this codec handles, only drawables use this indirection; every other
// resource kind has its own fixed read/write path.
type Flattenable interface {
	// FactoryName returns the name this type was registered under. An
	// empty name is legal and encodes as a zero-length packed_uint.
	FactoryName() string

	// Flatten writes the type's own payload. The factory index has
	// already been written by the caller.
	Flatten(buf *FlattenBuffer)
}

// Factory materializes a Flattenable by reading its payload from buf. It is
// the decode-side counterpart of Flatten.
type Factory func(buf *UnflattenBuffer) (Flattenable, bool)
