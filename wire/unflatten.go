package wire

// UnflattenBuffer is a validating cursor over an in-memory byte range. It
// carries a sticky validity flag: once latched invalid, every subsequent
// typed read becomes a no-op and the outer parse loop must stop. This lets
// deeply nested readers run without exception plumbing -- callers check
// IsValid() where it matters and otherwise let failures propagate as
// zero-valued reads.
type UnflattenBuffer struct {
	r         *Reader
	size      int64
	version   uint32
	factories *FactoryPlayback
	typefaces *TypefacePlayback
	valid     bool
}

// NewUnflattenBuffer wraps data for validated, typed reads. version is the
// archive format version, reported by Version; none of the typed reads in
// this package branch on it. factories and typefaces must already be
// populated: the caller is responsible for the ordering that makes this
// possible.
func NewUnflattenBuffer(data []byte, version uint32, factories *FactoryPlayback, typefaces *TypefacePlayback) *UnflattenBuffer {
	r, _ := NewReader(NewBytesReader(data))
	return &UnflattenBuffer{r: r, size: int64(len(data)), version: version, factories: factories, typefaces: typefaces, valid: true}
}

// Version returns the archive version this buffer was decoded under.
func (b *UnflattenBuffer) Version() uint32 { return b.version }

// Factories returns the factory playback table bound to this buffer.
func (b *UnflattenBuffer) Factories() *FactoryPlayback { return b.factories }

// Typefaces returns the typeface playback table bound to this buffer.
func (b *UnflattenBuffer) Typefaces() *TypefacePlayback { return b.typefaces }

// Validate latches cond into the sticky flag and returns it, so callers can
// write `if !buf.Validate(cond) { return }` at a failure point.
func (b *UnflattenBuffer) Validate(cond bool) bool {
	if !cond {
		b.valid = false
	}
	return cond
}

// IsValid reports whether no read has failed and Validate(false) has never
// been called.
func (b *UnflattenBuffer) IsValid() bool {
	return b.valid && b.r.Err() == nil
}

// EOF reports whether the cursor has reached the end of the buffer.
func (b *UnflattenBuffer) EOF() bool {
	return b.r.Count() >= b.size
}

// FitsInInt32 validates that v fits in a non-negative int32 and latches the
// result, the guard every stream-supplied count must pass before it is
// used as a loop bound or slice length.
func (b *UnflattenBuffer) FitsInInt32(v uint32) bool {
	return b.Validate(FitsInInt32(v))
}

// CanReadN validates that at least n*elemSize bytes remain in the buffer,
// defending against an allocation sized from a forged length field.
func (b *UnflattenBuffer) CanReadN(n uint32, elemSize int) bool {
	remaining := b.size - b.r.Count()
	return b.Validate(remaining >= 0 && int64(n) <= remaining/int64(max(elemSize, 1)))
}

// ReadUint32 reads one u32, latching invalidity on a short read.
func (b *UnflattenBuffer) ReadUint32() uint32 {
	var v uint32
	b.r.ReadUint32(&v)
	if b.r.Err() != nil {
		b.valid = false
	}
	return v
}

// ReadInt32 reads one signed i32.
func (b *UnflattenBuffer) ReadInt32() int32 {
	var v int32
	b.r.ReadInt32(&v)
	if b.r.Err() != nil {
		b.valid = false
	}
	return v
}

// ReadBool reads one boolean byte.
func (b *UnflattenBuffer) ReadBool() bool {
	var v bool
	b.r.ReadBool(&v)
	if b.r.Err() != nil {
		b.valid = false
	}
	return v
}

// ReadPackedUint reads one packed_uint.
func (b *UnflattenBuffer) ReadPackedUint() uint32 {
	var v uint32
	b.r.ReadPackedUint(&v)
	if b.r.Err() != nil {
		b.valid = false
	}
	return v
}

// ReadTagSize reads a (tag, size) pair, the framing unit the outer dispatch
// loops key off of.
func (b *UnflattenBuffer) ReadTagSize() (Tag, uint32) {
	tag := b.ReadUint32()
	size := b.ReadUint32()
	return Tag(tag), size
}

// ReadByteArray reads a length-prefixed, 4-byte-aligned byte array. It
// preflights the length against the remaining buffer before allocating.
func (b *UnflattenBuffer) ReadByteArray() ([]byte, bool) {
	if !b.IsValid() {
		return nil, false
	}
	n := b.ReadUint32()
	if !b.IsValid() {
		return nil, false
	}
	if !b.CanReadN(n, 1) {
		return nil, false
	}
	data := b.r.ReadBytes(int(n))
	if b.r.Err() != nil {
		b.valid = false
		return nil, false
	}
	b.r.Align(4)
	if b.r.Err() != nil {
		b.valid = false
		return nil, false
	}
	return data, true
}

// ReadTypefaceRef reads a typeface index and resolves it against the bound
// playback table.
func (b *UnflattenBuffer) ReadTypefaceRef() (Typeface, bool) {
	idx := b.ReadUint32()
	if !b.IsValid() {
		return nil, false
	}
	tf, ok := b.typefaces.Lookup(idx)
	if !ok {
		return nil, b.Validate(false)
	}
	return tf, true
}

// ReadFlattenable reads a factory index, resolves it, and invokes the
// factory to materialize the payload.
func (b *UnflattenBuffer) ReadFlattenable() (Flattenable, bool) {
	idx := b.ReadUint32()
	if !b.IsValid() {
		return nil, false
	}
	factory, ok := b.factories.Lookup(idx)
	if !ok {
		return nil, b.Validate(false)
	}
	obj, ok := factory(b)
	if !ok {
		return nil, b.Validate(false)
	}
	return obj, true
}
