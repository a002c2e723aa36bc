package wire

import "bytes"

// FlattenBuffer is a typed append-only byte sink used to serialize a
// picture's resource arrays. It holds references to a factory recorder and
// a typeface recorder; writing a polymorphic flattenable or a typeface
// reference transparently records it into the owning set, which is why
// factories and typefaces can be discovered as a side effect of flattening
// rather than computed up front.
type FlattenBuffer struct {
	w         *Writer
	buf       *bytes.Buffer
	factories *FactorySet
	typefaces *TypefaceSet
}

// NewFlattenBuffer creates a scratch buffer bound to the given factory and
// typeface recorders. Both sets outlive the buffer: the caller emits them
// to the real stream before the buffer's own bytes.
func NewFlattenBuffer(factories *FactorySet, typefaces *TypefaceSet) *FlattenBuffer {
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	w, _ := NewWriter(buf)
	return &FlattenBuffer{w: w, buf: buf, factories: factories, typefaces: typefaces}
}

// Release returns the scratch buffer to the shared pool. The FlattenBuffer
// must not be used again afterward.
func (b *FlattenBuffer) Release() {
	bytesBufPool.Put(b.buf)
}

func (b *FlattenBuffer) WriteUint32(v uint32)     { b.w.WriteUint32(v) }
func (b *FlattenBuffer) WriteInt32(v int32)       { b.w.WriteInt32(v) }
func (b *FlattenBuffer) WriteBool(v bool)         { b.w.WriteBool(v) }
func (b *FlattenBuffer) WritePackedUint(v uint32) { b.w.WritePackedUint(v) }

// WriteByteArray emits a 32-bit length followed by the bytes, padded to a
// 4-byte boundary -- the framing used for variable-length fields inside a
// structured buffer.
func (b *FlattenBuffer) WriteByteArray(data []byte) {
	b.w.WriteUint32(uint32(len(data)))
	b.w.WriteBytes(data)
	b.w.Align(4)
}

// WriteTypefaceRef records tf in the bound typeface set (if not already
// present) and writes its index.
func (b *FlattenBuffer) WriteTypefaceRef(tf Typeface) {
	b.w.WriteUint32(b.typefaces.Add(tf))
}

// WriteFlattenable records f's factory name in the bound factory set and
// writes the resulting index, then delegates to f.Flatten for the payload.
func (b *FlattenBuffer) WriteFlattenable(f Flattenable) {
	idx := b.factories.Add(f.FactoryName())
	b.w.WriteUint32(idx)
	f.Flatten(b)
}

// WriteSectionHeader emits a (tag, size) header into the scratch buffer
// itself -- resource sections (PAINT_BUFFER, PATH_BUFFER, ...) are framed
// inside the flatten buffer, not on the outer stream.
func (b *FlattenBuffer) WriteSectionHeader(tag Tag, size uint32) {
	WriteTagSize(b.w, tag, size)
}

// BytesWritten reports the current payload length.
func (b *FlattenBuffer) BytesWritten() int {
	return b.buf.Len()
}

// Bytes returns a view of the bytes written so far. The returned slice is
// only valid until Release is called.
func (b *FlattenBuffer) Bytes() []byte {
	return b.buf.Bytes()
}

// WriteToStream copies the accumulated bytes into dst.
func (b *FlattenBuffer) WriteToStream(dst *Writer) error {
	dst.WriteBytes(b.buf.Bytes())
	return dst.Err()
}

// Err returns the first error encountered while writing to the scratch
// buffer, if any.
func (b *FlattenBuffer) Err() error { return b.w.Err() }
