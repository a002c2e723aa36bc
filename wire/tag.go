package wire

// Tag identifies a section of a picture archive. Tags are 32-bit magic
// constants shared between the encoder and decoder; unknown tags at the
// outer level are skipped, unknown tags inside a structured buffer are
// rejected.
type Tag uint32

const (
	ReaderTag         Tag = 0x52454144 // "READ"
	PaintBufferTag    Tag = 0x50414954 // "PAIT"
	PathBufferTag     Tag = 0x50415448 // "PATH"
	TextBlobBufferTag Tag = 0x424c4f42 // "BLOB"
	VerticesBufferTag Tag = 0x56455254 // "VERT"
	ImageBufferTag    Tag = 0x494d4147 // "IMAG"
	DrawableTag       Tag = 0x44524157 // "DRAW"
	FactoryTag        Tag = 0x46414354 // "FACT"
	TypefaceTag       Tag = 0x54595045 // "TYPE"
	PictureTag        Tag = 0x50494354 // "PICT"
	BufferSizeTag     Tag = 0x42554646 // "BUFF"
	EOFTag            Tag = 0x454f4621 // "EOF!"
)

// WriteTagSize emits a (tag, size) header: two 32-bit little-endian words.
// This is the framing unit for every section in the archive.
func WriteTagSize(w *Writer, tag Tag, size uint32) {
	w.WriteUint32(uint32(tag))
	w.WriteUint32(size)
}

// ReadTagSize reads a (tag, size) header.
func ReadTagSize(r *Reader) (Tag, uint32, error) {
	var tag, size uint32
	r.ReadUint32(&tag)
	r.ReadUint32(&size)
	if err := r.Err(); err != nil {
		return 0, 0, err
	}
	return Tag(tag), size, nil
}

// FitsInInt32 reports whether v can be represented as a non-negative int32,
// the validation every stream-supplied count must pass before it is used to
// size an allocation or loop bound.
func FitsInInt32(v uint32) bool {
	return v <= 0x7fffffff
}
