package wire

// Typeface is the minimal contract the wire layer needs from a typeface
// resource: the ability to write itself to a stream. Identity-based
// deduplication is done by the wire layer; producing a concrete Typeface
// from a stream is the caller's responsibility (see TypefaceDeserializer),
// since wire has no knowledge of font formats.
type Typeface interface {
	Serialize(w *Writer) error
}

// TypefaceDeserializer reads one typeface from the TYPEFACE section. A
// false return means the entry failed to deserialize; the caller
// substitutes a default rather than treating this as fatal.
type TypefaceDeserializer func(r *Reader) (Typeface, bool)

// TypefaceSet deduplicates typefaces by identity during encoding. Sub-
// pictures share their parent's set when one is threaded down through the
// recursive serialize call; otherwise each picture carries its own.
type TypefaceSet struct {
	index map[Typeface]uint32
	faces []Typeface
}

// NewTypefaceSet creates an empty recorder.
func NewTypefaceSet() *TypefaceSet {
	return &TypefaceSet{index: make(map[Typeface]uint32)}
}

// Add records tf if this is its first appearance in the set and returns
// its stable index. A nil typeface is never recorded.
func (s *TypefaceSet) Add(tf Typeface) uint32 {
	if tf == nil {
		return 0
	}
	if idx, ok := s.index[tf]; ok {
		return idx
	}
	idx := uint32(len(s.faces))
	s.index[tf] = idx
	s.faces = append(s.faces, tf)
	return idx
}

// Count returns the number of distinct typefaces recorded so far.
func (s *TypefaceSet) Count() int { return len(s.faces) }

// WriteTo emits the TYPEFACE section: a tag/size header whose size field
// is the typeface count, followed by each typeface's own serialization.
func (s *TypefaceSet) WriteTo(w *Writer) error {
	WriteTagSize(w, TypefaceTag, uint32(len(s.faces)))
	for _, tf := range s.faces {
		if err := tf.Serialize(w); err != nil {
			return err
		}
	}
	return w.Err()
}

// TypefacePlayback is the decode-side index -> typeface table. It never
// contains a nil entry: a typeface that fails to deserialize is replaced
// with the default produced by defaultTypeface.
type TypefacePlayback struct {
	faces []Typeface
}

// ReadTypefaceSection reads count typefaces from r using deserialize,
// substituting defaultTypeface() for any entry that fails to parse.
func ReadTypefaceSection(r *Reader, count uint32, deserialize TypefaceDeserializer, defaultTypeface func() Typeface) (*TypefacePlayback, error) {
	if !FitsInInt32(count) {
		return nil, ErrInvalidFraming
	}
	playback := &TypefacePlayback{faces: make([]Typeface, count)}
	for i := uint32(0); i < count; i++ {
		tf, ok := deserialize(r)
		if err := r.Err(); err != nil {
			return nil, err
		}
		if !ok || tf == nil {
			tf = defaultTypeface()
		}
		playback.faces[i] = tf
	}
	return playback, nil
}

// Lookup resolves index to a typeface.
func (p *TypefacePlayback) Lookup(index uint32) (Typeface, bool) {
	if p == nil || index >= uint32(len(p.faces)) {
		return nil, false
	}
	return p.faces[index], true
}

// Count returns the number of entries in the playback table.
func (p *TypefacePlayback) Count() int {
	if p == nil {
		return 0
	}
	return len(p.faces)
}

// Populated reports whether this table has any entries. Picture decoding
// uses this to choose between a sub-picture's own table and the shared
// top-level one (see archive.Decode).
func (p *TypefacePlayback) Populated() bool {
	return p != nil && len(p.faces) > 0
}
