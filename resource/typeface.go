package resource

import (
	"bytes"

	"github.com/go-text/typesetting/font"

	"github.com/archivewire/pictarc/wire"
)

// Typeface is a font identity referenced by paints and text blobs. The
// archive never interprets glyph outlines itself; it only needs enough of
// the font to dedupe by identity on encode and to give a caller something
// usable on decode.
type Typeface struct {
	data []byte // the font file bytes, serialized verbatim
	face *font.Face
}

// NewTypeface parses data as a font file and wraps it for archival. The
// parsed face is kept only so a caller can inspect family/style; the raw
// bytes are what actually gets written to the stream.
func NewTypeface(data []byte) (*Typeface, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Typeface{data: data, face: face}, nil
}

// Face returns the parsed font, or nil for the process default typeface.
func (t *Typeface) Face() *font.Face { return t.face }

var defaultTypeface = &Typeface{}

// DefaultTypeface returns the process-wide typeface substituted for any
// entry that fails to deserialize. It is never nil and is never itself
// substituted.
func DefaultTypeface() wire.Typeface { return defaultTypeface }

// Serialize implements wire.Typeface.
func (t *Typeface) Serialize(w *wire.Writer) error {
	w.WriteUint32(uint32(len(t.data)))
	w.WriteBytes(t.data)
	w.Align(4)
	return w.Err()
}

// DeserializeTypeface implements wire.TypefaceDeserializer. A font that
// fails to parse still has its bytes consumed correctly off the stream;
// the caller substitutes DefaultTypeface for the returned false.
func DeserializeTypeface(r *wire.Reader) (wire.Typeface, bool) {
	var n uint32
	r.ReadUint32(&n)
	if r.Err() != nil {
		return nil, false
	}
	data := r.ReadBytes(int(n))
	r.Align(4)
	if r.Err() != nil {
		return nil, false
	}
	tf, err := NewTypeface(data)
	if err != nil {
		return nil, false
	}
	return tf, true
}
