package resource

import (
	"io"

	"golang.org/x/image/math/fixed"

	"github.com/archivewire/pictarc/wire"
)

// Vertices is a mesh of points. Unlike the other resource kinds it has no
// dependency on the factory or typeface tables, so it is encoded as a
// self-contained byte array inside the VERTICES_BUFFER section rather than
// flattened field-by-field -- a genuine fit for wire.Codec.
type Vertices struct {
	Positions []fixed.Point26_6
}

var _ wire.Codec = (*Vertices)(nil)

// Size reports the encoded size: a count plus two int32 per point.
func (v *Vertices) Size() int {
	return 4 + len(v.Positions)*8
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v *Vertices) MarshalBinary() ([]byte, error) {
	return wire.MarshalBinaryGeneric[*Vertices](v)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vertices) UnmarshalBinary(data []byte) error {
	return wire.UnmarshalBinaryGeneric[*Vertices](v, data)
}

// MarshalTo implements the zero-allocation Marshaler method.
func (v *Vertices) MarshalTo(p []byte) (int, error) {
	return wire.MarshalToGeneric[*Vertices](v, p)
}

// WriteTo streams the mesh to w.
func (v *Vertices) WriteTo(w io.Writer) (int64, error) {
	ww, err := wire.NewWriter(w)
	if err != nil {
		return 0, err
	}
	ww.WriteUint32(uint32(len(v.Positions)))
	for _, pt := range v.Positions {
		ww.WriteInt32(int32(pt.X))
		ww.WriteInt32(int32(pt.Y))
	}
	return ww.Result()
}

// ReadFrom reads a mesh from r.
func (v *Vertices) ReadFrom(r io.Reader) (int64, error) {
	rr, err := wire.NewReaderSize(r, 4096)
	if err != nil {
		return 0, err
	}
	var n uint32
	rr.ReadUint32(&n)
	if err := rr.Err(); err != nil {
		return rr.Result()
	}
	if !wire.FitsInInt32(n) {
		return rr.Result()
	}
	positions := make([]fixed.Point26_6, n)
	for i := uint32(0); i < n; i++ {
		var x, y int32
		rr.ReadInt32(&x)
		rr.ReadInt32(&y)
		if rr.Err() != nil {
			return rr.Result()
		}
		positions[i] = fixed.Point26_6{X: fixed.Int26_6(x), Y: fixed.Int26_6(y)}
	}
	v.Positions = positions
	return rr.Result()
}

// Encode marshals the mesh for embedding inside a VERTICES_BUFFER section.
func (v *Vertices) Encode() []byte {
	b, _ := v.MarshalBinary()
	return b
}

// DecodeVertices unmarshals a mesh previously produced by Encode.
func DecodeVertices(data []byte) (*Vertices, bool) {
	v := &Vertices{}
	if err := v.UnmarshalBinary(data); err != nil {
		return nil, false
	}
	return v, true
}
