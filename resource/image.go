package resource

import (
	"bytes"
	"image"
	"image/png"

	"github.com/archivewire/pictarc/wire"
)

// Image is a raster resource. The archive stores the encoded raster
// verbatim and opaque; decoding pixels is left to the caller, via Decode.
type Image struct {
	Width, Height int
	Encoded       []byte // PNG-encoded raster
}

// NewImage encodes img as PNG and wraps it for archival.
func NewImage(img image.Image) (*Image, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &Image{Width: b.Dx(), Height: b.Dy(), Encoded: buf.Bytes()}, nil
}

// Decode returns the raster this image wraps.
func (img *Image) Decode() (image.Image, error) {
	return png.Decode(bytes.NewReader(img.Encoded))
}

// Flatten writes the image's dimensions and its encoded raster bytes.
func (img *Image) Flatten(buf *wire.FlattenBuffer) {
	buf.WriteUint32(uint32(img.Width))
	buf.WriteUint32(uint32(img.Height))
	buf.WriteByteArray(img.Encoded)
}

// ReadImage reads one image from buf.
func ReadImage(buf *wire.UnflattenBuffer) (*Image, bool) {
	width := buf.ReadUint32()
	height := buf.ReadUint32()
	data, ok := buf.ReadByteArray()
	if !ok {
		return nil, false
	}
	return &Image{Width: int(width), Height: int(height), Encoded: data}, true
}
