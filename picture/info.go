package picture

import (
	"io"

	"github.com/archivewire/pictarc/wire"
)

// Magic tags every archive header so a corrupted or foreign stream fails
// fast instead of being misread as a valid (if garbled) picture.
const Magic uint32 = 0x50434152 // "PCAR"

// CurrentVersion is the version this package's encoder stamps on every
// archive it writes.
const CurrentVersion uint32 = 50

type infoPayload struct {
	Magic      uint32
	Version    uint32
	CullLeft   float32
	CullTop    float32
	CullRight  float32
	CullBottom float32
}

// Info is the fixed-size header written before every picture's tag
// stream -- both the top-level archive and each sub-picture. Version is
// carried into each picture's unflatten buffer; the archive package's
// typeface sharing rule picks tables by whether a sub-picture has its own,
// not by this number. The cull rect bounds the picture's content but is
// otherwise opaque to the codec.
type Info struct {
	fixed wire.Fixed[infoPayload]
}

// NewInfo builds a header for a picture with the given cull rectangle,
// stamped with CurrentVersion.
func NewInfo(cullLeft, cullTop, cullRight, cullBottom float32) Info {
	return Info{fixed: wire.Fixed[infoPayload]{Payload: infoPayload{
		Magic:       Magic,
		Version:     CurrentVersion,
		CullLeft:    cullLeft,
		CullTop:     cullTop,
		CullRight:   cullRight,
		CullBottom:  cullBottom,
	}}}
}

// NewInfoWithVersion builds a header stamped with an explicit version,
// for tests exercising version-gated decode behavior.
func NewInfoWithVersion(version uint32, cullLeft, cullTop, cullRight, cullBottom float32) Info {
	info := NewInfo(cullLeft, cullTop, cullRight, cullBottom)
	info.fixed.Payload.Version = version
	return info
}

// Version reports the archive format version this header was stamped
// with.
func (i Info) Version() uint32 { return i.fixed.Payload.Version }

// ValidMagic reports whether the header's magic matches this package's
// expected value.
func (i Info) ValidMagic() bool { return i.fixed.Payload.Magic == Magic }

// CullRect returns the picture's cull bounds.
func (i Info) CullRect() (left, top, right, bottom float32) {
	p := i.fixed.Payload
	return p.CullLeft, p.CullTop, p.CullRight, p.CullBottom
}

// WriteTo writes the header to w. It is always the first thing written
// for a picture, ahead of its READER_TAG section.
func (i Info) WriteTo(w io.Writer) (int64, error) { return i.fixed.WriteTo(w) }

// ReadFrom reads the header from r. It is always the first thing read for
// a picture.
func (i *Info) ReadFrom(r io.Reader) (int64, error) { return i.fixed.ReadFrom(r) }
