package picture

import (
	"github.com/archivewire/pictarc/resource"
	"github.com/archivewire/pictarc/wire"
)

// Data is a single recorded picture: its op stream plus every resource
// array that stream's ops reference by index. A picture may itself
// contain sub-pictures, each a complete Data in its own right.
type Data struct {
	Info Info

	// OpData is the opaque recorded-drawing byte stream. The archive
	// codec never interprets it; it is whatever bytes the recorder
	// produced.
	OpData []byte

	Paints      []*resource.Paint
	Paths       []*resource.Path
	TextBlobs   []*resource.TextBlob
	Vertices    []*resource.Vertices
	Images      []*resource.Image
	Drawables   []resource.Drawable
	SubPictures []*Data

	// Factories and Typefaces are populated only by a decode; they are
	// nil on a picture built for encoding.
	Factories *wire.FactoryPlayback
	Typefaces *wire.TypefacePlayback
}

// New creates an empty picture ready to be populated for encoding.
func New(info Info) *Data {
	return &Data{Info: info}
}

// PaintCount, PathCount, and friends give cheap borrowed-view access to
// resource counts without exposing mutable slices to callers that only
// want to inspect an archive (see cmd/pictarcdump).
func (d *Data) PaintCount() int    { return len(d.Paints) }
func (d *Data) PathCount() int     { return len(d.Paths) }
func (d *Data) TextBlobCount() int { return len(d.TextBlobs) }
func (d *Data) VerticesCount() int { return len(d.Vertices) }
func (d *Data) ImageCount() int    { return len(d.Images) }
func (d *Data) DrawableCount() int { return len(d.Drawables) }

// InitForPlayback materializes every path's bounds cache. It runs once,
// immediately after a successful decode, so that nothing downstream ever
// observes an uncomputed cache. It recurses into sub-pictures.
func (d *Data) InitForPlayback() {
	for _, p := range d.Paths {
		p.UpdateBoundsCache()
	}
	for _, sub := range d.SubPictures {
		sub.InitForPlayback()
	}
}
