package archive

import (
	"io"

	"github.com/archivewire/pictarc/picture"
	"github.com/archivewire/pictarc/wire"
)

// Encode writes pic and every sub-picture it contains to w as a
// self-describing archive.
//
// Encoding is two-pass per picture: resources are first flattened into an
// in-memory scratch buffer, which discovers the factory names and
// typefaces that buffer's payload references as a side effect of writing
// it; only then are the FACTORY and (if this picture owns its own)
// TYPEFACE sections emitted, followed by the scratch buffer's bytes and
// finally any sub-pictures. Between the flatten and the FACTORY section,
// every sub-picture is dry-run encoded into a discard sink purely so its typeface usage gets
// recorded into the shared set before that set is written out -- without
// this, a typeface referenced only by a sub-picture would never make it
// into the top-level TYPEFACE section.
func Encode(w io.Writer, pic *picture.Data) error {
	sw, err := wire.NewWriter(w)
	if err != nil {
		return err
	}
	if err := serialize(sw, pic, nil); err != nil {
		return err
	}
	_, err = sw.Result()
	return err
}

func serialize(stream *wire.Writer, pic *picture.Data, sharedTypefaces *wire.TypefaceSet) error {
	if _, err := pic.Info.WriteTo(stream); err != nil {
		return err
	}
	wire.WriteTagSize(stream, wire.ReaderTag, uint32(len(pic.OpData)))
	stream.WriteBytes(pic.OpData)

	localTypefaces := wire.NewTypefaceSet()
	typefaces := localTypefaces
	if sharedTypefaces != nil {
		typefaces = sharedTypefaces
	}

	factories := wire.NewFactorySet()
	scratch := wire.NewFlattenBuffer(factories, typefaces)
	defer scratch.Release()
	flattenResourcesInto(scratch, pic)
	if err := scratch.Err(); err != nil {
		return err
	}

	if len(pic.SubPictures) > 0 {
		devnull, err := wire.NewWriter(io.Discard)
		if err != nil {
			return err
		}
		for _, sub := range pic.SubPictures {
			if err := serialize(devnull, sub, typefaces); err != nil {
				return err
			}
		}
	}

	if err := factories.WriteTo(stream); err != nil {
		return err
	}
	if typefaces == localTypefaces {
		if err := typefaces.WriteTo(stream); err != nil {
			return err
		}
	}

	wire.WriteTagSize(stream, wire.BufferSizeTag, uint32(scratch.BytesWritten()))
	if err := scratch.WriteToStream(stream); err != nil {
		return err
	}

	if len(pic.SubPictures) > 0 {
		wire.WriteTagSize(stream, wire.PictureTag, uint32(len(pic.SubPictures)))
		for _, sub := range pic.SubPictures {
			if err := serialize(stream, sub, typefaces); err != nil {
				return err
			}
		}
	}

	stream.WriteUint32(uint32(wire.EOFTag))
	return stream.Err()
}

func flattenResourcesInto(buf *wire.FlattenBuffer, pic *picture.Data) {
	if n := len(pic.Paints); n > 0 {
		buf.WriteSectionHeader(wire.PaintBufferTag, uint32(n))
		for _, p := range pic.Paints {
			p.Flatten(buf)
		}
	}
	if n := len(pic.Paths); n > 0 {
		buf.WriteSectionHeader(wire.PathBufferTag, uint32(n))
		buf.WriteUint32(uint32(n)) // redundant count; decoders trust this one, not the section header
		for _, p := range pic.Paths {
			p.Flatten(buf)
		}
	}
	if n := len(pic.TextBlobs); n > 0 {
		buf.WriteSectionHeader(wire.TextBlobBufferTag, uint32(n))
		for _, t := range pic.TextBlobs {
			t.Flatten(buf)
		}
	}
	if n := len(pic.Vertices); n > 0 {
		buf.WriteSectionHeader(wire.VerticesBufferTag, uint32(n))
		for _, v := range pic.Vertices {
			buf.WriteByteArray(v.Encode())
		}
	}
	if n := len(pic.Images); n > 0 {
		buf.WriteSectionHeader(wire.ImageBufferTag, uint32(n))
		for _, img := range pic.Images {
			img.Flatten(buf)
		}
	}
	// Drawables are folded into the primary resource section list here
	// rather than written only by a separate embedding-flavored path: this
	// archive format has exactly one encode path, and drawables are part
	// of the picture's data model regardless of how it is later used.
	if n := len(pic.Drawables); n > 0 {
		buf.WriteSectionHeader(wire.DrawableTag, uint32(n))
		for _, d := range pic.Drawables {
			buf.WriteFlattenable(d)
		}
	}
}
