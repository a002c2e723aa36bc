package archive

import (
	"io"

	"github.com/archivewire/pictarc/picture"
	"github.com/archivewire/pictarc/resource"
	"github.com/archivewire/pictarc/wire"
)

// LegacyTypefaceVersion is the last archive format version whose encoder
// wrote a TYPEFACE section per sub-picture instead of one shared section
// at the top level. Decode doesn't actually branch on the version number
// -- it just prefers a sub-picture's own playback table when one was
// populated, and falls back to the top-level one otherwise -- but the
// constant documents which era of file that fallback exists for.
const LegacyTypefaceVersion = 43

// Decode reconstructs a picture and every sub-picture it contains from an
// archive stream.
func Decode(r io.Reader) (*picture.Data, error) {
	sr, err := wire.NewReaderSize(r, 4096)
	if err != nil {
		return nil, err
	}
	pic, err := decode(sr, nil)
	if err != nil {
		return nil, err
	}
	pic.InitForPlayback()
	return pic, nil
}

func decode(r *wire.Reader, topLevelTypefaces *wire.TypefacePlayback) (*picture.Data, error) {
	var info picture.Info
	if _, err := info.ReadFrom(r); err != nil {
		return nil, err
	}
	if !info.ValidMagic() {
		return nil, wire.ErrInvalidFraming
	}

	pic := &picture.Data{Info: info}
	var sawFactory bool

	for {
		var tagWord uint32
		r.ReadUint32(&tagWord)
		if err := r.Err(); err != nil {
			return nil, err
		}
		tag := wire.Tag(tagWord)
		if tag == wire.EOFTag {
			break
		}

		var size uint32
		r.ReadUint32(&size)
		if err := r.Err(); err != nil {
			return nil, err
		}
		if !wire.FitsInInt32(size) {
			return nil, wire.ErrInvalidFraming
		}

		switch tag {
		case wire.ReaderTag:
			if pic.OpData != nil {
				return nil, wire.ErrDuplicateOpData
			}
			data, err := readSizedSection(r, size)
			if err != nil {
				return nil, err
			}
			pic.OpData = data

		case wire.FactoryTag:
			playback, err := wire.ReadFactorySection(r, resource.Registry)
			if err != nil {
				return nil, err
			}
			pic.Factories = playback
			sawFactory = true

		case wire.TypefaceTag:
			playback, err := wire.ReadTypefaceSection(r, size, resource.DeserializeTypeface, resource.DefaultTypeface)
			if err != nil {
				return nil, err
			}
			pic.Typefaces = playback

		case wire.PictureTag:
			childTypefaces := pic.Typefaces
			if !childTypefaces.Populated() {
				childTypefaces = topLevelTypefaces
			}
			for i := uint32(0); i < size; i++ {
				child, err := decode(r, childTypefaces)
				if err != nil {
					return nil, err
				}
				pic.SubPictures = append(pic.SubPictures, child)
			}

		case wire.BufferSizeTag:
			if !sawFactory {
				return nil, wire.ErrMissingFactorySection
			}
			body, err := readSizedSection(r, size)
			if err != nil {
				return nil, err
			}
			typefaces := pic.Typefaces
			if !typefaces.Populated() {
				typefaces = topLevelTypefaces
			}
			buf := wire.NewUnflattenBuffer(body, info.Version(), pic.Factories, typefaces)
			if err := parseBuffer(buf, pic); err != nil {
				return nil, err
			}

		default:
			// Unknown outer tags are forward-compatibility noise by
			// design: a newer encoder may add sections an older decoder
			// doesn't understand, and skipping them (rather than
			// rejecting the whole archive) is what keeps old readers
			// working against new files. The declared size still has to
			// be discarded so the next tag header lines up correctly.
			if _, err := wire.Discard(r, int64(size)); err != nil {
				return nil, err
			}
		}
	}

	if pic.OpData == nil {
		return nil, wire.ErrMissingOpData
	}
	return pic, nil
}

// readSizedSection reads exactly size bytes from r. It never preallocates
// a buffer of the declared size up front -- io.ReadAll over a bounded
// LimitReader only grows proportionally to what the stream actually
// yields, so a forged, oversized length field fails cheaply on truncation
// instead of attempting a multi-gigabyte allocation.
func readSizedSection(r *wire.Reader, size uint32) ([]byte, error) {
	data, err := io.ReadAll(wire.LimitReader(r, int64(size)))
	if err != nil {
		return nil, err
	}
	if uint32(len(data)) != size {
		return nil, wire.ErrTruncatedData
	}
	return data, nil
}

// parseBuffer dispatches the tag-framed sections inside a picture's
// BUFFER_SIZE_TAG payload: paints, paths, text blobs, vertices, images,
// and drawables. Unlike the outer loop, an unrecognized tag here is
// fatal -- this buffer's layout is fully under this decoder's control, so
// an unknown tag means corruption, not a forward-compatible extension.
func parseBuffer(buf *wire.UnflattenBuffer, pic *picture.Data) error {
	for !buf.EOF() && buf.IsValid() {
		tag, size := buf.ReadTagSize()
		if !buf.IsValid() {
			break
		}

		switch tag {
		case wire.PaintBufferTag:
			count := size
			if !buf.FitsInInt32(count) {
				break
			}
			paints := make([]*resource.Paint, 0, count)
			for i := uint32(0); i < count && buf.IsValid(); i++ {
				p, ok := resource.ReadPaint(buf)
				if !ok {
					paints = nil
					buf.Validate(false)
					break
				}
				paints = append(paints, p)
			}
			pic.Paints = paints

		case wire.PathBufferTag:
			_ = size // the section header's count; the redundant count below is authoritative
			redundantCount := buf.ReadUint32()
			if !buf.IsValid() || !buf.FitsInInt32(redundantCount) {
				break
			}
			paths := make([]*resource.Path, 0, redundantCount)
			for i := uint32(0); i < redundantCount && buf.IsValid(); i++ {
				p, ok := resource.ReadPath(buf)
				if !ok {
					paths = nil
					buf.Validate(false)
					break
				}
				paths = append(paths, p)
			}
			pic.Paths = paths

		case wire.TextBlobBufferTag:
			count := size
			if !buf.FitsInInt32(count) {
				break
			}
			blobs := make([]*resource.TextBlob, 0, count)
			for i := uint32(0); i < count && buf.IsValid(); i++ {
				t, ok := resource.ReadTextBlob(buf)
				if !ok {
					blobs = nil
					buf.Validate(false)
					break
				}
				blobs = append(blobs, t)
			}
			pic.TextBlobs = blobs

		case wire.VerticesBufferTag:
			count := size
			if !buf.FitsInInt32(count) {
				break
			}
			all := make([]*resource.Vertices, 0, count)
			for i := uint32(0); i < count && buf.IsValid(); i++ {
				data, ok := buf.ReadByteArray()
				if !ok {
					all = nil
					buf.Validate(false)
					break
				}
				v, ok := resource.DecodeVertices(data)
				if !ok {
					all = nil
					buf.Validate(false)
					break
				}
				all = append(all, v)
			}
			pic.Vertices = all

		case wire.ImageBufferTag:
			count := size
			if !buf.FitsInInt32(count) {
				break
			}
			images := make([]*resource.Image, 0, count)
			for i := uint32(0); i < count && buf.IsValid(); i++ {
				img, ok := resource.ReadImage(buf)
				if !ok {
					images = nil
					buf.Validate(false)
					break
				}
				images = append(images, img)
			}
			pic.Images = images

		case wire.DrawableTag:
			count := size
			if !buf.FitsInInt32(count) {
				break
			}
			drawables := make([]resource.Drawable, 0, count)
			for i := uint32(0); i < count && buf.IsValid(); i++ {
				f, ok := buf.ReadFlattenable()
				if !ok {
					drawables = nil
					buf.Validate(false)
					break
				}
				d, ok := f.(resource.Drawable)
				if !ok {
					drawables = nil
					buf.Validate(false)
					break
				}
				drawables = append(drawables, d)
			}
			pic.Drawables = drawables

		// READER_TAG and PICTURE_TAG are recognized here only because
		// the outer dispatch shares this switch's tag space with an
		// archive-embedding variant this package doesn't implement;
		// this encoder never emits either tag inside a BUFFER_SIZE_TAG
		// payload.
		case wire.ReaderTag, wire.PictureTag:
			buf.Validate(false)

		default:
			buf.Validate(false)
		}
	}
	if !buf.IsValid() {
		return wire.ErrInvalidFraming
	}
	return nil
}
