package archive

import (
	"io"

	"github.com/archivewire/pictarc/picture"
	"github.com/archivewire/pictarc/wire"
)

// Sniff reports whether r begins with a valid archive header, without
// consuming any bytes from r. It returns a reader that must be used in
// r's place afterward, since peeking requires buffering whatever was read
// ahead.
func Sniff(r io.Reader) (ok bool, peeked io.Reader, err error) {
	pr := wire.PeekReader(r)
	header, err := pr.Peek(8) // magic + version, the first two fields of picture.Info
	if err != nil && err != io.EOF {
		return false, pr, err
	}
	if len(header) < 8 {
		return false, pr, nil
	}
	magic := wire.Order.Uint32(header[0:4])
	return magic == picture.Magic, pr, nil
}
