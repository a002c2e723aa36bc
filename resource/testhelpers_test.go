//go:build test

package resource

import (
	"bytes"

	"github.com/archivewire/pictarc/wire"
)

// singleTypefacePlayback builds a one-entry TypefacePlayback containing tf,
// round-tripping it through the real Serialize/Deserialize path so tests
// exercise the same code a decode would.
func singleTypefacePlayback(tf *Typeface) *wire.TypefacePlayback {
	var buf bytes.Buffer
	w, _ := wire.NewWriter(&buf)
	_ = tf.Serialize(w)
	w.Result()

	r, _ := wire.NewReaderSize(&buf, 16)
	playback, err := wire.ReadTypefaceSection(r, 1, DeserializeTypeface, DefaultTypeface)
	if err != nil {
		panic(err)
	}
	return playback
}
