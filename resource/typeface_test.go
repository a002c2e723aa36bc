//go:build test

package resource

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archivewire/pictarc/wire"
)

func TestNewTypefaceRejectsGarbageBytes(t *testing.T) {
	_, err := NewTypeface([]byte("not a font"))
	require.Error(t, err)
}

func TestDeserializeTypefaceConsumesBytesEvenOnParseFailure(t *testing.T) {
	garbage := &Typeface{data: []byte("not a font either")}

	var buf bytes.Buffer
	w, _ := wire.NewWriter(&buf)
	require.NoError(t, garbage.Serialize(w))
	w.Result()
	buf.WriteByte(0xFF) // a sentinel byte after the typeface, to prove framing stayed correct

	r, _ := wire.NewReaderSize(&buf, 16)
	tf, ok := DeserializeTypeface(r)
	require.False(t, ok)
	require.Nil(t, tf)

	sentinel, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0xFF), sentinel)
}

func TestDefaultTypefaceSubstitutionIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	w, _ := wire.NewWriter(&buf)
	require.NoError(t, defaultTypeface.Serialize(w))
	w.Result()

	r, _ := wire.NewReaderSize(&buf, 16)
	tf, ok := DeserializeTypeface(r)
	require.False(t, ok)
	require.Nil(t, tf)
}
