//go:build test

package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackedUintRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 254, 255, 256, 1 << 20, 0xFFFFFFFF} {
		var buf bytes.Buffer
		w, _ := NewWriter(&buf)
		w.WritePackedUint(v)
		_, err := w.Result()
		require.NoError(t, err)
		require.Equal(t, SizeOfPackedUint(v), buf.Len())

		r, _ := NewReaderSize(&buf, 16)
		var got uint32
		r.ReadPackedUint(&got)
		require.NoError(t, r.Err())
		require.Equal(t, v, got)
	}
}

func TestTagSizeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf)
	WriteTagSize(w, PaintBufferTag, 42)
	_, err := w.Result()
	require.NoError(t, err)

	r, _ := NewReaderSize(&buf, 16)
	tag, size, err := ReadTagSize(r)
	require.NoError(t, err)
	require.Equal(t, PaintBufferTag, tag)
	require.EqualValues(t, 42, size)
}

func TestFitsInInt32(t *testing.T) {
	require.True(t, FitsInInt32(0))
	require.True(t, FitsInInt32(0x7fffffff))
	require.False(t, FitsInInt32(0x80000000))
	require.False(t, FitsInInt32(0xffffffff))
}

func TestFactorySetRoundTrip(t *testing.T) {
	set := NewFactorySet()
	idxA := set.Add("pictarc.RectDrawable")
	idxB := set.Add("pictarc.GroupDrawable")
	idxAAgain := set.Add("pictarc.RectDrawable")
	require.EqualValues(t, 0, idxA)
	require.EqualValues(t, 1, idxB)
	require.Equal(t, idxA, idxAAgain)
	require.Equal(t, 2, set.Count())

	var buf bytes.Buffer
	w, _ := NewWriter(&buf)
	require.NoError(t, set.WriteTo(w))
	_, err := w.Result()
	require.NoError(t, err)

	r, _ := NewReaderSize(&buf, 16)
	tag, _, err := ReadTagSize(r)
	require.NoError(t, err)
	require.Equal(t, FactoryTag, tag)

	registry := NewRegistry()
	registry.Register("pictarc.RectDrawable", func(buf *UnflattenBuffer) (Flattenable, bool) { return nil, true })

	playback, err := ReadFactorySection(r, registry)
	require.NoError(t, err)
	require.Equal(t, 2, playback.Count())

	_, ok := playback.Lookup(0)
	require.True(t, ok, "registered name must resolve")
	_, ok = playback.Lookup(1)
	require.False(t, ok, "unregistered name must resolve to a missing factory")
	_, ok = playback.Lookup(99)
	require.False(t, ok, "out of range index must fail")
}

type stubTypeface struct{ id int }

func (s *stubTypeface) Serialize(w *Writer) error {
	w.WriteInt32(int32(s.id))
	return w.Err()
}

func TestTypefaceSetDedupesByIdentity(t *testing.T) {
	set := NewTypefaceSet()
	a := &stubTypeface{id: 1}
	b := &stubTypeface{id: 2}

	idxA1 := set.Add(a)
	idxB := set.Add(b)
	idxA2 := set.Add(a)
	require.Equal(t, idxA1, idxA2)
	require.NotEqual(t, idxA1, idxB)
	require.Equal(t, 2, set.Count())
}

func TestTypefacePlaybackSubstitutesDefaultOnFailure(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf)
	require.NoError(t, (&stubTypeface{id: 7}).Serialize(w))
	_, err := w.Result()
	require.NoError(t, err)

	r, _ := NewReaderSize(&buf, 16)
	fail := func(r *Reader) (Typeface, bool) { return nil, false }
	deflt := &stubTypeface{id: -1}
	playback, err := ReadTypefaceSection(r, 1, fail, func() Typeface { return deflt })
	require.NoError(t, err)
	tf, ok := playback.Lookup(0)
	require.True(t, ok)
	require.Same(t, deflt, tf)
}

func TestUnflattenBufferCanReadNRejectsForgedLength(t *testing.T) {
	buf := NewUnflattenBuffer([]byte{1, 2, 3, 4}, 1, nil, nil)
	require.False(t, buf.CanReadN(1<<30, 8))
	require.False(t, buf.IsValid())
}

func TestFlattenUnflattenByteArrayRoundTrip(t *testing.T) {
	factories := NewFactorySet()
	typefaces := NewTypefaceSet()
	flat := NewFlattenBuffer(factories, typefaces)
	defer flat.Release()

	flat.WriteByteArray([]byte("hello"))
	require.NoError(t, flat.Err())

	unflat := NewUnflattenBuffer(flat.Bytes(), 1, nil, nil)
	data, ok := unflat.ReadByteArray()
	require.True(t, ok)
	require.Equal(t, []byte("hello"), data)
}
