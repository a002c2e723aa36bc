//go:build test

package resource

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archivewire/pictarc/wire"
)

// writeFactoriesAndReadBack emits factories to a scratch stream and
// immediately reads them back through the registry, mirroring the
// FACTORY-section-before-BUFFER_SIZE ordering the archive format
// requires.
func writeFactoriesAndReadBack(t *testing.T, factories *wire.FactorySet) *wire.FactoryPlayback {
	t.Helper()
	var buf bytes.Buffer
	w, _ := wire.NewWriter(&buf)
	require.NoError(t, factories.WriteTo(w))
	_, err := w.Result()
	require.NoError(t, err)

	r, _ := wire.NewReaderSize(&buf, 16)
	_, _, err = wire.ReadTagSize(r)
	require.NoError(t, err)
	playback, err := wire.ReadFactorySection(r, Registry)
	require.NoError(t, err)
	return playback
}

func TestRectDrawableRoundTripThroughRegistry(t *testing.T) {
	rect := &RectDrawable{Left: 1, Top: 2, Right: 30, Bottom: 40}

	factories := wire.NewFactorySet()
	typefaces := wire.NewTypefaceSet()
	flat := wire.NewFlattenBuffer(factories, typefaces)
	defer flat.Release()
	flat.WriteFlattenable(rect)
	require.NoError(t, flat.Err())

	playback := writeFactoriesAndReadBack(t, factories)

	unflat := wire.NewUnflattenBuffer(flat.Bytes(), 1, playback, nil)
	got, ok := unflat.ReadFlattenable()
	require.True(t, ok)
	require.Equal(t, rect, got)
}

func TestGroupDrawableRecursesThroughFactory(t *testing.T) {
	group := &GroupDrawable{Children: []Drawable{
		&RectDrawable{Left: 0, Top: 0, Right: 1, Bottom: 1},
		&RectDrawable{Left: 2, Top: 2, Right: 3, Bottom: 3},
	}}

	factories := wire.NewFactorySet()
	typefaces := wire.NewTypefaceSet()
	flat := wire.NewFlattenBuffer(factories, typefaces)
	defer flat.Release()
	flat.WriteFlattenable(group)
	require.NoError(t, flat.Err())

	playback := writeFactoriesAndReadBack(t, factories)

	unflat := wire.NewUnflattenBuffer(flat.Bytes(), 1, playback, nil)
	got, ok := unflat.ReadFlattenable()
	require.True(t, ok)
	require.Equal(t, group, got)
}

func TestUnregisteredFactoryNameFailsOnInvocation(t *testing.T) {
	factories := wire.NewFactorySet()
	factories.Add("pictarc.NeverRegistered")

	emptyRegistry := wire.NewRegistry()
	var buf bytes.Buffer
	w, _ := wire.NewWriter(&buf)
	require.NoError(t, factories.WriteTo(w))
	_, err := w.Result()
	require.NoError(t, err)

	r, _ := wire.NewReaderSize(&buf, 16)
	_, _, err = wire.ReadTagSize(r)
	require.NoError(t, err)
	playback, err := wire.ReadFactorySection(r, emptyRegistry)
	require.NoError(t, err)

	_, ok := playback.Lookup(0)
	require.False(t, ok)
}
