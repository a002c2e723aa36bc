//go:build test

package resource

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"

	"github.com/archivewire/pictarc/wire"
)

func TestTextBlobRoundTrip(t *testing.T) {
	blob := &TextBlob{Runs: []GlyphRun{
		{
			Glyphs:    []uint16{3, 7, 11},
			Positions: []fixed.Point26_6{{X: fixed.I(0)}, {X: fixed.I(8)}, {X: fixed.I(16)}},
		},
		{
			Glyphs:    []uint16{1},
			Positions: []fixed.Point26_6{{X: fixed.I(0), Y: fixed.I(20)}},
		},
	}}

	factories := wire.NewFactorySet()
	typefaces := wire.NewTypefaceSet()
	flat := wire.NewFlattenBuffer(factories, typefaces)
	defer flat.Release()
	blob.Flatten(flat)
	require.NoError(t, flat.Err())

	unflat := wire.NewUnflattenBuffer(flat.Bytes(), 1, nil, nil)
	got, ok := ReadTextBlob(unflat)
	require.True(t, ok)
	require.Equal(t, blob, got)
}

func TestTextBlobRejectsOversizedGlyphCount(t *testing.T) {
	factories := wire.NewFactorySet()
	typefaces := wire.NewTypefaceSet()
	flat := wire.NewFlattenBuffer(factories, typefaces)
	defer flat.Release()

	flat.WriteUint32(1)          // run count
	flat.WriteUint32(0xFFFFFFFF) // forged glyph count for the only run
	require.NoError(t, flat.Err())

	unflat := wire.NewUnflattenBuffer(flat.Bytes(), 1, nil, nil)
	_, ok := ReadTextBlob(unflat)
	require.False(t, ok)
}
