//go:build test

package resource

import (
	"image/color"
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/stretchr/testify/require"

	"github.com/archivewire/pictarc/wire"
)

func TestPaintRoundTrip(t *testing.T) {
	factories := wire.NewFactorySet()
	typefaces := wire.NewTypefaceSet()
	flat := wire.NewFlattenBuffer(factories, typefaces)
	defer flat.Release()

	original := &Paint{
		Color:       color.RGBA{R: 10, G: 20, B: 30, A: 255},
		BlendMode:   3,
		StrokeWidth: fixed.I(2),
		AntiAlias:   true,
	}
	original.Flatten(flat)
	require.NoError(t, flat.Err())

	unflat := wire.NewUnflattenBuffer(flat.Bytes(), 50, nil, nil)
	got, ok := ReadPaint(unflat)
	require.True(t, ok)
	require.True(t, unflat.IsValid())
	require.Equal(t, original.Color, got.Color)
	require.Equal(t, original.BlendMode, got.BlendMode)
	require.Equal(t, original.StrokeWidth, got.StrokeWidth)
	require.Equal(t, original.AntiAlias, got.AntiAlias)
	require.Nil(t, got.Typeface)
}

func TestPaintRoundTripWithTypefaceFallsBackToDefault(t *testing.T) {
	// A zero-value Typeface carries no font bytes, so it fails to parse
	// back on decode; the playback table must substitute the process
	// default rather than leaving a nil entry.
	tf := &Typeface{}

	factories := wire.NewFactorySet()
	typefaces := wire.NewTypefaceSet()
	flat := wire.NewFlattenBuffer(factories, typefaces)
	defer flat.Release()

	original := &Paint{Color: color.RGBA{A: 255}, Typeface: tf}
	original.Flatten(flat)
	require.NoError(t, flat.Err())

	unflat := wire.NewUnflattenBuffer(flat.Bytes(), 50, nil, singleTypefacePlayback(tf))
	got, ok := ReadPaint(unflat)
	require.True(t, ok)
	require.True(t, unflat.IsValid())
	require.Same(t, DefaultTypeface(), got.Typeface)
}
