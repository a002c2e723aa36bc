package resource

import (
	"image/color"

	"golang.org/x/image/math/fixed"

	"github.com/archivewire/pictarc/wire"
)

// BlendMode selects how a paint's color combines with the destination.
// The archive treats it as an opaque small integer; interpreting it is a
// renderer's job.
type BlendMode uint8

// Paint carries the styling used to execute a drawing op: color, stroke
// width, blend mode, anti-aliasing, and an optional typeface for text ops.
// It has no variable-length fields of its own beyond the typeface
// reference, so it flattens to a fixed handful of words.
type Paint struct {
	Color       color.RGBA
	BlendMode   BlendMode
	StrokeWidth fixed.Int26_6
	AntiAlias   bool
	Typeface    *Typeface // nil unless this paint is used for text
}

// Flatten writes the paint's payload into buf.
func (p *Paint) Flatten(buf *wire.FlattenBuffer) {
	buf.WriteUint32(argbOf(p.Color))
	buf.WriteInt32(int32(p.StrokeWidth))
	buf.WriteBool(p.AntiAlias)
	buf.WritePackedUint(uint32(p.BlendMode))
	hasTypeface := p.Typeface != nil
	buf.WriteBool(hasTypeface)
	if hasTypeface {
		buf.WriteTypefaceRef(p.Typeface)
	}
}

// ReadPaint reads one paint from buf.
func ReadPaint(buf *wire.UnflattenBuffer) (*Paint, bool) {
	argb := buf.ReadUint32()
	strokeWidth := buf.ReadInt32()
	aa := buf.ReadBool()
	blend := buf.ReadPackedUint()
	hasTypeface := buf.ReadBool()
	if !buf.IsValid() {
		return nil, false
	}

	p := &Paint{
		Color:       colorOf(argb),
		BlendMode:   BlendMode(blend),
		StrokeWidth: fixed.Int26_6(strokeWidth),
		AntiAlias:   aa,
	}
	if hasTypeface {
		tf, ok := buf.ReadTypefaceRef()
		if !ok {
			return nil, false
		}
		face, ok := tf.(*Typeface)
		if !ok {
			return nil, buf.Validate(false)
		}
		p.Typeface = face
	}
	return p, buf.IsValid()
}

func argbOf(c color.RGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func colorOf(argb uint32) color.RGBA {
	return color.RGBA{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}
