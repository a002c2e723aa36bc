package resource

import (
	"golang.org/x/image/math/fixed"

	"github.com/archivewire/pictarc/wire"
)

// GlyphRun is a run of glyphs sharing one paint, each with its own
// position. The archive stores positions as absolute coordinates rather
// than advances, so a consumer never needs to re-run text shaping to
// place them.
type GlyphRun struct {
	Glyphs    []uint16
	Positions []fixed.Point26_6
}

// TextBlob is an ordered sequence of glyph runs.
type TextBlob struct {
	Runs []GlyphRun
}

// Flatten writes the run count followed by each run's glyph/position
// pairs.
func (t *TextBlob) Flatten(buf *wire.FlattenBuffer) {
	buf.WriteUint32(uint32(len(t.Runs)))
	for _, run := range t.Runs {
		buf.WriteUint32(uint32(len(run.Glyphs)))
		for i, g := range run.Glyphs {
			buf.WriteUint32(uint32(g))
			buf.WriteInt32(int32(run.Positions[i].X))
			buf.WriteInt32(int32(run.Positions[i].Y))
		}
	}
}

// ReadTextBlob reads one text blob from buf. Every count is validated
// against the remaining buffer size before it sizes an allocation.
func ReadTextBlob(buf *wire.UnflattenBuffer) (*TextBlob, bool) {
	runCount := buf.ReadUint32()
	if !buf.FitsInInt32(runCount) || !buf.CanReadN(runCount, 4) {
		return nil, false
	}
	blob := &TextBlob{Runs: make([]GlyphRun, 0, runCount)}
	for i := uint32(0); i < runCount; i++ {
		glyphCount := buf.ReadUint32()
		if !buf.FitsInInt32(glyphCount) || !buf.CanReadN(glyphCount, 12) {
			return nil, false
		}
		run := GlyphRun{
			Glyphs:    make([]uint16, glyphCount),
			Positions: make([]fixed.Point26_6, glyphCount),
		}
		for j := uint32(0); j < glyphCount; j++ {
			g := buf.ReadUint32()
			x := buf.ReadInt32()
			y := buf.ReadInt32()
			if !buf.IsValid() {
				return nil, false
			}
			run.Glyphs[j] = uint16(g)
			run.Positions[j] = fixed.Point26_6{X: fixed.Int26_6(x), Y: fixed.Int26_6(y)}
		}
		blob.Runs = append(blob.Runs, run)
	}
	return blob, true
}
