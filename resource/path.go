package resource

import (
	"golang.org/x/image/math/fixed"

	"github.com/archivewire/pictarc/wire"
)

// Path is an ordered sequence of points in 26.6 fixed-point space. Its
// bounds are cached rather than stored on the wire: InitForPlayback
// materializes them once, right after decode, so nothing downstream ever
// observes an uncomputed cache.
type Path struct {
	Points []fixed.Point26_6

	bounds      fixed.Rectangle26_6
	boundsValid bool
}

// NewPath wraps points as a path with no bounds cache yet.
func NewPath(points []fixed.Point26_6) *Path {
	return &Path{Points: points}
}

// UpdateBoundsCache computes the path's bounding rectangle if it hasn't
// been computed already. Safe to call more than once.
func (p *Path) UpdateBoundsCache() {
	if p.boundsValid {
		return
	}
	if len(p.Points) == 0 {
		p.bounds = fixed.Rectangle26_6{}
		p.boundsValid = true
		return
	}
	min, max := p.Points[0], p.Points[0]
	for _, pt := range p.Points[1:] {
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	p.bounds = fixed.Rectangle26_6{Min: min, Max: max}
	p.boundsValid = true
}

// Bounds returns the cached bounding rectangle. It is the zero rectangle
// until UpdateBoundsCache has run.
func (p *Path) Bounds() fixed.Rectangle26_6 { return p.bounds }

// Flatten writes the point count and every point. The bounds cache is
// never written; it is derived data.
func (p *Path) Flatten(buf *wire.FlattenBuffer) {
	buf.WriteUint32(uint32(len(p.Points)))
	for _, pt := range p.Points {
		buf.WriteInt32(int32(pt.X))
		buf.WriteInt32(int32(pt.Y))
	}
}

// ReadPath reads one path from buf. Point count is validated against the
// remaining buffer size before it is used to size the slice.
func ReadPath(buf *wire.UnflattenBuffer) (*Path, bool) {
	n := buf.ReadUint32()
	if !buf.FitsInInt32(n) || !buf.CanReadN(n, 8) {
		return nil, false
	}
	points := make([]fixed.Point26_6, 0, n)
	for i := uint32(0); i < n; i++ {
		x := buf.ReadInt32()
		y := buf.ReadInt32()
		if !buf.IsValid() {
			return nil, false
		}
		points = append(points, fixed.Point26_6{X: fixed.Int26_6(x), Y: fixed.Int26_6(y)})
	}
	return &Path{Points: points}, true
}
