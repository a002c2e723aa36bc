package resource

import (
	"math"

	"github.com/archivewire/pictarc/wire"
)

// Drawable is a polymorphic, replayable resource. Unlike paints, paths,
// text blobs, and images -- each of which has a dedicated, non-polymorphic
// wire shape -- a drawable's concrete type is resolved at decode time
// through the factory registry, because the set of drawable kinds a host
// application defines is open-ended.
type Drawable interface {
	wire.Flattenable
}

// Registry is the process-wide factory table drawables register
// themselves into. Decoding a DRAWABLE_TAG section consults it through the
// archive's FACTORY section, exactly as the factory registry is meant to
// be used.
var Registry = wire.NewRegistry()

func init() {
	Registry.Register("pictarc.RectDrawable", newRectDrawable)
	Registry.Register("pictarc.GroupDrawable", newGroupDrawable)
}

// RectDrawable draws a single filled rectangle. It is the simplest
// drawable kind and mostly exists to exercise the factory machinery.
type RectDrawable struct {
	Left, Top, Right, Bottom float32
}

func (d *RectDrawable) FactoryName() string { return "pictarc.RectDrawable" }

func (d *RectDrawable) Flatten(buf *wire.FlattenBuffer) {
	buf.WriteUint32(math.Float32bits(d.Left))
	buf.WriteUint32(math.Float32bits(d.Top))
	buf.WriteUint32(math.Float32bits(d.Right))
	buf.WriteUint32(math.Float32bits(d.Bottom))
}

func newRectDrawable(buf *wire.UnflattenBuffer) (wire.Flattenable, bool) {
	left := math.Float32frombits(buf.ReadUint32())
	top := math.Float32frombits(buf.ReadUint32())
	right := math.Float32frombits(buf.ReadUint32())
	bottom := math.Float32frombits(buf.ReadUint32())
	if !buf.IsValid() {
		return nil, false
	}
	return &RectDrawable{Left: left, Top: top, Right: right, Bottom: bottom}, true
}

// GroupDrawable composes other drawables into one unit, recursing through
// the same factory indirection as its children.
type GroupDrawable struct {
	Children []Drawable
}

func (d *GroupDrawable) FactoryName() string { return "pictarc.GroupDrawable" }

func (d *GroupDrawable) Flatten(buf *wire.FlattenBuffer) {
	buf.WriteUint32(uint32(len(d.Children)))
	for _, child := range d.Children {
		buf.WriteFlattenable(child)
	}
}

func newGroupDrawable(buf *wire.UnflattenBuffer) (wire.Flattenable, bool) {
	n := buf.ReadUint32()
	if !buf.FitsInInt32(n) {
		return nil, false
	}
	children := make([]Drawable, 0, n)
	for i := uint32(0); i < n; i++ {
		child, ok := buf.ReadFlattenable()
		if !ok {
			return nil, false
		}
		d, ok := child.(Drawable)
		if !ok {
			return nil, buf.Validate(false)
		}
		children = append(children, d)
	}
	return &GroupDrawable{Children: children}, true
}
