package wire

// FactorySet collects, in first-appearance order, every factory name
// referenced by a polymorphic resource while a picture is being flattened.
// The empty string is a valid, distinct entry.
type FactorySet struct {
	index map[string]uint32
	names []string
}

// NewFactorySet creates an empty recorder.
func NewFactorySet() *FactorySet {
	return &FactorySet{index: make(map[string]uint32)}
}

// Add registers name if this is its first appearance and returns its
// stable index within the set.
func (s *FactorySet) Add(name string) uint32 {
	if idx, ok := s.index[name]; ok {
		return idx
	}
	idx := uint32(len(s.names))
	s.index[name] = idx
	s.names = append(s.names, name)
	return idx
}

// Count returns the number of distinct factory names recorded so far.
func (s *FactorySet) Count() int { return len(s.names) }

// sectionSize computes the FACTORY section's payload size: the spec calls
// this value informational, asserted correct against the bytes actually
// written.
func (s *FactorySet) sectionSize() uint32 {
	size := uint32(4) // the count field
	for _, name := range s.names {
		size += uint32(SizeOfPackedUint(uint32(len(name)))) + uint32(len(name))
	}
	return size
}

// WriteTo emits the FACTORY section to the outer archive stream: a
// tag/size header, the count, then one packed-length name per entry.
func (s *FactorySet) WriteTo(w *Writer) error {
	WriteTagSize(w, FactoryTag, s.sectionSize())
	before := w.Count()
	w.WriteUint32(uint32(len(s.names)))
	for _, name := range s.names {
		w.WritePackedUint(uint32(len(name)))
		w.WriteString(name)
	}
	if err := w.Err(); err != nil {
		return err
	}
	if written := uint32(w.Count() - before); written != s.sectionSize() {
		return ErrFactorySectionSize
	}
	return nil
}

// FactoryPlayback is the decode-side index -> factory table built from a
// FACTORY section. An entry whose name has no global registration resolves
// to a nil factory; the archive only becomes invalid if that entry is
// later invoked by a resource reference.
type FactoryPlayback struct {
	factories []Factory
}

// ReadFactorySection reads a FACTORY section's body (the count and every
// name) from r, resolving each name against registry. The tag/size header
// must already have been consumed by the caller; the declared section size
// is informational only -- the real count follows as its own u32.
func ReadFactorySection(r *Reader, registry *Registry) (*FactoryPlayback, error) {
	var count uint32
	r.ReadUint32(&count)
	if err := r.Err(); err != nil {
		return nil, err
	}
	if !FitsInInt32(count) {
		return nil, ErrInvalidFraming
	}
	playback := &FactoryPlayback{factories: make([]Factory, count)}
	for i := uint32(0); i < count; i++ {
		var length uint32
		r.ReadPackedUint(&length)
		if err := r.Err(); err != nil {
			return nil, err
		}
		nameBytes := r.ReadBytes(int(length))
		if err := r.Err(); err != nil {
			return nil, err
		}
		factory, _ := registry.Lookup(string(nameBytes))
		playback.factories[i] = factory
	}
	return playback, nil
}

// Lookup resolves index to a factory. It fails if the index is out of
// range or if the name at that index was never registered.
func (p *FactoryPlayback) Lookup(index uint32) (Factory, bool) {
	if p == nil || index >= uint32(len(p.factories)) {
		return nil, false
	}
	f := p.factories[index]
	return f, f != nil
}

// Count returns the number of entries in the playback table.
func (p *FactoryPlayback) Count() int {
	if p == nil {
		return 0
	}
	return len(p.factories)
}
