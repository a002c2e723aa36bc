package wire

import "github.com/puzpuzpuz/xsync/v4"

// Registry is the process-wide, name-keyed factory table. Hosts populate it
// with calls to Register during process startup (typically from package
// init functions); the codec only ever reads it, and only during decode.
// xsync.Map gives us a lock-free read path once population has settled,
// matching the read-mostly access pattern the spec calls for.
type Registry struct {
	byName *xsync.Map[string, Factory]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: xsync.NewMap[string, Factory]()}
}

// Register associates name with factory. Registering the same name twice
// overwrites the previous factory; hosts should register each name once,
// at startup.
func (reg *Registry) Register(name string, factory Factory) {
	reg.byName.Store(name, factory)
}

// Lookup resolves name to its factory. A missing name is not itself an
// error: the spec requires unresolved names to produce a nil entry in the
// playback table, failing only if that entry is later invoked.
func (reg *Registry) Lookup(name string) (Factory, bool) {
	return reg.byName.Load(name)
}
