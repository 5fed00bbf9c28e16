package registry

import (
	"github.com/teardown-go/teardown/pkg/disposer"
)

// Keyed is a degenerate registry that always requires explicit keys. It
// carries all Registry invariants: flush-on-replace, insertion-order
// disposal, error isolation, at-most-once invocation.
type Keyed struct {
	reg *Registry
}

var _ disposer.Disposer = (*Keyed)(nil)

// NewKeyed creates an empty explicit-key registry.
func NewKeyed(opts ...Option) *Keyed {
	return &Keyed{reg: New(opts...)}
}

// Len returns the count of live entries.
func (m *Keyed) Len() int { return m.reg.Len() }

// Has reports whether an entry is registered under key.
func (m *Keyed) Has(key interface{}) bool { return m.reg.Has(key) }

// Get looks up an entry without removing it.
func (m *Keyed) Get(key interface{}) (interface{}, bool) { return m.reg.Get(key) }

// Set registers v under key, flushing any previous occupant. Returns v.
func (m *Keyed) Set(key, v interface{}) interface{} {
	if key == nil || v == nil {
		return nil
	}
	return m.reg.AddKeyed(key, v)
}

// Make runs the factory and registers a non-nil result under key.
func (m *Keyed) Make(key interface{}, fn func() interface{}) interface{} {
	if key == nil || fn == nil {
		return nil
	}
	v := fn()
	if v == nil {
		return nil
	}
	return m.reg.AddKeyed(key, v)
}

// Remove deletes the entry under key without invoking it.
func (m *Keyed) Remove(key interface{}) bool { return m.reg.Remove(key) }

// Flush removes and invokes the entry under key.
func (m *Keyed) Flush(key interface{}) { m.reg.Flush(key) }

// Dispose flushes every entry in insertion order and leaves the registry
// empty and reusable.
func (m *Keyed) Dispose() { m.reg.Dispose() }
