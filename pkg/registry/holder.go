package registry

import (
	"github.com/teardown-go/teardown/pkg/disposer"
)

// holderSlot is the single fixed entry key a Holder uses internally.
type holderSlot struct{}

// Holder is a degenerate registry holding at most one disposal primitive.
// Setting a new value flushes the previous occupant first.
type Holder struct {
	reg *Registry
}

var _ disposer.Disposer = (*Holder)(nil)

// NewHolder creates an empty single-slot holder.
func NewHolder(opts ...Option) *Holder {
	return &Holder{reg: New(opts...)}
}

// Set stores v as the held primitive, flushing whatever was held before.
// Setting nil just flushes. Returns v for chaining.
func (h *Holder) Set(v interface{}) interface{} {
	if v == nil {
		h.reg.Flush(holderSlot{})
		return nil
	}
	return h.reg.AddKeyed(holderSlot{}, v)
}

// Make runs the factory and holds a non-nil result, flushing the previous
// occupant. A nil result registers nothing and leaves the current occupant
// untouched. Returns the result.
func (h *Holder) Make(fn func() interface{}) interface{} {
	if fn == nil {
		return nil
	}
	v := fn()
	if v == nil {
		return nil
	}
	return h.Set(v)
}

// Get returns the held primitive, if any.
func (h *Holder) Get() (interface{}, bool) {
	return h.reg.Get(holderSlot{})
}

// IsEmpty reports whether nothing is held.
func (h *Holder) IsEmpty() bool {
	return h.reg.Len() == 0
}

// Remove drops the held primitive without invoking it.
func (h *Holder) Remove() bool {
	return h.reg.Remove(holderSlot{})
}

// Dispose flushes the held primitive, if any. The holder stays reusable.
func (h *Holder) Dispose() {
	h.reg.Dispose()
}
