package registry

import (
	stderrors "errors"
	"reflect"
	"slices"

	"github.com/teardown-go/teardown/pkg/disposer"
	"github.com/teardown-go/teardown/pkg/errors"
)

// Options control registry behavior.
type Options struct {
	// Name tags errors reported through the diagnostic sink so failures can
	// be traced to a specific registry. Optional.
	Name string

	// Reporter receives cleanup failures for this registry's entries. If
	// nil, the package-wide disposer sink is used.
	Reporter disposer.Reporter
}

// Option modifies Options.
type Option func(*Options)

// WithName sets the registry name used in reported errors.
func WithName(name string) Option { return func(o *Options) { o.Name = name } }

// WithReporter sets a per-registry diagnostic sink.
func WithReporter(r disposer.Reporter) Option { return func(o *Options) { o.Reporter = r } }

// slot is the opaque entry key minted for values that have no usable
// identity of their own (bare funcs, maps, slices).
type slot struct{ _ byte }

// Registry tracks disposal primitives by entry key in insertion order.
type Registry struct {
	name      string
	report    disposer.Reporter
	items     map[interface{}]interface{}
	order     []interface{}
	disposing bool
}

var _ disposer.Disposer = (*Registry)(nil)

// New creates an empty registry with the provided options.
func New(opts ...Option) *Registry {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	r := &Registry{
		name:  o.Name,
		items: make(map[interface{}]interface{}),
	}
	sink := o.Reporter
	r.report = func(err error) {
		var terr *errors.Error
		if r.name != "" && stderrors.As(err, &terr) {
			terr.WithDetail("registry", r.name)
		}
		if sink != nil {
			sink(err)
			return
		}
		disposer.Report(err)
	}
	return r
}

// Len returns the count of live entries.
func (r *Registry) Len() int {
	return len(r.items)
}

// Has reports whether an entry is currently registered under key. For
// entries added without an explicit key, pass the primitive itself.
func (r *Registry) Has(key interface{}) bool {
	k, ok := lookupKey(key)
	if !ok {
		return false
	}
	_, ok = r.items[k]
	return ok
}

// Get looks up an entry without removing it.
func (r *Registry) Get(key interface{}) (interface{}, bool) {
	k, ok := lookupKey(key)
	if !ok {
		return nil, false
	}
	v, ok := r.items[k]
	return v, ok
}

// Add registers v under its own identity and returns v for chaining. If an
// entry already exists under that key it is flushed (invoked and removed)
// first, so adding always yields exactly one live entry for the key. If v is
// abortable, the registry subscribes a self-removal callback so v disposing
// itself drops the entry.
func (r *Registry) Add(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	r.insert(identityKey(v), v)
	return v
}

// AddKeyed registers v under an explicit key. A nil key is equivalent to
// Add. Explicit-keyed and identity-keyed registrations of the same value are
// independent slots.
func (r *Registry) AddKeyed(key, v interface{}) interface{} {
	if v == nil {
		return nil
	}
	if key == nil {
		return r.Add(v)
	}
	if !isComparable(key) {
		// Unaddressable, but still registered and disposed in order.
		key = new(slot)
	}
	r.insert(key, v)
	return v
}

// AddAll registers each value under its own identity.
func (r *Registry) AddAll(vs ...interface{}) {
	for _, v := range vs {
		r.Add(v)
	}
}

// Make runs the factory and registers its result under its own identity.
// A nil result registers nothing. Returns the result.
func (r *Registry) Make(fn func() interface{}) interface{} {
	if fn == nil {
		return nil
	}
	v := fn()
	if v == nil {
		return nil
	}
	return r.Add(v)
}

// MakeKeyed is Make with an explicit key.
func (r *Registry) MakeKeyed(key interface{}, fn func() interface{}) interface{} {
	if fn == nil {
		return nil
	}
	v := fn()
	if v == nil {
		return nil
	}
	return r.AddKeyed(key, v)
}

// Remove deletes the entry under key without invoking it. Returns whether
// an entry was removed.
func (r *Registry) Remove(key interface{}) bool {
	k, ok := lookupKey(key)
	if !ok {
		return false
	}
	return r.discard(k)
}

// Flush removes the entry under key and invokes it, error-isolated. The
// entry is deleted before invocation, so re-entrant lookups never observe a
// half-disposed entry as still present.
func (r *Registry) Flush(key interface{}) {
	k, ok := lookupKey(key)
	if !ok {
		return
	}
	v, ok := r.items[k]
	if !ok {
		return
	}
	r.discard(k)
	disposer.InvokeWith(v, r.report)
}

// Dispose invokes every current entry in insertion order, each
// error-isolated, and clears the registry. Safe against re-entrancy: the
// entry set is snapshotted and cleared before any entry runs, and a nested
// Dispose during the pass is a no-op. The registry stays reusable.
func (r *Registry) Dispose() {
	if r.disposing || len(r.items) == 0 {
		return
	}
	r.disposing = true
	defer func() { r.disposing = false }()

	order := r.order
	items := r.items
	r.order = nil
	r.items = make(map[interface{}]interface{})

	for _, k := range order {
		disposer.InvokeWith(items[k], r.report)
	}
}

// AsDisposer returns a plain callable adapter around r.Dispose, for contexts
// that want "a disposer" rather than "a registry".
func AsDisposer(r *Registry) disposer.Func {
	return r.Dispose
}

// insert stores v under k, flushing any existing occupant of k first, and
// wires the self-removal subscription for abortable values. A flushed
// occupant's cleanup may re-enter and register a new occupant under k; the
// latest registration wins, so any re-appeared entry is flushed as well
// before v is stored. This keeps k unique in the order slice.
func (r *Registry) insert(k, v interface{}) {
	for {
		if _, exists := r.items[k]; !exists {
			break
		}
		r.Flush(k)
	}
	r.items[k] = v
	r.order = append(r.order, k)

	if a, ok := v.(interface{ Subscribe(func()) }); ok && disposer.Is(v) {
		a.Subscribe(func() { r.discard(k) })
	}
}

// discard drops the entry under k without invoking it.
func (r *Registry) discard(k interface{}) bool {
	if _, ok := r.items[k]; !ok {
		return false
	}
	delete(r.items, k)
	if i := slices.Index(r.order, k); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return true
}

// identityKey derives the entry key for a value added without an explicit
// key: the value itself when its type is comparable, otherwise a fresh
// opaque slot (the side-table degenerates to per-add uniqueness because Go
// gives bare funcs no reliable identity).
func identityKey(v interface{}) interface{} {
	if isComparable(v) {
		return v
	}
	return new(slot)
}

// lookupKey validates a user-supplied key for map access. Non-comparable
// values can never have been stored as keys, so they match nothing.
func lookupKey(key interface{}) (interface{}, bool) {
	if key == nil {
		return nil, false
	}
	if !isComparable(key) {
		return nil, false
	}
	return key, true
}

func isComparable(v interface{}) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Comparable()
}
