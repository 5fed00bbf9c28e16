// Package abortable wraps a disposal primitive so that disposing it directly
// (outside whichever registry currently holds it) notifies a single
// subscribed observer. A registry subscribes a self-removal callback at
// registration time, so an entry that fires on its own — a timer, a one-shot
// subscription — drops its now-stale registry slot instead of leaking it.
package abortable

import (
	"github.com/teardown-go/teardown/pkg/disposer"
)

// Abortable is a disposal primitive that can notify a single subscriber when
// it disposes itself.
type Abortable interface {
	disposer.Disposer

	// Subscribe installs onDispose as the sole observer. Any previously
	// installed observer is invoked (error-isolated) before being replaced,
	// which detaches the wrapper from whatever registry subscribed it.
	Subscribe(onDispose func())
}

// Wrapper is the concrete Abortable returned by Wrap. It consumes its
// underlying primitive on first disposal; later disposals are inert.
type Wrapper struct {
	underlying interface{}
	observer   func()
}

var _ Abortable = (*Wrapper)(nil)

// Wrap returns a new Abortable around v. v may be any disposal primitive
// (Disposer, io.Closer, bare func); non-disposable values are tolerated and
// simply skipped at invocation time.
func Wrap(v interface{}) *Wrapper {
	return &Wrapper{underlying: v}
}

// Dispose notifies the current observer, then invokes the underlying
// primitive. Both are error-isolated and cleared before being run, so a
// second Dispose is a no-op and re-entrant calls cannot double-invoke.
func (w *Wrapper) Dispose() {
	if obs := w.observer; obs != nil {
		w.observer = nil
		disposer.Invoke(obs)
	}
	if u := w.underlying; u != nil {
		w.underlying = nil
		disposer.Invoke(u)
	}
}

// Subscribe implements Abortable.
func (w *Wrapper) Subscribe(onDispose func()) {
	if prev := w.observer; prev != nil {
		w.observer = nil
		disposer.Invoke(prev)
	}
	w.observer = onDispose
}

// Is reports whether v is an abortable disposal primitive: a disposal
// primitive that additionally exposes the Subscribe capability.
func Is(v interface{}) bool {
	if !disposer.Is(v) {
		return false
	}
	_, ok := v.(interface{ Subscribe(func()) })
	return ok
}
