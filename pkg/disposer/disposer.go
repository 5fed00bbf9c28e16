package disposer

import (
	"io"

	"github.com/teardown-go/teardown/pkg/errors"
)

// Disposer is the object form of a disposal primitive. Dispose performs the
// cleanup; implementations must tolerate being called at most once per
// registration but need not guard against direct repeated calls themselves —
// registries and wrappers provide the at-most-once guarantee.
type Disposer interface {
	Dispose()
}

// Func adapts a bare cleanup function to the Disposer interface.
type Func func()

// Dispose implements Disposer
func (f Func) Dispose() {
	if f != nil {
		f()
	}
}

// funcDisposer is the pointer-backed adapter returned by Of. Being a
// pointer, it is comparable and therefore usable as an identity key in a
// registry, which bare functions are not.
type funcDisposer struct {
	fn func()
}

// Dispose implements Disposer
func (d *funcDisposer) Dispose() {
	if d.fn != nil {
		d.fn()
	}
}

// Of wraps a bare cleanup function in a comparable Disposer. Use this when
// an entry must be addressable by identity (Has/Get/Remove with the value
// itself) after being added without an explicit key.
func Of(fn func()) Disposer {
	return &funcDisposer{fn: fn}
}

// Is reports whether v qualifies as a disposal primitive: a Disposer, an
// io.Closer, or a bare func() / func() error. Pure predicate, no side
// effects.
func Is(v interface{}) bool {
	switch v.(type) {
	case nil:
		return false
	case Disposer, io.Closer, func(), func() error:
		return true
	default:
		return false
	}
}

// Invoke runs v as a disposal primitive with error isolation, reporting
// failures to the package diagnostic sink. The object form (Dispose, then
// Close) is preferred over the callable form when v satisfies both. Values
// that are not disposal primitives are skipped silently.
func Invoke(v interface{}) {
	InvokeWith(v, nil)
}

// InvokeWith is Invoke with an explicit diagnostic sink. A nil report falls
// back to the package sink.
func InvokeWith(v interface{}, report Reporter) {
	if v == nil {
		return
	}
	if report == nil {
		report = Report
	}
	defer func() {
		if rec := recover(); rec != nil {
			if err, ok := rec.(error); ok {
				report(errors.Wrap(err, errors.ErrCleanupPanic, "cleanup panicked"))
				return
			}
			report(errors.Newf(errors.ErrCleanupPanic, "cleanup panicked: %v", rec))
		}
	}()
	switch d := v.(type) {
	case Disposer:
		d.Dispose()
	case io.Closer:
		if err := d.Close(); err != nil {
			report(errors.Wrap(err, errors.ErrCleanupFailed, "cleanup returned error"))
		}
	case func():
		d()
	case func() error:
		if err := d(); err != nil {
			report(errors.Wrap(err, errors.ErrCleanupFailed, "cleanup returned error"))
		}
	default:
		// Misuse is tolerated: non-disposable values are skipped.
	}
}

// Compose returns a single disposal primitive that invokes each given
// primitive in the order supplied. Each invocation is independently
// error-isolated, so a failure in one never skips the rest.
func Compose(vs ...interface{}) Disposer {
	parts := make([]interface{}, len(vs))
	copy(parts, vs)
	return Func(func() {
		for _, v := range parts {
			Invoke(v)
		}
	})
}
