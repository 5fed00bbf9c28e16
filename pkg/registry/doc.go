// Package registry provides the disposable registry: an insertion-ordered,
// keyed collection of disposal primitives, each invoked at most once, either
// individually (Flush) or en masse when the owning scope ends (Dispose).
// A Registry is itself a disposal primitive, so registries nest.
//
// Entries are addressed by an entry key: the primitive's own identity when
// added without an explicit key, or an explicitly supplied comparable token.
// Identity-keyed and explicit-keyed registrations of the same primitive are
// independent slots. Bare functions have no usable identity in Go; they are
// registered under a fresh opaque slot each time and are addressable later
// only via an explicit key (or by wrapping them with disposer.Of).
//
// A Registry is not safe for concurrent use: all operations are synchronous
// and must run on a single logical flow. Re-entrancy is the supported form
// of "concurrency" — an entry's cleanup may call back into Add, Remove or
// Dispose on the same registry — and is handled by snapshotting and clearing
// the entry set before any entry is invoked. No locks are used: a mutex
// would deadlock exactly the re-entrant paths this package must support.
package registry
