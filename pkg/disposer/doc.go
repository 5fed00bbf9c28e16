// Package disposer defines the disposal primitive: a value representing a
// reversible side effect's cleanup action. A primitive is either a value
// with a no-arg cleanup method (Disposer, io.Closer) or a bare function
// (func(), func() error). Invoke runs a primitive with error isolation:
// panics and returned errors are routed to a diagnostic sink and never
// propagate, so one failing cleanup cannot prevent others from running.
package disposer
