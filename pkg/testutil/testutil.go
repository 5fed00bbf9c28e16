package testutil

import (
	"github.com/teardown-go/teardown/pkg/errors"
)

// Reporter is a capturing diagnostic sink. Install it with
// disposer.SetReporter or registry.WithReporter and assert on what cleanup
// failures were reported.
type Reporter struct {
	errs []error
}

// Report records err. Pass this method as the disposer.Reporter.
func (r *Reporter) Report(err error) {
	r.errs = append(r.errs, err)
}

// Errors returns every reported error in order.
func (r *Reporter) Errors() []error {
	return r.errs
}

// Codes returns the error code of every reported error in order.
func (r *Reporter) Codes() []errors.ErrorCode {
	codes := make([]errors.ErrorCode, len(r.errs))
	for i, err := range r.errs {
		codes[i] = errors.GetErrorCode(err)
	}
	return codes
}

// Count returns how many errors were reported.
func (r *Reporter) Count() int {
	return len(r.errs)
}

// Reset forgets all recorded errors.
func (r *Reporter) Reset() {
	r.errs = nil
}

// Probe is a counting disposer. Each Dispose increments the call count;
// pointers to Probe are comparable, so probes double as identity keys.
type Probe struct {
	calls int
}

// Dispose implements disposer.Disposer.
func (p *Probe) Dispose() {
	p.calls++
}

// Calls returns how many times the probe was disposed.
func (p *Probe) Calls() int {
	return p.calls
}

// FailingCloser is an io.Closer whose Close always returns Err.
type FailingCloser struct {
	Err   error
	calls int
}

// Close implements io.Closer.
func (c *FailingCloser) Close() error {
	c.calls++
	return c.Err
}

// Calls returns how many times Close ran.
func (c *FailingCloser) Calls() int {
	return c.calls
}

// Panicker is a disposer that panics with Msg every time it is invoked.
type Panicker struct {
	Msg   string
	calls int
}

// Dispose implements disposer.Disposer.
func (p *Panicker) Dispose() {
	p.calls++
	panic(p.Msg)
}

// Calls returns how many times Dispose ran (including panicking runs).
func (p *Panicker) Calls() int {
	return p.calls
}
