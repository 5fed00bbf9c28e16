package disposer

import (
	"github.com/teardown-go/teardown/pkg/logging"
)

// Reporter is the diagnostic sink for cleanup failures. It must never panic
// or block; it is the only observable I/O this library performs. Errors
// handed to it carry stable codes from pkg/errors.
type Reporter func(err error)

// reporter is the process-wide sink used when no per-registry reporter is
// configured. Defaults to a structured log write.
var reporter Reporter = logReporter

func logReporter(err error) {
	logger := logging.GetLogger("disposer")
	logger.Error().Err(err).Msg("cleanup failed")
}

// SetReporter replaces the package diagnostic sink and returns the previous
// one so tests can restore it. Passing nil restores the default log-based
// sink.
func SetReporter(r Reporter) Reporter {
	prev := reporter
	if r == nil {
		r = logReporter
	}
	reporter = r
	return prev
}

// Report sends err to the current package diagnostic sink.
func Report(err error) {
	reporter(err)
}
