package blobstream

// Logger receives diagnostic messages for failures that are intentionally
// not surfaced as errors, such as a failed delete of a temporary backing
// file during Close. *log.Logger satisfies this interface.
type Logger interface {
	Printf(format string, v ...interface{})
}

// noopLogger discards all messages. It is the package default so the
// library stays silent unless a caller opts in via WithLogger.
type noopLogger struct{}

func (noopLogger) Printf(format string, v ...interface{}) {}
