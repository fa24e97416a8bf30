package blobstream

import "net/http"

// Option represents a configuration option
type Option func(*Options)

// Options contains all possible options for stream construction
type Options struct {
	// TempDir is the directory used for materialized backing files.
	// Empty means the configured default (BLOBSTREAM_TEMP_DIR or the
	// operating system temp directory).
	TempDir string

	// TempPattern is the name pattern for materialized backing files,
	// in os.CreateTemp form. Empty means the configured default.
	TempPattern string

	// Length declares the total byte count of the source upfront.
	// Declaring it lets Length return without materializing the stream.
	// Negative means unknown.
	Length int64

	// HTTPClient is the client used by the http and https URL schemes.
	// Nil means http.DefaultClient.
	HTTPClient *http.Client

	// Logger receives best-effort failure diagnostics (see Logger).
	// Nil means discard.
	Logger Logger
}

// WithTempDir sets the directory for materialized backing files
func WithTempDir(dir string) Option {
	return func(o *Options) {
		o.TempDir = dir
	}
}

// WithTempPattern sets the backing file name pattern, in os.CreateTemp form
func WithTempPattern(pattern string) Option {
	return func(o *Options) {
		o.TempPattern = pattern
	}
}

// WithLength declares the total byte count of the source upfront
func WithLength(length int64) Option {
	return func(o *Options) {
		o.Length = length
	}
}

// WithHTTPClient sets the client used for http and https sources
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = client
	}
}

// WithLogger sets the logger for best-effort failure diagnostics
func WithLogger(l Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// processOptions resolves the given options on top of the configured
// defaults. Length starts unknown.
func processOptions(options ...Option) Options {
	cfg := loadConfig()
	opts := Options{
		TempDir:     cfg.TempDir,
		TempPattern: cfg.TempPattern,
		Length:      -1,
		Logger:      noopLogger{},
	}
	for _, opt := range options {
		opt(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}
	return opts
}
