package uasset

import "github.com/rs/zerolog"

// Option configures behavior when constructing a Reader.
//
// Example:
//
//	r, err := uasset.NewReader(f,
//	    uasset.WithPath("Content/Hero.uasset"),
//	    uasset.WithLogger(logger),
//	)
type Option func(*openOptions)

// openOptions holds configuration for constructing readers.
type openOptions struct {
	path   string         // Attached to errors and log events
	logger zerolog.Logger // Debug events for header decoding
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		logger: zerolog.Nop(),
	}
}

func applyOptions(opts []Option) *openOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithPath names the source in errors and log events.
//
// Open sets this automatically. Use it with NewReader when the source is
// not a file on disk, or to report a path relative to a project root.
func WithPath(path string) Option {
	return func(o *openOptions) {
		o.path = path
	}
}

// WithLogger sets the logger used for header decoding events.
//
// By default nothing is logged. Events are emitted at debug level.
//
// Example:
//
//	logger := zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
//	r, err := uasset.Open("Hero.uasset", uasset.WithLogger(logger))
func WithLogger(logger zerolog.Logger) Option {
	return func(o *openOptions) {
		o.logger = logger
	}
}
