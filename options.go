package pathkit

// Option represents a construction option
type Option func(*Options)

// Options contains all possible options for constructing path values
type Options struct {
	// Validate runs the absoluteness check at construction
	Validate bool

	// Reporter receives a diagnostic when validation fails.
	// Nil means a slog reporter over slog.Default().
	Reporter Reporter

	// Checker decides whether a path is absolute. Nil means IsAbsolute.
	Checker func(text string) bool
}

// WithValidation enables or disables the absoluteness check
func WithValidation(validate bool) Option {
	return func(o *Options) {
		o.Validate = validate
	}
}

// WithoutValidation skips the absoluteness check and its diagnostic
func WithoutValidation() Option {
	return WithValidation(false)
}

// WithReporter sets the diagnostic sink for failed validation
func WithReporter(r Reporter) Option {
	return func(o *Options) {
		o.Reporter = r
	}
}

// WithChecker replaces the platform absoluteness predicate
func WithChecker(checker func(text string) bool) Option {
	return func(o *Options) {
		o.Checker = checker
	}
}

func processOptions(opts ...Option) *Options {
	o := &Options{Validate: true}
	for _, opt := range opts {
		opt(o)
	}
	if o.Checker == nil {
		o.Checker = IsAbsolute
	}
	if o.Validate && o.Reporter == nil {
		o.Reporter = defaultReporter()
	}
	return o
}
