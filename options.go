package hypotest

import "log/slog"

// DefaultSignificance is the significance level used when WithSignificance is not given.
const DefaultSignificance = 0.05

// Option configures a test constructor.
type Option func(*options)

type options struct {
	significance   float64
	nullValue      float64
	alternative    Alternative
	equalVariances bool
	logger         *slog.Logger
}

// newOptions builds a fresh option set for one constructor call. nullValue is the
// family default for the hypothesized parameter.
func newOptions(nullValue float64, opts []Option) options {
	o := options{
		significance: DefaultSignificance,
		nullValue:    nullValue,
		alternative:  Bilateral,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithSignificance sets the nominal Type-I error rate. It must lie in (0, 1).
func WithSignificance(sig float64) Option {
	return func(o *options) { o.significance = sig }
}

// WithNullValue sets the parameter value under the null hypothesis: mu0 for mean tests,
// sigma squared 0 (or the variance ratio) for variance tests and pi0 for proportion tests.
func WithNullValue(v float64) Option {
	return func(o *options) { o.nullValue = v }
}

// WithAlternative sets the direction of the alternative hypothesis.
func WithAlternative(a Alternative) Option {
	return func(o *options) { o.alternative = a }
}

// WithEqualVariances makes a two-sample mean test use the pooled variance instead of
// Welch's approximation. It has no effect on the other tests.
func WithEqualVariances(equal bool) Option {
	return func(o *options) { o.equalVariances = equal }
}

// WithLogger sets the logger used for debug output. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
