package hypotest

import (
	"log/slog"
	"strings"
)

// SampleSpec describes a synthetic Normal sample, see NormalSample.
type SampleSpec struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
	N      int     `json:"n" yaml:"n"`
	Seed   uint64  `json:"seed" yaml:"seed"`
}

// TestConfig is a declarative description of one test, as read from a scenario file.
// Optional inputs are pointers so that absence can be told apart from a zero value.
type TestConfig struct {
	Name string `json:"name" yaml:"name"`
	// Kind is "mean", "variance" or "proportion".
	Kind string `json:"kind" yaml:"kind"`

	X         []float64   `json:"x,omitempty" yaml:"x,omitempty"`
	Y         []float64   `json:"y,omitempty" yaml:"y,omitempty"`
	GenerateX *SampleSpec `json:"generate_x,omitempty" yaml:"generate_x,omitempty"`
	GenerateY *SampleSpec `json:"generate_y,omitempty" yaml:"generate_y,omitempty"`

	P1 *float64 `json:"p1,omitempty" yaml:"p1,omitempty"`
	N1 *int     `json:"n1,omitempty" yaml:"n1,omitempty"`
	P2 *float64 `json:"p2,omitempty" yaml:"p2,omitempty"`
	N2 *int     `json:"n2,omitempty" yaml:"n2,omitempty"`

	NullValue      *float64     `json:"null_value,omitempty" yaml:"null_value,omitempty"`
	Significance   *float64     `json:"significance,omitempty" yaml:"significance,omitempty"`
	Alternative    *Alternative `json:"alternative,omitempty" yaml:"alternative,omitempty"`
	EqualVariances bool         `json:"equal_variances,omitempty" yaml:"equal_variances,omitempty"`

	// PowerAt lists true parameter values at which callers want the power evaluated.
	PowerAt []float64 `json:"power_at,omitempty" yaml:"power_at,omitempty"`
}

// Build validates cfg and constructs the test it describes. Inconsistent combinations of
// optional inputs (p2 without n2, both x and generate_x, samples on a proportion test,
// ...) fail with a ConfigurationError.
func Build(cfg TestConfig, logger *slog.Logger) (*HypothesisTest, error) {
	const op = "Build"
	opts := []Option{WithLogger(logger)}
	if cfg.NullValue != nil {
		opts = append(opts, WithNullValue(*cfg.NullValue))
	}
	if cfg.Significance != nil {
		opts = append(opts, WithSignificance(*cfg.Significance))
	}
	if cfg.Alternative != nil {
		opts = append(opts, WithAlternative(*cfg.Alternative))
	}

	kind := strings.ToLower(strings.TrimSpace(cfg.Kind))
	switch kind {
	case "mean", "variance":
		if cfg.P1 != nil || cfg.N1 != nil || cfg.P2 != nil || cfg.N2 != nil {
			return nil, newError(ConfigurationError, op, "%s test %q takes samples, not proportions", kind, cfg.Name)
		}
		if kind == "variance" && cfg.EqualVariances {
			return nil, newError(ConfigurationError, op, "equal_variances only applies to mean tests (%q)", cfg.Name)
		}
		x, err := resolveSample(op, "x", cfg.X, cfg.GenerateX)
		if err != nil {
			return nil, err
		}
		if x == nil {
			return nil, newError(ConfigurationError, op, "%s test %q needs x or generate_x", kind, cfg.Name)
		}
		y, err := resolveSample(op, "y", cfg.Y, cfg.GenerateY)
		if err != nil {
			return nil, err
		}
		if kind == "mean" {
			if cfg.EqualVariances && y == nil {
				return nil, newError(ConfigurationError, op, "equal_variances needs a second sample (%q)", cfg.Name)
			}
			return NewMeanTest(x, y, append(opts, WithEqualVariances(cfg.EqualVariances))...)
		}
		return NewVarianceTest(x, y, opts...)

	case "proportion":
		if cfg.X != nil || cfg.Y != nil || cfg.GenerateX != nil || cfg.GenerateY != nil || cfg.EqualVariances {
			return nil, newError(ConfigurationError, op, "proportion test %q takes p1/n1 and p2/n2 only", cfg.Name)
		}
		if cfg.P1 == nil || cfg.N1 == nil {
			return nil, newError(ConfigurationError, op, "proportion test %q needs both p1 and n1", cfg.Name)
		}
		if (cfg.P2 == nil) != (cfg.N2 == nil) {
			return nil, newError(ConfigurationError, op, "proportion test %q: p2 and n2 must be given together", cfg.Name)
		}
		x := ProportionSample{P: *cfg.P1, N: *cfg.N1}
		var y *ProportionSample
		if cfg.P2 != nil {
			y = &ProportionSample{P: *cfg.P2, N: *cfg.N2}
		}
		return NewProportionTest(x, y, opts...)
	}
	return nil, newError(ConfigurationError, op, "unknown test kind %q for %q", cfg.Kind, cfg.Name)
}

func resolveSample(op, name string, values []float64, gen *SampleSpec) ([]float64, error) {
	if values != nil && gen != nil {
		return nil, newError(ConfigurationError, op, "both %s and generate_%s given", name, name)
	}
	if gen == nil {
		return values, nil
	}
	return NormalSample(gen.Mean, gen.StdDev, gen.N, gen.Seed)
}
