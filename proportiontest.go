package hypotest

import (
	"fmt"
	"math"
)

// ProportionSample is an observed proportion P of successes among N trials.
type ProportionSample struct {
	P float64
	N int
}

func (s ProportionSample) validate(op, name string) error {
	if !(s.P >= 0 && s.P <= 1) {
		return newError(InvalidArgument, op, "proportion %s must lie in [0, 1], got %v", name, s.P)
	}
	if s.N < 1 {
		return newError(InvalidArgument, op, "sample size %s must be positive, got %d", name, s.N)
	}
	return nil
}

// NewProportionTest builds a Normal approximation (Z) test for one proportion, or for
// the difference of two proportions when y is non-nil.
//
// One sample: se = sqrt(pi0*(1-pi0)/n1) and statistic = (p1 - pi0) / se, so pi0 must lie
// strictly inside (0, 1). Two samples: se = sqrt(p1*(1-p1)/n1 + p2*(1-p2)/n2) and
// statistic = (p1 - p2 - pi0) / se.
//
// Defaults: pi0 = 0, significance 0.05, Bilateral.
func NewProportionTest(x ProportionSample, y *ProportionSample, opts ...Option) (*HypothesisTest, error) {
	const op = "NewProportionTest"
	o := newOptions(0, opts)
	if err := x.validate(op, "x"); err != nil {
		return nil, err
	}
	n1 := float64(x.N)

	if y == nil {
		pi0 := o.nullValue
		if !(pi0 > 0 && pi0 < 1) {
			return nil, newError(InvalidArgument, op, "null proportion must lie in (0, 1), got %v", pi0)
		}
		estdv := math.Sqrt(pi0 * (1 - pi0) / n1)
		return newHypothesisTest(op, testInput{
			family:      ProportionFamily,
			ref:         StandardNormal(),
			statistic:   (x.P - pi0) / estdv,
			estdv:       estdv,
			description: fmt.Sprintf("Z %s test for one proportion.", o.alternative.Tail()),
			estimates: []Estimate{
				{Name: "X sampling proportion", Value: x.P},
				{Name: "X sampling size", Value: n1},
			},
		}, o)
	}

	if err := y.validate(op, "y"); err != nil {
		return nil, err
	}
	n2 := float64(y.N)
	estdv := math.Sqrt(x.P*(1-x.P)/n1 + y.P*(1-y.P)/n2)
	if estdv == 0 {
		return nil, newError(InvalidArgument, op, "both proportions are degenerate (0 or 1)")
	}
	return newHypothesisTest(op, testInput{
		family:      ProportionFamily,
		ref:         StandardNormal(),
		statistic:   (x.P - y.P - o.nullValue) / estdv,
		estdv:       estdv,
		description: fmt.Sprintf("Z %s test for two proportions.", o.alternative.Tail()),
		estimates: []Estimate{
			{Name: "X sampling proportion", Value: x.P},
			{Name: "Y sampling proportion", Value: y.P},
			{Name: "X sampling size", Value: n1},
			{Name: "Y sampling size", Value: float64(y.N)},
		},
	}, o)
}
