// Package hypotest evaluates classical parametric hypothesis tests and their power.
//
// A test is built by one of the family constructors (NewMeanTest, NewVarianceTest,
// NewProportionTest). The constructor computes the test statistic from the sample data,
// selects the reference distribution under the null hypothesis and evaluates critical
// values, p-value and the rejection decision once. The resulting *HypothesisTest is
// immutable and safe for concurrent use.
package hypotest

import (
	"log/slog"
	"math"
	"slices"
)

// Family is the kind of parameter a test is about. It selects how the sampling
// distribution is re-centered under a true parameter value when computing power.
type Family int

const (
	// MeanFamily tests are location tests on Student-t: the statistic shifts additively.
	MeanFamily Family = iota + 1
	// VarianceFamily tests are scale tests on Chi-squared or F: the statistic scales.
	VarianceFamily
	// ProportionFamily tests are Normal approximation location tests.
	ProportionFamily
)

func (f Family) String() string {
	switch f {
	case MeanFamily:
		return "mean"
	case VarianceFamily:
		return "variance"
	case ProportionFamily:
		return "proportion"
	}
	return "unknown"
}

// recenter maps a critical value of the null distribution to the corresponding point of
// the reference distribution when trueValue is the actual parameter.
func (f Family) recenter(nullValue, trueValue, estdv float64) func(cv float64) float64 {
	if f == VarianceFamily {
		ratio := nullValue / trueValue
		return func(cv float64) float64 { return cv * ratio }
	}
	shift := (nullValue - trueValue) / estdv
	return func(cv float64) float64 { return cv + shift }
}

// Estimate is a named sample statistic shown alongside a test result.
type Estimate struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// HypothesisTest is an evaluated hypothesis test. All fields are fixed at construction.
type HypothesisTest struct {
	family       Family
	ref          Reference
	significance float64
	statistic    float64
	nullValue    float64
	alternative  Alternative
	description  string
	estimates    []Estimate
	dof          []float64
	estdv        float64

	criticalValues []float64
	pValue         float64
	reject         bool
}

// testInput carries what a family constructor computed from its sample data.
type testInput struct {
	family      Family
	ref         Reference
	statistic   float64
	estdv       float64
	dof         []float64
	description string
	estimates   []Estimate
}

// newHypothesisTest validates in and o and evaluates the test.
//
// For Bilateral the critical values are the sig/2 and 1-sig/2 quantiles and the p-value
// doubles the smaller tail probability of the statistic. For Left the critical value is the
// sig quantile and the p-value is cdf(statistic). For Right the critical value is the
// 1-sig quantile and the p-value is 1-cdf(statistic). The null hypothesis is rejected
// when the p-value is strictly below the significance level.
func newHypothesisTest(op string, in testInput, o options) (*HypothesisTest, error) {
	if !(o.significance > 0 && o.significance < 1) {
		return nil, newError(InvalidArgument, op, "significance must lie in (0, 1), got %v", o.significance)
	}
	if !o.alternative.Valid() {
		return nil, newError(InvalidArgument, op, "unrecognized alternative %d", int(o.alternative))
	}
	if !isFinite(o.nullValue) {
		return nil, newError(InvalidArgument, op, "null value is not finite: %v", o.nullValue)
	}
	if !isFinite(in.statistic) {
		return nil, newError(InvalidArgument, op, "test statistic is not finite: %v", in.statistic)
	}

	t := &HypothesisTest{
		family:       in.family,
		ref:          in.ref,
		significance: o.significance,
		statistic:    in.statistic,
		nullValue:    o.nullValue,
		alternative:  o.alternative,
		description:  in.description,
		estimates:    in.estimates,
		dof:          in.dof,
		estdv:        in.estdv,
	}

	sig := o.significance
	switch o.alternative {
	case Bilateral:
		lo, err := quantile(op, in.ref, sig/2)
		if err != nil {
			return nil, err
		}
		hi, err := quantile(op, in.ref, 1-sig/2)
		if err != nil {
			return nil, err
		}
		if !(lo < hi) {
			return nil, newError(NumericError, op, "critical values are not ordered: %v >= %v", lo, hi)
		}
		p0, err := cdf(op, in.ref, in.statistic)
		if err != nil {
			return nil, err
		}
		t.criticalValues = []float64{lo, hi}
		if p0 > 0.5 {
			t.pValue = 2 * (1 - p0)
		} else {
			t.pValue = 2 * p0
		}
	case Left:
		cv, err := quantile(op, in.ref, sig)
		if err != nil {
			return nil, err
		}
		p0, err := cdf(op, in.ref, in.statistic)
		if err != nil {
			return nil, err
		}
		t.criticalValues = []float64{cv}
		t.pValue = p0
	case Right:
		cv, err := quantile(op, in.ref, 1-sig)
		if err != nil {
			return nil, err
		}
		p0, err := cdf(op, in.ref, in.statistic)
		if err != nil {
			return nil, err
		}
		t.criticalValues = []float64{cv}
		t.pValue = 1 - p0
	}
	t.reject = t.pValue < sig

	o.logger.Debug("test evaluated",
		"family", in.family.String(),
		"distribution", in.ref.Label,
		"alternative", o.alternative.String(),
		"statistic", t.statistic,
		"p_value", t.pValue,
		"reject", t.reject)
	return t, nil
}

// ErrorTypeII returns the probability of not rejecting the null hypothesis when trueValue
// is the actual value of the tested parameter.
//
// The critical values are mapped into the sampling distribution under trueValue: location
// tests (means, proportions) shift them by (nullValue-trueValue)/estdv, scale tests
// (variances) multiply them by nullValue/trueValue. Then
//
//	Right:     beta = cdf(cv')
//	Left:      beta = 1 - cdf(cv')
//	Bilateral: beta = cdf(cvHigh') - cdf(cvLow')
//
// trueValue must be finite, and positive for variance tests.
func (t *HypothesisTest) ErrorTypeII(trueValue float64) (float64, error) {
	const op = "ErrorTypeII"
	if !isFinite(trueValue) {
		return 0, newError(InvalidArgument, op, "true value is not finite: %v", trueValue)
	}
	if t.family == VarianceFamily && trueValue <= 0 {
		return 0, newError(InvalidArgument, op, "true variance must be positive, got %v", trueValue)
	}
	at := t.family.recenter(t.nullValue, trueValue, t.estdv)

	var beta float64
	switch t.alternative {
	case Right:
		p, err := cdf(op, t.ref, at(t.criticalValues[0]))
		if err != nil {
			return 0, err
		}
		beta = p
	case Left:
		p, err := cdf(op, t.ref, at(t.criticalValues[0]))
		if err != nil {
			return 0, err
		}
		beta = 1 - p
	case Bilateral:
		lo, err := cdf(op, t.ref, at(t.criticalValues[0]))
		if err != nil {
			return 0, err
		}
		hi, err := cdf(op, t.ref, at(t.criticalValues[1]))
		if err != nil {
			return 0, err
		}
		beta = hi - lo
	}
	if math.IsNaN(beta) || beta < 0 || beta > 1 {
		return 0, newError(NumericError, op, "type II error %v is outside [0, 1]", beta)
	}
	return beta, nil
}

// Power returns 1 - ErrorTypeII(trueValue).
func (t *HypothesisTest) Power(trueValue float64) (float64, error) {
	beta, err := t.ErrorTypeII(trueValue)
	if err != nil {
		return 0, err
	}
	return 1 - beta, nil
}

// PowerCurve returns the power at each of trueValues, in order.
func (t *HypothesisTest) PowerCurve(trueValues []float64) ([]float64, error) {
	powers := make([]float64, len(trueValues))
	for i, v := range trueValues {
		p, err := t.Power(v)
		if err != nil {
			return nil, err
		}
		powers[i] = p
	}
	return powers, nil
}

func (t *HypothesisTest) Family() Family             { return t.family }
func (t *HypothesisTest) Distribution() Distribution { return t.ref.Distribution }
func (t *HypothesisTest) DistributionLabel() string  { return t.ref.Label }
func (t *HypothesisTest) Significance() float64      { return t.significance }
func (t *HypothesisTest) Statistic() float64         { return t.statistic }
func (t *HypothesisTest) NullValue() float64         { return t.nullValue }
func (t *HypothesisTest) Alternative() Alternative   { return t.alternative }
func (t *HypothesisTest) Description() string        { return t.description }
func (t *HypothesisTest) PValue() float64            { return t.pValue }
func (t *HypothesisTest) Reject() bool               { return t.reject }

// StandardError returns the estimated standard error of the location statistic. It is
// zero for variance tests, which do not use one.
func (t *HypothesisTest) StandardError() float64 { return t.estdv }

// CriticalValues returns one value for one-sided tests and [low, high] for Bilateral.
func (t *HypothesisTest) CriticalValues() []float64 { return slices.Clone(t.criticalValues) }

// DegreesOfFreedom returns the parameters of the reference distribution: one value for
// Student-t and Chi-squared, two for F and none for the Normal approximation.
func (t *HypothesisTest) DegreesOfFreedom() []float64 { return slices.Clone(t.dof) }

// Estimates returns the sample statistics in display order.
func (t *HypothesisTest) Estimates() []Estimate { return slices.Clone(t.estimates) }

// SamplingEstimates returns the sample statistics keyed by name.
func (t *HypothesisTest) SamplingEstimates() map[string]float64 {
	m := make(map[string]float64, len(t.estimates))
	for _, e := range t.estimates {
		m[e.Name] = e.Value
	}
	return m
}

// Summary is a serializable snapshot of a test's reportable fields.
type Summary struct {
	Description       string      `json:"description" yaml:"description"`
	Distribution      string      `json:"distribution" yaml:"distribution"`
	NullValue         float64     `json:"null_value" yaml:"null_value"`
	Alternative       Alternative `json:"alternative" yaml:"alternative"`
	Significance      float64     `json:"significance" yaml:"significance"`
	Statistic         float64     `json:"statistic" yaml:"statistic"`
	CriticalValues    []float64   `json:"critical_values" yaml:"critical_values"`
	PValue            float64     `json:"p_value" yaml:"p_value"`
	Reject            bool        `json:"reject" yaml:"reject"`
	DegreesOfFreedom  []float64   `json:"degrees_of_freedom,omitempty" yaml:"degrees_of_freedom,omitempty"`
	SamplingEstimates []Estimate  `json:"sampling_estimates" yaml:"sampling_estimates"`
}

// Summary returns a snapshot of the test for reporting.
func (t *HypothesisTest) Summary() Summary {
	return Summary{
		Description:       t.description,
		Distribution:      t.ref.Label,
		NullValue:         t.nullValue,
		Alternative:       t.alternative,
		Significance:      t.significance,
		Statistic:         t.statistic,
		CriticalValues:    t.CriticalValues(),
		PValue:            t.pValue,
		Reject:            t.reject,
		DegreesOfFreedom:  t.DegreesOfFreedom(),
		SamplingEstimates: t.Estimates(),
	}
}

// Attrs returns the main results as slog attributes.
func (t *HypothesisTest) Attrs() []slog.Attr {
	return []slog.Attr{
		slog.String("description", t.description),
		slog.String("distribution", t.ref.Label),
		slog.Float64("statistic", t.statistic),
		slog.Float64("p_value", t.pValue),
		slog.Bool("reject", t.reject),
	}
}
