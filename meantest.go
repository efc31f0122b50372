package hypotest

import (
	"fmt"
	"math"
)

// NewMeanTest builds a Student-t test for one population mean, or for the difference of
// two population means when y is non-nil.
//
// One sample: statistic = (mean(x) - mu0) / se with se = sqrt(var(x)/n) and n-1 degrees
// of freedom. Two samples: statistic = (mean(x) - mean(y) - mu0) / se, where se and the
// degrees of freedom come from the pooled variance (WithEqualVariances(true), nx+ny-2
// degrees of freedom) or from Welch's approximation with Satterthwaite's fractional
// degrees of freedom (the default).
//
// Defaults: mu0 = 0, significance 0.05, Bilateral. Each sample needs at least
// MinimumObservations values and the samples must not be constant.
func NewMeanTest(x, y []float64, opts ...Option) (*HypothesisTest, error) {
	const op = "NewMeanTest"
	o := newOptions(0, opts)

	meanX, varX, err := SampleMoments(x)
	if err != nil {
		return nil, wrapError(InvalidArgument, op, err, "sample x")
	}
	nx := float64(len(x))

	if y == nil {
		estdv := math.Sqrt(varX / nx)
		if estdv == 0 {
			return nil, newError(InvalidArgument, op, "sample x has zero variance")
		}
		df := nx - 1
		ref, err := StudentsT(df)
		if err != nil {
			return nil, err
		}
		return newHypothesisTest(op, testInput{
			family:      MeanFamily,
			ref:         ref,
			statistic:   (meanX - o.nullValue) / estdv,
			estdv:       estdv,
			dof:         []float64{df},
			description: fmt.Sprintf("One sampling T %s test.", o.alternative.Tail()),
			estimates: []Estimate{
				{Name: "X sampling mean", Value: meanX},
				{Name: "X sampling size", Value: nx},
			},
		}, o)
	}

	meanY, varY, err := SampleMoments(y)
	if err != nil {
		return nil, wrapError(InvalidArgument, op, err, "sample y")
	}
	ny := float64(len(y))

	var estdv, df float64
	if o.equalVariances {
		df = nx + ny - 2
		estdv = math.Sqrt((1/nx + 1/ny) * (varX*(nx-1) + varY*(ny-1)) / df)
	} else {
		rx, ry := varX/nx, varY/ny
		estdv = math.Sqrt(rx + ry)
		df = (rx + ry) * (rx + ry) / (rx*rx/(nx-1) + ry*ry/(ny-1))
	}
	if estdv == 0 {
		return nil, newError(InvalidArgument, op, "samples x and y both have zero variance")
	}
	ref, err := StudentsT(df)
	if err != nil {
		return nil, err
	}
	return newHypothesisTest(op, testInput{
		family:      MeanFamily,
		ref:         ref,
		statistic:   (meanX - meanY - o.nullValue) / estdv,
		estdv:       estdv,
		dof:         []float64{df},
		description: fmt.Sprintf("Two sampling T %s test.", o.alternative.Tail()),
		estimates: []Estimate{
			{Name: "X sampling mean", Value: meanX},
			{Name: "Y sampling mean", Value: meanY},
			{Name: "X sampling size", Value: nx},
			{Name: "Y sampling size", Value: ny},
		},
	}, o)
}
