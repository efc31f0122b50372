package hypotest

import "fmt"

// NewVarianceTest builds a Chi-squared test for one population variance, or an F test
// for the ratio of two population variances when y is non-nil.
//
// One sample: statistic = (n-1) * var(x) / sigma0^2 on Chi-squared(n-1).
// Two samples: statistic = (var(x) / var(y)) / ratio0 on F(nx-1, ny-1), where ratio0 is
// the null value (1 unless WithNullValue is given, i.e. equal variances). The unscaled
// ratio is reported as the "X/Y sampling variance ratio" estimate.
//
// Defaults: null value 1, significance 0.05, Bilateral. The null value must be positive.
func NewVarianceTest(x, y []float64, opts ...Option) (*HypothesisTest, error) {
	const op = "NewVarianceTest"
	o := newOptions(1, opts)
	if !(o.nullValue > 0) {
		return nil, newError(InvalidArgument, op, "null variance must be positive, got %v", o.nullValue)
	}

	_, varX, err := SampleMoments(x)
	if err != nil {
		return nil, wrapError(InvalidArgument, op, err, "sample x")
	}
	nx := float64(len(x))

	if y == nil {
		ref, err := ChiSquared(nx - 1)
		if err != nil {
			return nil, err
		}
		return newHypothesisTest(op, testInput{
			family:      VarianceFamily,
			ref:         ref,
			statistic:   (nx - 1) * varX / o.nullValue,
			dof:         []float64{nx - 1},
			description: fmt.Sprintf("Chi-squared %s test for variance.", o.alternative.Tail()),
			estimates: []Estimate{
				{Name: "X sampling variance", Value: varX},
				{Name: "X sampling size", Value: nx},
			},
		}, o)
	}

	_, varY, err := SampleMoments(y)
	if err != nil {
		return nil, wrapError(InvalidArgument, op, err, "sample y")
	}
	if varY == 0 {
		return nil, newError(InvalidArgument, op, "sample y has zero variance")
	}
	ny := float64(len(y))
	ratio := varX / varY
	ref, err := F(nx-1, ny-1)
	if err != nil {
		return nil, err
	}
	return newHypothesisTest(op, testInput{
		family:      VarianceFamily,
		ref:         ref,
		statistic:   ratio / o.nullValue,
		dof:         []float64{nx - 1, ny - 1},
		description: fmt.Sprintf("F %s test for two variances.", o.alternative.Tail()),
		estimates: []Estimate{
			{Name: "X sampling variance", Value: varX},
			{Name: "Y sampling variance", Value: varY},
			{Name: "X/Y sampling variance ratio", Value: ratio},
			{Name: "X sampling size", Value: nx},
			{Name: "Y sampling size", Value: ny},
		},
	}, o)
}
