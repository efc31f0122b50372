package hypotest

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution is the capability a reference distribution must provide. The gonum
// distuv types satisfy it directly. Implementations must be safe for concurrent
// read-only use.
type Distribution interface {
	// CDF returns the cumulative probability at x.
	CDF(x float64) float64
	// Prob returns the density at x. Only reporting and plotting code uses it.
	Prob(x float64) float64
	// Quantile returns the inverse of CDF.
	Quantile(p float64) float64
}

// Reference couples a Distribution with a human readable label such as "T(49)".
type Reference struct {
	Distribution
	Label string
}

// StandardNormal returns the Normal(0, 1) reference used by proportion tests.
func StandardNormal() Reference {
	return Reference{Distribution: distuv.UnitNormal, Label: "Normal(0, 1)"}
}

// StudentsT returns a central Student-t reference with df degrees of freedom. df may be
// fractional (Welch-Satterthwaite).
func StudentsT(df float64) (Reference, error) {
	if err := checkDegreesOfFreedom("StudentsT", df); err != nil {
		return Reference{}, err
	}
	return Reference{
		Distribution: distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df},
		Label:        "T(" + formatDF(df) + ")",
	}, nil
}

// ChiSquared returns a Chi-squared reference with k degrees of freedom.
func ChiSquared(k float64) (Reference, error) {
	if err := checkDegreesOfFreedom("ChiSquared", k); err != nil {
		return Reference{}, err
	}
	return Reference{
		Distribution: distuv.ChiSquared{K: k},
		Label:        "Chi-Squared(" + formatDF(k) + ")",
	}, nil
}

// F returns an F reference with d1 numerator and d2 denominator degrees of freedom.
func F(d1, d2 float64) (Reference, error) {
	if err := checkDegreesOfFreedom("F", d1); err != nil {
		return Reference{}, err
	}
	if err := checkDegreesOfFreedom("F", d2); err != nil {
		return Reference{}, err
	}
	return Reference{
		Distribution: distuv.F{D1: d1, D2: d2},
		Label:        fmt.Sprintf("F(%s, %s)", formatDF(d1), formatDF(d2)),
	}, nil
}

func checkDegreesOfFreedom(op string, df float64) error {
	if math.IsNaN(df) || math.IsInf(df, 0) || df <= 0 {
		return newError(InvalidArgument, op, "degrees of freedom must be positive and finite, got %v", df)
	}
	return nil
}

func formatDF(df float64) string {
	return strconv.FormatFloat(df, 'g', 6, 64)
}

// cdf and quantile guard against a misbehaving Distribution.

func cdf(op string, d Distribution, x float64) (float64, error) {
	p := d.CDF(x)
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, newError(NumericError, op, "cdf(%v) = %v is outside [0, 1]", x, p)
	}
	return p, nil
}

func quantile(op string, d Distribution, p float64) (float64, error) {
	q := d.Quantile(p)
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, newError(NumericError, op, "quantile(%v) = %v is not finite", p, q)
	}
	return q, nil
}
