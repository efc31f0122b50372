package hypotest

import (
	"math"

	"github.com/montanaflynn/stats"
)

// MinimumObservations is the smallest sample size for which a sample variance, and
// therefore degrees of freedom, is defined.
const MinimumObservations = 2

// SampleMoments returns the mean and the unbiased (n-1) variance of data.
func SampleMoments(data []float64) (mean, variance float64, err error) {
	if len(data) < MinimumObservations {
		return 0, 0, newError(InvalidArgument, "SampleMoments", "need at least %d observations, got %d", MinimumObservations, len(data))
	}
	for i, v := range data {
		if !isFinite(v) {
			return 0, 0, newError(InvalidArgument, "SampleMoments", "observation %d is not finite: %v", i, v)
		}
	}
	mean, err = stats.Mean(data)
	if err != nil {
		return 0, 0, wrapError(InvalidArgument, "SampleMoments", err, "mean")
	}
	variance, err = stats.SampleVariance(data)
	if err != nil {
		return 0, 0, wrapError(InvalidArgument, "SampleMoments", err, "variance")
	}
	return mean, variance, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
