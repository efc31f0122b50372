package hypotest

import "gonum.org/v1/gonum/stat/distuv"

// NormalSample draws n values from Normal(mu, sigma) using a DPRNG seeded with seed.
// The same seed always yields the same sample; seed 0 picks a random seed.
func NormalSample(mu, sigma float64, n int, seed uint64) ([]float64, error) {
	const op = "NormalSample"
	if !isFinite(mu) {
		return nil, newError(InvalidArgument, op, "mean is not finite: %v", mu)
	}
	if !(sigma > 0) || !isFinite(sigma) {
		return nil, newError(InvalidArgument, op, "standard deviation must be positive and finite, got %v", sigma)
	}
	if n < 1 {
		return nil, newError(InvalidArgument, op, "sample size must be positive, got %d", n)
	}
	d := distuv.Normal{Mu: mu, Sigma: sigma, Src: NewDPRNG(seed)}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = d.Rand()
	}
	return xs, nil
}
