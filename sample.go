package nvector

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// NVectorSampler draws n-vectors uniformly distributed over the unit sphere, by normalising
// samples of an isotropic trivariate normal distribution.
type NVectorSampler struct {
	normal *distmv.Normal
}

// NewNVectorSampler returns a sampler drawing from src.
func NewNVectorSampler(src rand.Source) *NVectorSampler {
	normal, ok := distmv.NewNormal([]float64{0, 0, 0}, mat.NewSymDense(3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}), src)
	if !ok {
		panic("NOK in Gaussian")
	}
	return &NVectorSampler{normal}
}

// Sample returns the next n-vector.
func (s *NVectorSampler) Sample() NVector {
	x := make([]float64, 3)
	for {
		s.normal.Rand(x)
		v := Vec3{x[0], x[1], x[2]}
		// reject draws too close to the origin to be normalised accurately.
		if v.Norm() > 1e-6 {
			return NewNVector(v)
		}
	}
}

// SampleN returns the next n n-vectors.
func (s *NVectorSampler) SampleN(n int) []NVector {
	vs := make([]NVector, n)
	for i := range vs {
		vs[i] = s.Sample()
	}
	return vs
}
