// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length of Xs and all values must be non-negative.
	Weights []float64
}

// Bounds returns the minimum and maximum values of xs. If xs is
// empty, both are NaN.
func Bounds(xs []float64) (min float64, max float64) {
	if len(xs) == 0 {
		return nan, nan
	}
	min, max = xs[0], xs[0]
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// Weight returns the total weight of the Sample.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	total := 0.0
	for _, w := range s.Weights {
		total += w
	}
	return total
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return nan
	}
	m := 0.0
	for _, x := range xs {
		m += x
	}
	return m / float64(len(xs))
}

// Mean returns the weighted arithmetic mean of the Sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 || s.Weight() == 0 {
		return nan
	}
	if s.Weights == nil {
		return Mean(s.Xs)
	}

	m, wsum := 0.0, 0.0
	for i, x := range s.Xs {
		// Use weighted incremental mean:
		//   m_i = (1 - w_i/wsum_i) * m_(i-1) + (w_i/wsum_i) * x_i
		//       = m_(i-1) + (w_i/wsum_i) * (x_i - m_(i-1))
		wsum += s.Weights[i]
		if wsum == 0 {
			continue
		}
		m += (s.Weights[i] / wsum) * (x - m)
	}
	return m
}

// Variance returns the population variance of the Sample, that is the
// weighted mean of the squared deviations from s.Mean(). Unlike the
// sample variance, the sum is divided by the total weight rather than
// by n-1.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 || s.Weight() == 0 {
		return nan
	}
	mean := s.Mean()
	sum := 0.0
	for i, x := range s.Xs {
		w := 1.0
		if s.Weights != nil {
			w = s.Weights[i]
		}
		sum += w * (x - mean) * (x - mean)
	}
	return sum / s.Weight()
}

// StdDev returns the population standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Discrete returns the empirical distribution of the Sample: each
// Xs[i] occurs with probability Weights[i]/s.Weight().
func (s Sample) Discrete() Discrete {
	total := s.Weight()
	probs := make([]float64, len(s.Xs))
	for i := range s.Xs {
		w := 1.0
		if s.Weights != nil {
			w = s.Weights[i]
		}
		probs[i] = w / total
	}
	return Discrete{Values: s.Xs, Probs: probs}
}
