// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Discrete is a discrete distribution with finite support. The random
// variable takes value Values[i] with probability Probs[i].
//
// The probabilities are taken as given. They are not required to be
// non-negative or to sum to 1; TotalMass reports their sum. Values
// may repeat, in which case their probabilities add.
type Discrete struct {
	Values []float64
	Probs  []float64
}

var _ DiscreteDist = Discrete{}

// NewDiscrete returns the distribution that takes values[i] with
// probability pmf[i]. The slices are not copied. NewDiscrete returns
// ErrLengthMismatch if values and pmf differ in length; no other
// validation is performed.
func NewDiscrete(values, pmf []float64) (Discrete, error) {
	if len(values) != len(pmf) {
		return Discrete{}, ErrLengthMismatch
	}
	return Discrete{Values: values, Probs: pmf}, nil
}

// Mean returns the probability-weighted mean Σ x·p of d.
func (d Discrete) Mean() float64 {
	mean := 0.0
	for i, x := range d.Values {
		mean += x * d.Probs[i]
	}
	return mean
}

// Variance returns Σ (x-μ)²·p, where μ is d.Mean(). The result is not
// rounded.
func (d Discrete) Variance() float64 {
	mean := d.Mean()
	variance := 0.0
	for i, x := range d.Values {
		dev := x - mean
		variance += dev * dev * d.Probs[i]
	}
	return variance
}

// StdDev returns the square root of d.Variance().
func (d Discrete) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// TotalMass returns the sum of d's probabilities.
func (d Discrete) TotalMass() float64 {
	total := 0.0
	for _, p := range d.Probs {
		total += p
	}
	return total
}

// PMF returns Pr[X = x], the sum of the probabilities of values equal to x.
func (d Discrete) PMF(x float64) float64 {
	p := 0.0
	for i, v := range d.Values {
		if v == x {
			p += d.Probs[i]
		}
	}
	return p
}

// PMFEach returns PMF(xs[i]) for each i.
func (d Discrete) PMFEach(xs []float64) []float64 {
	return atEach(d.PMF, xs)
}

// CDF returns Pr[X <= x].
func (d Discrete) CDF(x float64) float64 {
	p := 0.0
	for i, v := range d.Values {
		if v <= x {
			p += d.Probs[i]
		}
	}
	return p
}

// CDFEach returns CDF(xs[i]) for each i.
func (d Discrete) CDFEach(xs []float64) []float64 {
	return atEach(d.CDF, xs)
}

// Bounds returns the smallest and largest value of d. If d has no
// values, both bounds are NaN.
func (d Discrete) Bounds() (float64, float64) {
	return Bounds(d.Values)
}

// Support returns the distinct values of d in ascending order.
func (d Discrete) Support() []float64 {
	return distinct(d.Values)
}

// Variance returns the variance of the discrete random variable that
// takes values[i] with probability pmf[i], rounded to four decimal
// places.
//
// The mean μ = Σ values[i]·pmf[i] and the variance Σ (values[i]-μ)²·pmf[i]
// are summed in index order. Probabilities are not checked; the only
// error is ErrLengthMismatch when values and pmf differ in length.
func Variance(values, pmf []float64) (float64, error) {
	d, err := NewDiscrete(values, pmf)
	if err != nil {
		return 0, err
	}
	return Round(d.Variance(), 4), nil
}
