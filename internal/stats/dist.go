// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A DiscreteDist is a discrete statistical distribution with finite
// support.
//
// Unlike distributions defined on a lattice, the support points of a
// DiscreteDist may be arbitrary float64 values. PMF therefore matches
// x exactly rather than rounding it to a defined point.
type DiscreteDist interface {
	// PMF returns the value of the probability mass function
	// Pr[X = x].
	PMF(x float64) float64

	// CDF returns the cumulative probability Pr[X <= x].
	//
	// Note that while continuous and discrete probability
	// distributions differ in how they represent the probability
	// function, both have continuous cumulative distribution
	// functions. However, discrete distributions generally have
	// discontinuous CDFs.
	CDF(x float64) float64

	// Bounds returns the smallest and largest points of the
	// support. PMF(x) is 0 for all x outside these bounds.
	Bounds() (float64, float64)
}
