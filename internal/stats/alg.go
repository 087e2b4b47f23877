// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Miscellaneous helper algorithms

import "sort"

// atEach returns f(x) for each x in xs.
func atEach(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}

// distinct returns the distinct values of xs in ascending order.
// xs is not modified.
func distinct(xs []float64) []float64 {
	res := append([]float64(nil), xs...)
	sort.Float64s(res)
	out := res[:0]
	for _, x := range res {
		if len(out) > 0 && x == out[len(out)-1] {
			continue
		}
		out = append(out, x)
	}
	return out
}
