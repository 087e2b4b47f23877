// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"strconv"
)

// Round returns x rounded to places decimal places.
//
// Rounding is decided on the exact binary value of x, so 2.675 (stored
// as 2.67499999...) rounds to 2.67. Exact ties round half to even.
// NaN and infinities are returned unchanged, as is x when places is
// negative.
func Round(x float64, places int) float64 {
	if places < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return r
}
