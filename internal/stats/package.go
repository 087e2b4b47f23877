// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes moments of discrete random variables given
// as parallel slices of values and probabilities.
package stats

import (
	"errors"
	"math"
)

var nan = math.NaN()

var (
	ErrLengthMismatch = errors.New("values and probabilities must be the same length")
)
