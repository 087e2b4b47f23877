// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Plot is a bar chart of the probability mass function of a discrete
// distribution.
type Plot struct {
	// D is the distribution to plot.
	D Discrete

	// Width is the number of bar runes drawn for the most likely
	// value. If this is zero, a default width is used.
	Width int
}

// p.ASCII() is shorthand for p.FASCII(os.Stdout).
func (p *Plot) ASCII() error {
	return p.FASCII(os.Stdout)
}

// FASCII prints an ASCII representation of p.D's PMF to w, one line
// per support point in ascending order. Bars are scaled so that the
// most likely value gets p.Width runes. Values with non-positive
// probability get an empty bar.
func (p *Plot) FASCII(w io.Writer) error {
	width := p.Width
	if width == 0 {
		width = 60
	}

	xs := p.D.Support()
	ps := p.D.PMFEach(xs)
	_, highY := Bounds(ps)

	for i, x := range xs {
		n := 0
		if highY > 0 && ps[i] > 0 {
			n = int(float64(width)*ps[i]/highY + 0.5)
		}
		label := fmt.Sprintf("%7.5g", x)
		_, err := fmt.Fprintf(w, "%11s | %s %.4g\n", label, strings.Repeat("•", n), ps[i])
		if err != nil {
			return err
		}
	}
	return nil
}
