// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"bytes"
	"errors"
	"testing"
)

func TestPlotASCII(t *testing.T) {
	p := &Plot{
		D:     Discrete{Values: []float64{2, 1, 3}, Probs: []float64{0.5, 0.25, 0}},
		Width: 4,
	}
	var buf bytes.Buffer
	if err := p.FASCII(&buf); err != nil {
		t.Fatal(err)
	}
	want := "          1 | •• 0.25\n" +
		"          2 | •••• 0.5\n" +
		"          3 |  0\n"
	if got := buf.String(); got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestPlotWriteError(t *testing.T) {
	p := &Plot{D: Discrete{Values: []float64{1}, Probs: []float64{1}}}
	if err := p.FASCII(failWriter{}); err == nil {
		t.Error("expected write error")
	}
}
