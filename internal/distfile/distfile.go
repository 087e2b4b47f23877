// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distfile reads named discrete distributions from TOML.
//
// A file holds any number of [[dist]] tables:
//
//	[[dist]]
//	name   = "fair-coin"
//	values = [0, 1]
//	pmf    = [0.5, 0.5]
package distfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"rsc.io/pmfstat/internal/stats"
)

// A Dist is one named distribution. PMF[i] is the probability of
// Values[i].
type Dist struct {
	Name   string    `toml:"name"`
	Values []float64 `toml:"values"`
	PMF    []float64 `toml:"pmf"`
}

// A File is the decoded contents of a distribution file, in file
// order.
type File struct {
	Dists []Dist `toml:"dist"`
}

// Load reads and validates the distribution file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode reads and validates a distribution file from r.
//
// Every dist must have a unique non-empty name and as many
// probabilities as values. A length mismatch is reported as an error
// wrapping stats.ErrLengthMismatch. Keys other than name, values and
// pmf are rejected.
func Decode(r io.Reader) (*File, error) {
	var file File
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := file.validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

func (f *File) validate() error {
	seen := make(map[string]bool, len(f.Dists))
	for i, d := range f.Dists {
		if d.Name == "" {
			return fmt.Errorf("dist #%d: missing name", i+1)
		}
		if seen[d.Name] {
			return fmt.Errorf("dist %q: duplicate name", d.Name)
		}
		seen[d.Name] = true
		if len(d.Values) != len(d.PMF) {
			return fmt.Errorf("dist %q: %d values, %d probabilities: %w", d.Name, len(d.Values), len(d.PMF), stats.ErrLengthMismatch)
		}
	}
	return nil
}

// Discrete returns d as a distribution.
func (d Dist) Discrete() (stats.Discrete, error) {
	return stats.NewDiscrete(d.Values, d.PMF)
}
