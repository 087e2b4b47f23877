// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"rsc.io/pmfstat/internal/stats"
)

const twoDists = `
[[dist]]
name   = "uniform4"
values = [1, 2, 3, 4]
pmf    = [0.25, 0.25, 0.25, 0.25]

[[dist]]
name   = "skewed"
values = [1000, 2000, 3000]
pmf    = [0.005, 0.005, 0.99]
`

func TestDecode(t *testing.T) {
	file, err := Decode(strings.NewReader(twoDists))
	require.NoError(t, err)

	want := &File{Dists: []Dist{
		{Name: "uniform4", Values: []float64{1, 2, 3, 4}, PMF: []float64{0.25, 0.25, 0.25, 0.25}},
		{Name: "skewed", Values: []float64{1000, 2000, 3000}, PMF: []float64{0.005, 0.005, 0.99}},
	}}
	if diff := cmp.Diff(want, file); diff != "" {
		t.Errorf("unexpected file (-want +got):\n%s", diff)
	}

	d, err := file.Dists[1].Discrete()
	require.NoError(t, err)
	v, err := stats.Variance(d.Values, d.Probs)
	require.NoError(t, err)
	require.Equal(t, 24775.0, v)
}

func TestDecodeEmpty(t *testing.T) {
	file, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, file.Dists)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing name",
			input:   "[[dist]]\nvalues = [1]\npmf = [1.0]\n",
			wantErr: "dist #1: missing name",
		},
		{
			name:    "duplicate name",
			input:   "[[dist]]\nname = \"a\"\n[[dist]]\nname = \"a\"\n",
			wantErr: `dist "a": duplicate name`,
		},
		{
			name:    "unknown key",
			input:   "[[dist]]\nname = \"a\"\nweights = [1.0]\n",
			wantErr: "unknown keys: dist.weights",
		},
		{
			name:    "not toml",
			input:   "[[dist]\n",
			wantErr: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestDecodeLengthMismatch(t *testing.T) {
	_, err := Decode(strings.NewReader("[[dist]]\nname = \"bad\"\nvalues = [1]\npmf = [0.8, 0.2]\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, stats.ErrLengthMismatch))
	require.Contains(t, err.Error(), `dist "bad"`)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dists.toml")
	require.NoError(t, os.WriteFile(path, []byte(twoDists), 0o644))

	file, err := Load(path)
	require.NoError(t, err)
	require.Len(t, file.Dists, 2)
	require.Equal(t, "uniform4", file.Dists[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}
