// Copyright 2015 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Pmfstat computes the variance of discrete random variables.
//
// Usage:
//
//	pmfstat [--values x1,x2,... --pmf p1,p2,...] [--sample x1,x2,...] [--file dists.toml] [--plot]
//
// A discrete random variable is given by its possible values and its
// probability mass function: the variable takes value values[i] with
// probability pmf[i]. Pmfstat prints its variance
//
//	Var(X) = Σ (values[i] - μ)² · pmf[i],  μ = Σ values[i] · pmf[i]
//
// rounded to four decimal places. The probabilities are used as given;
// they need not sum to 1. The two lists must have the same length.
//
// Invoked with no inputs, pmfstat prints the variance of the variable
// taking values 1, 2 and 3 with probability 0.33 each.
//
// The --sample flag takes raw observations instead, each with
// probability 1/N, so the result is their population variance.
//
// The --file flag reads any number of named distributions from a TOML
// file and prints a table of their mean, variance and standard
// deviation.
//
// Example
//
// The file dists.toml contains:
//
//	[[dist]]
//	name   = "uniform4"
//	values = [1, 2, 3, 4]
//	pmf    = [0.25, 0.25, 0.25, 0.25]
//
//	[[dist]]
//	name   = "skewed"
//	values = [1000, 2000, 3000]
//	pmf    = [0.005, 0.005, 0.99]
//
// Then:
//
//	$ pmfstat --values 1,2,3,4 --pmf 0.25,0.25,0.25,0.25
//	1.25
//	$ pmfstat --file dists.toml
//	name      mean  variance  stddev
//	uniform4   2.5      1.25     1.118
//	skewed    2985     24775  157.4008
//	$
//
// With --plot, each distribution's probability mass function is also
// drawn as a bar chart.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rsc.io/pmfstat/internal/distfile"
	"rsc.io/pmfstat/internal/logutil"
	"rsc.io/pmfstat/internal/stats"
)

// Printed when no distribution is given.
var (
	demoValues = []float64{1, 2, 3}
	demoPMF    = []float64{0.33, 0.33, 0.33}
)

type options struct {
	values []float64
	pmf    []float64
	sample []float64
	file   string
	plot   bool
	log    logutil.LogConfig
}

// A namedDist is a distribution to report.
type namedDist struct {
	Name string
	D    stats.Discrete
}

func main() {
	os.Exit(pmfstat(os.Args[1:], os.Stdout, os.Stderr))
}

// pmfstat runs the command with args and returns the process exit
// status. Errors always go to stderr, whatever the log settings.
func pmfstat(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "pmfstat: %v\n", err)
		logutil.Error("pmfstat failed", zap.Error(err))
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "pmfstat",
		Short:         "Compute the variance of discrete random variables",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logutil.SetupLogger(&opts.log); err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), &opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64SliceVar(&opts.values, "values", nil, "possible `values` of the random variable")
	flags.Float64SliceVar(&opts.pmf, "pmf", nil, "`probabilities` of the values, in the same order")
	flags.Float64SliceVar(&opts.sample, "sample", nil, "raw `observations`, each with equal probability")
	flags.StringVarP(&opts.file, "file", "f", "", "TOML `file` of named distributions")
	flags.BoolVar(&opts.plot, "plot", false, "draw the probability mass function of each distribution")
	flags.StringVar(&opts.log.Level, "log-level", "warn", "log `level`")
	flags.StringVar(&opts.log.Format, "log-format", "console", "log `format`: console or json")
	flags.StringVar(&opts.log.Filename, "log-file", "", "write logs to `file` instead of stderr")
	flags.IntVar(&opts.log.MaxSize, "log-max-size", 64, "rotate the log file after this many `megabytes`")
	cmd.MarkFlagsRequiredTogether("values", "pmf")
	cmd.MarkFlagsMutuallyExclusive("values", "sample", "file")

	return cmd
}

// run evaluates the distributions selected by opts and writes the
// report to w.
func run(w io.Writer, opts *options) error {
	if opts.file != "" {
		file, err := distfile.Load(opts.file)
		if err != nil {
			return err
		}
		logutil.Debug("loaded distributions", zap.String("file", opts.file), zap.Int("count", len(file.Dists)))

		var dists []namedDist
		for _, d := range file.Dists {
			disc, err := d.Discrete()
			if err != nil {
				return fmt.Errorf("dist %q: %w", d.Name, err)
			}
			dists = append(dists, namedDist{d.Name, disc})
		}
		return report(w, dists, opts.plot)
	}

	var d stats.Discrete
	switch {
	case opts.sample != nil:
		d = stats.Sample{Xs: opts.sample}.Discrete()
	case opts.values != nil || opts.pmf != nil:
		var err error
		d, err = stats.NewDiscrete(opts.values, opts.pmf)
		if err != nil {
			return fmt.Errorf("%d values, %d probabilities: %w", len(opts.values), len(opts.pmf), err)
		}
	default:
		d = stats.Discrete{Values: demoValues, Probs: demoPMF}
	}

	v, err := stats.Variance(d.Values, d.Probs)
	if err != nil {
		return err
	}
	logutil.Debug("computed variance",
		zap.Int("support", len(d.Values)),
		zap.Float64("total-mass", d.TotalMass()),
		zap.Float64("variance", v))

	var buf bytes.Buffer
	fmt.Fprintln(&buf, format(v))
	if opts.plot {
		p := stats.Plot{D: d}
		if err := p.FASCII(&buf); err != nil {
			return err
		}
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// report writes a table of statistics for dists to w.
func report(w io.Writer, dists []namedDist, plot bool) error {
	out := [][]string{{"name", "mean", "variance", "stddev"}}
	for _, nd := range dists {
		v, err := stats.Variance(nd.D.Values, nd.D.Probs)
		if err != nil {
			return fmt.Errorf("dist %q: %w", nd.Name, err)
		}
		if m := nd.D.TotalMass(); stats.Round(m, 4) != 1 {
			logutil.Warn("probabilities do not sum to 1", zap.String("name", nd.Name), zap.Float64("total-mass", m))
		}
		out = append(out, []string{
			nd.Name,
			format(stats.Round(nd.D.Mean(), 4)),
			format(v),
			format(stats.Round(nd.D.StdDev(), 4)),
		})
	}

	var buf bytes.Buffer
	writeTable(&buf, out)

	if plot {
		for _, nd := range dists {
			fmt.Fprintf(&buf, "\n%s:\n", nd.Name)
			p := stats.Plot{D: nd.D}
			if err := p.FASCII(&buf); err != nil {
				return err
			}
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func format(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// writeTable writes out to buf as aligned columns with out[0] as the
// heading. Trailing blanks are trimmed from every line.
func writeTable(buf *bytes.Buffer, out [][]string) {
	numColumn := 0
	for _, row := range out {
		if numColumn < len(row) {
			numColumn = len(row)
		}
	}

	max := make([]int, numColumn)
	for _, row := range out {
		for i, s := range row {
			n := utf8.RuneCountInString(s)
			if max[i] < n {
				max[i] = n
			}
		}
	}

	// The heading is left-aligned, data right-aligned except for the
	// name column.
	for r, row := range out {
		var line strings.Builder
		for i, s := range row {
			switch {
			case i == 0:
				fmt.Fprintf(&line, "%-*s", max[i], s)
			case r == 0:
				fmt.Fprintf(&line, "  %-*s", max[i], s)
			default:
				fmt.Fprintf(&line, "  %*s", max[i], s)
			}
		}
		buf.WriteString(strings.TrimRight(line.String(), " "))
		buf.WriteByte('\n')
	}
}
