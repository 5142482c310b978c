// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ajroetker/go-lumagamma/hwy/contrib/gamma"
	"github.com/ajroetker/go-lumagamma/pipeline"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var errUsage = errors.New("usage")

type rootFlags struct {
	variant    string
	iterations int
	output     string
	coeffs     string
	gamma      float32
	config     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "gammacorrect [flags] input",
		Short: "Convert an image to gamma-corrected grayscale",
		Long: "gammacorrect projects every pixel onto a weighted luma value and raises it\n" +
			"to the given gamma with a series-approximated power function.\n\n" +
			"Engines: " + strings.Join(variantNames(), ", ") + ".",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if f.verbose {
				level = slog.LevelDebug
			}
			pipeline.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.config != "" {
				if len(args) > 0 {
					return fmt.Errorf("%w: --config takes no input file", errUsage)
				}
				return runBatch(cmd.OutOrStdout(), f.config)
			}
			if len(args) == 0 {
				return fmt.Errorf("%w: missing input file", errUsage)
			}
			opts, err := f.options(cmd.Flags())
			if err != nil {
				return err
			}
			return runOne(cmd.OutOrStdout(), args[0], f.outputFor(args[0]), opts)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.variant, "variant", "V", gamma.LUTVector.String(), "engine id (0-4) or name")
	fs.IntVarP(&f.iterations, "benchmark", "B", 0, "run `n` times and report timings (-B alone means 1)")
	fs.Lookup("benchmark").NoOptDefVal = "1"
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: input with .pgm extension)")
	fs.StringVar(&f.config, "config", "", "YAML batch `file`; replaces the input argument")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "log debug details")
	addCorrectionFlags(fs, &f.coeffs, &f.gamma)

	cmd.AddCommand(newVerifyCmd(), newInfoCmd())
	return cmd
}

// addCorrectionFlags registers the flags shared by the root and verify
// commands.
func addCorrectionFlags(fs *pflag.FlagSet, coeffs *string, g *float32) {
	fs.StringVar(coeffs, "coeffs", gamma.NTSC.String(), "channel weights `r,g,b`, normalized to sum 1")
	fs.Float32Var(g, "gamma", 0, "exponent, must be >= 0 (required)")
}

func (f *rootFlags) options(fs *pflag.FlagSet) ([]pipeline.Option, error) {
	v, err := gamma.ParseVariant(f.variant)
	if err != nil {
		return nil, err
	}
	c, err := parseCoeffs(f.coeffs)
	if err != nil {
		return nil, err
	}
	g, err := requiredGamma(fs, f.gamma)
	if err != nil {
		return nil, err
	}
	if f.iterations < 0 {
		return nil, fmt.Errorf("%w: %d", pipeline.ErrIterations, f.iterations)
	}
	return []pipeline.Option{
		pipeline.WithVariant(v),
		pipeline.WithCoefficients(c),
		pipeline.WithGamma(g),
		pipeline.WithIterations(f.iterations),
	}, nil
}

func (f *rootFlags) outputFor(input string) string {
	if f.output != "" {
		return f.output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".pgm"
}

func requiredGamma(fs *pflag.FlagSet, g float32) (float32, error) {
	if !fs.Changed("gamma") {
		return 0, fmt.Errorf("%w: --gamma is required", gamma.ErrGamma)
	}
	if err := gamma.ValidateGamma(g); err != nil {
		return 0, err
	}
	return g, nil
}

// parseCoeffs reads "r,g,b" and normalizes the weights.
func parseCoeffs(s string) (gamma.Coefficients, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return gamma.Coefficients{}, fmt.Errorf("%w: %q needs three comma-separated weights", gamma.ErrCoefficients, s)
	}
	var errs []error
	w := lo.Map(parts, func(p string, _ int) float32 {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			errs = append(errs, err)
		}
		return float32(v)
	})
	if len(errs) > 0 {
		return gamma.Coefficients{}, fmt.Errorf("%w: %q: %w", gamma.ErrCoefficients, s, errors.Join(errs...))
	}
	return gamma.Coefficients{R: w[0], G: w[1], B: w[2]}.Normalize()
}

func variantNames() []string {
	return lo.Map(gamma.Variants(), func(v gamma.Variant, _ int) string {
		return fmt.Sprintf("%d=%s", int(v), v)
	})
}

func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

func runOne(w io.Writer, input, output string, opts []pipeline.Option) error {
	res, err := pipeline.Run(input, output, opts...)
	if err != nil {
		return err
	}
	p := printer()
	b := res.Gray.Bounds()
	p.Fprintf(w, "%s -> %s (%d x %d, %s, coeffs %s, gamma %g)\n",
		input, output, b.Dx(), b.Dy(), res.Variant, res.Coefficients, res.Gamma)
	if res.Stats != nil {
		printStats(p, w, *res.Stats)
	}
	return nil
}

func printStats(p *message.Printer, w io.Writer, s pipeline.Stats) {
	p.Fprintf(w, "Ran %d times. Took %v with an average of %v (stddev %v).\n",
		s.Iterations, s.Total, s.Mean, s.StdDev)
	p.Fprintf(w, "  min %v  p50 %v  p99 %v  max %v  %.2f MP/s\n",
		s.Min, s.P50, s.P99, s.Max, s.MegapixelsPerSecond())
}

func runBatch(w io.Writer, path string) error {
	cfg, err := pipeline.LoadConfig(path)
	if err != nil {
		return err
	}
	results, err := pipeline.RunBatch(cfg)
	p := printer()
	done := lo.Compact(results)
	for _, res := range done {
		p.Fprintf(w, "%s -> %s (%s)\n", res.Input, res.Output, res.Variant)
		if res.Stats != nil {
			printStats(p, w, *res.Stats)
		}
	}
	p.Fprintf(w, "%d of %d jobs succeeded\n", len(done), len(results))
	return err
}
