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

package pipeline

import (
	"math"

	"github.com/ajroetker/go-lumagamma/hwy/contrib/gamma"
)

// Options controls a single correction run.
type Options struct {
	Variant gamma.Variant

	// Iterations > 0 runs the engine that many times and reports timing
	// statistics. Zero runs it once without measuring.
	Iterations int

	// Coefficients are normalized before use.
	Coefficients gamma.Coefficients

	// Gamma has no default. A run without WithGamma fails with
	// gamma.ErrGamma.
	Gamma float32
}

// Option configures a run.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Variant:      gamma.LUTVector,
		Coefficients: gamma.NTSC,
		Gamma:        float32(math.NaN()),
	}
}

// NewOptions applies opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithVariant selects the engine.
func WithVariant(v gamma.Variant) Option {
	return func(o *Options) { o.Variant = v }
}

// WithIterations enables benchmarking over n runs.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithCoefficients sets the channel weights.
func WithCoefficients(c gamma.Coefficients) Option {
	return func(o *Options) { o.Coefficients = c }
}

// WithGamma sets the exponent.
func WithGamma(g float32) Option {
	return func(o *Options) { o.Gamma = g }
}
