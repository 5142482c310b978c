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
	"errors"
	"fmt"
	"time"

	"github.com/ajroetker/go-lumagamma/hwy/contrib/gamma"
	"github.com/codahale/hdrhistogram"
	"gonum.org/v1/gonum/stat"
)

// ErrIterations reports a benchmark asked to run fewer than one time.
var ErrIterations = errors.New("pipeline: iterations must be positive")

// Histogram bounds in nanoseconds. Longer runs are recorded as the maximum.
const (
	minRecorded = 1
	maxRecorded = int64(time.Minute)
	sigFigs     = 3
)

// Stats summarizes repeated runs of one engine over one image.
type Stats struct {
	Variant    gamma.Variant
	Iterations int
	Pixels     int

	Total  time.Duration
	Mean   time.Duration
	StdDev time.Duration
	Min    time.Duration
	P50    time.Duration
	P99    time.Duration
	Max    time.Duration
}

// MegapixelsPerSecond is the throughput at the mean run time.
func (s Stats) MegapixelsPerSecond() float64 {
	if s.Mean <= 0 {
		return 0
	}
	return float64(s.Pixels) / s.Mean.Seconds() / 1e6
}

// Benchmark runs e over src iterations times, writing into dst each time,
// and returns the timing distribution. The arguments follow Engine.Apply.
func Benchmark(e gamma.Engine, src []uint8, width, height int, c gamma.Coefficients, g float32, iterations int, dst []uint8) (Stats, error) {
	if iterations <= 0 {
		return Stats{}, fmt.Errorf("%w: %d", ErrIterations, iterations)
	}
	if err := gamma.Validate(src, width, height, c, g, dst); err != nil {
		return Stats{}, err
	}

	hist := hdrhistogram.New(minRecorded, maxRecorded, sigFigs)
	samples := make([]float64, iterations)
	var total time.Duration
	for i := range iterations {
		start := time.Now()
		e.Apply(src, width, height, c, g, dst)
		d := time.Since(start)

		total += d
		samples[i] = float64(d)
		if err := hist.RecordValue(min(max(int64(d), minRecorded), maxRecorded)); err != nil {
			return Stats{}, fmt.Errorf("pipeline: recording run %d: %w", i, err)
		}
	}

	mean, std := stat.MeanStdDev(samples, nil)
	if iterations == 1 {
		std = 0
	}
	s := Stats{
		Variant:    e.Variant(),
		Iterations: iterations,
		Pixels:     width * height,
		Total:      total,
		Mean:       time.Duration(mean),
		StdDev:     time.Duration(std),
		Min:        time.Duration(hist.Min()),
		P50:        time.Duration(hist.ValueAtQuantile(50)),
		P99:        time.Duration(hist.ValueAtQuantile(99)),
		Max:        time.Duration(hist.Max()),
	}
	Logger().Debug("benchmark finished",
		"variant", s.Variant,
		"iterations", s.Iterations,
		"mean", s.Mean,
		"p99", s.P99,
	)
	return s, nil
}
