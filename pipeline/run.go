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

// Package pipeline connects image files, engine selection and timing around
// the gamma engines.
//
// Run handles one file. RunBatch processes the jobs of a YAML config
// concurrently, one image per worker. Verify checks that the series engines
// agree on an image.
package pipeline

import (
	"fmt"
	"image"

	"github.com/ajroetker/go-lumagamma/hwy/contrib/gamma"
	"github.com/ajroetker/go-lumagamma/imageio"
	"github.com/kovidgoyal/imaging"
)

// Result describes one completed run.
type Result struct {
	Input, Output string

	Variant      gamma.Variant
	Coefficients gamma.Coefficients // normalized
	Gamma        float32

	Gray *image.Gray

	// Stats is nil unless iterations were requested.
	Stats *Stats
}

// Process corrects img in memory.
func Process(img *imaging.NRGB, opts ...Option) (*Result, error) {
	o := NewOptions(opts...)

	c, err := o.Coefficients.Normalize()
	if err != nil {
		return nil, err
	}
	if err := gamma.ValidateGamma(o.Gamma); err != nil {
		return nil, err
	}
	e, err := gamma.New(o.Variant)
	if err != nil {
		return nil, err
	}

	src, width, height := imageio.Pixels(img)
	dst := make([]uint8, width*height)
	if err := gamma.Validate(src, width, height, c, o.Gamma, dst); err != nil {
		return nil, err
	}
	Logger().Debug("correcting image",
		"width", width,
		"height", height,
		"variant", o.Variant,
		"coeffs", c,
		"gamma", o.Gamma,
	)

	res := &Result{
		Variant:      o.Variant,
		Coefficients: c,
		Gamma:        o.Gamma,
		Gray:         imageio.NewGray(dst, width, height),
	}
	if o.Iterations > 0 {
		s, err := Benchmark(e, src, width, height, c, o.Gamma, o.Iterations, dst)
		if err != nil {
			return nil, err
		}
		res.Stats = &s
		return res, nil
	}
	e.Apply(src, width, height, c, o.Gamma, dst)
	return res, nil
}

// Run reads input, corrects it and writes the result to output.
func Run(input, output string, opts ...Option) (*Result, error) {
	img, err := imageio.Open(input)
	if err != nil {
		return nil, err
	}
	res, err := Process(img, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	if err := imageio.Save(output, res.Gray); err != nil {
		return nil, fmt.Errorf("writing %s: %w", output, err)
	}
	res.Input, res.Output = input, output
	Logger().Info("wrote image", "input", input, "output", output, "variant", res.Variant)
	return res, nil
}
