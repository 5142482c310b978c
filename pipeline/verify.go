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
	"github.com/ajroetker/go-lumagamma/hwy/contrib/gamma"
	"github.com/ajroetker/go-lumagamma/hwy/contrib/workerpool"
	"github.com/ajroetker/go-lumagamma/imageio"
	"github.com/kovidgoyal/imaging"
)

// Check compares one engine's output against the scalar engine.
type Check struct {
	Variant gamma.Variant

	// Mismatches counts differing pixels. First is the index of the first
	// one, or -1.
	Mismatches int
	First      int
	Want, Got  uint8

	// MaxDeviation is the largest absolute byte difference.
	MaxDeviation int
}

// Report holds the checks of one Verify call in gamma.Variants order,
// scalar excluded.
type Report struct {
	Width, Height int
	Checks        []Check
}

// OK reports whether every series engine matched the scalar engine
// byte for byte. The reference engine is not required to match.
func (r *Report) OK() bool {
	for _, c := range r.Checks {
		if c.Variant.Series() && c.Mismatches > 0 {
			return false
		}
	}
	return true
}

// Verify runs every engine on img and compares each result with the
// scalar engine's. Engines run concurrently on separate output buffers.
func Verify(img *imaging.NRGB, c gamma.Coefficients, g float32) (*Report, error) {
	c, err := c.Normalize()
	if err != nil {
		return nil, err
	}
	src, width, height := imageio.Pixels(img)
	if err := gamma.Validate(src, width, height, c, g, make([]uint8, width*height)); err != nil {
		return nil, err
	}

	variants := gamma.Variants()
	outs := make([][]uint8, len(variants))
	pool := workerpool.New(len(variants))
	defer pool.Close()
	pool.Each(len(variants), func(i int) {
		e, _ := gamma.New(variants[i])
		outs[i] = make([]uint8, width*height)
		e.Apply(src, width, height, c, g, outs[i])
	})

	var want []uint8
	for i, v := range variants {
		if v == gamma.Scalar {
			want = outs[i]
		}
	}

	r := &Report{Width: width, Height: height}
	for i, v := range variants {
		if v == gamma.Scalar {
			continue
		}
		check := compare(v, want, outs[i])
		if check.Mismatches > 0 && v.Series() {
			Logger().Warn("engine disagrees with scalar",
				"variant", v,
				"mismatches", check.Mismatches,
				"first", check.First,
			)
		}
		r.Checks = append(r.Checks, check)
	}
	return r, nil
}

func compare(v gamma.Variant, want, got []uint8) Check {
	c := Check{Variant: v, First: -1}
	for i := range want {
		d := int(got[i]) - int(want[i])
		if d == 0 {
			continue
		}
		if c.Mismatches == 0 {
			c.First, c.Want, c.Got = i, want[i], got[i]
		}
		c.Mismatches++
		c.MaxDeviation = max(c.MaxDeviation, d, -d)
	}
	return c
}
