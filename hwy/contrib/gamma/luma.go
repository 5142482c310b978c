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

package gamma

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-lumagamma/hwy"
)

// Coefficients weight the red, green and blue channels of a pixel.
// Engines assume the weights are non-negative and sum to 1.
type Coefficients struct {
	R, G, B float32
}

// NTSC holds the weights used when none are given.
var NTSC = Coefficients{R: 0.3, G: 0.59, B: 0.11}

// Normalize scales c so that its weights sum to 1.
// Negative, non-finite or all-zero weights are rejected with ErrCoefficients.
func (c Coefficients) Normalize() (Coefficients, error) {
	for _, w := range [...]float32{c.R, c.G, c.B} {
		if w < 0 || math.IsNaN(float64(w)) || math.IsInf(float64(w), 0) {
			return Coefficients{}, fmt.Errorf("%w: weight %v", ErrCoefficients, w)
		}
	}
	sum := c.R + c.G + c.B
	if sum <= 0 || math.IsInf(float64(sum), 0) {
		return Coefficients{}, fmt.Errorf("%w: weights sum to %v", ErrCoefficients, sum)
	}
	return Coefficients{R: c.R / sum, G: c.G / sum, B: c.B / sum}, nil
}

// String formats c the way the command line accepts it.
func (c Coefficients) String() string {
	return fmt.Sprintf("%g,%g,%g", c.R, c.G, c.B)
}

// Luma returns r*c.R + g*c.G + b*c.B without clamping.
func Luma(r, g, b uint8, c Coefficients) float32 {
	sum := float32(float32(r) * c.R)
	sum = float32(sum + float32(float32(g)*c.G))
	return float32(sum + float32(float32(b)*c.B))
}

// LumaVec computes Luma for every lane.
func LumaVec(r, g, b hwy.Vec[float32], c Coefficients) hwy.Vec[float32] {
	sum := hwy.Mul(r, hwy.Set(c.R))
	sum = hwy.Add(sum, hwy.Mul(g, hwy.Set(c.G)))
	return hwy.Add(sum, hwy.Mul(b, hwy.Set(c.B)))
}
