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
	"math"

	"github.com/ajroetker/go-lumagamma/hwy"
)

// Every engine maps real values to bytes with these helpers: round half up,
// then saturate to [0, 255]. Using one rule everywhere is what keeps direct
// evaluation and table lookup byte-identical.

func roundHalfUp(f float32) float32 {
	return float32(math.Floor(float64(float32(f + 0.5))))
}

func roundHalfUpVec(v hwy.Vec[float32]) hwy.Vec[float32] {
	return hwy.Floor(hwy.Add(v, hwy.Set[float32](0.5)))
}

// level quantizes a luma value to one of the 256 table indices, kept as a
// float so it can feed Pow directly.
func level(luma float32) float32 {
	return min(max(roundHalfUp(luma), 0), 255)
}

func levelVec(luma hwy.Vec[float32]) hwy.Vec[float32] {
	return hwy.Min(hwy.Max(roundHalfUpVec(luma), hwy.Zero[float32]()), hwy.Set[float32](255))
}

// LumaByte quantizes a pixel's luma to a byte.
func LumaByte(r, g, b uint8, c Coefficients) uint8 {
	return uint8(level(Luma(r, g, b, c)))
}

// toByte saturates an already rounded value. NaN, which Exp yields for
// absurdly large exponents, maps to 0.
func toByte(f float32) uint8 {
	switch {
	case !(f >= 0):
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(f)
	}
}

// Correct returns round(Pow(v/255, g) * 255) as a byte.
func Correct(v uint8, g float32) uint8 {
	return correctLevel(float32(v), g)
}

func correctLevel(l, g float32) uint8 {
	p := Pow(float32(l/255), g)
	return toByte(roundHalfUp(float32(p * 255)))
}

// correctVec returns the rounded corrected values of the levels in l.
// The caller narrows each lane with toByte.
func correctVec(l hwy.Vec[float32], g float32) hwy.Vec[float32] {
	p := PowVec(hwy.Div(l, hwy.Set[float32](255)), g)
	return roundHalfUpVec(hwy.Mul(p, hwy.Set[float32](255)))
}
