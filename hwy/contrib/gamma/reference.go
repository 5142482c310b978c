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

import "math"

// referenceEngine replaces the series with math.Pow. Its output is close to,
// but not byte-identical with, the series engines.
type referenceEngine struct{}

func (referenceEngine) Variant() Variant { return Reference }

func (referenceEngine) Apply(src []uint8, width, height int, c Coefficients, g float32, dst []uint8) {
	for i := range dst[:width*height] {
		p := src[3*i : 3*i+3 : 3*i+3]
		dst[i] = CorrectExact(LumaByte(p[0], p[1], p[2], c), g)
	}
}

// CorrectExact is Correct with math.Pow in place of the series.
func CorrectExact(v uint8, g float32) uint8 {
	p := float32(math.Pow(float64(float32(v)/255), float64(g)))
	return toByte(roundHalfUp(float32(p * 255)))
}
