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

type scalarEngine struct{}

func (scalarEngine) Variant() Variant { return Scalar }

func (scalarEngine) Apply(src []uint8, width, height int, c Coefficients, g float32, dst []uint8) {
	applyScalar(src, c, g, dst[:width*height])
}

// applyScalar corrects len(dst) pixels read from the start of src.
func applyScalar(src []uint8, c Coefficients, g float32, dst []uint8) {
	for i := range dst {
		p := src[3*i : 3*i+3 : 3*i+3]
		dst[i] = correctLevel(level(Luma(p[0], p[1], p[2], c)), g)
	}
}
