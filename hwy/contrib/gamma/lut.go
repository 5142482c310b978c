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

import "github.com/ajroetker/go-lumagamma/hwy"

// Table maps every luma byte to its corrected byte for one gamma.
// It depends only on gamma, never on the coefficients.
type Table [256]uint8

// BuildTable evaluates Correct once per possible luma value.
func BuildTable(g float32) Table {
	var t Table
	for v := range t {
		t[v] = Correct(uint8(v), g)
	}
	return t
}

// BuildTableVec fills the table a batch of hwy.MaxLanes[float32]() entries
// at a time. The result equals BuildTable(g).
func BuildTableVec(g float32) Table {
	var t Table
	lanes := hwy.MaxLanes[float32]()
	hwy.ProcessWithTail[float32](len(t),
		func(offset int) {
			out := correctVec(hwy.Iota(float32(offset)), g)
			for k := range lanes {
				t[offset+k] = toByte(out.Lane(k))
			}
		},
		func(offset, count int) {
			for v := offset; v < offset+count; v++ {
				t[v] = Correct(uint8(v), g)
			}
		},
	)
	return t
}

// Apply looks up the corrected value of every pixel in src.
func (t *Table) Apply(src []uint8, c Coefficients, dst []uint8) {
	for i := range dst {
		p := src[3*i : 3*i+3 : 3*i+3]
		dst[i] = t[LumaByte(p[0], p[1], p[2], c)]
	}
}

type lutEngine struct{}

func (lutEngine) Variant() Variant { return LUT }

func (lutEngine) Apply(src []uint8, width, height int, c Coefficients, g float32, dst []uint8) {
	t := BuildTable(g)
	t.Apply(src, c, dst[:width*height])
}

type lutVectorEngine struct{}

func (lutVectorEngine) Variant() Variant { return LUTVector }

func (lutVectorEngine) Apply(src []uint8, width, height int, c Coefficients, g float32, dst []uint8) {
	t := BuildTableVec(g)
	t.Apply(src, c, dst[:width*height])
}
