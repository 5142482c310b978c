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

// maxBatch is the widest float32 batch any dispatch level reports.
const maxBatch = 16

type vectorEngine struct{}

func (vectorEngine) Variant() Variant { return Vector }

// Apply corrects hwy.MaxLanes[float32]() pixels per batch. Lane k of a
// batch starting at pixel offset is written to dst[offset+k]; the trailing
// pixels that do not fill a batch go through the scalar path.
func (vectorEngine) Apply(src []uint8, width, height int, c Coefficients, g float32, dst []uint8) {
	n := width * height
	lanes := hwy.MaxLanes[float32]()
	var rs, gs, bs [maxBatch]float32

	hwy.ProcessWithTail[float32](n,
		func(offset int) {
			px := src[3*offset : 3*(offset+lanes)]
			for k := range lanes {
				rs[k] = float32(px[3*k])
				gs[k] = float32(px[3*k+1])
				bs[k] = float32(px[3*k+2])
			}
			luma := LumaVec(hwy.Load(rs[:lanes]), hwy.Load(gs[:lanes]), hwy.Load(bs[:lanes]), c)
			out := correctVec(levelVec(luma), g)

			row := dst[offset : offset+lanes]
			for k := range row {
				row[k] = toByte(out.Lane(k))
			}
		},
		func(offset, count int) {
			applyScalar(src[3*offset:], c, g, dst[offset:offset+count])
		},
	)
}
