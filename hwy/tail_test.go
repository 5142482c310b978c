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

package hwy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessWithTailCoverage(t *testing.T) {
	lanes := MaxLanes[float32]()
	sizes := []int{0, 1, lanes - 1, lanes, lanes + 1, 2 * lanes, 3*lanes + 2, 256}

	for _, size := range sizes {
		hits := make([]int, size)
		var fulls, tails int
		lastOffset := -1

		ProcessWithTail[float32](size,
			func(offset int) {
				require.Greater(t, offset, lastOffset, "size %d: offsets not increasing", size)
				require.LessOrEqual(t, offset+lanes, size, "size %d: full batch past end", size)
				lastOffset = offset
				fulls++
				for i := offset; i < offset+lanes; i++ {
					hits[i]++
				}
			},
			func(offset, count int) {
				tails++
				require.Less(t, count, lanes, "size %d: tail as wide as a batch", size)
				require.Equal(t, size, offset+count, "size %d: tail does not end at size", size)
				for i := offset; i < offset+count; i++ {
					hits[i]++
				}
			},
		)

		for i, h := range hits {
			assert.Equal(t, 1, h, "size %d: index %d covered %d times", size, i, h)
		}
		assert.Equal(t, size/lanes, fulls, "size %d: full batches", size)
		wantTails := 0
		if size%lanes != 0 {
			wantTails = 1
		}
		assert.Equal(t, wantTails, tails, "size %d: tail calls", size)
	}
}

func TestProcessWithTailNegativeSize(t *testing.T) {
	called := false
	ProcessWithTail[float32](-5,
		func(int) { called = true },
		func(int, int) { called = true },
	)
	assert.False(t, called)
}

func TestProcessWithTailLaneTypes(t *testing.T) {
	// Narrower element types get more lanes per batch.
	var n8, n32 int
	ProcessWithTail[uint8](64, func(int) { n8++ }, func(int, int) {})
	ProcessWithTail[float32](64, func(int) { n32++ }, func(int, int) {})
	assert.Equal(t, 64/MaxLanes[uint8](), n8)
	assert.Equal(t, 64/MaxLanes[float32](), n32)
	assert.GreaterOrEqual(t, n32, n8)
}
