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
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestCurrentWidth(t *testing.T) {
	width := CurrentWidth()
	assert.Contains(t, []int{16, 32, 64}, width)
	assert.Equal(t, CurrentLevel().String(), CurrentName())

	// Batch widths must divide the 256 entry table evenly.
	assert.Zero(t, 256%MaxLanes[float32]())
	assert.Equal(t, width/4, MaxLanes[float32]())
	assert.Equal(t, width/8, MaxLanes[float64]())
	assert.Equal(t, width, MaxLanes[uint8]())
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.value)
		assert.Equal(t, tt.want, NoSimdEnv(), "HWY_NO_SIMD=%q", tt.value)
	}
}

func TestScalarModeWidth(t *testing.T) {
	level, width := currentLevel, currentWidth
	t.Cleanup(func() { currentLevel, currentWidth = level, width })

	setScalarMode()
	assert.Equal(t, DispatchScalar, CurrentLevel())
	assert.Equal(t, 4, MaxLanes[float32]())
}
