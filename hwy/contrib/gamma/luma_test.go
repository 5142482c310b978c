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
	"testing"

	"github.com/ajroetker/go-lumagamma/hwy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      Coefficients
		want    Coefficients
		wantErr bool
	}{
		{"ntsc", NTSC, NTSC, false},
		{"equal", Coefficients{1, 1, 1}, Coefficients{1.0 / 3, 1.0 / 3, 1.0 / 3}, false},
		{"scaled", Coefficients{3, 5.9, 1.1}, NTSC, false},
		{"red only", Coefficients{2, 0, 0}, Coefficients{1, 0, 0}, false},
		{"zero", Coefficients{}, Coefficients{}, true},
		{"negative", Coefficients{-1, 1, 1}, Coefficients{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Normalize()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrCoefficients)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.R, got.R, 1e-6)
			assert.InDelta(t, tt.want.G, got.G, 1e-6)
			assert.InDelta(t, tt.want.B, got.B, 1e-6)
			assert.NoError(t, ValidateCoefficients(got))
		})
	}
}

func TestLuma(t *testing.T) {
	assert.InDelta(t, 255, Luma(255, 255, 255, NTSC), 1e-3)
	assert.Equal(t, float32(0), Luma(0, 0, 0, NTSC))
	assert.Equal(t, float32(200), Luma(200, 17, 99, Coefficients{R: 1}))
	assert.Equal(t, uint8(255), LumaByte(255, 255, 255, NTSC))
	assert.Equal(t, uint8(100), LumaByte(100, 100, 100, Coefficients{1.0 / 3, 1.0 / 3, 1.0 / 3}))
}

func TestLumaVecMatchesScalar(t *testing.T) {
	lanes := hwy.MaxLanes[float32]()
	rs := make([]float32, lanes)
	gs := make([]float32, lanes)
	bs := make([]float32, lanes)

	c := Coefficients{0.2126, 0.7152, 0.0722}
	for base := 0; base < 256; base += lanes {
		for k := range lanes {
			rs[k] = float32((base + k) % 256)
			gs[k] = float32((base + 3*k + 17) % 256)
			bs[k] = float32((255 - base - k) & 0xff)
		}
		got := LumaVec(hwy.Load(rs), hwy.Load(gs), hwy.Load(bs), c)
		lv := levelVec(got)
		for k := range lanes {
			want := Luma(uint8(rs[k]), uint8(gs[k]), uint8(bs[k]), c)
			require.Equal(t, want, got.Lane(k), "lane %d", k)
			require.Equal(t, level(want), lv.Lane(k), "level lane %d", k)
		}
	}
}

func TestLevelRounding(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{-3, 0},
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{127.5, 128},
		{254.99998, 255},
		{255.4, 255},
		{300, 255},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, level(tt.in), "level(%v)", tt.in)
	}
}
