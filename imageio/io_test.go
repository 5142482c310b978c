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

package imageio

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/kovidgoyal/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePGM(t *testing.T) {
	img := NewGray([]uint8{0, 64, 128, 192, 255, 1}, 3, 2)

	var buf bytes.Buffer
	require.NoError(t, EncodePGM(&buf, img))
	want := append([]byte("P5\n3 2\n255\n"), 0, 64, 128, 192, 255, 1)
	assert.Equal(t, want, buf.Bytes())
}

func TestEncodePGMSubImage(t *testing.T) {
	full := NewGray([]uint8{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, 3, 3)
	sub := full.SubImage(image.Rect(1, 1, 3, 3)).(*image.Gray)

	var buf bytes.Buffer
	require.NoError(t, EncodePGM(&buf, sub))
	assert.Equal(t, append([]byte("P5\n2 2\n255\n"), 5, 6, 8, 9), buf.Bytes())
}

func TestSavePGM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pgm")
	require.NoError(t, Save(path, NewGray([]uint8{9, 8, 7, 6}, 2, 2)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, append([]byte("P5\n2 2\n255\n"), 9, 8, 7, 6), data)
}

func TestSavePNGRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	gray := NewGray([]uint8{0, 50, 100, 150, 200, 250}, 3, 2)
	require.NoError(t, Save(path, gray))

	img, err := Open(path)
	require.NoError(t, err)
	pix, w, h := Pixels(img)
	require.Equal(t, 3, w)
	require.Equal(t, 2, h)
	for i, v := range gray.Pix {
		assert.Equal(t, []uint8{v, v, v}, pix[3*i:3*i+3], "pixel %d", i)
	}
}

func TestToNRGB(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			src.Set(x, y, color.RGBA{uint8(x * 10), uint8(y * 10), 77, 255})
		}
	}
	sub := src.SubImage(image.Rect(1, 2, 4, 4))

	got, err := ToNRGB(sub)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), got.Bounds())
	assert.Equal(t, imaging.NRGBColor{R: 10, G: 20, B: 77}, got.NRGBAt(0, 0))
	assert.Equal(t, imaging.NRGBColor{R: 30, G: 30, B: 77}, got.NRGBAt(2, 1))

	same, err := ToNRGB(got)
	require.NoError(t, err)
	assert.Same(t, got, same)
}

func TestPixelsCopiesStridedRows(t *testing.T) {
	img := imaging.NewNRGB(image.Rect(0, 0, 3, 3))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	sub := img.SubImage(image.Rect(1, 1, 3, 2)).(*imaging.NRGB)

	pix, w, h := Pixels(sub)
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, h)
	assert.Equal(t, []uint8{12, 13, 14, 15, 16, 17}, pix)
}
