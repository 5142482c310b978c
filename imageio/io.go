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
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/kovidgoyal/go-parallel"
	"github.com/kovidgoyal/imaging"
	"golang.org/x/image/draw"
)

// Open decodes the image at path. Files ending in .ppm go through
// DecodePPM; everything else is decoded by imaging.Open and converted.
func Open(path string) (*imaging.NRGB, error) {
	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, err := DecodePPM(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return img, nil
	}

	if _, err := imaging.FormatFromFilename(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFormat, path, err)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFormat, path, err)
	}
	return ToNRGB(img)
}

// ToNRGB converts img to a packed RGB image with its origin at (0, 0).
// An *imaging.NRGB that is already packed is returned as is.
func ToNRGB(img image.Image) (*imaging.NRGB, error) {
	b := img.Bounds()
	if n, ok := img.(*imaging.NRGB); ok && b.Min == (image.Point{}) && n.Stride == 3*b.Dx() {
		return n, nil
	}

	dst := imaging.NewNRGB(image.Rect(0, 0, b.Dx(), b.Dy()))
	err := parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		draw.Draw(dst, image.Rect(0, start, b.Dx(), limit), img, image.Pt(b.Min.X, b.Min.Y+start), draw.Src)
	}, 0, b.Dy())
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// Pixels returns the packed RGB bytes of img with its dimensions.
func Pixels(img *imaging.NRGB) (pix []uint8, width, height int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	if img.Stride == 3*width {
		return img.Pix[:3*width*height], width, height
	}
	pix = make([]uint8, 0, 3*width*height)
	for y := range height {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		pix = append(pix, img.Pix[off:off+3*width]...)
	}
	return pix, width, height
}

// Save writes img to path. A .pgm extension selects EncodePGM; any other
// extension is handled by imaging.Save.
func Save(path string, img *image.Gray) (err error) {
	if !strings.EqualFold(filepath.Ext(path), ".pgm") {
		return imaging.Save(img, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return EncodePGM(f, img)
}
