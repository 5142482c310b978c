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

// Package imageio reads RGB rasters for the gamma engines and writes their
// grayscale results.
//
// Binary PPM (P6) input is parsed by a strict decoder that rejects any file
// whose header or byte count does not match its content. Other formats are
// decoded with github.com/kovidgoyal/imaging and converted to packed RGB.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/kovidgoyal/imaging"
)

// ErrFormat reports a malformed or unsupported image.
var ErrFormat = errors.New("imageio: invalid image format")

// maxHeaderValue bounds each numeric header field.
const maxHeaderValue = math.MaxInt32 / 10

type headerReader struct {
	r *bufio.Reader
}

// next returns the next header byte, skipping '#' comments up to the end
// of the line.
func (h *headerReader) next() (byte, error) {
	for {
		c, err := h.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if c != '#' {
			return c, nil
		}
		for c != '\n' && c != '\r' {
			if c, err = h.r.ReadByte(); err != nil {
				return 0, err
			}
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (h *headerReader) skipSpace() error {
	for {
		c, err := h.next()
		if err != nil {
			return err
		}
		if !isSpace(c) {
			return h.r.UnreadByte()
		}
	}
}

// number parses a positive decimal header field.
func (h *headerReader) number(field string) (int, error) {
	if err := h.skipSpace(); err != nil {
		return 0, fmt.Errorf("%w: missing %s", ErrFormat, field)
	}
	n := 0
	for {
		c, err := h.next()
		if err != nil {
			return 0, fmt.Errorf("%w: truncated %s", ErrFormat, field)
		}
		if !isDigit(c) {
			if n == 0 {
				return 0, fmt.Errorf("%w: missing %s", ErrFormat, field)
			}
			return n, h.r.UnreadByte()
		}
		if n >= maxHeaderValue {
			return 0, fmt.Errorf("%w: %s too large", ErrFormat, field)
		}
		n = n*10 + int(c-'0')
	}
}

// DecodePPM reads a binary PPM image with a maximum value of 255.
//
// The raster must follow the header after exactly one whitespace byte and
// hold exactly width*height*3 bytes. Short or trailing content is an error.
func DecodePPM(r io.Reader) (*imaging.NRGB, error) {
	h := &headerReader{r: bufio.NewReader(r)}

	var magic [2]byte
	for i := range magic {
		c, err := h.next()
		if err != nil {
			return nil, fmt.Errorf("%w: missing magic number", ErrFormat)
		}
		magic[i] = c
	}
	if magic != [2]byte{'P', '6'} {
		return nil, fmt.Errorf("%w: magic number %q is not P6", ErrFormat, magic[:])
	}

	width, err := h.number("width")
	if err != nil {
		return nil, err
	}
	height, err := h.number("height")
	if err != nil {
		return nil, err
	}
	maxVal, err := h.number("max value")
	if err != nil {
		return nil, err
	}
	if maxVal != 255 {
		return nil, fmt.Errorf("%w: max value is %d, need 255", ErrFormat, maxVal)
	}
	if c, err := h.next(); err != nil || !isSpace(c) {
		return nil, fmt.Errorf("%w: no whitespace before raster", ErrFormat)
	}
	if width > math.MaxInt/3/height {
		return nil, fmt.Errorf("%w: %dx%d image too large", ErrFormat, width, height)
	}

	size := 3 * width * height
	pix, err := io.ReadAll(io.LimitReader(h.r, int64(size)+1))
	if err != nil {
		return nil, fmt.Errorf("imageio: reading raster: %w", err)
	}
	switch {
	case len(pix) < size:
		return nil, fmt.Errorf("%w: content smaller than declared (%d of %d bytes)", ErrFormat, len(pix), size)
	case len(pix) > size:
		return nil, fmt.Errorf("%w: content larger than declared", ErrFormat)
	}
	return imaging.NewNRGBWithContiguousRGBPixels(pix, 0, 0, width, height)
}
