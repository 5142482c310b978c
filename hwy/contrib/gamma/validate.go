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
	"errors"
	"fmt"
	"math"
)

var (
	ErrDimensions     = errors.New("gamma: width and height must be positive")
	ErrBufferSize     = errors.New("gamma: buffer size does not match dimensions")
	ErrCoefficients   = errors.New("gamma: invalid coefficients")
	ErrGamma          = errors.New("gamma: exponent must be finite and non-negative")
	ErrUnknownVariant = errors.New("gamma: unknown engine variant")
)

// coefficientTolerance bounds how far normalized weights may drift from 1.
const coefficientTolerance = 1e-4

// Validate checks the arguments of Engine.Apply.
func Validate(src []uint8, width, height int, c Coefficients, g float32, dst []uint8) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if width > math.MaxInt/3/height {
		return fmt.Errorf("%w: %dx%d overflows", ErrDimensions, width, height)
	}
	n := width * height
	if len(src) != 3*n {
		return fmt.Errorf("%w: src has %d bytes, want %d", ErrBufferSize, len(src), 3*n)
	}
	if len(dst) != n {
		return fmt.Errorf("%w: dst has %d bytes, want %d", ErrBufferSize, len(dst), n)
	}
	if err := ValidateCoefficients(c); err != nil {
		return err
	}
	return ValidateGamma(g)
}

// ValidateCoefficients reports whether c is non-negative and sums to 1.
func ValidateCoefficients(c Coefficients) error {
	if c.R < 0 || c.G < 0 || c.B < 0 {
		return fmt.Errorf("%w: negative weight in %v", ErrCoefficients, c)
	}
	sum := float64(c.R) + float64(c.G) + float64(c.B)
	if math.IsNaN(sum) || math.Abs(sum-1) > coefficientTolerance {
		return fmt.Errorf("%w: weights %v sum to %g, want 1", ErrCoefficients, c, sum)
	}
	return nil
}

// ValidateGamma reports whether g is a usable exponent.
func ValidateGamma(g float32) error {
	if g < 0 || math.IsNaN(float64(g)) || math.IsInf(float64(g), 0) {
		return fmt.Errorf("%w: %v", ErrGamma, g)
	}
	return nil
}
