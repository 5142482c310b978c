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
	"fmt"
	"strconv"
	"strings"
)

// Engine converts an RGB buffer into gamma-corrected luma.
//
// Apply reads width*height RGB triplets from src and writes width*height
// bytes to dst. Both buffers belong to the caller and must have exactly
// those lengths. Apply keeps no state between calls, so one Engine may be
// used from several goroutines on independent buffers.
type Engine interface {
	Variant() Variant
	Apply(src []uint8, width, height int, c Coefficients, g float32, dst []uint8)
}

// Variant identifies one engine implementation.
type Variant int

const (
	LUTVector Variant = iota // default
	Vector
	LUT
	Scalar
	Reference
)

var variantNames = [...]string{
	LUTVector: "lut-vector",
	Vector:    "vector",
	LUT:       "lut",
	Scalar:    "scalar",
	Reference: "reference",
}

// Variants lists every engine in id order.
func Variants() []Variant {
	return []Variant{LUTVector, Vector, LUT, Scalar, Reference}
}

// Valid reports whether v names a known engine.
func (v Variant) Valid() bool {
	return v >= LUTVector && v <= Reference
}

func (v Variant) String() string {
	if !v.Valid() {
		return "variant(" + strconv.Itoa(int(v)) + ")"
	}
	return variantNames[v]
}

// Series reports whether v belongs to the byte-identical series engines.
func (v Variant) Series() bool {
	return v.Valid() && v != Reference
}

// ParseVariant accepts either a numeric id ("0".."4") or a name such as
// "lut-vector".
func ParseVariant(s string) (Variant, error) {
	s = strings.TrimSpace(s)
	if id, err := strconv.Atoi(s); err == nil {
		if v := Variant(id); v.Valid() {
			return v, nil
		}
		return 0, fmt.Errorf("%w: id %d", ErrUnknownVariant, id)
	}
	for i, name := range variantNames {
		if strings.EqualFold(s, name) {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownVariant, int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// New returns the engine for v.
func New(v Variant) (Engine, error) {
	switch v {
	case LUTVector:
		return lutVectorEngine{}, nil
	case Vector:
		return vectorEngine{}, nil
	case LUT:
		return lutEngine{}, nil
	case Scalar:
		return scalarEngine{}, nil
	case Reference:
		return referenceEngine{}, nil
	default:
		return nil, fmt.Errorf("%w: id %d", ErrUnknownVariant, int(v))
	}
}
