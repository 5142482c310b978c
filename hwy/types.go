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

// Package hwy provides portable fixed-width lane operations with runtime
// width dispatch.
//
// A Vec holds MaxLanes[T]() values that are processed together by every
// operation. The batch width follows the widest vector register reported by
// the CPU (16 bytes for NEON and the scalar fallback, 32 for AVX2, 64 for
// AVX-512), so a Vec[float32] carries 4, 8 or 16 lanes.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-lumagamma/hwy"
//
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//	hwy.Store(hwy.Add(a, b), out)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in lanes.
type Lanes interface {
	Floats | Integers
}

// maxVecBytes is the widest register any dispatch level reports.
const maxVecBytes = 64

// Vec is a batch of lanes processed together.
//
// The lanes live in a fixed array so a Vec is a plain value: operations
// return new vectors without heap allocation. Only the first n entries of
// data are meaningful.
//
// Vec instances should not be created directly; use Load, Set, Iota or Zero.
type Vec[T Lanes] struct {
	data [maxVecBytes]T
	n    int
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Lane returns the value held in lane i.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// Data returns a copy of the active lanes.
// This is primarily for testing and should not be used in hot loops.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's lanes to dst.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
