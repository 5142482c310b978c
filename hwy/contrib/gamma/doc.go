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

// Package gamma turns RGB pixels into gamma-corrected luma.
//
// Every pixel is projected onto a weighted grayscale value, quantized to a
// byte and raised to the gamma exponent with a power function built from two
// truncated series:
//
//	Ln(x)     = -Σ_{i=1..14} (1-x)^i / i
//	Exp(y)    = 1 + Σ_{i=1..17} y^i / i!   (floored at 0)
//	Pow(x, g) = Exp(g * Ln(x))
//
// # Engines
//
// Four series engines produce byte-identical output and differ only in how
// they schedule the work:
//
//	Scalar     one Pow evaluation per pixel
//	LUT        256 Pow evaluations into a Table, then one lookup per pixel
//	Vector     hwy.MaxLanes[float32]() pixels per batch, scalar tail
//	LUTVector  Table built a batch of entries at a time, then lookups
//
// A fifth Reference engine uses math.Pow and is only meant for accuracy
// comparisons.
//
// # Usage Example
//
//	c, err := gamma.NTSC.Normalize()
//	if err != nil {
//	    return err
//	}
//	dst := make([]uint8, width*height)
//	e, _ := gamma.New(gamma.LUTVector)
//	e.Apply(rgb, width, height, c, 2.2, dst)
//
// Engines never validate their arguments. Call Validate first when the
// inputs come from an untrusted source.
package gamma
