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

import "github.com/ajroetker/go-lumagamma/hwy"

// LnVec computes Ln for every lane of x, with the same term count and
// operation order as the scalar form.
func LnVec(x hwy.Vec[float32]) hwy.Vec[float32] {
	u := hwy.Sub(hwy.Set[float32](1), x)
	upper := hwy.Set[float32](1)
	sum := hwy.Zero[float32]()
	for i := 1; i <= LnTerms; i++ {
		upper = hwy.Mul(upper, u)
		sum = hwy.Sub(sum, hwy.Div(upper, hwy.Set(float32(i))))
	}
	return sum
}

// ExpVec computes Exp for every lane of y.
func ExpVec(y hwy.Vec[float32]) hwy.Vec[float32] {
	term := hwy.Set[float32](1)
	sum := hwy.Set[float32](1)
	for i := 1; i <= ExpTerms; i++ {
		term = hwy.Mul(term, y)
		term = hwy.Div(term, hwy.Set(float32(i)))
		sum = hwy.Add(sum, term)
	}
	return hwy.Max(sum, hwy.Zero[float32]())
}

// PowVec computes Pow(x, g) for every lane of x.
func PowVec(x hwy.Vec[float32], g float32) hwy.Vec[float32] {
	return ExpVec(hwy.Mul(hwy.Set(g), LnVec(x)))
}
