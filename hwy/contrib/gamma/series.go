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

// Term counts of the truncated series. Changing either one changes every
// engine's output.
const (
	LnTerms  = 14
	ExpTerms = 17
)

// Ln approximates the natural logarithm of x for x in [0, 1] with the
// Mercator series of ln(1-u), u = 1-x.
//
// Ln(1) is exactly 0. Ln(0) is the negated 14th harmonic number
// (about -3.2516), not -Inf.
func Ln(x float32) float32 {
	u := 1 - x
	upper := float32(1)
	var sum float32
	for i := 1; i <= LnTerms; i++ {
		upper = float32(upper * u)
		sum = float32(sum - float32(upper/float32(i)))
	}
	return sum
}

// Exp approximates e^y with the Maclaurin series. Negative partial sums,
// which the truncated series produces for large negative y, become 0.
func Exp(y float32) float32 {
	term := float32(1)
	sum := float32(1)
	for i := 1; i <= ExpTerms; i++ {
		term = float32(term * y)
		term = float32(term / float32(i))
		sum = float32(sum + term)
	}
	return max(sum, 0)
}

// Pow approximates x^g for x in [0, 1] and g >= 0 as Exp(g * Ln(x)).
// Pow(x, 0) is 1 for every x, including 0.
func Pow(x, g float32) float32 {
	return Exp(float32(g * Ln(x)))
}
