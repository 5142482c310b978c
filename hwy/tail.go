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

package hwy

// ProcessWithTail splits size elements into full vectors and a tail.
//
// It calls:
//   - fullFn(offset) for each full vector, in increasing offset order
//   - tailFn(offset, count) once for the last size%MaxLanes[T]() elements,
//     only when that count is non-zero
//
// Every index in [0, size) is covered exactly once, and no call ever touches
// an index at or past size.
//
// Example:
//
//	hwy.ProcessWithTail[float32](len(data),
//	    func(offset int) {
//	        v := hwy.Load(data[offset:])
//	        hwy.Store(hwy.Add(v, v), out[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            out[i] = data[i] + data[i]
//	        }
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := MaxLanes[T]()
	if size <= 0 || lanes <= 0 {
		return
	}

	full := size - size%lanes
	for offset := 0; offset < full; offset += lanes {
		fullFn(offset)
	}

	if remaining := size - full; remaining > 0 {
		tailFn(full, remaining)
	}
}
