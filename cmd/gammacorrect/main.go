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

// Command gammacorrect converts an image to gamma-corrected grayscale.
//
// Usage:
//
//	gammacorrect input.ppm -o output.pgm --gamma 2.2
//	gammacorrect -V scalar -B10 input.ppm --coeffs 0.2126,0.7152,0.0722 --gamma 0.45
//	gammacorrect --config batch.yaml
//	gammacorrect verify input.ppm --gamma 2.2
//	gammacorrect info
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gammacorrect:", err)
		os.Exit(1)
	}
}
