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

package main

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-lumagamma/imageio"
	"github.com/ajroetker/go-lumagamma/pipeline"
	"github.com/spf13/cobra"
)

var errMismatch = errors.New("engines disagree")

func newVerifyCmd() *cobra.Command {
	var coeffs string
	var g float32
	cmd := &cobra.Command{
		Use:   "verify [flags] input",
		Short: "Check that every engine produces the same bytes for an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCoeffs(coeffs)
			if err != nil {
				return err
			}
			exp, err := requiredGamma(cmd.Flags(), g)
			if err != nil {
				return err
			}
			img, err := imageio.Open(args[0])
			if err != nil {
				return err
			}
			r, err := pipeline.Verify(img, c, exp)
			if err != nil {
				return err
			}

			p := printer()
			w := cmd.OutOrStdout()
			p.Fprintf(w, "%s: %d x %d, coeffs %s, gamma %g\n", args[0], r.Width, r.Height, c, exp)
			for _, check := range r.Checks {
				status := "ok"
				switch {
				case check.Mismatches == 0:
				case check.Variant.Series():
					status = p.Sprintf("FAIL %d pixels differ, first at %d (want %d, got %d)",
						check.Mismatches, check.First, check.Want, check.Got)
				default:
					status = p.Sprintf("%d pixels differ, max deviation %d", check.Mismatches, check.MaxDeviation)
				}
				p.Fprintf(w, "  %-10s %s\n", check.Variant, status)
			}
			if !r.OK() {
				return fmt.Errorf("%s: %w", args[0], errMismatch)
			}
			return nil
		},
	}
	addCorrectionFlags(cmd.Flags(), &coeffs, &g)
	return cmd
}
