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
	"github.com/ajroetker/go-lumagamma/hwy"
	"github.com/ajroetker/go-lumagamma/hwy/contrib/gamma"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the dispatch target and the available engines",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			p := printer()
			w := cmd.OutOrStdout()
			p.Fprintf(w, "Target: %s, width %d bytes, batch %d pixels\n",
				hwy.CurrentName(), hwy.CurrentWidth(), hwy.MaxLanes[float32]())
			if hwy.NoSimdEnv() {
				p.Fprintf(w, "HWY_NO_SIMD is set\n")
			}
			title := cases.Title(language.English)
			p.Fprintf(w, "Engines:\n")
			for _, v := range gamma.Variants() {
				note := ""
				if !v.Series() {
					note = " (math.Pow, accuracy baseline)"
				}
				p.Fprintf(w, "  %d  %s%s\n", int(v), title.String(v.String()), note)
			}
		},
	}
}
