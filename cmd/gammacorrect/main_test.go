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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ajroetker/go-lumagamma/hwy/contrib/gamma"
	"github.com/ajroetker/go-lumagamma/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { pipeline.SetLogger(nil) })
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, dir string) string {
	t.Helper()
	pix := make([]byte, 4*3*3)
	for i := range pix {
		pix[i] = byte(i * 5)
	}
	path := filepath.Join(dir, "input.ppm")
	require.NoError(t, os.WriteFile(path, append([]byte("P6\n4 3\n255\n"), pix...), 0o644))
	return path
}

func TestRootWritesOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)

	out, err := execute(t, "-V", "3", in, "--gamma", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "input.pgm")
	assert.Contains(t, out, "scalar")

	data, err := os.ReadFile(filepath.Join(dir, "input.pgm"))
	require.NoError(t, err)
	assert.Equal(t, append([]byte("P5\n4 3\n255\n"), bytes.Repeat([]byte{255}, 12)...), data)
}

func TestRootBenchmark(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)
	dst := filepath.Join(dir, "custom.pgm")

	out, err := execute(t, "-B3", "-o", dst, "--coeffs", "1,1,1", "--gamma", "2.2", in)
	require.NoError(t, err)
	assert.Contains(t, out, "Ran 3 times")
	assert.Contains(t, out, "MP/s")
	assert.FileExists(t, dst)

	out, err = execute(t, "-B", "-o", dst, "--gamma", "1", in)
	require.NoError(t, err)
	assert.Contains(t, out, "Ran 1 times")
}

func TestRootErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no input", []string{"--gamma", "1"}, errUsage},
		{"no gamma", []string{in}, gamma.ErrGamma},
		{"negative gamma", []string{in, "--gamma=-1"}, gamma.ErrGamma},
		{"bad variant", []string{in, "--gamma", "1", "-V", "9"}, gamma.ErrUnknownVariant},
		{"two coeffs", []string{in, "--gamma", "1", "--coeffs", "1,2"}, gamma.ErrCoefficients},
		{"text coeffs", []string{in, "--gamma", "1", "--coeffs", "a,b,c"}, gamma.ErrCoefficients},
		{"zero coeffs", []string{in, "--gamma", "1", "--coeffs", "0,0,0"}, gamma.ErrCoefficients},
		{"config and input", []string{in, "--config", "x.yaml"}, errUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRootBatch(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir)
	cfg := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("defaults:\n  gamma: 2\njobs:\n  - input: input.ppm\n    iterations: 2\n"), 0o644))

	out, err := execute(t, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 1 jobs succeeded")
	assert.FileExists(t, filepath.Join(dir, "input.pgm"))
}

func TestVerifyCommand(t *testing.T) {
	in := writeInput(t, t.TempDir())

	out, err := execute(t, "verify", in, "--gamma", "2.2")
	require.NoError(t, err)
	for _, v := range []gamma.Variant{gamma.LUTVector, gamma.Vector, gamma.LUT} {
		assert.Contains(t, out, fmt.Sprintf("%-10s ok", v))
	}

	_, err = execute(t, "verify", in)
	require.ErrorIs(t, err, gamma.ErrGamma)
}

func TestInfoCommand(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Target:")
	assert.Contains(t, out, "Lut-Vector")
	assert.Contains(t, out, "accuracy baseline")
}

func TestParseCoeffs(t *testing.T) {
	c, err := parseCoeffs(" 3, 5.9 ,1.1")
	require.NoError(t, err)
	assert.InDelta(t, 0.3, c.R, 1e-6)
	assert.InDelta(t, 0.59, c.G, 1e-6)
	assert.InDelta(t, 0.11, c.B, 1e-6)
}
