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

package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajroetker/go-lumagamma/hwy/contrib/gamma"
	"gopkg.in/yaml.v2"
)

// ErrConfig reports an unusable batch configuration.
var ErrConfig = errors.New("pipeline: invalid config")

// Settings are the per-job values of a batch file. Unset fields fall back
// to the file's defaults, then to the library defaults.
type Settings struct {
	Variant    string    `yaml:"variant,omitempty"`
	Coeffs     []float32 `yaml:"coeffs,omitempty"`
	Gamma      *float32  `yaml:"gamma,omitempty"`
	Iterations *int      `yaml:"iterations,omitempty"`
}

// JobConfig is one entry of the jobs list.
type JobConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output,omitempty"`
	Settings `yaml:",inline"`
}

// Config is a batch file:
//
//	defaults:
//	  variant: lut-vector
//	  coeffs: [0.3, 0.59, 0.11]
//	  gamma: 2.2
//	jobs:
//	  - input: a.ppm
//	  - input: b.png
//	    output: b-dark.pgm
//	    gamma: 3
type Config struct {
	Defaults Settings    `yaml:"defaults,omitempty"`
	Jobs     []JobConfig `yaml:"jobs"`

	// Resolved by Finalize.
	Resolved []Job `yaml:"-"`
}

// Job is a fully resolved batch entry.
type Job struct {
	Input, Output string
	Options       Options
}

// Opts returns the job's settings as run options.
func (j Job) Opts() []Option {
	return []Option{
		WithVariant(j.Options.Variant),
		WithCoefficients(j.Options.Coefficients),
		WithGamma(j.Options.Gamma),
		WithIterations(j.Options.Iterations),
	}
}

// ParseConfig decodes a batch file. Unknown keys are rejected. Relative
// paths are resolved against baseDir.
func ParseConfig(data []byte, baseDir string) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := cfg.Finalize(baseDir); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads and finalizes the batch file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Debug("loaded config", "path", path, "jobs", len(cfg.Resolved))
	return cfg, nil
}

// Finalize merges every job with the defaults, validates it and fills
// Resolved.
func (c *Config) Finalize(baseDir string) error {
	if len(c.Jobs) == 0 {
		return fmt.Errorf("%w: no jobs", ErrConfig)
	}
	c.Resolved = make([]Job, 0, len(c.Jobs))
	for i, jc := range c.Jobs {
		job, err := resolve(jc, c.Defaults, baseDir)
		if err != nil {
			return fmt.Errorf("%w: job %d: %w", ErrConfig, i, err)
		}
		c.Resolved = append(c.Resolved, job)
	}
	return nil
}

func resolve(jc JobConfig, def Settings, baseDir string) (Job, error) {
	if jc.Input == "" {
		return Job{}, errors.New("missing input")
	}
	o := defaultOptions()
	for _, s := range []Settings{def, jc.Settings} {
		if err := s.apply(&o); err != nil {
			return Job{}, err
		}
	}
	if err := gamma.ValidateGamma(o.Gamma); err != nil {
		return Job{}, err
	}
	if o.Iterations < 0 {
		return Job{}, fmt.Errorf("%w: %d", ErrIterations, o.Iterations)
	}

	output := jc.Output
	if output == "" {
		output = strings.TrimSuffix(jc.Input, filepath.Ext(jc.Input)) + ".pgm"
	}
	return Job{
		Input:   inDir(baseDir, jc.Input),
		Output:  inDir(baseDir, output),
		Options: o,
	}, nil
}

func (s Settings) apply(o *Options) error {
	if s.Variant != "" {
		v, err := gamma.ParseVariant(s.Variant)
		if err != nil {
			return err
		}
		o.Variant = v
	}
	if s.Coeffs != nil {
		if len(s.Coeffs) != 3 {
			return fmt.Errorf("%w: want 3 weights, got %d", gamma.ErrCoefficients, len(s.Coeffs))
		}
		c, err := gamma.Coefficients{R: s.Coeffs[0], G: s.Coeffs[1], B: s.Coeffs[2]}.Normalize()
		if err != nil {
			return err
		}
		o.Coefficients = c
	}
	if s.Gamma != nil {
		o.Gamma = *s.Gamma
	}
	if s.Iterations != nil {
		o.Iterations = *s.Iterations
	}
	return nil
}

func inDir(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// AsYaml returns the config as YAML.
func (c *Config) AsYaml() (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
