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

	"github.com/kovidgoyal/go-parallel"
)

// RunBatch runs every resolved job of cfg, several images at a time. The
// pixels of one image are never split across workers. Results are in job
// order; a failed job leaves a nil entry and its error joined into the
// returned error.
func RunBatch(cfg *Config) ([]*Result, error) {
	jobs := cfg.Resolved
	results := make([]*Result, len(jobs))
	errs := make([]error, len(jobs))

	err := parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			job := jobs[i]
			res, err := Run(job.Input, job.Output, job.Opts()...)
			if err != nil {
				errs[i] = fmt.Errorf("job %d: %w", i, err)
				continue
			}
			results[i] = res
			Logger().Info("job done", "index", i, "input", job.Input)
		}
	}, 0, len(jobs))
	if err != nil {
		errs = append(errs, err)
	}
	return results, errors.Join(errs...)
}
