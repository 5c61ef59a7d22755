// Copyright 2024 The Solaris Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/solarisdb/lazyseq/golibs/container/iterable"
	"github.com/solarisdb/lazyseq/golibs/errors"
	"github.com/solarisdb/lazyseq/golibs/logging"
)

// Runner runs the demos from the Registry and writes their output to the
// writer it was created with
type Runner struct {
	Registry *Registry `inject:""`

	out    io.Writer
	logger logging.Logger
}

// NewRunner returns the Runner which writes to out
func NewRunner(out io.Writer) *Runner {
	return &Runner{out: out, logger: logging.NewLogger("demo.Runner")}
}

// Init implements linker.Initializer
func (r *Runner) Init(ctx context.Context) error {
	if r.Registry == nil {
		return fmt.Errorf("the demo registry is not provided: %w", errors.ErrInvalid)
	}
	if r.out == nil {
		return fmt.Errorf("the demo output is not provided: %w", errors.ErrInvalid)
	}
	r.logger.Infof("initialized")
	return nil
}

// Shutdown implements linker.Shutdowner
func (r *Runner) Shutdown() {
	r.logger.Infof("shutdown")
}

// Run runs the demos which names match any of the patterns. Every demo runs
// once at most, in the registration order. No patterns means all the demos.
// The context is checked before each demo.
func (r *Runner) Run(ctx context.Context, patterns ...string) error {
	demos, err := r.selectDemos(patterns)
	if err != nil {
		return err
	}
	if len(demos) == 0 {
		return fmt.Errorf("no demos match %v: %w", patterns, errors.ErrNotExist)
	}
	r.logger.Infof("running %d demo(s)", len(demos))
	for i, d := range demos {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stopped before demo %q: %s: %w", d.Name, err, errors.ErrCanceled)
		}
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintf(r.out, "=== %s: %s\n", d.Name, d.Description)
		if err := d.Run(ctx, r.out); err != nil {
			r.logger.Errorf("demo %q failed: %v", d.Name, err)
			return fmt.Errorf("demo %q failed: %w", d.Name, err)
		}
	}
	return nil
}

func (r *Runner) selectDemos(patterns []string) ([]Demo, error) {
	if len(patterns) == 0 {
		patterns = []string{"*"}
	}
	selected := make(map[string]bool)
	for _, p := range patterns {
		demos, err := r.Registry.Select(p)
		if err != nil {
			return nil, err
		}
		for _, d := range demos {
			selected[d.Name] = true
		}
	}
	var res []Demo
	for d := range iterable.Seq(r.Registry.Demos()) {
		if selected[d.Name] {
			res = append(res, d)
		}
	}
	return res, nil
}
