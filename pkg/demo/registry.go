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

	"github.com/gobwas/glob"
	"github.com/solarisdb/lazyseq/golibs/container/iterable"
	"github.com/solarisdb/lazyseq/golibs/errors"
	"github.com/solarisdb/lazyseq/golibs/logging"
)

type (
	// RunF prints the demonstration to w
	RunF func(ctx context.Context, w io.Writer) error

	// Demo is a named demonstration
	Demo struct {
		// Name identifies the demo, it is used in the selection patterns
		Name string
		// Description is a one-line explanation of what the demo shows
		Description string
		// Run prints the demo
		Run RunF
	}

	// Registry keeps the demos in the order they were registered
	Registry struct {
		logger logging.Logger
		demos  []Demo
		names  map[string]int
	}
)

// NewRegistry returns the new empty Registry
func NewRegistry() *Registry {
	return &Registry{
		logger: logging.NewLogger("demo.Registry"),
		names:  make(map[string]int),
	}
}

// Register adds the demo to the registry. The name must be unique.
func (r *Registry) Register(d Demo) error {
	if d.Name == "" || d.Run == nil {
		return fmt.Errorf("demo must have a name and a run function: %w", errors.ErrInvalid)
	}
	if _, ok := r.names[d.Name]; ok {
		return fmt.Errorf("demo %q is registered already: %w", d.Name, errors.ErrExist)
	}
	r.names[d.Name] = len(r.demos)
	r.demos = append(r.demos, d)
	r.logger.Debugf("registered demo %q", d.Name)
	return nil
}

// RegisterAll registers the demos one by one and stops on the first error
func (r *Registry) RegisterAll(demos ...Demo) error {
	for _, d := range demos {
		if err := r.Register(d); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the demo by its name
func (r *Registry) Get(name string) (Demo, error) {
	idx, ok := r.names[name]
	if !ok {
		return Demo{}, fmt.Errorf("no demo with the name %q: %w", name, errors.ErrNotExist)
	}
	return r.demos[idx], nil
}

// Demos returns the iterator over all the registered demos in the registration
// order. The registry must not be changed while the iterator is used.
func (r *Registry) Demos() iterable.Iterator[Demo] {
	return iterable.WrapSlice(r.demos)
}

// Select returns the demos which names match the glob pattern ("*", "clos*",
// "{series,loops}"...) in the registration order.
func (r *Registry) Select(pattern string) ([]Demo, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad demo pattern %q: %s: %w", pattern, err, errors.ErrInvalid)
	}
	res := iterable.Collect(iterable.Filter(r.Demos(), func(d Demo) bool {
		return g.Match(d.Name)
	}))
	r.logger.Debugf("pattern %q matches %d demo(s)", pattern, len(res))
	return res, nil
}
