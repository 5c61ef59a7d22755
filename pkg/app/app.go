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

package app

import (
	"context"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/logrange/linker"
	"github.com/solarisdb/lazyseq/golibs/logging"
	"github.com/solarisdb/lazyseq/golibs/ulidutils"
	"github.com/solarisdb/lazyseq/pkg/demo"
	"github.com/solarisdb/lazyseq/pkg/sequence"
)

// Run is an entry point of the demos run. It wires the demo registry and the
// runner, runs the demos selected by cfg.Demos and writes their output to out.
func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	applyLogLevel(cfg)
	log := logging.NewLogger("lazyseq")
	session := ulidutils.NewUUID()
	log.Infof("starting session %s", session)
	log.Debugf("config: %s", spew.Sprint(cfg))
	defer log.Infof("session %s is over", session)

	registry := demo.NewRegistry()
	if err := registry.RegisterAll(demo.Builtins()...); err != nil {
		return err
	}
	runner := demo.NewRunner(out)

	inj := linker.New()
	inj.Register(linker.Component{Name: "", Value: registry})
	inj.Register(linker.Component{Name: "", Value: runner})
	if err := initComponents(ctx, inj); err != nil {
		return err
	}
	defer inj.Shutdown()

	return runner.Run(ctx, cfg.Demos...)
}

// List writes the names and the descriptions of the builtin demos to out
func List(out io.Writer) error {
	registry := demo.NewRegistry()
	if err := registry.RegisterAll(demo.Builtins()...); err != nil {
		return err
	}
	it := registry.Demos()
	defer it.Close()
	for d, ok := it.Next(); ok; d, ok = it.Next() {
		if _, err := fmt.Fprintf(out, "%-10s %s\n", d.Name, d.Description); err != nil {
			return err
		}
	}
	return nil
}

// Produce builds the Pair from the configuration and writes the results of the
// configured number of Next() calls to out, one per line, followed by the final
// state of the Pair.
func Produce(cfg ProducerConfig, out io.Writer) error {
	p := sequence.NewPair(cfg.First, cfg.Second)
	for i := 1; i <= cfg.calls(); i++ {
		if _, err := fmt.Fprintf(out, "%d: %s\n", i, demo.FormatOption[string](p.Next())); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "state: %s\n", p.State())
	return err
}

// initComponents turns the injector panic into the error, the injector panics
// if a component could not be initialized
func initComponents(ctx context.Context, inj *linker.Injector) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("could not initialize components: %v", r)
		}
	}()
	inj.Init(ctx)
	return nil
}

func applyLogLevel(cfg *Config) {
	if lvl, err := logging.ParseLevel(cfg.LogLevel); err == nil {
		logging.SetLevel(lvl)
	}
}
