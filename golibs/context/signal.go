// Copyright 2023 The acquirecloud Authors
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
package context

import (
	"context"
	"os"
	"os/signal"

	"github.com/solarisdb/lazyseq/golibs/logging"
)

// NewSignalsContext returns a context.Context derived from parent, that will be
// closed when one of the provided signals is received. The returned cancel
// function must be called when the context is not needed anymore, it stops the
// signals notification.
func NewSignalsContext(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, signals...)
	go func() {
		defer signal.Stop(quit)
		select {
		case s := <-quit:
			logging.NewLogger("context.Signals").Infof("got signal %s, closing the context", s)
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
