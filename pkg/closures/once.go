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

package closures

import (
	"github.com/solarisdb/lazyseq/golibs/errors"
)

type (
	// Caller is the callable which may be invoked once. The result of the
	// following calls is errors.ErrExhausted.
	Caller[R any] interface {
		Call() (R, error)
	}

	// Once wraps a function so it can be called one time only. It is not safe
	// for concurrent use.
	Once[R any] struct {
		name string
		f    func() R
	}
)

var _ Caller[int] = (*Once[int])(nil)

// NewOnce returns the Once for f. The name is used in the error messages only.
func NewOnce[R any](name string, f func() R) *Once[R] {
	if f == nil {
		panic("closures.NewOnce: f must not be nil")
	}
	return &Once[R]{name: name, f: f}
}

// Call invokes the function and returns its result. The function is dropped
// after the call, so everything it captured may be collected. The next calls
// return errors.ErrExhausted.
func (o *Once[R]) Call() (R, error) {
	if o.f == nil {
		return *new(R), errors.Wrapf(errors.ErrExhausted, "%q was already called", o.name)
	}
	f := o.f
	o.f = nil
	return f(), nil
}

// Called returns whether the function was called already
func (o *Once[R]) Called() bool {
	return o.f == nil
}

// CallOnce is the generic function which accepts any callable returning R and
// calls it exactly one time.
func CallOnce[R any, F ~func() R](f F) R {
	return f()
}

// Consume calls c and returns its result. It is the way to pass a single-use
// callable to a function, which does not know how the callable is built.
func Consume[R any](c Caller[R]) (R, error) {
	return c.Call()
}
