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
package iterable

import (
	"fmt"

	"github.com/solarisdb/lazyseq/golibs/errors"
)

type (
	// SelectF decides which one should be selected, it returns true if e1
	// must be selected instead of e2. If e2 should be used then it
	// returns false
	SelectF[E any] func(e1, e2 E) bool

	// Mixer merges 2 iterators into one. Every step it looks at the heads of
	// both sources and returns the one chosen by SelectF. When one source
	// is exhausted, the rest of the other one is returned as is. Mixer
	// provides the Iterator interface, so mixers can be chained.
	Mixer[E any] struct {
		sf    SelectF[E]
		left  head[E]
		right head[E]
		pick  mixPick
	}

	// head keeps the element read from a source, but not returned yet
	head[E any] struct {
		it     Iterator[E]
		e      E
		loaded bool
	}

	mixPick byte
)

const (
	pickUnknown mixPick = iota
	pickLeft
	pickRight
	pickNone
)

var _ Iterator[int] = (*Mixer[int])(nil)
var _ Reseter = (*Mixer[int])(nil)

// NewMixer returns the mixer over it1 and it2
func NewMixer[E any](sf SelectF[E], it1, it2 Iterator[E]) *Mixer[E] {
	mr := new(Mixer[E])
	mr.Init(sf, it1, it2)
	return mr
}

// Init initializes the mixer
func (mr *Mixer[E]) Init(sf SelectF[E], it1, it2 Iterator[E]) {
	mr.sf = sf
	mr.left = head[E]{it: it1}
	mr.right = head[E]{it: it2}
	mr.pick = pickUnknown
}

// Reset starts the mixer over. Both sources must support Reseter, otherwise
// the result is errors.ErrUnimplemented
func (mr *Mixer[E]) Reset() error {
	if err := mr.left.reset(); err != nil {
		return fmt.Errorf("could not reset the first source: %w", err)
	}
	if err := mr.right.reset(); err != nil {
		return fmt.Errorf("could not reset the second source: %w", err)
	}
	mr.pick = pickUnknown
	return nil
}

// HasNext is the part of the Iterator interface
func (mr *Mixer[E]) HasNext() bool {
	mr.choose()
	return mr.pick != pickNone
}

// Next is the part of the Iterator interface
func (mr *Mixer[E]) Next() (E, bool) {
	mr.choose()
	switch mr.pick {
	case pickLeft:
		mr.pick = pickUnknown
		return mr.left.take(), true
	case pickRight:
		mr.pick = pickUnknown
		return mr.right.take(), true
	}
	return *new(E), false
}

// Close closes both sources and returns the first error if any
func (mr *Mixer[E]) Close() error {
	err1 := mr.left.close()
	err2 := mr.right.close()
	mr.sf = nil
	if err1 != nil {
		return err1
	}
	return err2
}

func (mr *Mixer[E]) choose() {
	if mr.pick != pickUnknown {
		return
	}
	mr.left.load()
	mr.right.load()
	switch {
	case !mr.left.loaded && !mr.right.loaded:
		mr.pick = pickNone
	case !mr.left.loaded:
		mr.pick = pickRight
	case !mr.right.loaded || mr.sf(mr.left.e, mr.right.e):
		mr.pick = pickLeft
	default:
		mr.pick = pickRight
	}
}

func (h *head[E]) load() {
	if !h.loaded && h.it != nil {
		h.e, h.loaded = h.it.Next()
	}
}

func (h *head[E]) take() E {
	e := h.e
	h.e, h.loaded = *new(E), false
	return e
}

func (h *head[E]) close() error {
	if h.it == nil {
		return nil
	}
	err := h.it.Close()
	h.it = nil
	h.e, h.loaded = *new(E), false
	return err
}

func (h *head[E]) reset() error {
	h.e, h.loaded = *new(E), false
	if rs, ok := h.it.(Reseter); ok {
		return rs.Reset()
	}
	return errors.ErrUnimplemented
}
