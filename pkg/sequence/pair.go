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

// Package sequence contains Pair, the bounded lazy sequence of exactly two
// elements. See the Pair type for the details.
package sequence

import (
	"fmt"
	"math"

	"github.com/solarisdb/lazyseq/golibs/container/iterable"
)

type (
	// Pair produces its two values one by one, on demand, and then reports the
	// exhaustion forever. It cannot be restarted.
	//
	// The Pair owns the values it was created with. The callers receive copies
	// of the values (see CloneF), so they never share memory with the Pair.
	//
	// Pair is not safe for concurrent use.
	Pair[V any] struct {
		first  V
		second V
		cloneF CloneF[V]
		pos    uint64
	}

	// CloneF returns a deep copy of v. Values of reference types (slices, maps,
	// pointers) need it to be copied, assigning them copies the reference only.
	CloneF[V any] func(v V) V

	// State describes where the Pair is in its sequence
	State int
)

const (
	// Fresh means nothing was produced yet
	Fresh State = iota
	// OneProduced means the first value was produced
	OneProduced
	// Exhausted means both values were produced, the state is terminal
	Exhausted
)

var _ iterable.Iterator[string] = (*Pair[string])(nil)

// NewPair returns the new Pair, which will produce first and then second.
// The values are copied by assignment, which is enough for the value types
// (numbers, strings, structs of them).
func NewPair[V any](first, second V) *Pair[V] {
	return NewPairF(first, second, nil)
}

// NewPairF returns the new Pair, which passes every value it produces through
// cloneF. The nil cloneF means the values are copied by assignment.
func NewPairF[V any](first, second V, cloneF CloneF[V]) *Pair[V] {
	return &Pair[V]{first: first, second: second, cloneF: cloneF}
}

// Next moves the Pair forward and returns the value for the new position:
// the first value for the first call, the second value for the second call.
// All the following calls return the zero value of V and false.
func (p *Pair[V]) Next() (V, bool) {
	// the counter saturates, so it never wraps back to Fresh
	if p.pos < math.MaxUint64 {
		p.pos++
	}
	switch p.pos {
	case 1:
		return p.clone(p.first), true
	case 2:
		return p.clone(p.second), true
	}
	return *new(V), false
}

// HasNext returns whether the next call of Next() will return a value
func (p *Pair[V]) HasNext() bool {
	return p.pos < 2
}

// Close is the part of the iterable.Iterator interface. The Pair holds no
// resources, so there is nothing to release.
func (p *Pair[V]) Close() error {
	return nil
}

// Position returns the number of Next() calls made so far
func (p *Pair[V]) Position() uint64 {
	return p.pos
}

// State returns the current state of the Pair
func (p *Pair[V]) State() State {
	switch p.pos {
	case 0:
		return Fresh
	case 1:
		return OneProduced
	}
	return Exhausted
}

func (p *Pair[V]) String() string {
	return fmt.Sprintf("Pair{pos: %d, state: %s}", p.pos, p.State())
}

func (p *Pair[V]) clone(v V) V {
	if p.cloneF == nil {
		return v
	}
	return p.cloneF(v)
}

func (s State) String() string {
	switch s {
	case Fresh:
		return "Fresh"
	case OneProduced:
		return "OneProduced"
	case Exhausted:
		return "Exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}
