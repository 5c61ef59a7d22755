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

type (
	// Iterator is the pull contract for a lazy sequence of elements. Nothing is
	// produced until Next() is called, and every call to Next() moves the
	// iterator forward, so an element can be received only once.
	Iterator[V any] interface {
		// HasNext returns true if the next call of Next() will return a value.
		// The call does not move the iterator.
		HasNext() bool

		// Next returns the next element and moves the iterator forward. The second
		// result is false when the sequence is exhausted, the first one is the zero
		// value of V then. Once exhausted, the iterator stays exhausted.
		Next() (V, bool)

		// Close releases the resources the iterator holds. The iterator must not
		// be used after the call.
		Close() error
	}

	// Reseter is the interface that wraps the Reset method.
	//
	// Some iterators can be started over from the very first element. They
	// support the interface, which allows to reset them to the initial state.
	Reseter interface {
		// Reset moves the object to its initial state. Result may indicate
		// an error during the reset.
		Reset() error
	}

	// EmptyIterator is the iterator over an empty sequence
	EmptyIterator[V any] struct{}
)

var _ Iterator[int] = (*EmptyIterator[int])(nil)

func (ei *EmptyIterator[V]) HasNext() bool {
	return false
}

func (ei *EmptyIterator[V]) Next() (V, bool) {
	return *new(V), false
}

func (ei *EmptyIterator[V]) Close() error {
	return nil
}
