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

import "iter"

type (
	// Number is the set of types Sum can add up
	Number interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
			~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
			~float32 | ~float64
	}

	applyIterator[V, R any] struct {
		it Iterator[V]
		f  func(V) R
	}

	filterIterator[V any] struct {
		it     Iterator[V]
		pred   func(V) bool
		v      V
		loaded bool
	}
)

// Apply returns the iterator which produces f(v) for every element v of it. The
// adaptor is lazy: f is not called until the element is requested by Next(). Closing
// the result closes it.
func Apply[V, R any](it Iterator[V], f func(V) R) Iterator[R] {
	return &applyIterator[V, R]{it: it, f: f}
}

// Filter returns the iterator which skips the elements of it for which pred
// returns false. Closing the result closes it.
func Filter[V any](it Iterator[V], pred func(V) bool) Iterator[V] {
	return &filterIterator[V]{it: it, pred: pred}
}

// Collect consumes the iterator and returns its elements in the order they were
// produced. The iterator is closed.
func Collect[V any](it Iterator[V]) []V {
	defer it.Close()
	var res []V
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		res = append(res, v)
	}
	return res
}

// Sum consumes the iterator and returns the sum of its elements. The iterator is closed.
func Sum[V Number](it Iterator[V]) V {
	defer it.Close()
	var sum V
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		sum += v
	}
	return sum
}

// Count consumes the iterator and returns the number of elements it produced.
// The iterator is closed.
func Count[V any](it Iterator[V]) int {
	defer it.Close()
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}

// Seq turns the iterator into the range-over-func sequence:
//
//	for v := range iterable.Seq(it) {
//		...
//	}
//
// The iterator is closed when the loop is over, including the break case.
func Seq[V any](it Iterator[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		defer it.Close()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (ai *applyIterator[V, R]) HasNext() bool {
	return ai.it.HasNext()
}

func (ai *applyIterator[V, R]) Next() (R, bool) {
	v, ok := ai.it.Next()
	if !ok {
		return *new(R), false
	}
	return ai.f(v), true
}

func (ai *applyIterator[V, R]) Close() error {
	return ai.it.Close()
}

func (fi *filterIterator[V]) HasNext() bool {
	fi.fetch()
	return fi.loaded
}

func (fi *filterIterator[V]) Next() (V, bool) {
	fi.fetch()
	if !fi.loaded {
		return *new(V), false
	}
	v := fi.v
	fi.v, fi.loaded = *new(V), false
	return v, true
}

func (fi *filterIterator[V]) Close() error {
	fi.v, fi.loaded = *new(V), false
	return fi.it.Close()
}

func (fi *filterIterator[V]) fetch() {
	for !fi.loaded {
		v, ok := fi.it.Next()
		if !ok {
			return
		}
		if fi.pred(v) {
			fi.v, fi.loaded = v, true
		}
	}
}
