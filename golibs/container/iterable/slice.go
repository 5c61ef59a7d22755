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

type sliceIterator[V any] struct {
	s   []V
	idx int
}

var _ Reseter = (*sliceIterator[int])(nil)

// WrapSlice returns the iterator over the slice elements. The iterator borrows
// the slice, it does not copy it, so changes made to the slice elements after the
// call are visible through the iterator. The iterator supports Reseter.
func WrapSlice[V any](s []V) Iterator[V] {
	return &sliceIterator[V]{s: s}
}

func (si *sliceIterator[V]) HasNext() bool {
	return si.idx < len(si.s)
}

func (si *sliceIterator[V]) Next() (V, bool) {
	if si.idx >= len(si.s) {
		return *new(V), false
	}
	v := si.s[si.idx]
	si.idx++
	return v, true
}

func (si *sliceIterator[V]) Reset() error {
	si.idx = 0
	return nil
}

func (si *sliceIterator[V]) Close() error {
	si.s = nil
	si.idx = 0
	return nil
}
