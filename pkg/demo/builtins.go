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

	"github.com/davecgh/go-spew/spew"
	"github.com/solarisdb/lazyseq/golibs/container/iterable"
	"github.com/solarisdb/lazyseq/pkg/closures"
	"github.com/solarisdb/lazyseq/pkg/sequence"
)

// Builtins returns the demos of the module in the order they should run
func Builtins() []Demo {
	return []Demo{
		{Name: "closures", Description: "capturing the environment and passing closures around", Run: runClosures},
		{Name: "series", Description: "processing a series of items with iterators", Run: runSeries},
		{Name: "loops", Description: "loops and iterators produce the same result", Run: runLoops},
	}
}

// FormatOption renders the result of an iterator Next() call as Some(value)
// or None. The value is printed in the Go syntax, so strings are quoted.
func FormatOption[V any](v V, ok bool) string {
	if !ok {
		return "None"
	}
	return fmt.Sprintf("Some(%#v)", v)
}

func runClosures(_ context.Context, w io.Writer) error {
	hello := 5
	captureEnvironment := func() {
		fmt.Fprintf(w, "hello: %d\n", hello)
	}
	captureEnvironment()

	parameter := func(a int) {
		fmt.Fprintf(w, "a: %d\n", a)
	}
	parameter(5)
	parameter(4)

	returnValue := func() int { return 5 }
	fmt.Fprintf(w, "return_value: %d\n", returnValue())

	one, two, three := 1, 2, 3
	borrowImmutably := closures.Borrow(&one)
	borrowMutably := closures.Mutate(&two, func(v int) int { return v + 1 })
	takeOwnership := closures.Move(three)
	fmt.Fprintf(w, "one: %d\n", borrowImmutably())
	fmt.Fprintf(w, "two: %d\n", borrowMutably())
	fmt.Fprintf(w, "three: %d\n", takeOwnership())

	one, three = 10, 30
	fmt.Fprintf(w, "one after update: %d\n", borrowImmutably())
	fmt.Fprintf(w, "three after update: %d\n", takeOwnership())

	list := []int{1, 2, 3}
	fmt.Fprintf(w, "Before defining closure: %s\n", spew.Sprint(list))

	fmt.Fprintf(w, "hello_world() called %d\n", closures.CallOnce(func() int { return 42 }))

	movingString := "my_string"
	consumeString := closures.NewOnce("consume_string", func() string {
		s := movingString
		movingString = ""
		return s
	})
	s, err := closures.Consume[string](consumeString)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "consume_string() : %s\n", s)
	if _, err = consumeString.Call(); err != nil {
		fmt.Fprintf(w, "second call: %v\n", err)
	}
	return nil
}

func runSeries(_ context.Context, w io.Writer) error {
	v := []string{"a", "b", "c"}
	for i := range iterable.Seq(iterable.WrapSlice(v)) {
		fmt.Fprintf(w, "i: %s\n", i)
	}

	iteratorTest := sequence.NewPair("first_string", "second_string")
	fmt.Fprintf(w, "first_test: %s\n", FormatOption[string](iteratorTest.Next()))
	fmt.Fprintf(w, "second_test: %s\n", FormatOption[string](iteratorTest.Next()))
	fmt.Fprintf(w, "none_test: %s\n", FormatOption[string](iteratorTest.Next()))

	nums := []int{1, 2, 3}
	fmt.Fprintf(w, "sum: %d\n", iterable.Sum(iterable.WrapSlice(nums)))

	adaptor := iterable.Apply(iterable.WrapSlice(nums), func(a int) int { return a + 1 })
	fmt.Fprintf(w, "iterator_adaptor: %s\n", spew.Sprint(iterable.Collect(adaptor)))

	odd := iterable.Filter(iterable.WrapSlice(nums), func(a int) bool { return a%2 == 1 })
	fmt.Fprintf(w, "filter: %s\n", spew.Sprint(iterable.Collect(odd)))

	for s := range iterable.Seq[string](sequence.NewPair("first_string", "second_string")) {
		fmt.Fprintf(w, "range: %s\n", s)
	}

	mixed := iterable.NewMixer[int](func(a, b int) bool { return a <= b },
		iterable.WrapSlice([]int{1, 3, 5}), sequence.NewPair(2, 4))
	fmt.Fprintf(w, "mixed: %s\n", spew.Sprint(iterable.Collect[int](mixed)))
	return nil
}

func runLoops(_ context.Context, w io.Writer) error {
	v := []int{1, 2, 3, 4, 5}
	sum := 0
	for i := 0; i < len(v); i++ {
		sum += v[i]
	}
	fmt.Fprintf(w, "loop sum: %d\n", sum)
	fmt.Fprintf(w, "iterator sum: %d\n", iterable.Sum(iterable.WrapSlice(v)))
	fmt.Fprintf(w, "count: %d\n", iterable.Count(iterable.WrapSlice(v)))
	return nil
}
