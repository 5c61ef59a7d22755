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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runBuiltin(t *testing.T, name string) []string {
	r := NewRegistry()
	require.NoError(t, r.RegisterAll(Builtins()...))
	d, err := r.Get(name)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, d.Run(context.Background(), &buf))
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestFormatOption(t *testing.T) {
	assert.Equal(t, `Some("first_string")`, FormatOption("first_string", true))
	assert.Equal(t, "Some(5)", FormatOption(5, true))
	assert.Equal(t, "None", FormatOption("", false))
}

func TestBuiltins_Closures(t *testing.T) {
	assert.Equal(t, []string{
		"hello: 5",
		"a: 5",
		"a: 4",
		"return_value: 5",
		"one: 1",
		"two: 3",
		"three: 3",
		"one after update: 10",
		"three after update: 3",
		"Before defining closure: [1 2 3]",
		"hello_world() called 42",
		"consume_string() : my_string",
		`second call: "consume_string" was already called: exhausted`,
	}, runBuiltin(t, "closures"))
}

func TestBuiltins_Series(t *testing.T) {
	assert.Equal(t, []string{
		"i: a",
		"i: b",
		"i: c",
		`first_test: Some("first_string")`,
		`second_test: Some("second_string")`,
		"none_test: None",
		"sum: 6",
		"iterator_adaptor: [2 3 4]",
		"filter: [1 3]",
		"range: first_string",
		"range: second_string",
		"mixed: [1 2 3 4 5]",
	}, runBuiltin(t, "series"))
}

func TestBuiltins_Loops(t *testing.T) {
	assert.Equal(t, []string{"loop sum: 15", "iterator sum: 15", "count: 5"}, runBuiltin(t, "loops"))
}
