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

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestNextCmd(t *testing.T) {
	out, err := execute(t, "next", "--first", "a", "--second", "b", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, "1: Some(\"a\")\n2: Some(\"b\")\n3: None\nstate: Exhausted\n", out)
}

func TestNextCmd_Defaults(t *testing.T) {
	out, err := execute(t, "next")
	require.NoError(t, err)
	assert.Equal(t, "1: Some(\"first_string\")\n2: Some(\"second_string\")\n3: None\n4: None\nstate: Exhausted\n", out)
}

func TestListCmd(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "closures")
	assert.Contains(t, out, "series")
	assert.Contains(t, out, "loops")
}

func TestRunCmd(t *testing.T) {
	out, err := execute(t, "run", "loops")
	require.NoError(t, err)
	assert.Contains(t, out, "loop sum: 15\niterator sum: 15\n")
	assert.NotContains(t, out, "=== series")

	_, err = execute(t, "run", "--log-level", "loud")
	assert.Error(t, err)
}
