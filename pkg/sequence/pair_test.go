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

package sequence

import (
	"math"
	"slices"
	"testing"

	"github.com/solarisdb/lazyseq/golibs/container/iterable"
	"github.com/stretchr/testify/assert"
)

func TestPair_Scenario(t *testing.T) {
	p := NewPair("first_string", "second_string")

	v, ok := p.Next()
	assert.True(t, ok)
	assert.Equal(t, "first_string", v)

	v, ok = p.Next()
	assert.True(t, ok)
	assert.Equal(t, "second_string", v)

	for i := 0; i < 100; i++ {
		v, ok = p.Next()
		assert.False(t, ok)
		assert.Equal(t, "", v)
	}
}

func TestPair_States(t *testing.T) {
	p := NewPair(1, 2)
	assert.Equal(t, Fresh, p.State())
	assert.Equal(t, uint64(0), p.Position())
	assert.True(t, p.HasNext())

	p.Next()
	assert.Equal(t, OneProduced, p.State())
	assert.Equal(t, uint64(1), p.Position())
	assert.True(t, p.HasNext())

	p.Next()
	assert.Equal(t, Exhausted, p.State())
	assert.False(t, p.HasNext())

	for i := uint64(3); i < 10; i++ {
		p.Next()
		assert.Equal(t, Exhausted, p.State())
		assert.Equal(t, i, p.Position())
	}
}

func TestPair_HasNextAndCloseDoNotMove(t *testing.T) {
	p := NewPair("a", "b")
	for i := 0; i < 3; i++ {
		assert.True(t, p.HasNext())
	}
	assert.Nil(t, p.Close())
	assert.Equal(t, Fresh, p.State())
	v, ok := p.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestPair_Order(t *testing.T) {
	for _, tc := range [][2]int{{1, 2}, {2, 1}, {0, 0}, {7, 7}, {-1, math.MaxInt}} {
		p := NewPair(tc[0], tc[1])
		assert.Equal(t, []int{tc[0], tc[1]}, iterable.Collect[int](p), "%v", tc)
		_, ok := p.Next()
		assert.False(t, ok)
	}
}

func TestPair_Independent(t *testing.T) {
	p1 := NewPair("x", "y")
	p2 := NewPair("x", "y")
	p1.Next()
	p1.Next()
	p1.Next()
	assert.Equal(t, Exhausted, p1.State())
	assert.Equal(t, Fresh, p2.State())
	v, ok := p2.Next()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestPair_ConstructionHasNoEffect(t *testing.T) {
	p := NewPair([]int{1}, []int{2})
	assert.Equal(t, uint64(0), p.Position())
	assert.Equal(t, []int{1}, p.first)
	assert.Equal(t, []int{2}, p.second)
}

func TestPair_Clone(t *testing.T) {
	first, second := []int{1, 2}, []int{3, 4}
	p := NewPairF(first, second, func(v []int) []int { return slices.Clone(v) })
	v, ok := p.Next()
	assert.True(t, ok)
	v[0] = 100
	assert.Equal(t, []int{1, 2}, p.first)

	v, _ = p.Next()
	v[1] = 100
	assert.Equal(t, []int{3, 4}, p.second)
}

func TestPair_Saturates(t *testing.T) {
	p := NewPair("a", "b")
	p.pos = math.MaxUint64 - 1
	p.Next()
	p.Next()
	assert.Equal(t, uint64(math.MaxUint64), p.Position())
	assert.Equal(t, Exhausted, p.State())
	_, ok := p.Next()
	assert.False(t, ok)
}

func TestPair_Range(t *testing.T) {
	var res []string
	for v := range iterable.Seq[string](NewPair("first_string", "second_string")) {
		res = append(res, v)
	}
	assert.Equal(t, []string{"first_string", "second_string"}, res)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Fresh", Fresh.String())
	assert.Equal(t, "OneProduced", OneProduced.String())
	assert.Equal(t, "Exhausted", Exhausted.String())
	assert.Equal(t, "State(5)", State(5).String())
	assert.Equal(t, "Pair{pos: 1, state: OneProduced}", func() string {
		p := NewPair(1, 2)
		p.Next()
		return p.String()
	}())
}
