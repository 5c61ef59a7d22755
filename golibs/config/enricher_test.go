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
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/solarisdb/lazyseq/golibs/cast"
	"github.com/solarisdb/lazyseq/golibs/errors"
	"github.com/solarisdb/lazyseq/golibs/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testB struct {
	IntB    int `json:"ttt"`
	IntBPtr *int
}

type testA struct {
	Field     int
	FieldB    testB
	FieldBPtr *testB
	List      []string
	Str       string `json:"name,omitempty"`
}

func TestNewEnricher_NotStruct(t *testing.T) {
	assert.Panics(t, func() { NewEnricher(123) })
	assert.NotPanics(t, func() { NewEnricher(testA{}) })
}

func TestEnricher_ApplyKeyValues(t *testing.T) {
	logging.SetLevel(logging.TRACE)
	e := newEnricher(testA{})
	e.ApplyKeyValues("teST", "_", map[string]string{
		"test_list":          `["aa", "bb"]`,
		"TEST_FieldBPtr_ttt": "23",
		"TEST_FieldB_IntB":   "33",
		"TEST_NAME":          "abc",
		"OTHER_FIELD":        "12",
	})
	assert.Equal(t, testA{FieldB: testB{IntB: 33}, FieldBPtr: &testB{IntB: 23}, List: []string{"aa", "bb"}, Str: "abc"}, e.Value())

	e.ApplyKeyValues("teST", "_", map[string]string{"test_fieldbptr": `{"ttt": 13, "IntBPtr": 22}`})
	assert.Equal(t, &testB{IntB: 13, IntBPtr: cast.Ptr(22)}, e.Value().FieldBPtr)

	e.ApplyKeyValues("", "_", map[string]string{"fieldbptr_ttt": "42"})
	assert.Equal(t, 42, e.Value().FieldBPtr.IntB)

	// unknown, empty and bad values are skipped
	old := e.Value()
	e.ApplyKeyValues("", "_", map[string]string{"_": "some value", "unknown": "1", "field": "not a number"})
	assert.Equal(t, old, e.Value())
}

func TestEnricher_NilPointerUntouched(t *testing.T) {
	e := newEnricher(testA{})
	e.ApplyKeyValues("", "_", map[string]string{"fieldbptr_unknown": "1"})
	assert.Nil(t, e.Value().FieldBPtr)
}

func TestEnricher_ApplyEnvVariables(t *testing.T) {
	t.Setenv("ENRTEST_FIELD", "77")
	t.Setenv("ENRTEST_FIELDB_TTT", "5")
	e := newEnricher(testA{})
	assert.NoError(t, e.ApplyEnvVariables("enrtest", "_"))
	assert.Equal(t, testA{Field: 77, FieldB: testB{IntB: 5}}, e.Value())
}

func TestEnricher_ApplyOther(t *testing.T) {
	a := testA{FieldBPtr: &testB{IntB: 1233}, FieldB: testB{IntB: 12}, Str: "a"}
	b := testA{FieldBPtr: &testB{IntBPtr: cast.Ptr(10)}, FieldB: testB{IntB: 22}, List: []string{"aa", "bbb"}}
	ea := newEnricher(a)
	eb := newEnricher(b)
	assert.Nil(t, ea.ApplyOther(eb))
	assert.Equal(t, 10, *ea.Value().FieldBPtr.IntBPtr)
	assert.Equal(t, 1233, ea.Value().FieldBPtr.IntB)
	assert.Equal(t, 22, ea.Value().FieldB.IntB)
	assert.Equal(t, "a", ea.Value().Str)
	assert.Equal(t, eb.Value().List, ea.Value().List)
}

func TestEnricher_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	ea := newEnricher(testA{})

	assert.Nil(t, ea.LoadFromFile(""))
	assert.True(t, errors.Is(ea.LoadFromFile(filepath.Join(dir, "cfg.toml")), errors.ErrInvalid))
	assert.Error(t, ea.LoadFromFile(filepath.Join(dir, "absent.yaml")))

	fn := createFile(t, dir, "bad.yaml", `sdfkjlafj aldskfjalfdj`)
	assert.Error(t, ea.LoadFromFile(fn))

	fn = createFile(t, dir, "unknownFields.yaml", `some: 1234`)
	assert.Nil(t, ea.LoadFromFile(fn))
	assert.Equal(t, testA{}, ea.Value())

	fn = createFile(t, dir, "good.yml", "fieldb:\n    ttt: 2\nname: yaml")
	assert.Nil(t, ea.LoadFromFile(fn))
	assert.Equal(t, testA{FieldB: testB{IntB: 2}, Str: "yaml"}, ea.Value())

	fn = createFile(t, dir, "good.json", `{"fieldb": {"ttt": 22}}`)
	assert.Nil(t, ea.LoadFromFile(fn))
	assert.Equal(t, 22, ea.Value().FieldB.IntB)

	fn = createFile(t, dir, "yamlNotJSON.json", "fieldb:\n    ttt: 2")
	assert.Error(t, ea.LoadFromFile(fn))
}

func Test_setFromString(t *testing.T) {
	var c struct {
		Str    string
		StrPtr *string
		Num    int
		List   []int
	}
	v := reflectStruct(&c)
	assert.Nil(t, setFromString(v.Field(0), "str"))
	assert.Nil(t, setFromString(v.Field(1), `"quoted"`))
	assert.Nil(t, setFromString(v.Field(2), "123"))
	assert.Nil(t, setFromString(v.Field(3), "[1, 2]"))
	assert.Nil(t, setFromString(v.Field(2), ""))
	assert.Error(t, setFromString(v.Field(2), "abc"))
	assert.Equal(t, "str", c.Str)
	assert.Equal(t, "quoted", *c.StrPtr)
	assert.Equal(t, 123, c.Num)
	assert.Equal(t, []int{1, 2}, c.List)
}

func Test_isQuoted(t *testing.T) {
	assert.False(t, isQuoted("       "))
	assert.False(t, isQuoted(""))
	assert.False(t, isQuoted("\"asdfa"))
	assert.False(t, isQuoted("\""))
	assert.True(t, isQuoted("\"\""))
	assert.True(t, isQuoted("   \"asdfasdf\"asdf\" "))
}

func createFile(t *testing.T, dir, name, data string) string {
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func reflectStruct(ptr any) reflect.Value {
	return reflect.ValueOf(ptr).Elem()
}
