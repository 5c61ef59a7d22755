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
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/solarisdb/lazyseq/golibs/errors"
	"github.com/solarisdb/lazyseq/golibs/logging"
)

type (
	// Enricher keeps a configuration structure of the type T and builds its value
	// from several sources: a YAML or JSON file, another enricher of the same type
	// and the environment variables.
	//
	// The following contract is applied to the type T:
	//   - only the exported fields are updated
	//   - a field may be addressed by its name or by its JSON alias, for example,
	//     Calls *int `json:"calls"` may be addressed as "Calls" or "calls"
	//   - the names are case-insensitive
	//   - YAML files are read with the same JSON annotations
	Enricher[T any] interface {
		// LoadFromFile loads the structure fields from the YAML or JSON file. The
		// format is chosen by the file extension (.yaml, .yml or .json). Empty file
		// name is not an error, nothing is loaded then.
		LoadFromFile(fileName string) error

		// ApplyOther applies the non-zero values of the other enricher value to the
		// current one. Nested structures and pointers to structures are merged field
		// by field.
		ApplyOther(other Enricher[T]) error

		// ApplyEnvVariables applies the environment variables, which names start from
		// prefix+sep. The rest of the name is the path to the field, separated by sep.
		// For the prefix "LAZYSEQ" and the separator "_", the variable
		// LAZYSEQ_PRODUCER_FIRST sets the field Producer.First.
		//
		// The values of simple types (strings, numbers, bools) are used as is, the
		// values of complex types (slices, maps, structs) must be JSON, for example
		// LAZYSEQ_DEMOS=["closures", "series"]
		ApplyEnvVariables(prefix, sep string) error

		// ApplyKeyValues applies the key-value pairs with the same rules as
		// ApplyEnvVariables does.
		ApplyKeyValues(prefix, sep string, keyValues map[string]string)

		// Value returns the enricher current value
		Value() T
	}

	enricher[T any] struct {
		log logging.Logger
		val T
	}
)

// NewEnricher constructs new Enricher for the type T, T must be a struct
func NewEnricher[T any](val T) Enricher[T] {
	if tp := reflect.TypeOf(val); tp == nil || tp.Kind() != reflect.Struct {
		panic(fmt.Sprintf("only structs are acceptable in the Enricher, but got %T", val))
	}
	return newEnricher(val)
}

func newEnricher[T any](val T) *enricher[T] {
	return &enricher[T]{val: val, log: logging.NewLogger("config.Enricher." + reflect.TypeOf(val).Name())}
}

func (e *enricher[T]) LoadFromFile(fileName string) error {
	if fileName == "" {
		e.log.Debugf("no file name provided, nothing to load")
		return nil
	}
	var unmarshal func([]byte, any) error
	switch ext := strings.ToLower(strings.TrimSpace(fileName)); {
	case strings.HasSuffix(ext, ".yaml"), strings.HasSuffix(ext, ".yml"):
		unmarshal = func(b []byte, v any) error { return yaml.Unmarshal(b, v) }
	case strings.HasSuffix(ext, ".json"):
		unmarshal = json.Unmarshal
	default:
		return fmt.Errorf("cannot recognize format of %s, expecting .json or .yaml: %w", fileName, errors.ErrInvalid)
	}

	e.log.Infof("reading configuration from %s", fileName)
	buf, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", fileName, err)
	}
	if err := unmarshal(buf, &e.val); err != nil {
		return fmt.Errorf("could not unmarshal %s: %w", fileName, err)
	}
	return nil
}

func (e *enricher[T]) ApplyOther(other Enricher[T]) error {
	oe, ok := other.(*enricher[T])
	if !ok {
		return fmt.Errorf("unsupported enricher implementation %T: %w", other, errors.ErrInvalid)
	}
	merge(reflect.ValueOf(&oe.val).Elem(), reflect.ValueOf(&e.val).Elem())
	return nil
}

func (e *enricher[T]) ApplyEnvVariables(prefix, sep string) error {
	e.log.Infof("applying environment variables with the prefix %s", prefix)
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			e.log.Warnf("the environment variable %s is not valid, skip it", kv)
			continue
		}
		env[k] = v
	}
	e.ApplyKeyValues(prefix, sep, env)
	return nil
}

func (e *enricher[T]) ApplyKeyValues(prefix, sep string, keyValues map[string]string) {
	sep = strings.ToUpper(sep)
	pfx := ""
	if prefix != "" {
		pfx = strings.ToUpper(prefix) + sep
	}
	for key, value := range keyValues {
		ukey := strings.ToUpper(key)
		if !strings.HasPrefix(ukey, pfx) {
			continue
		}
		ok := e.assign(reflect.ValueOf(&e.val).Elem(), strings.Split(ukey[len(pfx):], sep), value)
		e.log.Debugf("applying %s=%s: %t", key, value, ok)
	}
}

func (e *enricher[T]) Value() T {
	return e.val
}

// assign sets the field of the struct sv addressed by path to the value raw.
// Nil pointers to nested structs are allocated only if the value is assigned.
func (e *enricher[T]) assign(sv reflect.Value, path []string, raw string) bool {
	if len(path) == 0 || path[0] == "" {
		return false
	}
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		if !sf.IsExported() || !fieldMatches(sf, path[0]) {
			continue
		}
		fv := sv.Field(i)
		if len(path) > 1 {
			return e.assignNested(fv, path[1:], raw)
		}
		if err := setFromString(fv, raw); err != nil {
			e.log.Warnf("could not set %q to the field %s: %v", raw, sf.Name, err)
			return false
		}
		return true
	}
	return false
}

func (e *enricher[T]) assignNested(fv reflect.Value, path []string, raw string) bool {
	switch {
	case fv.Kind() == reflect.Struct:
		return e.assign(fv, path, raw)
	case fv.Kind() == reflect.Pointer && fv.Type().Elem().Kind() == reflect.Struct:
		if !fv.IsNil() {
			return e.assign(fv.Elem(), path, raw)
		}
		nv := reflect.New(fv.Type().Elem())
		if e.assign(nv.Elem(), path, raw) {
			fv.Set(nv)
			return true
		}
	}
	return false
}

// merge copies the non-zero values from src to dst
func merge(src, dst reflect.Value) {
	if src.IsZero() || !dst.CanSet() {
		return
	}
	switch src.Kind() {
	case reflect.Pointer:
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		merge(src.Elem(), dst.Elem())
	case reflect.Struct:
		for i := 0; i < src.NumField(); i++ {
			merge(src.Field(i), dst.Field(i))
		}
	default:
		dst.Set(src)
	}
}

func fieldMatches(sf reflect.StructField, name string) bool {
	if strings.EqualFold(sf.Name, name) {
		return true
	}
	alias, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	return alias != "" && alias != "-" && strings.EqualFold(alias, name)
}

// setFromString assigns s to the field. Strings may be unquoted, all other
// types are expected in JSON form: 123, true, ["a", "b"], {"k": "v"}...
func setFromString(field reflect.Value, s string) error {
	if s == "" {
		return nil
	}
	if isStringKind(field.Type()) && !isQuoted(s) {
		s = strconv.Quote(s)
	}
	pv := reflect.New(field.Type())
	if err := json.Unmarshal([]byte(s), pv.Interface()); err != nil {
		return err
	}
	field.Set(pv.Elem())
	return nil
}

func isStringKind(tp reflect.Type) bool {
	for tp.Kind() == reflect.Pointer {
		tp = tp.Elem()
	}
	return tp.Kind() == reflect.String
}

func isQuoted(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}
