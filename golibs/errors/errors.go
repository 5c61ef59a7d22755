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
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrExist is returned when an object with the same identity is already registered
	ErrExist = errors.New("already exists")
	// ErrNotExist is returned when a requested object is not found
	ErrNotExist = errors.New("not found")
	// ErrInvalid is returned when a caller provides an argument which cannot be accepted
	ErrInvalid = errors.New("invalid argument")
	// ErrExhausted reports that a resource cannot serve the request anymore, for example
	// a single-use callable invoked the second time
	ErrExhausted = errors.New("exhausted")
	// ErrUnimplemented is returned when an optional capability is not supported
	ErrUnimplemented = errors.New("unimplemented")
	// ErrInternal is an unexpected error, it indicates a bug
	ErrInternal = errors.New("internal error")
	// ErrCanceled is returned when an operation is interrupted by a closed context
	ErrCanceled = errors.New("canceled")
)

// Is reports whether any error in err's chain matches target. It is the same as
// the standard errors.Is, re-exported so callers need only one errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Wrapf formats the message and wraps the general error err into it, so the
// result can be checked with Is(result, err)
func Wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
