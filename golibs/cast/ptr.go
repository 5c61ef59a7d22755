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
package cast

// Value returns *v, or def if v is nil. It is the way to read an optional
// configuration field, where nil means "not provided".
func Value[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}

// Ptr returns the pointer to a copy of v. Literals and constants cannot be
// addressed, so Ptr(3) is the way to set an optional *int field.
func Ptr[T any](v T) *T {
	return &v
}
