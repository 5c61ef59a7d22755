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

/*
Package closures contains the helpers which make the closure capture modes
explicit. A Go closure always captures variables by reference, the helpers
choose what exactly is captured:
  - Borrow: a pointer to the variable, read only (the closure sees updates)
  - Mutate: a pointer to the variable, the closure updates it
  - Move: a private copy of the value (the closure does not see updates)

The package also contains Once, the callable which may be invoked one time
only, and CallOnce, the generic function accepting any callable.
*/
package closures

// Borrow returns the closure which reads the variable v points to. The
// changes made to the variable after the call are visible to the closure.
func Borrow[V any](v *V) func() V {
	return func() V {
		return *v
	}
}

// Mutate returns the closure which replaces the variable v points to with
// f(*v) and returns the new value.
func Mutate[V any](v *V, f func(V) V) func() V {
	return func() V {
		*v = f(*v)
		return *v
	}
}

// Move returns the closure which owns a copy of v. Reference types (slices,
// maps) still share their underlying data.
func Move[V any](v V) func() V {
	return func() V {
		return v
	}
}
