// Copyright 2023 The acquirecloud Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
/*
Package errors contains some very general class of errors that the packages of
the module use. The errors are never returned as is, they are wrapped with the
context details (see Wrapf), so callers should check the error class with Is()
instead of comparing the values directly.

Running out of values in an iterator is not an error and is never reported by
the errors from the package, an iterator reports it by the second (bool) result
of its Next() function.
*/
package errors
