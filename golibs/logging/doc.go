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
Package logging contains an abstract logging interface and a simple std engine
for it. Components get their named loggers with NewLogger("pkg.Component") and
never depend on a concrete logging solution, so the engine can be replaced with
SetConfig() without touching the code which writes the records.

The std engine prints one line per record to stderr:

	[15:04:05.000000] INFO	demo.Runner: running 3 demos

The level is global and may be changed with SetLevel(), ParseLevel() turns the
level name from a config or a command line flag into the Level value.
*/
package logging
