/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// Cloner is implemented by state objects that support independent
// duplication. Clone must return a value that shares no mutable memory with
// the receiver; mutating the copy must never be observable through the
// original. Implementing Cloner is the preferred way to make a type eligible
// for the copy-on-write variant when it carries reference fields
// (maps, slices, pointers).
type Cloner[S any] interface {
	Clone() S
}

// Copier duplicates an arbitrary value. It replaces the reflective stage of
// the duplication chain: a Clone method on the state type and plain
// assignment for value-only types still take precedence. Install one per
// cell via the WithCopier option when the reflective copy cannot duplicate
// a type correctly.
type Copier func(v any) (any, error)
