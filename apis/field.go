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

// Field is the selector capability for exactly one declared field of a state
// object S. A selector carries no state of its own: it is a zero-size token
// that knows how to project its field out of an S instance and how to assign
// into it. One selector type exists per declared field, the mapping is
// bijective, and a selector for a field of S cannot be applied to any other
// state type (the S parameter pins it at compile time).
//
// Selector types are normally emitted by stxgen; hand-written selectors are
// fine as long as they stay pure (no side effects beyond the assignment Set
// performs).
type Field[S, V any] interface {
	// Select returns a read-only projection of the field inside s.
	// The returned pointer is only valid for the duration of the read view
	// it was obtained under; callers must not retain it.
	Select(s *S) *V

	// Set assigns v to the field inside s. The caller must hold exclusive
	// access to s for the duration of the call.
	Set(s *S, v V)
}
