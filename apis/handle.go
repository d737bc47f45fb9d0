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

import "context"

// Viewer is the read side of a store cell: it runs a function against the
// current committed value. Under the copy-on-write variant the view costs a
// single atomic load; under the in-place variant it holds a reader slot for
// the duration of fn.
//
// fn must treat s as read-only and must not re-enter the same cell
// (a nested view or write on the in-place variant deadlocks).
type Viewer[S any] interface {
	View(fn func(s *S))
}

// Handle is the operation set shared by both cell variants. Snapshot-only
// operations (Read) live on the copy-on-write cell directly, so that their
// availability is checked at compile time.
type Handle[S any] interface {
	Viewer[S]

	// Write unconditionally replaces the current value with s.
	Write(s S)

	// Update applies fn to the whole state object in one critical section,
	// atomically with respect to other writers. Under copy-on-write, fn
	// receives a private clone that is committed after fn returns; under
	// in-place, fn mutates the one live instance through the write slot.
	Update(fn func(s *S))

	// UpdateContext is Update for mutators that suspend (I/O, timers) while
	// holding the writer exclusion. ctx bounds only the wait for the writer
	// slot; once fn starts it runs to completion. A non-nil error from fn
	// aborts the commit under copy-on-write; under in-place the error is
	// returned and any mutation fn already performed remains (there is no
	// copy to discard), so in-place mutators must keep the value consistent
	// on every return path.
	UpdateContext(ctx context.Context, fn func(ctx context.Context, s *S) error) error
}
