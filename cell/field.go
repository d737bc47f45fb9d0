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

package cell

import (
	"dirpx.dev/stx/apis"
	"dirpx.dev/stx/clone"
)

// Get projects the field addressed by f under a read view and returns the
// result of fn applied to it. fn must be pure: the field reference is only
// valid until Get returns, and fn must not re-enter the cell.
func Get[S, V, R any](h apis.Viewer[S], f apis.Field[S, V], fn func(v *V) R) R {
	var out R
	h.View(func(s *S) {
		out = fn(f.Select(s))
	})
	return out
}

// Select returns an owned copy of the field addressed by f: Get with a
// duplicating transform. The copy comes from the field type's own
// duplication chain; a configured state Copier does not apply, since it is
// typed to whole states. Panics with clone.ErrUncloneable if the field
// value cannot be duplicated.
func Select[S, V any](h apis.Viewer[S], f apis.Field[S, V]) V {
	var out V
	h.View(func(s *S) {
		out = clone.Value(f.Select(s), nil)
	})
	return out
}

// Set overwrites the field addressed by f with v, atomically with respect
// to other writers. Both variants route through Update, so a single-field
// write commits exactly like a whole-object one.
func Set[S, V any](h apis.Handle[S], f apis.Field[S, V], v V) {
	h.Update(func(s *S) {
		f.Set(s, v)
	})
}
