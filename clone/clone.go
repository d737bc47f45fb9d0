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

// Package clone duplicates state values for copy-on-write commits.
//
// Duplication resolves in order: the state's own Clone method, plain
// assignment for value-safe types, then a reflective deep copy. The
// reflective path is only entrusted with fully transparent types; anything
// it could copy wrong must bring a Clone method instead.
package clone

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mitchellh/copystructure"

	"dirpx.dev/stx/apis"
	uref "dirpx.dev/stx/utils/reflect"
)

// ErrUncloneable indicates a state type that cannot be duplicated: it is
// neither value-safe nor fully transparent to the reflective copier, and
// it has no Clone method.
var ErrUncloneable = errors.New("stx(clone): state cannot be duplicated")

// DefaultCopier duplicates v with copystructure. Values implementing
// sync.Locker are locked while being walked.
func DefaultCopier(v any) (any, error) {
	return copystructure.Config{Lock: true}.Copy(v)
}

// Value returns a fully independent duplicate of *src.
//
// Resolution order:
//  1. the state's own Clone method, value or pointer receiver
//  2. plain assignment, when the type is value-safe
//  3. the copier (DefaultCopier if nil), when the type has no opaque parts
//
// A custom copier skips the opaque check; it takes responsibility for the
// types it accepts. Failures panic with an error wrapping ErrUncloneable,
// since they are programmer errors: such a state should never have been
// bound copy-on-write.
func Value[S any](src *S, copier apis.Copier) S {
	if c, ok := any(*src).(apis.Cloner[S]); ok {
		return c.Clone()
	}
	if c, ok := any(src).(apis.Cloner[S]); ok {
		return c.Clone()
	}

	t := reflect.TypeFor[S]()
	if uref.ValueSafe(t) {
		return *src
	}

	if copier == nil {
		if uref.Opaque(t) {
			panic(fmt.Errorf("%w: %v has unexported, interface, chan or func parts and no Clone method", ErrUncloneable, t))
		}
		copier = DefaultCopier
	}

	out, err := copier(*src)
	if err != nil {
		panic(fmt.Errorf("%w: copying %v: %v", ErrUncloneable, t, err))
	}
	dup, ok := out.(S)
	if !ok {
		panic(fmt.Errorf("%w: copier returned %T, want %v", ErrUncloneable, out, t))
	}
	return dup
}

// Supported reports whether Value can duplicate values of type S without
// panicking, assuming the default copier. Copy-on-write cells check it at
// creation to flag bindings that will panic on their first duplicating
// operation.
func Supported[S any]() bool {
	var zero S
	if _, ok := any(zero).(apis.Cloner[S]); ok {
		return true
	}
	if _, ok := any(&zero).(apis.Cloner[S]); ok {
		return true
	}
	t := reflect.TypeFor[S]()
	return uref.ValueSafe(t) || !uref.Opaque(t)
}
