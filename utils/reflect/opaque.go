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

package reflect

import (
	"reflect"
	"sync"
)

// opaqueCache memoizes Opaque results by type.
var opaqueCache sync.Map // key: reflect.Type, val: bool

// Opaque reports whether a value of type t can reach data that a reflective
// copier cannot carry into a duplicate:
//
//   - unexported struct fields, at any depth (reflection cannot set them on
//     the copy, so they would be silently zeroed)
//   - interface values (the dynamic type is unknown, so nothing can be
//     proven about its contents)
//   - chan, func and unsafe.Pointer values (no meaningful duplicate exists)
//
// Opaque types need their own Clone method to be duplicated faithfully.
// Note that Opaque and ValueSafe answer different questions: a struct whose
// unexported fields are all plain values is value-safe (assignment carries
// them) yet opaque (a reflective walk would lose them).
//
// A nil type hides nothing.
func Opaque(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if v, ok := opaqueCache.Load(t); ok {
		return v.(bool)
	}
	opaque := walkOpaque(t, DefaultMaxDepth)
	opaqueCache.Store(t, opaque)
	return opaque
}

// walkOpaque is the uncached recursion behind Opaque.
func walkOpaque(t reflect.Type, depth int) bool {
	if depth <= 0 {
		// Too deep to prove anything; assume the worst.
		return true
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return false

	case reflect.Array, reflect.Slice, reflect.Pointer:
		return walkOpaque(t.Elem(), depth-1)

	case reflect.Map:
		return walkOpaque(t.Key(), depth-1) || walkOpaque(t.Elem(), depth-1)

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				// Zero-size markers like _ [0]func() lose nothing.
				if f.Type.Size() > 0 {
					return true
				}
				continue
			}
			if walkOpaque(f.Type, depth-1) {
				return true
			}
		}
		return false

	default:
		// Interface, Chan, Func, UnsafePointer.
		return true
	}
}
