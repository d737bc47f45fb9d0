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

// DefaultMaxDepth bounds the recursive descent through nested value types.
// A value of 8 should be sufficient for all practical purposes; deeper
// nesting is reported unsafe rather than walked further.
const DefaultMaxDepth = 8

// valueSafeCache memoizes ValueSafe results by type.
var valueSafeCache sync.Map // key: reflect.Type, val: bool

// ValueSafe reports whether plain assignment of a value of type t yields a
// fully independent copy, i.e. whether a shallow copy is already a deep
// copy. Unexported fields participate like any other field, since struct
// assignment copies them too.
//
// Kind policy:
//   - bool, all integer/float/complex kinds, string -> safe
//     (strings are immutable, so sharing the backing array is fine)
//   - array  -> safe iff its element type is safe
//   - struct -> safe iff every field type is safe
//   - ptr/slice/map/chan/func/interface/unsafe.Pointer -> unsafe
//     (the copy would share mutable memory or hide arbitrary dynamic types)
//
// A nil type is unsafe by definition.
func ValueSafe(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if v, ok := valueSafeCache.Load(t); ok {
		return v.(bool)
	}
	safe := walk(t, DefaultMaxDepth)
	valueSafeCache.Store(t, safe)
	return safe
}

// walk is the uncached recursion behind ValueSafe.
func walk(t reflect.Type, depth int) bool {
	if depth <= 0 {
		return false
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true

	case reflect.Array:
		return walk(t.Elem(), depth-1)

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !walk(t.Field(i).Type, depth-1) {
				return false
			}
		}
		return true

	default:
		// Ptr, Slice, Map, Chan, Func, Interface, UnsafePointer.
		return false
	}
}
