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

// Package naming derives the stable names the library shows and emits:
// diagnostic labels for state-object types, and the identifiers the
// generator builds from type and field names.
package naming

import (
	"path"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/stx/apis"
)

// labelCache caches computed labels by type.
var labelCache sync.Map // key: reflect.Type, val: string

// Label computes a stable, domain-oriented "pkg.Type" label for t, with
// generic instantiation parameters stripped. Builtin named types keep
// their bare name; unnamed types fall back to their Go syntax. Labels are
// for logs, metrics and diagnostics only; no behavior keys off them.
func Label(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if v, ok := labelCache.Load(t); ok {
		return v.(string)
	}

	name := stripTypeParams(t.Name())
	switch {
	case name == "":
		// Unnamed type, e.g. []string or a struct literal.
		name = t.String()
	case t.PkgPath() != "":
		name = path.Base(t.PkgPath()) + "." + name
	}

	labelCache.Store(t, name)
	return name
}

// LabelFor resolves the label for v's state type. A type implementing
// apis.Labeler names itself and skips the reflection path entirely;
// everything else goes through Label on the pointed-to type.
func LabelFor(v any) string {
	if l, ok := v.(apis.Labeler); ok {
		return l.StoreLabel()
	}
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return Label(t)
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
