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

package gen

import (
	"bytes"
	"fmt"
	"go/format"

	"dirpx.dev/stx/apis"
	"dirpx.dev/stx/naming"
)

// modulePath is the import root the generated code binds against.
const modulePath = "dirpx.dev/stx"

// Render turns a model into gofmt-formatted source for one generated file.
func Render(m *TypeModel) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by %q; DO NOT EDIT.\n\n", m.Command())
	fmt.Fprintf(&buf, "package %s\n\n", m.Package)

	fmt.Fprintf(&buf, "import (\n")
	for _, p := range m.allImports() {
		fmt.Fprintf(&buf, "\t%q\n", p)
	}
	fmt.Fprintf(&buf, ")\n\n")

	for _, f := range m.Fields {
		fmt.Fprintf(&buf, "// %s selects the %s field of %s.\n", f.Selector, f.Name, m.Name)
		fmt.Fprintf(&buf, "type %s struct{}\n\n", f.Selector)
		fmt.Fprintf(&buf, "func (%s) Select(s *%s) *%s { return &s.%s }\n",
			f.Selector, m.Name, f.Type, f.Name)
		fmt.Fprintf(&buf, "func (%s) Set(s *%s, v %s) { s.%s = v }\n\n",
			f.Selector, m.Name, f.Type, f.Name)
	}

	fmt.Fprintf(&buf, "var (\n")
	for _, f := range m.Fields {
		fmt.Fprintf(&buf, "\t_ apis.Field[%s, %s] = %s{}\n", m.Name, f.Type, f.Selector)
	}
	fmt.Fprintf(&buf, ")\n\n")

	variant := "COW"
	if m.Variant == apis.InPlace {
		variant = "InPlace"
	}
	store := naming.StoreIdent(m.Name)
	fmt.Fprintf(&buf, "// %s returns the process-wide cell for %s.\n", store, m.Name)
	fmt.Fprintf(&buf, "func %s() *cell.%s[%s] {\n\treturn stx.%s[%s]()\n}\n",
		store, variant, m.Name, variant, m.Name)

	if m.Mode != CloneNone {
		clone := naming.CloneIdent(m.Name)
		fmt.Fprintf(&buf, "\n// %s returns an independent copy of the current %s.\n", clone, m.Name)
		fmt.Fprintf(&buf, "func %s() %s {\n\treturn %s().Clone()\n}\n", clone, m.Name, store)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("stx(gen): formatting output for %s: %w", m.Name, err)
	}
	return src, nil
}
