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
	"sort"

	"dirpx.dev/stx/apis"
)

// CloneMode describes how a state type can be duplicated, as proven by
// static analysis. It decides the cell variant and whether a Clone helper
// is emitted.
type CloneMode int8

const (
	// CloneNone means no safe duplication exists; the type gets an
	// in-place cell.
	CloneNone CloneMode = iota
	// CloneMethod means the type declares Clone() S.
	CloneMethod
	// CloneShallow means the field graph is all value kinds, so plain
	// assignment already yields an independent copy.
	CloneShallow
	// CloneDeep means a reflective deep copy is provably faithful.
	CloneDeep
)

// TypeModel is everything the renderer needs for one state type. Analysis
// produces it; rendering consumes it and nothing else, so rendering is
// testable without the loader.
type TypeModel struct {
	// Package is the name of the package the generated file belongs to.
	Package string
	// Name is the state type's name.
	Name string
	// Fields lists the addressable declared fields in order.
	Fields []FieldModel
	// Mode is the proven duplication mode.
	Mode CloneMode
	// Variant is the chosen cell variant.
	Variant apis.Variant
	// Forced records that --inplace overrode a duplication-capable type.
	Forced bool
	// Imports lists packages referenced by field types, by import path.
	Imports []string
}

// FieldModel describes one declared field of the state type.
type FieldModel struct {
	// Name is the field name as declared.
	Name string
	// Type is the field type in Go syntax, qualified for the target package.
	Type string
	// Selector is the generated selector type identifier.
	Selector string
	// Exported reports whether the field itself is exported.
	Exported bool
}

// Command reconstructs the stxgen invocation recorded in the generated
// file's header.
func (m *TypeModel) Command() string {
	cmd := "stxgen --type " + m.Name
	if m.Forced {
		cmd += " --inplace"
	}
	return cmd
}

// allImports returns the module imports the generated code always needs
// plus the field-type imports, sorted.
func (m *TypeModel) allImports() []string {
	paths := append([]string{
		modulePath,
		modulePath + "/apis",
		modulePath + "/cell",
	}, m.Imports...)
	sort.Strings(paths)
	return paths
}
