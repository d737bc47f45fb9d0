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

package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SelectorIdent derives the generated selector identifier for one field:
// "<Type><Field>" with the field's first rune raised. A selector for an
// unexported field must itself stay unexported, so the type part's first
// rune is lowered in that case.
//
//	SelectorIdent("Settings", "Count") == "SettingsCount"
//	SelectorIdent("Settings", "count") == "settingsCount"
func SelectorIdent(typeName, fieldName string) string {
	ident := typeName + upperFirst(fieldName)
	if !exported(fieldName) {
		ident = lowerFirst(ident)
	}
	return ident
}

// StoreIdent derives the generated store accessor: "<Type>Store".
func StoreIdent(typeName string) string {
	return typeName + "Store"
}

// CloneIdent derives the generated clone helper: "<Type>Clone".
func CloneIdent(typeName string) string {
	return typeName + "Clone"
}

// OutputFile derives the generated file name: "<type>_stx.go", lowercased.
func OutputFile(typeName string) string {
	return strings.ToLower(typeName) + "_stx.go"
}

// exported reports whether an identifier's first rune is upper case.
func exported(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
