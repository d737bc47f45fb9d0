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

// Package gen emits the store wiring for state-object types: one zero-size
// selector per declared field, a <Type>Store accessor bound to the default
// hub, and a <Type>Clone helper when duplication support was proven.
//
// The pipeline has three separable stages. Load type-checks the target
// package; Analyze decides the duplication mode and cell variant for one
// struct and produces a TypeModel; Render turns a model into formatted
// source. Generate runs all three. The stxgen command is a thin CLI over
// Generate, driven by //go:generate directives:
//
//	//go:generate go run dirpx.dev/stx/cmd/stxgen --type Settings
package gen

import (
	"errors"
	"fmt"
	"path/filepath"

	"dirpx.dev/stx/naming"
)

var (
	// ErrNoTypes is returned when a run names no target types.
	ErrNoTypes = errors.New("stx(gen): no target types named")
	// ErrOutputConflict is returned when --output is combined with more
	// than one target type.
	ErrOutputConflict = errors.New("stx(gen): --output requires exactly one --type")
	// ErrAmbiguousPackage is returned when the directory does not resolve
	// to exactly one package.
	ErrAmbiguousPackage = errors.New("stx(gen): directory does not hold exactly one package")
	// ErrUnknownType is returned when the target type is not declared in
	// the loaded package.
	ErrUnknownType = errors.New("stx(gen): type not found in package")
	// ErrNotStruct is returned when the target type is not a plain named
	// struct.
	ErrNotStruct = errors.New("stx(gen): target type is not a named struct")
	// ErrGenericType is returned for parameterized target types.
	ErrGenericType = errors.New("stx(gen): type parameters are not supported")
	// ErrNoFields is returned when the struct has no addressable fields.
	ErrNoFields = errors.New("stx(gen): struct has no addressable fields")
	// ErrSelectorCollision is returned when two generated identifiers
	// would collide.
	ErrSelectorCollision = errors.New("stx(gen): field selector collides with generated identifier")
)

// Options configure one generator run.
type Options struct {
	// Dir is the package directory to load; empty means the working
	// directory.
	Dir string
	// Types are the state types to generate wiring for.
	Types []string
	// Output overrides the derived file name. Valid only with a single
	// target type.
	Output string
	// InPlace forces the in-place variant for duplication-capable types.
	InPlace bool
	// Tags are extra build tags for the loader.
	Tags []string
}

// Result is one generated file, ready to write.
type Result struct {
	// File is the output path, inside the loaded package directory.
	File string
	// Src is the formatted source.
	Src []byte
}

// Generate loads the package once and renders one file per requested type.
// It stops at the first failing type so a botched run writes nothing.
func Generate(opts Options) ([]Result, error) {
	if len(opts.Types) == 0 {
		return nil, ErrNoTypes
	}
	if opts.Output != "" && len(opts.Types) > 1 {
		return nil, fmt.Errorf("%w: %d named", ErrOutputConflict, len(opts.Types))
	}

	pkg, err := Load(opts.Dir, opts.Tags)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(opts.Types))
	for _, name := range opts.Types {
		model, err := Analyze(pkg, name, opts.InPlace)
		if err != nil {
			return nil, err
		}
		src, err := Render(model)
		if err != nil {
			return nil, err
		}

		file := naming.OutputFile(name)
		if opts.Output != "" {
			file = opts.Output
		}
		results = append(results, Result{
			File: filepath.Join(opts.Dir, file),
			Src:  src,
		})
	}
	return results, nil
}
