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
	"fmt"
	"go/types"
	"runtime"
	"sort"

	"golang.org/x/tools/go/packages"

	"dirpx.dev/stx/apis"
	"dirpx.dev/stx/naming"
	uref "dirpx.dev/stx/utils/reflect"
)

// Analyze locates typeName in the loaded package and builds its model.
// forceInPlace overrides the variant decision for duplication-capable
// types that want zero-copy mutation.
func Analyze(pkg *packages.Package, typeName string, forceInPlace bool) (*TypeModel, error) {
	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil, fmt.Errorf("%w: %s in %s", ErrUnknownType, typeName, pkg.PkgPath)
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, typeName)
	}
	return analyzeNamed(named, pkg.TypesSizes, forceInPlace)
}

// analyzeNamed is the loader-independent core of Analyze.
func analyzeNamed(named *types.Named, sizes types.Sizes, forceInPlace bool) (*TypeModel, error) {
	if sizes == nil {
		sizes = types.SizesFor("gc", runtime.GOARCH)
	}

	typeName := named.Obj().Name()
	if named.TypeParams().Len() > 0 {
		return nil, fmt.Errorf("%w: %s", ErrGenericType, typeName)
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, typeName)
	}

	tracker := &importTracker{
		home: named.Obj().Pkg(),
		used: map[string]bool{},
	}

	var fields []FieldModel
	seen := map[string]string{} // selector ident -> field name
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Name() == "_" {
			continue
		}
		sel := naming.SelectorIdent(typeName, f.Name())
		if prev, dup := seen[sel]; dup {
			return nil, fmt.Errorf("%w: fields %s and %s both map to %s",
				ErrSelectorCollision, prev, f.Name(), sel)
		}
		if sel == naming.StoreIdent(typeName) || sel == naming.CloneIdent(typeName) {
			return nil, fmt.Errorf("%w: field %s maps to reserved %s",
				ErrSelectorCollision, f.Name(), sel)
		}
		seen[sel] = f.Name()

		fields = append(fields, FieldModel{
			Name:     f.Name(),
			Type:     types.TypeString(f.Type(), tracker.qualify),
			Selector: sel,
			Exported: f.Exported(),
		})
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFields, typeName)
	}

	mode := CloneNone
	switch {
	case hasCloneMethod(named):
		mode = CloneMethod
	case valueSafeType(named, uref.DefaultMaxDepth):
		mode = CloneShallow
	case !opaqueType(named, sizes, uref.DefaultMaxDepth):
		mode = CloneDeep
	}

	variant := apis.CopyOnWrite
	forced := false
	if mode == CloneNone {
		variant = apis.InPlace
	} else if forceInPlace {
		variant = apis.InPlace
		forced = true
	}

	return &TypeModel{
		Package: named.Obj().Pkg().Name(),
		Name:    typeName,
		Fields:  fields,
		Mode:    mode,
		Variant: variant,
		Forced:  forced,
		Imports: tracker.paths(),
	}, nil
}

// hasCloneMethod reports whether the pointer method set of named carries a
// Clone() S method returning the state type itself.
func hasCloneMethod(named *types.Named) bool {
	ms := types.NewMethodSet(types.NewPointer(named))
	for i := 0; i < ms.Len(); i++ {
		fn, ok := ms.At(i).Obj().(*types.Func)
		if !ok || fn.Name() != "Clone" {
			continue
		}
		sig, ok := fn.Type().(*types.Signature)
		if !ok {
			return false
		}
		return sig.Params().Len() == 0 &&
			sig.Results().Len() == 1 &&
			types.Identical(sig.Results().At(0).Type(), named)
	}
	return false
}

// valueSafeType is the static mirror of the runtime value-safety walk:
// every reachable field must be a value kind for plain assignment to yield
// an independent copy.
func valueSafeType(t types.Type, depth int) bool {
	if depth <= 0 {
		return false
	}
	switch u := types.Unalias(t).Underlying().(type) {
	case *types.Basic:
		return u.Kind() != types.UnsafePointer

	case *types.Array:
		return valueSafeType(u.Elem(), depth-1)

	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			if !valueSafeType(u.Field(i).Type(), depth-1) {
				return false
			}
		}
		return true

	default:
		// Pointer, Slice, Map, Chan, Signature, Interface.
		return false
	}
}

// opaqueType is the static mirror of the runtime opacity walk: it reports
// whether a value can reach data a reflective copier would silently drop.
func opaqueType(t types.Type, sizes types.Sizes, depth int) bool {
	if depth <= 0 {
		// Too deep to prove anything; assume the worst.
		return true
	}
	switch u := types.Unalias(t).Underlying().(type) {
	case *types.Basic:
		return u.Kind() == types.UnsafePointer

	case *types.Array:
		return opaqueType(u.Elem(), sizes, depth-1)

	case *types.Slice:
		return opaqueType(u.Elem(), sizes, depth-1)

	case *types.Pointer:
		return opaqueType(u.Elem(), sizes, depth-1)

	case *types.Map:
		return opaqueType(u.Key(), sizes, depth-1) || opaqueType(u.Elem(), sizes, depth-1)

	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			f := u.Field(i)
			if !f.Exported() {
				// Zero-size markers like _ [0]func() lose nothing.
				if sizes.Sizeof(f.Type()) > 0 {
					return true
				}
				continue
			}
			if opaqueType(f.Type(), sizes, depth-1) {
				return true
			}
		}
		return false

	default:
		// Interface, Chan, Signature.
		return true
	}
}

// importTracker records foreign packages referenced by field types while
// qualifying them for the generated source.
type importTracker struct {
	home *types.Package
	used map[string]bool
}

func (it *importTracker) qualify(p *types.Package) string {
	if p == it.home {
		return ""
	}
	it.used[p.Path()] = true
	return p.Name()
}

func (it *importTracker) paths() []string {
	if len(it.used) == 0 {
		return nil
	}
	paths := make([]string, 0, len(it.used))
	for p := range it.used {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
