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

package common

// Cloner declares that a state type can produce independent copies of
// itself.
//
// # Overview
//
// Cloner is the duplication contract that gates copy-on-write storage. A
// store duplicates the current value on three occasions: when a writer
// prepares the next snapshot, when a caller asks for a detached copy of
// the whole value, and when a field projection hands out a copy of one
// field. When a state type implements Cloner, the store MUST prefer this
// method and MUST NOT attempt any other duplication strategy (such as
// shallow assignment or reflective deep copy) for that type.
//
// Implementing Cloner is the only way to make types with unexported
// reference fields, interface-typed fields, or other externally opaque
// state eligible for copy-on-write storage: automatic analysis cannot
// prove such types duplicable and will route them to in-place storage
// otherwise.
//
// # Independence
//
// The copy returned by Clone MUST be fully independent of the receiver:
// no mutation of the copy may ever be observable through the original,
// and no mutation of the original may ever be observable through the
// copy. In practice that means reference-typed fields (slices, maps,
// pointers) MUST be duplicated deeply; immutable shared state (strings,
// or data the domain model never mutates) MAY be shared.
//
// # Usage
//
//	type Table struct {
//	    Routes map[string]int
//	}
//
//	func (t Table) Clone() Table {
//	    routes := make(map[string]int, len(t.Routes))
//	    for k, v := range t.Routes {
//	        routes[k] = v
//	    }
//	    return Table{Routes: routes}
//	}
type Cloner[S any] interface {
	// Clone returns an independent copy of the receiver.
	//
	// # Contract
	//
	//   - MUST return a value whose reachable mutable memory is disjoint
	//     from the receiver's.
	//   - MUST NOT mutate, retain, or publish the receiver.
	//   - MUST be safe to call while other goroutines read the receiver;
	//     the store guarantees no writer mutates it during the call.
	//   - MUST NOT perform blocking operations or I/O; writers wait
	//     behind every Clone on the commit path.
	//   - SHOULD be cheap in proportion to the state's size; an expensive
	//     Clone throttles every write to the cell.
	//   - MUST NOT panic on any value of S, including the zero value: the
	//     store clones values it has never inspected.
	Clone() S
}
