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

package apis

import "reflect"

// Probe is the diagnostic face every cell variant exposes. Probe methods are
// lock-free (atomic loads) so that collectors and log hooks can read them
// while a writer (even a suspended UpdateContext mutator) holds the cell.
type Probe interface {
	// Serial returns the number of write generations committed so far.
	// It counts commits only: an in-place mutator that returns an error
	// leaves its changes in the value without advancing Serial.
	Serial() uint64
	// Lineage returns the identifier fixed when the cell was created.
	Lineage() string
	// Poisoned reports whether the cell was abandoned mid-mutation and is
	// refusing further operations.
	Poisoned() bool
}

// Entry is a diagnostic snapshot of one cell registered in a hub
// (order of a snapshot listing is unspecified).
type Entry struct {
	// Type is the state-object type the cell holds.
	Type reflect.Type
	// Label is the cell's diagnostic label: the type's own StoreLabel
	// when it implements Labeler, the derived "pkg.Type" form otherwise.
	Label string
	// Variant is the cell's mutation strategy.
	Variant Variant
	// Serial is the cell's write generation at snapshot time.
	Serial uint64
	// Lineage is the cell's creation identifier.
	Lineage string
	// Poisoned reports whether the cell has been poisoned.
	Poisoned bool
}
