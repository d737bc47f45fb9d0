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

// Variant identifies the mutation strategy of a store cell.
type Variant int8

const (
	// CopyOnWrite replaces the whole instance via an atomic snapshot swap.
	// Readers are wait-free and never observe a write in progress.
	CopyOnWrite Variant = iota
	// InPlace mutates the single live instance under a reader/writer slot.
	// Readers are excluded while a writer holds the slot.
	InPlace
)

// String returns the lowercase label used in logs and metrics.
func (v Variant) String() string {
	switch v {
	case CopyOnWrite:
		return "cow"
	case InPlace:
		return "inplace"
	default:
		return "unknown"
	}
}
