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

// Package cell implements the two store cell variants holding the live
// value of a state object.
//
// COW keeps the current value as an immutable snapshot behind an atomic
// pointer: reads are wait-free, every mutation clones the current value,
// mutates the clone and atomically publishes it. InPlace keeps a single
// value under a weighted read/write semaphore and mutates it directly.
// Both satisfy apis.Handle; only COW has Read, since handing out a
// pointer into an in-place value would bypass its exclusion.
//
// Field-granular access goes through the package-level Get, Select and
// Set functions, which combine a cell with a generated apis.Field
// selector (methods cannot introduce type parameters).
package cell

import (
	"errors"
	"sync/atomic"

	"github.com/google/uuid"

	"dirpx.dev/stx/apis"
)

var (
	// ErrPoisoned marks a cell whose mutator panicked mid-write. The single
	// live value may be half-mutated, so every subsequent operation on the
	// cell panics with this error rather than serve it.
	ErrPoisoned = errors.New("stx(cell): cell is poisoned")
)

// maxWeight is the semaphore capacity of an in-place cell. Readers acquire
// weight 1, writers acquire the full capacity.
const maxWeight = 1 << 30

// meta carries the commit metadata every cell exposes through apis.Probe.
// Fields are atomics so probes never touch the cell's exclusion domain.
type meta struct {
	serial   atomic.Uint64
	poisoned atomic.Bool
	lineage  string
}

// init fixes the lineage. Must run before the cell is shared.
func (m *meta) init() {
	m.lineage = uuid.NewString()
}

// Serial returns the number of committed writes.
func (m *meta) Serial() uint64 { return m.serial.Load() }

// Lineage returns the identity fixed at cell creation.
func (m *meta) Lineage() string { return m.lineage }

// Poisoned reports whether a mutator panic left the cell unusable.
func (m *meta) Poisoned() bool { return m.poisoned.Load() }

var _ apis.Probe = (*meta)(nil)
