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

// Package stx provides process-wide, concurrency-safe singleton storage for
// state objects, addressed by type and by field.
//
// stx keeps exactly one live instance of each state-object type (plain
// named structs like a Settings or a RoutingTable) and hands out typed
// operations on the whole object or on single fields. Examples of the kind
// of state it is meant for: live configuration, health snapshots, routing
// policy, rate-limit tables.
//
// # Design
//
// Each state type lives in a store cell. Two cell variants exist, chosen
// per type:
//
//   - cell.COW[S] (copy-on-write): the current value sits behind an atomic
//     pointer. Readers load the pointer and are done: a read never waits,
//     never takes a lock, and keeps observing its snapshot even while
//     writers commit new ones. Writers serialize on a weighted semaphore,
//     clone the current value, mutate the private clone, and atomically
//     swap it in. A mutator panic destroys only the clone; the published
//     value is untouched.
//
//   - cell.InPlace[S]: one live instance guarded by a weighted semaphore
//     acting as an async-aware reader/writer lock. Readers share the value
//     under read weights; a writer takes the full weight and mutates the
//     instance directly. Suited to types that cannot be duplicated (func or
//     chan fields, foreign handles) or that are too big to clone per write.
//     A mutator panic here poisons the cell: the instance may be
//     half-mutated, so every later operation panics with cell.ErrPoisoned.
//
// Cells for all types are managed by a hub (package hub): a concurrent map
// from state type to cell, creating each cell lazily on first request. The
// variant is fixed by whichever accessor runs first; requesting the same
// type under the other variant panics with hub.ErrVariantConflict. Each
// cell also carries a diagnostic label, fixed at creation:
//
//  1. If the type implements apis.Labeler, use its StoreLabel().
//  2. Otherwise derive a stable "pkg.Type" identifier from the Go type.
//
// The label names the cell in logs, in Entries() and in the Prometheus
// collector (package metrics).
//
// Fields are addressed through selectors: zero-size tokens implementing
// apis.Field[S, V] (a Select(*S) *V projection plus a Set(*S, V)
// assignment), one per declared field, normally emitted by the stxgen
// generator. A selector pins both the state type and the field type at
// compile time, so reading Settings.Count through a selector of another
// type does not build.
//
// # Global API
//
// The root package holds one default hub in a read-mostly snapshot (an
// atomic pointer to an immutable state struct, swapped under a build
// mutex). It exposes three groups of operations:
//
//  1. Typed accessors:
//
//     COW[S]() *cell.COW[S]
//     InPlace[S]() *cell.InPlace[S]
//     Default() *hub.Hub
//
//     Safe for concurrent use without locking; they always read the latest
//     published snapshot.
//
//  2. Mutation helpers:
//
//     Configure(opts ...config.Option)
//     SetDefault(h *hub.Hub)
//     SetBuilder(b hub.Builder)
//     Reset()
//
//     Each takes the internal build lock, derives a new snapshot, and
//     publishes it atomically. Configure rebuilds the default hub through
//     the current builder unless a hub was pinned via SetDefault; Reset
//     unpins and rebuilds. SetBuilder only installs the factory; it takes
//     effect on the next rebuild.
//
//  3. Introspection:
//
//     Config() apis.Config
//     Builder() hub.Builder
//     // plus Default().Entries(), etc.
//
// # Reading and writing
//
// The operation set on a cell, from cheapest to heaviest:
//
//	c := stx.COW[Settings]()
//
//	s := c.Read()                  // wait-free snapshot (COW only)
//	c.View(func(s *Settings) {…})  // read view, both variants
//	v := cell.Get(c, SettingsCount{}, func(n *int64) int64 { return *n })
//	v := cell.Select(c, SettingsCount{})   // owned copy of one field
//
//	c.Write(Settings{…})                   // replace wholesale
//	cell.Set(c, SettingsCount{}, 42)       // one field, atomically
//	c.Update(func(s *Settings) {…})        // whole-object critical section
//	err := c.UpdateContext(ctx, func(ctx context.Context, s *Settings) error {…})
//
// Updates run one at a time per cell. UpdateContext exists for mutators
// that suspend (I/O, timers) while holding the writer exclusion: waiting
// writers are parked, not spinning, and the context lets a caller abandon
// the wait. Once a mutator starts it runs to completion.
//
// # Duplication
//
// Copy-on-write commits, Clone, and Select need to duplicate values. The
// chain, in order: a Clone() S method on the state type; plain assignment
// for types whose field graph is all value kinds; reflective deep copy
// for types the walk can prove it handles. Types it cannot duplicate
// (unexported fields at any depth, func/chan/interface fields) must either
// implement Cloner, install a custom Copier via config.WithCopier, or live
// in an in-place cell. See package clone.
//
// # Code generation
//
// The stxgen command (package gen does the work) emits, per state type:
// one selector per field, a <Type>Store() accessor bound to the default
// hub with the variant chosen by duplication analysis, and a <Type>Clone()
// helper when duplication was verified:
//
//	//go:generate stxgen --type Settings
//
// # Scope
//
// stx is intentionally small. It does not try to be a database, a cache,
// or a pub/sub system. It solves one job:
//
//	"Keep one live, concurrency-safe instance of each state type, and
//	 let any part of the process read or mutate it, whole or per field,
//	 without data races."
//
// Everything else (persistence, change notification, cross-cell
// transactions) belongs to higher layers.
package stx
