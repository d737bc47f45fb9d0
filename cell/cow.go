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

package cell

import (
	"context"
	"reflect"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"dirpx.dev/stx/apis"
	"dirpx.dev/stx/clone"
	"dirpx.dev/stx/utils/logging"
)

// COW is the copy-on-write store cell. The current value lives behind an
// atomic pointer as an immutable snapshot: Read and View are wait-free and
// never observe a partial mutation. Every mutation clones the current
// value, mutates the private clone and atomically publishes it, so readers
// holding older snapshots stay valid for as long as they keep the pointer.
//
// Writers serialize on a context-aware semaphore. A mutator panic hits the
// private clone only; the published snapshot stays authoritative and the
// cell remains usable (a COW cell is never poisoned).
type COW[S any] struct {
	meta
	// cfg is fixed at construction.
	cfg apis.Config
	// cur is the current snapshot. Published values are immutable.
	cur atomic.Pointer[S]
	// wr admits one writer at a time.
	wr *semaphore.Weighted
}

var (
	_ apis.Handle[struct{}] = (*COW[struct{}])(nil)
	_ apis.Probe            = (*COW[struct{}])(nil)
	_ apis.Configured       = (*COW[struct{}])(nil)
)

// NewCOW creates a copy-on-write cell holding the zero value of S.
// Binding a type the duplication chain cannot copy is allowed but logged:
// such a cell serves Read, View and Write, and panics on the first
// operation that needs a duplicate (Update, Set, Clone, Select).
func NewCOW[S any](cfg apis.Config) *COW[S] {
	if cfg.Logger == nil {
		cfg.Logger = logging.NopLogger{}
	}
	c := &COW[S]{cfg: cfg, wr: semaphore.NewWeighted(1)}
	c.meta.init()
	c.cur.Store(new(S))
	if cfg.Copier == nil && !clone.Supported[S]() {
		cfg.Logger.Warn("copy-on-write cell cannot duplicate its state",
			"type", reflect.TypeFor[S]().String(), "lineage", c.lineage)
	}
	return c
}

// Config returns the cell's effective configuration.
func (c *COW[S]) Config() apis.Config {
	return c.cfg
}

// Read returns the current snapshot. It never blocks, regardless of
// in-flight writers. The snapshot must be treated as read-only; it stays
// valid and unchanging no matter how many writes commit afterwards.
func (c *COW[S]) Read() *S {
	return c.cur.Load()
}

// View runs fn on the current snapshot. Same contract as Read; fn must not
// retain the pointer if it needs the value to track later writes.
func (c *COW[S]) View(fn func(s *S)) {
	fn(c.cur.Load())
}

// Clone returns an independent deep copy of the current value, safe to
// mutate without affecting the store. Panics with clone.ErrUncloneable if
// the state cannot be duplicated.
func (c *COW[S]) Clone() S {
	return clone.Value(c.cur.Load(), c.cfg.Copier)
}

// Write replaces the current value with s.
func (c *COW[S]) Write(s S) {
	// Acquire cannot fail with a background context.
	_ = c.wr.Acquire(context.Background(), 1)
	defer c.wr.Release(1)

	c.cur.Store(&s)
	c.serial.Add(1)
}

// Update applies fn to the whole state in one critical section: the
// current value is cloned, fn mutates the clone, and the clone becomes the
// new snapshot. Concurrent readers keep observing the previous snapshot
// until the commit. If fn panics, nothing is committed.
func (c *COW[S]) Update(fn func(s *S)) {
	_ = c.wr.Acquire(context.Background(), 1)
	defer c.wr.Release(1)

	dup := clone.Value(c.cur.Load(), c.cfg.Copier)
	fn(&dup)
	c.cur.Store(&dup)
	c.serial.Add(1)
}

// UpdateContext is Update for mutators that may suspend (I/O, timers)
// while holding the writer slot. ctx bounds waiting for the slot only;
// once fn starts it runs to completion. A non-nil error from fn aborts
// the commit and is returned as-is: the previous snapshot stays
// authoritative. fn must not operate on the same cell.
func (c *COW[S]) UpdateContext(ctx context.Context, fn func(ctx context.Context, s *S) error) error {
	if err := c.wr.Acquire(ctx, 1); err != nil {
		return err
	}
	defer c.wr.Release(1)

	dup := clone.Value(c.cur.Load(), c.cfg.Copier)
	if err := fn(ctx, &dup); err != nil {
		return err
	}
	c.cur.Store(&dup)
	c.serial.Add(1)
	return nil
}
