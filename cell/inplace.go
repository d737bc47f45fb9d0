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
	"fmt"
	"reflect"

	"golang.org/x/sync/semaphore"

	"dirpx.dev/stx/apis"
	"dirpx.dev/stx/clone"
	"dirpx.dev/stx/utils/logging"
)

// InPlace is the lock-guarded store cell. It owns a single live value and
// mutates it directly, with no copies: readers and writers share one
// weighted semaphore acting as an async-aware read/write lock. Readers
// acquire weight 1, writers the full capacity, so readers run concurrently
// with each other and never with a writer. Acquisition is FIFO: a waiting
// writer blocks readers that arrive after it.
//
// Because mutation happens on the one and only instance, a mutator panic
// leaves it possibly half-written. The cell then poisons itself: the
// original panic is re-thrown wrapped in ErrPoisoned, and every later
// operation panics with ErrPoisoned instead of serving suspect state.
//
// There is no Read method. Handing out a pointer into the guarded value
// would bypass the exclusion; use View, Clone or the field operations.
type InPlace[S any] struct {
	meta
	// cfg is fixed at construction.
	cfg apis.Config
	// sem is the cell's only exclusion domain.
	sem *semaphore.Weighted
	// val is the single live instance, guarded by sem.
	val S
}

var (
	_ apis.Handle[struct{}] = (*InPlace[struct{}])(nil)
	_ apis.Probe            = (*InPlace[struct{}])(nil)
	_ apis.Configured       = (*InPlace[struct{}])(nil)
)

// NewInPlace creates an in-place cell holding the zero value of S.
func NewInPlace[S any](cfg apis.Config) *InPlace[S] {
	if cfg.Logger == nil {
		cfg.Logger = logging.NopLogger{}
	}
	p := &InPlace[S]{cfg: cfg, sem: semaphore.NewWeighted(maxWeight)}
	p.meta.init()
	return p
}

// Config returns the cell's effective configuration.
func (p *InPlace[S]) Config() apis.Config {
	return p.cfg
}

// check panics if a previous mutator poisoned the cell. Callers hold at
// least a reader weight, so the verdict cannot change mid-operation.
func (p *InPlace[S]) check() {
	if p.poisoned.Load() {
		panic(fmt.Errorf("%w: %v", ErrPoisoned, reflect.TypeFor[S]()))
	}
}

// poison marks the cell unusable and re-throws the mutator's panic value
// wrapped in ErrPoisoned. Runs before the writer weight is released, so no
// operation can slip in between the panic and the mark.
func (p *InPlace[S]) poison(r any) {
	p.poisoned.Store(true)
	p.cfg.Logger.Error("mutator panicked, cell poisoned",
		"type", reflect.TypeFor[S]().String(), "lineage", p.lineage, "panic", r)
	panic(fmt.Errorf("%w: %v", ErrPoisoned, r))
}

// View runs fn with shared read access to the live value. fn must treat
// the value as read-only and must not re-enter the same cell: the reader
// weight is held until View returns, so a nested Write or Update on this
// cell deadlocks. A panic in fn does not poison the cell; observers
// cannot have corrupted anything.
func (p *InPlace[S]) View(fn func(s *S)) {
	_ = p.sem.Acquire(context.Background(), 1)
	defer p.sem.Release(1)
	p.check()

	fn(&p.val)
}

// Clone returns an independent deep copy of the live value, taken under
// shared read access. Panics with clone.ErrUncloneable if the state cannot
// be duplicated.
func (p *InPlace[S]) Clone() S {
	_ = p.sem.Acquire(context.Background(), 1)
	defer p.sem.Release(1)
	p.check()

	return clone.Value(&p.val, p.cfg.Copier)
}

// Write overwrites the live value with s under exclusive access.
func (p *InPlace[S]) Write(s S) {
	_ = p.sem.Acquire(context.Background(), maxWeight)
	defer p.sem.Release(maxWeight)
	p.check()

	p.val = s
	p.serial.Add(1)
}

// Update applies fn directly to the live value under exclusive access.
// There is no copy: if fn panics the cell is poisoned, and whatever fn
// changed before an ordinary return stays written.
func (p *InPlace[S]) Update(fn func(s *S)) {
	_ = p.sem.Acquire(context.Background(), maxWeight)
	defer p.sem.Release(maxWeight)
	p.check()

	defer func() {
		if r := recover(); r != nil {
			p.poison(r)
		}
	}()
	fn(&p.val)
	p.serial.Add(1)
}

// UpdateContext is Update for mutators that may suspend while holding the
// write weight. ctx bounds waiting for the weight only; once fn starts it
// runs to completion, and every reader and writer of this cell blocks for
// the duration. A non-nil error from fn is returned without bumping the
// commit serial; since mutation is in place, changes fn already made
// remain, so error-returning mutators must leave the value consistent.
// fn must not operate on the same cell.
func (p *InPlace[S]) UpdateContext(ctx context.Context, fn func(ctx context.Context, s *S) error) error {
	if err := p.sem.Acquire(ctx, maxWeight); err != nil {
		return err
	}
	defer p.sem.Release(maxWeight)
	p.check()

	defer func() {
		if r := recover(); r != nil {
			p.poison(r)
		}
	}()
	if err := fn(ctx, &p.val); err != nil {
		return err
	}
	p.serial.Add(1)
	return nil
}
