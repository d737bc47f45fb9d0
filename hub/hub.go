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

// Package hub manages one store cell per state-object type. Cells are
// created lazily on first request and live for the life of the hub; every
// later request for the same type returns the same cell. The accessors are
// package-level generic functions (Go methods cannot introduce type
// parameters).
package hub

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"

	"dirpx.dev/stx/apis"
	"dirpx.dev/stx/cell"
	"dirpx.dev/stx/naming"
	"dirpx.dev/stx/utils/logging"
)

// ErrVariantConflict indicates that the same state type was requested from
// one hub under both mutation variants.
var ErrVariantConflict = errors.New("stx(hub): conflicting cell variant for type")

// Hub holds at most one cell per state-object type. Safe for concurrent
// use; a cell is created exactly once even when many goroutines race on
// the first request.
type Hub struct {
	// cfg is handed to every cell this hub creates.
	cfg apis.Config
	// cells maps the state type to its slot.
	cells *xsync.MapOf[reflect.Type, *slot]
}

// slot pins the variant chosen on first request alongside the cell itself.
type slot struct {
	variant apis.Variant
	cell    any
	probe   apis.Probe
	// label is fixed at creation: the type's own StoreLabel when it has
	// one, the derived "pkg.Type" form otherwise.
	label string
}

var _ apis.Configured = (*Hub)(nil)

// New constructs an empty hub whose cells will use cfg.
func New(cfg apis.Config) *Hub {
	if cfg.Logger == nil {
		cfg.Logger = logging.NopLogger{}
	}
	return &Hub{
		cfg:   cfg,
		cells: xsync.NewMapOf[reflect.Type, *slot](),
	}
}

// Config returns the configuration applied to cells created by this hub.
func (h *Hub) Config() apis.Config {
	return h.cfg
}

// COW returns the copy-on-write cell for S, creating it on first request.
// Panics with ErrVariantConflict if S was already requested in-place.
func COW[S any](h *Hub) *cell.COW[S] {
	t := reflect.TypeFor[S]()
	s, loaded := h.cells.LoadOrCompute(t, func() *slot {
		c := cell.NewCOW[S](h.cfg)
		var zero S
		return &slot{variant: apis.CopyOnWrite, cell: c, probe: c, label: naming.LabelFor(&zero)}
	})
	s.demand(t, apis.CopyOnWrite)
	if !loaded {
		h.created(s)
	}
	return s.cell.(*cell.COW[S])
}

// InPlace returns the in-place cell for S, creating it on first request.
// Panics with ErrVariantConflict if S was already requested copy-on-write.
func InPlace[S any](h *Hub) *cell.InPlace[S] {
	t := reflect.TypeFor[S]()
	s, loaded := h.cells.LoadOrCompute(t, func() *slot {
		c := cell.NewInPlace[S](h.cfg)
		var zero S
		return &slot{variant: apis.InPlace, cell: c, probe: c, label: naming.LabelFor(&zero)}
	})
	s.demand(t, apis.InPlace)
	if !loaded {
		h.created(s)
	}
	return s.cell.(*cell.InPlace[S])
}

// demand checks the slot's variant against the requested one.
func (s *slot) demand(t reflect.Type, want apis.Variant) {
	if s.variant != want {
		panic(fmt.Errorf("%w: %s is held as %s, requested as %s",
			ErrVariantConflict, naming.Label(t), s.variant, want))
	}
}

// created logs one record for the slot that won the creation race.
func (h *Hub) created(s *slot) {
	h.cfg.Logger.Debug("stx: cell created",
		"type", s.label,
		"variant", s.variant.String(),
		"lineage", s.probe.Lineage())
}

// Entries returns a diagnostic snapshot of every cell currently held
// (order is unspecified). The snapshot stays valid after Reset.
func (h *Hub) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, h.Count())
	h.cells.Range(func(t reflect.Type, s *slot) bool {
		entries = append(entries, apis.Entry{
			Type:     t,
			Label:    s.label,
			Variant:  s.variant,
			Serial:   s.probe.Serial(),
			Lineage:  s.probe.Lineage(),
			Poisoned: s.probe.Poisoned(),
		})
		return true
	})
	return entries
}

// Count returns the number of cells currently held.
func (h *Hub) Count() int {
	return h.cells.Size()
}

// Reset detaches all cells so the next request per type creates a fresh
// one. Handles obtained before the reset keep working against the
// detached cells; intended for tests.
func (h *Hub) Reset() {
	h.cells.Clear()
}
