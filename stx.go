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

package stx

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/stx/apis"
	"dirpx.dev/stx/builder"
	"dirpx.dev/stx/cell"
	"dirpx.dev/stx/config"
	"dirpx.dev/stx/hub"
)

// init initializes the global state.
func init() {
	// Initialize state with default cfg, bld, and hub.
	cfg := config.DefaultConfig()
	b := builder.New()
	st.Store(&state{cfg: cfg, bld: b, hub: b.BuildHub(cfg, nil)})
}

// ErrNilHub is thrown when a builder returns a nil hub.
var ErrNilHub = errors.New("stx: builder returned nil hub")

// COW returns the process-wide copy-on-write cell for S, creating it on
// first use. This is a convenience wrapper around the default hub.
func COW[S any]() *cell.COW[S] {
	return hub.COW[S](st.Load().hub)
}

// InPlace returns the process-wide in-place cell for S, creating it on
// first use. This is a convenience wrapper around the default hub.
func InPlace[S any]() *cell.InPlace[S] {
	return hub.InPlace[S](st.Load().hub)
}

// Default returns the current process-wide hub.
func Default() *hub.Hub {
	return st.Load().hub
}

// SetDefault replaces the process-wide hub with h and pins it: later
// Configure calls will not rebuild it until Reset. A nil h is ignored.
func SetDefault(h *hub.Hub) {
	if h == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, hub: h, bld: old.bld, pinned: true})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// Configure replaces the global configuration and rebuilds the default hub
// through the current builder, unless the hub is pinned. Cells obtained
// before the call keep serving their holders; subsequently requested cells
// come from the rebuilt hub.
func Configure(opts ...config.Option) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	cfg := config.NewConfig(opts...)

	nhub := old.hub
	if !old.pinned {
		nhub = old.bld.BuildHub(cfg, old.hub)
		if nhub == nil {
			panic(ErrNilHub)
		}
	}

	st.Store(&state{cfg: cfg, hub: nhub, bld: old.bld, pinned: old.pinned})
}

// Builder returns the current hub builder.
func Builder() hub.Builder {
	return st.Load().bld
}

// SetBuilder replaces the hub builder. It does not rebuild anything by
// itself; the new builder is used on the next Configure or Reset.
// A nil b is ignored.
func SetBuilder(b hub.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, hub: old.hub, bld: b, pinned: old.pinned})
}

// Reset unpins and rebuilds the default hub through the current builder,
// keeping the current configuration. Intended for tests that need a clean
// process-wide state.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nhub := old.bld.BuildHub(old.cfg, old.hub)
	if nhub == nil {
		panic(ErrNilHub)
	}

	st.Store(&state{cfg: old.cfg, hub: nhub, bld: old.bld, pinned: false})
}

// buildMu serializes the mutation helpers (Configure, SetDefault,
// SetBuilder, Reset) so each rebuild or pin decision acts on the snapshot
// it loaded.
var buildMu sync.Mutex

// st holds the published snapshot; the typed accessors load it without
// locking.
var st atomic.Pointer[state]

// state is one publication of the root surface. Published states are
// immutable: the mutation helpers assemble a fresh state under buildMu
// and swap it in, they never write through st.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// hub is the process-wide hub.
	hub *hub.Hub
	// bld constructs hubs on Configure/Reset.
	bld hub.Builder
	// pinned indicates the hub was set explicitly and must not be rebuilt.
	pinned bool
}
