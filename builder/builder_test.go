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

package builder_test

import (
	"log/slog"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/stx/builder"
	"dirpx.dev/stx/config"
	"dirpx.dev/stx/hub"
	"dirpx.dev/stx/utils/logging"
)

// userState is a plain named state type with no special behavior.
type userState struct {
	N int
}

// TestBuildHub_Basic asserts that BuildHub returns a non-nil, working hub
// that hands out cells and diagnostics.
func TestBuildHub_Basic(t *testing.T) {
	b := builder.New()

	// prev may be nil; this must still produce a valid hub.
	h := b.BuildHub(config.DefaultConfig(), nil)
	if h == nil {
		t.Fatal("BuildHub returned nil")
	}

	c := hub.COW[userState](h)
	c.Write(userState{N: 7})
	if got := c.Read().N; got != 7 {
		t.Fatalf("cell round-trip: got %d want 7", got)
	}

	if n := h.Count(); n != 1 {
		t.Fatalf("Count = %d, want 1", n)
	}
	if len(h.Entries()) != 1 {
		t.Fatalf("Entries returned wrong snapshot size")
	}
}

// TestBuildHub_StartsEmpty verifies the default builder does not carry
// cells over from the previous hub.
func TestBuildHub_StartsEmpty(t *testing.T) {
	b := builder.New()

	prev := b.BuildHub(config.DefaultConfig(), nil)
	old := hub.COW[userState](prev)
	old.Write(userState{N: 42})

	next := b.BuildHub(config.DefaultConfig(), prev)
	if next == prev {
		t.Fatal("BuildHub returned the previous hub")
	}
	if n := next.Count(); n != 0 {
		t.Fatalf("rebuilt hub Count = %d, want 0", n)
	}

	fresh := hub.COW[userState](next)
	if fresh == old {
		t.Fatal("rebuilt hub reused the old cell")
	}
	if got := fresh.Read().N; got != 0 {
		t.Fatalf("rebuilt cell should start from zero value, got %d", got)
	}
}

// TestBuildHub_AppliesConfig verifies cfg reaches the hub and its cells.
func TestBuildHub_AppliesConfig(t *testing.T) {
	log := logging.NewDefaultLogger(slog.LevelError)
	cfg := config.NewConfig(config.WithLogger(log))

	h := builder.New().BuildHub(cfg, nil)
	if h.Config().Logger != log {
		t.Fatal("hub did not receive the configured logger")
	}
	if got := hub.COW[userState](h).Config().Logger; got != log {
		t.Fatal("cell did not receive the configured logger")
	}
}

// TestBuildHub_Concurrency_Smoke hammers cells on a freshly built hub to
// ensure it is safe to use immediately after construction.
func TestBuildHub_Concurrency_Smoke(t *testing.T) {
	h := builder.New().BuildHub(config.DefaultConfig(), nil)
	c := hub.COW[userState](h)

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				c.Update(func(s *userState) { s.N++ })
				_ = c.Read()
			}
		}()
	}

	wg.Wait()

	if got := c.Read().N; got != workers*1000 {
		t.Fatalf("final N = %d, want %d", got, workers*1000)
	}
}

// Compile-time check: builder.New() must satisfy hub.Builder.
var _ hub.Builder = builder.New()
