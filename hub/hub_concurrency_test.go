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

package hub_test

import (
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/stx/cell"
	"dirpx.dev/stx/config"
	"dirpx.dev/stx/hub"
)

type counters struct {
	Hits uint64
}

type gauges struct {
	Level int
}

// TestFirstRequestRace verifies that goroutines racing on the very first
// request for a type all end up with the same cell.
func TestFirstRequestRace(t *testing.T) {
	h := hub.New(config.DefaultConfig())
	workers := runtime.GOMAXPROCS(0) * 4

	got := make(chan *cell.COW[counters], workers)
	start := make(chan struct{})
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			<-start
			got <- hub.COW[counters](h)
		}()
	}
	close(start)
	wg.Wait()
	close(got)

	first := <-got
	for p := range got {
		if p != first {
			t.Fatalf("two goroutines saw different cells: %p vs %p", first, p)
		}
	}
	if h.Count() != 1 {
		t.Fatalf("count = %d, want 1", h.Count())
	}
}

// TestConcurrentAccessAndDiagnostics hammers cell accessors alongside
// Entries/Count to check the hub stays consistent under load.
func TestConcurrentAccessAndDiagnostics(t *testing.T) {
	h := hub.New(config.DefaultConfig())

	// Establish both cells sequentially first.
	cow := hub.COW[counters](h)
	ip := hub.InPlace[gauges](h)

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				if c := hub.COW[counters](h); c != cow {
					t.Errorf("copy-on-write cell moved: %p vs %p", c, cow)
					return
				}
				if c := hub.InPlace[gauges](h); c != ip {
					t.Errorf("in-place cell moved: %p vs %p", c, ip)
					return
				}
				if n := h.Count(); n != 2 {
					t.Errorf("count = %d, want 2", n)
					return
				}
				if len(h.Entries()) != 2 {
					t.Errorf("entries length != 2")
					return
				}
			}
		}()
	}

	// A writer keeps serials moving while the accessors run.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			cow.Update(func(c *counters) { c.Hits++ })
			ip.Update(func(g *gauges) { g.Level++ })
		}
	}()

	wg.Wait()

	if got := cow.Read().Hits; got != 1000 {
		t.Fatalf("hits = %d, want 1000", got)
	}
	ip.View(func(g *gauges) {
		if g.Level != 1000 {
			t.Fatalf("level = %d, want 1000", g.Level)
		}
	})
}
