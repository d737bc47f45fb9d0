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

package common

// Labeler names a state type for diagnostic output.
//
// # Overview
//
// Labeler is the zero-reflection fast path for deriving the label a store
// shows for a state type in logs, metrics and hub listings. When a state
// type implements Labeler, the store MUST prefer this interface and MUST
// NOT fall back to any derived form (such as the reflected "pkg.Type"
// label) for that type.
//
// Semantically, Labeler is a type-level contract: StoreLabel describes the
// *kind* of state held, not a particular value of it. The store reads the
// label exactly once per cell, from a zero value of the type, so the
// returned label MUST NOT depend on instance state and is expected to stay
// stable across program executions, deployments, and process restarts, as
// long as the underlying domain model does not change.
//
// # Performance
//
// Implementations are intended to be extremely cheap:
//
//   - SHOULD be constant-time and amortized O(1).
//   - SHOULD avoid heap allocations (returning a string literal or a
//     precomputed value is the expected shape).
//   - MUST NOT perform blocking operations or I/O.
//   - MUST be safe to call from multiple goroutines concurrently.
//
// # Usage
//
// Typical usage is to pick a short, domain-oriented label that reads well
// in log records and as a metrics series label:
//
//	type Settings struct {
//	    Count int64
//	    Label string
//	}
//
//	func (Settings) StoreLabel() string {
//	    return "app.settings"
//	}
//
// Every cell-creation log record and every per-cell metrics series for
// Settings then carries "app.settings" instead of the derived form.
//
// # Labeling guidelines
//
// The StoreLabel value is expected to be:
//
//   - Stable across program executions (MUST): metrics series identity
//     keys off it, so a changed label splits the series.
//   - Unique among the state types held by one hub (SHOULD); two types
//     sharing a label merge their diagnostics in ways that are hard to
//     untangle.
//   - Short and human-readable (SHOULD; <64 characters RECOMMENDED).
//   - Expressed in a conventional format, such as lowercase,
//     dot-separated segments (MAY, but strongly RECOMMENDED).
type Labeler interface {
	// StoreLabel returns the stable, type-level label for this state type.
	//
	// # Contract
	//
	//   - MUST return the same value on every call for a given program
	//     build; the store is free to read it once and cache it forever.
	//   - MUST be callable on a zero value of the type: the store invokes
	//     it before any value has ever been written.
	//   - MUST NOT depend on mutable instance state.
	//   - MUST be safe for concurrent use by multiple goroutines.
	//   - MUST NOT perform blocking operations or I/O.
	//   - SHOULD return a non-empty string; an empty label is passed
	//     through verbatim and makes diagnostics useless, but the store
	//     does not reject it.
	StoreLabel() string
}

// LabelerFunc adapts a plain function to the Labeler interface.
//
// # Overview
//
// LabelerFunc is a function adapter that allows any function with the
// signature `func() string` to satisfy Labeler. This is useful when the
// label is naturally expressed as a function (for example, when naming
// behavior is passed around as a dependency) rather than as a method on
// the state type itself.
//
// Using LabelerFunc does not change the semantics of Labeler: the function
// is still expected to return a stable, type-level label that does not
// depend on mutable state and remains the same across program executions
// as long as the domain model is unchanged.
//
// # Usage
//
//	func settingsLabel() string { return "app.settings" }
//
//	var l Labeler = LabelerFunc(settingsLabel)
//	label := l.StoreLabel() // "app.settings"
//
// # Contract
//
//   - A LabelerFunc MUST return a deterministic string.
//   - LabelerFunc implementations MUST be safe to call from multiple
//     goroutines concurrently.
//   - LabelerFunc MUST NOT perform blocking operations or I/O.
//   - LabelerFunc SHOULD avoid heap allocations and expensive work; if the
//     label needs computing, it SHOULD be precomputed once.
type LabelerFunc func() string

// StoreLabel implements Labeler for LabelerFunc.
//
// Calling StoreLabel on a LabelerFunc is equivalent to invoking the
// underlying function value directly; all contractual requirements of
// Labeler apply to the wrapped function.
func (f LabelerFunc) StoreLabel() string {
	return f()
}
