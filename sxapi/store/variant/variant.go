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

package variant

import (
	"fmt"
	"strings"
)

// Variant selects the mutation discipline of a store cell.
//
// # Overview
//
// Variant is a small enumerated type that describes how a store cell
// holds and mutates its state value. It governs what readers observe
// while a writer is active, what duplication support the state type must
// provide, and what failure modes a crashed mutator leaves behind.
// Concrete store implementations use this value to select the underlying
// synchronization scheme.
//
// Variant is intentionally minimal and implementation-agnostic: it does
// not define lock types, snapshot lifetimes, or analysis rules, but
// instead selects a broad class of behavior (copy-on-write vs in-place
// mutation vs deferring the choice to analysis).
//
// # Values
//
// The following variants are defined:
//
//   - Auto    — defer the choice to duplication analysis.
//   - COW     — copy-on-write snapshots.
//   - InPlace — one guarded instance, mutated in place.
//
// Implementations MAY support additional, implementation-specific tuning
// (such as clone strategies or reader admission limits), but those are
// configured separately from Variant.
//
// # Contract
//
//   - Store implementations MUST treat Variant as a stable, public API;
//     adding new values is allowed, but existing values MUST NOT change
//     their semantics in breaking ways.
//   - Variant values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
//   - Variant SHOULD be used as an input to configuration or generator
//     code, not switched on in performance-critical paths.
type Variant int

const (
	// Auto defers the variant choice to duplication analysis.
	//
	// # Semantics
	//
	// Under Auto, the party creating the cell (typically the code
	// generator) MUST examine the state type and choose:
	//
	//   - COW when duplication support is provable: the type declares a
	//     Clone method, every reachable field copies by plain assignment,
	//     or a reflective deep copy is provably faithful.
	//   - InPlace otherwise.
	//
	// Auto is the zero value and the recommended default for
	// configuration surfaces: it never produces a cell that silently
	// loses state on copy, and it never forces locking onto a type that
	// could have wait-free reads.
	Auto Variant = iota

	// COW selects copy-on-write snapshot storage.
	//
	// # Semantics
	//
	// Under COW, the cell holds an immutable current snapshot. Readers
	// obtain it without locking and MAY keep it indefinitely; a held
	// snapshot never changes, regardless of later writes. Writers
	// duplicate the current snapshot, mutate the private copy, and
	// publish it as the new current snapshot; at most one writer runs at
	// a time.
	//
	// COW requires duplication support from the state type. A mutator
	// that fails mid-write damages only its private copy; the published
	// snapshot stays intact, so the cell never poisons.
	//
	// Recommended usage:
	//
	//   - Read-dominated state (configuration, routing tables, feature
	//     flags) where readers must never wait.
	//   - State whose values are small enough that cloning per write is
	//     acceptable.
	COW

	// InPlace selects single-instance guarded storage.
	//
	// # Semantics
	//
	// Under InPlace, the cell holds exactly one state value and mutates
	// it directly. Readers share access and writers exclude everyone;
	// read views observe the value in place and MUST NOT be retained
	// beyond the view. No duplication support is required.
	//
	// A mutator that fails mid-write leaves the single instance in an
	// unknown intermediate state; the cell then refuses all further
	// operations (it is poisoned) rather than serving torn data.
	//
	// Recommended usage:
	//
	//   - Types that cannot be duplicated faithfully (live handles,
	//     channels, callbacks, externally opaque state).
	//   - Large values where cloning per write is too expensive and
	//     zero-copy mutation is worth the reader/writer coupling.
	InPlace
)

// String returns a human-readable representation of the Variant value.
//
// # Semantics
//
// String implements fmt.Stringer and provides short, stable identifiers
// suitable for logging, configuration dumps, and debugging. For all
// defined enum values, the returned strings are:
//
//   - Auto    -> "Auto"
//   - COW     -> "COW"
//   - InPlace -> "InPlace"
//
// For unknown or out-of-range values, String returns a diagnostic form
// "Unknown(<n>)", where <n> is the underlying integer value. This
// behavior is intentional and MUST NOT panic, so that corrupted or
// unexpected values can still be surfaced safely in logs.
//
// # Contract
//
//   - The mapping from known Variant values to strings MUST remain
//     stable; changing the spelling or casing is a breaking change for
//     systems that persist or parse these strings.
//   - Callers MAY use the returned string for display or logging, but
//     they SHOULD NOT rely on it as a primary configuration format
//     unless this is explicitly documented and properly versioned.
func (v Variant) String() string {
	switch v {
	case Auto:
		return "Auto"
	case COW:
		return "COW"
	case InPlace:
		return "InPlace"
	default:
		return fmt.Sprintf("Unknown(%d)", v)
	}
}

// Parse parses a textual representation of a Variant.
//
// # Overview
//
// Parse converts a string token into the corresponding Variant value. It
// accepts the same canonical tokens that are produced by Variant.String()
// for known values, with case-insensitive matching.
//
// Accepted (case-insensitive) inputs:
//
//   - "Auto"    -> Auto
//   - "COW"     -> COW
//   - "InPlace" -> InPlace
//
// Any other input results in a non-nil error.
//
// # Contract
//
//   - s MAY contain surrounding whitespace; it will be trimmed.
//   - On success, Parse returns a valid Variant and a nil error.
//   - On failure, Parse returns Auto and a non-nil error; callers MUST
//     NOT rely on the returned Variant value in the error case.
//   - Parse MUST NOT panic for any input.
//
// # Usage
//
// Parse is suitable for parsing configuration values, environment
// variables, CLI flags, and other human-authored or external inputs. For
// hard-coded values that are expected to be valid, callers MAY prefer
// MustParse for brevity.
//
// Example:
//
//	v, err := Parse("cow")
//	if err != nil {
//	    // handle invalid configuration
//	}
//
//	_ = v // COW
func Parse(s string) (Variant, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Auto, fmt.Errorf("store: empty variant")
	}

	switch strings.ToUpper(trimmed) {
	case "AUTO":
		return Auto, nil
	case "COW":
		return COW, nil
	case "INPLACE":
		return InPlace, nil
	default:
		return Auto, fmt.Errorf("store: unknown variant %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
//
// # Overview
//
// MustParse is a convenience helper for contexts where the input string
// is expected to be a valid Variant token and encountering an invalid
// value is considered a programmer error rather than a recoverable
// condition, typically in package-level defaults and tests.
//
// # Contract
//
//   - MustParse MUST behave exactly like Parse for valid inputs.
//   - MustParse MUST panic with a descriptive error for invalid inputs.
//   - Production code parsing external input SHOULD use Parse instead.
func MustParse(s string) Variant {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MarshalText encodes Variant as text.
//
// # Overview
//
// MarshalText implements encoding.TextMarshaler for Variant. It converts
// a Variant value into its canonical textual representation, suitable for
// textual encodings such as encoding/json (via ",string" struct tags or
// custom handling), encoding/xml, YAML configuration files, and
// human-readable dumps.
//
// For all defined Variant values, MarshalText returns the same tokens as
// Variant.String() ("Auto", "COW", "InPlace").
//
// # Contract
//
//   - On success, MarshalText returns a non-nil byte slice and a nil
//     error.
//   - For unknown or out-of-range Variant values, MarshalText returns a
//     non-nil error and MUST NOT silently serialize an "Unknown(...)"
//     form; this avoids persisting potentially invalid states.
//   - MarshalText MUST NOT panic for any Variant value.
func (v Variant) MarshalText() ([]byte, error) {
	switch v {
	case Auto, COW, InPlace:
		return []byte(v.String()), nil
	default:
		return nil, fmt.Errorf("store: cannot marshal unknown variant %d", v)
	}
}

// UnmarshalText decodes a Variant from its textual representation.
//
// # Overview
//
// UnmarshalText implements encoding.TextUnmarshaler for Variant. It
// accepts the same textual tokens as Parse, with case-insensitive
// matching and surrounding whitespace ignored. Any other value results
// in a non-nil error, and the target is left unchanged.
//
// # Contract
//
//   - On success, *v is set to the parsed value and a nil error is
//     returned.
//   - On failure, *v MUST NOT be modified and a non-nil error is
//     returned.
//   - UnmarshalText MUST NOT panic for any input.
//   - An empty text slice is treated as an error, not as Auto.
//
// # Usage
//
//	var v Variant
//	if err := v.UnmarshalText([]byte("inplace")); err != nil {
//	    // handle invalid input
//	}
//
//	_ = v // InPlace
func (v *Variant) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("store: empty variant")
	}

	value, err := Parse(trimmed)
	if err != nil {
		return err
	}

	*v = value
	return nil
}
