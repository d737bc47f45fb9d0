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

package apis

// Config carries construction-time knobs for cells and hubs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Logger receives lifecycle diagnostics. A nil Logger disables logging
	// entirely (the default for a leaf library).
	Logger Logger

	// Copier, when non-nil, replaces the reflective stage of the
	// duplication chain for whole-state clones (copy-on-write commits and
	// Clone). Field-level Select does not use it, since a state copier
	// cannot duplicate lone field values. The value passed in and returned
	// is always of the cell's state type.
	Copier Copier
}

// Configured is implemented by components that expose their effective
// configuration after construction.
type Configured interface {
	Config() Config
}
