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

// Package livecfg is a generator fixture; it is loaded by tests, never built
// into the module.
package livecfg

// Settings is all value fields, so assignment already copies it.
type Settings struct {
	Count int64
	Label string
	rate  float64
}

// Tracker holds a live channel; no faithful duplicate of it exists.
type Tracker struct {
	Events chan string
}

// Limits bounds request admission.
type Limits struct {
	Burst int
}

// Gateway embeds Limits; the embedded struct is addressed as one whole
// field under its type name.
type Gateway struct {
	Limits
	Addr string
}

// Mode is not a struct and must be rejected.
type Mode int
