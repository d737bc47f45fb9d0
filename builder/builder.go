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

package builder

import (
	"dirpx.dev/stx/apis"
	"dirpx.dev/stx/hub"
)

// New creates and returns the default hub.Builder.
func New() hub.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildHub constructs a fresh hub for cfg. Cells are bound to their type
// parameters at request time, so a rebuilt hub always starts empty; prev
// is left to custom builders that want to carry state across a swap.
func (b *builder) BuildHub(cfg apis.Config, _ *hub.Hub) *hub.Hub {
	return hub.New(cfg)
}
