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

package hub

import "dirpx.dev/stx/apis"

// Builder is a pluggable factory for hubs. The root package calls it
// whenever the process-wide hub has to be (re)built; embedding binaries
// install their own via SetBuilder to customize construction.
type Builder interface {
	// BuildHub returns the hub to publish for cfg. prev is the hub being
	// replaced (nil on first build); implementations may inspect it to
	// carry state across the swap.
	BuildHub(cfg apis.Config, prev *Hub) *Hub
}
