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

// Labeler lets a state type choose the label shown for it in logs, metrics
// and hub listings instead of the derived "pkg.Type" form. The label
// describes the type, not the instance: it is read once from a zero value
// when the cell is created, so it must not depend on instance state.
//
// The embedding-facing contract lives in the nested dirpx.dev/stx/api
// module; the method sets match, so satisfying one satisfies the other.
type Labeler interface {
	// StoreLabel returns the stable diagnostic label for the state type.
	StoreLabel() string
}
