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

package advice

import (
	"cmp"
	"slices"

	"dirpx.dev/adx/apis"
)

// Holder pairs a matched advice binding with its ordering metadata. Holders
// are created once during initialization and never mutated afterwards.
type Holder struct {
	// Binding is the matched advice registration.
	Binding apis.Binding
	// Order is the declared application order (lower runs earlier).
	Order int
	// Seq is the advice's declaration sequence (its element id), used as
	// the tie-break for equal orders.
	Seq uint64
}

// sortHolders orders holders ascending by order value; equal orders fall
// back to declaration sequence, which is unique, so the resulting order is
// total and reproducible.
func sortHolders(hs []Holder) {
	slices.SortStableFunc(hs, func(a, b Holder) int {
		if n := cmp.Compare(a.Order, b.Order); n != 0 {
			return n
		}
		return cmp.Compare(a.Seq, b.Seq)
	})
}
