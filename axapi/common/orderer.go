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

// Orderer extends Qualifier with an intrinsic advice application order.
//
// # Overview
//
// Orderer is an extended qualifier contract that combines:
//
//   - A logical name (via Qualifier.QualifierString), and
//   - A default application order (via AdviceOrder).
//
// This is useful when a qualifier type models a well-known decoration layer
// whose position in the chain is a property of the layer itself rather than
// of each declaration site. Declaring the advice then needs no repeated
// order literal at every call site.
//
// The name and the order are conceptually orthogonal:
//
//   - QualifierString decides *which* sources the advice applies to.
//   - AdviceOrder decides *where* in the matched chain it runs.
//
// # Usage
//
// A typical pattern is a layer enum implementing both methods:
//
//	type Layer string
//
//	func (l Layer) QualifierString() string { return string(l) }
//	func (l Layer) AdviceOrder() int {
//	    switch l {
//	    case "validation":
//	        return 10
//	    case "caching":
//	        return 20
//	    }
//	    return 0
//	}
//
// The declaration surface consults AdviceOrder only when no explicit order
// was supplied (an explicit non-zero order always wins), so call sites MAY
// still override the intrinsic position.
type Orderer interface {
	Qualifier

	// AdviceOrder returns the default application order for advice
	// declared under this qualifier. Lower values run earlier.
	//
	// # Contract
	//
	//   - AdviceOrder MUST be deterministic for a given qualifier value
	//     over its lifetime (no spontaneous changes).
	//   - AdviceOrder MUST be safe for concurrent calls from multiple
	//     goroutines.
	//   - AdviceOrder MUST NOT perform blocking operations or I/O.
	//   - AdviceOrder SHOULD be reasonably cheap to compute; if derived
	//     from expensive state, it SHOULD be precomputed.
	AdviceOrder() int
}
