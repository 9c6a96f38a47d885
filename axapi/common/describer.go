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

// Describer augments a provider with human-oriented metadata.
//
// # Overview
//
// Describer is an optional contract for providers that want to surface
// context beyond their binding key. While the key identifies *what* is
// bound, Describe provides a short human-readable account of *how* the
// value is produced, which is useful for:
//
//   - Dependency-graph dumps and build diagnostics.
//   - Debugging and introspection tools.
//   - Administrative and developer-facing UIs.
//
// The build phase attaches the description to the provider's vertex in the
// dependency graph, so graph renderings carry it alongside the key.
//
// Describe is provider-level: it describes the construction recipe, not any
// particular produced instance. Implementations SHOULD return values that
// are stable for a given configuration and do not depend on mutable runtime
// state.
//
// # Usage
//
//	type composed struct{ ... }
//
//	func (p *composed) Describe() string {
//	    return "advised int (2 advice)"
//	}
//
// # Contract
//
//   - Describe MUST be safe for concurrent use by multiple goroutines.
//   - Describe SHOULD be inexpensive and ideally allocation-free (for
//     example, returning a literal or precomputed value).
//   - Describe MUST NOT perform blocking operations or I/O.
//   - Returned values SHOULD be deterministic for a given configuration;
//     changes SHOULD correspond to deliberate configuration changes rather
//     than transient runtime conditions.
type Describer interface {
	// Describe returns a concise, human-readable summary of the provider.
	Describe() string
}
