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

// Qualifier identifies a declaration's logical name by a stable, canonical
// string.
//
// # Overview
//
// Qualifier is the primary fast-path for deriving the logical name that
// pairs a source declaration with its advice set. When a qualifier value
// implements Qualifier, the name-derivation logic MUST prefer this
// interface and MUST NOT attempt any additional stringification strategies
// (such as fmt.Stringer or reflective formatting) for that value.
//
// Semantically, Qualifier is a value-level contract: QualifierString
// describes the logical namespace the declaration participates in, not any
// particular produced instance. Two declarations match if and only if their
// derived names are equal, so the returned string is the matching key of
// the whole composition system.
//
// # Performance
//
// Implementations are intended to be extremely cheap:
//
//   - SHOULD be constant-time and amortized O(1).
//   - SHOULD avoid heap allocations on the hot path.
//   - MUST NOT perform blocking operations or I/O.
//   - MUST be safe to call from multiple goroutines concurrently.
//
// # Usage
//
// Typical usage is a small domain-specific qualifier type shared by a
// source and its advice:
//
//	type Database struct{ Cluster string }
//
//	func (q Database) QualifierString() string {
//	    return "db." + q.Cluster
//	}
//
// A source declared with Database{Cluster: "primary"} is then advised only
// by advice declared with a qualifier whose QualifierString is
// "db.primary".
//
// # Naming guidelines
//
// The returned name is expected to be:
//
//   - Stable across program executions (MUST).
//   - Deterministic for a given qualifier value (MUST).
//   - Short and human-readable (SHOULD; <64 characters RECOMMENDED).
//   - Expressed in a conventional format, such as lowercase,
//     dot-separated segments (MAY, but strongly RECOMMENDED).
//
// The empty string is a valid name: it is the default namespace shared by
// all unqualified declarations.
type Qualifier interface {
	// QualifierString returns the canonical logical name for this
	// qualifier value.
	//
	// # Contract
	//
	//   - The returned name MUST be deterministic for a given value.
	//   - The returned name MUST NOT depend on mutable state.
	//   - The implementation MUST be safe for concurrent calls from
	//     multiple goroutines.
	QualifierString() string
}
