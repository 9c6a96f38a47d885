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

import "dirpx.dev/adx/axapi/scope"

// Config carries read-only composition knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// DefaultScope applies to bindings declared without an explicit scope.
	DefaultScope scope.Scope

	// StrictEqualOrder rejects two matched advice with equal order values
	// at build time instead of tie-breaking by declaration sequence.
	StrictEqualOrder bool

	// MaxResolveDepth limits provider recursion at request time.
	// Acts as a safety guard against pathological chains.
	MaxResolveDepth int
}
