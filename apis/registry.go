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

// Registry is the binding table: a key -> provider mapping populated during
// the declaration phase and read-only afterwards.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// Bind installs a binding. Re-binding an existing key is an error.
	Bind(b Binding) error
	// Lookup returns the binding for the key, if present.
	Lookup(k Key) (Binding, bool)
	// Entries returns a snapshot of all bindings (order is unspecified).
	Entries() []Binding
	// Count returns the number of installed bindings.
	Count() int
	// Reset clears all bindings.
	Reset()
}

// Binding is a single key -> provider registration.
type Binding struct {
	// Key is the registration key, possibly carrying a synthetic element.
	Key Key
	// Provider produces the bound value.
	Provider Provider
	// Order is the declared application order. Meaningful only for
	// bindings whose key carries a RoleAdvice element.
	Order int
	// Scope controls request-time memoization of the produced value.
	Scope scope.Scope
}
