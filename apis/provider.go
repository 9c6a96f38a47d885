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

// Provider produces the value of a binding. Providers may resolve further
// bindings through the supplied Resolver; they must not retain it beyond the
// call.
type Provider interface {
	// Provide computes the bound value. It is invoked lazily at request
	// time, possibly concurrently from many goroutines.
	Provide(r Resolver) (any, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(r Resolver) (any, error)

// Provide calls f.
func (f ProviderFunc) Provide(r Resolver) (any, error) {
	return f(r)
}

// Initializer is implemented by providers that require a one-time
// preparation pass against the fully-populated registry before any Provide
// call is exposed to callers. The builder runs it during graph assembly.
type Initializer interface {
	// Initialize prepares the provider. It must be idempotent: re-running
	// it against the same registry yields the same internal state.
	Initialize(reg Registry, cfg Config) error
}

// DependencyReporter is implemented by providers whose value depends on
// other bindings. The builder uses the reported keys as dependency-graph
// edges for static analysis (cycle detection, ordering diagnostics).
//
// The reported set must be complete before graph assembly runs; for
// Initializer providers that means after Initialize has returned.
type DependencyReporter interface {
	// Dependencies returns the keys this provider depends on. The set may
	// include keys consulted during initialization but never resolved at
	// request time (for example, source declarations recorded for graph
	// correctness only).
	Dependencies() []Key
}
