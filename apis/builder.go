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

import "context"

// Builder composes Registry and Resolver from a Config in two phases:
// phase 1 produces the (mutable) registry the declaration surface binds
// into, phase 2 seals it into a resolver after running matcher
// initialization and dependency-graph analysis.
// Implementations may migrate state from previous instances, or ignore them.
type Builder interface {
	// BuildRegistry constructs a Registry for Config. May migrate bindings
	// from a previous registry. ext is an optional extension context; its
	// meaning is implementation-defined.
	BuildRegistry(cfg Config, prev Registry, ext any) Registry
	// BuildResolver runs the one-time initialization pass over reg
	// (matching, ordering, graph assembly) and constructs the request-time
	// Resolver. It fails on configuration errors such as dependency cycles.
	BuildResolver(ctx context.Context, cfg Config, reg Registry, ext any) (Resolver, error)
}
