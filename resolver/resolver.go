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

package resolver

import (
	"errors"
	"fmt"
	"sync"

	"dirpx.dev/adx/apis"
	"dirpx.dev/adx/axapi/scope"
	"dirpx.dev/adx/config"
)

var (
	// ErrNotBound is returned when no binding exists for the requested key.
	ErrNotBound = errors.New("adx(resolver): no binding for key")
	// ErrDepthExceeded is returned when provider recursion exceeds the
	// configured MaxResolveDepth.
	ErrDepthExceeded = errors.New("adx(resolver): max resolve depth exceeded")
)

// New constructs an apis.Resolver over a sealed registry. The returned
// resolver is safe for concurrent use; singleton-scoped bindings are
// memoized for the resolver's lifetime.
func New(cfg apis.Config, reg apis.Registry) apis.Resolver {
	if cfg.MaxResolveDepth <= 0 {
		cfg.MaxResolveDepth = config.DefaultMaxResolveDepth
	}
	return &container{cfg: cfg, reg: reg}
}

// container resolves keys against the registry, applying each binding's
// scope. The registry is read-only by the time a container exists, so no
// locking is needed beyond the memoization map.
type container struct {
	// cfg is the configuration used for resolution.
	cfg apis.Config
	// reg is the sealed binding table.
	reg apis.Registry
	// memo caches singleton-scoped values. Concurrent first access may
	// compute a value twice; LoadOrStore converges on a single published
	// one.
	memo sync.Map // map[apis.Key]any
}

// Resolve produces the value bound under k.
func (c *container) Resolve(k apis.Key) (any, error) {
	return c.resolve(k, 0)
}

// resolve is the depth-tracked resolution path.
func (c *container) resolve(k apis.Key, depth int) (any, error) {
	if depth >= c.cfg.MaxResolveDepth {
		return nil, fmt.Errorf("%w (%d): %s", ErrDepthExceeded, c.cfg.MaxResolveDepth, k)
	}

	b, ok := c.reg.Lookup(k)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotBound, k)
	}

	if b.Scope == scope.Singleton {
		if v, hit := c.memo.Load(k); hit {
			return v, nil
		}
	}

	v, err := b.Provider.Provide(scoped{c: c, depth: depth + 1})
	if err != nil {
		return nil, err
	}

	if b.Scope == scope.Singleton {
		// Failed resolutions are never cached; successful ones converge.
		actual, _ := c.memo.LoadOrStore(k, v)
		return actual, nil
	}
	return v, nil
}

// scoped threads the resolution depth through nested Provide calls.
type scoped struct {
	c     *container
	depth int
}

// Resolve continues resolution at the carried depth.
func (s scoped) Resolve(k apis.Key) (any, error) {
	return s.c.resolve(k, s.depth)
}

// Interface compliance.
var (
	_ apis.Resolver = (*container)(nil)
	_ apis.Resolver = scoped{}
)
