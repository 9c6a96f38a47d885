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

package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	slogcontext "github.com/veqryn/slog-context"
	"golang.org/x/sync/errgroup"
	"ocm.software/open-component-model/bindings/go/dag"

	"dirpx.dev/adx/apis"
	"dirpx.dev/adx/axapi/common"
	"dirpx.dev/adx/registry"
	"dirpx.dev/adx/resolver"
)

const (
	// AttributeRole is the graph-vertex attribute holding the key's
	// element role.
	AttributeRole = "adx/role"
	// AttributeDescription is the graph-vertex attribute holding the
	// provider's self-description, when it offers one.
	AttributeDescription = "adx/description"
)

// ErrUnknownDependency indicates a provider reporting a dependency on a
// key that is not bound in the registry.
var ErrUnknownDependency = errors.New("adx(builder): dependency on unbound key")

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided
// configuration and pre-existing registry. If a pre-existing registry is
// provided, its bindings are copied into the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = nreg.Bind(e)
		}
	}
	return nreg
}

// BuildResolver seals the registry into a request-time resolver. It runs
// the one-time initialization pass over every Initializer provider (advice
// matching and ordering), then assembles the static dependency graph and
// rejects cycles and dangling edges. Only after both passes succeed is a
// resolver handed out, which is what guarantees no caller ever observes a
// partially-initialized composition chain.
func (b *builder) BuildResolver(ctx context.Context, cfg apis.Config, reg apis.Registry, _ any) (apis.Resolver, error) {
	log := slogcontext.FromCtx(ctx).With(slog.String("realm", "adx"))
	entries := reg.Entries()

	eg, _ := errgroup.WithContext(ctx)
	for _, e := range entries {
		if init, ok := e.Provider.(apis.Initializer); ok {
			eg.Go(func() error {
				return init.Initialize(reg, cfg)
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	g := dag.NewDirectedAcyclicGraph[string]()
	for _, e := range entries {
		attrs := map[string]any{AttributeRole: e.Key.Element.Role.String()}
		if d, ok := e.Provider.(common.Describer); ok {
			attrs[AttributeDescription] = d.Describe()
		}
		if err := g.AddVertex(e.Key.String(), attrs); err != nil {
			return nil, fmt.Errorf("adx(builder): adding vertex %s: %w", e.Key, err)
		}
	}
	for _, e := range entries {
		rep, ok := e.Provider.(apis.DependencyReporter)
		if !ok {
			continue
		}
		for _, dep := range rep.Dependencies() {
			if !g.Contains(dep.String()) {
				return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownDependency, e.Key, dep)
			}
			if err := g.AddEdge(e.Key.String(), dep.String()); err != nil {
				return nil, fmt.Errorf("adx(builder): adding edge %s -> %s: %w", e.Key, dep, err)
			}
		}
	}

	// The sort cannot fail after AddEdge accepted every edge; it is kept
	// for the ordering diagnostic below.
	order, err := g.TopologicalSort()
	if err != nil {
		return nil, fmt.Errorf("adx(builder): %w", err)
	}
	log.DebugContext(ctx, "container graph sealed",
		slog.Int("bindings", len(entries)),
		slog.Int("vertices", len(order)),
	)

	return resolver.New(cfg, reg), nil
}
