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

package builder_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/adx/apis"
	"dirpx.dev/adx/binder"
	"dirpx.dev/adx/builder"
	"dirpx.dev/adx/config"
	"dirpx.dev/adx/registry"
)

func constProvider(v any) apis.Provider {
	return apis.ProviderFunc(func(apis.Resolver) (any, error) { return v, nil })
}

// reportingProvider is a provider with a fixed dependency report, used to
// drive the graph-validation paths directly.
type reportingProvider struct {
	v    any
	deps []apis.Key
}

func (p *reportingProvider) Provide(apis.Resolver) (any, error) { return p.v, nil }
func (p *reportingProvider) Dependencies() []apis.Key           { return p.deps }

var _ apis.DependencyReporter = (*reportingProvider)(nil)

func TestBuildRegistry(t *testing.T) {
	cfg := config.DefaultConfig()
	b := builder.New()

	reg := b.BuildRegistry(cfg, nil, nil)
	require.NotNil(t, reg)
	assert.Zero(t, reg.Count())
}

func TestBuildRegistry_MigratesPrevious(t *testing.T) {
	cfg := config.DefaultConfig()
	prev := registry.New(cfg)
	k := apis.Key{Type: reflect.TypeFor[int](), Name: "carried"}
	require.NoError(t, prev.Bind(apis.Binding{Key: k, Provider: constProvider(1)}))

	reg := builder.New().BuildRegistry(cfg, prev, nil)
	require.Equal(t, 1, reg.Count())
	_, ok := reg.Lookup(k)
	assert.True(t, ok, "binding %s must survive migration", k)
}

func TestBuildResolver_EndToEnd(t *testing.T) {
	cfg := config.DefaultConfig()
	bn := binder.New(cfg, registry.New(cfg))

	src, err := bn.RegisterSource(reflect.TypeFor[int](), "answer", constProvider(5))
	require.NoError(t, err)
	ft := reflect.TypeFor[func(int) int]()
	_, err = bn.RegisterAdvice(ft, "answer", 1, constProvider(func(x int) int { return x + 1 }))
	require.NoError(t, err)
	_, err = bn.RegisterAdvice(ft, "answer", 2, constProvider(func(x int) int { return x * 10 }))
	require.NoError(t, err)

	r, err := builder.New().BuildResolver(t.Context(), cfg, bn.Registry(), nil)
	require.NoError(t, err)

	v, err := r.Resolve(src.Public())
	require.NoError(t, err)
	assert.Equal(t, 60, v)

	// The raw source stays reachable under its rewritten key.
	v, err = r.Resolve(src)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestBuildResolver_InitializesComposedProviders(t *testing.T) {
	cfg := config.DefaultConfig()
	bn := binder.New(cfg, registry.New(cfg))

	src, err := bn.RegisterSource(reflect.TypeFor[string](), "greeting", constProvider("hi"))
	require.NoError(t, err)

	r, err := builder.New().BuildResolver(t.Context(), cfg, bn.Registry(), nil)
	require.NoError(t, err)

	// Without advice the composed provider passes the source through; it
	// only does so once initialized.
	v, err := r.Resolve(src.Public())
	require.NoError(t, err)
	assert.Equal(t, "hi", v)
}

func TestBuildResolver_UnknownDependency(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	k := apis.Key{Type: reflect.TypeFor[int](), Name: "orphan"}
	missing := apis.Key{Type: reflect.TypeFor[int](), Name: "ghost"}
	require.NoError(t, reg.Bind(apis.Binding{
		Key:      k,
		Provider: &reportingProvider{v: 1, deps: []apis.Key{missing}},
	}))

	_, err := builder.New().BuildResolver(t.Context(), cfg, reg, nil)
	require.ErrorIs(t, err, builder.ErrUnknownDependency)
}

func TestBuildResolver_RejectsCycles(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	ka := apis.Key{Type: reflect.TypeFor[int](), Name: "a"}
	kb := apis.Key{Type: reflect.TypeFor[int](), Name: "b"}
	require.NoError(t, reg.Bind(apis.Binding{
		Key:      ka,
		Provider: &reportingProvider{v: 1, deps: []apis.Key{kb}},
	}))
	require.NoError(t, reg.Bind(apis.Binding{
		Key:      kb,
		Provider: &reportingProvider{v: 2, deps: []apis.Key{ka}},
	}))

	_, err := builder.New().BuildResolver(t.Context(), cfg, reg, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "adding edge")
}

func TestBuildResolver_StrictEqualOrderSurfacesError(t *testing.T) {
	cfg := config.NewConfig(config.WithStrictEqualOrder(true))
	bn := binder.New(cfg, registry.New(cfg))

	_, err := bn.RegisterSource(reflect.TypeFor[int](), "answer", constProvider(5))
	require.NoError(t, err)
	ft := reflect.TypeFor[func(int) int]()
	_, err = bn.RegisterAdvice(ft, "answer", 1, constProvider(func(x int) int { return x + 1 }))
	require.NoError(t, err)
	_, err = bn.RegisterAdvice(ft, "answer", 1, constProvider(func(x int) int { return x * 10 }))
	require.NoError(t, err)

	_, err = builder.New().BuildResolver(t.Context(), cfg, bn.Registry(), nil)
	require.Error(t, err)
}

// Compliance check.
var _ apis.Builder = builder.New()
