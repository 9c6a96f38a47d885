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

package adx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adx "dirpx.dev/adx"
	"dirpx.dev/adx/apis"
	"dirpx.dev/adx/axapi/scope"
	"dirpx.dev/adx/binder"
	"dirpx.dev/adx/config"
)

func TestComposition(t *testing.T) {
	b := adx.NewBinder()
	require.NoError(t, adx.Value(b, "answer", 5))
	require.NoError(t, adx.Transform(b, "answer", 1, func(x int) int { return x + 1 }))
	require.NoError(t, adx.Transform(b, "answer", 2, func(x int) int { return x * 10 }))

	r, err := adx.Build(t.Context(), b)
	require.NoError(t, err)

	got, err := adx.Get[int](r, "answer")
	require.NoError(t, err)
	assert.Equal(t, 60, got)
}

func TestComposition_UnqualifiedNamespace(t *testing.T) {
	// nil qualifiers land in the default "" namespace and pair up there.
	b := adx.NewBinder()
	require.NoError(t, adx.Value[int](b, nil, 5))
	require.NoError(t, adx.Transform(b, nil, 1, func(x int) int { return x + 1 }))
	require.NoError(t, adx.Transform(b, nil, 2, func(x int) int { return x * 10 }))

	r, err := adx.Build(t.Context(), b)
	require.NoError(t, err)

	got, err := adx.Get[int](r, nil)
	require.NoError(t, err)
	assert.Equal(t, 60, got)
}

func TestComposition_IdentityWithoutAdvice(t *testing.T) {
	b := adx.NewBinder()
	require.NoError(t, adx.Value(b, "plain", "hello"))

	r, err := adx.Build(t.Context(), b)
	require.NoError(t, err)

	got, err := adx.Get[string](r, "plain")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestComposition_NameIsolation(t *testing.T) {
	b := adx.NewBinder()
	require.NoError(t, adx.Value(b, "a", 1))
	require.NoError(t, adx.Value(b, "b", 1))
	require.NoError(t, adx.Transform(b, "a", 1, func(x int) int { return x + 100 }))
	require.NoError(t, adx.Transform(b, "b", 1, func(x int) int { return x + 200 }))

	r, err := adx.Build(t.Context(), b)
	require.NoError(t, err)

	a, err := adx.Get[int](r, "a")
	require.NoError(t, err)
	assert.Equal(t, 101, a)

	bv, err := adx.Get[int](r, "b")
	require.NoError(t, err)
	assert.Equal(t, 201, bv)
}

func TestComposition_TypeIsolation(t *testing.T) {
	// Same logical name, different value types: chains never cross.
	b := adx.NewBinder()
	require.NoError(t, adx.Value(b, "shared", 5))
	require.NoError(t, adx.Value(b, "shared", "five"))
	require.NoError(t, adx.Transform(b, "shared", 1, func(x int) int { return x * 2 }))
	require.NoError(t, adx.Transform(b, "shared", 1, func(s string) string { return s + "!" }))

	r, err := adx.Build(t.Context(), b)
	require.NoError(t, err)

	n, err := adx.Get[int](r, "shared")
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	s, err := adx.Get[string](r, "shared")
	require.NoError(t, err)
	assert.Equal(t, "five!", s)
}

func TestComposition_EqualOrderIsDeterministic(t *testing.T) {
	// Rebuild the same declarations repeatedly; equal orders must resolve
	// by declaration sequence every time.
	for range 10 {
		b := adx.NewBinder()
		require.NoError(t, adx.Value(b, "answer", 5))
		require.NoError(t, adx.Transform(b, "answer", 1, func(x int) int { return x + 1 }))
		require.NoError(t, adx.Transform(b, "answer", 1, func(x int) int { return x * 10 }))

		r, err := adx.Build(t.Context(), b)
		require.NoError(t, err)

		got, err := adx.Get[int](r, "answer")
		require.NoError(t, err)
		require.Equal(t, 60, got)
	}
}

func TestComposition_DuplicateSourcesDoNotConflict(t *testing.T) {
	b := adx.NewBinder()
	require.NoError(t, adx.Value(b, "dup", 1))
	require.NoError(t, adx.Value(b, "dup", 2))

	r, err := adx.Build(t.Context(), b)
	require.NoError(t, err)

	// The first declaration owns the public key.
	got, err := adx.Get[int](r, "dup")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestComposition_LazyAdviceResolvesDependencies(t *testing.T) {
	b := adx.NewBinder()
	require.NoError(t, adx.Value(b, "suffix", "!"))
	require.NoError(t, adx.Value(b, "greeting", "hello"))
	require.NoError(t, adx.Advice(b, "greeting", 1, func(r apis.Resolver) (func(string) string, error) {
		suffix, err := adx.Get[string](r, "suffix")
		if err != nil {
			return nil, err
		}
		return func(s string) string { return s + suffix }, nil
	}))

	r, err := adx.Build(t.Context(), b)
	require.NoError(t, err)

	got, err := adx.Get[string](r, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello!", got)
}

func TestComposition_SingletonScope(t *testing.T) {
	calls := 0
	b := adx.NewBinder()
	require.NoError(t, adx.Source(b, "conn", func(apis.Resolver) (*int, error) {
		calls++
		v := new(int)
		return v, nil
	}, binder.WithScope(scope.Singleton)))

	r, err := adx.Build(t.Context(), b)
	require.NoError(t, err)

	first, err := adx.Get[*int](r, "conn")
	require.NoError(t, err)
	second, err := adx.Get[*int](r, "conn")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestComposition_TransientScope(t *testing.T) {
	calls := 0
	b := adx.NewBinder()
	require.NoError(t, adx.Source(b, "fresh", func(apis.Resolver) (int, error) {
		calls++
		return calls, nil
	}))
	require.NoError(t, adx.Transform(b, "fresh", 1, func(x int) int { return x * 10 }))

	r, err := adx.Build(t.Context(), b)
	require.NoError(t, err)

	got, err := adx.Get[int](r, "fresh")
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	got, err = adx.Get[int](r, "fresh")
	require.NoError(t, err)
	assert.Equal(t, 20, got)
}

func TestGet_Unbound(t *testing.T) {
	b := adx.NewBinder()
	r, err := adx.Build(t.Context(), b)
	require.NoError(t, err)

	_, err = adx.Get[int](r, "nothing")
	require.Error(t, err)
}

func TestProvide_PlainBinding(t *testing.T) {
	b := adx.NewBinder()
	require.NoError(t, adx.Provide(b, "limit", func(apis.Resolver) (int, error) { return 128, nil }))
	// Advice never applies to plain bindings, even under the same name.
	require.NoError(t, adx.Transform(b, "limit", 1, func(x int) int { return x * 2 }))

	r, err := adx.Build(t.Context(), b)
	require.NoError(t, err)

	got, err := adx.Get[int](r, "limit")
	require.NoError(t, err)
	assert.Equal(t, 128, got)
}

func TestKeyFor(t *testing.T) {
	k := adx.KeyFor[int]("answer")
	assert.Equal(t, "answer", k.Name)
	assert.True(t, k.Element.IsZero())
}

func TestNewBinder_Options(t *testing.T) {
	b := adx.NewBinder(config.WithStrictEqualOrder(true))
	require.NoError(t, adx.Value(b, "answer", 5))
	require.NoError(t, adx.Transform(b, "answer", 1, func(x int) int { return x + 1 }))
	require.NoError(t, adx.Transform(b, "answer", 1, func(x int) int { return x * 10 }))

	_, err := adx.Build(t.Context(), b)
	require.Error(t, err)
}

func TestNilFuncs(t *testing.T) {
	b := adx.NewBinder()
	require.ErrorIs(t, adx.Source[int](b, "x", nil), binder.ErrNilProvider)
	require.ErrorIs(t, adx.Advice[int](b, "x", 1, nil), binder.ErrNilProvider)
	require.ErrorIs(t, adx.Transform[int](b, "x", 1, nil), binder.ErrNilProvider)
	require.ErrorIs(t, adx.Provide[int](b, "x", nil), binder.ErrNilProvider)
}
