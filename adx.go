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

package adx

import (
	"context"
	"fmt"
	"reflect"

	"dirpx.dev/adx/apis"
	"dirpx.dev/adx/binder"
	"dirpx.dev/adx/builder"
	"dirpx.dev/adx/config"
	"dirpx.dev/adx/element"
)

// NewBinder constructs a declaration surface backed by a fresh registry.
// Each binder owns its own identity allocator, so independent containers
// in the same process never share element ids.
func NewBinder(opts ...config.Option) *binder.Binder {
	cfg := config.NewConfig(opts...)
	return binder.New(cfg, builder.New().BuildRegistry(cfg, nil, nil))
}

// Source declares the producer of the base value of type T under the
// qualifier's logical name. Advice declared under the same name is folded
// over the produced value on every resolution of the public key.
func Source[T any](b *binder.Binder, qualifier any, fn func(apis.Resolver) (T, error), opts ...binder.Option) error {
	if fn == nil {
		return binder.ErrNilProvider
	}
	p := apis.ProviderFunc(func(r apis.Resolver) (any, error) { return fn(r) })
	_, err := b.RegisterSource(reflect.TypeFor[T](), qualifier, p, opts...)
	return err
}

// Value declares a constant source.
func Value[T any](b *binder.Binder, qualifier any, v T, opts ...binder.Option) error {
	return Source(b, qualifier, func(apis.Resolver) (T, error) { return v, nil }, opts...)
}

// Advice declares a lazily-resolved unary transform func(T) T applied to
// the source sharing the qualifier's logical name. Lower orders run
// earlier; ties resolve by declaration sequence.
func Advice[T any](b *binder.Binder, qualifier any, order int, fn func(apis.Resolver) (func(T) T, error), opts ...binder.Option) error {
	if fn == nil {
		return binder.ErrNilProvider
	}
	p := apis.ProviderFunc(func(r apis.Resolver) (any, error) { return fn(r) })
	_, err := b.RegisterAdvice(reflect.TypeFor[func(T) T](), qualifier, order, p, opts...)
	return err
}

// Transform declares a constant advice transform.
func Transform[T any](b *binder.Binder, qualifier any, order int, fn func(T) T, opts ...binder.Option) error {
	if fn == nil {
		return binder.ErrNilProvider
	}
	return Advice(b, qualifier, order, func(apis.Resolver) (func(T) T, error) { return fn, nil }, opts...)
}

// Provide declares a plain binding that takes no part in composition.
func Provide[T any](b *binder.Binder, qualifier any, fn func(apis.Resolver) (T, error), opts ...binder.Option) error {
	if fn == nil {
		return binder.ErrNilProvider
	}
	p := apis.ProviderFunc(func(r apis.Resolver) (any, error) { return fn(r) })
	_, err := b.Register(reflect.TypeFor[T](), qualifier, p, opts...)
	return err
}

// Build seals the binder's declarations: advice is matched and ordered
// exactly once, the dependency graph is checked, and the request-time
// resolver is returned. The binder must not be used for further
// declarations afterwards.
func Build(ctx context.Context, b *binder.Binder) (apis.Resolver, error) {
	return builder.New().BuildResolver(ctx, b.Config(), b.Registry(), nil)
}

// KeyFor returns the public key a consumer resolves for type T under the
// qualifier's logical name.
func KeyFor[T any](qualifier any) apis.Key {
	return apis.Key{Type: reflect.TypeFor[T](), Name: element.NameOf(qualifier)}
}

// Get resolves the composed value of type T declared under the qualifier.
func Get[T any](r apis.Resolver, qualifier any) (T, error) {
	var zero T
	v, err := r.Resolve(KeyFor[T](qualifier))
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("adx: bound value is %T, not %s", v, reflect.TypeFor[T]())
	}
	return t, nil
}
