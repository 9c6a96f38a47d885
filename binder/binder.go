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

package binder

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/adx/advice"
	"dirpx.dev/adx/apis"
	"dirpx.dev/adx/axapi/scope"
	"dirpx.dev/adx/element"
	"dirpx.dev/adx/registry"
	uref "dirpx.dev/adx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("adx(binder): nil reflect.Type provided")
	// ErrNilProvider is returned when a nil provider is provided.
	ErrNilProvider = errors.New("adx(binder): nil provider provided")
	// ErrNotUnaryTransform is returned when an advice declaration's type
	// is not a unary transform func(T) T. It is surfaced eagerly, before
	// any binding is installed.
	ErrNotUnaryTransform = errors.New("adx(binder): advice type is not a unary transform func(T) T")
)

// Option adjusts a single declaration.
type Option func(*options)

type options struct {
	scope    scope.Scope
	scopeSet bool
}

// WithScope overrides the configured default scope for one declaration.
func WithScope(s scope.Scope) Option {
	return func(o *options) {
		o.scope = s
		o.scopeSet = true
	}
}

// Binder is the declaration surface: it rewrites each source/advice
// registration key to carry a freshly minted synthetic element and installs
// the composed provider under the source's public key. It owns the identity
// allocator, so independent binders never share element ids.
type Binder struct {
	cfg   apis.Config
	reg   apis.Registry
	alloc *element.Allocator
}

// New constructs a Binder over the given registry.
func New(cfg apis.Config, reg apis.Registry) *Binder {
	return &Binder{cfg: cfg, reg: reg, alloc: element.NewAllocator()}
}

// Config returns the configuration the binder was built with.
func (b *Binder) Config() apis.Config {
	return b.cfg
}

// Registry returns the registry the binder binds into.
func (b *Binder) Registry() apis.Registry {
	return b.reg
}

// RegisterSource declares the producer of the base value of type t under
// the qualifier's logical name. The body is bound at a rewritten key
// carrying a SOURCE element, and a composed provider is installed under
// the public key (first installer wins when two sources collide). The
// rewritten key is returned so callers can address the raw, un-advised
// source directly.
func (b *Binder) RegisterSource(t reflect.Type, qualifier any, p apis.Provider, opts ...Option) (apis.Key, error) {
	if t == nil {
		return apis.Key{}, ErrNilType
	}
	if p == nil {
		return apis.Key{}, ErrNilProvider
	}

	name := element.NameOf(qualifier)
	rewritten := apis.Key{Type: t, Name: name, Element: b.alloc.Source(name)}
	sc := b.scopeFor(opts)

	if err := b.reg.Bind(apis.Binding{Key: rewritten, Provider: p, Scope: sc}); err != nil {
		return apis.Key{}, err
	}

	public := rewritten.Public()
	if _, bound := b.reg.Lookup(public); !bound {
		comp, err := advice.NewComposed(t, name, rewritten)
		if err != nil {
			return apis.Key{}, err
		}
		err = b.reg.Bind(apis.Binding{Key: public, Provider: comp, Scope: sc})
		// A concurrent declaration may have claimed the public key between
		// the lookup and the bind; the first installer wins either way.
		if err != nil && !errors.Is(err, registry.ErrDuplicateBinding) {
			return apis.Key{}, err
		}
	}
	return rewritten, nil
}

// RegisterAdvice declares a unary transform applied to the source sharing
// the qualifier's logical name. ft is the declared transform type and must
// be func(T) T for some T; anything else fails eagerly with
// ErrNotUnaryTransform. The explicit order wins over a qualifier-supplied
// one (see element.OrderOf). No composed provider is installed: advice
// bindings are pure producers waiting to be discovered at build time.
func (b *Binder) RegisterAdvice(ft reflect.Type, qualifier any, order int, p apis.Provider, opts ...Option) (apis.Key, error) {
	if ft == nil {
		return apis.Key{}, ErrNilType
	}
	if p == nil {
		return apis.Key{}, ErrNilProvider
	}
	if _, err := uref.TransformElem(ft); err != nil {
		return apis.Key{}, fmt.Errorf("%w: got %s", ErrNotUnaryTransform, ft)
	}

	name := element.NameOf(qualifier)
	rewritten := apis.Key{Type: ft, Name: name, Element: b.alloc.Advice(name)}
	binding := apis.Binding{
		Key:      rewritten,
		Provider: p,
		Order:    element.OrderOf(qualifier, order),
		Scope:    b.scopeFor(opts),
	}
	if err := b.reg.Bind(binding); err != nil {
		return apis.Key{}, err
	}
	return rewritten, nil
}

// Register declares a plain binding under its public key, unchanged. It
// takes no part in composition.
func (b *Binder) Register(t reflect.Type, qualifier any, p apis.Provider, opts ...Option) (apis.Key, error) {
	if t == nil {
		return apis.Key{}, ErrNilType
	}
	if p == nil {
		return apis.Key{}, ErrNilProvider
	}

	key := apis.Key{Type: t, Name: element.NameOf(qualifier)}
	if err := b.reg.Bind(apis.Binding{Key: key, Provider: p, Scope: b.scopeFor(opts)}); err != nil {
		return apis.Key{}, err
	}
	return key, nil
}

// scopeFor applies declaration options over the configured default scope.
func (b *Binder) scopeFor(opts []Option) scope.Scope {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scopeSet {
		return o.scope
	}
	return b.cfg.DefaultScope
}
