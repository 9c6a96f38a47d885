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

package advice

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"dirpx.dev/adx/apis"
	uref "dirpx.dev/adx/utils/reflect"
)

var (
	// ErrNotInitialized is returned when Provide or Dependencies is called
	// before the one-time initialization pass has completed.
	ErrNotInitialized = errors.New("adx(advice): composed provider not initialized")
	// ErrEqualOrder indicates two matched advice with equal order values
	// under strict-equal-order configuration.
	ErrEqualOrder = errors.New("adx(advice): equal advice order values")
	// ErrAdviceMismatch indicates a resolved advice value that does not
	// implement its declared transform type.
	ErrAdviceMismatch = errors.New("adx(advice): advice value does not implement its transform type")
	// ErrSourceMismatch indicates a resolved source value that is not
	// assignable to the composed value type.
	ErrSourceMismatch = errors.New("adx(advice): source value is not assignable to the composed type")
)

// Composed is the provider installed under a source declaration's public
// key. At build time it matches and orders the advice declared under its
// logical name; at request time it resolves the source value and folds the
// ordered transforms over it.
//
// Initialization must complete before the first Provide call; the fold is
// then lock-free and safe for arbitrarily many concurrent callers.
type Composed struct {
	// valueType is T, the type of the composed value.
	valueType reflect.Type
	// transform is func(T) T, the key type of matching advice.
	transform reflect.Type
	// name is the logical name pairing this source with its advice.
	name string
	// sourceKey is the rewritten key the source body was bound under.
	sourceKey apis.Key

	// mu serializes initialization.
	mu sync.Mutex
	// ready flips once holders and deps are fully populated.
	ready atomic.Bool
	// holders is the ordered advice chain; immutable once ready.
	holders []Holder
	// deps is the accumulated dependency set; immutable once ready.
	deps []apis.Key
}

// NewComposed constructs the composed provider for a source of the given
// value type, logical name, and rewritten source key.
func NewComposed(valueType reflect.Type, name string, sourceKey apis.Key) (*Composed, error) {
	transform, err := uref.TransformOf(valueType)
	if err != nil {
		return nil, err
	}
	return &Composed{
		valueType: valueType,
		transform: transform,
		name:      name,
		sourceKey: sourceKey,
	}, nil
}

// Name returns the logical name this provider composes under.
func (p *Composed) Name() string {
	return p.name
}

// Initialize scans the registry for bindings carrying a synthetic element,
// keeps the advice matching this provider's logical name and transform
// type, and orders them. Source-role entries under the same name become
// dependency edges but are never composed.
//
// Initialize is idempotent: re-running it against the same registry
// produces the same ordered chain. It must complete (once) before Provide
// or Dependencies is exposed to callers.
func (p *Composed) Initialize(reg apis.Registry, cfg apis.Config) error {
	var (
		holders []Holder
		deps    []apis.Key
	)
	for _, b := range reg.Entries() {
		el := b.Key.Element
		if el.IsZero() || el.Name != p.name {
			continue
		}
		switch el.Role {
		case apis.RoleAdvice:
			if b.Key.Type != p.transform {
				// Advice for a different value type under the same name.
				continue
			}
			holders = append(holders, Holder{Binding: b, Order: b.Order, Seq: el.ID})
			deps = append(deps, b.Key)
		case apis.RoleSource:
			deps = append(deps, b.Key)
		}
	}

	sortHolders(holders)
	if cfg.StrictEqualOrder {
		for i := 1; i < len(holders); i++ {
			if holders[i].Order == holders[i-1].Order {
				return fmt.Errorf("%w: order %d declared by both %s and %s",
					ErrEqualOrder, holders[i].Order,
					holders[i-1].Binding.Key, holders[i].Binding.Key)
			}
		}
	}

	// Element ids are unique, so the dependency set has a total order too.
	slices.SortFunc(deps, func(a, b apis.Key) int {
		return cmp.Compare(a.Element.ID, b.Element.ID)
	})

	p.mu.Lock()
	p.holders = holders
	p.deps = deps
	p.mu.Unlock()
	p.ready.Store(true)
	return nil
}

// Provide resolves the source value and applies each ordered advice
// transform in turn. With no matching advice it degrades to an identity
// pass-through of the source value.
func (p *Composed) Provide(r apis.Resolver) (any, error) {
	if !p.ready.Load() {
		return nil, fmt.Errorf("%w: %s", ErrNotInitialized, p.sourceKey)
	}

	cur, err := r.Resolve(p.sourceKey)
	if err != nil {
		return nil, err
	}
	for _, h := range p.holders {
		fn, err := r.Resolve(h.Binding.Key)
		if err != nil {
			return nil, fmt.Errorf("adx(advice): resolving advice %s: %w", h.Binding.Key, err)
		}
		fv := reflect.ValueOf(fn)
		if !fv.IsValid() || !fv.Type().AssignableTo(p.transform) {
			return nil, fmt.Errorf("%w: %s", ErrAdviceMismatch, h.Binding.Key)
		}

		in := reflect.Zero(p.valueType)
		if cur != nil {
			cv := reflect.ValueOf(cur)
			if !cv.Type().AssignableTo(p.valueType) {
				return nil, fmt.Errorf("%w: got %T, want %s", ErrSourceMismatch, cur, p.valueType)
			}
			in = cv
		}
		cur = fv.Call([]reflect.Value{in})[0].Interface()
	}
	return cur, nil
}

// Dependencies returns the accumulated source and advice keys gathered
// during initialization, for static dependency-graph analysis. It returns
// nil before initialization.
func (p *Composed) Dependencies() []apis.Key {
	if !p.ready.Load() {
		return nil
	}
	out := make([]apis.Key, len(p.deps))
	copy(out, p.deps)
	return out
}

// Describe summarizes the provider for graph diagnostics.
func (p *Composed) Describe() string {
	desc := "advised " + p.valueType.String() + "[name=" + strconv.Quote(p.name) + "]"
	if p.ready.Load() {
		desc += " (" + strconv.Itoa(len(p.holders)) + " advice)"
	}
	return desc
}

// Interface compliance.
var (
	_ apis.Provider           = (*Composed)(nil)
	_ apis.Initializer        = (*Composed)(nil)
	_ apis.DependencyReporter = (*Composed)(nil)
)
