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

// Package adx provides advice composition for dependency-injection
// containers: a consumer declares a "source" value and any number of named
// "advice" transforms, and the resolved instance is guaranteed to be the
// source value passed through every matching transform in a deterministic
// order.
//
// # Design
//
// The core of adx is a two-phase build over a binding registry:
//
//   - Declaration phase. A Binder accepts source, advice, and plain
//     declarations. For each source/advice declaration it mints a synthetic
//     element descriptor (logical name, role, unique id) and rewrites
//     the registration key to carry it. The unique id makes two
//     declarations of the same type impossible to collide; the logical
//     name (derived by stringifying the declaration's qualifier) is what
//     pairs a source with its advice. For sources, a composed provider is
//     additionally installed under the original, public key, which is the
//     only key consumers ever see.
//
//   - Build phase. The Builder runs every composed provider's one-time
//     initialization: the registry is scanned for element-carrying keys,
//     advice matching the provider's name and transform type func(T) T is
//     collected, and the resulting chain is sorted ascending by order value
//     with ties broken by declaration sequence, so it is total and
//     reproducible.
//     The builder then assembles the static dependency graph from every
//     provider's reported dependencies, rejecting cycles and dangling
//     edges, and only then hands out a Resolver. No caller can ever observe
//     a partially-initialized chain.
//
// At request time, resolving a public key reaches the composed provider,
// which lazily resolves the rewritten source key and folds the ordered
// transforms over the value. With no matching advice the fold degrades to
// an identity pass-through. After the build phase the chain is immutable,
// so resolution is lock-free and safe for arbitrarily many concurrent
// callers; per-binding scoping (transient or container-singleton) is the
// only caching applied.
//
// # Usage
//
// The root package offers a type-safe facade over the reflect-typed core:
//
//	b := adx.NewBinder()
//
//	_ = adx.Value(b, nil, 5)
//	_ = adx.Transform(b, nil, 1, func(x int) int { return x + 1 })
//	_ = adx.Transform(b, nil, 2, func(x int) int { return x * 10 })
//
//	r, err := adx.Build(context.Background(), b)
//	if err != nil {
//	    // cycle, strict-order violation, or dangling dependency
//	}
//
//	v, _ := adx.Get[int](r, nil) // (5+1)*10 = 60
//
// Qualifiers scope declarations into independent logical names: a source
// declared with qualifier "metrics" is composed only with advice declared
// under "metrics", regardless of type compatibility elsewhere. Any value
// can serve as a qualifier; see element.NameOf for the derivation rules
// and axapi/common.Qualifier for the explicit contract.
//
// # Packages
//
//   - apis — pure interfaces and key types shared by all components.
//   - axapi — extended, doc-heavy contracts for qualifiers and scopes.
//   - element — identity allocation and qualifier stringification.
//   - registry — the binding table.
//   - binder — the declaration surface and key rewriter.
//   - advice — matching, ordering, and the composed provider.
//   - builder — the two-phase build and dependency-graph analysis.
//   - resolver — request-time resolution with scope memoization.
package adx
