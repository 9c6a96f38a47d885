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

package scope

import (
	"fmt"
	"strings"
)

// Scope controls the request-time caching policy of a binding's value.
//
// # Overview
//
// Scope is a small enumerated type that describes whether the container may
// reuse a value produced by a provider across requests. The resolver uses
// this value to decide between invoking the provider on every lookup and
// memoizing the first result for the lifetime of the container.
//
// Scope is intentionally minimal and container-agnostic: it does not define
// lifecycle callbacks, eviction, or per-request sessions, but instead
// selects a broad class of behavior (fresh value vs. container-cached
// value). Composition itself is scope-transparent: the advice chain is
// folded over whatever value the source scope yields.
//
// # Values
//
// The following scopes are defined:
//
//   - Transient — a fresh value on every resolution.
//   - Singleton — one value per container, computed on first resolution.
//
// # Contract
//
//   - Resolver implementations MUST treat Scope as a stable, public API;
//     adding new values is allowed, but existing values MUST NOT change
//     their semantics in breaking ways.
//   - Scope values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
//   - Scope SHOULD be chosen at declaration time and not mutated afterwards.
type Scope int

const (
	// Transient invokes the provider on every resolution.
	//
	// # Semantics
	//
	// Under Transient, no caching is applied: each Resolve call reaches the
	// bound provider, and each caller observes an independently produced
	// value. Providers bound transiently MUST therefore be safe to invoke
	// concurrently.
	//
	// Recommended usage:
	//
	//   - Values that are cheap to produce.
	//   - Values that must reflect per-request state captured by the
	//     provider itself.
	Transient Scope = iota

	// Singleton memoizes the first resolved value for the container's
	// lifetime.
	//
	// # Semantics
	//
	// Under Singleton, the resolver caches the value produced by the first
	// successful resolution and returns it for all subsequent lookups of the
	// same key. Failed resolutions are not cached. Implementations MAY
	// compute the value more than once under concurrent first access, but
	// MUST converge on a single published value.
	//
	// Recommended usage:
	//
	//   - Expensive-to-construct values (clients, pools, parsed artifacts).
	//   - Values whose identity matters to consumers.
	Singleton
)

// String returns a human-readable representation of the Scope value.
//
// For all defined enum values, the returned strings are:
//
//   - Transient -> "Transient"
//   - Singleton -> "Singleton"
//
// For unknown or out-of-range values, String returns a diagnostic form
// "Unknown(<n>)". This behavior is intentional and MUST NOT panic, so that
// corrupted values can still be surfaced safely in logs and diagnostics.
//
// The mapping from known Scope values to strings MUST remain stable;
// changing the spelling or casing is a breaking change for systems that
// persist or parse these strings.
func (s Scope) String() string {
	switch s {
	case Transient:
		return "Transient"
	case Singleton:
		return "Singleton"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Parse parses a textual representation of a Scope.
//
// It accepts the same canonical tokens that are produced by Scope.String()
// for known values, with case-insensitive matching. Surrounding whitespace
// is trimmed. Any other input results in a non-nil error; in the error case
// callers MUST NOT rely on the returned Scope value. Parse MUST NOT panic
// for any input.
//
// Parse is suitable for configuration values, environment variables, and
// other human-authored inputs. For hard-coded values that are expected to
// be valid, callers MAY prefer MustParse for brevity.
func Parse(s string) (Scope, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Transient, fmt.Errorf("scope: empty scope")
	}

	switch strings.ToUpper(trimmed) {
	case "TRANSIENT":
		return Transient, nil
	case "SINGLETON":
		return Singleton, nil
	default:
		return Transient, fmt.Errorf("scope: unknown scope %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
//
// It is intended for hard-coded configuration in Go code, tests, and
// initialization paths where failing fast is acceptable. Callers MUST NOT
// use MustParse on untrusted or user-supplied data.
func MustParse(s string) Scope {
	scope, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return scope
}

// MarshalText encodes Scope as text, implementing encoding.TextMarshaler.
//
// For defined values it returns the same tokens as Scope.String(). For
// unknown values it returns a non-nil error and MUST NOT silently serialize
// an "Unknown(...)" form; this avoids persisting invalid states.
func (s Scope) MarshalText() ([]byte, error) {
	switch s {
	case Transient, Singleton:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("scope: cannot marshal unknown scope %d", s)
	}
}

// UnmarshalText decodes a Scope from its textual representation,
// implementing encoding.TextUnmarshaler. It accepts the same tokens as
// Parse, whitespace-trimmed and case-insensitive. On failure the target is
// left unchanged and a non-nil error is returned.
func (s *Scope) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("scope: empty scope")
	}

	value, err := Parse(trimmed)
	if err != nil {
		return err
	}

	*s = value
	return nil
}
