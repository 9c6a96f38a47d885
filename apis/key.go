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

import (
	"reflect"
	"strconv"
	"strings"
)

// Role classifies the synthetic element attached to a rewritten key.
type Role uint8

const (
	// RoleNone marks a key that carries no synthetic element (a public key).
	RoleNone Role = iota
	// RoleSource marks the rewritten key of a source declaration.
	RoleSource
	// RoleAdvice marks the rewritten key of an advice declaration.
	RoleAdvice
)

// String returns the canonical upper-case name of the role.
func (r Role) String() string {
	switch r {
	case RoleSource:
		return "SOURCE"
	case RoleAdvice:
		return "ADVICE"
	default:
		return "NONE"
	}
}

// Descriptor is the synthetic identity minted for each source/advice
// declaration. It is embedded into the rewritten registration key so that
// two declarations producing the same type never collide, while the Name
// alone pairs a source with its advice set.
//
// Descriptor is a plain comparable value: identity is exactly
// (Name, Role, ID). The zero value means "no element".
type Descriptor struct {
	// Name is the logical name derived from the declaration's qualifier.
	Name string
	// Role tells whether the element was minted for a source or an advice.
	Role Role
	// ID is unique per allocator instance and strictly increases in
	// declaration order.
	ID uint64
}

// IsZero reports whether d carries no element.
func (d Descriptor) IsZero() bool {
	return d.Role == RoleNone
}

// String renders the descriptor for diagnostics.
func (d Descriptor) String() string {
	return "element(name=" + strconv.Quote(d.Name) +
		", role=" + d.Role.String() +
		", id=" + strconv.FormatUint(d.ID, 10) + ")"
}

// Key identifies a registration in the binding table: the declared Go type,
// the logical name derived from the qualifier, and an optional synthetic
// element for rewritten keys. Keys are comparable and used directly as map
// keys.
//
// Consumers only ever ask for public keys (zero Element); rewritten keys are
// an internal concern of the rewriter and the matcher.
type Key struct {
	// Type is the declared type of the binding. For advice declarations it
	// is the unary transform type func(T) T, not T itself.
	Type reflect.Type
	// Name is the logical name (empty for unqualified declarations).
	Name string
	// Element is the synthetic identity; zero for public keys.
	Element Descriptor
}

// String renders a stable, unique identifier for the key. It is used as the
// dependency-graph vertex id, so two distinct keys must never render equal.
func (k Key) String() string {
	var b strings.Builder
	if k.Type == nil {
		b.WriteString("<nil>")
	} else {
		b.WriteString(k.Type.String())
	}
	b.WriteString("[name=")
	b.WriteString(strconv.Quote(k.Name))
	b.WriteByte(']')
	if !k.Element.IsZero() {
		b.WriteByte('#')
		b.WriteString(k.Element.Role.String())
		b.WriteByte('/')
		b.WriteString(strconv.FormatUint(k.Element.ID, 10))
	}
	return b.String()
}

// Public returns the key stripped of its synthetic element.
func (k Key) Public() Key {
	return Key{Type: k.Type, Name: k.Name}
}
