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

package element

import (
	"sync/atomic"

	"dirpx.dev/adx/apis"
)

// Allocator mints synthetic element descriptors with strictly increasing
// ids. Each declaration surface owns its own Allocator, so independent
// containers in one process never share identity state.
//
// The zero value is ready to use. All methods are safe for concurrent use.
type Allocator struct {
	// n is the last issued id.
	n atomic.Uint64
}

// NewAllocator returns a fresh Allocator starting at id 1.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next issues the next unique id. Ids start at 1 and strictly increase in
// allocation order; they are never reused.
func (a *Allocator) Next() uint64 {
	return a.n.Add(1)
}

// Source mints a SOURCE-role descriptor under the given logical name.
func (a *Allocator) Source(name string) apis.Descriptor {
	return apis.Descriptor{Name: name, Role: apis.RoleSource, ID: a.Next()}
}

// Advice mints an ADVICE-role descriptor under the given logical name.
func (a *Allocator) Advice(name string) apis.Descriptor {
	return apis.Descriptor{Name: name, Role: apis.RoleAdvice, ID: a.Next()}
}
