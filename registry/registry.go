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

package registry

import (
	"errors"
	"fmt"
	"sync"

	"dirpx.dev/adx/apis"
)

var (
	// ErrNilKeyType is returned when a binding key carries a nil type.
	ErrNilKeyType = errors.New("adx(registry): nil key type provided")
	// ErrNilProvider is returned when a nil provider is provided.
	ErrNilProvider = errors.New("adx(registry): nil provider provided")
	// ErrDuplicateBinding indicates an attempt to re-bind an already
	// bound key.
	ErrDuplicateBinding = errors.New("adx(registry): duplicate binding")
)

// New constructs an empty Registry. cfg is retained for parity with other
// builders; the registry itself has no configuration-dependent behavior.
func New(cfg apis.Config) apis.Registry {
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration the registry was built with.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps apis.Key to apis.Binding.
	m sync.Map // map[apis.Key]apis.Binding
	// count tracks the number of installed bindings.
	count int
}

// Bind installs b under its key. Re-binding an existing key fails with
// ErrDuplicateBinding; synthetic element ids make accidental duplicates
// impossible for rewritten keys, so a duplicate always names a public-key
// conflict.
func (r *registry) Bind(b apis.Binding) error {
	// Validate inputs early.
	if b.Key.Type == nil {
		return ErrNilKeyType
	}
	if b.Provider == nil {
		return ErrNilProvider
	}

	// Fast read path: conflict check without locking.
	if _, ok := r.m.Load(b.Key); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateBinding, b.Key)
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if _, ok := r.m.Load(b.Key); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateBinding, b.Key)
	}

	r.m.Store(b.Key, b)
	r.count++
	return nil
}

// Lookup returns the binding for a key if present.
func (r *registry) Lookup(k apis.Key) (apis.Binding, bool) {
	if k.Type == nil {
		return apis.Binding{}, false
	}
	if v, ok := r.m.Load(k); ok {
		return v.(apis.Binding), true
	}
	return apis.Binding{}, false
}

// Entries returns a snapshot for matching/diagnostics (order is unspecified).
func (r *registry) Entries() []apis.Binding {
	entries := make([]apis.Binding, 0, r.Count())
	r.m.Range(func(_, value any) bool {
		entries = append(entries, value.(apis.Binding))
		return true
	})
	return entries
}

// Count returns the number of installed bindings.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all bindings.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}
