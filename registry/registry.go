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
	"reflect"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/schernic/dsl-json/apis"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("dsljson(registry): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("dsljson(registry): empty name provided")
	// ErrInvalidName is returned when a name contains characters reserved by
	// canonical descriptor names.
	ErrInvalidName = errors.New("dsljson(registry): name contains reserved characters")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different name.
	ErrConflictingRegistration = errors.New("dsljson(registry): conflicting type registration")
	// ErrNameInUse is returned when name is already bound to another type.
	ErrNameInUse = errors.New("dsljson(registry): name already in use")
)

// reserved are the characters canonical names use as structure.
const reserved = "<>,[]()*{}#\" \t"

// predeclared names render builtin types and containers; only the type they
// denote may use them.
var predeclared = map[string]bool{
	"any": true, "bool": true, "byte": true, "comparable": true,
	"complex64": true, "complex128": true, "error": true,
	"float32": true, "float64": true, "int": true, "int8": true,
	"int16": true, "int32": true, "int64": true, "rune": true,
	"string": true, "uint": true, "uint8": true, "uint16": true,
	"uint32": true, "uint64": true, "uintptr": true,
	"slice": true, "ptr": true, "map": true, "chan": true, "func": true,
}

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to registered name.
	m sync.Map // map[reflect.Type]string
	// names maps registered name back to its type; guarded by mu.
	names map[string]reflect.Type
	// count tracks the number of registered entries.
	count int
}

// Register pins name as the canonical name of t.
// It is idempotent for the same (type,name) pair.
func (r *registry) Register(t reflect.Type, name string) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}
	if strings.ContainsAny(name, reserved) {
		return errors.Mark(errors.Newf("dsljson(registry): %q may not contain any of %q", name, reserved), ErrInvalidName)
	}
	if predeclared[name] && (t.PkgPath() != "" || t.Name() != name) {
		return errors.Wrapf(ErrNameInUse, "%q is predeclared and can't name %s", name, t)
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(t); ok {
		return checkExisting(t, old.(string), name)
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(t); ok {
		return checkExisting(t, old.(string), name)
	}

	if other, ok := r.names[name]; ok {
		return errors.Wrapf(ErrNameInUse, "%q already names %s, can't name %s", name, other, t)
	}
	if r.names == nil {
		r.names = make(map[string]reflect.Type)
	}
	r.names[name] = t
	r.m.Store(t, name)
	r.count++
	return nil
}

func checkExisting(t reflect.Type, old, name string) error {
	if old == name {
		return nil // idempotent re-registration
	}
	return errors.Wrapf(ErrConflictingRegistration, "%s is registered as %q, not %q", t, old, name)
}

// Lookup returns the canonical name for t if present.
func (r *registry) Lookup(t reflect.Type) (name string, ok bool) {
	if t == nil {
		return "", false
	}
	if v, ok := r.m.Load(t); ok {
		return v.(string), true
	}
	return "", false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type: key.(reflect.Type),
			Name: value.(string),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Range(func(key, _ any) bool {
		r.m.Delete(key)
		return true
	})
	r.names = nil
	r.count = 0
}
