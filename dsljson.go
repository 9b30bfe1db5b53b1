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

package dsljson

import (
	"reflect"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"

	"github.com/schernic/dsl-json/accessor"
	"github.com/schernic/dsl-json/apis"
	"github.com/schernic/dsl-json/builder"
	"github.com/schernic/dsl-json/config"
	"github.com/schernic/dsl-json/generics"
)

// init publishes the default state.
func init() {
	b := builder.New()
	cfg := config.DefaultConfig()
	s := &state{cfg: cfg, bld: b}
	s.reg = b.BuildRegistry(cfg, nil)
	s.res = b.BuildResolver(cfg, s.reg)
	s.cache = b.BuildCache(cfg)
	s.syn = generics.New(cfg, s.cache, s.res)
	st.Store(s)
}

var (
	// ErrNilRegistry is raised when a builder returns a nil registry.
	ErrNilRegistry = errors.New("dsljson: builder returned nil registry")
	// ErrNilResolver is raised when a builder returns a nil resolver.
	ErrNilResolver = errors.New("dsljson: builder returned nil resolver")
	// ErrNilCache is raised when a builder returns a nil descriptor cache.
	ErrNilCache = errors.New("dsljson: builder returned nil cache")
)

// MakeParameterized returns the canonical descriptor of container
// instantiated with args, using the global synthesizer.
func MakeParameterized(container reflect.Type, args ...apis.Type) (*generics.ParameterizedType, error) {
	return st.Load().syn.MakeParameterized(container, args...)
}

// MakeArray returns the canonical array descriptor of component, using the
// global synthesizer.
func MakeArray(component apis.Type) (apis.Type, error) {
	return st.Load().syn.MakeArray(component)
}

// IsUnknownType reports whether t carries no static information.
func IsUnknownType(t apis.Type) bool {
	return generics.IsUnknownType(t)
}

// TypeName returns the canonical name of t under the global configuration.
func TypeName(t apis.Type) string {
	s := st.Load()
	return s.res.ResolveType(t, s.cfg)
}

// Description renders t for diagnostics under the global configuration.
func Description(t apis.Type) string {
	return accessor.Description(t, st.Load().cfg)
}

// ReadField returns a Reader of f under the global configuration.
func ReadField(f accessor.Field) apis.Reader {
	return accessor.ReadField(f, st.Load().cfg)
}

// ReadMethod returns a Reader invoking m under the global configuration.
func ReadMethod(m accessor.Method) apis.Reader {
	return accessor.ReadMethod(m, st.Load().cfg)
}

// WriteField returns a Writer of f under the global configuration.
func WriteField(f accessor.Field) apis.Writer {
	return accessor.WriteField(f, st.Load().cfg)
}

// WriteMethod returns a Writer invoking m under the global configuration.
func WriteMethod(m accessor.Method) apis.Writer {
	return accessor.WriteMethod(m, st.Load().cfg)
}

// RegisterType pins the canonical name of t in the global registry.
// Descriptors already cached keep the names they were built with.
func RegisterType(t reflect.Type, name string) error {
	return st.Load().reg.Register(t, name)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the global configuration and rebuilds every unpinned component.
func SetConfig(cfg apis.Config) {
	update(func(next *state) {
		next.cfg = cfg
	})
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry replaces and pins the global registry. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	update(func(next *state) {
		next.reg, next.preg = reg, true
	})
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver replaces and pins the global resolver. A nil res is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	update(func(next *state) {
		next.res, next.pres = res, true
	})
}

// Cache returns the global descriptor cache.
func Cache() apis.Cache {
	return st.Load().cache
}

// SetCache replaces and pins the global descriptor cache. A nil c is ignored.
func SetCache(c apis.Cache) {
	if c == nil {
		return
	}
	update(func(next *state) {
		next.cache, next.pcache = c, true
	})
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the global builder and rebuilds every unpinned component.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(func(next *state) {
		next.bld = b
	})
}

// SetAll replaces several components at once. A nil cfg or bld keeps the
// current one. Non-nil reg, res and c are installed and pinned; nil ones are
// unpinned and rebuilt, which gives tests a clean deterministic state.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, c apis.Cache, bld apis.Builder) {
	update(func(next *state) {
		if cfg != nil {
			next.cfg = *cfg
		}
		if bld != nil {
			next.bld = bld
		}
		next.reg, next.preg = reg, reg != nil
		next.res, next.pres = res, res != nil
		next.cache, next.pcache = c, c != nil
	})
}

// IsRegistryPinned reports whether the global registry survives rebuilds.
func IsRegistryPinned() bool { return st.Load().preg }

// PinRegistry keeps the global registry across rebuilds.
func PinRegistry() { setPins(func(s *state) { s.preg = true }) }

// UnpinRegistry lets the next rebuild replace the global registry.
func UnpinRegistry() { setPins(func(s *state) { s.preg = false }) }

// IsResolverPinned reports whether the global resolver survives rebuilds.
func IsResolverPinned() bool { return st.Load().pres }

// PinResolver keeps the global resolver across rebuilds.
func PinResolver() { setPins(func(s *state) { s.pres = true }) }

// UnpinResolver lets the next rebuild replace the global resolver.
func UnpinResolver() { setPins(func(s *state) { s.pres = false }) }

// IsCachePinned reports whether the global descriptor cache survives rebuilds.
func IsCachePinned() bool { return st.Load().pcache }

// PinCache keeps the global descriptor cache across rebuilds.
func PinCache() { setPins(func(s *state) { s.pcache = true }) }

// UnpinCache lets the next rebuild replace the global descriptor cache.
func UnpinCache() { setPins(func(s *state) { s.pcache = false }) }

// buildMu serializes writers so partially built snapshots are never published.
var buildMu sync.Mutex

// st is the published global state.
var st atomic.Pointer[state]

// state is an immutable snapshot. Writers copy it, rebuild and swap.
type state struct {
	cfg   apis.Config
	reg   apis.Registry
	res   apis.Resolver
	cache apis.Cache
	bld   apis.Builder
	syn   *generics.Synthesizer
	// pinned components are kept by rebuilds
	preg   bool
	pres   bool
	pcache bool
}

// update copies the current state, applies change, rebuilds whatever change
// left unpinned and publishes the result.
//
// Canonical names depend on config, registry and resolver, so an unpinned
// cache is rebuilt whenever the resolver is.
func update(change func(next *state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	change(&next)

	b := next.bld
	if !next.preg {
		next.reg = b.BuildRegistry(next.cfg, old.reg)
	}
	if !next.pres {
		next.res = b.BuildResolver(next.cfg, next.reg)
	}
	if !next.pcache {
		next.cache = b.BuildCache(next.cfg)
	}

	switch {
	case next.reg == nil:
		panic(ErrNilRegistry)
	case next.res == nil:
		panic(ErrNilResolver)
	case next.cache == nil:
		panic(ErrNilCache)
	}

	next.syn = generics.New(next.cfg, next.cache, next.res)
	st.Store(&next)
}

// setPins republishes the current state with different pin flags.
func setPins(change func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	change(&next)
	st.Store(&next)
}
