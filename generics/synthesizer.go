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

package generics

import (
	"reflect"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/schernic/dsl-json/apis"
	"github.com/schernic/dsl-json/cache"
	"github.com/schernic/dsl-json/log"
	"github.com/schernic/dsl-json/resolver"
	"github.com/schernic/dsl-json/strategy"
)

// Synthesizer builds and memoizes descriptors. It is safe for concurrent use.
type Synthesizer struct {
	cfg   apis.Config
	cache apis.Cache
	res   apis.Resolver
}

// New constructs a Synthesizer over c, naming arguments with res.
// A nil cache or resolver is replaced by a fresh cache or the default
// namer-then-reflect chain.
func New(cfg apis.Config, c apis.Cache, res apis.Resolver) *Synthesizer {
	if c == nil {
		c = cache.New()
	}
	if res == nil {
		res = resolver.New(strategy.NewNamerStrategy(), strategy.NewReflectStrategy())
	}
	return &Synthesizer{cfg: cfg, cache: c, res: res}
}

// Cache returns the descriptor cache.
func (s *Synthesizer) Cache() apis.Cache {
	return s.cache
}

// MakeParameterized returns the descriptor of container instantiated with args.
//
// container must erase to a generic Class and len(args) must equal its
// arity; otherwise the error is marked ErrInvalidArgument and nothing is
// cached. Repeated calls with Equal arguments return Equal descriptors.
func (s *Synthesizer) MakeParameterized(container reflect.Type, args ...apis.Type) (*ParameterizedType, error) {
	if container == nil {
		return nil, invalidArgumentf("container can't be nil")
	}
	raw := Erase(container)
	n := raw.NumTypeParameters()
	if n == 0 {
		return nil, invalidArgumentf("container %s must be a parameterized type", raw)
	}
	if len(args) != n {
		return nil, invalidArgumentf("arguments of %s must have %d elements, got %d", raw, n, len(args))
	}
	for i, a := range args {
		if a == nil {
			return nil, invalidArgumentf("argument %d of %s can't be nil", i, raw)
		}
	}

	name := s.parameterizedName(raw, args)
	pt := &ParameterizedType{name: name, raw: raw, args: append([]apis.Type(nil), args...)}
	if found, ok := s.cache.Load(name); ok {
		return asParameterized(name, found, pt)
	}

	actual, loaded := s.cache.LoadOrStore(name, pt)
	if !loaded {
		logger().Debug("cached parameterized type", zap.String("name", name))
		return pt, nil
	}
	return asParameterized(name, actual, pt)
}

// MakeArray returns the array descriptor for component.
//
// For a plain reflect.Type the result is a genuine slice type allocated from
// a zero-length slice, so callers can build values with it. For a
// *ParameterizedType it is a *GenericArrayType. Other shapes are rejected
// with ErrInvalidArgument.
func (s *Synthesizer) MakeArray(component apis.Type) (apis.Type, error) {
	if component == nil {
		return nil, invalidArgumentf("component type can't be nil")
	}
	switch component.(type) {
	case reflect.Type, *ParameterizedType:
	default:
		return nil, invalidArgumentf("invalid component type %s (%T): only reflect.Type or *ParameterizedType supported", component, component)
	}

	name := s.res.ResolveType(component, s.cfg) + "[]"
	if found, ok := s.cache.Load(name); ok {
		return arrayHit(name, found, component)
	}

	var built apis.Type
	switch c := component.(type) {
	case reflect.Type:
		built = reflect.MakeSlice(reflect.SliceOf(c), 0, 0).Type()
	case *ParameterizedType:
		built = &GenericArrayType{name: name, component: c}
	}
	actual, loaded := s.cache.LoadOrStore(name, built)
	if !loaded {
		logger().Debug("cached array type", zap.String("name", name))
		return built, nil
	}
	return arrayHit(name, actual, component)
}

// arrayHit returns the cached array descriptor if its component is component.
func arrayHit(name string, found, component apis.Type) (apis.Type, error) {
	var ok bool
	switch f := found.(type) {
	case reflect.Type:
		c, plain := component.(reflect.Type)
		ok = plain && f.Kind() == reflect.Slice && f.Elem() == c
	case *GenericArrayType:
		ok = Equal(f.component, component)
	}
	if !ok {
		return nil, collision(name, found, ArrayOf(component))
	}
	return found, nil
}

// parameterizedName renders raw<arg1, arg2, ...>.
func (s *Synthesizer) parameterizedName(raw *Class, args []apis.Type) string {
	names := lo.Map(args, func(a apis.Type, _ int) string {
		return s.res.ResolveType(a, s.cfg)
	})

	var sb strings.Builder
	sb.WriteString(raw.name(s.cfg.ShortPackageNames))
	sb.WriteByte('<')
	sb.WriteString(strings.Join(names, ", "))
	sb.WriteByte('>')
	return sb.String()
}

// asParameterized returns the cached descriptor t if it is structurally
// equal to the requested one.
func asParameterized(name string, t apis.Type, requested *ParameterizedType) (*ParameterizedType, error) {
	pt, ok := t.(*ParameterizedType)
	if !ok || !pt.Equal(requested) {
		return nil, collision(name, t, requested)
	}
	return pt, nil
}

func logger() *zap.Logger {
	return log.Named("generics")
}
