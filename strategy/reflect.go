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

package strategy

import (
	"reflect"
	"sync"

	"github.com/schernic/dsl-json/apis"
	uref "github.com/schernic/dsl-json/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that names plain reflect.Types
// by their fully-qualified name, with memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy renders "import/path.Type" names, with bracket-suffix
// notation for slices and arrays ("int[][]", "pkg.Foo[4]").
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect naming.
type cacheKey struct {
	t     reflect.Type
	short bool
}

// typeNameCache caches rendered names by (type, config knobs).
var typeNameCache sync.Map // key: cacheKey, val: string

// TryResolveType computes the canonical name for a plain reflect.Type.
func (reflectStrategy) TryResolveType(t apis.Type, cfg apis.Config) (string, bool) {
	rt, ok := t.(reflect.Type)
	if !ok || rt == nil {
		return "", false
	}
	return byType(rt, cfg), true
}

// byType resolves the canonical name for t with memoization.
func byType(t reflect.Type, cfg apis.Config) string {
	key := cacheKey{t: t, short: cfg.ShortPackageNames}
	if v, ok := typeNameCache.Load(key); ok {
		return v.(string)
	}
	name := uref.QualifiedName(t, cfg.ShortPackageNames)
	typeNameCache.Store(key, name)
	return name
}
