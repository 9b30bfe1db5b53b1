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
	"github.com/schernic/dsl-json/apis"
)

// NewNamerStrategy creates an apis.Strategy that uses apis.TypeNamer.
func NewNamerStrategy() apis.Strategy {
	return &namerStrategy{}
}

// namerStrategy is a zero-cost fast path: descriptors render their own
// canonical name, so if t implements apis.TypeNamer, return TypeName().
type namerStrategy struct{}

// Ensure namerStrategy implements apis.Strategy.
var _ apis.Strategy = (*namerStrategy)(nil)

// TryResolveType checks if t implements apis.TypeNamer and returns its TypeName().
func (*namerStrategy) TryResolveType(t apis.Type, _ apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	if n, ok := t.(apis.TypeNamer); ok {
		return n.TypeName(), true
	}
	return "", false
}
