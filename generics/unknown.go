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

	"github.com/schernic/dsl-json/apis"
	uref "github.com/schernic/dsl-json/utils/reflect"
)

// IsUnknownType reports whether t is too unresolved to select a codec for:
// the empty interface, an unbound type variable, or a generic array whose
// component is unknown at any depth.
//
// Arguments of parameterized types are not inspected. Each container codec
// decides how to cope with unknown arguments.
func IsUnknownType(t apis.Type) bool {
	switch x := t.(type) {
	case *GenericArrayType:
		return IsUnknownType(x.component)
	case *TypeVariable:
		return true
	case reflect.Type:
		return uref.IsTopType(x)
	default:
		return false
	}
}
