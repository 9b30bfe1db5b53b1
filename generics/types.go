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
	"encoding/binary"
	"fmt"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/schernic/dsl-json/apis"
	uref "github.com/schernic/dsl-json/utils/reflect"
)

// ParameterizedType describes a generic container instantiated with
// concrete or symbolic type arguments. Values are immutable.
type ParameterizedType struct {
	name string
	raw  *Class
	args []apis.Type
}

// Raw returns the erased container.
func (p *ParameterizedType) Raw() *Class {
	return p.raw
}

// Args returns a copy of the type arguments, in declaration order.
func (p *ParameterizedType) Args() []apis.Type {
	out := make([]apis.Type, len(p.args))
	copy(out, p.args)
	return out
}

// TypeName returns the canonical name the descriptor is cached under.
func (p *ParameterizedType) TypeName() string {
	return p.name
}

// String implements apis.Type.
func (p *ParameterizedType) String() string {
	return p.name
}

// Equal reports structural equality with other.
func (p *ParameterizedType) Equal(other apis.Type) bool {
	o, ok := other.(*ParameterizedType)
	if !ok || o == nil {
		return false
	}
	if p == o {
		return true
	}
	if p.raw != o.raw || len(p.args) != len(o.args) {
		return false
	}
	for i := range p.args {
		if !Equal(p.args[i], o.args[i]) {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal.
func (p *ParameterizedType) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(p.raw.key)
	var buf [8]byte
	for _, a := range p.args {
		binary.LittleEndian.PutUint64(buf[:], Hash(a))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// GenericArrayType describes an array (slice) whose component is a
// parameterized type or type variable, which reflect cannot materialize.
type GenericArrayType struct {
	name      string
	component apis.Type
}

// ArrayOf describes an array of component without consulting any cache.
// Unlike Synthesizer.MakeArray it accepts every shape, including type
// variables, so declared members like "[]T" can be described.
func ArrayOf(component apis.Type) *GenericArrayType {
	return &GenericArrayType{name: displayName(component) + "[]", component: component}
}

// Component returns the element shape.
func (a *GenericArrayType) Component() apis.Type {
	return a.component
}

// TypeName returns the canonical name.
func (a *GenericArrayType) TypeName() string {
	return a.name
}

// String implements apis.Type.
func (a *GenericArrayType) String() string {
	return a.name
}

// Equal reports structural equality with other.
func (a *GenericArrayType) Equal(other apis.Type) bool {
	o, ok := other.(*GenericArrayType)
	if !ok || o == nil {
		return false
	}
	return a == o || Equal(a.component, o.component)
}

// Hash returns a hash consistent with Equal.
func (a *GenericArrayType) Hash() uint64 {
	var buf [10]byte
	buf[0], buf[1] = '[', ']'
	binary.LittleEndian.PutUint64(buf[2:], Hash(a.component))
	return xxhash.Sum64(buf[:])
}

// Equal reports whether a and b denote the same type shape.
// reflect.Types and type variables compare by identity, descriptors structurally.
func Equal(a, b apis.Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *ParameterizedType:
		return x.Equal(b)
	case *GenericArrayType:
		return x.Equal(b)
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// Hash returns a structural hash of t: Equal shapes hash equally.
func Hash(t apis.Type) uint64 {
	switch x := t.(type) {
	case nil:
		return 0
	case *ParameterizedType:
		return x.Hash()
	case *GenericArrayType:
		return x.Hash()
	case *TypeVariable:
		return x.Hash()
	case reflect.Type:
		return xxhash.Sum64String(uref.QualifiedName(x, false))
	default:
		return xxhash.Sum64String(t.String())
	}
}

// identity renders t unambiguously, ignoring registry aliases and short
// package names. It is used to report collisions.
func identity(t apis.Type) string {
	switch x := t.(type) {
	case nil:
		return "<nil>"
	case reflect.Type:
		return uref.QualifiedName(x, false)
	case *TypeVariable:
		return x.TypeName()
	case *ParameterizedType:
		var sb strings.Builder
		sb.WriteString(x.raw.key)
		sb.WriteByte('<')
		for i, a := range x.args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(identity(a))
		}
		sb.WriteByte('>')
		return sb.String()
	case *GenericArrayType:
		return identity(x.component) + "[]"
	default:
		return fmt.Sprintf("%s (%T)", t, t)
	}
}

// displayName names t without a resolver.
func displayName(t apis.Type) string {
	switch x := t.(type) {
	case nil:
		return "<nil>"
	case apis.TypeNamer:
		return x.TypeName()
	case reflect.Type:
		return uref.QualifiedName(x, false)
	default:
		return t.String()
	}
}
