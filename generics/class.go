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
	"path"
	"reflect"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"

	uref "github.com/schernic/dsl-json/utils/reflect"
)

// Class is the erased, declared form of a Go type: the raw container a
// parameterized descriptor is built from.
type Class struct {
	pkgPath string
	local   string
	key     string
	typ     reflect.Type
	params  []*TypeVariable
}

// classes interns erasures by qualified name.
var classes sync.Map // map[string]*Class

// Erase returns the interned Class of t, or nil for a nil t.
func Erase(t reflect.Type) *Class {
	if t == nil {
		return nil
	}
	pkgPath, local, params, rep := erasure(t)
	key := qualify(pkgPath, local)
	if c, ok := classes.Load(key); ok {
		return c.(*Class)
	}

	c := &Class{pkgPath: pkgPath, local: local, key: key, typ: rep}
	c.params = make([]*TypeVariable, len(params))
	for i, name := range params {
		c.params[i] = &TypeVariable{name: name, class: c, index: i}
	}
	actual, _ := classes.LoadOrStore(key, c)
	return actual.(*Class)
}

// TypeParameters returns the declared type parameters of t's erasure.
func TypeParameters(t reflect.Type) []*TypeVariable {
	if c := Erase(t); c != nil {
		return c.TypeParameters()
	}
	return nil
}

func erasure(t reflect.Type) (pkgPath, local string, params []string, rep reflect.Type) {
	if name := t.Name(); name != "" {
		n := uref.TypeArgCount(name)
		params = make([]string, n)
		for i := range params {
			params[i] = "T" + strconv.Itoa(i+1)
		}
		return t.PkgPath(), uref.StripTypeParams(name), params, t
	}

	top := uref.TopType
	switch t.Kind() {
	case reflect.Slice:
		return "", "slice", []string{"E"}, reflect.SliceOf(top)
	case reflect.Pointer:
		return "", "ptr", []string{"E"}, reflect.PointerTo(top)
	case reflect.Array:
		return "", "array[" + strconv.Itoa(t.Len()) + "]", []string{"E"}, reflect.ArrayOf(t.Len(), top)
	case reflect.Chan:
		return "", t.ChanDir().String(), []string{"E"}, reflect.ChanOf(t.ChanDir(), top)
	case reflect.Map:
		return "", "map", []string{"K", "V"}, reflect.MapOf(top, top)
	default:
		return "", uref.QualifiedName(t, false), nil, t
	}
}

func qualify(pkgPath, local string) string {
	if pkgPath == "" {
		return local
	}
	return pkgPath + "." + local
}

// Name returns the qualified erased name, e.g. "example.com/x.List" or "map".
func (c *Class) Name() string {
	return c.key
}

// name renders the class for canonical names.
func (c *Class) name(short bool) string {
	if short && c.pkgPath != "" {
		return path.Base(c.pkgPath) + "." + c.local
	}
	return c.key
}

// Type returns a representative reflect.Type: the instantiation Erase was
// first called with for named generics, the any-instantiated form for
// builtin containers.
func (c *Class) Type() reflect.Type {
	return c.typ
}

// NumTypeParameters returns the declared arity; zero for non-generic types.
func (c *Class) NumTypeParameters() int {
	return len(c.params)
}

// TypeParameters returns a copy of the declared type parameters.
func (c *Class) TypeParameters() []*TypeVariable {
	out := make([]*TypeVariable, len(c.params))
	copy(out, c.params)
	return out
}

// String implements apis.Type.
func (c *Class) String() string {
	return c.key
}

// TypeVariable is an unbound type parameter declared by a Class.
// Type variables are created with their class and compared by identity.
type TypeVariable struct {
	name  string
	class *Class
	index int
}

// Name returns the parameter name, e.g. "T1", "E" or "K".
func (v *TypeVariable) Name() string {
	return v.name
}

// Class returns the declaring class.
func (v *TypeVariable) Class() *Class {
	return v.class
}

// Index returns the position of the parameter in its class declaration.
func (v *TypeVariable) Index() int {
	return v.index
}

// TypeName returns the variable qualified by its class, e.g.
// "example.com/x.List#T1", so variables of different classes never share
// a canonical name.
func (v *TypeVariable) TypeName() string {
	return v.class.key + "#" + v.name
}

// String implements apis.Type.
func (v *TypeVariable) String() string {
	return v.name
}

// Hash returns a hash consistent with identity.
func (v *TypeVariable) Hash() uint64 {
	return xxhash.Sum64String(v.TypeName())
}
