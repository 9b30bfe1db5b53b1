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

package accessor

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// Field is a struct field handle together with the struct type declaring it.
type Field struct {
	Owner reflect.Type
	reflect.StructField
}

// Method is a method handle together with the receiver type it was resolved on.
// For concrete owners Type includes the receiver as its first input;
// for interface owners it does not.
type Method struct {
	Owner reflect.Type
	reflect.Method
}

// FieldOf resolves the field called name on owner or on the struct owner points to.
// Promoted fields of embedded structs are resolved as well.
func FieldOf(owner reflect.Type, name string) (Field, error) {
	st := structOf(owner)
	if st == nil {
		return Field{}, errors.Mark(errors.Newf("dsljson(accessor): %v is not a struct type", owner), ErrNotFound)
	}
	sf, ok := st.FieldByName(name)
	if !ok {
		return Field{}, errors.Mark(errors.Newf("dsljson(accessor): no field %q in %v", name, st), ErrNotFound)
	}
	return Field{Owner: st, StructField: sf}, nil
}

// NewField wraps a field obtained from owner by other means, e.g. a metadata scan.
func NewField(owner reflect.Type, sf reflect.StructField) Field {
	if st := structOf(owner); st != nil {
		owner = st
	}
	return Field{Owner: owner, StructField: sf}
}

// MethodOf resolves the exported method called name on owner. When owner is
// not a pointer or interface and the method has a pointer receiver, the
// handle is resolved on *owner instead.
func MethodOf(owner reflect.Type, name string) (Method, error) {
	if owner == nil {
		return Method{}, errors.Mark(errors.New("dsljson(accessor): owner type can't be nil"), ErrNotFound)
	}
	if m, ok := owner.MethodByName(name); ok {
		return Method{Owner: owner, Method: m}, nil
	}
	if owner.Kind() != reflect.Pointer && owner.Kind() != reflect.Interface {
		pt := reflect.PointerTo(owner)
		if m, ok := pt.MethodByName(name); ok {
			return Method{Owner: pt, Method: m}, nil
		}
	}
	return Method{}, errors.Mark(errors.Newf("dsljson(accessor): no method %q in %v", name, owner), ErrNotFound)
}

// NewMethod wraps a method obtained from owner by other means.
func NewMethod(owner reflect.Type, m reflect.Method) Method {
	return Method{Owner: owner, Method: m}
}

// declaring returns the type that declares the member, without pointer indirection.
func declaring(owner reflect.Type) reflect.Type {
	if owner != nil && owner.Kind() == reflect.Pointer {
		return owner.Elem()
	}
	return owner
}

func structOf(t reflect.Type) reflect.Type {
	t = declaring(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

// receiverOffset is the index of the first non-receiver input in m.Type.
func (m Method) receiverOffset() int {
	if m.Owner.Kind() == reflect.Interface {
		return 0
	}
	return 1
}

// numIn returns the number of inputs excluding the receiver.
func (m Method) numIn() int {
	return m.Type.NumIn() - m.receiverOffset()
}

// in returns the i-th input excluding the receiver.
func (m Method) in(i int) reflect.Type {
	return m.Type.In(i + m.receiverOffset())
}
