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
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/schernic/dsl-json/apis"
	uref "github.com/schernic/dsl-json/utils/reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// ReaderFunc adapts a function to apis.Reader.
type ReaderFunc func(instance any) (any, error)

// Read calls f(instance).
func (f ReaderFunc) Read(instance any) (any, error) {
	return f(instance)
}

// WriterFunc adapts a function to apis.Writer.
type WriterFunc func(instance, value any) error

// Write calls f(instance, value).
func (f WriterFunc) Write(instance, value any) error {
	return f(instance, value)
}

// ReadField returns a Reader of f. The instance is a value of, or a non-nil
// pointer to, f.Owner. Unexported fields require cfg.ForceAccess.
func ReadField(f Field, cfg apis.Config) apis.Reader {
	return &fieldReader{f: f, cfg: cfg}
}

// WriteField returns a Writer of f. The instance must be a non-nil pointer
// to f.Owner. A nil value stores the zero value of nillable field types.
func WriteField(f Field, cfg apis.Config) apis.Writer {
	return &fieldWriter{f: f, cfg: cfg}
}

// ReadMethod returns a Reader invoking the zero-argument method m.
// Supported signatures are func() T and func() (T, error).
func ReadMethod(m Method, cfg apis.Config) apis.Reader {
	return &methodReader{m: m, cfg: cfg, sigErr: getterSignature(m)}
}

// WriteMethod returns a Writer invoking the one-argument method m.
// Supported signatures are func(T) and func(T) error.
func WriteMethod(m Method, cfg apis.Config) apis.Writer {
	return &methodWriter{m: m, cfg: cfg, sigErr: setterSignature(m)}
}

type fieldReader struct {
	f   Field
	cfg apis.Config
}

func (r *fieldReader) Read(instance any) (out any, err error) {
	defer func() {
		if p := recover(); p != nil {
			out, err = nil, r.fail(recovered(p))
		}
	}()

	v, err := structValue(r.f.Owner, instance, false)
	if err != nil {
		return nil, r.fail(err)
	}
	fv, err := fieldValue(v, r.f, r.cfg, false)
	if err != nil {
		return nil, r.fail(err)
	}
	return fv.Interface(), nil
}

func (r *fieldReader) fail(cause error) error {
	return newError(OpRead, KindField, r.f.Name, r.f.Owner, "", cause, r.cfg)
}

type fieldWriter struct {
	f   Field
	cfg apis.Config
}

func (w *fieldWriter) Write(instance, value any) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = w.fail(recovered(p))
		}
	}()

	v, err := structValue(w.f.Owner, instance, true)
	if err != nil {
		return w.fail(err)
	}
	fv, err := fieldValue(v, w.f, w.cfg, true)
	if err != nil {
		return w.fail(err)
	}
	nv, err := assignable(fv.Type(), value)
	if err != nil {
		return w.fail(err)
	}
	fv.Set(nv)
	return nil
}

func (w *fieldWriter) fail(cause error) error {
	return newError(OpWrite, KindField, w.f.Name, w.f.Owner, "", cause, w.cfg)
}

type methodReader struct {
	m      Method
	cfg    apis.Config
	sigErr error
}

func (r *methodReader) Read(instance any) (out any, err error) {
	if r.sigErr != nil {
		return nil, r.fail("", r.sigErr)
	}
	defer func() {
		if p := recover(); p != nil {
			out, err = nil, r.fail("", recovered(p))
		}
	}()

	rv, err := receiver(r.m.Owner, instance, false)
	if err != nil {
		return nil, r.fail(valueType(instance, r.cfg), err)
	}
	res := rv.MethodByName(r.m.Name).Call(nil)
	if len(res) == 2 && !res[1].IsNil() {
		return nil, r.fail("", res[1].Interface().(error))
	}
	return res[0].Interface(), nil
}

func (r *methodReader) fail(vt string, cause error) error {
	return newError(OpRead, KindMethod, r.m.Name, r.m.Owner, vt, cause, r.cfg)
}

type methodWriter struct {
	m      Method
	cfg    apis.Config
	sigErr error
}

func (w *methodWriter) Write(instance, value any) (err error) {
	vt := valueType(value, w.cfg)
	if w.sigErr != nil {
		return w.fail(vt, w.sigErr)
	}
	defer func() {
		if p := recover(); p != nil {
			err = w.fail(vt, recovered(p))
		}
	}()

	rv, err := receiver(w.m.Owner, instance, true)
	if err != nil {
		return w.fail(vt, err)
	}
	arg, err := assignable(w.m.in(0), value)
	if err != nil {
		return w.fail(vt, err)
	}
	res := rv.MethodByName(w.m.Name).Call([]reflect.Value{arg})
	if len(res) == 1 && !res[0].IsNil() {
		return w.fail(vt, res[0].Interface().(error))
	}
	return nil
}

func (w *methodWriter) fail(vt string, cause error) error {
	return newError(OpWrite, KindMethod, w.m.Name, w.m.Owner, vt, cause, w.cfg)
}

func getterSignature(m Method) error {
	if err := checkHandle(m); err != nil {
		return err
	}
	t := m.Type
	switch {
	case m.numIn() != 0,
		t.NumOut() == 0 || t.NumOut() > 2,
		t.NumOut() == 2 && t.Out(1) != errorType:
		return errors.Wrapf(ErrSignature, "%v is not func() T or func() (T, error)", t)
	}
	return nil
}

func setterSignature(m Method) error {
	if err := checkHandle(m); err != nil {
		return err
	}
	t := m.Type
	switch {
	case m.numIn() != 1,
		t.NumOut() > 1,
		t.NumOut() == 1 && t.Out(0) != errorType:
		return errors.Wrapf(ErrSignature, "%v is not func(T) or func(T) error", t)
	}
	return nil
}

func checkHandle(m Method) error {
	if m.Owner == nil || m.Type == nil {
		return ErrNotFound
	}
	if !m.IsExported() {
		return ErrUnexported
	}
	return nil
}

// structValue returns the struct value held by instance.
func structValue(owner reflect.Type, instance any, write bool) (reflect.Value, error) {
	if instance == nil {
		return reflect.Value{}, ErrNilInstance
	}
	v := reflect.ValueOf(instance)
	switch {
	case v.Kind() == reflect.Pointer && v.Type().Elem() == owner:
		if v.IsNil() {
			return reflect.Value{}, ErrNilInstance
		}
		return v.Elem(), nil
	case v.Type() == owner:
		if write {
			return reflect.Value{}, errors.Wrapf(ErrNotAddressable, "%v must be passed by pointer", owner)
		}
		return v, nil
	}
	return reflect.Value{}, errors.Wrapf(ErrInstanceType, "got %v, want %v", v.Type(), owner)
}

// fieldValue resolves f within v, bypassing export rules when cfg.ForceAccess is set.
func fieldValue(v reflect.Value, f Field, cfg apis.Config, write bool) (reflect.Value, error) {
	if cfg.ForceAccess && !v.CanAddr() {
		c := reflect.New(v.Type()).Elem()
		c.Set(v)
		v = c
	}
	fv, err := v.FieldByIndexErr(f.Index)
	if err != nil {
		return reflect.Value{}, errors.Mark(err, ErrNilInstance)
	}

	ok := fv.CanInterface()
	if write {
		ok = fv.CanSet()
	}
	if ok {
		return fv, nil
	}
	if !cfg.ForceAccess {
		return reflect.Value{}, ErrUnexported
	}
	if !fv.CanAddr() {
		return reflect.Value{}, ErrNotAddressable
	}
	return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem(), nil
}

// receiver adapts instance to the receiver type owner.
func receiver(owner reflect.Type, instance any, write bool) (reflect.Value, error) {
	if instance == nil {
		return reflect.Value{}, ErrNilInstance
	}
	v := reflect.ValueOf(instance)
	switch {
	case owner.Kind() == reflect.Interface:
		if v.Type().Implements(owner) {
			return v, nil
		}
	case v.Type() == owner:
		if owner.Kind() == reflect.Pointer && v.IsNil() {
			return reflect.Value{}, ErrNilInstance
		}
		return v, nil
	case v.Kind() == reflect.Pointer && v.Type().Elem() == owner:
		if v.IsNil() {
			return reflect.Value{}, ErrNilInstance
		}
		return v.Elem(), nil
	case owner.Kind() == reflect.Pointer && owner.Elem() == v.Type():
		if write {
			return reflect.Value{}, errors.Wrapf(ErrNotAddressable, "%v must be passed by pointer", v.Type())
		}
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		return p, nil
	}
	return reflect.Value{}, errors.Wrapf(ErrInstanceType, "got %v, want %v", v.Type(), owner)
}

// assignable converts value to a reflect.Value settable into t.
func assignable(t reflect.Type, value any) (reflect.Value, error) {
	if value == nil {
		if nillable(t.Kind()) {
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, errors.Wrapf(ErrValueType, "nil is not assignable to %v", t)
	}
	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, errors.Wrapf(ErrValueType, "%v is not assignable to %v", v.Type(), t)
	}
	return v, nil
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

func valueType(value any, cfg apis.Config) string {
	if value == nil {
		return NilValue
	}
	return uref.QualifiedName(reflect.TypeOf(value), cfg.ShortPackageNames)
}

func recovered(p any) error {
	if err, ok := p.(error); ok {
		return errors.Mark(errors.Wrap(err, "panic"), ErrPanic)
	}
	return errors.Mark(errors.Newf("panic: %v", p), ErrPanic)
}

func newError(op Op, kind MemberKind, member string, owner reflect.Type, vt string, cause error, cfg apis.Config) error {
	return &ConfigurationError{
		Op:        op,
		Kind:      kind,
		Member:    member,
		Declaring: uref.QualifiedName(declaring(owner), cfg.ShortPackageNames),
		ValueType: vt,
		Cause:     cause,
	}
}
