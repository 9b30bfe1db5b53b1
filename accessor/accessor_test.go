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

package accessor_test

import (
	"reflect"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/schernic/dsl-json/accessor"
	"github.com/schernic/dsl-json/config"
)

var errNegative = errors.New("negative age")

type Audit struct {
	Created string
}

type User struct {
	Name string
	Tags []string
	age  int
	*Audit
}

func (u User) Greeting() string { return "hi " + u.Name }

func (u *User) Age() (int, error) {
	if u.age < 0 {
		return 0, errNegative
	}
	return u.age, nil
}

func (u *User) SetAge(a int) error {
	if a < 0 {
		return errNegative
	}
	u.age = a
	return nil
}

func (u *User) SetName(n string) { u.Name = n }

func (u *User) Boom() string { panic("boom") }

func (u *User) Swap(a, b int) {}

type Greeter interface {
	Greeting() string
}

const userType = "github.com/schernic/dsl-json/accessor_test.User"

var (
	userT = reflect.TypeOf((*User)(nil)).Elem()
	cfg   = config.DefaultConfig()
	force = config.NewConfig(config.WithForceAccess(true))
)

func field(t *testing.T, name string) accessor.Field {
	t.Helper()
	f, err := accessor.FieldOf(userT, name)
	require.NoError(t, err)
	return f
}

func method(t *testing.T, owner reflect.Type, name string) accessor.Method {
	t.Helper()
	m, err := accessor.MethodOf(owner, name)
	require.NoError(t, err)
	return m
}

// requireConfigErr asserts err is a ConfigurationError caused by cause.
func requireConfigErr(t *testing.T, err error, cause error) *accessor.ConfigurationError {
	t.Helper()
	require.Error(t, err)
	var ce *accessor.ConfigurationError
	require.True(t, errors.As(err, &ce), "got %T: %v", err, err)
	assert.True(t, accessor.IsConfigurationError(err))
	assert.True(t, errors.Is(err, cause), "cause: %v", err)
	return ce
}

func TestReadField(t *testing.T) {
	r := accessor.ReadField(field(t, "Name"), cfg)
	u := User{Name: "ada"}

	got, err := r.Read(u)
	require.NoError(t, err)
	assert.Equal(t, "ada", got)

	got, err = r.Read(&u)
	require.NoError(t, err)
	assert.Equal(t, "ada", got)
}

func TestReadField_Promoted(t *testing.T) {
	r := accessor.ReadField(field(t, "Created"), cfg)

	got, err := r.Read(&User{Audit: &Audit{Created: "today"}})
	require.NoError(t, err)
	assert.Equal(t, "today", got)

	_, err = r.Read(User{})
	requireConfigErr(t, err, accessor.ErrNilInstance)
}

func TestReadField_InvalidInstance(t *testing.T) {
	r := accessor.ReadField(field(t, "Name"), cfg)

	cases := []struct {
		name     string
		instance any
		cause    error
	}{
		{"nil", nil, accessor.ErrNilInstance},
		{"typed nil pointer", (*User)(nil), accessor.ErrNilInstance},
		{"other type", Audit{}, accessor.ErrInstanceType},
		{"pointer to pointer", new(*User), accessor.ErrInstanceType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Read(tc.instance)
			ce := requireConfigErr(t, err, tc.cause)
			assert.Equal(t, accessor.OpRead, ce.Op)
			assert.Equal(t, accessor.KindField, ce.Kind)
			assert.Equal(t, "Name", ce.Member)
			assert.Equal(t, userType, ce.Declaring)
			assert.Empty(t, ce.ValueType)
		})
	}
}

func TestUnexportedField(t *testing.T) {
	f := field(t, "age")

	_, err := accessor.ReadField(f, cfg).Read(User{age: 3})
	ce := requireConfigErr(t, err, accessor.ErrUnexported)
	assert.Contains(t, ce.Error(), "unable to read field age of "+userType)

	err = accessor.WriteField(f, cfg).Write(&User{}, 3)
	ce = requireConfigErr(t, err, accessor.ErrUnexported)
	assert.Contains(t, ce.Error(), "unable to set field age of "+userType)
}

func TestUnexportedField_ForceAccess(t *testing.T) {
	f := field(t, "age")
	u := &User{}

	require.NoError(t, accessor.WriteField(f, force).Write(u, 42))
	assert.Equal(t, 42, u.age)

	r := accessor.ReadField(f, force)
	got, err := r.Read(u)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = r.Read(*u)
	require.NoError(t, err, "non-addressable instances are copied")
	assert.Equal(t, 42, got)
}

func TestWriteField(t *testing.T) {
	u := &User{Tags: []string{"x"}}

	require.NoError(t, accessor.WriteField(field(t, "Name"), cfg).Write(u, "grace"))
	assert.Equal(t, "grace", u.Name)

	tags := accessor.WriteField(field(t, "Tags"), cfg)
	require.NoError(t, tags.Write(u, []string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, u.Tags)
	require.NoError(t, tags.Write(u, nil), "nil clears nillable fields")
	assert.Nil(t, u.Tags)
}

func TestWriteField_Invalid(t *testing.T) {
	w := accessor.WriteField(field(t, "Name"), cfg)

	cases := []struct {
		name     string
		instance any
		value    any
		cause    error
	}{
		{"value instance", User{}, "x", accessor.ErrNotAddressable},
		{"nil instance", nil, "x", accessor.ErrNilInstance},
		{"wrong instance", &Audit{}, "x", accessor.ErrInstanceType},
		{"wrong value", &User{}, 7, accessor.ErrValueType},
		{"nil into string", &User{}, nil, accessor.ErrValueType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ce := requireConfigErr(t, w.Write(tc.instance, tc.value), tc.cause)
			assert.Equal(t, accessor.OpWrite, ce.Op)
			assert.Equal(t, accessor.KindField, ce.Kind)
		})
	}
}

func TestReadMethod(t *testing.T) {
	greet := accessor.ReadMethod(method(t, userT, "Greeting"), cfg)
	for _, inst := range []any{User{Name: "ada"}, &User{Name: "ada"}} {
		got, err := greet.Read(inst)
		require.NoError(t, err)
		assert.Equal(t, "hi ada", got)
	}

	m := method(t, userT, "Age")
	assert.Equal(t, reflect.PointerTo(userT), m.Owner, "pointer receivers resolve on *T")
	age := accessor.ReadMethod(m, cfg)

	got, err := age.Read(&User{age: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	got, err = age.Read(User{age: 8})
	require.NoError(t, err, "values are copied for pointer receivers")
	assert.Equal(t, 8, got)
}

func TestReadMethod_InterfaceOwner(t *testing.T) {
	r := accessor.ReadMethod(method(t, reflect.TypeOf((*Greeter)(nil)).Elem(), "Greeting"), cfg)

	got, err := r.Read(User{Name: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "hi bob", got)

	_, err = r.Read(Audit{})
	ce := requireConfigErr(t, err, accessor.ErrInstanceType)
	assert.Equal(t, "github.com/schernic/dsl-json/accessor_test.Audit", ce.ValueType)
}

func TestReadMethod_Failures(t *testing.T) {
	age := accessor.ReadMethod(method(t, userT, "Age"), cfg)

	_, err := age.Read(&User{age: -1})
	ce := requireConfigErr(t, err, errNegative)
	assert.Empty(t, ce.ValueType, "a good receiver is not reported")
	assert.Equal(t, "unable to call method Age of "+userType+": negative age", ce.Error())

	_, err = age.Read(12)
	ce = requireConfigErr(t, err, accessor.ErrInstanceType)
	assert.Equal(t, "int", ce.ValueType)
	assert.Contains(t, ce.Error(), "with receiver of type int")

	_, err = age.Read(nil)
	ce = requireConfigErr(t, err, accessor.ErrNilInstance)
	assert.Equal(t, accessor.NilValue, ce.ValueType)

	_, err = accessor.ReadMethod(method(t, userT, "Boom"), cfg).Read(&User{})
	ce = requireConfigErr(t, err, accessor.ErrPanic)
	assert.Contains(t, ce.Error(), "boom")
}

func TestWriteMethod(t *testing.T) {
	u := &User{}

	require.NoError(t, accessor.WriteMethod(method(t, userT, "SetAge"), cfg).Write(u, 30))
	assert.Equal(t, 30, u.age)

	require.NoError(t, accessor.WriteMethod(method(t, userT, "SetName"), cfg).Write(u, "eve"))
	assert.Equal(t, "eve", u.Name)
}

func TestWriteMethod_Failures(t *testing.T) {
	w := accessor.WriteMethod(method(t, userT, "SetAge"), cfg)

	cases := []struct {
		name      string
		instance  any
		value     any
		cause     error
		valueType string
	}{
		{"returned error", &User{}, -1, errNegative, "int"},
		{"wrong value type", &User{}, "old", accessor.ErrValueType, "string"},
		{"nil value", &User{}, nil, accessor.ErrValueType, accessor.NilValue},
		{"value receiver", User{}, 1, accessor.ErrNotAddressable, "int"},
		{"nil instance", nil, 1, accessor.ErrNilInstance, "int"},
		{"pointer value", &User{}, &User{}, accessor.ErrValueType, "*" + userType},
		{"slice value", &User{}, []User{}, accessor.ErrValueType, userType + "[]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ce := requireConfigErr(t, w.Write(tc.instance, tc.value), tc.cause)
			assert.Equal(t, accessor.OpWrite, ce.Op)
			assert.Equal(t, accessor.KindMethod, ce.Kind)
			assert.Equal(t, tc.valueType, ce.ValueType)
			assert.Contains(t, ce.Error(), "unable to call method SetAge of "+userType+" setting value of type "+tc.valueType)
		})
	}
}

func TestMethodSignatures(t *testing.T) {
	_, err := accessor.ReadMethod(method(t, userT, "SetName"), cfg).Read(&User{})
	requireConfigErr(t, err, accessor.ErrSignature)

	err = accessor.WriteMethod(method(t, userT, "Greeting"), cfg).Write(&User{}, "x")
	requireConfigErr(t, err, accessor.ErrSignature)

	err = accessor.WriteMethod(method(t, userT, "Swap"), cfg).Write(&User{}, 1)
	requireConfigErr(t, err, accessor.ErrSignature)

	_, err = accessor.ReadMethod(accessor.Method{}, cfg).Read(&User{})
	requireConfigErr(t, err, accessor.ErrNotFound)
}

func TestHandles(t *testing.T) {
	_, err := accessor.FieldOf(userT, "Missing")
	assert.True(t, errors.Is(err, accessor.ErrNotFound))

	_, err = accessor.FieldOf(reflect.TypeOf((*int)(nil)).Elem(), "Name")
	assert.True(t, errors.Is(err, accessor.ErrNotFound))

	_, err = accessor.MethodOf(userT, "Missing")
	assert.True(t, errors.Is(err, accessor.ErrNotFound))

	_, err = accessor.MethodOf(nil, "Greeting")
	assert.True(t, errors.Is(err, accessor.ErrNotFound))

	f, err := accessor.FieldOf(reflect.PointerTo(userT), "Name")
	require.NoError(t, err)
	assert.Equal(t, userT, f.Owner)

	sf, _ := userT.FieldByName("Tags")
	nf := accessor.NewField(reflect.PointerTo(userT), sf)
	assert.Equal(t, userT, nf.Owner)

	rm, _ := userT.MethodByName("Greeting")
	got, err := accessor.ReadMethod(accessor.NewMethod(userT, rm), cfg).Read(User{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, "hi x", got)
}

func TestConfigurationErrorMatching(t *testing.T) {
	_, err := accessor.ReadField(field(t, "Name"), cfg).Read(nil)
	wrapped := errors.Wrap(err, "decoding user")

	assert.True(t, accessor.IsConfigurationError(wrapped))
	assert.True(t, errors.Is(wrapped, &accessor.ConfigurationError{Op: accessor.OpRead}))
	assert.True(t, errors.Is(wrapped, &accessor.ConfigurationError{Kind: accessor.KindField}))
	assert.False(t, errors.Is(wrapped, &accessor.ConfigurationError{Op: accessor.OpWrite}))
	assert.False(t, accessor.IsConfigurationError(errNegative))
	assert.False(t, accessor.IsConfigurationError(nil))
}

func TestFuncAdapters(t *testing.T) {
	r := accessor.ReaderFunc(func(instance any) (any, error) { return instance, nil })
	got, err := r.Read(5)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	var stored any
	w := accessor.WriterFunc(func(_, value any) error { stored = value; return nil })
	require.NoError(t, w.Write(nil, "v"))
	assert.Equal(t, "v", stored)
}

func TestConcurrentAccess(t *testing.T) {
	r := accessor.ReadMethod(method(t, userT, "Greeting"), cfg)
	fr := accessor.ReadField(field(t, "Name"), cfg)
	u := &User{Name: "n"}

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			if _, err := r.Read(u); err != nil {
				return err
			}
			_, err := fr.Read(u)
			return err
		})
	}
	require.NoError(t, g.Wait())
}
