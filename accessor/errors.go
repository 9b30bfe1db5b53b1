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
	"strings"

	"github.com/cockroachdb/errors"
)

// Op is the kind of access that failed.
type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// MemberKind tells fields from methods.
type MemberKind string

const (
	KindField  MemberKind = "field"
	KindMethod MemberKind = "method"
)

// NilValue marks a nil instance or value in ConfigurationError.ValueType.
const NilValue = "nil"

// Causes wrapped by ConfigurationError. Match them with errors.Is.
var (
	ErrNotFound       = errors.New("dsljson(accessor): member not found")
	ErrUnexported     = errors.New("dsljson(accessor): member is not exported")
	ErrNilInstance    = errors.New("dsljson(accessor): nil instance")
	ErrInstanceType   = errors.New("dsljson(accessor): instance type mismatch")
	ErrValueType      = errors.New("dsljson(accessor): value type mismatch")
	ErrSignature      = errors.New("dsljson(accessor): unsupported method signature")
	ErrPanic          = errors.New("dsljson(accessor): member panicked")
	ErrNotAddressable = errors.New("dsljson(accessor): instance is not addressable")
)

// ConfigurationError is the single error surfaced by readers and writers.
type ConfigurationError struct {
	Op        Op
	Kind      MemberKind
	Member    string
	Declaring string
	// ValueType is the runtime type of the supplied value, NilValue, or empty
	// when the failure does not depend on it.
	ValueType string
	Cause     error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	var b strings.Builder

	b.WriteString("unable to ")
	switch {
	case e.Kind == KindMethod:
		b.WriteString("call")
	case e.Op == OpWrite:
		b.WriteString("set")
	default:
		b.WriteString("read")
	}
	b.WriteByte(' ')
	b.WriteString(string(e.Kind))
	b.WriteByte(' ')
	b.WriteString(e.Member)
	b.WriteString(" of ")
	b.WriteString(e.Declaring)

	if e.ValueType != "" {
		if e.Op == OpWrite {
			b.WriteString(" setting value of type ")
		} else {
			b.WriteString(" with receiver of type ")
		}
		b.WriteString(e.ValueType)
	}

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a ConfigurationError for the same operation on
// the same kind of member. Empty fields in target match anything.
func (e *ConfigurationError) Is(target error) bool {
	t, ok := target.(*ConfigurationError)
	if !ok {
		return false
	}
	return (t.Op == "" || t.Op == e.Op) && (t.Kind == "" || t.Kind == e.Kind)
}

// IsConfigurationError reports whether err is, or wraps, a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
