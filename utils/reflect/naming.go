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

package reflect

import (
	"path"
	"reflect"
	"strconv"
	"strings"
)

// TopType is the universal top type: the empty interface.
var TopType = reflect.TypeOf((*any)(nil)).Elem()

// IsTopType reports whether t carries no static information beyond "any value".
func IsTopType(t reflect.Type) bool {
	return t == TopType
}

// QualifiedName renders t with its full import path and bracket-suffix array
// notation, one suffix per dimension, outermost first:
//
//	Foo            -> "example.com/x.Foo"
//	[][4]int       -> "int[][4]"
//	G[int]         -> "example.com/x.G[int]"
//	map[string]*T  -> "map[string]*example.com/x.T"
//	func(T) error  -> "func(example.com/x.T) error"
//
// Unnamed composites are rendered element by element, so every named type
// inside them keeps its import path and distinct types get distinct names.
// When short is set only the last package path element is kept, which may
// make distinct types share a name.
func QualifiedName(t reflect.Type, short bool) string {
	if t == nil {
		return ""
	}

	var dims []string
	for t.Name() == "" && (t.Kind() == reflect.Slice || t.Kind() == reflect.Array) {
		dims = append(dims, dim(t))
		t = t.Elem()
	}

	var sb strings.Builder
	writeType(&sb, t, short)
	for _, d := range dims {
		sb.WriteString(d)
	}
	return sb.String()
}

func dim(t reflect.Type) string {
	if t.Kind() == reflect.Slice {
		return "[]"
	}
	return "[" + strconv.Itoa(t.Len()) + "]"
}

// writeType renders t in Go syntax with qualified named leaves.
// Arrays nested in composites use prefix notation to stay unambiguous.
func writeType(sb *strings.Builder, t reflect.Type, short bool) {
	if name := t.Name(); name != "" {
		sb.WriteString(qualify(t.PkgPath(), name, short))
		return
	}

	switch t.Kind() {
	case reflect.Pointer:
		sb.WriteByte('*')
		writeType(sb, t.Elem(), short)
	case reflect.Slice, reflect.Array:
		sb.WriteString(dim(t))
		writeType(sb, t.Elem(), short)
	case reflect.Map:
		sb.WriteString("map[")
		writeType(sb, t.Key(), short)
		sb.WriteByte(']')
		writeType(sb, t.Elem(), short)
	case reflect.Chan:
		writeChan(sb, t, short)
	case reflect.Func:
		sb.WriteString("func")
		writeSignature(sb, t, short)
	case reflect.Interface:
		writeInterface(sb, t, short)
	case reflect.Struct:
		writeStruct(sb, t, short)
	default:
		sb.WriteString(t.String())
	}
}

func writeChan(sb *strings.Builder, t reflect.Type, short bool) {
	e := t.Elem()
	switch t.ChanDir() {
	case reflect.RecvDir:
		sb.WriteString("<-chan ")
	case reflect.SendDir:
		sb.WriteString("chan<- ")
	default:
		sb.WriteString("chan ")
		if e.Name() == "" && e.Kind() == reflect.Chan && e.ChanDir() == reflect.RecvDir {
			sb.WriteByte('(')
			writeType(sb, e, short)
			sb.WriteByte(')')
			return
		}
	}
	writeType(sb, e, short)
}

// writeSignature renders "(in) out" of a func type.
func writeSignature(sb *strings.Builder, t reflect.Type, short bool) {
	sb.WriteByte('(')
	for i := 0; i < t.NumIn(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		in := t.In(i)
		if t.IsVariadic() && i == t.NumIn()-1 {
			sb.WriteString("...")
			in = in.Elem()
		}
		writeType(sb, in, short)
	}
	sb.WriteByte(')')

	switch t.NumOut() {
	case 0:
	case 1:
		sb.WriteByte(' ')
		writeType(sb, t.Out(0), short)
	default:
		sb.WriteString(" (")
		for i := 0; i < t.NumOut(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeType(sb, t.Out(i), short)
		}
		sb.WriteByte(')')
	}
}

func writeInterface(sb *strings.Builder, t reflect.Type, short bool) {
	if t.NumMethod() == 0 {
		sb.WriteString("interface {}")
		return
	}
	sb.WriteString("interface { ")
	for i := 0; i < t.NumMethod(); i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		m := t.Method(i)
		sb.WriteString(qualify(m.PkgPath, m.Name, short))
		writeSignature(sb, m.Type, short)
	}
	sb.WriteString(" }")
}

func writeStruct(sb *strings.Builder, t reflect.Type, short bool) {
	if t.NumField() == 0 {
		sb.WriteString("struct {}")
		return
	}
	sb.WriteString("struct { ")
	for i := 0; i < t.NumField(); i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		f := t.Field(i)
		if !f.Anonymous {
			// unexported field names belong to their package
			sb.WriteString(qualify(f.PkgPath, f.Name, short))
			sb.WriteByte(' ')
		}
		writeType(sb, f.Type, short)
		if f.Tag != "" {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Quote(string(f.Tag)))
		}
	}
	sb.WriteString(" }")
}

func qualify(pkgPath, name string, short bool) string {
	if pkgPath == "" {
		return name
	}
	if short {
		pkgPath = path.Base(pkgPath)
	}
	return pkgPath + "." + name
}

// StripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func StripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}

// TypeArgCount returns the number of type arguments in a generic
// instantiation name such as "Pair[int,map[string]int]", or 0 when s carries
// no instantiation suffix. Commas nested in brackets, parentheses, braces or
// quoted struct tags are not separators.
func TypeArgCount(s string) int {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return 0
	}

	count, depth := 1, 0
	inQuote := false
	for i := open + 1; i < len(s); i++ {
		c := s[i]
		if inQuote {
			switch c {
			case '\\':
				i++
			case '"':
				inQuote = false
			}
			continue
		}
		switch c {
		case '"':
			inQuote = true
		case '[', '(', '{':
			depth++
		case ')', '}':
			depth--
		case ']':
			if depth == 0 {
				if i == open+1 {
					return 0
				}
				return count
			}
			depth--
		case ',':
			if depth == 0 {
				count++
			}
		}
	}
	return count
}
