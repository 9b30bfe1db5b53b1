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

// Package generics synthesizes descriptors for type shapes that Go's reflect
// package cannot construct at runtime: parameterized instantiations of a
// generic container and arrays of such instantiations.
//
// # Identity
//
// Descriptors have structural identity. Two *ParameterizedType values are
// Equal when their raw Class is the same and their type arguments are Equal
// element-wise, in order; two *GenericArrayType values are Equal when their
// components are. Display names never participate, so Hash and Equal agree
// regardless of naming configuration.
//
// # Canonical names
//
// Every descriptor is cached under a canonical name built from the raw
// container name and the canonical names of its arguments:
//
//	example.com/x.List<map<string, example.com/x.Foo>>
//	slice<int[]>
//	example.com/x.List<string>[]
//
// Plain reflect.Type arguments are named by the configured resolver, which
// renders slices and arrays with one bracket suffix per dimension.
//
// # Erasure
//
// A raw container is the *Class obtained from Erase. Generic instantiations
// erase to their declared name and arity; unnamed builtin containers erase to
// slice, ptr, chan, array[N] (one parameter) and map (two parameters).
// Classes are interned, so raw equality is pointer equality.
package generics
