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

package apis

// Type is any type shape understood by the descriptor synthesizer.
//
// A plain reflect.Type satisfies Type directly. Shapes reflect cannot build at
// runtime (parameterized types, generic arrays, type variables) are provided
// by the generics package.
type Type interface {
	String() string
}

// TypeNamer is implemented by shapes that can render their own canonical,
// fully-qualified name. It is the rich formatter consulted before falling
// back to String().
type TypeNamer interface {
	TypeName() string
}
