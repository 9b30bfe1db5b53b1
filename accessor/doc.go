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

// Package accessor reads and writes object state through struct fields or
// accessor methods behind the apis.Reader and apis.Writer capabilities.
//
// Readers and writers are built once from a member handle and reused. Every
// failure, whether an unexported member, a mismatched instance or value, an
// error returned by the member, or a panic inside it, surfaces as a single
// *ConfigurationError naming the operation, the member and its declaring type.
//
//	f, _ := accessor.FieldOf(reflect.TypeFor[User](), "Name")
//	name, err := accessor.ReadField(f, cfg).Read(&user)
//	if accessor.IsConfigurationError(err) {
//		...
//	}
//
// Description renders any apis.Type for diagnostics, downgrading once per
// process to String() when the host cannot provide rich type names.
package accessor
