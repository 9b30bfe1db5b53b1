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

// Config carries read-only knobs for naming and member access.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// ForceAccess lets accessors reach unexported struct fields of
	// addressable instances. Without it such fields fail with a
	// configuration error.
	ForceAccess bool

	// ShortPackageNames renders only the last package path element in
	// canonical names ("x.Foo" instead of "example.com/x.Foo").
	ShortPackageNames bool

	// MinTypeNameVersion is the lowest host Go version (semver) on which
	// the rich type-name formatter is used.
	MinTypeNameVersion string
}
