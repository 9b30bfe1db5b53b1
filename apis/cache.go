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

// Cache maps canonical names to type descriptors for the process lifetime.
// Implementations must be safe for concurrent use and hold at most one entry
// per name.
type Cache interface {
	// Load returns the descriptor cached under name, if any.
	Load(name string) (Type, bool)
	// LoadOrStore returns the existing descriptor for name if present.
	// Otherwise it stores t and returns it. loaded reports whether t lost.
	LoadOrStore(name string, t Type) (actual Type, loaded bool)
	// Entries returns a snapshot for diagnostics (order is unspecified).
	Entries() []CacheEntry
	// Count returns the number of cached descriptors.
	Count() int
	// Reset drops every cached descriptor.
	Reset()
}

// CacheEntry is a single (name, descriptor) pair in a Cache snapshot.
type CacheEntry struct {
	Name string
	Type Type
}
