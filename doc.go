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

// Package dsljson is the process-wide entry point to runtime type
// descriptors and member accessors used by reflection-based serialization.
//
// Go's reflect package cannot instantiate a generic type at runtime and has
// no first-class type parameters. dsljson fills that gap with descriptors:
// parameterized types such as "slice<string>" or "example.com/x.List<int>",
// generic arrays of those, and type variables. Descriptors are canonical:
// building the same shape twice yields equal values, and a process-wide
// cache keyed by canonical name hands out a single instance per shape.
//
// Alongside descriptors, dsljson exposes uniform readers and writers over
// struct fields and accessor methods, reporting every failure as one
// *accessor.ConfigurationError.
//
// # Design
//
// The package holds a read-mostly global snapshot (state):
//
//   - Config: naming and access rules (short package names, forced access
//     to unexported fields, the minimum host version for rich type names).
//
//   - Registry: explicit canonical names pinned for reflect.Types, e.g. a
//     framework registering "money" for its decimal type.
//
//   - Resolver: answers "what is the canonical name of this type?" by
//     trying, in order, a descriptor's own TypeName, the Registry, and a
//     reflect-derived qualified name.
//
//   - Cache: the descriptor cache. Lookups and inserts are lock-free;
//     racing builders of one name may both construct, one value survives.
//
//   - Builder: the factory that constructs Registry, Resolver and Cache
//     for a Config, migrating registry entries from the previous snapshot.
//
// Readers load the current snapshot atomically and never lock:
//
//	list, err := dsljson.MakeParameterized(reflect.TypeFor[[]any](), reflect.TypeFor[string]())
//	arr, err := dsljson.MakeArray(list)
//
// Writers (SetConfig, SetBuilder, SetRegistry, SetResolver, SetCache,
// SetAll) take a short build mutex, rebuild the unpinned components and
// publish a new snapshot.
//
// # Pinning
//
// SetRegistry, SetResolver and SetCache install a component and pin it, so
// later rebuilds keep it until the matching Unpin call. An unpinned cache is
// rebuilt with the resolver because canonical names depend on the resolver.
//
// # Logging
//
// Diagnostics go through go.uber.org/zap and are discarded until a logger
// is installed with log.SetLogger.
package dsljson
