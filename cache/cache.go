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

// Package cache holds canonical type descriptors for the process lifetime.
//
// The cache is lock-free: lookups are sync.Map loads and inserts use
// LoadOrStore, so two goroutines racing to build the same canonical name both
// construct a descriptor but only the first stored one survives. Descriptors
// for one canonical name are structurally equal, so either result is valid
// for either caller.
package cache

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/schernic/dsl-json/apis"
)

// New constructs an empty descriptor cache.
func New() apis.Cache {
	return &cache{}
}

type cache struct {
	// m maps canonical name to descriptor.
	m sync.Map // map[string]apis.Type
	// count tracks stored entries; only the winning LoadOrStore increments it.
	count atomic.Int64
}

// Ensure cache implements apis.Cache.
var _ apis.Cache = (*cache)(nil)

// Load returns the descriptor cached under name, if any.
func (c *cache) Load(name string) (apis.Type, bool) {
	if v, ok := c.m.Load(name); ok {
		return v.(apis.Type), true
	}
	return nil, false
}

// LoadOrStore returns the surviving descriptor for name.
func (c *cache) LoadOrStore(name string, t apis.Type) (apis.Type, bool) {
	v, loaded := c.m.LoadOrStore(name, t)
	if !loaded {
		c.count.Inc()
	}
	return v.(apis.Type), loaded
}

// Entries returns a snapshot for diagnostics (order is unspecified).
func (c *cache) Entries() []apis.CacheEntry {
	entries := make([]apis.CacheEntry, 0, c.Count())
	c.m.Range(func(key, value any) bool {
		entries = append(entries, apis.CacheEntry{
			Name: key.(string),
			Type: value.(apis.Type),
		})
		return true
	})
	return entries
}

// Count returns the number of cached descriptors.
func (c *cache) Count() int {
	return int(c.count.Load())
}

// Reset drops every cached descriptor. Inserts racing with Reset may survive it.
func (c *cache) Reset() {
	c.m.Range(func(key, _ any) bool {
		if _, ok := c.m.LoadAndDelete(key); ok {
			c.count.Dec()
		}
		return true
	})
}
