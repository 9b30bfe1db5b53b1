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

package cache_test

import (
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schernic/dsl-json/apis"
	"github.com/schernic/dsl-json/cache"
)

type T0 struct{}
type T1 struct{}

func TestLoadOrStore_FirstWins(t *testing.T) {
	c := cache.New()

	_, ok := c.Load("x")
	assert.False(t, ok)

	got, loaded := c.LoadOrStore("x", reflect.TypeOf(T0{}))
	assert.False(t, loaded)
	assert.Equal(t, reflect.TypeOf(T0{}), got)

	got, loaded = c.LoadOrStore("x", reflect.TypeOf(T1{}))
	assert.True(t, loaded)
	assert.Equal(t, reflect.TypeOf(T0{}), got, "first stored descriptor must survive")

	v, ok := c.Load("x")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(T0{}), v)
	assert.Equal(t, 1, c.Count())
}

func TestEntriesAndReset(t *testing.T) {
	c := cache.New()
	c.LoadOrStore("a", reflect.TypeOf(T0{}))
	c.LoadOrStore("b", reflect.TypeOf(T1{}))

	snap := c.Entries()
	require.Len(t, snap, 2)

	names := map[string]apis.Type{}
	for _, e := range snap {
		names[e.Name] = e.Type
	}
	assert.Equal(t, reflect.TypeOf(T0{}), names["a"])
	assert.Equal(t, reflect.TypeOf(T1{}), names["b"])

	c.Reset()
	assert.Equal(t, 0, c.Count())
	assert.Empty(t, c.Entries())
	assert.Len(t, snap, 2, "snapshot must not be affected by Reset")
}

// TestConcurrentLoadOrStore hammers a small key space and checks that every
// caller observes the single surviving value and Count matches the key space.
func TestConcurrentLoadOrStore(t *testing.T) {
	c := cache.New()
	const keys = 16
	workers := runtime.GOMAXPROCS(0) * 4

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won = map[string]apis.Type{}
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				name := fmt.Sprintf("k%d", (i+id)%keys)
				// distinct candidate per worker so a lost update would be visible
				var cand apis.Type = reflect.TypeOf(T0{})
				if id%2 == 1 {
					cand = reflect.TypeOf(T1{})
				}
				got, _ := c.LoadOrStore(name, cand)

				mu.Lock()
				if prev, ok := won[name]; ok && prev != got {
					t.Errorf("key %s: observed %v and %v", name, prev, got)
				}
				won[name] = got
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, keys, c.Count())
	assert.Len(t, c.Entries(), keys)
}
