// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cache is the bounded concurrent result cache used by the
// single-PAN fast path. Eviction is a coarse size guard, not LRU: when
// the map reaches its ceiling a fixed fraction of entries is dropped in
// map iteration order. Callers must not rely on any entry surviving.
package cache

import (
	"sync"

	"cardscope/card"
)

// Key identifies one cached classification: the sanitized PAN plus
// everything that changes the produced result.
type Key struct {
	PAN   string
	Token bool
	Trace bool
	Lang  string
}

// DefaultCapacity is the entry ceiling before eviction kicks in.
const DefaultCapacity = 1024

// evictDivisor: one quarter of the entries go on each eviction sweep.
const evictDivisor = 4

// Cache is safe for concurrent use without caller-side locking.
// Stored results are never mutated after insertion, so readers always
// see fully populated entries.
type Cache struct {
	mu       sync.RWMutex
	entries  map[Key]*card.CardResult
	capacity int
}

// New creates a cache; capacity <= 0 selects DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		entries:  make(map[Key]*card.CardResult),
		capacity: capacity,
	}
}

// Get returns the cached result for key, or nil.
func (c *Cache) Get(key Key) *card.CardResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[key]
}

// Put inserts a completed result. Insertion is idempotent by key; an
// existing entry is left in place. At the ceiling a quarter of the
// entries is evicted first.
func (c *Cache) Put(key Key, res *card.CardResult) {
	if res == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		return
	}
	if len(c.entries) >= c.capacity {
		drop := c.capacity / evictDivisor
		if drop < 1 {
			drop = 1
		}
		for k := range c.entries {
			delete(c.entries, k)
			drop--
			if drop == 0 {
				break
			}
		}
	}
	c.entries[key] = res
}

// Clear drops every entry. Intended for use after the prefix tables
// are swapped.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]*card.CardResult)
}

// Len reports the current entry count.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
