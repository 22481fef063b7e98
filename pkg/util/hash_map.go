// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import "slices"

// Hasher provides a generic definition of a hashing function suitable for use
// within a HashMap.  Equality is included because hash codes are permitted to
// collide, in which case keys fall back on a structural comparison.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

// HashMap defines a generic map implementation keyed by Hasher values.  This
// is a true hashtable in that collisions are handled gracefully using buckets,
// rather than simply discarding them.
type HashMap[K Hasher[K], V any] struct {
	// buckets maps hashcodes to *buckets* of entries.
	buckets map[uint64]hashMapBucket[K, V]
}

// NewHashMap creates a new HashMap with a given underlying capacity.
func NewHashMap[K Hasher[K], V any](size uint) *HashMap[K, V] {
	buckets := make(map[uint64]hashMapBucket[K, V], size)
	return &HashMap[K, V]{buckets}
}

// Size returns the number of unique keys stored in this HashMap.
func (p *HashMap[K, V]) Size() uint {
	count := uint(0)
	for _, b := range p.buckets {
		count += uint(len(b.keys))
	}

	return count
}

// Insert a new entry into this map, returning true if the key was already
// contained and false otherwise.
func (p *HashMap[K, V]) Insert(key K, value V) bool {
	hash := key.Hash()
	// Lookup enclosing bucket
	bucket := p.buckets[hash]
	// Insert new entry
	r := bucket.insert(key, value)
	// Update map
	p.buckets[hash] = bucket
	// Done
	return r
}

// ContainsKey checks whether the given key is contained within this map, or
// not.
func (p *HashMap[K, V]) ContainsKey(key K) bool {
	if bucket, ok := p.buckets[key.Hash()]; ok {
		return bucket.containsKey(key)
	}

	return false
}

// Get the value associated with a given key, or return false otherwise.
func (p *HashMap[K, V]) Get(key K) (V, bool) {
	var empty V
	// Look for enclosing bucket
	if bucket, ok := p.buckets[key.Hash()]; ok {
		return bucket.get(key)
	}

	return empty, false
}

// Clone this map, ensuring the clone can be updated independently.  Values are
// copied shallowly.
func (p *HashMap[K, V]) Clone() *HashMap[K, V] {
	buckets := make(map[uint64]hashMapBucket[K, V], len(p.buckets))
	//
	for h, b := range p.buckets {
		buckets[h] = hashMapBucket[K, V]{slices.Clone(b.keys), slices.Clone(b.values)}
	}
	//
	return &HashMap[K, V]{buckets}
}

// Each applies a given function to every key-value pair in this map.  The
// order in which entries are visited is unspecified.
func (p *HashMap[K, V]) Each(fn func(K, V)) {
	for _, b := range p.buckets {
		for i, k := range b.keys {
			fn(k, b.values[i])
		}
	}
}

// ============================================================================
// Bucket
// ============================================================================

type hashMapBucket[K Hasher[K], V any] struct {
	keys   []K
	values []V
}

// Insert a new entry into this bucket, returning true if the key was already
// present.
func (b *hashMapBucket[K, V]) insert(key K, value V) bool {
	// Determine whether key already present
	for i, k := range b.keys {
		if key.Equals(k) {
			b.values[i] = value
			return true
		}
	}
	// Append entry
	b.keys = append(b.keys, key)
	b.values = append(b.values, value)
	// Key not present
	return false
}

// Check whether this bucket contains a given key, or not.
func (b *hashMapBucket[K, V]) containsKey(key K) bool {
	for _, k := range b.keys {
		if key.Equals(k) {
			return true
		}
	}

	return false
}

// Get entry from bucket, or return false otherwise.
func (b *hashMapBucket[K, V]) get(key K) (V, bool) {
	var empty V

	for i, k := range b.keys {
		if key.Equals(k) {
			return b.values[i], true
		}
	}

	return empty, false
}
