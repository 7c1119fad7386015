// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package keyset wraps an avl.Tree with a single reader/writer lock and a
// Bloom filter that answers most lookups for absent keys without touching
// the tree.
package keyset

import (
	"encoding/binary"
	"io"
	"log"
	"sync"

	"github.com/willf/bloom"

	"github.com/cybrota/avltree/avl"
)

const (
	defaultExpectedKeys      = 1024
	defaultFalsePositiveRate = 0.01
)

// Options tune a Set. Zero values select the defaults.
type Options struct {
	ExpectedKeys      uint
	FalsePositiveRate float64
	Logger            *log.Logger
}

// Stats reports filter effectiveness since the Set was created or reset.
type Stats struct {
	Keys           int
	Height         int
	FilterRejects  uint64 // lookups answered by the filter alone
	TreeLookups    uint64 // lookups that had to descend the tree
	FilterRebuilds uint64
}

// Set is an ordered set of ints, safe for concurrent use. The whole tree
// sits behind one lock.
type Set struct {
	mu      sync.RWMutex
	tree    *avl.Tree
	filter  *bloom.BloomFilter
	options Options

	// removals since the filter was last rebuilt; their bits are stale
	staleBits int

	// counters are updated under a read lock, so they have their own mutex
	statsMu sync.Mutex
	stats   Stats
}

// New creates an empty Set.
func New(options Options) *Set {
	if options.ExpectedKeys == 0 {
		options.ExpectedKeys = defaultExpectedKeys
	}
	if options.FalsePositiveRate <= 0 || options.FalsePositiveRate >= 1 {
		options.FalsePositiveRate = defaultFalsePositiveRate
	}

	return &Set{
		tree:    avl.New(avl.WithLogger(options.Logger)),
		filter:  bloom.NewWithEstimates(options.ExpectedKeys, options.FalsePositiveRate),
		options: options,
	}
}

func encodeKey(key int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(key))
	return buf[:]
}

// mayContain must be called with at least the read lock held.
func (s *Set) mayContain(key int) bool {
	hit := s.filter.Test(encodeKey(key))

	s.statsMu.Lock()
	if hit {
		s.stats.TreeLookups++
	} else {
		s.stats.FilterRejects++
	}
	s.statsMu.Unlock()

	return hit
}

// rebuildFilter must be called with the write lock held.
func (s *Set) rebuildFilter() {
	expected := max(s.options.ExpectedKeys, uint(s.tree.Count()))
	s.filter = bloom.NewWithEstimates(expected, s.options.FalsePositiveRate)
	for key := range s.tree.All() {
		s.filter.Add(encodeKey(key))
	}
	s.staleBits = 0

	s.statsMu.Lock()
	s.stats.FilterRebuilds++
	s.statsMu.Unlock()
}

// Add inserts key, returning avl.ErrDuplicateKey if it is already present.
func (s *Set) Add(key int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tree.Insert(key); err != nil {
		return err
	}
	s.filter.Add(encodeKey(key))
	return nil
}

// Remove deletes key, returning avl.ErrKeyNotFound if it is absent.
func (s *Set) Remove(key int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.mayContain(key) {
		return avl.ErrKeyNotFound
	}
	if err := s.tree.Delete(key); err != nil {
		return err
	}

	// Filters cannot forget keys; rebuild once stale bits dominate.
	s.staleBits++
	if s.staleBits > s.tree.Count()/2 && s.staleBits > 16 {
		s.rebuildFilter()
	}
	return nil
}

// Contains reports whether key is in the set.
func (s *Set) Contains(key int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mayContain(key) && s.tree.Contains(key)
}

// Entry is a copy of a node's fields taken under the lock.
type Entry struct {
	Key     int
	Height  int
	Balance int
}

// Find returns a snapshot of the node holding key.
func (s *Set) Find(key int) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.mayContain(key) {
		return Entry{}, avl.ErrKeyNotFound
	}
	node, err := s.tree.Find(key)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Key: node.Key(), Height: node.Height(), Balance: node.Balance()}, nil
}

// Successor returns the smallest key in key's right subtree; see
// avl.Tree.Successor.
func (s *Set) Successor(key int) (int, error) {
	return s.neighbour(key, (*avl.Tree).Successor)
}

// Predecessor returns the largest key in key's left subtree.
func (s *Set) Predecessor(key int) (int, error) {
	return s.neighbour(key, (*avl.Tree).Predecessor)
}

// Next returns the in-order successor of key.
func (s *Set) Next(key int) (int, error) {
	return s.neighbour(key, (*avl.Tree).Next)
}

// Prev returns the in-order predecessor of key.
func (s *Set) Prev(key int) (int, error) {
	return s.neighbour(key, (*avl.Tree).Prev)
}

func (s *Set) neighbour(key int, query func(*avl.Tree, int) (int, error)) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.mayContain(key) {
		return 0, avl.ErrKeyNotFound
	}
	return query(s.tree, key)
}

// Min returns the lowest key or avl.ErrEmptyTree.
func (s *Set) Min() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Min()
}

// Max returns the highest key or avl.ErrEmptyTree.
func (s *Set) Max() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Max()
}

// Keys returns a snapshot of the keys in ascending order.
func (s *Set) Keys() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Keys()
}

// Len returns the number of keys.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Count()
}

// Height returns the height of the underlying tree.
func (s *Set) Height() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Height()
}

// RootKey returns the key at the root of the tree.
func (s *Set) RootKey() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	root := s.tree.Root()
	if root == nil {
		return 0, false
	}
	return root.Key(), true
}

// Check verifies the tree invariants and that every key passes the filter.
func (s *Set) Check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.tree.Check(); err != nil {
		return err
	}
	for key := range s.tree.All() {
		if !s.filter.Test(encodeKey(key)) {
			return fmtFilterMiss(key)
		}
	}
	return nil
}

// Print draws the tree to w and returns its depth.
func (s *Set) Print(w io.Writer) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Print(w)
}

// Reset drops every key and clears the counters.
func (s *Set) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree = avl.New(avl.WithLogger(s.options.Logger))
	s.filter = bloom.NewWithEstimates(s.options.ExpectedKeys, s.options.FalsePositiveRate)
	s.staleBits = 0

	s.statsMu.Lock()
	s.stats = Stats{}
	s.statsMu.Unlock()
}

// Stats returns a copy of the counters.
func (s *Set) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	stats := s.stats
	stats.Keys = s.tree.Count()
	stats.Height = s.tree.Height()
	return stats
}
