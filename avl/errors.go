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

package avl

import "errors"

// Lookup and mutation outcomes. None of these leave the tree modified.
var (
	// ErrDuplicateKey indicates that an inserted key is already present.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrKeyNotFound indicates that the target key is not in the tree.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNoSuccessor indicates that the key has no greater neighbour.
	ErrNoSuccessor = errors.New("no successor")

	// ErrNoPredecessor indicates that the key has no lesser neighbour.
	ErrNoPredecessor = errors.New("no predecessor")

	// ErrEmptyTree indicates that a query needs at least one key.
	ErrEmptyTree = errors.New("tree is empty")
)

// ErrCorrupt is wrapped by Check when a structural invariant does not hold.
var ErrCorrupt = errors.New("tree invariant violated")
