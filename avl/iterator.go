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

import "iter"

// All returns an iterator over the keys in ascending order. The tree must not
// be modified while the iteration is in progress.
func (tree *Tree) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		walk(tree.root, yield)
	}
}

// walk visits left, self, right and reports false once yield asks to stop.
func walk(node *Node, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	return walk(node.left, yield) && yield(node.key) && walk(node.right, yield)
}

// Keys returns every key in ascending order.
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.count)
	for key := range tree.All() {
		keys = append(keys, key)
	}
	return keys
}
