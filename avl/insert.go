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

// Insert adds key to the tree. An existing key is left in place and
// ErrDuplicateKey is returned.
func (tree *Tree) Insert(key int) error {
	if _, err := tree.Find(key); err == nil {
		tree.warnf("insert %d: key already present, tree unchanged", key)
		return ErrDuplicateKey
	}

	tree.root = tree.insert(tree.root, key)
	tree.count++
	return nil
}

// insert returns the root of the subtree after adding key. Equal keys would
// route right, but the duplicate check in Insert rules them out.
func (tree *Tree) insert(node *Node, key int) *Node {
	if node == nil {
		tree.debugf("insert %d as leaf", key)
		return newNode(key)
	}

	if key < node.key {
		node.left = tree.insert(node.left, key)
	} else {
		node.right = tree.insert(node.right, key)
	}

	recomputeHeight(node)

	// One rotation at the lowest unbalanced node restores the whole tree, so
	// the side the new key went to selects single versus double.
	balance := balanceFactor(node)
	if balance > 1 {
		if key < node.left.key {
			return tree.rotateRight(node)
		}
		return tree.rotateLeftRight(node)
	} else if balance < -1 {
		if key >= node.right.key {
			return tree.rotateLeft(node)
		}
		return tree.rotateRightLeft(node)
	}

	return node
}
