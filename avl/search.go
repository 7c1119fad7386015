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

// Find returns the node holding key, or ErrKeyNotFound.
func (tree *Tree) Find(key int) (*Node, error) {
	node := find(tree.root, key)
	if node == nil {
		return nil, ErrKeyNotFound
	}
	return node, nil
}

func find(node *Node, key int) *Node {
	if node == nil {
		return nil
	}

	if key == node.key {
		return node
	} else if key < node.key {
		return find(node.left, key)
	}
	return find(node.right, key)
}

// Contains reports whether key is in the tree.
func (tree *Tree) Contains(key int) bool {
	return find(tree.root, key) != nil
}

// Successor returns the smallest key in the right subtree of key's node.
//
// Only the subtree is consulted: a node without a right child reports
// ErrNoSuccessor even when an ancestor holds a greater key. Use Next for the
// in-order neighbour.
func (tree *Tree) Successor(key int) (int, error) {
	node, err := tree.Find(key)
	if err != nil {
		return 0, err
	}
	if node.right == nil {
		return 0, ErrNoSuccessor
	}
	return node.right.first().key, nil
}

// Predecessor returns the largest key in the left subtree of key's node.
// Like Successor it never looks at ancestors; see Prev.
func (tree *Tree) Predecessor(key int) (int, error) {
	node, err := tree.Find(key)
	if err != nil {
		return 0, err
	}
	if node.left == nil {
		return 0, ErrNoPredecessor
	}
	return node.left.last().key, nil
}

// Next returns the next greater key in the tree after key.
func (tree *Tree) Next(key int) (int, error) {
	// the last node where the descent turned left is the nearest greater
	// ancestor
	var ancestor *Node
	node := tree.root
	for node != nil && node.key != key {
		if key < node.key {
			ancestor = node
			node = node.left
		} else {
			node = node.right
		}
	}

	if node == nil {
		return 0, ErrKeyNotFound
	}
	if node.right != nil {
		return node.right.first().key, nil
	}
	if ancestor == nil {
		return 0, ErrNoSuccessor
	}
	return ancestor.key, nil
}

// Prev returns the next lesser key in the tree before key.
func (tree *Tree) Prev(key int) (int, error) {
	var ancestor *Node
	node := tree.root
	for node != nil && node.key != key {
		if key > node.key {
			ancestor = node
			node = node.right
		} else {
			node = node.left
		}
	}

	if node == nil {
		return 0, ErrKeyNotFound
	}
	if node.left != nil {
		return node.left.last().key, nil
	}
	if ancestor == nil {
		return 0, ErrNoPredecessor
	}
	return ancestor.key, nil
}

// Min returns the lowest key.
func (tree *Tree) Min() (int, error) {
	if tree.root == nil {
		return 0, ErrEmptyTree
	}
	return tree.root.first().key, nil
}

// Max returns the highest key.
func (tree *Tree) Max() (int, error) {
	if tree.root == nil {
		return 0, ErrEmptyTree
	}
	return tree.root.last().key, nil
}
