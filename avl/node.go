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

// Node is a single key in the tree. The height is a cache maintained by the
// tree; a leaf has height 1.
type Node struct {
	key    int
	height int
	left   *Node
	right  *Node
}

func newNode(key int) *Node {
	return &Node{key: key, height: 1}
}

// Key returns the node's key.
func (node *Node) Key() int {
	return node.key
}

// Height returns the cached height of the subtree rooted at node, 0 for nil.
func (node *Node) Height() int {
	return heightOf(node)
}

// Left returns the left child or nil.
func (node *Node) Left() *Node {
	return node.left
}

// Right returns the right child or nil.
func (node *Node) Right() *Node {
	return node.right
}

// Balance returns height(left) - height(right).
func (node *Node) Balance() int {
	return balanceFactor(node)
}

// lowest node in a sub-tree
func (node *Node) first() *Node {
	if node == nil {
		return nil
	}
	for node.left != nil {
		node = node.left
	}
	return node
}

// highest node in a sub-tree
func (node *Node) last() *Node {
	if node == nil {
		return nil
	}
	for node.right != nil {
		node = node.right
	}
	return node
}
