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

// Delete removes key from the tree, or returns ErrKeyNotFound.
func (tree *Tree) Delete(key int) error {
	if _, err := tree.Find(key); err != nil {
		return err
	}

	tree.root = tree.delete(tree.root, key)
	tree.count--
	return nil
}

// delete returns the root of the subtree after removing key. Every frame
// rebalances, since a removal can unbalance each ancestor in turn.
func (tree *Tree) delete(node *Node, key int) *Node {
	if node == nil {
		return nil
	}

	switch {
	case key < node.key:
		node.left = tree.delete(node.left, key)
	case key > node.key:
		node.right = tree.delete(node.right, key)
	default:
		// No children
		if node.left == nil && node.right == nil {
			tree.debugf("delete %d: leaf removed", key)
			return nil
		}
		// One child, promoted into the parent's link
		if node.left == nil {
			tree.debugf("delete %d: right child %d promoted", key, node.right.key)
			return node.right
		}
		if node.right == nil {
			tree.debugf("delete %d: left child %d promoted", key, node.left.key)
			return node.left
		}
		// Two children: take over the successor's key and remove that
		// node from the right subtree, where it has at most one child.
		successor := node.right.first()
		tree.debugf("delete %d: replaced by successor %d", key, successor.key)
		node.key = successor.key
		node.right = tree.delete(node.right, successor.key)
	}

	recomputeHeight(node)
	return tree.rebalance(node)
}
