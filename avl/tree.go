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

import (
	"io"
	"log"
)

// Tree holds the root node of an AVL tree. The zero value is an empty tree
// ready to use.
type Tree struct {
	root   *Node
	count  int
	logger *log.Logger
}

// Option configures a Tree created by New.
type Option func(*Tree)

// WithLogger sends rebalancing trace ("DEBUG:") and warning ("WARN:") lines
// to logger. A nil logger keeps the tree silent.
func WithLogger(logger *log.Logger) Option {
	return func(tree *Tree) {
		if logger != nil {
			tree.logger = logger
		}
	}
}

// New creates an initially empty tree. Without WithLogger, trace lines are
// written to io.Discard.
func New(opts ...Option) *Tree {
	tree := &Tree{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(tree)
	}
	return tree
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Count returns the number of keys currently in the tree.
func (tree *Tree) Count() int {
	return tree.count
}

// Height returns the height of the root, 0 for an empty tree.
func (tree *Tree) Height() int {
	return heightOf(tree.root)
}

// Root returns the root node or nil. The returned node must not be retained
// across mutations: rotations change which node is the root.
func (tree *Tree) Root() *Node {
	return tree.root
}

// debugf and warnf also serve the zero-value Tree, which has no logger.
func (tree *Tree) debugf(format string, args ...any) {
	if tree.logger == nil {
		return
	}
	tree.logger.Printf("DEBUG: "+format, args...)
}

func (tree *Tree) warnf(format string, args ...any) {
	if tree.logger == nil {
		return
	}
	tree.logger.Printf("WARN: "+format, args...)
}

func heightOf(node *Node) int {
	if node == nil {
		return 0
	}
	return node.height
}

// recomputeHeight must only run once both children are final for the
// current operation.
func recomputeHeight(node *Node) {
	node.height = max(heightOf(node.left), heightOf(node.right)) + 1
}

func balanceFactor(node *Node) int {
	if node == nil {
		return 0
	}
	return heightOf(node.left) - heightOf(node.right)
}

func (tree *Tree) rotateLeft(node *Node) *Node {
	if node == nil || node.right == nil {
		panic("avl: left rotation needs a right child")
	}

	pivot := node.right
	node.right = pivot.left
	pivot.left = node

	recomputeHeight(node)
	recomputeHeight(pivot)

	tree.debugf("rotate left at %d, subtree root now %d (h=%d)", node.key, pivot.key, pivot.height)
	return pivot
}

func (tree *Tree) rotateRight(node *Node) *Node {
	if node == nil || node.left == nil {
		panic("avl: right rotation needs a left child")
	}

	pivot := node.left
	node.left = pivot.right
	pivot.right = node

	recomputeHeight(node)
	recomputeHeight(pivot)

	tree.debugf("rotate right at %d, subtree root now %d (h=%d)", node.key, pivot.key, pivot.height)
	return pivot
}

// left child is right-heavy
func (tree *Tree) rotateLeftRight(node *Node) *Node {
	node.left = tree.rotateLeft(node.left)
	return tree.rotateRight(node)
}

// right child is left-heavy
func (tree *Tree) rotateRightLeft(node *Node) *Node {
	node.right = tree.rotateRight(node.right)
	return tree.rotateLeft(node)
}

// rebalance picks the rotation from the balance factors alone. The height of
// node must already be current.
func (tree *Tree) rebalance(node *Node) *Node {
	balance := balanceFactor(node)

	// Left-heavy
	if balance > 1 {
		if balanceFactor(node.left) >= 0 {
			return tree.rotateRight(node)
		}
		return tree.rotateLeftRight(node)
	}

	// Right-heavy
	if balance < -1 {
		if balanceFactor(node.right) <= 0 {
			return tree.rotateLeft(node)
		}
		return tree.rotateRightLeft(node)
	}

	return node
}
