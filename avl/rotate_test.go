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
	"bytes"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func join(key int, left, right *Node) *Node {
	node := &Node{key: key, left: left, right: right}
	recomputeHeight(node)
	return node
}

func leaf(key int) *Node {
	return newNode(key)
}

func TestRotations(t *testing.T) {
	tree := New()

	tests := []struct {
		name   string
		rotate func(*Node) *Node
		input  *Node
	}{
		{"left", tree.rotateLeft, join(1, nil, join(2, nil, leaf(3)))},
		{"right", tree.rotateRight, join(3, join(2, leaf(1), nil), nil)},
		{"left-right", tree.rotateLeftRight, join(3, join(1, nil, leaf(2)), nil)},
		{"right-left", tree.rotateRightLeft, join(1, nil, join(3, leaf(2), nil))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := tt.rotate(tt.input)

			require.NotNil(t, root)
			assert.Equal(t, 2, root.key)
			assert.Equal(t, 2, root.height)
			require.NotNil(t, root.left)
			require.NotNil(t, root.right)
			assert.Equal(t, 1, root.left.key)
			assert.Equal(t, 3, root.right.key)
			assert.Equal(t, 1, root.left.height)
			assert.Equal(t, 1, root.right.height)
			assert.Nil(t, root.left.left)
			assert.Nil(t, root.left.right)
			assert.Nil(t, root.right.left)
			assert.Nil(t, root.right.right)
		})
	}
}

func TestRotationWithoutChildPanics(t *testing.T) {
	tree := New()
	assert.Panics(t, func() { tree.rotateLeft(leaf(1)) })
	assert.Panics(t, func() { tree.rotateRight(leaf(1)) })
	assert.Panics(t, func() { tree.rotateLeft(nil) })
}

func TestRebalanceSelection(t *testing.T) {
	tree := New()

	tests := []struct {
		name     string
		input    *Node
		wantRoot int
	}{
		// a balanced heavy child only appears after a delete
		{"left heavy, child even", join(5, join(3, leaf(2), leaf(4)), nil), 3},
		{"left heavy, child left", join(5, join(3, leaf(2), nil), nil), 3},
		{"left heavy, child right", join(5, join(3, nil, leaf(4)), nil), 4},
		{"right heavy, child even", join(1, nil, join(3, leaf(2), leaf(4))), 3},
		{"right heavy, child right", join(1, nil, join(3, nil, leaf(4))), 3},
		{"right heavy, child left", join(1, nil, join(3, leaf(2), nil)), 2},
		{"balanced", join(2, leaf(1), leaf(3)), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := tree.rebalance(tt.input)
			assert.Equal(t, tt.wantRoot, root.key)
			_, err := check(root, nil, nil)
			assert.NoError(t, err)
		})
	}
}

func TestPrimitives(t *testing.T) {
	assert.Equal(t, 0, heightOf(nil))
	assert.Equal(t, 0, balanceFactor(nil))

	node := join(4, join(2, leaf(1), nil), nil)
	assert.Equal(t, 3, node.height)
	assert.Equal(t, 2, balanceFactor(node))
	assert.Equal(t, 2, node.Balance())
	assert.Equal(t, 2, node.Left().Height())
	assert.Equal(t, 1, node.Left().Left().Height())
	assert.Nil(t, node.Right())
}

func TestCheckDetectsCorruption(t *testing.T) {
	tests := []struct {
		name  string
		tree  func() *Tree
		fault string
	}{
		{
			name: "stale height",
			tree: func() *Tree {
				root := join(2, leaf(1), leaf(3))
				root.height = 5
				return &Tree{root: root, count: 3}
			},
			fault: "key 2 has height 5",
		},
		{
			name: "order",
			tree: func() *Tree {
				return &Tree{root: join(2, leaf(3), nil), count: 2}
			},
			fault: "key 3 is not less than 2",
		},
		{
			name: "balance",
			tree: func() *Tree {
				return &Tree{root: join(3, join(2, leaf(1), nil), nil), count: 3}
			},
			fault: "key 3 has balance +2",
		},
		{
			name: "count",
			tree: func() *Tree {
				return &Tree{root: join(2, leaf(1), leaf(3)), count: 4}
			},
			fault: "found 3 nodes, count is 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tree().Check()
			require.ErrorIs(t, err, ErrCorrupt)
			assert.Contains(t, err.Error(), tt.fault)
		})
	}
}

func TestDefaultLogger(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "no options"},
		{name: "nil logger", opts: []Option{WithLogger(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New(tt.opts...)
			require.NotNil(t, tree.logger)
			assert.Equal(t, io.Discard, tree.logger.Writer())
			require.NoError(t, tree.Insert(1))
			assert.ErrorIs(t, tree.Insert(1), ErrDuplicateKey)
		})
	}

	var buf bytes.Buffer
	tree := New(WithLogger(log.New(&buf, "", 0)))
	require.NoError(t, tree.Insert(1))
	assert.ErrorIs(t, tree.Insert(1), ErrDuplicateKey)
	assert.Contains(t, buf.String(), "WARN: ")

	var zero Tree
	require.NoError(t, zero.Insert(1))
	assert.ErrorIs(t, zero.Insert(1), ErrDuplicateKey)
}
