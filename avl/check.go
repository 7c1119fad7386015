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
	"fmt"
)

// Check walks the whole tree and verifies the cached heights, the balance
// factors, the key order and the node count. The returned error wraps
// ErrCorrupt.
func (tree *Tree) Check() error {
	count, err := check(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.count {
		return fmt.Errorf("%w: found %d nodes, count is %d", ErrCorrupt, count, tree.count)
	}
	return nil
}

// internal: keys of the subtree must lie strictly between low and high when
// those are set
func check(node *Node, low *int, high *int) (int, error) {
	if node == nil {
		return 0, nil
	}

	if low != nil && node.key <= *low {
		return 0, fmt.Errorf("%w: key %d is not greater than %d", ErrCorrupt, node.key, *low)
	}
	if high != nil && node.key >= *high {
		return 0, fmt.Errorf("%w: key %d is not less than %d", ErrCorrupt, node.key, *high)
	}

	leftCount, err := check(node.left, low, &node.key)
	if err != nil {
		return 0, err
	}
	rightCount, err := check(node.right, &node.key, high)
	if err != nil {
		return 0, err
	}

	if expected := max(heightOf(node.left), heightOf(node.right)) + 1; node.height != expected {
		return 0, fmt.Errorf("%w: key %d has height %d, expected %d", ErrCorrupt, node.key, node.height, expected)
	}
	if balance := balanceFactor(node); balance < -1 || balance > 1 {
		return 0, fmt.Errorf("%w: key %d has balance %+d", ErrCorrupt, node.key, balance)
	}

	return leftCount + rightCount + 1, nil
}
