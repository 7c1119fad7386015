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

// Package avl implements an AVL balanced binary search tree over int keys.
//
// Every mutation descends recursively to the edit point and rebuilds heights
// on the way back up, so each ancestor decides on a rotation using child
// heights that are already final for the operation. Insert needs at most one
// rotation; delete may rotate at every level up to the root.
//
// Note: a tree is not safe for concurrent use. Either confine it to a single
// goroutine or wrap it, as package keyset does.
package avl
