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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

An AVL balanced binary search tree over integer keys, with a command
interpreter, fixed scenarios and a randomized stress runner.

Built with Go %s

# 1. Commands
* **run** reads tree commands from a script or stdin (try "help" inside)
* **scenario** runs the fixed scenarios A to E, or the ones named
* **stress** applies random inserts and deletes and checks every step
* **settings** shows the configuration in ~/.avltree.yaml
* **version** prints the version

# 2. Tree operations
* insert, delete, find
* successor and predecessor inside the node's subtree
* next and prev across the whole tree
* in-order listing, drawing and invariant checks

# 3. Tracing
Set tree.debug to true in the config file, or pass --debug, to trace every
rotation on stderr.

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
