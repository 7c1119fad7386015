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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/keyset"
)

func newTestInterpreter(mode string) (*Interpreter, *bytes.Buffer) {
	config := defaultConfig
	config.Tree.SuccessorMode = mode

	var out bytes.Buffer
	return NewInterpreter(keyset.New(keyset.Options{}), &out, &config), &out
}

func TestInterpreterScript(t *testing.T) {
	interpreter, out := newTestInterpreter(successorModeSubtree)

	script := strings.Join([]string{
		"# build a small tree",
		"insert 5 3 1",
		"insert 3",
		"find 3",
		"find 9",
		"succ 3",
		"pred 3",
		"next 1",
		"list",
		"check",
		"delete 3 42",
		"list",
		"bogus",
		"",
		"quit",
		"insert 100",
	}, "\n")

	require.NoError(t, interpreter.Run(strings.NewReader(script), false))

	output := out.String()
	for _, want := range []string{
		"inserted 5",
		"inserted 1",
		"warning: insert 3: duplicate key",
		"found 3 (h=2, bf=+0)",
		"warning: find 9: key not found",
		"successor of 3 is 5",
		"predecessor of 3 is 1",
		"next of 1 is 3",
		"[1 3 5]",
		"ok: 3 keys, height 2",
		"deleted 3",
		"warning: delete 42: key not found",
		"[1 5]",
		`error: unknown command: "bogus"`,
	} {
		assert.Contains(t, output, want)
	}
	assert.NotContains(t, output, "inserted 100")
}

func TestInterpreterSuccessorModes(t *testing.T) {
	tests := []struct {
		mode    string
		line    string
		want    string
		wantErr error
	}{
		{successorModeSubtree, "succ 1", "", avl.ErrNoSuccessor},
		{successorModeSubtree, "pred 3", "", avl.ErrNoPredecessor},
		{successorModeInorder, "succ 1", "successor of 1 is 2", nil},
		{successorModeInorder, "pred 3", "predecessor of 3 is 2", nil},
		{successorModeInorder, "succ 3", "", avl.ErrNoSuccessor},
	}

	for _, tt := range tests {
		t.Run(tt.mode+" "+tt.line, func(t *testing.T) {
			interpreter, out := newTestInterpreter(tt.mode)
			_, err := interpreter.Execute("insert 1 2 3")
			require.NoError(t, err)

			_, err = interpreter.Execute(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestInterpreterBadInput(t *testing.T) {
	interpreter, _ := newTestInterpreter(successorModeSubtree)

	tests := []struct {
		line    string
		wantErr error
	}{
		{"find", errBadArguments},
		{"find 1 2", errBadArguments},
		{"insert x", errBadArguments},
		{"delete", errBadArguments},
		{"frobnicate", errUnknownCommand},
	}
	for _, tt := range tests {
		_, err := interpreter.Execute(tt.line)
		assert.ErrorIs(t, err, tt.wantErr, tt.line)
	}

	_, err := interpreter.Execute(`insert "1`)
	assert.Error(t, err)

	_, err = interpreter.Execute("min")
	assert.ErrorIs(t, err, avl.ErrEmptyTree)
}

func TestInterpreterRenderCache(t *testing.T) {
	interpreter, out := newTestInterpreter(successorModeSubtree)

	_, err := interpreter.Execute("insert 2 1 3")
	require.NoError(t, err)

	_, err = interpreter.Execute("show")
	require.NoError(t, err)
	cached, ok := GetRendering(interpreter.renders, viewShow)
	require.True(t, ok)
	assert.Contains(t, cached, "|------+ 2 h=2 bf=+0")
	assert.Contains(t, out.String(), cached)

	_, err = interpreter.Execute("delete 1")
	require.NoError(t, err)
	_, ok = GetRendering(interpreter.renders, viewShow)
	assert.False(t, ok)

	_, err = interpreter.Execute("reset")
	require.NoError(t, err)
	out.Reset()
	_, err = interpreter.Execute("show")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(empty)")
}

func TestInterpreterQuit(t *testing.T) {
	interpreter, _ := newTestInterpreter(successorModeSubtree)
	for _, line := range []string{"quit", "EXIT"} {
		quit, err := interpreter.Execute(line)
		assert.NoError(t, err)
		assert.True(t, quit)
	}
}
