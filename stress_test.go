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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStress(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		result, err := runStress(StressOptions{Count: 2000, KeyRange: 300, Seed: seed})
		require.NoError(t, err)

		assert.Equal(t, 2000, result.Inserts+result.Deletes+result.Duplicates+result.Misses)
		assert.Equal(t, result.Inserts-result.Deletes, result.Keys)
		assert.LessOrEqual(t, result.Keys, 300)
		assert.Positive(t, result.Height)
	}
}

func TestRunStressWithProgress(t *testing.T) {
	var out bytes.Buffer
	result, err := runStress(StressOptions{Count: 200, KeyRange: 50, Seed: 9, ShowProgress: true, Out: &out})
	require.NoError(t, err)
	assert.Equal(t, result.Inserts-result.Deletes, result.Keys)
	assert.NotEmpty(t, out.String())
}

func TestRunStressRejectsBadOptions(t *testing.T) {
	_, err := runStress(StressOptions{Count: 0, KeyRange: 10})
	assert.Error(t, err)
	_, err = runStress(StressOptions{Count: 10, KeyRange: 0})
	assert.Error(t, err)
}
