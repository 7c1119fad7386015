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
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"slices"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avltree/avl"
)

var errStressDiverged = errors.New("tree diverged from reference")

type StressOptions struct {
	Count        int
	KeyRange     int
	Seed         int64
	ShowProgress bool
	Out          io.Writer
	Logger       *log.Logger
}

type StressResult struct {
	Inserts    int
	Deletes    int
	Duplicates int
	Misses     int
	Keys       int
	Height     int
}

// runStress applies random inserts and deletes to a tree and a map, checking
// the tree invariants and the key set after every step.
func runStress(opts StressOptions) (StressResult, error) {
	var result StressResult
	if opts.Count <= 0 || opts.KeyRange <= 0 {
		return result, fmt.Errorf("count and key range must be positive")
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	tree := avl.New(avl.WithLogger(opts.Logger))
	reference := make(map[int]struct{})

	var bar *progressbar.ProgressBar
	if opts.ShowProgress && opts.Out != nil {
		bar = progressbar.NewOptions(opts.Count,
			progressbar.OptionSetWriter(opts.Out),
			progressbar.OptionSetDescription("🌳 Stressing tree..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(opts.Out, "\n✅ Stress run completed!\n")
			}),
		)
	}

	for step := 0; step < opts.Count; step++ {
		key := rng.Intn(opts.KeyRange)
		_, present := reference[key]

		if rng.Intn(3) == 0 {
			err := tree.Delete(key)
			switch {
			case present && err == nil:
				delete(reference, key)
				result.Deletes++
			case !present && errors.Is(err, avl.ErrKeyNotFound):
				result.Misses++
			default:
				return result, fmt.Errorf("%w: step %d delete %d returned %v", errStressDiverged, step, key, err)
			}
		} else {
			err := tree.Insert(key)
			switch {
			case !present && err == nil:
				reference[key] = struct{}{}
				result.Inserts++
			case present && errors.Is(err, avl.ErrDuplicateKey):
				result.Duplicates++
			default:
				return result, fmt.Errorf("%w: step %d insert %d returned %v", errStressDiverged, step, key, err)
			}
		}

		if err := tree.Check(); err != nil {
			return result, fmt.Errorf("step %d: %w", step, err)
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	expected := make([]int, 0, len(reference))
	for key := range reference {
		expected = append(expected, key)
	}
	slices.Sort(expected)
	if !slices.Equal(expected, tree.Keys()) {
		return result, fmt.Errorf("%w: final key sets differ", errStressDiverged)
	}

	result.Keys = tree.Count()
	result.Height = tree.Height()
	return result, nil
}
