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
	"slices"
	"strings"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/keyset"
)

var errScenarioFailed = errors.New("scenario failed")

// scenario is a fixed call sequence with a known outcome
type scenario struct {
	Name        string
	Description string
	run         func(set *keyset.Set) error
}

var scenarios = []scenario{
	{
		Name:        "A",
		Description: "insert 1 2 3: single left rotation",
		run: func(set *keyset.Set) error {
			return insertAndExpect(set, []int{1, 2, 3}, []int{1, 2, 3}, 2)
		},
	},
	{
		Name:        "B",
		Description: "insert 5 3 1: single right rotation",
		run: func(set *keyset.Set) error {
			return insertAndExpect(set, []int{5, 3, 1}, []int{1, 3, 5}, 3)
		},
	},
	{
		Name:        "C",
		Description: "insert 1 5 3: right-left rotation",
		run: func(set *keyset.Set) error {
			return insertAndExpect(set, []int{1, 5, 3}, []int{1, 3, 5}, 3)
		},
	},
	{
		Name:        "D",
		Description: "insert 4 1 12 13, then delete 12, 13 and 4",
		run: func(set *keyset.Set) error {
			if err := insertAll(set, []int{4, 1, 12, 13}); err != nil {
				return err
			}
			remaining := []int{1, 4, 12, 13}
			for _, key := range []int{12, 13, 4} {
				if err := set.Remove(key); err != nil {
					return fmt.Errorf("delete %d: %w", key, err)
				}
				remaining = slices.DeleteFunc(remaining, func(k int) bool { return k == key })
				if err := expectState(set, remaining); err != nil {
					return fmt.Errorf("after delete %d: %w", key, err)
				}
			}
			return nil
		},
	},
	{
		Name:        "E",
		Description: "insert 4, find 9, successor of 4",
		run: func(set *keyset.Set) error {
			if err := insertAll(set, []int{4}); err != nil {
				return err
			}
			if _, err := set.Find(9); !errors.Is(err, avl.ErrKeyNotFound) {
				return fmt.Errorf("%w: find 9 returned %v", errScenarioFailed, err)
			}
			if _, err := set.Successor(4); !errors.Is(err, avl.ErrNoSuccessor) {
				return fmt.Errorf("%w: successor 4 returned %v", errScenarioFailed, err)
			}
			return nil
		},
	},
}

func insertAll(set *keyset.Set, keys []int) error {
	for _, key := range keys {
		if err := set.Add(key); err != nil {
			return fmt.Errorf("insert %d: %w", key, err)
		}
	}
	return nil
}

func expectState(set *keyset.Set, expected []int) error {
	if err := set.Check(); err != nil {
		return err
	}
	if keys := set.Keys(); !slices.Equal(keys, expected) {
		return fmt.Errorf("%w: keys %v, expected %v", errScenarioFailed, keys, expected)
	}
	return nil
}

func insertAndExpect(set *keyset.Set, keys []int, expected []int, root int) error {
	if err := insertAll(set, keys); err != nil {
		return err
	}
	if err := expectState(set, expected); err != nil {
		return err
	}
	if got, ok := set.RootKey(); !ok || got != root {
		return fmt.Errorf("%w: root %d, expected %d", errScenarioFailed, got, root)
	}
	return nil
}

func findScenario(name string) (scenario, bool) {
	for _, sc := range scenarios {
		if strings.EqualFold(sc.Name, name) {
			return sc, true
		}
	}
	return scenario{}, false
}

// runScenarios runs the named scenarios ("all" for every one) on fresh sets
// and reports each outcome to out.
func runScenarios(names []string, options keyset.Options, out io.Writer) error {
	selected := scenarios
	if len(names) > 0 && !(len(names) == 1 && strings.EqualFold(names[0], "all")) {
		selected = nil
		for _, name := range names {
			sc, ok := findScenario(name)
			if !ok {
				return fmt.Errorf("no scenario named %q", name)
			}
			selected = append(selected, sc)
		}
	}

	styles := NewStyles(out)
	failed := 0
	for _, sc := range selected {
		set := keyset.New(options)
		err := sc.run(set)

		fmt.Fprintf(out, "%s %s\n", styles.Title.Render("Scenario "+sc.Name+":"), sc.Description)
		fmt.Fprintf(out, "  keys %s", formatKeys(set.Keys()))
		if root, ok := set.RootKey(); ok {
			fmt.Fprintf(out, ", root %d", root)
		}
		fmt.Fprintln(out)

		if err != nil {
			failed++
			fmt.Fprintln(out, "  "+styles.Failure.Render("FAIL "+err.Error()))
			continue
		}
		fmt.Fprintln(out, "  "+styles.OK.Render("PASS"))
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errScenarioFailed, failed, len(selected))
	}
	return nil
}
