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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/keyset"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errBadArguments   = errors.New("bad arguments")
)

const (
	viewList = "list"
	viewShow = "show"
)

const interpreterHelp = `# Commands

| command | effect |
|---|---|
| ` + "`insert K...`" + ` | add keys; duplicates are reported and skipped |
| ` + "`delete K...`" + ` | remove keys; missing keys are reported |
| ` + "`find K`" + ` | look a key up |
| ` + "`succ K`" + ` / ` + "`pred K`" + ` | successor / predecessor (see successor_mode) |
| ` + "`next K`" + ` / ` + "`prev K`" + ` | neighbouring key in sorted order |
| ` + "`min`" + ` / ` + "`max`" + ` | lowest / highest key |
| ` + "`list`" + ` | keys in ascending order |
| ` + "`show`" + ` | draw the tree |
| ` + "`check`" + ` | verify heights, balance and order |
| ` + "`count`" + ` / ` + "`stats`" + ` | size, height and filter counters |
| ` + "`copy`" + ` | copy the key list to the clipboard |
| ` + "`reset`" + ` | drop every key |
| ` + "`quit`" + ` | leave |

Lines starting with # are comments.
`

// Interpreter runs tree commands, one per line, against a key set
type Interpreter struct {
	set     *keyset.Set
	renders *cache.Cache
	out     io.Writer
	styles  Styles
	inorder bool
}

func NewInterpreter(set *keyset.Set, out io.Writer, config *Config) *Interpreter {
	return &Interpreter{
		set:     set,
		renders: NewRenderCache(),
		out:     out,
		styles:  NewStyles(out),
		inorder: config.Tree.SuccessorMode == successorModeInorder,
	}
}

// splitCommand splits a command line into words.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse line %q: %v", line, err)
	}
	return args, nil
}

func parseKeys(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: at least one key required", errBadArguments)
	}
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", errBadArguments, arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func parseKey(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: exactly one key required", errBadArguments)
	}
	keys, err := parseKeys(args)
	if err != nil {
		return 0, err
	}
	return keys[0], nil
}

func (in *Interpreter) okf(format string, args ...any) {
	fmt.Fprintln(in.out, in.styles.OK.Render(fmt.Sprintf(format, args...)))
}

func (in *Interpreter) printf(format string, args ...any) {
	fmt.Fprintf(in.out, format, args...)
}

// Run executes every line from r. Failed commands are reported and the
// session continues; the returned error only reflects reading r.
func (in *Interpreter) Run(r io.Reader, prompt bool) error {
	scanner := bufio.NewScanner(r)
	for {
		if prompt {
			fmt.Fprint(in.out, in.styles.Prompt.Render("avl> "))
		}
		if !scanner.Scan() {
			break
		}

		quit, err := in.Execute(scanner.Text())
		if err != nil && isDomainError(err) {
			fmt.Fprintln(in.out, in.styles.Muted.Render("warning: "+err.Error()))
		} else if err != nil {
			fmt.Fprintln(in.out, in.styles.Failure.Render("error: "+err.Error()))
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute runs a single command line and reports whether the session should end.
func (in *Interpreter) Execute(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}

	words, err := splitCommand(line)
	if err != nil {
		return false, err
	}
	if len(words) == 0 {
		return false, nil
	}

	command, args := strings.ToLower(words[0]), words[1:]
	switch command {
	case "insert", "add":
		return false, in.insert(args)
	case "delete", "del", "remove":
		return false, in.delete(args)
	case "find":
		return false, in.find(args)
	case "succ", "successor":
		if in.inorder {
			return false, in.neighbour("successor", args, in.set.Next)
		}
		return false, in.neighbour("successor", args, in.set.Successor)
	case "pred", "predecessor":
		if in.inorder {
			return false, in.neighbour("predecessor", args, in.set.Prev)
		}
		return false, in.neighbour("predecessor", args, in.set.Predecessor)
	case "next":
		return false, in.neighbour("next", args, in.set.Next)
	case "prev":
		return false, in.neighbour("prev", args, in.set.Prev)
	case "min":
		return false, in.extreme("min", in.set.Min)
	case "max":
		return false, in.extreme("max", in.set.Max)
	case "list":
		in.list()
		return false, nil
	case "show":
		in.show()
		return false, nil
	case "check":
		return false, in.check()
	case "count":
		in.printf("%d keys, height %d\n", in.set.Len(), in.set.Height())
		return false, nil
	case "stats":
		in.stats()
		return false, nil
	case "copy":
		return false, in.copyKeys()
	case "reset":
		in.set.Reset()
		InvalidateRenderings(in.renders)
		in.okf("tree cleared")
		return false, nil
	case "help":
		in.help()
		return false, nil
	case "quit", "exit":
		return true, nil
	}

	return false, fmt.Errorf("%w: %q (try help)", errUnknownCommand, command)
}

func (in *Interpreter) insert(args []string) error {
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}

	var errs []error
	for _, key := range keys {
		if err := in.set.Add(key); err != nil {
			errs = append(errs, fmt.Errorf("insert %d: %w", key, err))
			continue
		}
		InvalidateRenderings(in.renders)
		in.okf("inserted %d", key)
	}
	return errors.Join(errs...)
}

func (in *Interpreter) delete(args []string) error {
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}

	var errs []error
	for _, key := range keys {
		if err := in.set.Remove(key); err != nil {
			errs = append(errs, fmt.Errorf("delete %d: %w", key, err))
			continue
		}
		InvalidateRenderings(in.renders)
		in.okf("deleted %d", key)
	}
	return errors.Join(errs...)
}

func (in *Interpreter) find(args []string) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}

	entry, err := in.set.Find(key)
	if err != nil {
		return fmt.Errorf("find %d: %w", key, err)
	}
	in.okf("found %d (h=%d, bf=%+d)", entry.Key, entry.Height, entry.Balance)
	return nil
}

func (in *Interpreter) neighbour(name string, args []string, query func(int) (int, error)) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}

	value, err := query(key)
	if err != nil {
		return fmt.Errorf("%s %d: %w", name, key, err)
	}
	in.okf("%s of %d is %d", name, key, value)
	return nil
}

func (in *Interpreter) extreme(name string, query func() (int, error)) error {
	value, err := query()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	in.okf("%s is %d", name, value)
	return nil
}

func formatKeys(keys []int) string {
	words := make([]string, len(keys))
	for i, key := range keys {
		words[i] = strconv.Itoa(key)
	}
	return "[" + strings.Join(words, " ") + "]"
}

func (in *Interpreter) list() {
	if text, ok := GetRendering(in.renders, viewList); ok {
		in.printf("%s\n", text)
		return
	}
	text := formatKeys(in.set.Keys())
	CacheRendering(in.renders, viewList, text)
	in.printf("%s\n", text)
}

func (in *Interpreter) show() {
	if text, ok := GetRendering(in.renders, viewShow); ok {
		in.printf("%s", text)
		return
	}

	var buf bytes.Buffer
	if in.set.Print(&buf) == 0 {
		buf.WriteString(in.styles.Muted.Render("(empty)") + "\n")
	}
	text := buf.String()
	CacheRendering(in.renders, viewShow, text)
	in.printf("%s", text)
}

func (in *Interpreter) check() error {
	if err := in.set.Check(); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	in.okf("ok: %d keys, height %d", in.set.Len(), in.set.Height())
	return nil
}

func (in *Interpreter) stats() {
	stats := in.set.Stats()
	in.printf("keys:            %d\n", stats.Keys)
	in.printf("height:          %d\n", stats.Height)
	in.printf("filter rejects:  %d\n", stats.FilterRejects)
	in.printf("tree lookups:    %d\n", stats.TreeLookups)
	in.printf("filter rebuilds: %d\n", stats.FilterRebuilds)
}

func (in *Interpreter) copyKeys() error {
	if err := clipboard.WriteAll(formatKeys(in.set.Keys())); err != nil {
		return fmt.Errorf("copy: %v", err)
	}
	in.okf("copied %d keys to clipboard", in.set.Len())
	return nil
}

func (in *Interpreter) help() {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err == nil {
		if rendered, err := renderer.Render(interpreterHelp); err == nil {
			in.printf("%s", rendered)
			return
		}
	}
	in.printf("%s", interpreterHelp)
}

// isDomainError reports errors that describe the tree state rather than a
// malformed command.
func isDomainError(err error) bool {
	return errors.Is(err, avl.ErrDuplicateKey) ||
		errors.Is(err, avl.ErrKeyNotFound) ||
		errors.Is(err, avl.ErrNoSuccessor) ||
		errors.Is(err, avl.ErrNoPredecessor) ||
		errors.Is(err, avl.ErrEmptyTree)
}
