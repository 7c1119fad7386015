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
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cybrota/avltree/keyset"
)

var version = "v0.1.0"

func traceLogger(config *Config) *log.Logger {
	if !config.Tree.Debug {
		return nil
	}
	return log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
}

func keysetOptions(config *Config) keyset.Options {
	return keyset.Options{
		ExpectedKeys:      config.Keyset.ExpectedKeys,
		FalsePositiveRate: config.Keyset.FalsePositiveRate,
		Logger:            traceLogger(config),
	}
}

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Self-balancing search tree workbench [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var debug bool

	loadConfig := func() *Config {
		config, err := LoadConfig()
		if err != nil {
			log.Printf("Failed to load configuration: %v. Using default settings.", err)
			defaults := defaultConfig
			config = &defaults
		}
		if debug {
			config.Tree.Debug = true
		}
		return config
	}

	runInterpreter := func(scriptPath string) {
		config := loadConfig()
		set := keyset.New(keysetOptions(config))
		interpreter := NewInterpreter(set, os.Stdout, config)

		if scriptPath != "" {
			file, err := os.Open(scriptPath)
			if err != nil {
				log.Fatalf("Error opening script: %v", err)
			}
			defer file.Close()
			if err := interpreter.Run(file, false); err != nil {
				log.Fatalf("Error reading script: %v", err)
			}
			return
		}

		prompt := term.IsTerminal(int(os.Stdin.Fd()))
		if err := interpreter.Run(os.Stdin, prompt); err != nil {
			log.Fatalf("Error reading input: %v", err)
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Runs tree commands from a script or stdin",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run reads one tree command per line (insert, delete, find, succ, pred, list, show, check, ...)`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runInterpreter(cmd.Flag("script").Value.String())
		},
	}
	cmdRun.Flags().String("script", "", "file with one command per line")

	var cmdScenario = &cobra.Command{
		Use:   "scenario [A|B|C|D|E|all]...",
		Short: "Runs the fixed rotation and deletion scenarios",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Scenario runs fixed call sequences and verifies traversal, root and invariants`),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfig()
			if err := runScenarios(args, keysetOptions(config), os.Stdout); err != nil {
				log.Fatalf("%v", err)
			}
		},
	}

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Applies random inserts and deletes, checking every step",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Stress compares the tree with a reference map and verifies heights, balance and order after each operation`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfig()
			count, _ := cmd.Flags().GetInt("count")
			keyRange, _ := cmd.Flags().GetInt("range")
			seed, _ := cmd.Flags().GetInt64("seed")
			if count <= 0 {
				count = config.Stress.Count
			}
			if keyRange <= 0 {
				keyRange = config.Stress.KeyRange
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			result, err := runStress(StressOptions{
				Count:        count,
				KeyRange:     keyRange,
				Seed:         seed,
				ShowProgress: true,
				Out:          os.Stderr,
				Logger:       traceLogger(config),
			})
			if err != nil {
				log.Fatalf("Stress run failed (seed %d): %v", seed, err)
			}

			fmt.Printf("seed %d: %d inserts, %d deletes, %d duplicates, %d misses\n",
				seed, result.Inserts, result.Deletes, result.Duplicates, result.Misses)
			fmt.Printf("final tree: %d keys, height %d\n", result.Keys, result.Height)
		},
	}
	cmdStress.Flags().Int("count", 0, "number of operations (default from config)")
	cmdStress.Flags().Int("range", 0, "keys are drawn from [0, range) (default from config)")
	cmdStress.Flags().Int64("seed", 0, "random seed (default: current time)")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Shows the configuration file and current settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the interpreter on stdin when no subcommand is provided
			runInterpreter("")
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "trace rotations on stderr")
	rootCmd.AddCommand(cmdRun, cmdScenario, cmdStress, cmdSettings, cmdUsage, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
