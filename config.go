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
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configFileName = ".avltree.yaml"

	successorModeSubtree = "subtree"
	successorModeInorder = "inorder"
)

type TreeConfig struct {
	Debug         bool   `yaml:"debug"`
	SuccessorMode string `yaml:"successor_mode"`
}

type KeysetConfig struct {
	ExpectedKeys      uint    `yaml:"expected_keys"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

type StressConfig struct {
	Count    int `yaml:"count"`
	KeyRange int `yaml:"key_range"`
}

type Config struct {
	Tree   TreeConfig   `yaml:"tree"`
	Keyset KeysetConfig `yaml:"keyset"`
	Stress StressConfig `yaml:"stress"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		Debug:         false,
		SuccessorMode: successorModeSubtree,
	},
	Keyset: KeysetConfig{
		ExpectedKeys:      1024,
		FalsePositiveRate: 0.01,
	},
	Stress: StressConfig{
		Count:    10000,
		KeyRange: 2000,
	},
}

// LoadConfig reads ~/.avltree.yaml, falling back to the defaults when the
// file is missing or unreadable.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig
		return &config, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	// Fields absent from the file keep their default values.
	if err := yaml.Unmarshal(data, &config); err != nil {
		log.Printf("Ignoring malformed config %s: %v", configPath, err)
		config = defaultConfig
		return &config, nil
	}

	config.normalize()
	return &config, nil
}

func (config *Config) normalize() {
	switch config.Tree.SuccessorMode {
	case successorModeSubtree, successorModeInorder:
	default:
		log.Printf("Unknown successor_mode %q, using %q", config.Tree.SuccessorMode, successorModeSubtree)
		config.Tree.SuccessorMode = successorModeSubtree
	}
	if config.Keyset.FalsePositiveRate <= 0 || config.Keyset.FalsePositiveRate >= 1 {
		config.Keyset.FalsePositiveRate = defaultConfig.Keyset.FalsePositiveRate
	}
	if config.Stress.Count <= 0 {
		config.Stress.Count = defaultConfig.Stress.Count
	}
	if config.Stress.KeyRange <= 0 {
		config.Stress.KeyRange = defaultConfig.Stress.KeyRange
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfig(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 avltree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %sdebug%s: %t\n", Green, Reset, config.Tree.Debug)
	fmt.Printf("  • %ssuccessor_mode%s: %s\n", Green, Reset, config.Tree.SuccessorMode)
	if config.Tree.SuccessorMode == successorModeSubtree {
		fmt.Printf("    succ/pred only look inside the node's own subtree\n\n")
	} else {
		fmt.Printf("    succ/pred return the neighbouring key in sorted order\n\n")
	}

	fmt.Printf("🔍 %sKey set filter:%s\n", Green, Reset)
	fmt.Printf("  • %sexpected_keys%s: %d\n", Green, Reset, config.Keyset.ExpectedKeys)
	fmt.Printf("  • %sfalse_positive_rate%s: %g\n\n", Green, Reset, config.Keyset.FalsePositiveRate)

	fmt.Printf("🔥 %sStress defaults:%s\n", Green, Reset)
	fmt.Printf("  • %scount%s: %d\n", Green, Reset, config.Stress.Count)
	fmt.Printf("  • %skey_range%s: %d\n\n", Green, Reset, config.Stress.KeyRange)

	fmt.Printf("💡 %sTo trace rotations, edit %s:%s\n", Warning, configPath, Reset)
	fmt.Printf("   tree:\n     debug: true\n")
}
