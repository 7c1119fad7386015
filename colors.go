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
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	detectedMode TerminalMode

	Green, Warning, Reset string
)

func init() {
	detectedMode = detectTerminalMode()
	Green, _, Warning, _, Reset = GetANSIColors()
}

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	if theme := os.Getenv("TERM_THEME"); theme != "" {
		theme = strings.ToLower(theme)
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	return TerminalModeUnknown
}

// GetANSIColors returns escape codes tuned to the detected terminal mode.
// An unknown mode gets the dark palette.
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}

// Styles used by the interpreter and the scenario runner
type Styles struct {
	Title   lipgloss.Style
	OK      lipgloss.Style
	Failure lipgloss.Style
	Muted   lipgloss.Style
	Prompt  lipgloss.Style
}

// NewStyles builds styles for w; writers that are not terminals get plain text.
func NewStyles(w io.Writer) Styles {
	renderer := lipgloss.NewRenderer(w)

	okColor, failColor := lipgloss.Color("46"), lipgloss.Color("196")
	if detectedMode == TerminalModeLight {
		okColor, failColor = lipgloss.Color("28"), lipgloss.Color("124")
	}

	return Styles{
		Title:   renderer.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		OK:      renderer.NewStyle().Foreground(okColor),
		Failure: renderer.NewStyle().Foreground(failColor),
		Muted:   renderer.NewStyle().Foreground(lipgloss.Color("243")),
		Prompt:  renderer.NewStyle().Foreground(lipgloss.Color("205")),
	}
}
