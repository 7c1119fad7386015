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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTerminalMode(t *testing.T) {
	tests := []struct {
		name      string
		colorfgbg string
		theme     string
		want      TerminalMode
	}{
		{name: "no hints", want: TerminalModeUnknown},
		{name: "dark background", colorfgbg: "15;0", want: TerminalModeDark},
		{name: "light background", colorfgbg: "0;15", want: TerminalModeLight},
		{name: "unrecognised background", colorfgbg: "0;3", want: TerminalModeUnknown},
		{name: "dark theme", theme: "Solarized-Dark", want: TerminalModeDark},
		{name: "light theme", theme: "light", want: TerminalModeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLORFGBG", tt.colorfgbg)
			t.Setenv("TERM_THEME", tt.theme)
			assert.Equal(t, tt.want, detectTerminalMode())
		})
	}
}

func TestUnknownModeUsesDarkPalette(t *testing.T) {
	saved := detectedMode
	t.Cleanup(func() { detectedMode = saved })

	detectedMode = TerminalModeDark
	darkSuccess, _, _, _, _ := GetANSIColors()

	detectedMode = TerminalModeUnknown
	success, _, _, _, _ := GetANSIColors()
	assert.Equal(t, darkSuccess, success)
}
