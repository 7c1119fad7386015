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
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheRenderingAndGetRendering(t *testing.T) {
	c := NewRenderCache()
	view := "show"
	text := "|------+ 2 h=1 bf=+0\n"

	// Initially, GetRendering should report a miss.
	if got, ok := GetRendering(c, view); ok || got != "" {
		t.Errorf("GetRendering(%q) = %q, %v; want miss", view, got, ok)
	}

	CacheRendering(c, view, text)

	if got, ok := GetRendering(c, view); !ok || got != text {
		t.Errorf("GetRendering(%q) = %q, %v; want %q", view, got, ok, text)
	}

	InvalidateRenderings(c)

	if _, ok := GetRendering(c, view); ok {
		t.Errorf("GetRendering(%q) after invalidation should miss", view)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	view := "list"

	c.Set(view, "[1 2 3]", 100*time.Millisecond)

	if got, ok := GetRendering(c, view); !ok || got != "[1 2 3]" {
		t.Errorf("GetRendering(%q) = %q; want %q", view, got, "[1 2 3]")
	}

	time.Sleep(150 * time.Millisecond)

	if got, ok := GetRendering(c, view); ok {
		t.Errorf("After expiration, GetRendering(%q) = %q; want miss", view, got)
	}
}
