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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Renderings are flushed on every mutation; expiry only bounds idle memory
	renderCacheExpiration = 10 * time.Minute
	renderCacheCleanup    = 5 * time.Minute
)

// NewRenderCache creates the cache holding rendered views of the tree
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

func CacheRendering(c *cache.Cache, view string, text string) {
	c.Set(view, text, renderCacheExpiration)
}

func GetRendering(c *cache.Cache, view string) (string, bool) {
	val, ok := c.Get(view)
	if !ok {
		return "", false
	}
	return val.(string), true
}

// InvalidateRenderings drops every cached view; the tree has changed
func InvalidateRenderings(c *cache.Cache) {
	c.Flush()
}
