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

package keyset

import (
	"errors"
	"fmt"
)

// ErrFilterMiss means a stored key is not in the Bloom filter, so lookups for
// it would wrongly report it absent.
var ErrFilterMiss = errors.New("key missing from filter")

func fmtFilterMiss(key int) error {
	return fmt.Errorf("%w: %d", ErrFilterMiss, key)
}
