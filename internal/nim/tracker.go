// Copyright 2025 SA Demo Suite Project
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

package nim

import (
	"sync"

	"github.com/google/uuid"
)

// Tracker guards against the stale-response race on re-submission: a new
// prompt does not cancel an in-flight previous request, so without a
// token check a slow earlier response could overwrite newer state. Each
// submission issues a fresh token; only a response carrying the latest
// token may be applied.
type Tracker struct {
	mu     sync.Mutex
	latest string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Issue mints a new generation token and makes it the latest. Any token
// issued earlier is invalidated.
func (t *Tracker) Issue() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest = uuid.NewString()
	return t.latest
}

// Accept reports whether a response carrying the given token is still
// current and may be applied to visible state.
func (t *Tracker) Accept(token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return token != "" && token == t.latest
}
