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

// Package guard screens free-text prompts before they cost an LLM call.
// It is a heuristic allow/deny filter, not a classifier: off-domain
// prompts slipping through is acceptable, obviously social or
// non-technology input must be rejected without a network round trip.
package guard

import (
	"strings"

	"go.uber.org/zap"
)

// minPromptLength is the shortest trimmed prompt worth sending upstream.
const minPromptLength = 15

// Reason categorizes why a prompt was rejected.
type Reason string

const (
	// ReasonTooShort rejects prompts under minPromptLength characters.
	ReasonTooShort Reason = "too_short"
	// ReasonSocial rejects greetings, acknowledgements, and small talk.
	ReasonSocial Reason = "social"
	// ReasonOffDomain rejects prompts about non-technology topics.
	ReasonOffDomain Reason = "off_domain"
)

// Result is the outcome of screening one prompt.
type Result struct {
	Accepted bool   `json:"accepted"`
	Reason   Reason `json:"reason,omitempty"`
	Matched  string `json:"matched,omitempty"`
}

// Guard holds the compiled screening patterns. Construct once, reuse;
// Check is safe for concurrent use.
type Guard struct {
	logger *zap.Logger
}

// New creates a prompt guard. A nil logger disables logging.
func New(logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{logger: logger}
}

// Check screens a prompt. The text is trimmed and lowercased before any
// rule runs; rules apply in order (length, social patterns, topic
// denylist) and the first hit wins.
func (g *Guard) Check(prompt string) Result {
	text := strings.ToLower(strings.TrimSpace(prompt))

	if len(text) < minPromptLength {
		g.logger.Debug("prompt rejected", zap.String("reason", string(ReasonTooShort)))
		return Result{Reason: ReasonTooShort}
	}

	for _, pattern := range socialPatterns {
		if pattern.MatchString(text) {
			g.logger.Debug("prompt rejected",
				zap.String("reason", string(ReasonSocial)),
				zap.String("pattern", pattern.String()))
			return Result{Reason: ReasonSocial, Matched: pattern.String()}
		}
	}

	if match := offDomainWords.FindString(text); match != "" {
		g.logger.Debug("prompt rejected",
			zap.String("reason", string(ReasonOffDomain)),
			zap.String("word", match))
		return Result{Reason: ReasonOffDomain, Matched: match}
	}

	return Result{Accepted: true}
}
