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

package guard

import "regexp"

// socialPatterns match the full trimmed, lowercased text. Anchoring at
// both ends keeps them from firing inside a genuine use-case description
// that merely opens with a pleasantry.
var socialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(hi|hello|hey|yo|sup|howdy)(\s+there)?[.!?\s]*$`),
	regexp.MustCompile(`^good\s+(morning|afternoon|evening|night)[.!?\s]*$`),
	regexp.MustCompile(`^(thanks|thank\s+you|thx|ty)(\s+(so\s+much|a\s+lot))?[.!?\s]*$`),
	regexp.MustCompile(`^(ok|okay|cool|nice|great|awesome|perfect|sounds\s+good)[.!?\s]*$`),
	regexp.MustCompile(`^(how\s+are\s+you|how'?s\s+it\s+going|what'?s\s+up)[.!?\s]*$`),
	regexp.MustCompile(`^(who|what)\s+are\s+you[.!?\s]*$`),
	regexp.MustCompile(`^(test|testing|just\s+testing)[.!?\s]*$`),
	regexp.MustCompile(`^(yes|no|maybe|sure|nope|yep)[.!?\s]*$`),
	regexp.MustCompile(`^(bye|goodbye|see\s+you|later)[.!?\s]*$`),
}

// offDomainWords rejects prompts mentioning, as a whole word, a topic
// with no plausible technology/business use case behind it. The list is
// intentionally narrow: a word that could appear in a legitimate
// enterprise prompt (game, market, media) does not belong here.
var offDomainWords = regexp.MustCompile(`\b(` +
	`recipe|recipes|cooking|baking|restaurant|pizza|burger|cuisine|` +
	`movie|movies|netflix|celebrity|celebrities|song|songs|playlist|lyrics|` +
	`football|soccer|basketball|baseball|cricket|tennis|golf|olympics|` +
	`election|elections|senator|congress|president|politics|political|` +
	`dating|girlfriend|boyfriend|wedding|marriage|divorce|` +
	`horoscope|astrology|zodiac|tarot|lottery|casino|gambling|betting|` +
	`joke|jokes|poem|poems|riddle|trivia|` +
	`vacation|holiday\s+trip|sightseeing|tourist` +
	`)\b`)
