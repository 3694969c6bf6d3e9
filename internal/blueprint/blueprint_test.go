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

package blueprint

import "testing"

func TestRecommendRAGUseCase(t *testing.T) {
	title := "RAG chatbot for internal HR knowledge base"
	overview := []string{
		"Employees ask policy questions in natural language",
		"Answers are grounded via retrieval over the HR document corpus",
	}

	matches := Recommend(title, overview)
	if len(matches) == 0 {
		t.Fatal("no recommendations for a textbook RAG use case")
	}
	if len(matches) > 3 {
		t.Fatalf("got %d recommendations, cap is 3", len(matches))
	}

	found := false
	for _, m := range matches {
		if m.Entry.ID == "enterprise-rag" {
			found = true
			// "rag", "knowledge base", "retrieval", and "chatbot" all hit.
			if m.Score < 2 {
				t.Errorf("enterprise-rag score = %d, want >= 2", m.Score)
			}
		}
	}
	if !found {
		t.Error("enterprise-rag missing from top-3 recommendations")
	}
}

func TestRecommendDiscardsSingleHits(t *testing.T) {
	// "document" alone hits document-intelligence once; one coincidental
	// keyword is not a recommendation.
	matches := Recommend("A document went missing from the share drive", nil)
	for _, m := range matches {
		if m.Score < 2 {
			t.Errorf("entry %q recommended with score %d", m.Entry.ID, m.Score)
		}
	}
}

func TestRecommendNoMatches(t *testing.T) {
	if matches := Recommend("Quarterly budget planning spreadsheet", nil); len(matches) != 0 {
		t.Errorf("got %d matches for an unrelated title, want 0", len(matches))
	}
}

func TestRecommendUsesOnlyFirstFourBullets(t *testing.T) {
	// All the fraud signal is in bullet five, which must be ignored.
	overview := []string{
		"General platform modernization",
		"Team enablement and onboarding",
		"Quarterly roadmap alignment",
		"Stakeholder reporting cadence",
		"Real-time fraud and transaction anomaly detection with Morpheus",
	}
	for _, m := range Recommend("Platform initiative", overview) {
		if m.Entry.ID == "fraud-detection" {
			t.Error("fraud-detection matched from a bullet past the first four")
		}
	}
}

func TestRecommendOrderedByScoreThenCatalog(t *testing.T) {
	title := "Fraud detection for payment transactions with document extraction and pdf claims intake"
	matches := Recommend(title, nil)
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Fatalf("matches out of score order: %q (%d) before %q (%d)",
				matches[i-1].Entry.ID, matches[i-1].Score, matches[i].Entry.ID, matches[i].Score)
		}
	}
}
