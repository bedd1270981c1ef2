package search

import (
	"github.com/mercil/assetrank/core"
	"github.com/mercil/assetrank/scoring"
)

// Result is one ranked listing in a search response.
type Result struct {
	Asset *core.Asset

	// FinalScore is the weighted combination of intent, semantic and
	// lifestyle components.
	FinalScore float64

	// IntentScore is the structured constraint score for this listing.
	IntentScore float64

	// SemanticScore is the cosine similarity between the query vector
	// and the listing vector.
	SemanticScore float32

	// LifestyleScore is the 0-10 amenity density score computed at
	// ingestion time.
	LifestyleScore float64

	// Scoring carries the full signal breakdown and quality report.
	Scoring *scoring.Result
}

// Response is the outcome of a search, including the parsed intent and
// any degradation warnings. When Results is empty, Message explains why.
type Response struct {
	Query    string
	Intent   *core.Intent
	Results  []*Result
	Message  string
	Warnings []string
}
