package mock

import (
	"context"
	"strings"

	"github.com/mercil/assetrank/core"
)

// MockIntentParser is a test double for ai.IntentParser.
// It allows custom behavior injection via function fields.
type MockIntentParser struct {
	// ParseIntentFunc is called by ParseIntent if set.
	// If nil, uses default keyword-based behavior.
	ParseIntentFunc func(ctx context.Context, query string) (*core.Intent, error)

	callCount int
}

// NewMockIntentParser creates a mock intent parser with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockParser().
func NewMockIntentParser() *MockIntentParser {
	return &MockIntentParser{}
}

// ParseIntent extracts a simple mock intent from the query.
// Default behavior: recognizes a handful of keywords so pipeline tests get
// plausible intents without a language model.
func (m *MockIntentParser) ParseIntent(ctx context.Context, query string) (*core.Intent, error) {
	m.callCount++

	if m.ParseIntentFunc != nil {
		return m.ParseIntentFunc(ctx, query)
	}

	intent := core.EmptyIntent()
	lowered := strings.ToLower(query)

	if strings.Contains(lowered, "condo") {
		intent.AssetTypes = append(intent.AssetTypes, "condo")
	}
	if strings.Contains(lowered, "house") {
		intent.AssetTypes = append(intent.AssetTypes, "detached_house", "twin_house")
	}
	if strings.Contains(lowered, "bts") || strings.Contains(lowered, "skytrain") {
		intent.MustHave = append(intent.MustHave, "bts_station")
	}
	if strings.Contains(lowered, "park") {
		intent.NiceToHave = append(intent.NiceToHave, "park")
	}
	if strings.Contains(lowered, "pet") || strings.Contains(lowered, "dog") || strings.Contains(lowered, "cat") {
		intent.PetFriendly = core.TriStateTrue
	}

	return intent, nil
}

// CallCount returns the number of times ParseIntent was called.
func (m *MockIntentParser) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockIntentParser) Reset() {
	m.callCount = 0
	m.ParseIntentFunc = nil
}
