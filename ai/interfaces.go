package ai

import (
	"context"

	"github.com/mercil/assetrank/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// IntentParser converts a free-form property search query into a structured
// intent. Implementations must be thread-safe for concurrent use.
type IntentParser interface {
	// ParseIntent analyzes a natural-language query and extracts the
	// structured constraints it expresses: requested asset types, required
	// and preferred points of interest, things to avoid, pet policy and
	// price range. POI keys in the result use the standard catalog keys.
	// Returns an error if the query cannot be parsed into valid JSON after
	// retries; callers typically degrade to an unconstrained intent.
	ParseIntent(ctx context.Context, query string) (*core.Intent, error)
}

// Geocoder resolves a free-text place name to coordinates.
// The second return value reports whether the place was found; an unknown
// place is not an error.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (core.LatLng, bool, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages Embedder and IntentParser
// instances, ensuring they share configuration and resources appropriately.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// IntentParser returns the query intent extraction service.
	// The returned IntentParser is safe for concurrent use.
	IntentParser() IntentParser

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
