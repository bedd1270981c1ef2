package ingestion

import "errors"

var (
	// ErrAssetRepositoryRequired is returned when an asset repository is not provided.
	ErrAssetRepositoryRequired = errors.New("asset repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrConfigRequired is returned when a scoring configuration is not provided.
	ErrConfigRequired = errors.New("configuration required")

	// ErrEmbeddingMismatch is returned when the embedder yields a different
	// number of vectors than documents submitted.
	ErrEmbeddingMismatch = errors.New("embedding result count mismatch")
)
