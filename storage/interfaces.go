package storage

import (
	"context"

	"github.com/mercil/assetrank/core"
)

// Repository provides common storage operations shared by all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// FindSimilar finds assets whose embedding is similar to the given vector.
	// Returns matches with similarity >= minSimilarity, up to limit results.
	// Results are ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.RetrievalMatch, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// AssetRepository provides operations for managing asset listings.
type AssetRepository interface {
	Repository
	// AddAssets adds one or more assets to storage.
	// IDs are derived from the asset's reference code, so re-adding the
	// same listing overwrites rather than duplicates.
	// Sets InsertedAt and UpdatedAt timestamps.
	// Returns the assets with IDs and timestamps populated.
	AddAssets(ctx context.Context, assets ...*core.Asset) ([]*core.Asset, error)

	// UpdateAssets updates existing assets.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any asset doesn't exist.
	UpdateAssets(ctx context.Context, assets ...*core.Asset) ([]*core.Asset, error)

	// DeleteAssets removes assets by their IDs.
	// Also removes the reference index entries.
	// Returns ErrNotFound if any asset doesn't exist.
	DeleteAssets(ctx context.Context, ids ...core.ID) error

	// GetAsset retrieves a single asset by ID.
	// Returns ErrNotFound if the asset doesn't exist.
	GetAsset(ctx context.Context, id core.ID) (*core.Asset, error)

	// GetAssets retrieves multiple assets by their IDs.
	// Returns only the assets that exist (no error for missing assets).
	GetAssets(ctx context.Context, ids ...core.ID) ([]*core.Asset, error)

	// GetAssetByRef retrieves a single asset by its reference code.
	// Returns ErrNotFound if no asset carries the reference.
	GetAssetByRef(ctx context.Context, ref string) (*core.Asset, error)
}
