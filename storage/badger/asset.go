package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/mercil/assetrank/core"
	"github.com/mercil/assetrank/storage"
)

// AssetRepository implements storage.AssetRepository for BadgerDB.
type AssetRepository struct {
	backend *Backend
}

var _ storage.AssetRepository = (*AssetRepository)(nil)

// NewAssetRepository creates a new AssetRepository.
func NewAssetRepository(backend *Backend) (storage.AssetRepository, error) {
	return &AssetRepository{backend: backend}, nil
}

// Close releases repository resources. The backend is owned by the
// caller and closed separately.
func (r *AssetRepository) Close() error {
	return nil
}

// FindSimilar delegates to the backend.
func (r *AssetRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.RetrievalMatch, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *AssetRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddAssets adds one or more assets to storage. IDs derive from the
// reference code, so ingesting the same listing twice overwrites the
// stored record instead of duplicating it.
func (r *AssetRepository) AddAssets(ctx context.Context, assets ...*core.Asset) ([]*core.Asset, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, asset := range assets {
			if err := core.ValidateAsset(asset); err != nil {
				return err
			}

			asset.Id = core.IDFromContent(asset.Ref)
			asset.InsertedAt = time.Now().UTC()
			asset.UpdatedAt = asset.InsertedAt

			key := makeAssetKey(asset.Id)
			value := storage.MarshalAsset(asset)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Reference index
			refKey := makeAssetRefKey(asset.Ref)
			if err := tx.Set(refKey, storage.MarshalID(asset.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return assets, err
}

// UpdateAssets updates existing assets.
func (r *AssetRepository) UpdateAssets(ctx context.Context, assets ...*core.Asset) ([]*core.Asset, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, asset := range assets {
			key := makeAssetKey(asset.Id)

			old, err := r.readAsset(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			asset.InsertedAt = old.InsertedAt
			asset.UpdatedAt = time.Now().UTC()

			value := storage.MarshalAsset(asset)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Refresh the reference index if the ref changed
			if old.Ref != asset.Ref {
				if err := tx.Delete(makeAssetRefKey(old.Ref)); err != nil {
					return err
				}
				if err := tx.Set(makeAssetRefKey(asset.Ref), storage.MarshalID(asset.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return assets, err
}

// DeleteAssets removes assets by their IDs.
func (r *AssetRepository) DeleteAssets(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeAssetKey(id)

			asset, err := r.readAsset(tx, key)
			if err != nil {
				return err
			}
			if asset == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeAssetRefKey(asset.Ref)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetAsset retrieves a single asset by ID.
func (r *AssetRepository) GetAsset(ctx context.Context, id core.ID) (*core.Asset, error) {
	var result *core.Asset
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeAssetKey(id)
		var err error
		result, err = r.readAsset(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetAssets retrieves multiple assets by their IDs.
func (r *AssetRepository) GetAssets(ctx context.Context, ids ...core.ID) ([]*core.Asset, error) {
	var result []*core.Asset
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeAssetKey(id)
			asset, err := r.readAsset(tx, key)
			if err != nil {
				return err
			}
			if asset != nil {
				result = append(result, asset)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetAssetByRef retrieves a single asset by its reference code via the
// reference index.
func (r *AssetRepository) GetAssetByRef(ctx context.Context, ref string) (*core.Asset, error) {
	var result *core.Asset
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeAssetRefKey(ref))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var id core.ID
		if err := item.Value(func(val []byte) error {
			var err error
			id, err = storage.UnmarshalID(val)
			return err
		}); err != nil {
			return err
		}

		result, err = r.readAsset(tx, makeAssetKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// readAsset reads an asset from the transaction.
func (r *AssetRepository) readAsset(tx *badger.Txn, key []byte) (*core.Asset, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var asset *core.Asset
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		asset, unmarshalErr = storage.UnmarshalAsset(val)
		return unmarshalErr
	})
	return asset, err
}
