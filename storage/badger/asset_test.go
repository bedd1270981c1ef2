package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/mercil/assetrank/core"
	"github.com/mercil/assetrank/storage"
)

func newTestAsset(ref string) *core.Asset {
	lat, lng := 13.7563, 100.5018
	return &core.Asset{
		Ref:           ref,
		Name:          "Test listing " + ref,
		AssetTypeID:   3,
		AssetTypeName: "Condominium",
		Price:         3500000,
		Latitude:      &lat,
		Longitude:     &lng,
		PoiDistances:  map[string]float64{"bts_station": 400},
	}
}

func TestAssetBasics(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	asset := newTestAsset("NPA-2024-000123")

	added, err := repo.AddAssets(ctx, asset)
	if err != nil {
		t.Fatalf("Failed to add asset: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 asset, got %d", len(added))
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	if added[0].Id != core.IDFromContent("NPA-2024-000123") {
		t.Fatal("Expected ID derived from the reference code")
	}

	retrieved, err := repo.GetAsset(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get asset: %v", err)
	}

	if retrieved.Ref != "NPA-2024-000123" {
		t.Fatalf("Expected ref 'NPA-2024-000123', got '%s'", retrieved.Ref)
	}
	if retrieved.PoiDistances["bts_station"] != 400 {
		t.Fatalf("Expected POI distance to round-trip, got %v", retrieved.PoiDistances)
	}
}

func TestAssetIdempotentAdd(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	first := newTestAsset("NPA-2024-000123")
	if _, err := repo.AddAssets(ctx, first); err != nil {
		t.Fatalf("Failed to add asset: %v", err)
	}

	second := newTestAsset("NPA-2024-000123")
	second.Price = 3600000
	if _, err := repo.AddAssets(ctx, second); err != nil {
		t.Fatalf("Failed to re-add asset: %v", err)
	}

	retrieved, err := repo.GetAsset(ctx, first.Id)
	if err != nil {
		t.Fatalf("Failed to get asset: %v", err)
	}
	if retrieved.Price != 3600000 {
		t.Fatalf("Expected overwrite on re-add, got price %v", retrieved.Price)
	}
}

func TestAssetGetByRef(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	if _, err := repo.AddAssets(ctx, newTestAsset("NPA-2024-000123"), newTestAsset("NPA-2024-000124")); err != nil {
		t.Fatalf("Failed to add assets: %v", err)
	}

	found, err := repo.GetAssetByRef(ctx, "NPA-2024-000124")
	if err != nil {
		t.Fatalf("Failed to get asset by ref: %v", err)
	}
	if found.Ref != "NPA-2024-000124" {
		t.Fatalf("Expected ref 'NPA-2024-000124', got '%s'", found.Ref)
	}

	_, err = repo.GetAssetByRef(ctx, "NPA-0000-000000")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestAssetUpdateAndDelete(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	asset := newTestAsset("NPA-2024-000123")
	if _, err := repo.AddAssets(ctx, asset); err != nil {
		t.Fatalf("Failed to add asset: %v", err)
	}

	asset.Price = 4000000
	if _, err := repo.UpdateAssets(ctx, asset); err != nil {
		t.Fatalf("Failed to update asset: %v", err)
	}

	retrieved, err := repo.GetAsset(ctx, asset.Id)
	if err != nil {
		t.Fatalf("Failed to get asset: %v", err)
	}
	if retrieved.Price != 4000000 {
		t.Fatalf("Expected updated price, got %v", retrieved.Price)
	}
	if !retrieved.UpdatedAt.After(retrieved.InsertedAt) && !retrieved.UpdatedAt.Equal(retrieved.InsertedAt) {
		t.Fatal("Expected UpdatedAt at or after InsertedAt")
	}

	if err := repo.DeleteAssets(ctx, asset.Id); err != nil {
		t.Fatalf("Failed to delete asset: %v", err)
	}

	if _, err := repo.GetAsset(ctx, asset.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}
	if _, err := repo.GetAssetByRef(ctx, "NPA-2024-000123"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ref index cleanup after delete, got %v", err)
	}
}

func TestAssetUpdateMissing(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	missing := newTestAsset("NPA-2024-999999")
	missing.Id = core.IDFromContent(missing.Ref)

	if _, err := repo.UpdateAssets(context.Background(), missing); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestAssetGetMany(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	a := newTestAsset("NPA-2024-000123")
	b := newTestAsset("NPA-2024-000124")
	if _, err := repo.AddAssets(ctx, a, b); err != nil {
		t.Fatalf("Failed to add assets: %v", err)
	}

	// Missing IDs are silently skipped
	results, err := repo.GetAssets(ctx, a.Id, core.IDFromContent("missing"), b.Id)
	if err != nil {
		t.Fatalf("Failed to get assets: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 assets, got %d", len(results))
	}
}

func TestFindSimilar(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { repo.Close(); backend.Close() }()

	ctx := context.Background()

	near := newTestAsset("NPA-2024-000123")
	near.Vector = []float32{1, 0, 0}
	mid := newTestAsset("NPA-2024-000124")
	mid.Vector = []float32{0.7, 0.7, 0}
	far := newTestAsset("NPA-2024-000125")
	far.Vector = []float32{0, 0, 1}
	unembedded := newTestAsset("NPA-2024-000126")

	if _, err := repo.AddAssets(ctx, near, mid, far, unembedded); err != nil {
		t.Fatalf("Failed to add assets: %v", err)
	}

	results, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, 0.5, 10)
	if err != nil {
		t.Fatalf("Failed to find similar: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 matches above threshold, got %d", len(results))
	}
	if results[0].Asset.Ref != "NPA-2024-000123" {
		t.Fatalf("Expected the closest match first, got %s", results[0].Asset.Ref)
	}
	if results[0].Similarity < results[1].Similarity {
		t.Fatal("Expected results ordered by similarity descending")
	}

	// Limit is honored
	limited, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, -1, 1)
	if err != nil {
		t.Fatalf("Failed to find similar: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("Expected 1 result with limit 1, got %d", len(limited))
	}
}
