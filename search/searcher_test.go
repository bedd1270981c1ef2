package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercil/assetrank/ai"
	"github.com/mercil/assetrank/ai/mock"
	"github.com/mercil/assetrank/config"
	"github.com/mercil/assetrank/core"
	"github.com/mercil/assetrank/storage"
	"github.com/mercil/assetrank/storage/badger"
)

func setupRepository(t *testing.T) storage.AssetRepository {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

// condoNearBTS builds a retrievable condo listing with its vector preset.
func condoNearBTS(ref string, vector []float32) *core.Asset {
	lat, lng := 13.7456, 100.5339
	return &core.Asset{
		Ref:            ref,
		Name:           "City condo " + ref,
		AssetTypeID:    3,
		AssetTypeName:  "Condominium",
		Price:          3500000,
		Latitude:       &lat,
		Longitude:      &lng,
		PoiDistances:   map[string]float64{"bts_station": 400},
		LifestyleScore: 5,
		Vector:         vector,
	}
}

func newTestProvider(queryVector []float32, intent *core.Intent, parseErr error) ai.Provider {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return queryVector, nil
	}

	parser := mock.NewMockIntentParser()
	parser.ParseIntentFunc = func(ctx context.Context, query string) (*core.Intent, error) {
		if parseErr != nil {
			return nil, parseErr
		}
		return intent, nil
	}

	return mock.NewMockProviderWithServices(embedder, parser)
}

func TestNewSearcher(t *testing.T) {
	repo := setupRepository(t)
	provider := mock.NewMockProvider()
	cfg := config.DefaultConfig()

	t.Run("valid searcher", func(t *testing.T) {
		searcher, err := NewSearcher(repo, provider, cfg)
		require.NoError(t, err)
		require.NotNil(t, searcher)
		defer searcher.Release()
	})

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewSearcher(nil, provider, cfg)
		assert.Equal(t, ErrAssetRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewSearcher(repo, nil, cfg)
		assert.Equal(t, ErrAIProviderRequired, err)
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := NewSearcher(repo, provider, nil)
		assert.Equal(t, ErrConfigRequired, err)
	})
}

func TestSearch_RanksByCombinedScore(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)
	cfg := config.DefaultConfig()

	near := condoNearBTS("NPA-2024-000123", []float32{1, 0, 0})
	farther := condoNearBTS("NPA-2024-000124", []float32{0.9, 0.2, 0})
	farther.PoiDistances["bts_station"] = 2500
	farther.LifestyleScore = 2
	land := condoNearBTS("NPA-2024-000125", []float32{1, 0, 0})
	land.AssetTypeID = 2
	land.AssetTypeName = "Vacant land"

	_, err := repo.AddAssets(ctx, near, farther, land)
	require.NoError(t, err)

	intent := &core.Intent{
		AssetTypes: []string{"condo"},
		MustHave:   []string{"bts_station"},
	}
	provider := newTestProvider([]float32{1, 0, 0}, intent, nil)

	searcher, err := NewSearcher(repo, provider, cfg)
	require.NoError(t, err)
	defer searcher.Release()

	response, err := searcher.Search(ctx, "condo near BTS")
	require.NoError(t, err)
	require.Len(t, response.Results, 2)

	// The non-condo never appears, the closer listing ranks first
	assert.Equal(t, "NPA-2024-000123", response.Results[0].Asset.Ref)
	assert.Equal(t, "NPA-2024-000124", response.Results[1].Asset.Ref)
	assert.Greater(t, response.Results[0].FinalScore, response.Results[1].FinalScore)

	// Component scores are carried through
	first := response.Results[0]
	assert.Greater(t, first.IntentScore, 0.0)
	assert.InDelta(t, 1.0, float64(first.SemanticScore), 1e-6)
	assert.Equal(t, 5.0, first.LifestyleScore)
	require.NotNil(t, first.Scoring)
	assert.NotEmpty(t, first.Scoring.Positive)
	assert.Equal(t, "search completed", response.Message)
}

func TestSearch_TruncatesToTopN(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)
	cfg := config.DefaultConfig()
	cfg.Retrieval.FinalTopN = 1

	_, err := repo.AddAssets(ctx,
		condoNearBTS("NPA-2024-000123", []float32{1, 0, 0}),
		condoNearBTS("NPA-2024-000124", []float32{0.9, 0.2, 0}),
	)
	require.NoError(t, err)

	provider := newTestProvider([]float32{1, 0, 0}, &core.Intent{AssetTypes: []string{"condo"}}, nil)

	searcher, err := NewSearcher(repo, provider, cfg)
	require.NoError(t, err)
	defer searcher.Release()

	response, err := searcher.Search(ctx, "condo")
	require.NoError(t, err)
	require.Len(t, response.Results, 1)
	assert.Equal(t, "NPA-2024-000123", response.Results[0].Asset.Ref)
}

func TestSearch_DeterministicTieBreak(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)
	cfg := config.DefaultConfig()

	// Identical listings except for the reference code
	b := condoNearBTS("NPA-2024-000200", []float32{1, 0, 0})
	a := condoNearBTS("NPA-2024-000100", []float32{1, 0, 0})
	_, err := repo.AddAssets(ctx, b, a)
	require.NoError(t, err)

	provider := newTestProvider([]float32{1, 0, 0}, &core.Intent{AssetTypes: []string{"condo"}}, nil)

	searcher, err := NewSearcher(repo, provider, cfg)
	require.NoError(t, err)
	defer searcher.Release()

	response, err := searcher.Search(ctx, "condo")
	require.NoError(t, err)
	require.Len(t, response.Results, 2)
	assert.Equal(t, "NPA-2024-000100", response.Results[0].Asset.Ref)
	assert.Equal(t, response.Results[0].FinalScore, response.Results[1].FinalScore)
}

func TestSearch_IntentFailureDegradesToSemantic(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)
	cfg := config.DefaultConfig()

	listing := condoNearBTS("NPA-2024-000123", []float32{1, 0, 0})
	listing.LifestyleScore = 8
	_, err := repo.AddAssets(ctx, listing)
	require.NoError(t, err)

	provider := newTestProvider([]float32{1, 0, 0}, nil, errors.New("model unreachable"))

	searcher, err := NewSearcher(repo, provider, cfg)
	require.NoError(t, err)
	defer searcher.Release()

	response, err := searcher.Search(ctx, "anything nice")
	require.NoError(t, err)
	require.Len(t, response.Results, 1)
	assert.Zero(t, response.Results[0].IntentScore)
	require.NotEmpty(t, response.Warnings)
	assert.Contains(t, response.Warnings[0], "intent parsing failed")
	assert.Equal(t, core.EmptyIntent(), response.Intent)
}

func TestSearch_QualityGate(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)
	cfg := config.DefaultConfig()

	// Semantic-only ranking tops out at similarity * 0.2, below the gate
	listing := condoNearBTS("NPA-2024-000123", []float32{1, 0, 0})
	listing.LifestyleScore = 0
	_, err := repo.AddAssets(ctx, listing)
	require.NoError(t, err)

	provider := newTestProvider([]float32{1, 0, 0}, core.EmptyIntent(), nil)

	searcher, err := NewSearcher(repo, provider, cfg)
	require.NoError(t, err)
	defer searcher.Release()

	response, err := searcher.Search(ctx, "vague query")
	require.NoError(t, err)
	assert.Empty(t, response.Results)
	assert.Equal(t, "no listings matched the requirements closely enough", response.Message)
}

func TestSearch_NoRetrievalMatches(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)
	cfg := config.DefaultConfig()

	provider := newTestProvider([]float32{1, 0, 0}, core.EmptyIntent(), nil)

	searcher, err := NewSearcher(repo, provider, cfg)
	require.NoError(t, err)
	defer searcher.Release()

	response, err := searcher.Search(ctx, "anything")
	require.NoError(t, err)
	assert.Empty(t, response.Results)
	assert.Equal(t, "no listings matched the query", response.Message)
}

func TestSearch_AllCandidatesDisqualified(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)
	cfg := config.DefaultConfig()

	land := condoNearBTS("NPA-2024-000125", []float32{1, 0, 0})
	land.AssetTypeID = 2
	land.AssetTypeName = "Vacant land"
	_, err := repo.AddAssets(ctx, land)
	require.NoError(t, err)

	provider := newTestProvider([]float32{1, 0, 0}, &core.Intent{AssetTypes: []string{"condo"}}, nil)

	searcher, err := NewSearcher(repo, provider, cfg)
	require.NoError(t, err)
	defer searcher.Release()

	response, err := searcher.Search(ctx, "condo only")
	require.NoError(t, err)
	assert.Empty(t, response.Results)
	assert.Equal(t, "no listings matched the requirements closely enough", response.Message)
}

func TestSearch_LocationConstraints(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultConfig()

	t.Run("without geocoder the constraint is skipped", func(t *testing.T) {
		repo := setupRepository(t)
		_, err := repo.AddAssets(ctx, condoNearBTS("NPA-2024-000123", []float32{1, 0, 0}))
		require.NoError(t, err)

		intent := &core.Intent{AssetTypes: []string{"condo"}, TargetLocation: "Siam"}
		provider := newTestProvider([]float32{1, 0, 0}, intent, nil)

		searcher, err := NewSearcher(repo, provider, cfg)
		require.NoError(t, err)
		defer searcher.Release()

		response, err := searcher.Search(ctx, "condo near siam")
		require.NoError(t, err)
		require.Len(t, response.Results, 1)
		require.NotEmpty(t, response.Warnings)
		assert.Contains(t, response.Warnings[0], "Siam")
	})

	t.Run("unknown place degrades with a warning", func(t *testing.T) {
		repo := setupRepository(t)
		_, err := repo.AddAssets(ctx, condoNearBTS("NPA-2024-000123", []float32{1, 0, 0}))
		require.NoError(t, err)

		intent := &core.Intent{AssetTypes: []string{"condo"}, TargetLocation: "Atlantis"}
		provider := newTestProvider([]float32{1, 0, 0}, intent, nil)

		searcher, err := NewSearcher(repo, provider, cfg, WithGeocoder(mock.NewStaticGeocoder()))
		require.NoError(t, err)
		defer searcher.Release()

		response, err := searcher.Search(ctx, "condo near atlantis")
		require.NoError(t, err)
		require.Len(t, response.Results, 1)
		require.NotEmpty(t, response.Warnings)
		assert.Contains(t, response.Warnings[0], "unknown place")
	})

	t.Run("resolved target rewards nearby listings", func(t *testing.T) {
		repo := setupRepository(t)

		// Listing sits at the Siam coordinates of the static geocoder
		near := condoNearBTS("NPA-2024-000123", []float32{1, 0, 0})

		// Roughly 22km north, beyond the far limit
		far := condoNearBTS("NPA-2024-000124", []float32{1, 0, 0})
		farLat, farLng := 13.9456, 100.5339
		far.Latitude = &farLat
		far.Longitude = &farLng

		_, err := repo.AddAssets(ctx, near, far)
		require.NoError(t, err)

		intent := &core.Intent{AssetTypes: []string{"condo"}, TargetLocation: "Siam"}
		provider := newTestProvider([]float32{1, 0, 0}, intent, nil)

		searcher, err := NewSearcher(repo, provider, cfg, WithGeocoder(mock.NewStaticGeocoder()))
		require.NoError(t, err)
		defer searcher.Release()

		response, err := searcher.Search(ctx, "condo near siam")
		require.NoError(t, err)
		require.Len(t, response.Results, 1)
		assert.Equal(t, "NPA-2024-000123", response.Results[0].Asset.Ref)
		assert.Empty(t, response.Warnings)
	})
}

// recordingMonitor captures callback counts for assertions.
type recordingMonitor struct {
	started      int
	intents      int
	semantic     int
	scored       int
	disqualified int
	finished     int
}

var _ SearchMonitor = (*recordingMonitor)(nil)

func (m *recordingMonitor) Start(_ string)                               { m.started++ }
func (m *recordingMonitor) IntentParsed(_ *core.Intent)                  { m.intents++ }
func (m *recordingMonitor) AfterSemanticSearch(_ []*core.RetrievalMatch) { m.semantic++ }
func (m *recordingMonitor) Geocoded(_ string, _ core.LatLng, _ bool)     {}
func (m *recordingMonitor) Scored(_ *Result)                             { m.scored++ }
func (m *recordingMonitor) Disqualified(_ *core.Asset, _ string)         { m.disqualified++ }
func (m *recordingMonitor) Finish(_ *Response)                           { m.finished++ }

func TestSearchWithMonitor(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)
	cfg := config.DefaultConfig()

	land := condoNearBTS("NPA-2024-000125", []float32{1, 0, 0})
	land.AssetTypeID = 2
	land.AssetTypeName = "Vacant land"
	_, err := repo.AddAssets(ctx,
		condoNearBTS("NPA-2024-000123", []float32{1, 0, 0}),
		land,
	)
	require.NoError(t, err)

	provider := newTestProvider([]float32{1, 0, 0}, &core.Intent{AssetTypes: []string{"condo"}}, nil)

	searcher, err := NewSearcher(repo, provider, cfg)
	require.NoError(t, err)
	defer searcher.Release()

	monitor := &recordingMonitor{}
	response, err := searcher.SearchWithMonitor(ctx, "condo", monitor)
	require.NoError(t, err)
	require.Len(t, response.Results, 1)

	assert.Equal(t, 1, monitor.started)
	assert.Equal(t, 1, monitor.intents)
	assert.Equal(t, 1, monitor.semantic)
	assert.Equal(t, 1, monitor.scored)
	assert.Equal(t, 1, monitor.disqualified)
	assert.Equal(t, 1, monitor.finished)
}
