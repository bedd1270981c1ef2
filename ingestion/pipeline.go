package ingestion

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/mercil/assetrank/ai"
	"github.com/mercil/assetrank/config"
	"github.com/mercil/assetrank/core"
	"github.com/mercil/assetrank/storage"
)

// embedBatchSize is the number of documents embedded per worker task.
const embedBatchSize = 32

// Pipeline orchestrates the ingestion of raw listings: parsing, lifestyle
// scoring, embedding and storage. Embedding batches run concurrently on a
// worker pool; Ingest itself is synchronous and returns once all listings
// are stored.
type Pipeline struct {
	assetRepository storage.AssetRepository
	provider        ai.Provider
	cfg             *config.Config
	embeddingPool   *ants.Pool
	logger          *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.embeddingPool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	assetRepository storage.AssetRepository,
	provider ai.Provider,
	cfg *config.Config,
	opts ...Option,
) (*Pipeline, error) {
	if assetRepository == nil {
		return nil, ErrAssetRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		assetRepository: assetRepository,
		provider:        provider,
		cfg:             cfg,
		embeddingPool:   pool,
		logger:          slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest parses, enriches, embeds and stores a batch of raw listings.
// Records that fail to parse are skipped and reported in the returned
// error alongside the assets that were stored; a parse failure never
// aborts the rest of the batch.
func (p *Pipeline) Ingest(ctx context.Context, raws []RawAsset) ([]*core.Asset, error) {
	assets := make([]*core.Asset, 0, len(raws))
	var parseErrs []error
	for i, raw := range raws {
		asset, err := ParseRawAsset(p.cfg, raw)
		if err != nil {
			p.logger.Warn("skipping malformed listing", "index", i, "err", err)
			parseErrs = append(parseErrs, err)
			continue
		}
		asset.LifestyleScore = LifestyleScore(p.cfg, asset)
		assets = append(assets, asset)
	}

	if len(assets) == 0 {
		return nil, errors.Join(parseErrs...)
	}

	if err := p.embed(ctx, assets); err != nil {
		return nil, err
	}

	stored, err := p.assetRepository.AddAssets(ctx, assets...)
	if err != nil {
		return nil, err
	}

	p.logger.Info("listings ingested", "stored", len(stored), "skipped", len(parseErrs))
	return stored, errors.Join(parseErrs...)
}

// IngestAssets embeds and stores pre-built assets, bypassing raw parsing.
// Lifestyle scores are computed for assets that do not already carry one.
func (p *Pipeline) IngestAssets(ctx context.Context, assets ...*core.Asset) ([]*core.Asset, error) {
	for _, asset := range assets {
		if err := core.ValidateAsset(asset); err != nil {
			return nil, err
		}
		if asset.LifestyleScore == 0 {
			asset.LifestyleScore = LifestyleScore(p.cfg, asset)
		}
	}

	if len(assets) == 0 {
		return nil, nil
	}

	if err := p.embed(ctx, assets); err != nil {
		return nil, err
	}

	return p.assetRepository.AddAssets(ctx, assets...)
}

// embed generates vectors for all assets, fanning batches out on the
// worker pool and waiting for every batch to finish.
func (p *Pipeline) embed(ctx context.Context, assets []*core.Asset) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for start := 0; start < len(assets); start += embedBatchSize {
		batch := assets[start:min(start+embedBatchSize, len(assets))]

		wg.Add(1)
		submitErr := p.embeddingPool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for i, asset := range batch {
				texts[i] = BuildDocument(asset)
			}

			vectors, err := p.provider.Embedder().EmbedTexts(ctx, texts)
			if err == nil && len(vectors) != len(batch) {
				err = ErrEmbeddingMismatch
			}
			if err != nil {
				p.logger.Error("error embedding batch", "size", len(batch), "err", err)
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}

			for i := range batch {
				batch[i].Vector = vectors[i]
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			errs = append(errs, submitErr)
			mu.Unlock()
		}
	}

	wg.Wait()
	return errors.Join(errs...)
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
}
