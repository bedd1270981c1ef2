// Copyright 2025 Mercil
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


package assetrank

import (
	"log/slog"

	"github.com/mercil/assetrank/ai"
	"github.com/mercil/assetrank/ai/openai"
	"github.com/mercil/assetrank/config"
	"github.com/mercil/assetrank/ingestion"
	"github.com/mercil/assetrank/search"
	"github.com/mercil/assetrank/storage"
	"github.com/mercil/assetrank/storage/badger"
)

// Database bundles the storage backend, the asset repository, the AI
// provider and the scoring configuration behind one handle.
type Database struct {
	backend   *badger.Backend
	assetRepo storage.AssetRepository
	provider  ai.Provider
	cfg       *config.Config
	logger    *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	cfg      *config.Config
	provider ai.Provider
	inMemory bool
}

// WithAIConfig sets the AI service configuration used to construct the
// provider.
func WithAIConfig(aiConfig *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = aiConfig
	}
}

// WithConfig sets the scoring configuration.
// Default is config.DefaultConfig().
func WithConfig(cfg *config.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.cfg = cfg
	}
}

// WithProvider injects a pre-built AI provider instead of constructing
// one from the AI configuration. Useful for tests.
func WithProvider(provider ai.Provider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithInMemory opens the backend in memory, ignoring the file path.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
		cfg:      config.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	if err := options.cfg.Validate(); err != nil {
		return nil, err
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create asset repository
	assetRepo, err := badger.NewAssetRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			assetRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:   backend,
		assetRepo: assetRepo,
		provider:  provider,
		cfg:       options.cfg,
		logger:    slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	// Close repository
	if err := db.assetRepo.Close(); err != nil {
		db.logger.Error("error closing asset repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) AssetRepository() storage.AssetRepository {
	return db.assetRepo
}

func (db *Database) Config() *config.Config {
	return db.cfg
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.assetRepo, db.provider, db.cfg, opts...)
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.assetRepo, db.provider, db.cfg, opts...)
}
