package search

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/mercil/assetrank/ai"
	"github.com/mercil/assetrank/config"
	"github.com/mercil/assetrank/core"
	"github.com/mercil/assetrank/scoring"
	"github.com/mercil/assetrank/storage"
)

// Searcher ranks stored listings against free-form queries. Retrieval is
// semantic; ranking combines the structured intent score, the retrieval
// similarity and the lifestyle score.
type Searcher struct {
	assetRepository storage.AssetRepository
	provider        ai.Provider
	geocoder        ai.Geocoder
	scorer          *scoring.Scorer
	cfg             *config.Config
	scoringPool     *ants.Pool
	logger          *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithGeocoder sets the resolver for target and avoid locations.
// Without one, location constraints in the intent are skipped with a warning.
func WithGeocoder(geocoder ai.Geocoder) Option {
	return func(s *Searcher) error {
		s.geocoder = geocoder
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent candidate scoring.
// Default is the pool size chosen by NewSearcher.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}
		if s.scoringPool != nil {
			s.scoringPool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.scoringPool = pool
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	assetRepository storage.AssetRepository,
	provider ai.Provider,
	cfg *config.Config,
	opts ...Option,
) (*Searcher, error) {
	if assetRepository == nil {
		return nil, ErrAssetRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	scorer, err := scoring.NewScorer(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(8)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		assetRepository: assetRepository,
		provider:        provider,
		scorer:          scorer,
		cfg:             cfg,
		scoringPool:     pool,
		logger:          slog.Default().With("component", "searcher"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	return s, nil
}

// Search ranks listings against the query and returns the top matches.
func (s *Searcher) Search(ctx context.Context, query string) (*Response, error) {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor ranks listings against the query with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, monitor SearchMonitor) (*Response, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)
	response := &Response{Query: query}

	// 1. Parse the structured intent. A parser failure degrades the
	// search to semantic-only ranking instead of failing it.
	intent, err := s.provider.IntentParser().ParseIntent(ctx, query)
	if err != nil {
		s.logger.Warn("intent parsing failed, ranking on similarity only", "err", err)
		intent = core.EmptyIntent()
		response.Warnings = append(response.Warnings, "intent parsing failed; constraints were not applied")
	}
	response.Intent = intent
	monitor.IntentParsed(intent)

	// 2. Semantic retrieval pool
	embedding, err := s.provider.Embedder().EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "err", err)
		return nil, err
	}

	matches, err := s.assetRepository.FindSimilar(ctx, embedding, s.cfg.Retrieval.MinSimilarity, s.cfg.Retrieval.TopK)
	if err != nil {
		s.logger.Error("error querying for similar listings", "err", err)
		return nil, err
	}
	monitor.AfterSemanticSearch(matches)

	if len(matches) == 0 {
		response.Message = "no listings matched the query"
		monitor.Finish(response)
		return response, nil
	}

	// 3. Resolve location constraints
	target := s.resolvePlace(ctx, intent.TargetLocation, response, monitor)
	avoid := s.resolvePlace(ctx, intent.AvoidLocation, response, monitor)

	// 4. Score every candidate concurrently
	scored := s.scoreCandidates(matches, intent, target, avoid)

	// 5. Keep qualified candidates and combine the ranking components
	results := make([]*Result, 0, len(scored))
	for i, sc := range scored {
		asset := matches[i].Asset
		if sc.Disqualified {
			monitor.Disqualified(asset, sc.Reason)
			continue
		}

		result := &Result{
			Asset:          asset,
			IntentScore:    sc.Score,
			SemanticScore:  matches[i].Similarity,
			LifestyleScore: asset.LifestyleScore,
			Scoring:        sc,
		}
		result.FinalScore = sc.Score*s.cfg.Ranking.Intent +
			float64(matches[i].Similarity)*s.cfg.Ranking.Semantic +
			asset.LifestyleScore*s.cfg.Ranking.Lifestyle
		monitor.Scored(result)
		results = append(results, result)
	}

	// Deterministic order: score descending, reference code as tie-break
	slices.SortFunc(results, func(a, b *Result) int {
		switch {
		case a.FinalScore > b.FinalScore:
			return -1
		case a.FinalScore < b.FinalScore:
			return 1
		default:
			return strings.Compare(a.Asset.Ref, b.Asset.Ref)
		}
	})

	// Quality gate: a list of poor matches is worse than an honest miss
	if len(results) == 0 || results[0].FinalScore < s.cfg.Retrieval.MinFinalScore {
		response.Message = "no listings matched the requirements closely enough"
		monitor.Finish(response)
		return response, nil
	}

	if len(results) > s.cfg.Retrieval.FinalTopN {
		results = results[:s.cfg.Retrieval.FinalTopN]
	}
	response.Results = results
	response.Message = "search completed"
	monitor.Finish(response)

	return response, nil
}

// resolvePlace geocodes a named place from the intent. Failures and
// unknown places degrade to no constraint.
func (s *Searcher) resolvePlace(ctx context.Context, place string, response *Response, monitor SearchMonitor) *core.LatLng {
	if place == "" {
		return nil
	}
	if s.geocoder == nil {
		s.logger.Warn("no geocoder configured, skipping location constraint", "place", place)
		response.Warnings = append(response.Warnings, "location constraint skipped: "+place)
		return nil
	}

	position, found, err := s.geocoder.Geocode(ctx, place)
	if err != nil {
		s.logger.Warn("geocoding failed, skipping location constraint", "place", place, "err", err)
		response.Warnings = append(response.Warnings, "location constraint skipped: "+place)
		return nil
	}
	monitor.Geocoded(place, position, found)
	if !found {
		s.logger.Warn("place not found, skipping location constraint", "place", place)
		response.Warnings = append(response.Warnings, "unknown place: "+place)
		return nil
	}

	return &position
}

// scoreCandidates runs quality assessment and structured scoring for each
// retrieval match on the worker pool, joining before returning. Results
// are positional: scored[i] belongs to matches[i].
func (s *Searcher) scoreCandidates(matches []*core.RetrievalMatch, intent *core.Intent, target, avoid *core.LatLng) []*scoring.Result {
	scored := make([]*scoring.Result, len(matches))

	var wg sync.WaitGroup
	for i, match := range matches {
		wg.Add(1)
		asset := match.Asset
		index := i
		if err := s.scoringPool.Submit(func() {
			defer wg.Done()
			quality := scoring.Assess(s.cfg, asset, intent.MustHave, intent.NiceToHave)
			scored[index] = s.scorer.Score(asset, intent, quality, target, avoid)
		}); err != nil {
			// Pool rejected the task; score inline rather than dropping the candidate
			quality := scoring.Assess(s.cfg, asset, intent.MustHave, intent.NiceToHave)
			scored[index] = s.scorer.Score(asset, intent, quality, target, avoid)
			wg.Done()
		}
	}
	wg.Wait()

	return scored
}

// Release releases resources including the worker pool.
// The searcher should not be used after calling Release.
func (s *Searcher) Release() {
	if s.scoringPool != nil {
		s.scoringPool.Release()
	}
}
