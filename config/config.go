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


// Package config is the single configuration surface for the relevance
// engine. Every tunable constant lives here: the POI catalog, scoring
// weights, hard constraint toggles, retrieval sizes and the ranking
// formula weights. A Config is loaded once at startup and treated as
// immutable afterwards; all scoring components take it by pointer and
// never write to it.
package config

import (
	"fmt"
	"sort"
)

// Curve selects the distance falloff shape for a POI's proximity factor.
type Curve string

const (
	// CurveLinear falls off proportionally with distance.
	CurveLinear Curve = "linear"
	// CurveExponential falls off quadratically, rewarding very close matches.
	CurveExponential Curve = "exponential"
)

// PoiDefinition describes one point-of-interest category in the catalog.
type PoiDefinition struct {
	// Radius is the relevance threshold in meters. A POI beyond its
	// radius contributes nothing and, for must-have requirements, fails
	// the requirement.
	Radius float64 `toml:"radius"`
	// Weight is the lifestyle-score contribution weight.
	Weight float64 `toml:"weight"`
	Curve  Curve   `toml:"curve"`
	// DisplayName is the human-readable label used in signal messages.
	DisplayName string `toml:"display_name"`
	Category    string `toml:"category"`
	// RapidTransit marks mass-transit stations (skytrain, subway) as
	// distinct from ordinary state railway stops. The transport
	// mismatch gate keys off this flag.
	RapidTransit bool `toml:"rapid_transit"`
}

// Weights holds every scoring constant. Positive values are rewards,
// negative values are penalties. The Soft* entries only apply when the
// corresponding hard constraint toggle is switched off.
type Weights struct {
	AssetTypeMatch      float64 `toml:"asset_type_match"`
	MustHavePoiBase     float64 `toml:"must_have_poi_base"`
	NiceToHavePoi       float64 `toml:"nice_to_have_poi"`
	PetFriendlyExplicit float64 `toml:"pet_friendly_explicit"`
	PetFriendlyInferred float64 `toml:"pet_friendly_inferred"`
	PriceInRange        float64 `toml:"price_in_range"`
	AvoidPoiSuccess     float64 `toml:"avoid_poi_success"`
	NearVetBonus        float64 `toml:"near_vet_bonus"`

	PriceOutOfRange  float64 `toml:"price_out_of_range"`
	AvoidPoiFailure  float64 `toml:"avoid_poi_failure"`
	PetNotAllowed    float64 `toml:"pet_not_allowed"`
	PetStatusUnknown float64 `toml:"pet_status_unknown"`
	PetNoise         float64 `toml:"pet_noise"`

	LocationVeryClose    float64 `toml:"location_very_close"`
	LocationClose        float64 `toml:"location_close"`
	LocationFar          float64 `toml:"location_far"`
	AvoidLocationNear    float64 `toml:"avoid_location_near"`
	AvoidLocationMid     float64 `toml:"avoid_location_mid"`
	AvoidLocationAvoided float64 `toml:"avoid_location_avoided"`

	SoftWrongAssetType    float64 `toml:"soft_wrong_asset_type"`
	SoftTransportMismatch float64 `toml:"soft_transport_mismatch"`
	SoftMustHaveTooFar    float64 `toml:"soft_must_have_too_far"`
}

// HardConstraints toggles the five disqualification gates. A gate that
// is switched off degrades to a soft penalty instead of disqualifying.
type HardConstraints struct {
	WrongAssetType       bool `toml:"wrong_asset_type"`
	MustHavePoiTooFar    bool `toml:"must_have_poi_too_far"`
	WrongTransportType   bool `toml:"wrong_transport_type"`
	TargetLocationTooFar bool `toml:"target_location_too_far"`
	AvoidPoiTooClose     bool `toml:"avoid_poi_too_close"`
}

// TargetLocationTiers are the distance bands, in meters, for scoring
// proximity to a geocoded target location.
type TargetLocationTiers struct {
	VeryClose float64 `toml:"very_close"`
	Close     float64 `toml:"close"`
	FarLimit  float64 `toml:"far_limit"`
}

// Retrieval controls candidate pool sizes and result gating.
type Retrieval struct {
	// TopK is the semantic retrieval pool size.
	TopK int `toml:"top_k"`
	// FinalTopN is how many results a search returns.
	FinalTopN int `toml:"final_top_n"`
	// MinSimilarity drops vector matches below this cosine similarity.
	MinSimilarity float32 `toml:"min_similarity"`
	// MinFinalScore is the quality gate: when even the best surviving
	// candidate scores below it, the search returns no results rather
	// than bad ones.
	MinFinalScore float64 `toml:"min_final_score"`
}

// Ranking holds the combination weights for the final score:
// intent*Intent + semantic*Semantic + lifestyle*Lifestyle.
type Ranking struct {
	Intent    float64 `toml:"intent"`
	Semantic  float64 `toml:"semantic"`
	Lifestyle float64 `toml:"lifestyle"`
}

// DataQuality controls how legacy sentinel distances are recognized.
type DataQuality struct {
	// SentinelValues are exact values that mean "no data".
	SentinelValues []float64 `toml:"sentinel_values"`
	// SentinelFloor treats any distance at or above it as missing.
	// Legacy exports used large placeholder numbers instead of nulls.
	SentinelFloor float64 `toml:"sentinel_floor"`
}

// Config is the full engine configuration.
type Config struct {
	Pois map[string]PoiDefinition `toml:"pois"`

	// AssetTypeIDs maps normalized type labels to the database type IDs
	// they accept. The mapping is many-to-many: one label can cover
	// several IDs and one ID can satisfy several labels.
	AssetTypeIDs map[string][]int `toml:"asset_type_ids"`

	// PetFriendlyAssetIDs are low-rise house types assumed to allow
	// pets when the listing does not say.
	PetFriendlyAssetIDs []int `toml:"pet_friendly_asset_ids"`
	// CondoAssetIDs are types assumed to forbid pets unless stated.
	CondoAssetIDs []int `toml:"condo_asset_ids"`

	Weights         Weights             `toml:"weights"`
	HardConstraints HardConstraints     `toml:"hard_constraints"`
	TargetLocation  TargetLocationTiers `toml:"target_location"`
	Retrieval       Retrieval           `toml:"retrieval"`
	Ranking         Ranking             `toml:"ranking"`
	DataQuality     DataQuality         `toml:"data_quality"`

	// AvoidRadiusFraction scales a POI's radius down to its avoidance
	// threshold. Being within fraction*radius of an avoided POI fails
	// the avoid gate.
	AvoidRadiusFraction float64 `toml:"avoid_radius_fraction"`

	// LegacyRailKey and LegacyRailRadius identify ordinary railway
	// presence for the transport mismatch gate.
	LegacyRailKey    string  `toml:"legacy_rail_key"`
	LegacyRailRadius float64 `toml:"legacy_rail_radius"`

	// VetPoiKey names the catalog entry used for the near-vet bonus on
	// pet-friendly searches.
	VetPoiKey string `toml:"vet_poi_key"`
}

// DefaultConfig returns the built-in configuration. Callers get a fresh
// value each time so a loaded overlay never aliases the defaults.
func DefaultConfig() *Config {
	return &Config{
		Pois:                defaultCatalog(),
		AssetTypeIDs:        defaultAssetTypeIDs(),
		PetFriendlyAssetIDs: []int{4, 15, 1},
		CondoAssetIDs:       []int{3, 12},
		Weights: Weights{
			AssetTypeMatch:      2.0,
			MustHavePoiBase:     1.5,
			NiceToHavePoi:       0.25,
			PetFriendlyExplicit: 1.5,
			PetFriendlyInferred: 0.5,
			PriceInRange:        0.5,
			AvoidPoiSuccess:     0.3,
			NearVetBonus:        0.25,

			PriceOutOfRange:  -3.0,
			AvoidPoiFailure:  -5.0,
			PetNotAllowed:    -8.0,
			PetStatusUnknown: -2.0,
			PetNoise:         -2.0,

			LocationVeryClose:    3.0,
			LocationClose:        1.5,
			LocationFar:          -2.0,
			AvoidLocationNear:    -5.0,
			AvoidLocationMid:     -2.0,
			AvoidLocationAvoided: 0.5,

			SoftWrongAssetType:    -10.0,
			SoftTransportMismatch: -20.0,
			SoftMustHaveTooFar:    -15.0,
		},
		HardConstraints: HardConstraints{
			WrongAssetType:       true,
			MustHavePoiTooFar:    true,
			WrongTransportType:   true,
			TargetLocationTooFar: true,
			AvoidPoiTooClose:     true,
		},
		TargetLocation: TargetLocationTiers{
			VeryClose: 2000,
			Close:     5000,
			FarLimit:  10000,
		},
		Retrieval: Retrieval{
			TopK:          100,
			FinalTopN:     5,
			MinSimilarity: 0,
			MinFinalScore: 0.35,
		},
		Ranking: Ranking{
			Intent:    0.7,
			Semantic:  0.2,
			Lifestyle: 0.1,
		},
		DataQuality: DataQuality{
			SentinelValues: []float64{99999},
			SentinelFloor:  90000,
		},
		AvoidRadiusFraction: 0.6,
		LegacyRailKey:       "train_station",
		LegacyRailRadius:    2500,
		VetPoiKey:           "veterinary",
	}
}

// Poi looks up a catalog entry.
func (c *Config) Poi(key string) (PoiDefinition, bool) {
	def, ok := c.Pois[key]
	return def, ok
}

// PoiRadius returns the relevance radius for a key, falling back to a
// conservative 3000m for keys outside the catalog.
func (c *Config) PoiRadius(key string) float64 {
	if def, ok := c.Pois[key]; ok {
		return def.Radius
	}
	return 3000
}

// PoiDisplayName returns the display label for a key, or the key itself
// when it is not in the catalog.
func (c *Config) PoiDisplayName(key string) string {
	if def, ok := c.Pois[key]; ok && def.DisplayName != "" {
		return def.DisplayName
	}
	return key
}

// IsRapidTransit reports whether a POI key is a rapid transit station.
func (c *Config) IsRapidTransit(key string) bool {
	def, ok := c.Pois[key]
	return ok && def.RapidTransit
}

// RapidTransitKeys returns the rapid transit catalog keys in sorted
// order, so scoring output is deterministic.
func (c *Config) RapidTransitKeys() []string {
	var keys []string
	for key, def := range c.Pois {
		if def.RapidTransit {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// AcceptedTypeIDs resolves intent type labels to the union of database
// type IDs they accept. Unknown labels contribute nothing.
func (c *Config) AcceptedTypeIDs(labels []string) []int {
	var ids []int
	seen := make(map[int]bool)
	for _, label := range labels {
		for _, id := range c.AssetTypeIDs[label] {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// IsCondoType reports whether a type ID is a condo type.
func (c *Config) IsCondoType(id int) bool {
	for _, condo := range c.CondoAssetIDs {
		if id == condo {
			return true
		}
	}
	return false
}

// IsPetFriendlyType reports whether a type ID is a low-rise house type
// assumed to allow pets.
func (c *Config) IsPetFriendlyType(id int) bool {
	for _, friendly := range c.PetFriendlyAssetIDs {
		if id == friendly {
			return true
		}
	}
	return false
}

// IsSentinel reports whether a raw distance value is a legacy
// missing-data placeholder.
func (d DataQuality) IsSentinel(value float64) bool {
	if value >= d.SentinelFloor {
		return true
	}
	for _, s := range d.SentinelValues {
		if value == s {
			return true
		}
	}
	return false
}

// Validate checks structural soundness of the configuration.
func (c *Config) Validate() error {
	if len(c.Pois) == 0 {
		return fmt.Errorf("%w: POI catalog is empty", ErrInvalidConfig)
	}
	for key, def := range c.Pois {
		if def.Radius <= 0 {
			return fmt.Errorf("%w: POI %q has non-positive radius %v", ErrInvalidConfig, key, def.Radius)
		}
		if def.Weight < 0 {
			return fmt.Errorf("%w: POI %q has negative weight %v", ErrInvalidConfig, key, def.Weight)
		}
		switch def.Curve {
		case CurveLinear, CurveExponential:
		default:
			return fmt.Errorf("%w: POI %q has unknown curve %q", ErrInvalidConfig, key, def.Curve)
		}
	}

	if c.Retrieval.TopK <= 0 {
		return fmt.Errorf("%w: retrieval top_k must be positive", ErrInvalidConfig)
	}
	if c.Retrieval.FinalTopN <= 0 || c.Retrieval.FinalTopN > c.Retrieval.TopK {
		return fmt.Errorf("%w: final_top_n must be in [1, top_k]", ErrInvalidConfig)
	}

	t := c.TargetLocation
	if !(t.VeryClose > 0 && t.VeryClose < t.Close && t.Close < t.FarLimit) {
		return fmt.Errorf("%w: target location tiers must be ascending and positive", ErrInvalidConfig)
	}

	if c.AvoidRadiusFraction <= 0 || c.AvoidRadiusFraction > 1 {
		return fmt.Errorf("%w: avoid_radius_fraction must be in (0, 1]", ErrInvalidConfig)
	}

	if c.Ranking.Intent < 0 || c.Ranking.Semantic < 0 || c.Ranking.Lifestyle < 0 {
		return fmt.Errorf("%w: ranking weights must be non-negative", ErrInvalidConfig)
	}

	if c.DataQuality.SentinelFloor <= 0 {
		return fmt.Errorf("%w: sentinel_floor must be positive", ErrInvalidConfig)
	}

	return nil
}
