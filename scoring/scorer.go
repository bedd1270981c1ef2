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


// Package scoring implements constraint-gated asset scoring: hard
// constraint gates that disqualify outright, followed by additive soft
// signals that can never rescue a gate failure. Semantic similarity
// plays no part here; it only shapes the retrieval pool upstream.
package scoring

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mercil/assetrank/config"
	"github.com/mercil/assetrank/core"
)

// Gate names used as breakdown keys.
const (
	groupAssetType    = "asset_type"
	groupTransport    = "transport"
	groupRapidTransit = "rapid_transit"
	groupMustHave     = "must_have"
	groupPetFriendly  = "pet_friendly"
	groupNiceToHave   = "nice_to_have"
	groupAvoidPoi     = "avoid_pois"
	groupPriceRange   = "price_range"
	groupTargetArea   = "target_location"
	groupAvoidArea    = "avoid_location"
)

// Scorer evaluates assets against a parsed intent. It holds only an
// immutable config, so a single instance is safe for any number of
// concurrent Score calls.
type Scorer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// ScorerOption configures a Scorer during construction.
type ScorerOption func(*Scorer) error

// WithLogger sets the logger used for disqualification traces.
func WithLogger(logger *slog.Logger) ScorerOption {
	return func(s *Scorer) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}

// NewScorer creates a Scorer bound to the given configuration.
func NewScorer(cfg *config.Config, opts ...ScorerOption) (*Scorer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	s := &Scorer{
		cfg:    cfg,
		logger: slog.Default().With("component", "scorer"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("applying scorer option: %w", err)
		}
	}
	return s, nil
}

// Score runs the gate sequence for one asset. target and avoid are the
// geocoded coordinates of the intent's target and avoid locations; nil
// skips the respective check. Score is pure and total: it always
// returns a Result and never errors.
//
// Gate order is fixed. Hard gates return immediately on failure with
// the score frozen at zero; soft signals accumulate in between.
func (s *Scorer) Score(asset *core.Asset, intent *core.Intent, quality *QualityReport, target, avoid *core.LatLng) *Result {
	result := newResult(quality)

	if done := s.gateAssetType(result, asset, intent); done {
		return result
	}
	if done := s.gateTransportMismatch(result, asset, intent); done {
		return result
	}
	s.scoreRapidTransit(result, asset, intent)
	if done := s.gateMustHavePois(result, asset, intent); done {
		return result
	}
	s.scorePetFriendly(result, asset, intent)
	s.scoreNiceToHave(result, asset, intent)
	if done := s.gateAvoidPois(result, asset, intent); done {
		return result
	}
	s.scorePriceRange(result, asset, intent)
	if target != nil {
		if done := s.gateTargetLocation(result, asset, *target); done {
			return result
		}
	}
	if avoid != nil {
		s.scoreAvoidLocation(result, asset, *avoid)
	}

	return result
}

// gateAssetType disqualifies assets whose type is outside the accepted
// set for the requested labels. No requested types means no constraint.
func (s *Scorer) gateAssetType(result *Result, asset *core.Asset, intent *core.Intent) bool {
	if len(intent.AssetTypes) == 0 {
		return false
	}

	typeName := asset.AssetTypeName
	if typeName == "" {
		typeName = fmt.Sprintf("type %d", asset.AssetTypeID)
	}

	for _, id := range s.cfg.AcceptedTypeIDs(intent.AssetTypes) {
		if asset.AssetTypeID == id {
			result.addPositive(groupAssetType,
				fmt.Sprintf("matches requested asset type (%s)", typeName),
				s.cfg.Weights.AssetTypeMatch)
			return false
		}
	}

	if s.cfg.HardConstraints.WrongAssetType {
		reason := fmt.Sprintf("wrong asset type: wanted %s, found %s",
			strings.Join(intent.AssetTypes, ", "), typeName)
		s.logger.Debug("asset disqualified", "asset", asset.Ref, "gate", groupAssetType, "reason", reason)
		result.disqualify(reason)
		return true
	}

	result.addNegative(groupAssetType,
		fmt.Sprintf("does not match requested asset type (wanted %s, found %s)",
			strings.Join(intent.AssetTypes, ", "), typeName),
		s.cfg.Weights.SoftWrongAssetType)
	return false
}

// gateTransportMismatch catches the rapid-transit trap: the user asks
// for a skytrain or subway station and the listing only has an ordinary
// state railway stop nearby. Without this gate such listings score well
// on the rail keyword while being useless to a commuter.
func (s *Scorer) gateTransportMismatch(result *Result, asset *core.Asset, intent *core.Intent) bool {
	wantsRapid := false
	for _, key := range intent.MustHave {
		if s.cfg.IsRapidTransit(key) {
			wantsRapid = true
			break
		}
	}
	if !wantsRapid {
		return false
	}

	hasRapid := false
	for _, key := range s.cfg.RapidTransitKeys() {
		if d, ok := VerifiedDistance(s.cfg, asset, key); ok && d < s.cfg.PoiRadius(key) {
			hasRapid = true
			break
		}
	}

	legacyDist, legacyOK := VerifiedDistance(s.cfg, asset, s.cfg.LegacyRailKey)
	hasLegacyRail := legacyOK && legacyDist < s.cfg.LegacyRailRadius

	if !hasRapid && hasLegacyRail {
		if s.cfg.HardConstraints.WrongTransportType {
			reason := fmt.Sprintf("wants rapid transit but only a %s is nearby (%.0f m)",
				s.cfg.PoiDisplayName(s.cfg.LegacyRailKey), legacyDist)
			s.logger.Debug("asset disqualified", "asset", asset.Ref, "gate", groupTransport, "reason", reason)
			result.disqualify(reason)
			return true
		}
		result.addNegative(groupTransport,
			fmt.Sprintf("wants rapid transit but only a %s is nearby (%.0f m)",
				s.cfg.PoiDisplayName(s.cfg.LegacyRailKey), legacyDist),
			s.cfg.Weights.SoftTransportMismatch)
	}

	return false
}

// scoreRapidTransit rewards proximity to rapid transit stations named in
// the must-have list. These keys are excluded from the general must-have
// gate because a missing or far station is already the transport gate's
// concern.
func (s *Scorer) scoreRapidTransit(result *Result, asset *core.Asset, intent *core.Intent) {
	mustHave := make(map[string]bool, len(intent.MustHave))
	for _, key := range intent.MustHave {
		mustHave[key] = true
	}

	for _, key := range s.cfg.RapidTransitKeys() {
		if !mustHave[key] {
			continue
		}

		distance, ok := VerifiedDistance(s.cfg, asset, key)
		if !ok {
			result.addWarning(fmt.Sprintf("no %s data", s.cfg.PoiDisplayName(key)))
			continue
		}

		def, _ := s.cfg.Poi(key)
		if distance > def.Radius {
			continue
		}

		factor := ProximityFactor(distance, def.Radius, def.Curve)
		delta := s.cfg.Weights.MustHavePoiBase * max(0.1, factor)
		result.addPositive(groupRapidTransit,
			fmt.Sprintf("near %s%s (%.0f m)", def.DisplayName, specificName(asset, key), distance),
			delta)
	}
}

// gateMustHavePois enforces non-transit must-have requirements. The
// distinction that matters: missing data is a warning, a verified
// distance beyond the POI radius is a gate failure.
func (s *Scorer) gateMustHavePois(result *Result, asset *core.Asset, intent *core.Intent) bool {
	for _, key := range intent.MustHave {
		def, ok := s.cfg.Poi(key)
		if !ok || def.RapidTransit {
			continue
		}

		distance, verified := VerifiedDistance(s.cfg, asset, key)
		if !verified {
			result.addWarning(fmt.Sprintf("no %s data (cannot verify)", def.DisplayName))
			continue
		}

		if distance <= def.Radius {
			factor := ProximityFactor(distance, def.Radius, def.Curve)
			delta := s.cfg.Weights.MustHavePoiBase * max(0.1, factor)
			result.addPositive(groupMustHave,
				fmt.Sprintf("near %s%s (%.0f m)", def.DisplayName, specificName(asset, key), distance),
				delta)
			continue
		}

		if s.cfg.HardConstraints.MustHavePoiTooFar {
			reason := fmt.Sprintf("wants %s but it is %.0f m away (beyond %.0f m)",
				def.DisplayName, distance, def.Radius)
			s.logger.Debug("asset disqualified", "asset", asset.Ref, "gate", groupMustHave, "reason", reason)
			result.disqualify(reason)
			return true
		}
		result.addNegative(groupMustHave,
			fmt.Sprintf("wants %s but it is %.0f m away (beyond %.0f m)",
				def.DisplayName, distance, def.Radius),
			s.cfg.Weights.SoftMustHaveTooFar)
	}

	return false
}

// scorePetFriendly handles explicit pet policy, falls back to inference
// from the building class when the listing is silent, and adds the vet
// bonus for pet seekers.
func (s *Scorer) scorePetFriendly(result *Result, asset *core.Asset, intent *core.Intent) {
	wantsPets, known := intent.PetFriendly.Bool()
	if !known {
		return
	}

	allowed, stated := asset.PetFriendly.Bool()

	if !wantsPets {
		if stated && allowed {
			result.addNegative(groupPetFriendly,
				"pet friendly building (possible noise)",
				s.cfg.Weights.PetNoise)
		}
		return
	}

	switch {
	case stated && allowed:
		result.addPositive(groupPetFriendly, "pets allowed (stated)", s.cfg.Weights.PetFriendlyExplicit)
	case stated && !allowed:
		result.addNegative(groupPetFriendly, "pets not allowed (stated)", s.cfg.Weights.PetNotAllowed)
	case s.cfg.IsCondoType(asset.AssetTypeID):
		result.addNegative(groupPetFriendly,
			"pets likely not allowed (condos usually forbid them)",
			s.cfg.Weights.PetNotAllowed)
	case s.cfg.IsPetFriendlyType(asset.AssetTypeID):
		result.addPositive(groupPetFriendly,
			"pets likely allowed (low-rise house)",
			s.cfg.Weights.PetFriendlyInferred)
	default:
		result.addNegative(groupPetFriendly,
			"pet policy not stated (needs confirmation)",
			s.cfg.Weights.PetStatusUnknown)
	}

	if vetDist, ok := VerifiedDistance(s.cfg, asset, s.cfg.VetPoiKey); ok && vetDist <= s.cfg.PoiRadius(s.cfg.VetPoiKey) {
		result.addPositive(groupPetFriendly,
			fmt.Sprintf("near %s (%.0f m)", s.cfg.PoiDisplayName(s.cfg.VetPoiKey), vetDist),
			s.cfg.Weights.NearVetBonus)
	}
}

// scoreNiceToHave grants flat bonuses. No data and too-far both mean no
// bonus; there is never a penalty here.
func (s *Scorer) scoreNiceToHave(result *Result, asset *core.Asset, intent *core.Intent) {
	for _, key := range intent.NiceToHave {
		def, ok := s.cfg.Poi(key)
		if !ok {
			continue
		}

		distance, verified := VerifiedDistance(s.cfg, asset, key)
		if !verified || distance > def.Radius {
			continue
		}

		result.addPositive(groupNiceToHave,
			fmt.Sprintf("has %s%s (%.0f m)", def.DisplayName, specificName(asset, key), distance),
			s.cfg.Weights.NiceToHavePoi)
	}
}

// gateAvoidPois disqualifies assets verified too close to an avoided
// POI and rewards verified avoidance. The threshold is a fraction of
// the POI's relevance radius. Unverifiable distances stay neutral.
func (s *Scorer) gateAvoidPois(result *Result, asset *core.Asset, intent *core.Intent) bool {
	for _, key := range intent.AvoidPoi {
		def, ok := s.cfg.Poi(key)
		if !ok {
			continue
		}

		distance, verified := VerifiedDistance(s.cfg, asset, key)
		if !verified {
			continue
		}

		avoidRadius := def.Radius * s.cfg.AvoidRadiusFraction
		if distance <= avoidRadius {
			if s.cfg.HardConstraints.AvoidPoiTooClose {
				reason := fmt.Sprintf("wants to avoid %s but it is only %.0f m away (needs at least %.0f m)",
					def.DisplayName, distance, avoidRadius)
				s.logger.Debug("asset disqualified", "asset", asset.Ref, "gate", groupAvoidPoi, "reason", reason)
				result.disqualify(reason)
				return true
			}
			result.addNegative(groupAvoidPoi,
				fmt.Sprintf("close to %s which should be avoided (%.0f m)", def.DisplayName, distance),
				s.cfg.Weights.AvoidPoiFailure)
			continue
		}

		result.addPositive(groupAvoidPoi,
			fmt.Sprintf("%s avoided (%.0f m away)", def.DisplayName, distance),
			s.cfg.Weights.AvoidPoiSuccess)
	}

	return false
}

// scorePriceRange applies the price band. An unpriced listing gets a
// warning, never a penalty: an unknown price is not an out-of-range one.
func (s *Scorer) scorePriceRange(result *Result, asset *core.Asset, intent *core.Intent) {
	pr := intent.PriceRange
	if !pr.Bounded() {
		return
	}

	if asset.Price == 0 {
		result.addWarning("no price data")
		return
	}

	if pr.Contains(asset.Price) {
		result.addPositive(groupPriceRange,
			fmt.Sprintf("price in requested range (%.0f)", asset.Price),
			s.cfg.Weights.PriceInRange)
		return
	}

	if pr.Min != nil && asset.Price < *pr.Min {
		result.addNegative(groupPriceRange,
			fmt.Sprintf("price below requested range (%.0f < %.0f)", asset.Price, *pr.Min),
			s.cfg.Weights.PriceOutOfRange)
		return
	}
	result.addNegative(groupPriceRange,
		fmt.Sprintf("price above requested range (%.0f > %.0f)", asset.Price, *pr.Max),
		s.cfg.Weights.PriceOutOfRange)
}

// gateTargetLocation scores distance to the geocoded target area in
// tiers and disqualifies beyond the far limit. An asset without
// coordinates cannot be verified and passes with a warning.
func (s *Scorer) gateTargetLocation(result *Result, asset *core.Asset, target core.LatLng) bool {
	coords, ok := asset.Coordinates()
	if !ok {
		result.addWarning("no coordinates (cannot compute distance to target area)")
		return false
	}

	distance := Haversine(coords, target)
	tiers := s.cfg.TargetLocation

	switch {
	case distance <= tiers.VeryClose:
		result.addPositive(groupTargetArea,
			fmt.Sprintf("very close to target area (%.1f km)", distance/1000),
			s.cfg.Weights.LocationVeryClose)
	case distance <= tiers.Close:
		result.addPositive(groupTargetArea,
			fmt.Sprintf("within easy reach of target area (%.1f km)", distance/1000),
			s.cfg.Weights.LocationClose)
	case distance > tiers.FarLimit:
		if s.cfg.HardConstraints.TargetLocationTooFar {
			reason := fmt.Sprintf("too far from target area: %.1f km (beyond %.0f km)",
				distance/1000, tiers.FarLimit/1000)
			s.logger.Debug("asset disqualified", "asset", asset.Ref, "gate", groupTargetArea, "reason", reason)
			result.disqualify(reason)
			return true
		}
		result.addNegative(groupTargetArea,
			fmt.Sprintf("far from target area (%.1f km)", distance/1000),
			s.cfg.Weights.LocationFar)
	default:
		result.addWarning(fmt.Sprintf("moderate distance from target area (%.1f km)", distance/1000))
	}

	return false
}

// scoreAvoidLocation penalizes proximity to the geocoded avoid area.
// Closer is worse; verified distance beyond the close tier earns a
// small avoidance reward.
func (s *Scorer) scoreAvoidLocation(result *Result, asset *core.Asset, avoid core.LatLng) {
	coords, ok := asset.Coordinates()
	if !ok {
		result.addWarning("no coordinates (cannot verify distance to avoided area)")
		return
	}

	distance := Haversine(coords, avoid)
	tiers := s.cfg.TargetLocation

	switch {
	case distance <= tiers.VeryClose:
		result.addNegative(groupAvoidArea,
			fmt.Sprintf("very close to avoided area (%.1f km)", distance/1000),
			s.cfg.Weights.AvoidLocationNear)
	case distance <= tiers.Close:
		result.addNegative(groupAvoidArea,
			fmt.Sprintf("within the radius of the avoided area (%.1f km)", distance/1000),
			s.cfg.Weights.AvoidLocationMid)
	default:
		result.addPositive(groupAvoidArea,
			fmt.Sprintf("well away from avoided area (%.1f km)", distance/1000),
			s.cfg.Weights.AvoidLocationAvoided)
	}
}

// specificName renders the concrete place name for a POI key when the
// listing carries one, e.g. the actual station name.
func specificName(asset *core.Asset, key string) string {
	if name, ok := asset.PoiNames[key]; ok && name != "" {
		return fmt.Sprintf(" '%s'", name)
	}
	return ""
}
