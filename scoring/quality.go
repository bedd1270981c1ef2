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


package scoring

import (
	"fmt"
	"math"

	"github.com/mercil/assetrank/config"
	"github.com/mercil/assetrank/core"
)

// QualityReport records what is known and unknown about an asset before
// it is scored. Missing data is tracked, never penalized: a listing
// without a hospital distance is unverified, not far from a hospital.
type QualityReport struct {
	AssetID core.ID

	// AvailablePoiKeys and MissingPoiKeys are disjoint. A key with a
	// malformed value (negative distance) appears in neither.
	AvailablePoiKeys map[string]bool
	MissingPoiKeys   map[string]bool

	HasValidPrice     bool
	HasValidAssetType bool
	HasValidLocation  bool

	// QualityScore is 0.4*poi completeness + 0.3 price + 0.2 type +
	// 0.1 location, in [0, 1].
	QualityScore float64

	// Warnings flag required POIs that could not be verified.
	Warnings []Signal
}

// PoiAvailable reports whether a verified distance exists for the key.
func (r *QualityReport) PoiAvailable(key string) bool {
	return r.AvailablePoiKeys[key]
}

// PoiMissing reports whether the key was checked and had no usable data.
func (r *QualityReport) PoiMissing(key string) bool {
	return r.MissingPoiKeys[key]
}

// MissingMustHaves returns the subset of mustHave keys with no data.
func (r *QualityReport) MissingMustHaves(mustHave []string) []string {
	var missing []string
	for _, key := range mustHave {
		if r.MissingPoiKeys[key] {
			missing = append(missing, key)
		}
	}
	return missing
}

// VerifiedDistance returns the asset's distance to a POI only when the
// stored value is trustworthy: present, finite, non-negative and not a
// legacy sentinel. This is the only sanctioned way to read a POI
// distance; reading the map directly reintroduces the sentinel bug this
// engine exists to fix.
func VerifiedDistance(cfg *config.Config, asset *core.Asset, key string) (float64, bool) {
	value, ok := asset.PoiDistances[key]
	if !ok {
		return 0, false
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, false
	}
	if cfg.DataQuality.IsSentinel(value) {
		return 0, false
	}
	return value, true
}

// Assess builds a QualityReport for the asset against the POI keys the
// intent cares about. It is total: any asset yields a report.
//
// A key counts as missing when it is absent, a legacy sentinel, or at
// or above the sentinel floor. It counts as available when it holds a
// finite non-negative distance. With nothing to check, completeness is
// 1: nothing the intent asked for is unverifiable.
func Assess(cfg *config.Config, asset *core.Asset, required, optional []string) *QualityReport {
	report := &QualityReport{
		AssetID:          asset.Id,
		AvailablePoiKeys: make(map[string]bool),
		MissingPoiKeys:   make(map[string]bool),
	}

	requiredSet := make(map[string]bool, len(required))
	for _, key := range required {
		requiredSet[key] = true
	}
	checked := make(map[string]bool, len(required)+len(optional))
	for _, key := range required {
		checked[key] = true
	}
	for _, key := range optional {
		checked[key] = true
	}

	for key := range checked {
		value, present := asset.PoiDistances[key]
		switch {
		case !present || cfg.DataQuality.IsSentinel(value) || math.IsNaN(value) || math.IsInf(value, 0):
			report.MissingPoiKeys[key] = true
			if requiredSet[key] {
				report.Warnings = append(report.Warnings, Signal{
					Kind:    SignalWarning,
					Message: fmt.Sprintf("no %s data (cannot verify)", cfg.PoiDisplayName(key)),
				})
			}
		case value >= 0:
			report.AvailablePoiKeys[key] = true
		}
	}

	report.HasValidPrice = asset.Price > 0
	report.HasValidAssetType = asset.AssetTypeID != 0
	_, hasCoords := asset.Coordinates()
	report.HasValidLocation = asset.Village != "" || asset.Road != "" || hasCoords

	completeness := 1.0
	if len(checked) > 0 {
		completeness = float64(len(report.AvailablePoiKeys)) / float64(len(checked))
	}

	report.QualityScore = completeness * 0.4
	if report.HasValidPrice {
		report.QualityScore += 0.3
	}
	if report.HasValidAssetType {
		report.QualityScore += 0.2
	}
	if report.HasValidLocation {
		report.QualityScore += 0.1
	}

	return report
}
