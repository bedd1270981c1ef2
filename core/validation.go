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


package core

import "fmt"

// ValidateAsset validates an Asset according to domain rules.
//
// Validation rules:
//   - Ref must not be empty
//   - Price must not be negative (0 is valid and means unset)
//   - Coordinates, when present, must both be set and within WGS84 bounds
//   - PetFriendly must be a recognized TriState
//
// NOT validated (populated by processors):
//   - Vector (can be empty until the embedding processor runs)
//   - LifestyleScore (can be 0 until ingestion computes it)
//   - ID (0 is valid; assigned from the reference code on insert)
//
// POI distances are deliberately not validated: dirty values, including
// legacy sentinels, are the scoring package's concern and must never make
// a listing unstorable.
func ValidateAsset(asset *Asset) error {
	if asset == nil {
		return fmt.Errorf("%w: asset is nil", ErrInvalidAsset)
	}

	if asset.Ref == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAsset, ErrEmptyRef)
	}

	if asset.Price < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidAsset, ErrNegativePrice)
	}

	if err := ValidateTriState(asset.PetFriendly); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAsset, err)
	}

	if (asset.Latitude == nil) != (asset.Longitude == nil) {
		return fmt.Errorf("%w: %w: latitude and longitude must be set together", ErrInvalidAsset, ErrInvalidCoordinates)
	}
	if asset.Latitude != nil {
		if *asset.Latitude < -90 || *asset.Latitude > 90 {
			return fmt.Errorf("%w: %w: latitude %v", ErrInvalidAsset, ErrInvalidCoordinates, *asset.Latitude)
		}
		if *asset.Longitude < -180 || *asset.Longitude > 180 {
			return fmt.Errorf("%w: %w: longitude %v", ErrInvalidAsset, ErrInvalidCoordinates, *asset.Longitude)
		}
	}

	return nil
}

// ValidateIntent validates an Intent according to domain rules.
//
// Validation rules:
//   - PriceRange min must not exceed max when both are set
//   - PetFriendly must be a recognized TriState
//
// Unknown POI keys are NOT validated here: the scorer ignores keys that are
// absent from the catalog, so an intent referencing a future or misspelled
// key is still valid.
func ValidateIntent(intent *Intent) error {
	if intent == nil {
		return fmt.Errorf("%w: intent is nil", ErrInvalidIntent)
	}

	if err := ValidateTriState(intent.PetFriendly); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidIntent, err)
	}

	pr := intent.PriceRange
	if pr.Min != nil && pr.Max != nil && *pr.Min > *pr.Max {
		return fmt.Errorf("%w: %w", ErrInvalidIntent, ErrInvalidPriceRange)
	}

	return nil
}

// ValidateTriState validates that a TriState has a recognized value.
func ValidateTriState(t TriState) error {
	switch t {
	case TriStateUnknown, TriStateTrue, TriStateFalse:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidTriState, t)
	}
}
