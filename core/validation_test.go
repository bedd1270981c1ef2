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

import (
	"errors"
	"testing"
)

func validAsset() *Asset {
	lat := 13.7563
	lng := 100.5018
	return &Asset{
		Ref:           "NPA-2024-000123",
		Name:          "Baan Suan Condo",
		AssetTypeID:   3,
		AssetTypeName: "Condominium",
		Price:         3500000,
		Latitude:      &lat,
		Longitude:     &lng,
	}
}

func TestValidateAsset(t *testing.T) {
	badLat := 95.0

	tests := []struct {
		name    string
		mutate  func(*Asset)
		wantErr error
	}{
		{
			name:   "valid asset",
			mutate: func(a *Asset) {},
		},
		{
			name:    "empty ref",
			mutate:  func(a *Asset) { a.Ref = "" },
			wantErr: ErrEmptyRef,
		},
		{
			name:    "negative price",
			mutate:  func(a *Asset) { a.Price = -1 },
			wantErr: ErrNegativePrice,
		},
		{
			name:   "zero price means unset",
			mutate: func(a *Asset) { a.Price = 0 },
		},
		{
			name:   "no coordinates at all",
			mutate: func(a *Asset) { a.Latitude, a.Longitude = nil, nil },
		},
		{
			name:    "latitude without longitude",
			mutate:  func(a *Asset) { a.Longitude = nil },
			wantErr: ErrInvalidCoordinates,
		},
		{
			name:    "latitude out of range",
			mutate:  func(a *Asset) { a.Latitude = &badLat },
			wantErr: ErrInvalidCoordinates,
		},
		{
			name: "longitude out of range",
			mutate: func(a *Asset) {
				bad := 181.0
				a.Longitude = &bad
			},
			wantErr: ErrInvalidCoordinates,
		},
		{
			name:    "bogus tri-state",
			mutate:  func(a *Asset) { a.PetFriendly = TriState(42) },
			wantErr: ErrInvalidTriState,
		},
		{
			name: "sentinel POI distances are tolerated",
			mutate: func(a *Asset) {
				a.PoiDistances = map[string]float64{"hospital": 99999, "school": -1}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := validAsset()
			tt.mutate(asset)

			err := ValidateAsset(asset)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAsset() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAsset() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidAsset) {
				t.Errorf("ValidateAsset() error %v should wrap ErrInvalidAsset", err)
			}
		})
	}
}

func TestValidateAsset_Nil(t *testing.T) {
	if err := ValidateAsset(nil); !errors.Is(err, ErrInvalidAsset) {
		t.Errorf("ValidateAsset(nil) = %v, want ErrInvalidAsset", err)
	}
}

func TestValidateIntent(t *testing.T) {
	low := 3000000.0
	high := 5000000.0

	tests := []struct {
		name    string
		intent  *Intent
		wantErr error
	}{
		{
			name:   "empty intent is valid",
			intent: EmptyIntent(),
		},
		{
			name:   "ordered price range",
			intent: &Intent{PriceRange: PriceRange{Min: &low, Max: &high}},
		},
		{
			name:    "inverted price range",
			intent:  &Intent{PriceRange: PriceRange{Min: &high, Max: &low}},
			wantErr: ErrInvalidPriceRange,
		},
		{
			name:    "bogus tri-state",
			intent:  &Intent{PetFriendly: TriState(-1)},
			wantErr: ErrInvalidTriState,
		},
		{
			name:   "unknown POI keys are tolerated",
			intent: &Intent{MustHave: []string{"teleporter_pad"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIntent(tt.intent)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateIntent() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateIntent() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateIntent_Nil(t *testing.T) {
	if err := ValidateIntent(nil); !errors.Is(err, ErrInvalidIntent) {
		t.Errorf("ValidateIntent(nil) = %v, want ErrInvalidIntent", err)
	}
}
