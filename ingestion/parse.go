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


package ingestion

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mercil/assetrank/config"
	"github.com/mercil/assetrank/core"
)

// RawAsset is a flat key-value record as exported from a listing source.
// All values are strings; numeric fields are parsed leniently.
type RawAsset map[string]string

// ParseRawAsset converts a raw listing record into a domain asset.
// A missing or malformed value degrades to the absent form of its field
// (nil pointer, zero, or no map entry) rather than failing the whole
// record; only a missing reference code is fatal. POI distance columns
// are matched against the catalog keys of cfg, with "<key>_name" holding
// the specific place name.
func ParseRawAsset(cfg *config.Config, raw RawAsset) (*core.Asset, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	ref := strings.TrimSpace(raw["ref"])
	if ref == "" {
		return nil, fmt.Errorf("%w: raw record has no ref", core.ErrEmptyRef)
	}

	asset := &core.Asset{
		Ref:           ref,
		Name:          strings.TrimSpace(raw["name"]),
		AssetTypeName: strings.TrimSpace(raw["asset_type_name"]),
		Village:       strings.TrimSpace(raw["village"]),
		Road:          strings.TrimSpace(raw["road"]),
		Description:   strings.TrimSpace(raw["description"]),
	}

	if id, ok := parseInt(raw["asset_type_id"]); ok && id > 0 {
		asset.AssetTypeID = id
	}
	if n, ok := parseInt(raw["bedrooms"]); ok && n > 0 {
		asset.Bedrooms = n
	}
	if n, ok := parseInt(raw["bathrooms"]); ok && n > 0 {
		asset.Bathrooms = n
	}
	if price, ok := parseFloat(raw["price"]); ok && price > 0 {
		asset.Price = price
	}

	// Coordinates are kept only as a pair
	lat, latOK := parseFloat(raw["latitude"])
	lng, lngOK := parseFloat(raw["longitude"])
	if latOK && lngOK && lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180 {
		asset.Latitude = &lat
		asset.Longitude = &lng
	}

	asset.PetFriendly = parsePetFriendly(raw)

	for key := range cfg.Pois {
		value, ok := parseFloat(raw[key])
		if !ok || value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		if asset.PoiDistances == nil {
			asset.PoiDistances = make(map[string]float64)
		}
		asset.PoiDistances[key] = value

		if name := strings.TrimSpace(raw[key+"_name"]); name != "" {
			if asset.PoiNames == nil {
				asset.PoiNames = make(map[string]string)
			}
			asset.PoiNames[key] = name
		}
	}

	if err := core.ValidateAsset(asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// parsePetFriendly reads an explicit pet_friendly column when present and
// otherwise infers the policy from the description text, the way the
// listing exports phrase it.
func parsePetFriendly(raw RawAsset) core.TriState {
	switch strings.ToLower(strings.TrimSpace(raw["pet_friendly"])) {
	case "true", "yes", "1":
		return core.TriStateTrue
	case "false", "no", "0":
		return core.TriStateFalse
	}

	desc := strings.ToLower(raw["description"])
	switch {
	case strings.Contains(desc, "no pets"):
		return core.TriStateFalse
	case strings.Contains(desc, "pet friendly"),
		strings.Contains(desc, "pet-friendly"),
		strings.Contains(desc, "pets allowed"),
		strings.Contains(desc, "สัตว์เลี้ยง"):
		return core.TriStateTrue
	}
	return core.TriStateUnknown
}

// parseFloat parses a lenient decimal value. Thousands separators are
// tolerated; anything unparseable reports false.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseInt(s string) (int, bool) {
	v, ok := parseFloat(s)
	if !ok {
		return 0, false
	}
	return int(v), true
}
