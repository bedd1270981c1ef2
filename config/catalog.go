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


package config

// defaultCatalog returns the built-in POI catalog. Radii are the
// distance beyond which a POI stops mattering; weights feed the
// lifestyle score. Only skytrain and subway stations carry the
// rapid-transit flag; ordinary state railway stops deliberately do not.
func defaultCatalog() map[string]PoiDefinition {
	return map[string]PoiDefinition{
		// Transportation
		"bts_station": {
			Radius:       3000,
			Weight:       1.2,
			Curve:        CurveExponential,
			DisplayName:  "BTS skytrain station",
			Category:     "transportation",
			RapidTransit: true,
		},
		"mrt": {
			Radius:       3000,
			Weight:       1.2,
			Curve:        CurveExponential,
			DisplayName:  "MRT subway station",
			Category:     "transportation",
			RapidTransit: true,
		},
		"train_station": {
			Radius:      2000,
			Weight:      0.5,
			Curve:       CurveExponential,
			DisplayName: "state railway station",
			Category:    "transportation",
		},
		"bus_station": {
			Radius:      2000,
			Weight:      0.5,
			Curve:       CurveExponential,
			DisplayName: "bus terminal",
			Category:    "transportation",
		},

		// Convenience
		"convenience_store": {
			Radius:      3000,
			Weight:      0.5,
			Curve:       CurveExponential,
			DisplayName: "convenience store",
			Category:    "shopping",
		},
		"market": {
			Radius:      1500,
			Weight:      0.4,
			Curve:       CurveLinear,
			DisplayName: "fresh market",
			Category:    "shopping",
		},
		"supermarket": {
			Radius:      2000,
			Weight:      0.5,
			Curve:       CurveLinear,
			DisplayName: "supermarket",
			Category:    "shopping",
		},

		// Lifestyle
		"shopping_mall": {
			Radius:      3000,
			Weight:      1.1,
			Curve:       CurveLinear,
			DisplayName: "shopping mall",
			Category:    "shopping",
		},
		"community_mall": {
			Radius:      2000,
			Weight:      0.7,
			Curve:       CurveLinear,
			DisplayName: "community mall",
			Category:    "shopping",
		},
		"restaurant": {
			Radius:      1000,
			Weight:      0.4,
			Curve:       CurveLinear,
			DisplayName: "restaurant",
			Category:    "dining",
		},
		"cafe": {
			Radius:      1000,
			Weight:      0.4,
			Curve:       CurveLinear,
			DisplayName: "cafe",
			Category:    "dining",
		},

		// Health and wellness
		"hospital": {
			Radius:      3000,
			Weight:      0.7,
			Curve:       CurveLinear,
			DisplayName: "hospital",
			Category:    "health",
		},
		"park": {
			Radius:      3000,
			Weight:      0.6,
			Curve:       CurveLinear,
			DisplayName: "public park",
			Category:    "recreation",
		},
		"gym": {
			Radius:      2000,
			Weight:      0.5,
			Curve:       CurveLinear,
			DisplayName: "fitness center",
			Category:    "health",
		},
		"spa": {
			Radius:      2000,
			Weight:      0.2,
			Curve:       CurveLinear,
			DisplayName: "spa",
			Category:    "health",
		},

		// Pets
		"veterinary": {
			Radius:      2000,
			Weight:      0.5,
			Curve:       CurveLinear,
			DisplayName: "veterinary clinic",
			Category:    "pet",
		},

		// Education and culture
		"school": {
			Radius:      3000,
			Weight:      0.5,
			Curve:       CurveLinear,
			DisplayName: "school",
			Category:    "education",
		},
		"university": {
			Radius:      3000,
			Weight:      0.3,
			Curve:       CurveLinear,
			DisplayName: "university",
			Category:    "education",
		},
		"temple": {
			Radius:      1500,
			Weight:      0.1,
			Curve:       CurveLinear,
			DisplayName: "temple",
			Category:    "culture",
		},
		"museum": {
			Radius:      5000,
			Weight:      0.1,
			Curve:       CurveLinear,
			DisplayName: "museum",
			Category:    "culture",
		},

		// Nature
		"river": {
			Radius:      1500,
			Weight:      0.4,
			Curve:       CurveLinear,
			DisplayName: "riverside",
			Category:    "nature",
		},
		"beach": {
			Radius:      3000,
			Weight:      0.0,
			Curve:       CurveLinear,
			DisplayName: "beach",
			Category:    "nature",
		},
		"viewpoint": {
			Radius:      3000,
			Weight:      0.2,
			Curve:       CurveLinear,
			DisplayName: "viewpoint",
			Category:    "tourism",
		},

		// Travel
		"tourist_attraction": {
			Radius:      3000,
			Weight:      0.2,
			Curve:       CurveLinear,
			DisplayName: "tourist attraction",
			Category:    "tourism",
		},
		"hotel": {
			Radius:      2000,
			Weight:      0.1,
			Curve:       CurveLinear,
			DisplayName: "hotel",
			Category:    "tourism",
		},
		"golf_course": {
			Radius:      5000,
			Weight:      0.2,
			Curve:       CurveLinear,
			DisplayName: "golf course",
			Category:    "recreation",
		},
	}
}

// defaultAssetTypeIDs maps normalized asset type labels to the database
// type IDs they accept. Several labels share IDs because listings use
// inconsistent naming for the same building class.
func defaultAssetTypeIDs() map[string][]int {
	return map[string][]int{
		// Residential
		"condo":          {3, 12},
		"condo_unit":     {3, 11, 16},
		"house":          {4, 15},
		"detached_house": {4},
		"twin_house":     {15},
		"townhome":       {1},
		"townhouse":      {1},
		"apartment":      {17, 30},
		"dormitory":      {30},

		// Commercial
		"commercial_building": {5},
		"shophouse":           {5, 30},
		"home_office":         {9},
		"office":              {9, 11, 13},
		"office_building":     {11, 13},
		"showroom":            {8},
		"mall":                {22},
		"restaurant":          {35},
		"market":              {25},
		"gas_station":         {14},

		// Industrial and land
		"land":        {2},
		"vacant_land": {2},
		"factory":     {6, 36},
		"warehouse":   {6, 34},

		// Hospitality and institutional
		"hotel":       {10},
		"resort":      {10},
		"school":      {29},
		"hospital":    {18, 19},
		"golf_course": {21},
	}
}
