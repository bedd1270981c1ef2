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
	"math"

	"github.com/mercil/assetrank/config"
	"github.com/mercil/assetrank/core"
)

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000

// Haversine returns the great-circle distance between two coordinates
// in meters.
func Haversine(a, b core.LatLng) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// ProximityFactor maps a distance within a radius to [0, 1]: 1 at the
// POI itself, 0 at the radius edge. The exponential curve falls off
// quadratically, rewarding very close matches; the linear curve falls
// off proportionally. Distances beyond the radius return 0.
func ProximityFactor(distance, radius float64, curve config.Curve) float64 {
	if radius <= 0 {
		return 0
	}
	x := 1 - distance/radius
	if x < 0 {
		return 0
	}
	if curve == config.CurveExponential {
		return x * x
	}
	return x
}
