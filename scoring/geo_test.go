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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mercil/assetrank/config"
	"github.com/mercil/assetrank/core"
)

func TestHaversine(t *testing.T) {
	siam := core.LatLng{Lat: 13.7456, Lng: 100.5339}

	t.Run("zero distance", func(t *testing.T) {
		assert.Equal(t, 0.0, Haversine(siam, siam))
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		a := core.LatLng{Lat: 13.0, Lng: 100.5}
		b := core.LatLng{Lat: 14.0, Lng: 100.5}
		// One degree of latitude is about 111.2 km on a spherical earth.
		assert.InDelta(t, 111195, Haversine(a, b), 100)
	})

	t.Run("symmetric", func(t *testing.T) {
		moChit := core.LatLng{Lat: 13.8022, Lng: 100.5538}
		assert.InDelta(t, Haversine(siam, moChit), Haversine(moChit, siam), 1e-9)
	})

	t.Run("nearby landmark distance", func(t *testing.T) {
		moChit := core.LatLng{Lat: 13.8022, Lng: 100.5538}
		d := Haversine(siam, moChit)
		assert.Greater(t, d, 5000.0)
		assert.Less(t, d, 10000.0)
	})
}

func TestProximityFactor(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		radius   float64
		curve    config.Curve
		want     float64
	}{
		{name: "linear at POI", distance: 0, radius: 3000, curve: config.CurveLinear, want: 1.0},
		{name: "linear midway", distance: 1500, radius: 3000, curve: config.CurveLinear, want: 0.5},
		{name: "linear at edge", distance: 3000, radius: 3000, curve: config.CurveLinear, want: 0.0},
		{name: "exponential at POI", distance: 0, radius: 3000, curve: config.CurveExponential, want: 1.0},
		{name: "exponential midway", distance: 1500, radius: 3000, curve: config.CurveExponential, want: 0.25},
		{name: "exponential at edge", distance: 3000, radius: 3000, curve: config.CurveExponential, want: 0.0},
		{name: "beyond radius", distance: 4000, radius: 3000, curve: config.CurveLinear, want: 0.0},
		{name: "zero radius", distance: 100, radius: 0, curve: config.CurveLinear, want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ProximityFactor(tt.distance, tt.radius, tt.curve), 1e-9)
		})
	}
}

func TestProximityFactor_Monotone(t *testing.T) {
	for _, curve := range []config.Curve{config.CurveLinear, config.CurveExponential} {
		prev := 1.1
		for d := 0.0; d <= 3000; d += 50 {
			f := ProximityFactor(d, 3000, curve)
			assert.GreaterOrEqual(t, f, 0.0)
			assert.LessOrEqual(t, f, 1.0)
			assert.LessOrEqual(t, f, prev, "factor must not increase with distance (curve %s, d=%v)", curve, d)
			prev = f
		}
	}
}
