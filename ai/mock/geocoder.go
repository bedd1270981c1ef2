package mock

import (
	"context"
	"strings"

	"github.com/mercil/assetrank/core"
)

// StaticGeocoder is a test double for ai.Geocoder backed by a fixed place
// table. Lookups are case-insensitive on the trimmed place name.
type StaticGeocoder struct {
	// GeocodeFunc is called by Geocode if set.
	// If nil, uses the Places table.
	GeocodeFunc func(ctx context.Context, place string) (core.LatLng, bool, error)

	// Places maps lowercase place names to coordinates.
	Places map[string]core.LatLng

	callCount int
}

// NewStaticGeocoder creates a geocoder seeded with a few Bangkok landmarks.
// Note: Returns concrete type so tests can extend the place table.
func NewStaticGeocoder() *StaticGeocoder {
	return &StaticGeocoder{
		Places: map[string]core.LatLng{
			"siam":             {Lat: 13.7456, Lng: 100.5339},
			"mo chit":          {Lat: 13.8025, Lng: 100.5536},
			"chatuchak park":   {Lat: 13.8088, Lng: 100.5538},
			"victory monument": {Lat: 13.7649, Lng: 100.5383},
			"thonglor":         {Lat: 13.7243, Lng: 100.5797},
			"silom":            {Lat: 13.7280, Lng: 100.5340},
		},
	}
}

// Geocode resolves a place name against the static table.
// An unknown place is reported as not found, never as an error.
func (g *StaticGeocoder) Geocode(ctx context.Context, place string) (core.LatLng, bool, error) {
	g.callCount++

	if g.GeocodeFunc != nil {
		return g.GeocodeFunc(ctx, place)
	}

	key := strings.ToLower(strings.TrimSpace(place))
	if key == "" {
		return core.LatLng{}, false, nil
	}

	pos, ok := g.Places[key]
	return pos, ok, nil
}

// CallCount returns the number of times Geocode was called.
func (g *StaticGeocoder) CallCount() int {
	return g.callCount
}

// Reset clears the call count and custom functions.
func (g *StaticGeocoder) Reset() {
	g.callCount = 0
	g.GeocodeFunc = nil
}
