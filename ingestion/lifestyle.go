package ingestion

import (
	"github.com/mercil/assetrank/config"
	"github.com/mercil/assetrank/core"
	"github.com/mercil/assetrank/scoring"
)

// LifestyleScore computes the 0-10 amenity density score for a listing.
// Each catalog POI with a verified distance inside its radius contributes
// its proximity factor times its catalog weight; the sum is normalized by
// the total catalog weight and scaled to 10. Listings with no nearby
// amenities score 0.
func LifestyleScore(cfg *config.Config, asset *core.Asset) float64 {
	var total, totalWeight float64
	for key, def := range cfg.Pois {
		totalWeight += def.Weight

		distance, ok := scoring.VerifiedDistance(cfg, asset, key)
		if !ok || distance > def.Radius {
			continue
		}

		factor := scoring.ProximityFactor(distance, def.Radius, def.Curve)
		if contribution := factor * def.Weight; contribution > 0 {
			total += contribution
		}
	}

	if totalWeight == 0 {
		return 0
	}
	return min(10, total/totalWeight*10)
}
