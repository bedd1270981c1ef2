package ingestion

import (
	"fmt"
	"strings"

	"github.com/mercil/assetrank/core"
)

// BuildDocument composes the text that gets embedded for a listing.
// Name, type, price, location and description are joined into one line so
// the vector captures the whole listing, not just the description.
func BuildDocument(asset *core.Asset) string {
	parts := make([]string, 0, 5)

	if asset.Name != "" {
		parts = append(parts, asset.Name)
	}
	if asset.AssetTypeName != "" {
		parts = append(parts, asset.AssetTypeName)
	}
	if asset.Price > 0 {
		parts = append(parts, fmt.Sprintf("price %.0f baht", asset.Price))
	}

	location := strings.TrimSpace(strings.Join([]string{asset.Village, asset.Road}, " "))
	if location != "" {
		parts = append(parts, location)
	}

	if asset.Description != "" {
		parts = append(parts, asset.Description)
	}

	return strings.Join(parts, " | ")
}
